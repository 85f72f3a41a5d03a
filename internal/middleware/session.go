package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"vibe_shop_back_end/internal/config"
)

const sessionName = "vibe_session"

// SessionIDKey est la clé contexte Gin portant l'identifiant de session.
const SessionIDKey = "session_id"

// Session attribue à chaque navigateur un identifiant stable via un
// cookie signé. Les stores panier/favoris/comparaison sont rattachés à
// cet identifiant.
func Session() gin.HandlerFunc {
	store := sessions.NewCookieStore([]byte(config.SessionSecret()))
	store.MaxAge(86400 * 30)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   false, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}

	return func(c *gin.Context) {
		sess, _ := store.Get(c.Request, sessionName)

		sid, _ := sess.Values["sid"].(string)
		if sid == "" {
			sid = uuid.NewString()
			sess.Values["sid"] = sid
			// Un échec d'écriture du cookie donne juste une session éphémère.
			_ = sess.Save(c.Request, c.Writer)
		}

		c.Set(SessionIDKey, sid)
		c.Next()
	}
}
