package handlers

import (
	"vibe_shop_back_end/internal/authclient"
	"vibe_shop_back_end/internal/catalog"
	"vibe_shop_back_end/internal/middleware"
	"vibe_shop_back_end/internal/session"

	"github.com/gin-gonic/gin"
)

// Collaborateurs partagés des handlers, câblés au démarrage.
var (
	Catalog  *catalog.Source
	Sessions *session.Manager
	Auth     *authclient.Client
)

// Setup câble les collaborateurs des handlers.
func Setup(source *catalog.Source, sessions *session.Manager, auth *authclient.Client) {
	Catalog = source
	Sessions = sessions
	Auth = auth
}

func sessionState(c *gin.Context) *session.State {
	return Sessions.State(c.GetString(middleware.SessionIDKey))
}
