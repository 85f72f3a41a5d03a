package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vibe_shop_back_end/internal/models"
	"vibe_shop_back_end/internal/utils"
)

// Le service d'authentification externe reste propriétaire des comptes.
// Ce fichier n'est que la glu : relayer les appels, et encadrer les
// transitions login/logout réussies d'un MergeOnLogin/MergeOnLogout du
// panier — exactement une fois chacune.

// Login — POST /api/auth/login
func Login(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	resp, err := Auth.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		log.Printf("⚠️ Service d'auth injoignable: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"detail": "Bad Gateway"})
		return
	}
	if !resp.OK() {
		c.Data(resp.Status, "application/json", resp.Body)
		return
	}

	var token models.TokenResponse
	if err := resp.Decode(&token); err != nil || token.AccessToken == "" {
		c.JSON(http.StatusBadGateway, gin.H{"detail": "Bad Gateway"})
		return
	}

	username := resolveUsername(c, token.AccessToken, input.Username)

	// Login réussi : fusion du panier anonyme avec le panier persisté
	// de l'utilisateur, puis bascule de la clé de persistance.
	sessionState(c).Cart.MergeOnLogin(username)

	c.JSON(http.StatusOK, gin.H{
		"access_token": token.AccessToken,
		"token_type":   "bearer",
		"username":     username,
	})
}

// resolveUsername demande /me au service externe et retombe sur le
// claim sub du token, puis sur l'identifiant saisi.
func resolveUsername(c *gin.Context, accessToken, fallback string) string {
	if resp, err := Auth.Me(c.Request.Context(), accessToken); err == nil && resp.OK() {
		var user models.User
		if err := resp.Decode(&user); err == nil && user.Username != "" {
			return user.Username
		}
	}
	if sub, err := utils.UsernameFromToken(accessToken); err == nil {
		return sub
	}
	return fallback
}

// Logout — POST /api/auth/logout
// Le panier en mémoire survit, seule la clé de persistance rebascule.
func Logout(c *gin.Context) {
	sessionState(c).Cart.MergeOnLogout()
	c.JSON(http.StatusOK, gin.H{"message": "Déconnecté"})
}

// Register — POST /api/auth/register (relais pur)
func Register(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	resp, err := Auth.Register(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		log.Printf("⚠️ Service d'auth injoignable: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"detail": "Bad Gateway"})
		return
	}
	c.Data(resp.Status, "application/json", resp.Body)
}

// Me — GET /api/auth/me (relais du bearer token)
func Me(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token manquant"})
		return
	}

	resp, err := Auth.Me(c.Request.Context(), token)
	if err != nil {
		log.Printf("⚠️ Service d'auth injoignable: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"detail": "Bad Gateway"})
		return
	}
	c.Data(resp.Status, "application/json", resp.Body)
}
