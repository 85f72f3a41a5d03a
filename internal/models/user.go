package models

// User tel que renvoyé par le service d'authentification externe (/me).
type User struct {
	ID       int    `json:"id,omitempty"`
	Username string `json:"username"`
	Role     string `json:"role,omitempty"`
}

// TokenResponse est la réponse de POST /token du service externe.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}
