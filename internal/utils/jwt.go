package utils

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"vibe_shop_back_end/internal/config"
)

// ParseToken vérifie un token HS256 émis par le service d'auth externe
// (secret partagé) et renvoie ses claims.
func ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("méthode de signature inattendue: %v", token.Header["alg"])
		}
		return []byte(config.JWTSecret()), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("token invalide")
	}
	return claims, nil
}

// UsernameFromToken extrait le claim sub sans appel réseau. Utilisé en
// secours quand /me est injoignable juste après un login réussi.
func UsernameFromToken(tokenString string) (string, error) {
	claims, err := ParseToken(tokenString)
	if err != nil {
		return "", err
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", fmt.Errorf("claim sub manquant")
	}
	return sub, nil
}
