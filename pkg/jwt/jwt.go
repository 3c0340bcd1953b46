package jwt

import (
	"fmt"
	"time"

	"matchday/backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateMatchToken creates the management token handed to a match's
// organizer at creation time. It is scoped to that single match.
func GenerateMatchToken(matchID uint) (string, error) {
	claims := jwt.MapClaims{
		"match": matchID,
		"exp":   time.Now().Add(time.Hour * 24 * 30).Unix(), // Token expires in 30 days
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// ParseMatchToken validates a management token and returns the match ID it
// is scoped to.
func ParseMatchToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid token")
	}
	matchIDFloat, ok := claims["match"].(float64)
	if !ok {
		return 0, fmt.Errorf("token has no match claim")
	}
	return uint(matchIDFloat), nil
}
