package supabase

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt"
	jwtv5 "github.com/golang-jwt/jwt/v5"
)

func GenerateTestJWT(userID string) (string, error) {
	secret := os.Getenv("SUPABASE_JWT_SECRET")

	claims := jwt.MapClaims{
		"sub":  userID,
		"aud":  "authenticated",
		"role": "authenticated",
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyTestJWT checks the signature of a locally issued token and
// returns its subject.
func VerifyTestJWT(tokenString string) (string, error) {
	secret := os.Getenv("SUPABASE_JWT_SECRET")

	token, err := jwtv5.Parse(tokenString, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", fmt.Errorf("missing sub in token")
	}
	return sub, nil
}
