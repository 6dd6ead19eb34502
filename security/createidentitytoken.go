package security

import (
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type OperatorIdentity struct {
	Id       int
	UserName string
	Location string
	Email    string
}

type Identity struct {
	ID         int    `json:"nameid"`
	UniqueName string `json:"unique_name"`
	Email      string `json:"email"`
	SID        string `json:"sid"`
	Location   string `json:"location"`
}

type IdentityClaims struct {
	Identity
	jwt.RegisteredClaims
}

// CreateIdentityToken mints the HS256 token a register or back-office
// operator presents to the API. The secret is shared with the middleware
// and stored base64-encoded.
func CreateIdentityToken(identity *OperatorIdentity, base64Secret string, expiresInSeconds int64) (string, error) {
	secretBytes, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return "", err
	}
	claims := IdentityClaims{
		Identity: Identity{
			ID:         identity.Id,
			UniqueName: identity.UserName,
			Email:      identity.Email,
			SID:        "kasira-deviceId",
			Location:   identity.Location,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "kasira",
			Audience:  []string{"*.kasira.net"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expiresInSeconds) * time.Second)),
		},
	}

	// Use HS256 signing method (symmetric key)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secretBytes))
}
