package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Mode selects how bearer tokens are issued and checked.
//
// ModeLegacy keeps the original wire contract: the token is the numeric
// user id and its content is never verified, only its presence; the
// caller is identified by the user-id header. ModeJWT issues signed
// HS256 tokens and requires the token subject to match the header.
type Mode string

const (
	ModeLegacy Mode = "legacy"
	ModeJWT    Mode = "jwt"
)

func (m Mode) Validate() error {
	switch m {
	case ModeLegacy, ModeJWT:
		return nil
	default:
		return fmt.Errorf("auth.Mode.Validate: unknown mode %q", string(m))
	}
}

type Credentials struct {
	Email    string `json:"email"`
	Password []byte `json:"-"`
}

type AccessTokenClaims struct {
	jwt.RegisteredClaims
}
