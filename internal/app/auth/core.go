package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/okorolev/skillswap/internal/app/user"
	"github.com/okorolev/skillswap/internal/infrastructure/apperr"
	"github.com/okorolev/skillswap/internal/infrastructure/secure"
)

const (
	FieldUserID apperr.Field = "user_id"
	FieldMode   apperr.Field = "mode"
)

type UserProvider interface {
	GetUser(ctx context.Context, id int64) (user.User, error)
	GetUserByEmail(ctx context.Context, email string) (user.User, error)
}

type PasswordChecker interface {
	CheckPasswordHash(password []byte, hash string) error
}

type TokenCodec interface {
	GenerateToken(claims jwt.Claims) (string, error)
	ParseToken(tokenStr string, claims jwt.Claims) error
}

type UUIDGenerator interface {
	New() (uuid.UUID, error)
}

type TimeGenerator interface {
	Now() time.Time
}

type generators struct {
	idGenerator   UUIDGenerator
	timeGenerator TimeGenerator
}

type Config struct {
	Mode                  Mode `mapstructure:"mode" json:"mode"`
	AccessTokenTTLMinutes int  `mapstructure:"access_token_ttl_minutes" json:"access_token_ttl_minutes"`
}

type core struct {
	users      UserProvider
	passwords  PasswordChecker
	codec      TokenCodec
	generators generators
	cfg        Config
}

func NewCore(users UserProvider, passwords PasswordChecker, codec TokenCodec, idGenerator UUIDGenerator, timeGenerator TimeGenerator, cfg Config) *core {
	if err := cfg.Mode.Validate(); err != nil {
		panic("auth.core: invalid config: " + err.Error())
	}
	if cfg.Mode == ModeJWT && cfg.AccessTokenTTLMinutes <= 0 {
		panic("auth.core: invalid config")
	}
	if users == nil || passwords == nil || codec == nil || idGenerator == nil || timeGenerator == nil {
		panic("auth.core: nil dependency")
	}

	return &core{
		users:      users,
		passwords:  passwords,
		codec:      codec,
		generators: generators{idGenerator, timeGenerator},
		cfg:        cfg,
	}
}

// Login checks the credentials and issues an access token. Every
// non-internal failure collapses into ErrInvalidCredentials.
func (c *core) Login(ctx context.Context, creds Credentials) (user.User, string, error) {
	defer secure.ZeroBytes(creds.Password)

	u, err := c.users.GetUserByEmail(ctx, creds.Email)
	if err != nil {
		if apperr.ClassOf(err) == apperr.ClassInternal {
			return user.User{}, "", fmt.Errorf("auth.core.Login: %w", err)
		}
		return user.User{}, "", fmt.Errorf("auth.core.Login: %w", ErrInvalidCredentials())
	}

	if err = c.passwords.CheckPasswordHash(creds.Password, u.PasswordHash); err != nil {
		if errors.Is(err, secure.ErrMismatchedHashAndPassword) {
			return user.User{}, "", fmt.Errorf("auth.core.Login: %w", ErrInvalidCredentials())
		}
		return user.User{}, "", fmt.Errorf("auth.core.Login: %w", err)
	}

	token, err := c.IssueToken(u.ID)
	if err != nil {
		return user.User{}, "", fmt.Errorf("auth.core.Login: %w", err)
	}

	return u, token, nil
}

// IssueToken builds the bearer token for the given user. In legacy mode
// the token is the decimal user id, matching what the original web
// client stores and replays.
func (c *core) IssueToken(userID int64) (string, error) {
	if userID <= 0 {
		return "", fmt.Errorf("auth.core.IssueToken: %w", apperr.ErrInvalidID(FieldUserID))
	}

	if c.cfg.Mode == ModeLegacy {
		return strconv.FormatInt(userID, 10), nil
	}

	jti, err := c.generators.idGenerator.New()
	if err != nil {
		return "", fmt.Errorf("auth.core.IssueToken: %w", err)
	}

	now := c.generators.timeGenerator.Now()
	token, err := c.codec.GenerateToken(AccessTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ID:        jti.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(c.cfg.AccessTokenTTLMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	if err != nil {
		return "", fmt.Errorf("auth.core.IssueToken: %w", err)
	}

	return token, nil
}

// Authenticate resolves the caller behind a bearer token and user-id
// header pair. The middleware has already rejected requests without a
// token; everything that fails here is a 403.
func (c *core) Authenticate(ctx context.Context, token, userIDHeader string) (user.User, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(userIDHeader), 10, 64)
	if err != nil || id <= 0 {
		return user.User{}, fmt.Errorf("auth.core.Authenticate: %w", ErrInvalidToken())
	}

	if c.cfg.Mode == ModeJWT {
		claims := AccessTokenClaims{}
		if err = c.codec.ParseToken(token, &claims); err != nil {
			return user.User{}, fmt.Errorf("auth.core.Authenticate: %w", ErrInvalidToken())
		}
		if claims.Subject != strconv.FormatInt(id, 10) {
			return user.User{}, fmt.Errorf("auth.core.Authenticate: %w", ErrInvalidToken())
		}
	}

	u, err := c.users.GetUser(ctx, id)
	if err != nil {
		if apperr.ClassOf(err) == apperr.ClassInternal {
			return user.User{}, fmt.Errorf("auth.core.Authenticate: %w", err)
		}
		return user.User{}, fmt.Errorf("auth.core.Authenticate: %w", ErrInvalidToken())
	}

	return u, nil
}
