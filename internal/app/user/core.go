package user

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/okorolev/skillswap/internal/infrastructure/apperr"
	"github.com/samber/lo"
	"golang.org/x/crypto/bcrypt"
)

// avatarURLFormat mirrors the generator the web client expects when a
// registrant does not upload a photo.
const avatarURLFormat = "https://ui-avatars.com/api/?name=%s&background=0ea5e9&color=fff&size=150"

type Repository interface {
	CreateUser(ctx context.Context, u User) (User, error)
	GetUser(ctx context.Context, id int64) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	ListUsers(ctx context.Context) ([]User, error)
	UpdateUser(ctx context.Context, req UpdateUserReq) (User, error)
}

type PasswordHasher interface {
	HashPassword(password []byte, cost int) ([]byte, error)
}

type Validator interface {
	ValidatePassword(password []byte) error
	ValidateEmail(address string, validateLength bool) error
	ValidateName(name string) error
	ValidateProfile(profile Profile) error
	NormalizeName(name string) string
	NormalizeEmail(address string) string
}

type Config struct {
	PasswordHashCost int `mapstructure:"password_hash_cost" json:"password_hash_cost"`
}

type core struct {
	repo           Repository
	passwordHasher PasswordHasher
	validator      Validator
	cfg            Config
}

func NewCore(repo Repository, passwordHasher PasswordHasher, validator Validator, cfg Config) (*core, error) {
	if cfg.PasswordHashCost < bcrypt.MinCost || cfg.PasswordHashCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("user.NewCore: %w", fmt.Errorf("Config.PasswordHashCost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}
	if repo == nil || passwordHasher == nil || validator == nil {
		return nil, fmt.Errorf("user.NewCore: %w", fmt.Errorf("nil dependency"))
	}

	return &core{repo: repo, passwordHasher: passwordHasher, validator: validator, cfg: cfg}, nil
}

// CreateUser registers a new member. New accounts always start with an
// empty skill list, a public profile and a zero rating; the rating is
// never writable through the API afterwards.
func (c *core) CreateUser(ctx context.Context, req CreateUserReq) (User, error) {
	req.Name = c.validator.NormalizeName(req.Name)
	if err := c.validator.ValidateName(req.Name); err != nil {
		return User{}, fmt.Errorf("user.core.CreateUser: %w", err)
	}
	req.Email = c.validator.NormalizeEmail(req.Email)
	if err := c.validator.ValidateEmail(req.Email, true); err != nil {
		return User{}, fmt.Errorf("user.core.CreateUser: %w", err)
	}
	if err := c.validator.ValidatePassword(req.Password); err != nil {
		return User{}, fmt.Errorf("user.core.CreateUser: %w", err)
	}

	// Uniqueness is the registration flow's responsibility; the postgres
	// backend repeats the check with a unique index.
	_, err := c.repo.GetUserByEmail(ctx, req.Email)
	if err == nil {
		return User{}, fmt.Errorf("user.core.CreateUser: %w", ErrUserWithEmailAlreadyExists())
	}
	if !errors.Is(err, ErrUserNotFound()) {
		return User{}, fmt.Errorf("user.core.CreateUser: %w", err)
	}

	passwordHash, err := c.passwordHasher.HashPassword(req.Password, c.cfg.PasswordHashCost)
	if err != nil {
		return User{}, fmt.Errorf("user.core.CreateUser: %w", err)
	}

	photo := strings.TrimSpace(req.ProfilePhoto)
	if photo == "" {
		photo = DefaultAvatarURL(req.Name)
	}

	created, err := c.repo.CreateUser(ctx, User{
		Name:          req.Name,
		Email:         req.Email,
		PasswordHash:  string(passwordHash),
		Location:      req.Location,
		SkillsOffered: []string{},
		SkillsWanted:  []string{},
		Availability:  "",
		Profile:       ProfilePublic,
		Rating:        0,
		ProfilePhoto:  photo,
	})
	if err != nil {
		return User{}, fmt.Errorf("user.core.CreateUser: %w", err)
	}

	return created, nil
}

// GetUser returns the user by id regardless of profile visibility.
// Visibility only filters the public listing; direct links keep working
// for private profiles.
func (c *core) GetUser(ctx context.Context, id int64) (User, error) {
	if id <= 0 {
		return User{}, fmt.Errorf("user.core.GetUser: %w", apperr.ErrInvalidID(FieldUserID))
	}

	u, err := c.repo.GetUser(ctx, id)
	if err != nil {
		return User{}, fmt.Errorf("user.core.GetUser: %w", err)
	}

	return u, nil
}

func (c *core) GetUserByEmail(ctx context.Context, email string) (User, error) {
	email = c.validator.NormalizeEmail(email)
	if err := c.validator.ValidateEmail(email, false); err != nil {
		return User{}, fmt.Errorf("user.core.GetUserByEmail: %w", err)
	}

	u, err := c.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return User{}, fmt.Errorf("user.core.GetUserByEmail: %w", err)
	}
	return u, nil
}

// ListPublicUsers scans the whole store and keeps public profiles only.
func (c *core) ListPublicUsers(ctx context.Context) ([]User, error) {
	users, err := c.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.core.ListPublicUsers: %w", err)
	}

	return lo.Filter(users, func(u User, _ int) bool { return u.Profile == ProfilePublic }), nil
}

func (c *core) UpdateUser(ctx context.Context, req UpdateUserReq) (User, error) {
	if req.UserID <= 0 {
		return User{}, fmt.Errorf("user.core.UpdateUser: %w", apperr.ErrInvalidID(FieldUserID))
	}
	req.Name = c.validator.NormalizeName(req.Name)
	if req.Name != "" {
		if err := c.validator.ValidateName(req.Name); err != nil {
			return User{}, fmt.Errorf("user.core.UpdateUser: %w", err)
		}
	}
	if req.Profile != "" {
		if err := c.validator.ValidateProfile(req.Profile); err != nil {
			return User{}, fmt.Errorf("user.core.UpdateUser: %w", err)
		}
	}

	u, err := c.repo.UpdateUser(ctx, req)
	if err != nil {
		return User{}, fmt.Errorf("user.core.UpdateUser: %w", err)
	}

	return u, nil
}

// DefaultAvatarURL builds the generated-avatar URL used when a
// registrant supplies no photo. Deterministic for a given name.
func DefaultAvatarURL(name string) string {
	return fmt.Sprintf(avatarURLFormat, url.QueryEscape(name))
}

type ValidationConfig struct {
	MaxEmailLength    int `mapstructure:"max_email_length" json:"max_email_length"`
	MaxNameLength     int `mapstructure:"max_name_length" json:"max_name_length"`
	MinPasswordLength int `mapstructure:"min_password_length" json:"min_password_length"`
	MaxPasswordLength int `mapstructure:"max_password_length" json:"max_password_length"`
}

type validator struct {
	cfg ValidationConfig
}

func NewValidator(cfg ValidationConfig) (Validator, error) {
	if cfg.MaxEmailLength <= 0 {
		return nil, fmt.Errorf("NewValidator: %w", fmt.Errorf("ValidationConfig.MaxEmailLength must be > 0"))
	}
	if cfg.MaxNameLength <= 0 {
		return nil, fmt.Errorf("NewValidator: %w", fmt.Errorf("ValidationConfig.MaxNameLength must be > 0"))
	}
	if cfg.MinPasswordLength <= 0 {
		return nil, fmt.Errorf("NewValidator: %w", fmt.Errorf("ValidationConfig.MinPasswordLength must be > 0"))
	}
	if cfg.MaxPasswordLength < cfg.MinPasswordLength {
		return nil, fmt.Errorf("NewValidator: %w", fmt.Errorf("ValidationConfig.MaxPasswordLength must be >= MinPasswordLength"))
	}
	if cfg.MaxPasswordLength > 72 {
		return nil, fmt.Errorf("NewValidator: %w", fmt.Errorf("ValidationConfig.MaxPasswordLength must be > 0 and <= 72"))
	}

	return &validator{cfg: cfg}, nil
}

func (v *validator) ValidatePassword(password []byte) error {
	n := utf8.RuneCount(password)
	if n < v.cfg.MinPasswordLength {
		return fmt.Errorf("ValidatePassword: %w", ErrPasswordTooShort(v.cfg.MinPasswordLength))
	}
	if n > v.cfg.MaxPasswordLength {
		return fmt.Errorf("ValidatePassword: %w", ErrPasswordTooLong(v.cfg.MaxPasswordLength))
	}
	return nil
}

func (v *validator) ValidateEmail(address string, validateLength bool) error {
	_, err := mail.ParseAddress(address)
	if err != nil {
		return fmt.Errorf("ValidateEmail: %w", ErrInvalidEmail())
	}
	if validateLength && len(address) > v.cfg.MaxEmailLength {
		return fmt.Errorf("ValidateEmail: %w", ErrEmailTooLong(v.cfg.MaxEmailLength))
	}
	return nil
}

func (v *validator) ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("ValidateName: %w", ErrNameEmpty())
	}
	if len(name) > v.cfg.MaxNameLength {
		return fmt.Errorf("ValidateName: %w", ErrNameTooLong(v.cfg.MaxNameLength))
	}
	return nil
}

func (v *validator) ValidateProfile(profile Profile) error {
	switch profile {
	case ProfilePublic, ProfilePrivate:
		return nil
	default:
		return fmt.Errorf("ValidateProfile: %w", ErrInvalidProfile())
	}
}

func (v *validator) NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

func (v *validator) NormalizeEmail(address string) string {
	return strings.TrimSpace(strings.ToLower(address))
}
