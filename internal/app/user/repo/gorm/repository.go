package gorm

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/okorolev/skillswap/internal/app/user"
	"github.com/okorolev/skillswap/internal/infrastructure/db"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type gormRepo struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *gormRepo {
	return &gormRepo{db: db}
}

func (r *gormRepo) CreateUser(ctx context.Context, u user.User) (user.User, error) {
	model := fromDTO(u)
	model.ID = 0 // assigned by the database

	err := r.db.WithContext(ctx).Create(model).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == db.DuplicateCode {
			err = user.ErrUserWithEmailAlreadyExists()
		}
		return user.User{}, fmt.Errorf("gormRepo.CreateUser: %w", err)
	}

	return model.toDTO(), nil
}

func (r *gormRepo) GetUser(ctx context.Context, id int64) (user.User, error) {
	model := userModel{}

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = user.ErrUserNotFound()
		}
		return user.User{}, fmt.Errorf("gormRepo.GetUser: %w", err)
	}

	return model.toDTO(), nil
}

func (r *gormRepo) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	model := userModel{}

	err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = user.ErrUserNotFound()
		}
		return user.User{}, fmt.Errorf("gormRepo.GetUserByEmail: %w", err)
	}

	return model.toDTO(), nil
}

func (r *gormRepo) ListUsers(ctx context.Context) ([]user.User, error) {
	models := make([]userModel, 0)

	err := r.db.WithContext(ctx).Order("id").Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("gormRepo.ListUsers: %w", err)
	}

	return lo.Map(models, func(u userModel, _ int) user.User { return u.toDTO() }), nil
}

func (r *gormRepo) UpdateUser(ctx context.Context, req user.UpdateUserReq) (user.User, error) {
	changes := map[string]any{}
	if req.Name != "" {
		changes["name"] = req.Name
	}
	if req.Location != "" {
		changes["location"] = req.Location
	}
	if len(req.SkillsOffered) > 0 {
		changes["skills_offered"] = db.StringList(req.SkillsOffered)
	}
	if len(req.SkillsWanted) > 0 {
		changes["skills_wanted"] = db.StringList(req.SkillsWanted)
	}
	if req.Availability != "" {
		changes["availability"] = req.Availability
	}
	if req.Profile != "" {
		changes["profile"] = string(req.Profile)
	}
	if req.ProfilePhoto != "" {
		changes["profile_photo"] = req.ProfilePhoto
	}

	// A request with nothing to change still has to 404 on unknown ids.
	if len(changes) == 0 {
		return r.GetUser(ctx, req.UserID)
	}

	result := r.db.WithContext(ctx).Model(&userModel{}).Where("id = ?", req.UserID).Updates(changes)
	if result.Error != nil {
		return user.User{}, fmt.Errorf("gormRepo.UpdateUser: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.User{}, fmt.Errorf("gormRepo.UpdateUser: %w", user.ErrUserNotFound())
	}

	return r.GetUser(ctx, req.UserID)
}
