package gorm

import (
	"context"
	"errors"
	"fmt"

	"github.com/okorolev/skillswap/internal/app/swap"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type gormRepo struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *gormRepo {
	return &gormRepo{db: db}
}

func (r *gormRepo) CreateSwap(ctx context.Context, s swap.SwapRequest) (swap.SwapRequest, error) {
	model := fromDTO(s)
	model.ID = 0 // assigned by the database

	err := r.db.WithContext(ctx).Create(model).Error
	if err != nil {
		return swap.SwapRequest{}, fmt.Errorf("gormRepo.CreateSwap: %w", err)
	}

	return model.toDTO(), nil
}

func (r *gormRepo) GetSwap(ctx context.Context, id int64) (swap.SwapRequest, error) {
	model := swapModel{}

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = swap.ErrSwapNotFound()
		}
		return swap.SwapRequest{}, fmt.Errorf("gormRepo.GetSwap: %w", err)
	}

	return model.toDTO(), nil
}

func (r *gormRepo) ListByParticipant(ctx context.Context, userID int64) ([]swap.SwapRequest, error) {
	models := make([]swapModel, 0)

	err := r.db.WithContext(ctx).
		Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Order("id").Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("gormRepo.ListByParticipant: %w", err)
	}

	return lo.Map(models, func(s swapModel, _ int) swap.SwapRequest { return s.toDTO() }), nil
}

// UpdateStatus resolves the swap with a single guarded statement so two
// concurrent resolutions cannot both win.
func (r *gormRepo) UpdateStatus(ctx context.Context, id int64, status swap.Status) (swap.SwapRequest, error) {
	result := r.db.WithContext(ctx).Model(&swapModel{}).
		Where("id = ? AND status = ?", id, string(swap.StatusPending)).
		Update("status", string(status))
	if result.Error != nil {
		return swap.SwapRequest{}, fmt.Errorf("gormRepo.UpdateStatus: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// Distinguish a missing swap from one already resolved.
		s, err := r.GetSwap(ctx, id)
		if err != nil {
			return swap.SwapRequest{}, fmt.Errorf("gormRepo.UpdateStatus: %w", err)
		}
		if s.Status != swap.StatusPending {
			return swap.SwapRequest{}, fmt.Errorf("gormRepo.UpdateStatus: %w", swap.ErrSwapNotPending())
		}
		return swap.SwapRequest{}, fmt.Errorf("gormRepo.UpdateStatus: %w", swap.ErrSwapNotFound())
	}

	return r.GetSwap(ctx, id)
}
