package gorm

import (
	"time"

	"github.com/okorolev/skillswap/internal/app/swap"
)

type swapModel struct {
	ID         int64 `gorm:"primaryKey"`
	FromUserID int64
	ToUserID   int64
	FromSkill  string
	ToSkill    string
	Message    string
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (swapModel) TableName() string { return "swap_requests" }

func (s *swapModel) toDTO() swap.SwapRequest {
	return swap.SwapRequest{
		ID:         s.ID,
		FromUserID: s.FromUserID,
		ToUserID:   s.ToUserID,
		FromSkill:  s.FromSkill,
		ToSkill:    s.ToSkill,
		Message:    s.Message,
		Status:     swap.Status(s.Status),
		CreatedAt:  s.CreatedAt,
	}
}

func fromDTO(s swap.SwapRequest) *swapModel {
	return &swapModel{
		ID:         s.ID,
		FromUserID: s.FromUserID,
		ToUserID:   s.ToUserID,
		FromSkill:  s.FromSkill,
		ToSkill:    s.ToSkill,
		Message:    s.Message,
		Status:     string(s.Status),
		CreatedAt:  s.CreatedAt,
	}
}
