package gorm

import (
	"github.com/okorolev/skillswap/internal/app/user"
	"github.com/okorolev/skillswap/internal/infrastructure/db"
)

type userModel struct {
	db.Base
	ID            int64 `gorm:"primaryKey"`
	Name          string
	Email         string
	PasswordHash  string `json:"-"`
	Location      string
	SkillsOffered db.StringList `gorm:"type:jsonb"`
	SkillsWanted  db.StringList `gorm:"type:jsonb"`
	Availability  string
	Profile       string
	Rating        float64
	ProfilePhoto  string
}

func (userModel) TableName() string { return "users" }

func (u *userModel) toDTO() user.User {
	return user.User{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		PasswordHash:  u.PasswordHash,
		Location:      u.Location,
		SkillsOffered: u.SkillsOffered,
		SkillsWanted:  u.SkillsWanted,
		Availability:  u.Availability,
		Profile:       user.Profile(u.Profile),
		Rating:        u.Rating,
		ProfilePhoto:  u.ProfilePhoto,
	}
}

func fromDTO(u user.User) *userModel {
	return &userModel{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		PasswordHash:  u.PasswordHash,
		Location:      u.Location,
		SkillsOffered: db.StringList(u.SkillsOffered),
		SkillsWanted:  db.StringList(u.SkillsWanted),
		Availability:  u.Availability,
		Profile:       string(u.Profile),
		Rating:        u.Rating,
		ProfilePhoto:  u.ProfilePhoto,
	}
}
