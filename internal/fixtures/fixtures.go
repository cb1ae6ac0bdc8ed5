// Package fixtures seeds the demo data the original prototype shipped
// with: three members and two swap requests between them. Useful for
// local development and for the Postgres seed command.
package fixtures

import (
	"context"
	"fmt"
	"time"

	"github.com/okorolev/skillswap/internal/app/swap"
	"github.com/okorolev/skillswap/internal/app/user"
)

// demoPasswordHash is not a real bcrypt hash, so demo accounts cannot
// log in. Matches the placeholder the prototype seeded.
const demoPasswordHash = "$2a$10$hashedpassword"

type UserRepository interface {
	CreateUser(ctx context.Context, u user.User) (user.User, error)
}

type SwapRepository interface {
	CreateSwap(ctx context.Context, s swap.SwapRequest) (swap.SwapRequest, error)
}

func DemoUsers() []user.User {
	return []user.User{
		{
			Name:          "Sarah Johnson",
			Email:         "sarah@example.com",
			PasswordHash:  demoPasswordHash,
			Location:      "New York, NY",
			SkillsOffered: []string{"Web Development", "Graphic Design", "Photography"},
			SkillsWanted:  []string{"Cooking", "Spanish", "Yoga"},
			Availability:  "Weekends",
			Profile:       user.ProfilePublic,
			Rating:        4.8,
			ProfilePhoto:  "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
		},
		{
			Name:          "Mike Chen",
			Email:         "mike@example.com",
			PasswordHash:  demoPasswordHash,
			Location:      "San Francisco, CA",
			SkillsOffered: []string{"Cooking", "Guitar", "Mandarin"},
			SkillsWanted:  []string{"Web Development", "Photography", "Fitness Training"},
			Availability:  "Evenings",
			Profile:       user.ProfilePublic,
			Rating:        4.6,
			ProfilePhoto:  "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
		},
		{
			Name:          "Emma Davis",
			Email:         "emma@example.com",
			PasswordHash:  demoPasswordHash,
			Location:      "Austin, TX",
			SkillsOffered: []string{"Yoga", "Spanish", "Fitness Training"},
			SkillsWanted:  []string{"Graphic Design", "Guitar", "Cooking"},
			Availability:  "Weekdays",
			Profile:       user.ProfilePublic,
			Rating:        4.9,
			ProfilePhoto:  "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face",
		},
	}
}

// Load writes the demo set through the repositories so store-assigned
// ids stay consistent, and wires the two demo swaps to the created ids.
func Load(ctx context.Context, users UserRepository, swaps SwapRepository, now time.Time) error {
	created := make([]user.User, 0, 3)
	for _, u := range DemoUsers() {
		c, err := users.CreateUser(ctx, u)
		if err != nil {
			return fmt.Errorf("fixtures.Load: %w", err)
		}
		created = append(created, c)
	}

	demoSwaps := []swap.SwapRequest{
		{
			FromUserID: created[1].ID,
			ToUserID:   created[0].ID,
			FromSkill:  "Cooking",
			ToSkill:    "Web Development",
			Message:    "I'd love to learn web development! I can teach you some amazing recipes.",
			Status:     swap.StatusPending,
			CreatedAt:  now,
		},
		{
			FromUserID: created[2].ID,
			ToUserID:   created[0].ID,
			FromSkill:  "Yoga",
			ToSkill:    "Graphic Design",
			Message:    "Looking to improve my design skills. Happy to teach yoga in return!",
			Status:     swap.StatusAccepted,
			CreatedAt:  now,
		},
	}
	for _, s := range demoSwaps {
		if _, err := swaps.CreateSwap(ctx, s); err != nil {
			return fmt.Errorf("fixtures.Load: %w", err)
		}
	}

	return nil
}
