package models

import (
	"time"

	"gorm.io/gorm"
)

// Signup represents one entrant's registration against a Match.
//
// The pair (IsWaiting, MealOnly) partitions a match's signups into three
// lists: active players, the waiting list, and meal-only attendance. A
// meal-only record never waits and never counts against PlayerLimit.
type Signup struct {
	gorm.Model
	MatchID    uint   `gorm:"not null;index"`
	PlayerName string `gorm:"size:255;not null"`

	// PlayerID links to a known roster member; nil for ad hoc guests.
	PlayerID *uint `gorm:"index"`
	IsGuest  bool  `gorm:"not null;default:false"`

	IsWaiting bool `gorm:"not null;default:false;index"`
	MealOnly  bool `gorm:"not null;default:false"`
	HasMeal   bool `gorm:"not null;default:false"`

	// Positions are the entrant's self-declared field positions,
	// normalized to the canonical set before they reach the database.
	Positions []Position `gorm:"serializer:json"`

	// OrderRank sorts signups within one (IsWaiting, MealOnly) partition
	// of a match; lower rank comes first. Ties break on SignupTime, then ID.
	OrderRank  int       `gorm:"not null;default:0"`
	SignupTime time.Time `gorm:"not null"`

	Player *Player `gorm:"foreignKey:PlayerID"`
}
