package models

import "gorm.io/gorm"

// Player is a known roster member an entrant can sign up as, carrying the
// skill profile the AI team generator feeds into its prompt. Ratings run
// from 1 to 10.
type Player struct {
	gorm.Model
	Name              string   `gorm:"size:255;unique;not null"`
	PrimaryPosition   Position `gorm:"size:32"`
	SecondaryPosition Position `gorm:"size:32"`
	Speed             int      `gorm:"not null;default:5"`
	Control           int      `gorm:"not null;default:5"`
	PhysicalCondition int      `gorm:"not null;default:5"`
	Attitude          int      `gorm:"not null;default:5"`
}

// OverallRating averages the four skill attributes, rounded to nearest.
func (p Player) OverallRating() int {
	return (p.Speed + p.Control + p.PhysicalCondition + p.Attitude + 2) / 4
}
