package models

import (
	"time"

	"gorm.io/gorm"
)

// Match represents one scheduled game with a capacity-limited roster.
type Match struct {
	gorm.Model
	GroupName    string    `gorm:"size:255;not null"`
	DateTime     time.Time `gorm:"not null"`
	LocationName string    `gorm:"size:255;not null"`
	PlayerLimit  int       `gorm:"not null"`

	// ShareCode is the opaque token embedded in the public signup link.
	ShareCode string `gorm:"size:64;unique;not null;index"`

	// OrganizerHash holds the bcrypt hash of the optional organizer
	// passphrase, used to re-issue a management token. Empty when the
	// organizer set no passphrase.
	OrganizerHash string `gorm:"size:255"`

	Signups []Signup `gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
}
