package domain

import "time"

// User is the domain entity for a user account.
// The username is recorded as the author in audit fields.
type User struct {
	ID           int64  `gorm:"primaryKey"`
	Username     string `gorm:"size:120;not null;uniqueIndex"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}

func (User) TableName() string { return "users" }
