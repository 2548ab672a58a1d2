// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User is an account that owns content and at most one share link.
type User struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:10;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// BeforeCreate assigns an identifier when none is set.
func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = NewID()
	}
	return nil
}
