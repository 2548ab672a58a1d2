package models

import (
	"time"

	"gorm.io/gorm"
)

// Link is a public share link. Each user has at most one.
type Link struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	Hash      string    `gorm:"uniqueIndex;size:64;not null" json:"hash"`
	UserID    string    `gorm:"uniqueIndex;size:32;not null" json:"userId"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// BeforeCreate assigns an identifier when none is set.
func (l *Link) BeforeCreate(*gorm.DB) error {
	if l.ID == "" {
		l.ID = NewID()
	}
	return nil
}
