package models

import (
	"time"

	"gorm.io/gorm"
)

// Tag is a globally shared label. Titles are unique across the system.
type Tag struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	Title     string    `gorm:"uniqueIndex;not null" json:"title"`
	CreatedAt time.Time `json:"-"`
}

// BeforeCreate assigns an identifier when none is set.
func (t *Tag) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = NewID()
	}
	return nil
}
