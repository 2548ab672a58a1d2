package models

import (
	"time"

	"gorm.io/gorm"
)

// ContentType enumerates the kinds of links a user can save.
type ContentType string

const (
	ContentTypeTwitter ContentType = "twitter"
	ContentTypeYoutube ContentType = "youtube"
)

// Valid reports whether t is a supported content type.
func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeTwitter, ContentTypeYoutube:
		return true
	}
	return false
}

// Content is a saved link owned by exactly one user.
type Content struct {
	ID        string       `gorm:"primaryKey;size:32" json:"id"`
	Link      string       `gorm:"not null" json:"link"`
	Type      ContentType  `gorm:"size:16;not null" json:"type"`
	Title     string       `gorm:"not null" json:"title"`
	UserID    string       `gorm:"size:32;not null;index" json:"userId"`
	User      User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Tags      []ContentTag `gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE" json:"-"`
	TagIDs    []string     `gorm:"-" json:"tags"`
	CreatedAt time.Time    `json:"createdAt"`
}

// BeforeCreate assigns an identifier when none is set.
func (c *Content) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = NewID()
	}
	return nil
}

// ContentTag keeps the ordered tag list of a content row. TagID is not a
// foreign key: identifier-shaped tag references are stored as given.
type ContentTag struct {
	ContentID string `gorm:"primaryKey;size:32"`
	Position  int    `gorm:"primaryKey;autoIncrement:false"`
	TagID     string `gorm:"size:32;not null;index"`
}

// ContentDetail is a content row with its tags expanded to titles.
type ContentDetail struct {
	ID        string      `json:"id"`
	Link      string      `json:"link"`
	Type      ContentType `json:"type"`
	Title     string      `json:"title"`
	UserID    string      `json:"userId"`
	Tags      []Tag       `json:"tags"`
	CreatedAt time.Time   `json:"createdAt"`
}
