package branding

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("branding: header details not configured")

// HeaderDetails is a singleton row (id 1), created once and updated in
// place. Every page reads it on load.
type HeaderDetails struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"-"`
	CompanyName  string    `gorm:"size:255" json:"company_name"`
	Address      string    `gorm:"type:text" json:"address"`
	ContactEmail string    `gorm:"size:255" json:"contact_email"`
	LogoURL      string    `gorm:"size:512;column:logo_url" json:"logo_url"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (HeaderDetails) TableName() string { return "header_details" }
