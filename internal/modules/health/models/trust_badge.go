package models

import "github.com/google/uuid"

// TrustBadge is one row of the trust_badges table. Everything but the name
// may be null.
type TrustBadge struct {
	ID          *uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string     `gorm:"type:text;not null" json:"name"`
	ImageURL    *string    `gorm:"type:text;column:image_url" json:"image_url"`
	Rating      *float64   `gorm:"type:numeric" json:"rating"`
	Description *string    `gorm:"type:text" json:"description"`
}

func (TrustBadge) TableName() string {
	return "trust_badges"
}
