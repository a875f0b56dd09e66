package models

import "github.com/google/uuid"

// FAQ is one row of the faqs table
type FAQ struct {
	ID       *uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Question string     `gorm:"type:text;not null" json:"question"`
	Answer   string     `gorm:"type:text;not null" json:"answer"`
}

// TableName specifies the table name
func (FAQ) TableName() string {
	return "faqs"
}
