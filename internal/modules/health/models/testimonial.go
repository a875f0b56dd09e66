package models

import "github.com/google/uuid"

const DefaultTestimonialRating = 5

// Testimonial is one row of the testimonials table.
type Testimonial struct {
	ID          *uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string     `gorm:"type:text;not null" json:"name"`
	Title       string     `gorm:"type:text" json:"title"`
	Quote       string     `gorm:"type:text" json:"quote"`
	ImageURL    string     `gorm:"type:text;column:image_url" json:"image_url"`
	Feature     string     `gorm:"type:text" json:"feature"`
	FeatureIcon string     `gorm:"type:text;column:feature_icon" json:"feature_icon"`
	Color       string     `gorm:"type:text" json:"color"`
	Rating      *int       `gorm:"type:integer;default:5" json:"rating"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}

// WithDefaults fills the rating when the store has none.
func (t Testimonial) WithDefaults() Testimonial {
	if t.Rating == nil {
		rating := DefaultTestimonialRating
		t.Rating = &rating
	}
	return t
}
