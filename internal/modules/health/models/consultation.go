package models

const AnonymousUserID = "anonymous"

// Consultation is the audit row written for every chat turn. It is never
// read back by this service.
type Consultation struct {
	UserID     string `gorm:"type:text;not null;column:user_id" json:"user_id"`
	Prompt     string `gorm:"type:text" json:"prompt"`
	AIResponse string `gorm:"type:text;column:ai_response" json:"ai_response"`
}

func (Consultation) TableName() string {
	return "consultations"
}
