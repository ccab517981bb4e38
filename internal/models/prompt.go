package models

import "time"

// Prompt is a stored prompt record. Records are append-only.
type Prompt struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title      string    `gorm:"type:text;not null" json:"title"`
	PromptText string    `gorm:"type:text;not null" json:"prompt_text"`
	Purpose    string    `gorm:"type:text;not null" json:"purpose"`
	Tags       Tags      `gorm:"type:text" json:"tags"`
	Source     *string   `gorm:"type:text" json:"source"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

func (Prompt) TableName() string {
	return "prompts"
}
