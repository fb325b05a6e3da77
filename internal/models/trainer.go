package models

import "time"

// Trainer is the trainer directory record. Profile data lives with the
// profile collaborator; only what scheduling needs is kept here.
type Trainer struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"size:100;not null" json:"name"`
	Email  string `gorm:"size:100;index" json:"email"`
	Active bool   `gorm:"not null" json:"active"`

	Days []TrainerDay `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"days,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TrainerDay is one weekday entry of a trainer's recurring schedule.
type TrainerDay struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	TrainerID uint `gorm:"uniqueIndex:idx_trainer_weekday;not null" json:"trainer_id"`

	Weekday   int  `gorm:"uniqueIndex:idx_trainer_weekday;not null" json:"weekday"`
	Available bool `json:"available"`

	WorkingHours []TimeRange `gorm:"type:jsonb;serializer:json" json:"working_hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
