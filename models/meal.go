package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// One logged meal. The owner never changes after creation.
type Meal struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"size:1000;not null" json:"description"`
	MealDate    time.Time `gorm:"not null" json:"meal_date"`
	OnDiet      bool      `gorm:"not null" json:"on_diet"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (m *Meal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
