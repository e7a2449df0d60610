package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TourModel mirrors the 'tours' table. Images and start dates are stored as JSON arrays.
type TourModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"type:varchar(40);uniqueIndex;not null"`
	Slug            string    `gorm:"type:varchar(60);index"`
	Duration        int       `gorm:"not null"`
	MaxGroupSize    int       `gorm:"not null"`
	Difficulty      string    `gorm:"type:varchar(20);not null"`
	RatingsAverage  float64   `gorm:"not null;default:4.5"`
	RatingsQuantity int       `gorm:"not null;default:0"`
	Price           float64   `gorm:"not null"`
	PriceDiscount   *float64
	Summary         string      `gorm:"type:text;not null"`
	Description     string      `gorm:"type:text"`
	ImageCover      string      `gorm:"type:varchar(255);not null"`
	Images          []string    `gorm:"type:jsonb;serializer:json"`
	StartDates      []time.Time `gorm:"type:jsonb;serializer:json"`
	SecretTour      bool        `gorm:"not null;default:false"`
	CreatedAt       time.Time   `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (TourModel) TableName() string {
	return "tours"
}

// BeforeCreate assigns a time-ordered id when none is set.
func (m *TourModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID != uuid.Nil {
		return nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	m.ID = id

	return nil
}
