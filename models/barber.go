package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultCommissionRate applies when a barber has no commission rate set.
const DefaultCommissionRate = 50.0

// Barber is a staff member customers can book appointments with.
type Barber struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Name           string         `json:"name" gorm:"type:varchar(100);not null"`
	Slug           string         `json:"slug" gorm:"type:varchar(100);uniqueIndex;not null"`
	Title          string         `json:"title" gorm:"type:varchar(100)"`
	Bio            string         `json:"bio" gorm:"type:text"`
	ImageURL       string         `json:"image_url" gorm:"type:varchar(500)"`
	CommissionRate *float64       `json:"commission_rate" gorm:"type:decimal(5,2)"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// EffectiveCommissionRate returns the barber's commission percentage,
// defaulting to 50 when none is set.
func (b *Barber) EffectiveCommissionRate() float64 {
	if b.CommissionRate == nil {
		return DefaultCommissionRate
	}
	return *b.CommissionRate
}

func (Barber) TableName() string {
	return "barbers"
}

// BarberRequest is the payload for creating or updating a barber.
type BarberRequest struct {
	Name           string   `json:"name" binding:"required"`
	Slug           string   `json:"slug"`
	Title          string   `json:"title"`
	Bio            string   `json:"bio"`
	ImageURL       string   `json:"image_url"`
	CommissionRate *float64 `json:"commission_rate"`
}
