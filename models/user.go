package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleBarber   UserRole = "barber"
	RoleCustomer UserRole = "customer"
)

// User is a staff or customer account. Staff accounts with RoleBarber carry a
// BarberID linking them to the barber they may see bookings for.
type User struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	FullName     string         `json:"full_name" gorm:"type:varchar(100);not null"`
	Email        string         `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string         `json:"-" gorm:"type:varchar(255);not null"`
	Role         UserRole       `json:"role" gorm:"type:varchar(20);default:'customer';check:role IN ('admin','barber','customer')"`
	BarberID     *uint          `json:"barber_id"`
	IsActive     bool           `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`

	Barber *Barber `json:"barber,omitempty" gorm:"foreignKey:BarberID"`
}

func (User) TableName() string {
	return "users"
}
