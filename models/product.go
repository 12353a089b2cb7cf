package models

import (
	"time"

	"gorm.io/gorm"
)

// Category groups shop products (pomades, shampoos, ...).
type Category struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"type:varchar(100);not null"`
	Slug      string         `json:"slug" gorm:"type:varchar(100);uniqueIndex;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

func (Category) TableName() string {
	return "categories"
}

// Product is a shop catalog row.
type Product struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"type:varchar(200);not null"`
	CategoryID  uint           `json:"category_id" gorm:"not null;index"`
	Price       float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	ImageURL    string         `json:"image_url" gorm:"type:varchar(500)"`
	Description string         `json:"description" gorm:"type:text"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`

	Category Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

func (Product) TableName() string {
	return "products"
}

// ProductRequest is the payload for creating or updating a product.
type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	CategoryID  uint    `json:"category_id" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	ImageURL    string  `json:"image_url"`
	Description string  `json:"description"`
}
