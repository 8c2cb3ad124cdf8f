package models

import "time"

type Product struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:100;not null;unique"`
	Price       float64 `gorm:"not null"`
	ImageURL    string  `gorm:"size:255"`
	Description string  `gorm:"size:500"`
	IsFavorite  bool    `gorm:"not null;default:false"`
	CreatedAt   time.Time
}
