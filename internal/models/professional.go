package models

import "time"

type Professional struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Role   string `gorm:"size:50" json:"role"`
	Avatar string `gorm:"size:255" json:"avatar"`
	Active bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
