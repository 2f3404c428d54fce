package models

import "time"

// Bloqueio pontual de agenda: um profissional, um dia, intervalo [start, end).
type BlockedSlot struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	SalonID        uint `gorm:"index" json:"salon_id"`
	ProfessionalID uint `gorm:"index" json:"professional_id"`

	Date      string `gorm:"size:10;index" json:"date"`  // YYYY-MM-DD
	StartTime string `gorm:"size:5" json:"start_time"`   // HH:mm
	EndTime   string `gorm:"size:5" json:"end_time"`     // HH:mm
	Reason    string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
