package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SalonID uint  `gorm:"index" json:"salon_id"`
	Salon   Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	ProfessionalID uint         `gorm:"index" json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"professional"`

	ClientID uint `json:"client_id"`

	// Snapshot do cliente no momento do agendamento (não re-join).
	ClientName  string `gorm:"size:100" json:"client_name"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`
	ClientEmail string `gorm:"size:100" json:"client_email"`

	// Wall clock do salão gravado como texto ("2006-01-02T15:04:05").
	// A extração de hora nominal lê os dígitos direto daqui.
	DataHora string `gorm:"size:25;index" json:"data_hora"`

	Status string `gorm:"size:20;default:'confirmado'" json:"status"`
	Notes  string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
