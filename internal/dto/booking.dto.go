package dto

import (
	domain "github.com/BelezaStudio/salon-agenda-api/internal/domain/booking"
	"github.com/BelezaStudio/salon-agenda-api/internal/models"
)

type BookingDTO struct {
	ID               uint   `json:"id"`
	ConfirmationCode string `json:"confirmation_code"`
	SalonID          uint   `json:"salon_id"`
	ServiceID        uint   `json:"service_id"`
	ServiceName      string `json:"service_name,omitempty"`
	ProfessionalID   uint   `json:"professional_id"`
	ProfessionalName string `json:"professional_name,omitempty"`
	ClientName       string `json:"client_name"`
	ClientPhone      string `json:"client_phone"`
	ClientEmail      string `json:"client_email"`
	DataHora         string `json:"data_hora"`
	Status           string `json:"status"`
	Notes            string `json:"notes,omitempty"`
}

func FromAppointment(ap *models.Appointment) BookingDTO {
	return BookingDTO{
		ID:               ap.ID,
		ConfirmationCode: domain.Code(ap.ID),
		SalonID:          ap.SalonID,
		ServiceID:        ap.ServiceID,
		ServiceName:      ap.Service.Name,
		ProfessionalID:   ap.ProfessionalID,
		ProfessionalName: ap.Professional.Name,
		ClientName:       ap.ClientName,
		ClientPhone:      ap.ClientPhone,
		ClientEmail:      ap.ClientEmail,
		DataHora:         ap.DataHora,
		Status:           ap.Status,
		Notes:            ap.Notes,
	}
}

type ClientDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func FromClient(cl *models.Client) ClientDTO {
	return ClientDTO{
		ID:    cl.ID,
		Name:  cl.Name,
		Phone: cl.Phone,
		Email: cl.Email,
	}
}

type ProfessionalDTO struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}
