package booking

type AvailabilityInput struct {
	SalonID        uint
	ServiceID      uint
	ProfessionalID uint
	Date           string // YYYY-MM-DD; vazio = hoje no fuso do salão
}

type TimeSlot struct {
	Time             string `json:"time"`
	Available        bool   `json:"available"`
	ProfessionalID   uint   `json:"professionalId"`
	ProfessionalName string `json:"professionalName"`
}
