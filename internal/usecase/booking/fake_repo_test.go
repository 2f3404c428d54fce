package booking

import (
	"context"
	"errors"
	"strings"

	"github.com/BelezaStudio/salon-agenda-api/internal/models"
)

var errNotFound = errors.New("record not found")

// fakeRepo guarda tudo em memória, no formato que o repositório gorm devolveria.
type fakeRepo struct {
	salons        map[uint]*models.Salon
	services      map[uint]*models.Service
	professionals map[uint]*models.Professional
	blocked       []models.BlockedSlot

	clients      []*models.Client
	appointments []*models.Appointment

	nextClientID uint
	nextApptID   uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		salons: map[uint]*models.Salon{
			1: {ID: 1, Name: "Studio Bela Vista", Slug: "bela-vista", Timezone: "America/Sao_Paulo"},
		},
		services: map[uint]*models.Service{
			10: {ID: 10, SalonID: 1, Name: "Corte Feminino", Price: 120, DurationMin: 60, Active: true},
			11: {ID: 11, SalonID: 1, Name: "Escova", Price: 80, DurationMin: 30, Active: true},
		},
		professionals: map[uint]*models.Professional{
			7: {ID: 7, SalonID: 1, Name: "Paula", Role: "Cabeleireira", Active: true},
		},
		nextClientID: 100,
		nextApptID:   500,
	}
}

func (f *fakeRepo) GetSalonByID(_ context.Context, id uint) (*models.Salon, error) {
	if s, ok := f.salons[id]; ok {
		return s, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) ListActiveServices(_ context.Context, salonID uint) ([]models.Service, error) {
	var out []models.Service
	for _, s := range f.services {
		if s.SalonID == salonID && s.Active {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListActiveProfessionals(_ context.Context, salonID uint) ([]models.Professional, error) {
	var out []models.Professional
	for _, p := range f.professionals {
		if p.SalonID == salonID && p.Active {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetService(_ context.Context, salonID, serviceID uint) (*models.Service, error) {
	if s, ok := f.services[serviceID]; ok && s.SalonID == salonID {
		return s, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetProfessional(_ context.Context, salonID, professionalID uint) (*models.Professional, error) {
	if p, ok := f.professionals[professionalID]; ok && p.SalonID == salonID {
		return p, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) ListDayAppointments(_ context.Context, salonID, professionalID uint, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.SalonID == salonID &&
			ap.ProfessionalID == professionalID &&
			(ap.Status == "confirmado" || ap.Status == "pendente") &&
			strings.HasPrefix(ap.DataHora, date) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBlockedSlots(_ context.Context, salonID, professionalID uint, date string) ([]models.BlockedSlot, error) {
	var out []models.BlockedSlot
	for _, b := range f.blocked {
		if b.SalonID == salonID && b.ProfessionalID == professionalID && b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListConfirmedOnDate(_ context.Context, salonID, professionalID uint, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.SalonID == salonID &&
			ap.ProfessionalID == professionalID &&
			ap.Status == "confirmado" &&
			strings.HasPrefix(ap.DataHora, date) {
			cp := *ap
			if svc, ok := f.services[ap.ServiceID]; ok {
				cp.Service = *svc
			}
			out = append(out, cp)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindClientByPhoneOrEmail(_ context.Context, salonID uint, phone, email string) (*models.Client, error) {
	for _, cl := range f.clients {
		if cl.SalonID != salonID {
			continue
		}
		if (phone != "" && cl.Phone == phone) || (email != "" && cl.Email == email) {
			return cl, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) CreateClient(_ context.Context, client *models.Client) error {
	f.nextClientID++
	client.ID = f.nextClientID
	f.clients = append(f.clients, client)
	return nil
}

func (f *fakeRepo) UpdateClient(_ context.Context, _ *models.Client) error {
	return nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	f.nextApptID++
	ap.ID = f.nextApptID
	f.appointments = append(f.appointments, ap)
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, salonID, appointmentID uint) (*models.Appointment, error) {
	for _, ap := range f.appointments {
		if ap.ID == appointmentID && ap.SalonID == salonID {
			if svc, ok := f.services[ap.ServiceID]; ok {
				ap.Service = *svc
			}
			return ap, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, _ *models.Appointment) error {
	return nil
}

func (f *fakeRepo) ListUpcomingByPhone(_ context.Context, salonID uint, phone, afterDataHora string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.SalonID == salonID &&
			ap.ClientPhone == phone &&
			(ap.Status == "confirmado" || ap.Status == "pendente") &&
			ap.DataHora > afterDataHora {
			out = append(out, *ap)
		}
	}
	return out, nil
}

// testLocker roda a seção crítica direto, sem Redis.
type testLocker struct{}

func (testLocker) WithSlotLock(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
