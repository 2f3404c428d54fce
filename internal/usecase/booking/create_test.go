package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BelezaStudio/salon-agenda-api/internal/domain/booking"
	"github.com/BelezaStudio/salon-agenda-api/internal/httperr"
	"github.com/BelezaStudio/salon-agenda-api/internal/models"
)

func newCreateUC(repo *fakeRepo) *CreateBooking {
	return NewCreateBooking(repo, testLocker{}, nil)
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		SalonID:        1,
		ServiceID:      10,
		ProfessionalID: 7,
		DateTime:       "2025-06-10T10:00",
		ClientName:     "Ana",
		ClientPhone:    "11988887777",
	}
}

func TestCreateBooking_Success(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	ap, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, "confirmado", ap.Status)
	assert.Equal(t, "2025-06-10T10:00:00", ap.DataHora)
	assert.Equal(t, uint(1), ap.SalonID)
	assert.Equal(t, uint(10), ap.ServiceID)
	assert.Equal(t, uint(7), ap.ProfessionalID)

	// snapshot do cliente copiado no agendamento
	assert.Equal(t, "Ana", ap.ClientName)
	assert.Equal(t, "11988887777", ap.ClientPhone)
	assert.Equal(t, "11988887777@cliente.local", ap.ClientEmail)

	require.Len(t, repo.clients, 1)
	assert.Equal(t, repo.clients[0].ID, ap.ClientID)

	assert.NotEmpty(t, domain.Code(ap.ID))
}

func TestCreateBooking_ConflictAbortsBeforeWrite(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)
	require.Len(t, repo.appointments, 1)

	in := validInput()
	in.ClientPhone = "11977776666"
	in.ClientName = "Bia"

	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "slot_conflict"))
	assert.Len(t, repo.appointments, 1, "conflito não pode gravar")
}

func TestCreateBooking_OverlapByDuration(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	// Corte Feminino: 60 min a partir de 10:00
	_, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	// Escova de 30 min às 10:30 cai dentro do intervalo ocupado
	in := validInput()
	in.ServiceID = 11
	in.DateTime = "2025-06-10T10:30"
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "slot_conflict"))

	// às 11:00 o profissional já está livre
	in.DateTime = "2025-06-10T11:00"
	_, err = uc.Execute(context.Background(), in)
	assert.NoError(t, err)
}

func TestCreateBooking_CancelledDoesNotBlock(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments = append(repo.appointments, &models.Appointment{
		ID: 900, SalonID: 1, ServiceID: 10, ProfessionalID: 7,
		DataHora: "2025-06-10T10:00:00", Status: "cancelado",
	})

	uc := newCreateUC(repo)
	_, err := uc.Execute(context.Background(), validInput())
	assert.NoError(t, err)
}

func TestCreateBooking_MissingNameThenRetry(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	in := validInput()
	in.ClientName = ""

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "missing_or_invalid_name"))
	assert.Empty(t, repo.clients, "validação falhou antes de qualquer escrita")
	assert.Empty(t, repo.appointments)

	in.ClientName = "Ana"
	ap, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "11988887777@cliente.local", ap.ClientEmail)
}

func TestCreateBooking_InvalidPhone(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	in := validInput()
	in.ClientPhone = "98888"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "missing_or_invalid_phone"))
}

func TestCreateBooking_InvalidEmail(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	in := validInput()
	in.ClientEmail = "ana@"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_email"))
}

func TestCreateBooking_ExistingClientWins(t *testing.T) {
	repo := newFakeRepo()
	repo.clients = append(repo.clients, &models.Client{
		ID: 50, SalonID: 1, Name: "Ana Souza", Phone: "11988887777", Email: "ana@example.com",
	})

	uc := newCreateUC(repo)

	in := validInput()
	in.ClientName = "X" // nome inválido seria rejeitado num cadastro novo
	in.ClientEmail = "lixo"

	ap, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	// cadastro existente vence os dados do request
	assert.Equal(t, uint(50), ap.ClientID)
	assert.Equal(t, "Ana Souza", ap.ClientName)
	assert.Equal(t, "ana@example.com", ap.ClientEmail)
	assert.Len(t, repo.clients, 1)
}

func TestCreateBooking_ClientIdempotent(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	first, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	in := validInput()
	in.DateTime = "2025-06-11T10:00"
	second, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first.ClientID, second.ClientID)
	assert.Len(t, repo.clients, 1, "mesmo telefone nunca duplica cliente")
}

func TestCreateBooking_NotFoundErrors(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	tests := []struct {
		name   string
		mutate func(*CreateBookingInput)
		code   string
	}{
		{"unknown salon", func(in *CreateBookingInput) { in.SalonID = 99 }, "salon_not_found"},
		{"unknown service", func(in *CreateBookingInput) { in.ServiceID = 99 }, "service_not_found"},
		{"unknown professional", func(in *CreateBookingInput) { in.ProfessionalID = 99 }, "professional_not_found"},
		{"bad datetime", func(in *CreateBookingInput) { in.DateTime = "amanhã" }, "invalid_datetime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, err := uc.Execute(context.Background(), in)
			assert.True(t, httperr.IsBusiness(err, tt.code), "got %v", err)
		})
	}
}

func TestCreateBooking_LockContentionMapsToConflict(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, heldLocker{}, nil)

	_, err := uc.Execute(context.Background(), validInput())
	assert.True(t, httperr.IsBusiness(err, "slot_conflict"))
	assert.Empty(t, repo.appointments)
}

func TestCreateBooking_LocksEveryTouchedBucket(t *testing.T) {
	repo := newFakeRepo()
	locker := &recordingLocker{}
	uc := NewCreateBooking(repo, locker, nil)

	// início às 10:30 com serviço de 60 min atravessa a fronteira da hora
	in := validInput()
	in.DateTime = "2025-06-10T10:30"
	_, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"lock:slot:1:7:2025-06-10T10",
		"lock:slot:1:7:2025-06-10T11",
	}, locker.keys)
}

// heldLocker simula outro agendamento segurando o bucket.
type heldLocker struct{}

func (heldLocker) WithSlotLock(context.Context, string, func(ctx context.Context) error) error {
	return domain.ErrSlotLocked
}

// recordingLocker registra os buckets pedidos, na ordem.
type recordingLocker struct{ keys []string }

func (l *recordingLocker) WithSlotLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	l.keys = append(l.keys, key)
	return fn(ctx)
}
