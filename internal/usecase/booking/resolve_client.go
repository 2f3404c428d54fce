package booking

import (
	"context"
	"strings"

	domain "github.com/BelezaStudio/salon-agenda-api/internal/domain/booking"
	"github.com/BelezaStudio/salon-agenda-api/internal/httperr"
	"github.com/BelezaStudio/salon-agenda-api/internal/models"
	"github.com/BelezaStudio/salon-agenda-api/internal/validators"
)

// ======================================================
// USE CASE — identidade do cliente (find-or-create)
// ======================================================

type ResolveClient struct {
	repo domain.Repository
}

func NewResolveClient(repo domain.Repository) *ResolveClient {
	return &ResolveClient{repo: repo}
}

func (uc *ResolveClient) Execute(
	ctx context.Context,
	salonID uint,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	if _, err := uc.repo.GetSalonByID(ctx, salonID); err != nil {
		return nil, httperr.ErrBusiness("salon_not_found")
	}

	// O endpoint de cliente atualiza dados de quem já existe;
	// no fluxo de agendamento o cadastro existente sempre vence.
	return resolveOrCreateClient(ctx, uc.repo, salonID, name, phone, email, true)
}

// resolveOrCreateClient procura por telefone OU e-mail dentro do salão.
// Achou: reusa (dados do cadastro vencem os do request, salvo updateExisting).
// Não achou: valida e cria, sintetizando e-mail quando não informado.
func resolveOrCreateClient(
	ctx context.Context,
	repo domain.Repository,
	salonID uint,
	name string,
	phone string,
	email string,
	updateExisting bool,
) (*models.Client, error) {

	if !validators.IsValidPhone(phone) {
		return nil, httperr.ErrBusiness("missing_or_invalid_phone")
	}
	normPhone := validators.NormalizePhone(phone)

	existing, err := repo.FindClientByPhoneOrEmail(ctx, salonID, normPhone, email)
	if err == nil {
		if updateExisting {
			changed := false
			if validators.IsValidName(name) && strings.TrimSpace(name) != existing.Name {
				existing.Name = strings.TrimSpace(name)
				changed = true
			}
			if email != "" && validators.IsValidEmail(email) && email != existing.Email {
				existing.Email = email
				changed = true
			}
			if changed {
				if err := repo.UpdateClient(ctx, existing); err != nil {
					return nil, err
				}
			}
		}
		return existing, nil
	}

	if !validators.IsValidName(name) {
		return nil, httperr.ErrBusiness("missing_or_invalid_name")
	}
	if email != "" && !validators.IsValidEmail(email) {
		return nil, httperr.ErrBusiness("invalid_email")
	}
	if email == "" {
		email = validators.PlaceholderEmail(normPhone)
	}

	client := &models.Client{
		SalonID: salonID,
		Name:    strings.TrimSpace(name),
		Phone:   normPhone,
		Email:   email,
	}

	if err := repo.CreateClient(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}
