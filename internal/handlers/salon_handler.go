package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BelezaStudio/salon-agenda-api/internal/domain/booking"
	"github.com/BelezaStudio/salon-agenda-api/internal/dto"
	"github.com/BelezaStudio/salon-agenda-api/internal/httperr"
	"github.com/BelezaStudio/salon-agenda-api/internal/httpresp"
	"github.com/BelezaStudio/salon-agenda-api/internal/infra/storage"
	"github.com/BelezaStudio/salon-agenda-api/internal/middleware"
)

// ======================================================
// HANDLER — catálogo do salão (somente leitura)
// ======================================================

type SalonHandler struct {
	repo    domain.Repository
	avatars *storage.AvatarSigner
}

func NewSalonHandler(repo domain.Repository, avatars *storage.AvatarSigner) *SalonHandler {
	return &SalonHandler{
		repo:    repo,
		avatars: avatars,
	}
}

func (h *SalonHandler) Info(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	salon, err := h.repo.GetSalonByID(c.Request.Context(), salonID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, "salon_not_found", errorMessages["salon_not_found"])
		return
	}
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.OK(c, salon)
}

func (h *SalonHandler) ListServices(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	if _, err := h.repo.GetSalonByID(c.Request.Context(), salonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "salon_not_found", errorMessages["salon_not_found"])
		} else {
			mapBusinessError(c, err)
		}
		return
	}

	services, err := h.repo.ListActiveServices(c.Request.Context(), salonID)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.List(c, services)
}

func (h *SalonHandler) ListProfessionals(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	if _, err := h.repo.GetSalonByID(c.Request.Context(), salonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "salon_not_found", errorMessages["salon_not_found"])
		} else {
			mapBusinessError(c, err)
		}
		return
	}

	pros, err := h.repo.ListActiveProfessionals(c.Request.Context(), salonID)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	out := make([]dto.ProfessionalDTO, 0, len(pros))
	for _, p := range pros {
		out = append(out, dto.ProfessionalDTO{
			ID:     p.ID,
			Name:   p.Name,
			Role:   p.Role,
			Avatar: h.avatars.URL(c.Request.Context(), p.Avatar),
		})
	}

	httpresp.List(c, out)
}
