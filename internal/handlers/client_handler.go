package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BelezaStudio/salon-agenda-api/internal/domain/booking"
	"github.com/BelezaStudio/salon-agenda-api/internal/dto"
	"github.com/BelezaStudio/salon-agenda-api/internal/httperr"
	"github.com/BelezaStudio/salon-agenda-api/internal/httpresp"
	"github.com/BelezaStudio/salon-agenda-api/internal/middleware"
	ucBooking "github.com/BelezaStudio/salon-agenda-api/internal/usecase/booking"
	"github.com/BelezaStudio/salon-agenda-api/internal/validators"
)

type ClientHandler struct {
	repo    domain.Repository
	resolve *ucBooking.ResolveClient
}

func NewClientHandler(repo domain.Repository, resolve *ucBooking.ResolveClient) *ClientHandler {
	return &ClientHandler{
		repo:    repo,
		resolve: resolve,
	}
}

type ResolveClientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email"`
}

// ======================================================
// GET — lookup por telefone
// ======================================================

func (h *ClientHandler) Get(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	phone := c.Query("phone")
	if !validators.IsValidPhone(phone) {
		httperr.BadRequest(c, "missing_or_invalid_phone", errorMessages["missing_or_invalid_phone"])
		return
	}

	client, err := h.repo.FindClientByPhoneOrEmail(
		c.Request.Context(),
		salonID,
		validators.NormalizePhone(phone),
		"",
	)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, "client_not_found", errorMessages["client_not_found"])
		return
	}
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.OK(c, dto.FromClient(client))
}

// ======================================================
// POST — find-or-create/update
// ======================================================

func (h *ClientHandler) Resolve(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req ResolveClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_or_invalid_phone", errorMessages["missing_or_invalid_phone"])
		return
	}

	client, err := h.resolve.Execute(c.Request.Context(), salonID, req.Name, req.Phone, req.Email)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.OK(c, dto.FromClient(client))
}
