package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BelezaStudio/salon-agenda-api/internal/domain/booking"
	"github.com/BelezaStudio/salon-agenda-api/internal/dto"
	"github.com/BelezaStudio/salon-agenda-api/internal/httperr"
	"github.com/BelezaStudio/salon-agenda-api/internal/httpresp"
	"github.com/BelezaStudio/salon-agenda-api/internal/middleware"
	ucBooking "github.com/BelezaStudio/salon-agenda-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	availability *ucBooking.GetAvailability
	create       *ucBooking.CreateBooking
	updateStatus *ucBooking.UpdateBookingStatus
	reschedule   *ucBooking.RescheduleBooking
	cancel       *ucBooking.CancelBooking
	byCode       *ucBooking.GetBookingByCode
	upcoming     *ucBooking.ListUpcomingBookings
}

func NewBookingHandler(
	availability *ucBooking.GetAvailability,
	create *ucBooking.CreateBooking,
	updateStatus *ucBooking.UpdateBookingStatus,
	reschedule *ucBooking.RescheduleBooking,
	cancel *ucBooking.CancelBooking,
	byCode *ucBooking.GetBookingByCode,
	upcoming *ucBooking.ListUpcomingBookings,
) *BookingHandler {
	return &BookingHandler{
		availability: availability,
		create:       create,
		updateStatus: updateStatus,
		reschedule:   reschedule,
		cancel:       cancel,
		byCode:       byCode,
		upcoming:     upcoming,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ServiceID      uint   `json:"serviceId" binding:"required"`
	ProfessionalID uint   `json:"professionalId" binding:"required"`
	DateTime       string `json:"dateTime" binding:"required"`
	ClientPhone    string `json:"clientPhone" binding:"required"`
	ClientName     string `json:"clientName"`
	ClientEmail    string `json:"clientEmail"`
	Notes          string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RescheduleRequest struct {
	NewDateTime string `json:"newDateTime" binding:"required"`
	Reason      string `json:"reason"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	serviceID, err1 := strconv.ParseUint(c.Query("serviceId"), 10, 64)
	professionalID, err2 := strconv.ParseUint(c.Query("professionalId"), 10, 64)
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "invalid_request", "Serviço e profissional são obrigatórios.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		SalonID:        salonID,
		ServiceID:      uint(serviceID),
		ProfessionalID: uint(professionalID),
		Date:           c.Query("date"),
	})
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.OK(c, slots)
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", errorMessages["invalid_request"])
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		SalonID:        salonID,
		ServiceID:      req.ServiceID,
		ProfessionalID: req.ProfessionalID,
		DateTime:       req.DateTime,
		ClientName:     req.ClientName,
		ClientPhone:    req.ClientPhone,
		ClientEmail:    req.ClientEmail,
		Notes:          req.Notes,
	})
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.OK(c, dto.FromAppointment(ap))
}

// ======================================================
// STATUS
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	apptID, err := parseApptID(c)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", errorMessages["appointment_not_found"])
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_status", errorMessages["invalid_status"])
		return
	}

	ap, err := h.updateStatus.Execute(c.Request.Context(), salonID, apptID, req.Status)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.OK(c, dto.FromAppointment(ap))
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *BookingHandler) Reschedule(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	apptID, err := parseApptID(c)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", errorMessages["appointment_not_found"])
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", errorMessages["invalid_request"])
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), salonID, apptID, req.NewDateTime, req.Reason)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.OK(c, dto.FromAppointment(ap))
}

// ======================================================
// CANCEL (status cancelado, nunca delete físico)
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	apptID, err := parseApptID(c)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", errorMessages["appointment_not_found"])
		return
	}

	// corpo é opcional no DELETE
	var req CancelRequest
	_ = c.ShouldBindJSON(&req)

	ap, err := h.cancel.Execute(c.Request.Context(), salonID, apptID, req.Reason)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.OK(c, dto.FromAppointment(ap))
}

// ======================================================
// LOOKUPS
// ======================================================

func (h *BookingHandler) GetByCode(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	ap, err := h.byCode.Execute(c.Request.Context(), salonID, c.Param("code"))
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.OK(c, dto.FromAppointment(ap))
}

func (h *BookingHandler) Upcoming(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	apps, err := h.upcoming.Execute(c.Request.Context(), salonID, c.Query("clientPhone"))
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	out := make([]dto.BookingDTO, 0, len(apps))
	for i := range apps {
		out = append(out, dto.FromAppointment(&apps[i]))
	}

	httpresp.List(c, out)
}

// ======================================================
// HELPERS
// ======================================================

func parseApptID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("apptId"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
