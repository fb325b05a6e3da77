package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/dto"
	"github.com/BruksfildServices01/gym-scheduler/internal/httperr"
	"github.com/BruksfildServices01/gym-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/gym-scheduler/internal/middleware"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/gym-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book       *ucAppointment.BookAppointment
	reschedule *ucAppointment.RescheduleAppointment
	cancel     *ucAppointment.CancelAppointment
	confirm    *ucAppointment.ConfirmAppointment
	complete   *ucAppointment.CompleteAppointment
	get        *ucAppointment.GetAppointment
	list       *ucAppointment.ListAppointments
}

func NewAppointmentHandler(deps ucAppointment.Deps) *AppointmentHandler {
	return &AppointmentHandler{
		book:       ucAppointment.NewBookAppointment(deps),
		reschedule: ucAppointment.NewRescheduleAppointment(deps),
		cancel:     ucAppointment.NewCancelAppointment(deps),
		confirm:    ucAppointment.NewConfirmAppointment(deps),
		complete:   ucAppointment.NewCompleteAppointment(deps),
		get:        ucAppointment.NewGetAppointment(deps),
		list:       ucAppointment.NewListAppointments(deps),
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req dto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), middleware.ActorFrom(c), ucAppointment.BookAppointmentInput{
		TrainerID:    req.TrainerID,
		MembershipID: req.MembershipID,
		Date:         req.Date,
		Slot:         req.Time.Slot(),
		Location:     req.Location,
		Notes:        req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.NewAppointmentDTO(ap))
}

// ======================================================
// LIST / GET
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	f, err := queryFilter(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	apps, err := h.list.Execute(c.Request.Context(), middleware.ActorFrom(c), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, dto.NewAppointmentDTOs(apps))
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := appointmentIDParam(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.NewAppointmentDTO(ap))
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, err := appointmentIDParam(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var req dto.RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), middleware.ActorFrom(c), id, domain.RescheduleInput{
		Date:     req.Date,
		Slot:     req.Time.Slot(),
		Location: req.Location,
		Notes:    req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.NewAppointmentDTO(ap))
}

// ======================================================
// STATUS TRANSITIONS
// ======================================================

type transitionFunc func(
	ctx context.Context,
	actor domain.Actor,
	appointmentID uuid.UUID,
) (*models.Appointment, error)

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cancel.Execute)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, h.confirm.Execute)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, h.complete.Execute)
}

func (h *AppointmentHandler) transition(c *gin.Context, run transitionFunc) {
	id, err := appointmentIDParam(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	ap, err := run(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.NewAppointmentDTO(ap))
}
