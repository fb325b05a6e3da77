package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/gym-scheduler/internal/dto"
	"github.com/BruksfildServices01/gym-scheduler/internal/httperr"
	"github.com/BruksfildServices01/gym-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/gym-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/gym-scheduler/internal/usecase/appointment"
)

type AvailabilityHandler struct {
	calendar    *ucAppointment.GetCalendar
	getWeekly   *ucAppointment.GetWeeklyAvailability
	updateWeek  *ucAppointment.UpdateWeeklyAvailability
	horizonDays int
}

func NewAvailabilityHandler(deps ucAppointment.Deps) *AvailabilityHandler {
	return &AvailabilityHandler{
		calendar:    ucAppointment.NewGetCalendar(deps),
		getWeekly:   ucAppointment.NewGetWeeklyAvailability(deps),
		updateWeek:  ucAppointment.NewUpdateWeeklyAvailability(deps),
		horizonDays: deps.Policy.HorizonDays,
	}
}

// Calendar serves GET /trainers/:id/calendar?purpose=book|reschedule.
func (h *AvailabilityHandler) Calendar(c *gin.Context) {
	trainerID, err := uintParam(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	purpose, err := ucAppointment.ParseCalendarPurpose(c.Query("purpose"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	cal, err := h.calendar.Execute(c.Request.Context(), trainerID, purpose)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.CalendarDTO{
		TrainerID:   trainerID,
		Purpose:     string(purpose),
		HorizonDays: h.horizonDays,
		Days:        cal,
	})
}

func (h *AvailabilityHandler) Get(c *gin.Context) {
	trainerID, err := uintParam(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	weekly, err := h.getWeekly.Execute(c.Request.Context(), trainerID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.WeeklyAvailabilityDTO{TrainerID: trainerID, Days: weekly})
}

// UpdateMine replaces the calling trainer's weekly schedule.
func (h *AvailabilityHandler) UpdateMine(c *gin.Context) {
	var req dto.WeeklyAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	actor := middleware.ActorFrom(c)
	weekly := req.Weekly()

	if err := h.updateWeek.Execute(c.Request.Context(), actor, weekly); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.WeeklyAvailabilityDTO{TrainerID: actor.ID, Days: weekly})
}
