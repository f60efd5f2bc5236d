package handlers

import (
	"errors"
	"net/http"

	"talentdesk/internal/businesshours"
	dom "talentdesk/internal/domain"
	"talentdesk/internal/dto"
	"talentdesk/internal/service"

	"github.com/gin-gonic/gin"
)

// CalendarHandler manages the organization-wide work calendar.
type CalendarHandler struct {
	svc *service.CalendarService
}

func NewCalendarHandler(svc *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{svc: svc}
}

// Get godoc
// @Summary      Current work calendar
// @Tags         calendar
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.CalendarResponse
// @Failure      500  {object}  map[string]string
// @Router       /calendar [get]
func (h *CalendarHandler) Get(c *gin.Context) {
	settings, saved, err := h.svc.Settings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, calendarToResponse(settings, saved))
}

// Update godoc
// @Summary      Replace the work calendar
// @Description  Rejects windows where work end is not after work start.
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.UpdateCalendarRequest  true  "New calendar"
// @Success      200   {object}  dto.CalendarResponse
// @Failure      400   {object}  map[string]string
// @Router       /calendar [put]
func (h *CalendarHandler) Update(c *gin.Context) {
	var req dto.UpdateCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	settings, err := h.svc.Update(c.Request.Context(), req.WorkStartTime, req.WorkEndTime, *req.ExcludeWeekends)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCalendar) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, calendarToResponse(settings, true))
}

func calendarToResponse(s dom.CalendarSettings, saved bool) dto.CalendarResponse {
	resp := dto.CalendarResponse{
		WorkStartTime:   s.WorkStartTime,
		WorkEndTime:     s.WorkEndTime,
		ExcludeWeekends: s.ExcludeWeekends,
	}
	if cfg, err := businesshours.NewConfig(s.WorkStartTime, s.WorkEndTime, s.ExcludeWeekends); err == nil {
		resp.WorkHoursPerDay = cfg.HoursPerDay()
	}
	if saved {
		resp.UpdatedAt = &s.UpdatedAt
	}
	return resp
}
