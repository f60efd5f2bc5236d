package handlers

import (
	"errors"
	"net/http"
	"time"

	"talentdesk/internal/businesshours"
	"talentdesk/internal/dto"
	"talentdesk/internal/service"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler exposes the work-calendar calculations without persisting
// anything, so clients can preview a deadline before committing a task.
type ScheduleHandler struct {
	calendars *service.CalendarService
}

func NewScheduleHandler(calendars *service.CalendarService) *ScheduleHandler {
	return &ScheduleHandler{calendars: calendars}
}

// DueDate godoc
// @Summary      Preview a due date
// @Description  Walks the work calendar from start (default now) until allocated_hours are exhausted.
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.DueDateRequest  true  "Start and allocation"
// @Success      200   {object}  dto.DueDateResponse
// @Failure      400   {object}  map[string]string
// @Router       /schedule/due-date [post]
func (h *ScheduleHandler) DueDate(c *gin.Context) {
	var req dto.DueDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cfg, err := h.calendars.Current(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	start := time.Now()
	if req.Start.Ptr() != nil {
		start = *req.Start.Ptr()
	}
	due, err := businesshours.CalculateDueDateTime(start, req.AllocatedHours, cfg)
	if err != nil {
		if errors.Is(err, businesshours.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.DueDateResponse{DueDate: due.DueDate, DueTime: due.DueTime})
}

// Elapsed godoc
// @Summary      Business hours between two instants
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.ElapsedRequest  true  "Start and end"
// @Success      200   {object}  dto.ElapsedResponse
// @Failure      400   {object}  map[string]string
// @Router       /schedule/elapsed [post]
func (h *ScheduleHandler) Elapsed(c *gin.Context) {
	var req dto.ElapsedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Start.Ptr() == nil || req.End.Ptr() == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start and end are required"})
		return
	}
	cfg, err := h.calendars.Current(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	hours, err := businesshours.CalculateElapsedBusinessHours(*req.Start.Ptr(), *req.End.Ptr(), cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ElapsedResponse{Hours: hours})
}
