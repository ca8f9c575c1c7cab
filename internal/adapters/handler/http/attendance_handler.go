package http

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/luuuuuuuilaguardia/internship-tracker/internal/adapters/handler/http/middleware"
	"github.com/luuuuuuuilaguardia/internship-tracker/internal/core/domain"
	"github.com/luuuuuuuilaguardia/internship-tracker/internal/core/services"
)

type AttendanceHandler struct {
	svc *services.AttendanceService
}

func NewAttendanceHandler(svc *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{
		svc: svc,
	}
}

type logHoursRequest struct {
	Date        string  `json:"date" binding:"required"`
	HoursLogged float64 `json:"hours_logged"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Notes       string  `json:"notes"`
}

type updateEntryRequest struct {
	HoursLogged *float64 `json:"hours_logged"`
	StartTime   *string  `json:"start_time"`
	EndTime     *string  `json:"end_time"`
	Notes       *string  `json:"notes"`
}

func (h *AttendanceHandler) RegisterRoutes(router *gin.RouterGroup) {
	attendance := router.Group("/attendance")
	{
		attendance.POST("", h.Log)
		attendance.GET("", h.List)
		attendance.GET("/:id", h.GetByID)
		attendance.PUT("/:id", h.Update)
		attendance.DELETE("/:id", h.Delete)
	}
}

func (h *AttendanceHandler) Log(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req logHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	date, err := domain.ParseCalendarDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, expected YYYY-MM-DD"})
		return
	}

	input := services.LogHoursInput{
		UserID:      userID,
		Date:        date,
		HoursLogged: req.HoursLogged,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Notes:       req.Notes,
	}

	record, err := h.svc.Log(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

func (h *AttendanceHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var from, to time.Time
	var err error

	if f := c.Query("start_date"); f != "" {
		from, err = domain.ParseCalendarDate(f)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date format, expected YYYY-MM-DD"})
			return
		}
	}
	if t := c.Query("end_date"); t != "" {
		to, err = domain.ParseCalendarDate(t)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date format, expected YYYY-MM-DD"})
			return
		}
	}

	records, err := h.svc.List(c.Request.Context(), userID, from, to)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":      len(records),
		"attendance": records,
	})
}

func (h *AttendanceHandler) GetByID(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	record, err := h.svc.GetByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *AttendanceHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req updateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	input := services.UpdateEntryInput{
		ID:          c.Param("id"),
		UserID:      userID,
		HoursLogged: req.HoursLogged,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Notes:       req.Notes,
	}

	record, err := h.svc.Update(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *AttendanceHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "unauthorized access"})

	case errors.Is(err, domain.ErrEntryNotFound) || errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})

	case errors.Is(err, domain.ErrDuplicateEntry):
		c.JSON(http.StatusConflict, gin.H{
			"error":   "entry already exists for this date",
			"message": "use the update endpoint to change an existing entry",
		})

	case errors.Is(err, domain.ErrHoursOutOfRange),
		errors.Is(err, domain.ErrNotesTooLong),
		errors.Is(err, domain.ErrInvalidTimeFormat),
		errors.Is(err, domain.ErrInvalidDateFormat),
		errors.Is(err, domain.ErrDateRequired),
		errors.Is(err, domain.ErrFutureDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		log.Printf("[ERROR] Request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)

		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
