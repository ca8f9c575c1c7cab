package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/luuuuuuuilaguardia/internship-tracker/internal/adapters/handler/http/middleware"
	"github.com/luuuuuuuilaguardia/internship-tracker/internal/core/domain"
	"github.com/luuuuuuuilaguardia/internship-tracker/internal/core/services"
)

type ProfileHandler struct {
	svc *services.ProfileService
}

func NewProfileHandler(svc *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

type updateProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type weekendPatchRequest struct {
	Saturday *bool `json:"saturday"`
	Sunday   *bool `json:"sunday"`
}

type lunchBreakPatchRequest struct {
	Enabled *bool    `json:"enabled"`
	Hours   *float64 `json:"hours"`
}

// updateConfigRequest is the loosely-typed boundary shape. Every field is
// optional; values are validated and coerced into a typed domain.ConfigPatch
// before anything touches the engine.
type updateConfigRequest struct {
	TargetHours      *float64                `json:"target_hours"`
	StartDate        *string                 `json:"start_date"`
	ExcludeWeekends  *weekendPatchRequest    `json:"exclude_weekends"`
	ExcludedWeekdays []int                   `json:"excluded_weekdays"`
	Holidays         []string                `json:"holidays"`
	LunchBreak       *lunchBreakPatchRequest `json:"lunch_break"`
	DefaultStartTime *string                 `json:"default_start_time"`
	DefaultEndTime   *string                 `json:"default_end_time"`
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	user := r.Group("/user")
	{
		user.GET("/profile", h.GetProfile)
		user.PUT("/profile", h.UpdateProfile)
		user.GET("/config", h.GetConfig)
		user.PUT("/config", h.UpdateConfig)
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := h.svc.Get(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	user, err := h.svc.UpdateName(c.Request.Context(), userID, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, domain.ErrNameTooLong) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *ProfileHandler) GetConfig(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	config, err := h.svc.GetConfig(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"config": config})
}

func (h *ProfileHandler) UpdateConfig(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req updateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	patch, err := req.toPatch()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	config, err := h.svc.UpdateConfig(c.Request.Context(), userID, patch)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidTargetHours),
			errors.Is(err, domain.ErrInvalidWeekday),
			errors.Is(err, domain.ErrLunchBreakOutOfRange),
			errors.Is(err, domain.ErrInvalidTimeFormat),
			errors.Is(err, domain.ErrStartDateInFuture):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			handleError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "configuration updated successfully",
		"config":  config,
	})
}

func (r *updateConfigRequest) toPatch() (domain.ConfigPatch, error) {
	patch := domain.ConfigPatch{
		TargetHours:      r.TargetHours,
		ExcludedWeekdays: r.ExcludedWeekdays,
		DefaultStartTime: r.DefaultStartTime,
		DefaultEndTime:   r.DefaultEndTime,
	}

	if r.StartDate != nil {
		start, err := domain.ParseCalendarDate(*r.StartDate)
		if err != nil {
			return domain.ConfigPatch{}, err
		}
		patch.StartDate = &start
	}

	if r.ExcludeWeekends != nil {
		patch.ExcludeSaturday = r.ExcludeWeekends.Saturday
		patch.ExcludeSunday = r.ExcludeWeekends.Sunday
	}

	if r.Holidays != nil {
		holidays := make([]time.Time, 0, len(r.Holidays))
		for _, text := range r.Holidays {
			day, err := domain.ParseCalendarDate(text)
			if err != nil {
				return domain.ConfigPatch{}, err
			}
			holidays = append(holidays, day)
		}
		patch.Holidays = holidays
	}

	if r.LunchBreak != nil {
		patch.LunchEnabled = r.LunchBreak.Enabled
		patch.LunchHours = r.LunchBreak.Hours
	}

	return patch, nil
}
