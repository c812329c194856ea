package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/thoughtlog_backend/internal/apperrors"
	"github.com/SscSPs/thoughtlog_backend/internal/core/domain"
	portssvc "github.com/SscSPs/thoughtlog_backend/internal/core/ports/services"
	"github.com/SscSPs/thoughtlog_backend/internal/dto"
	"github.com/SscSPs/thoughtlog_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests for journal entries, day views, the
// calendar picker and stats.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
	userService    portssvc.UserSvcFacade
	loc            *time.Location
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(js portssvc.JournalSvcFacade, us portssvc.UserSvcFacade, loc *time.Location) *journalHandler {
	return &journalHandler{
		journalService: js,
		userService:    us,
		loc:            loc,
	}
}

// registerJournalRoutes registers all journal-related routes.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade, userService portssvc.UserSvcFacade, loc *time.Location) {
	h := newJournalHandler(journalService, userService, loc)

	journalRoutes := rg.Group("/journal")
	{
		journalRoutes.GET("/entries", h.listEntries)
		journalRoutes.POST("/entries", h.createEntry)
		journalRoutes.GET("/days/:date", h.getDayView)
		journalRoutes.GET("/calendar/:year/:month", h.getCalendarMonth)
		journalRoutes.GET("/stats", h.getStats)
	}
}

// createEntry godoc
// @Summary Create a journal entry
// @Description Saves an immutable entry for the given day and returns the day the view moves to
// @Tags journal
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateEntryRequest true "Entry text and day key"
// @Success 201 {object} dto.CreateEntryResponse
// @Failure 400 {object} map[string]string "Invalid input or future day"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create entry"
// @Security BearerAuth
// @Router /journal/entries [post]
func (h *journalHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Logged-in user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create entry request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, selectedDay, err := h.journalService.CreateEntry(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create entry"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.CreateEntryResponse{
		Entry:       dto.ToEntryResponse(*entry, h.loc),
		SelectedDay: selectedDay.String(),
	})
}

// listEntries godoc
// @Summary List journal entries
// @Description Returns the caller's entries in creation order with cursor pagination
// @Tags journal
// @Produce  json
// @Param   limit query int false "Page size, 0 for all" default(0)
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Security BearerAuth
// @Router /journal/entries [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Logged-in user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for listEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	entries, nextToken, err := h.journalService.ListEntries(c.Request.Context(), userID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list entries", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list entries"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListEntriesResponse(entries, nextToken, h.loc))
}

// getDayView godoc
// @Summary Get one journal day
// @Description Returns the entries bucketed into a day plus its navigation targets
// @Tags journal
// @Produce  json
// @Param   date path string true "Day key (YYYY-MM-DD)"
// @Success 200 {object} dto.DayViewResponse
// @Failure 400 {object} map[string]string "Malformed day key"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build day view"
// @Security BearerAuth
// @Router /journal/days/{date} [get]
func (h *journalHandler) getDayView(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Logged-in user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	day, err := domain.ParseDateKey(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	view, err := h.journalService.GetDayView(c.Request.Context(), userID, day)
	if err != nil {
		logger.Error("Failed to build day view", slog.String("error", err.Error()), slog.String("day", day.String()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build day view"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDayViewResponse(view, h.loc))
}

// getCalendarMonth godoc
// @Summary Get the calendar month grid
// @Description Returns the 6x7 month grid annotated with entry and selection markers
// @Tags journal
// @Produce  json
// @Param   year path int true "Year"
// @Param   month path int true "Month (1-12)"
// @Param   selected query string false "Currently selected day key"
// @Success 200 {object} dto.CalendarMonthResponse
// @Failure 400 {object} map[string]string "Invalid year or month"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build calendar"
// @Security BearerAuth
// @Router /journal/calendar/{year}/{month} [get]
func (h *journalHandler) getCalendarMonth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Logged-in user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 || year > 9999 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month, expected 1-12"})
		return
	}

	var selected domain.DateKey
	if raw := c.Query("selected"); raw != "" {
		selected, err = domain.ParseDateKey(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid selected day, expected YYYY-MM-DD"})
			return
		}
	}

	view, err := h.journalService.GetCalendarMonth(c.Request.Context(), userID, year, time.Month(month), selected)
	if err != nil {
		logger.Error("Failed to build calendar month", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build calendar"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCalendarMonthResponse(view))
}

// getStats godoc
// @Summary Get journal stats
// @Description Returns totals and the longest streak. Stats are a premium feature.
// @Tags journal
// @Produce  json
// @Success 200 {object} domain.Stats
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Premium required"
// @Failure 500 {object} map[string]string "Failed to compute stats"
// @Security BearerAuth
// @Router /journal/stats [get]
func (h *journalHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Logged-in user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to get user for stats gate", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}
	if !user.IsPremium {
		c.JSON(http.StatusForbidden, gin.H{"error": "Stats require a premium account"})
		return
	}

	stats, err := h.journalService.GetStats(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to compute stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
