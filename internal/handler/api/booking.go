package api

import (
	"errors"
	"net/http"

	reqdto "tastebuds/internal/handler/dto/request"
	"tastebuds/internal/handler/middleware"
	"tastebuds/internal/usecase/commands"
	"tastebuds/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
	paymentCommands commands.PaymentCommands
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	bookingQueries queries.BookingQueries,
	paymentCommands commands.PaymentCommands,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
		paymentCommands: paymentCommands,
	}
}

// @Summary Create a payment intent
// @Description Open a card payment for a completed checkout
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateIntentRequest true "Payment details"
// @Success 200 {object} commands.CreateIntentResult
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /payments/create-intent [post]
func (h *BookingHandler) CreateIntent(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session id and amount are required"})
		return
	}

	result, err := h.paymentCommands.CreateIntent(c.Request.Context(), userID, req.SessionID, req.Amount, req.Metadata)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrWizardNotStarted):
			c.JSON(http.StatusNotFound, gin.H{"error": "No active checkout for this session"})
		case errors.Is(err, commands.ErrWizardIncomplete):
			c.JSON(http.StatusConflict, gin.H{"error": "Checkout steps are incomplete"})
		case errors.Is(err, commands.ErrPaymentAmountMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Amount does not match the session price"})
		case errors.Is(err, commands.ErrPaymentGateway):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Payment provider is unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Commit a booking
// @Description Finalize the checkout after the card payment succeeds
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body reqdto.CommitRequest true "Payment intent"
// @Success 200 {object} queries.BookingView "Replayed commit"
// @Success 201 {object} queries.BookingView
// @Failure 402 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/wizard/{sessionId}/commit [post]
func (h *BookingHandler) Commit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	var req reqdto.CommitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.bookingCommands.Commit(c.Request.Context(), userID, sessionID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrWizardNotStarted):
			c.JSON(http.StatusNotFound, gin.H{"error": "No active checkout for this session"})
		case errors.Is(err, commands.ErrWizardIncomplete):
			c.JSON(http.StatusConflict, gin.H{"error": "Checkout steps are incomplete"})
		case errors.Is(err, commands.ErrPaymentNotSucceeded):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "Payment has not succeeded"})
		case errors.Is(err, commands.ErrPaymentAmountMismatch):
			c.JSON(http.StatusConflict, gin.H{"error": "Payment amount does not match session price"})
		case errors.Is(err, commands.ErrSessionFull):
			c.JSON(http.StatusConflict, gin.H{"error": "Session has no spots left"})
		case errors.Is(err, commands.ErrPaymentGateway):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Payment provider is unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, result.Booking)
}

// @Summary List own bookings
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.BookingView
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	bookings, err := h.bookingQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// @Summary Get one booking
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} queries.BookingView
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	role, _ := middleware.GetUserRole(c)

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), userID, role, bookingID)
	if err != nil {
		if errors.Is(err, queries.ErrBookingAccessDenied) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Booking belongs to a different account"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	c.JSON(http.StatusOK, view)
}
