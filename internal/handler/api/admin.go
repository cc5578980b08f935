package api

import (
	"errors"
	"net/http"

	"tastebuds/internal/domain/booking"
	"tastebuds/internal/domain/session"
	reqdto "tastebuds/internal/handler/dto/request"
	"tastebuds/internal/infra/mailer"
	"tastebuds/internal/usecase/commands"
	"tastebuds/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler serves the back-office surface: catalog CRUD, session
// scheduling, the full booking ledger and manual email.
type AdminHandler struct {
	catalogCommands commands.CatalogCommands
	catalogQueries  queries.CatalogQueries
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
	mailer          *mailer.ResendClient
}

func NewAdminHandler(
	catalogCommands commands.CatalogCommands,
	catalogQueries queries.CatalogQueries,
	bookingCommands commands.BookingCommands,
	bookingQueries queries.BookingQueries,
	m *mailer.ResendClient,
) *AdminHandler {
	return &AdminHandler{
		catalogCommands: catalogCommands,
		catalogQueries:  catalogQueries,
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
		mailer:          m,
	}
}

// ---- venues ----

func (h *AdminHandler) CreateVenue(c *gin.Context) {
	var req reqdto.VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.catalogCommands.CreateVenue(c.Request.Context(), req)
	if err != nil {
		h.writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *AdminHandler) UpdateVenue(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req reqdto.VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.catalogCommands.UpdateVenue(c.Request.Context(), id, req)
	if err != nil {
		h.writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *AdminHandler) DeleteVenue(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.catalogCommands.DeleteVenue(c.Request.Context(), id); err != nil {
		h.writeCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---- classes ----

func (h *AdminHandler) CreateClass(c *gin.Context) {
	var req reqdto.ClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.catalogCommands.CreateClass(c.Request.Context(), req)
	if err != nil {
		h.writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *AdminHandler) UpdateClass(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req reqdto.ClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.catalogCommands.UpdateClass(c.Request.Context(), id, req)
	if err != nil {
		h.writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *AdminHandler) DeleteClass(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.catalogCommands.DeleteClass(c.Request.Context(), id); err != nil {
		h.writeCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---- recipes ----

func (h *AdminHandler) CreateRecipe(c *gin.Context) {
	var req reqdto.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.catalogCommands.CreateRecipe(c.Request.Context(), req)
	if err != nil {
		h.writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *AdminHandler) UpdateRecipe(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req reqdto.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.catalogCommands.UpdateRecipe(c.Request.Context(), id, req)
	if err != nil {
		h.writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *AdminHandler) DeleteRecipe(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.catalogCommands.DeleteRecipe(c.Request.Context(), id); err != nil {
		h.writeCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---- gallery ----

func (h *AdminHandler) CreateGalleryImage(c *gin.Context) {
	var req reqdto.GalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.catalogCommands.CreateGalleryImage(c.Request.Context(), req)
	if err != nil {
		h.writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *AdminHandler) DeleteGalleryImage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.catalogCommands.DeleteGalleryImage(c.Request.Context(), id); err != nil {
		h.writeCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---- sessions ----

func (h *AdminHandler) ListSessions(c *gin.Context) {
	sessions, err := h.catalogQueries.ListAllSessions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, sessions)
}

func (h *AdminHandler) CreateSession(c *gin.Context) {
	var req reqdto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.catalogCommands.CreateSession(c.Request.Context(), req)
	if err != nil {
		h.writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *AdminHandler) UpdateSession(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.catalogCommands.UpdateSession(c.Request.Context(), id, req)
	if err != nil {
		h.writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *AdminHandler) UpdateSessionStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req reqdto.SessionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.catalogCommands.UpdateSessionStatus(c.Request.Context(), id, req)
	if err != nil {
		h.writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ---- bookings ----

func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.bookingQueries.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *AdminHandler) CancelBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.bookingCommands.Cancel(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, booking.ErrAlreadyCancelled):
			c.JSON(http.StatusConflict, gin.H{"error": "Booking is already cancelled"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

// ---- email ----

func (h *AdminHandler) SendEmail(c *gin.Context) {
	var req reqdto.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	email := mailer.BookingEmail{
		To:          req.To,
		BookedBy:    req.Data.BookedBy,
		StudentName: req.Data.StudentName,
		ClassName:   req.Data.ClassName,
		SessionDate: req.Data.SessionDate,
		VenueName:   req.Data.VenueName,
		AmountPence: req.Data.Amount,
		ReceiptURL:  req.Data.ReceiptURL,
	}

	var err error
	switch req.Type {
	case "cancellation":
		err = h.mailer.SendBookingCancellation(c.Request.Context(), email)
	default:
		err = h.mailer.SendBookingConfirmation(c.Request.Context(), email)
	}
	if err != nil {
		if errors.Is(err, mailer.ErrNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Email is not configured"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Email provider is unavailable"})
		return
	}
	c.Status(http.StatusAccepted)
}

func (h *AdminHandler) writeCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrVenueNotFound),
		errors.Is(err, commands.ErrClassNotFound),
		errors.Is(err, commands.ErrRecipeNotFound),
		errors.Is(err, commands.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, commands.ErrCatalogInUse):
		c.JSON(http.StatusConflict, gin.H{"error": "Record is referenced by other data"})
	case errors.Is(err, session.ErrInvalidClassType),
		errors.Is(err, session.ErrInvalidStatus),
		errors.Is(err, session.ErrInvalidCapacity),
		errors.Is(err, session.ErrNegativePrice):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return uuid.Nil, false
	}
	return id, true
}
