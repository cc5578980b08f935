package api

import (
	"errors"
	"net/http"

	"tastebuds/internal/domain/booking"
	"tastebuds/internal/domain/student"
	"tastebuds/internal/domain/wizard"
	reqdto "tastebuds/internal/handler/dto/request"
	"tastebuds/internal/handler/middleware"
	"tastebuds/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WizardHandler struct {
	wizardCommands commands.WizardCommands
}

func NewWizardHandler(wizardCommands commands.WizardCommands) *WizardHandler {
	return &WizardHandler{wizardCommands: wizardCommands}
}

// @Summary Start a checkout
// @Description Open a new booking wizard against a session
// @Tags wizard
// @Security BearerAuth
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 201 {object} queries.WizardView
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/wizard/{sessionId} [post]
func (h *WizardHandler) Start(c *gin.Context) {
	userID, sessionID, ok := h.ids(c)
	if !ok {
		return
	}

	view, err := h.wizardCommands.Start(c.Request.Context(), userID, sessionID)
	if err != nil {
		h.writeWizardError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Get checkout progress
// @Tags wizard
// @Security BearerAuth
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} queries.WizardView
// @Failure 404 {object} map[string]string
// @Router /bookings/wizard/{sessionId} [get]
func (h *WizardHandler) Get(c *gin.Context) {
	userID, sessionID, ok := h.ids(c)
	if !ok {
		return
	}

	view, err := h.wizardCommands.Get(c.Request.Context(), userID, sessionID)
	if err != nil {
		h.writeWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Choose the participant
// @Tags wizard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body reqdto.ParticipantRequest true "Participant"
// @Success 200 {object} queries.WizardView
// @Router /bookings/wizard/{sessionId}/participant [put]
func (h *WizardHandler) SetParticipant(c *gin.Context) {
	userID, sessionID, ok := h.ids(c)
	if !ok {
		return
	}
	role, _ := middleware.GetUserRole(c)

	var req reqdto.ParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.wizardCommands.SetParticipant(c.Request.Context(), userID, role, sessionID, req)
	if err != nil {
		h.writeWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Submit medical details
// @Tags wizard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body reqdto.MedicalRequest true "Medical details"
// @Success 200 {object} queries.WizardView
// @Router /bookings/wizard/{sessionId}/medical [put]
func (h *WizardHandler) SetMedical(c *gin.Context) {
	userID, sessionID, ok := h.ids(c)
	if !ok {
		return
	}

	var req reqdto.MedicalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.wizardCommands.SetMedical(c.Request.Context(), userID, sessionID, req)
	if err != nil {
		h.writeWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Submit the allergy questionnaire
// @Tags wizard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body reqdto.QuestionnaireRequest true "Questionnaire"
// @Success 200 {object} queries.WizardView
// @Router /bookings/wizard/{sessionId}/questionnaire [put]
func (h *WizardHandler) SetQuestionnaire(c *gin.Context) {
	userID, sessionID, ok := h.ids(c)
	if !ok {
		return
	}

	var req reqdto.QuestionnaireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.wizardCommands.SetQuestionnaire(c.Request.Context(), userID, sessionID, req)
	if err != nil {
		h.writeWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Accept terms and conditions
// @Tags wizard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body reqdto.TermsRequest true "Terms acceptance"
// @Success 200 {object} queries.WizardView
// @Router /bookings/wizard/{sessionId}/terms [put]
func (h *WizardHandler) AcceptTerms(c *gin.Context) {
	userID, sessionID, ok := h.ids(c)
	if !ok {
		return
	}

	var req reqdto.TermsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.wizardCommands.AcceptTerms(c.Request.Context(), userID, sessionID, req)
	if err != nil {
		h.writeWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *WizardHandler) ids(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return uuid.Nil, uuid.Nil, false
	}

	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return uuid.Nil, uuid.Nil, false
	}
	return userID, sessionID, true
}

func (h *WizardHandler) writeWizardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, commands.ErrWizardNotStarted):
		c.JSON(http.StatusNotFound, gin.H{"error": "No active checkout for this session"})
	case errors.Is(err, wizard.ErrSessionNotBookable):
		c.JSON(http.StatusConflict, gin.H{"error": "Session is not open for booking"})
	case errors.Is(err, wizard.ErrStepOutOfOrder):
		c.JSON(http.StatusConflict, gin.H{"error": "Earlier checkout steps are incomplete"})
	case errors.Is(err, wizard.ErrSelfBookingNotAllowed):
		c.JSON(http.StatusForbidden, gin.H{"error": "Only young adult accounts may book for themselves"})
	case errors.Is(err, student.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "Student belongs to a different account"})
	case errors.Is(err, wizard.ErrQuestionnaireNotInFlow):
		c.JSON(http.StatusConflict, gin.H{"error": "This session has no questionnaire step"})
	case errors.Is(err, wizard.ErrContactRequired),
		errors.Is(err, wizard.ErrContactNotApplicable),
		errors.Is(err, wizard.ErrTermsNotAccepted),
		errors.Is(err, commands.ErrStudentNotChosen),
		errors.Is(err, booking.ErrMedicalNotesRequired),
		errors.Is(err, booking.ErrSupportNeedsRequired),
		errors.Is(err, booking.ErrIncompleteContact),
		errors.Is(err, booking.ErrIncompleteQuestionnaire),
		errors.Is(err, booking.ErrAnswerTooLong):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
