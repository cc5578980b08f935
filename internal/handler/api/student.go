package api

import (
	"errors"
	"net/http"

	"tastebuds/internal/domain/student"
	reqdto "tastebuds/internal/handler/dto/request"
	"tastebuds/internal/handler/middleware"
	"tastebuds/internal/infra"
	"tastebuds/internal/usecase/commands"
	"tastebuds/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StudentHandler struct {
	studentCommands commands.StudentCommands
	studentQueries  queries.StudentQueries
}

func NewStudentHandler(studentCommands commands.StudentCommands, studentQueries queries.StudentQueries) *StudentHandler {
	return &StudentHandler{
		studentCommands: studentCommands,
		studentQueries:  studentQueries,
	}
}

// @Summary List own students
// @Tags students
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.StudentView
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	students, err := h.studentQueries.ListByParent(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, students)
}

// @Summary Add a student
// @Tags students
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.StudentRequest true "Student"
// @Success 201 {object} queries.StudentView
// @Failure 400 {object} map[string]string
// @Router /students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.studentCommands.Create(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Get one student
// @Tags students
// @Security BearerAuth
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} queries.StudentView
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	studentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid student ID"})
		return
	}

	view, err := h.studentQueries.GetByID(c.Request.Context(), userID, studentID)
	if err != nil {
		h.writeStudentError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Update a student
// @Tags students
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param request body reqdto.StudentRequest true "Student"
// @Success 200 {object} queries.StudentView
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /students/{id} [put]
func (h *StudentHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	studentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid student ID"})
		return
	}

	var req reqdto.StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.studentCommands.Update(c.Request.Context(), userID, studentID, req)
	if err != nil {
		h.writeStudentError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Remove a student
// @Tags students
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /students/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	studentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid student ID"})
		return
	}

	if err := h.studentCommands.Delete(c.Request.Context(), userID, studentID); err != nil {
		h.writeStudentError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *StudentHandler) writeStudentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, student.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "Student belongs to a different account"})
	case infra.IsKind(err, infra.KindNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
	case errors.Is(err, student.ErrEmptyName), errors.Is(err, student.ErrInvalidDateOfBirth):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
