package api

import (
	"net/http"

	"tastebuds/internal/infra"
	"tastebuds/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogHandler serves the public, unauthenticated browse surface.
type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{catalogQueries: catalogQueries}
}

// @Summary List upcoming sessions
// @Tags catalog
// @Produce json
// @Param status query string false "Filter by session status"
// @Success 200 {array} queries.SessionView
// @Router /sessions [get]
func (h *CatalogHandler) ListSessions(c *gin.Context) {
	sessions, err := h.catalogQueries.ListUpcomingSessions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if status := c.Query("status"); status != "" {
		filtered := make([]*queries.SessionView, 0, len(sessions))
		for _, s := range sessions {
			if s.Status == status {
				filtered = append(filtered, s)
			}
		}
		sessions = filtered
	}
	c.JSON(http.StatusOK, sessions)
}

// @Summary Get one session
// @Tags catalog
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} queries.SessionView
// @Failure 404 {object} map[string]string
// @Router /sessions/{id} [get]
func (h *CatalogHandler) GetSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	view, err := h.catalogQueries.GetSession(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List classes
// @Tags catalog
// @Produce json
// @Success 200 {array} queries.ClassView
// @Router /classes [get]
func (h *CatalogHandler) ListClasses(c *gin.Context) {
	classes, err := h.catalogQueries.ListClasses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, classes)
}

// @Summary List venues
// @Tags catalog
// @Produce json
// @Success 200 {array} queries.VenueView
// @Router /venues [get]
func (h *CatalogHandler) ListVenues(c *gin.Context) {
	venues, err := h.catalogQueries.ListVenues(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, venues)
}

// @Summary List recipes
// @Tags catalog
// @Produce json
// @Success 200 {array} queries.RecipeView
// @Router /recipes [get]
func (h *CatalogHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.catalogQueries.ListRecipes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// @Summary List gallery images
// @Tags catalog
// @Produce json
// @Success 200 {array} queries.GalleryImageView
// @Router /gallery [get]
func (h *CatalogHandler) ListGallery(c *gin.Context) {
	images, err := h.catalogQueries.ListGallery(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, images)
}
