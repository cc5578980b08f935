package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tastebuds/internal/domain/user"
	"tastebuds/internal/handler/api"
	"tastebuds/internal/handler/middleware"
	"tastebuds/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	catalogHandler *api.CatalogHandler,
	studentHandler *api.StudentHandler,
	wizardHandler *api.WizardHandler,
	bookingHandler *api.BookingHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, catalogHandler, studentHandler, wizardHandler, bookingHandler, adminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	catalogHandler *api.CatalogHandler,
	studentHandler *api.StudentHandler,
	wizardHandler *api.WizardHandler,
	bookingHandler *api.BookingHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Public catalog, no authentication
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/sessions", Handler: catalogHandler.ListSessions},
			{Method: http.MethodGet, Path: "/sessions/:id", Handler: catalogHandler.GetSession},
			{Method: http.MethodGet, Path: "/classes", Handler: catalogHandler.ListClasses},
			{Method: http.MethodGet, Path: "/venues", Handler: catalogHandler.ListVenues},
			{Method: http.MethodGet, Path: "/recipes", Handler: catalogHandler.ListRecipes},
			{Method: http.MethodGet, Path: "/gallery", Handler: catalogHandler.ListGallery},
		})

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: authHandler.Signup},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		students := apiGroup.Group("/students")
		students.Use(authMiddleware.RequireAuth())
		{
			addRoutes(students, []route{
				{Method: http.MethodGet, Path: "", Handler: studentHandler.List},
				{Method: http.MethodPost, Path: "", Handler: studentHandler.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: studentHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: studentHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: studentHandler.Delete},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
			})

			wizard := bookings.Group("/wizard/:sessionId")
			addRoutes(wizard, []route{
				{Method: http.MethodPost, Path: "", Handler: wizardHandler.Start},
				{Method: http.MethodGet, Path: "", Handler: wizardHandler.Get},
				{Method: http.MethodPut, Path: "/participant", Handler: wizardHandler.SetParticipant},
				{Method: http.MethodPut, Path: "/medical", Handler: wizardHandler.SetMedical},
				{Method: http.MethodPut, Path: "/questionnaire", Handler: wizardHandler.SetQuestionnaire},
				{Method: http.MethodPut, Path: "/terms", Handler: wizardHandler.AcceptTerms},
				{Method: http.MethodPost, Path: "/commit", Handler: bookingHandler.Commit},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "/create-intent", Handler: bookingHandler.CreateIntent},
			})
		}

		emails := apiGroup.Group("/emails")
		emails.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleAdmin))
		{
			addRoutes(emails, []route{
				{Method: http.MethodPost, Path: "/send", Handler: adminHandler.SendEmail},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/venues", Handler: adminHandler.CreateVenue},
				{Method: http.MethodPut, Path: "/venues/:id", Handler: adminHandler.UpdateVenue},
				{Method: http.MethodDelete, Path: "/venues/:id", Handler: adminHandler.DeleteVenue},

				{Method: http.MethodPost, Path: "/classes", Handler: adminHandler.CreateClass},
				{Method: http.MethodPut, Path: "/classes/:id", Handler: adminHandler.UpdateClass},
				{Method: http.MethodDelete, Path: "/classes/:id", Handler: adminHandler.DeleteClass},

				{Method: http.MethodPost, Path: "/recipes", Handler: adminHandler.CreateRecipe},
				{Method: http.MethodPut, Path: "/recipes/:id", Handler: adminHandler.UpdateRecipe},
				{Method: http.MethodDelete, Path: "/recipes/:id", Handler: adminHandler.DeleteRecipe},

				{Method: http.MethodPost, Path: "/gallery", Handler: adminHandler.CreateGalleryImage},
				{Method: http.MethodDelete, Path: "/gallery/:id", Handler: adminHandler.DeleteGalleryImage},

				{Method: http.MethodGet, Path: "/sessions", Handler: adminHandler.ListSessions},
				{Method: http.MethodPost, Path: "/sessions", Handler: adminHandler.CreateSession},
				{Method: http.MethodPut, Path: "/sessions/:id", Handler: adminHandler.UpdateSession},
				{Method: http.MethodPatch, Path: "/sessions/:id/status", Handler: adminHandler.UpdateSessionStatus},

				{Method: http.MethodGet, Path: "/bookings", Handler: adminHandler.ListBookings},
				{Method: http.MethodPost, Path: "/bookings/:id/cancel", Handler: adminHandler.CancelBooking},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
