package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stay-client/internal/handler/api"
	"stay-client/internal/handler/middleware"
	"stay-client/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Profile     *api.ProfileHandler
	Units       *api.UnitHandler
	Drafts      *api.DraftHandler
	Reservation *api.ReservationHandler
	Invoices    *api.InvoiceHandler
	Payments    *api.PaymentHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, sessions *middleware.SessionMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, sessions)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, sessions *middleware.SessionMiddleware) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		signedIn := []gin.HandlerFunc{sessions.RequireSession()}
		addRoutes(apiGroup.Group("/auth"), []route{
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
			{Method: http.MethodPost, Path: "/verify-2fa", Handler: h.Auth.VerifyTwoFactor},
			{Method: http.MethodGet, Path: "/me", Handler: h.Profile.Me, Mw: signedIn},
			{Method: http.MethodPost, Path: "/enable-2fa", Handler: h.Profile.EnableTwoFactor, Mw: signedIn},
			{Method: http.MethodPost, Path: "/confirm-2fa", Handler: h.Profile.ConfirmTwoFactor, Mw: signedIn},
			{Method: http.MethodPost, Path: "/disable-2fa", Handler: h.Profile.DisableTwoFactor, Mw: signedIn},
		})

		profile := apiGroup.Group("/profile")
		profile.Use(sessions.RequireSession())
		addRoutes(profile, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Profile.Get},
			{Method: http.MethodPut, Path: "", Handler: h.Profile.Update},
			{Method: http.MethodPut, Path: "/password", Handler: h.Profile.ChangePassword},
			{Method: http.MethodPut, Path: "/photo", Handler: h.Profile.ChangePhoto},
		})

		// the catalogue is public; a session is forwarded when present
		units := apiGroup.Group("/units")
		units.Use(sessions.OptionalSession())
		addRoutes(units, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Units.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Units.Get},
		})

		// drafts resolve auth themselves so an expired session still
		// yields a draft view with a login intent
		drafts := apiGroup.Group("/drafts")
		drafts.Use(sessions.DecodeSession())
		addRoutes(drafts, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Drafts.Open},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Drafts.Get},
			{Method: http.MethodPost, Path: "/:id/check", Handler: h.Drafts.Check},
			{Method: http.MethodPost, Path: "/:id/edit", Handler: h.Drafts.Edit},
			{Method: http.MethodPost, Path: "/:id/submit", Handler: h.Drafts.Submit},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Drafts.Discard},
		})

		reservations := apiGroup.Group("/reservations")
		reservations.Use(sessions.RequireSession())
		addRoutes(reservations, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
		})

		invoices := apiGroup.Group("/invoices")
		invoices.Use(sessions.RequireSession())
		addRoutes(invoices, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Invoices.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Invoices.Get},
			{Method: http.MethodGet, Path: "/:id/pdf", Handler: h.Invoices.DownloadPDF},
			{Method: http.MethodPost, Path: "/:id/payment-intent", Handler: h.Invoices.CreatePaymentIntent},
		})

		payments := apiGroup.Group("/payments")
		payments.Use(sessions.RequireSession())
		addRoutes(payments, []route{
			{Method: http.MethodPost, Path: "/confirm", Handler: h.Payments.Confirm},
		})
	}
}

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
