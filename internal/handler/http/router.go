package http

import (
	"log/slog"
	"os"

	"github.com/brickmart/console-backend-go/internal/handler/http/middleware"
	"github.com/brickmart/console-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	Env         string
	FrontendURL string
}

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Salary     SalaryHandler
	Customer   CustomerHandler
	Catalog    CatalogHandler
	Order      OrderHandler
	Campaign   CampaignHandler
	Ticket     TicketHandler
	Dashboard  DashboardHandler
}

func NewRouter(cfg RouterConfig, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "brickmart-console"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
				r.Get("/callback/google", h.Auth.OAuthCallbackGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Get("/my", h.Attendance.GetMyAttendance)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Attendance.RecordAbsence)
					r.Get("/daily", h.Attendance.DailyReport)
					r.Get("/range", h.Attendance.RangeReport)
					r.Get("/summary", h.Attendance.MonthlySummary)
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", h.Employee.List)
					r.Post("/", h.Employee.Create)
					r.Get("/{id}", h.Employee.GetByID)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})

				r.Route("/salaries", func(r chi.Router) {
					r.Post("/reconcile", h.Salary.Reconcile)
					r.Get("/", h.Salary.ListByPeriod)
					r.Post("/{id}/pay", h.Salary.MarkPaid)
				})

				r.Get("/dashboard", h.Dashboard.GetOverview)

				r.Route("/customers", func(r chi.Router) {
					r.Get("/", h.Customer.List)
					r.Post("/", h.Customer.Create)
					r.Get("/{id}", h.Customer.GetByID)
					r.Put("/{id}", h.Customer.Update)
					r.Delete("/{id}", h.Customer.Delete)
				})

				r.Route("/categories", func(r chi.Router) {
					r.Get("/", h.Catalog.ListCategories)
					r.Post("/", h.Catalog.CreateCategory)
				})

				r.Route("/products", func(r chi.Router) {
					r.Get("/", h.Catalog.ListProducts)
					r.Post("/", h.Catalog.CreateProduct)
					r.Get("/{id}", h.Catalog.GetProduct)
					r.Put("/{id}", h.Catalog.UpdateProduct)
					r.Delete("/{id}", h.Catalog.DeleteProduct)
					r.Get("/{id}/variants", h.Catalog.ListVariants)
					r.Post("/{id}/variants", h.Catalog.CreateVariant)
				})

				r.Route("/inventory", func(r chi.Router) {
					r.Get("/", h.Catalog.ListInventory)
					r.Put("/{id}", h.Catalog.UpdateVariant)
					r.Put("/{id}/stock", h.Catalog.UpdateStock)
					r.Delete("/{id}", h.Catalog.DeleteVariant)
				})

				r.Route("/orders", func(r chi.Router) {
					r.Get("/", h.Order.List)
					r.Post("/", h.Order.Create)
					r.Get("/{id}", h.Order.GetByID)
					r.Put("/{id}/status", h.Order.UpdateStatus)
					r.Put("/{id}/payment-status", h.Order.UpdatePaymentStatus)
				})

				r.Route("/campaigns", func(r chi.Router) {
					r.Get("/", h.Campaign.List)
					r.Post("/", h.Campaign.Create)
					r.Get("/{id}", h.Campaign.GetByID)
					r.Put("/{id}/status", h.Campaign.UpdateStatus)
				})

				r.Route("/tickets", func(r chi.Router) {
					r.Get("/", h.Ticket.List)
					r.Post("/", h.Ticket.Create)
					r.Get("/{id}", h.Ticket.GetByID)
					r.Put("/{id}/status", h.Ticket.UpdateStatus)
				})
			})
		})
	})

	return r
}
