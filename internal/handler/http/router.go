package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/cmlabs-hris/workforce-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth         AuthHandler
	Employee     EmployeeHandler
	WorkingHours WorkingHoursHandler
	Leave        LeaveHandler
	Resignation  ResignationHandler
	Food         FoodHandler
	Wage         WageHandler
	Report       ReportHandler
	Dashboard    DashboardHandler
	Portal       PortalHandler
}

func NewRouter(logger *slog.Logger, allowedOrigins []string, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/admin/login", h.Auth.AdminLogin)
			r.Post("/employee/login", h.Auth.EmployeeLogin)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Get("/dashboard", h.Dashboard.GetDashboard)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", h.Employee.ListEmployees)
					r.Post("/", h.Employee.CreateEmployee)
					r.Get("/{id}", h.Employee.GetEmployee)
					r.Put("/{id}", h.Employee.UpdateEmployee)
					r.Delete("/{id}", h.Employee.DeleteEmployee)
				})

				r.Route("/working-hours", func(r chi.Router) {
					r.Get("/", h.WorkingHours.List)
					r.Post("/", h.WorkingHours.Create)
					r.Post("/check-in", h.WorkingHours.CheckIn)
					r.Post("/check-out", h.WorkingHours.CheckOut)
					r.Post("/import", h.WorkingHours.Import)
					r.Get("/{id}", h.WorkingHours.Get)
					r.Put("/{id}", h.WorkingHours.Update)
					r.Delete("/{id}", h.WorkingHours.Delete)
				})

				r.Route("/leave-requests", func(r chi.Router) {
					r.Get("/", h.Leave.ListRequests)
					r.Post("/", h.Leave.CreateRequest)
					r.Get("/{id}", h.Leave.GetRequest)
					r.Post("/{id}/approve", h.Leave.ApproveRequest)
					r.Post("/{id}/reject", h.Leave.RejectRequest)
					r.Delete("/{id}", h.Leave.DeleteRequest)
				})

				r.Route("/resignation-requests", func(r chi.Router) {
					r.Get("/", h.Resignation.ListRequests)
					r.Post("/", h.Resignation.CreateRequest)
					r.Get("/{id}", h.Resignation.GetRequest)
					r.Post("/{id}/approve", h.Resignation.ApproveRequest)
					r.Post("/{id}/reject", h.Resignation.RejectRequest)
					r.Delete("/{id}", h.Resignation.DeleteRequest)
				})

				r.Route("/food", func(r chi.Router) {
					r.Route("/items", func(r chi.Router) {
						r.Get("/", h.Food.ListItems)
						r.Post("/", h.Food.CreateItem)
						r.Get("/{id}", h.Food.GetItem)
						r.Put("/{id}", h.Food.UpdateItem)
						r.Delete("/{id}", h.Food.DeleteItem)
					})
					r.Route("/transactions", func(r chi.Router) {
						r.Get("/", h.Food.ListTransactions)
						r.Post("/", h.Food.CreateTransaction)
						r.Get("/{id}", h.Food.GetTransaction)
					})
				})

				r.Route("/wages", func(r chi.Router) {
					r.Get("/", h.Wage.List)
					r.Get("/{employeeID}", h.Wage.Get)
					r.Post("/{employeeID}/withdraw", h.Wage.Withdraw)
					r.Get("/{employeeID}/slip", h.Wage.Slip)
				})

				r.Get("/exports/{type}", h.Report.Export)
			})

			// Employee portal
			r.Route("/me", func(r chi.Router) {
				r.Use(middleware.EmployeeOnly)

				r.Get("/", h.Portal.Me)
				r.Post("/check-in", h.Portal.CheckIn)
				r.Post("/check-out", h.Portal.CheckOut)
				r.Get("/working-hours", h.Portal.MyWorkingHours)
				r.Get("/wage", h.Portal.MyWage)
				r.Get("/leave-requests", h.Portal.MyLeaveRequests)
				r.Post("/leave-requests", h.Portal.CreateLeaveRequest)
				r.Get("/resignation-requests", h.Portal.MyResignationRequests)
				r.Post("/resignation-requests", h.Portal.CreateResignationRequest)
			})
		})
	})
	return r
}
