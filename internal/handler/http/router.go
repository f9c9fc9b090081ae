package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/reboot-ai/crm-backend-go/internal/handler/http/middleware"
	"github.com/reboot-ai/crm-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth        AuthHandler
	Employee    EmployeeHandler
	Report      ReportHandler
	Attendance  AttendanceHandler
	Business    BusinessHandler
	Client      ClientHandler
	Blog        BlogHandler
	JobPost     JobPostHandler
	WebsiteLead WebsiteLeadHandler
}

func NewRouter(jwtService jwt.Service, env string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "reboot-crm"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "https://admin.rebootai.in"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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

	r.Route("/api", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", h.Auth.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", h.Auth.LoginWithGoogle)
				})
			})
		})

		// Public website surface: contact form, published blogs, open roles.
		r.Post("/websiteleads/create", h.WebsiteLead.Create)
		r.Get("/blogs/published", h.Blog.ListPublished)
		r.Get("/jobpost/active", h.JobPost.ListActive)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Legacy per-role listing paths; the dashboard calls these verbatim.
			r.Get("/telecaller/get", h.Employee.ListTelecallers)
			r.Get("/digitalmarketer/get", h.Employee.ListDigitalMarketers)
			r.Get("/bde/get", h.Employee.ListBDEs)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clockin", h.Attendance.ClockIn)
				r.Post("/clockout", h.Attendance.ClockOut)
				r.Get("/window", h.Attendance.Window)
				r.Get("/daycount", h.Attendance.DayCount)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/get", h.Attendance.List)
				})
			})

			r.Route("/business", func(r chi.Router) {
				r.Get("/get", h.Business.List)
				r.Post("/create", h.Business.Create)
				r.Get("/{id}", h.Business.Get)
				r.Put("/update/{id}", h.Business.Update)
				r.Put("/assign/{id}", h.Business.Assign)
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				// Legacy target-merge path kept for the dashboard.
				r.Put("/users/users/{id}", h.Employee.MergeTargets)

				r.Route("/employee", func(r chi.Router) {
					r.Post("/create", h.Employee.Create)
					r.Get("/{id}", h.Employee.Get)
					r.Put("/update/{id}", h.Employee.Update)
				})

				r.Route("/report", func(r chi.Router) {
					r.Get("/summary", h.Report.Summary)
					r.Get("/graph", h.Report.Graph)
					r.Get("/export", h.Report.Export)
				})

				r.Route("/client", func(r chi.Router) {
					r.Get("/get", h.Client.List)
					r.Post("/create", h.Client.Create)
					r.Get("/{id}", h.Client.Get)
					r.Put("/update/{id}", h.Client.Update)
					r.Delete("/delete/{id}", h.Client.Delete)
					r.Get("/{id}/invoices", h.Client.ListInvoices)

					r.Route("/invoice", func(r chi.Router) {
						r.Post("/create", h.Client.CreateInvoice)
						r.Get("/{id}", h.Client.GetInvoice)
						r.Put("/markpaid/{id}", h.Client.MarkInvoicePaid)
						r.Get("/{id}/pdf", h.Client.DownloadInvoicePDF)
					})
				})

				r.Route("/blogs", func(r chi.Router) {
					r.Get("/get", h.Blog.List)
					r.Post("/create", h.Blog.Create)
					r.Get("/{id}", h.Blog.Get)
					r.Put("/update/{id}", h.Blog.Update)
					r.Delete("/delete/{id}", h.Blog.Delete)
				})

				r.Route("/jobpost", func(r chi.Router) {
					r.Get("/get", h.JobPost.List)
					r.Post("/create", h.JobPost.Create)
					r.Get("/{id}", h.JobPost.Get)
					r.Put("/update/{id}", h.JobPost.Update)
					r.Delete("/delete/{id}", h.JobPost.Delete)
				})

				r.Route("/websiteleads", func(r chi.Router) {
					r.Get("/get", h.WebsiteLead.List)
					r.Get("/{id}", h.WebsiteLead.Get)
					r.Put("/status/{id}", h.WebsiteLead.UpdateStatus)
				})
			})
		})
	})
	return r
}
