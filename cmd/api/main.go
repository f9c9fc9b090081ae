package main

import (
	"fmt"
	"net/http"

	"github.com/reboot-ai/crm-backend-go/internal/config"
	appHTTP "github.com/reboot-ai/crm-backend-go/internal/handler/http"
	"github.com/reboot-ai/crm-backend-go/internal/pkg/database"
	"github.com/reboot-ai/crm-backend-go/internal/pkg/jwt"
	"github.com/reboot-ai/crm-backend-go/internal/pkg/oauth"
	"github.com/reboot-ai/crm-backend-go/internal/pkg/session"
	"github.com/reboot-ai/crm-backend-go/internal/repository/postgresql"
	attendanceService "github.com/reboot-ai/crm-backend-go/internal/service/attendance"
	serviceAuth "github.com/reboot-ai/crm-backend-go/internal/service/auth"
	blogService "github.com/reboot-ai/crm-backend-go/internal/service/blog"
	businessService "github.com/reboot-ai/crm-backend-go/internal/service/business"
	clientService "github.com/reboot-ai/crm-backend-go/internal/service/client"
	employeeService "github.com/reboot-ai/crm-backend-go/internal/service/employee"
	jobPostService "github.com/reboot-ai/crm-backend-go/internal/service/jobpost"
	reportService "github.com/reboot-ai/crm-backend-go/internal/service/report"
	leadService "github.com/reboot-ai/crm-backend-go/internal/service/websitelead"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	sessions, err := session.NewStore(cfg.RedisAddr(), cfg.Redis.Password, cfg.Redis.DB, cfg.RefreshTokenTTL())
	if err != nil {
		fmt.Println("Error connecting to redis:", err)
		return
	}
	defer sessions.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	targetRepo := postgresql.NewTargetRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	businessRepo := postgresql.NewBusinessRepository(db)
	clientRepo := postgresql.NewClientRepository(db)
	invoiceRepo := postgresql.NewInvoiceRepository(db)
	blogRepo := postgresql.NewBlogRepository(db)
	jobPostRepo := postgresql.NewJobPostRepository(db)
	leadRepo := postgresql.NewWebsiteLeadRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := serviceAuth.NewAuthService(userRepo, JWTService, GoogleService, sessions)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, targetRepo, businessRepo)
	reportSvc := reportService.NewReportService(employeeRepo, targetRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	businessSvc := businessService.NewBusinessService(businessRepo, employeeRepo)
	clientSvc := clientService.NewClientService(clientRepo, invoiceRepo)
	blogSvc := blogService.NewBlogService(blogRepo)
	jobPostSvc := jobPostService.NewJobPostService(jobPostRepo)
	leadSvc := leadService.NewLeadService(leadRepo)

	router := appHTTP.NewRouter(JWTService, cfg.App.Env, appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(JWTService, authSvc),
		Employee:    appHTTP.NewEmployeeHandler(employeeSvc),
		Report:      appHTTP.NewReportHandler(reportSvc),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		Business:    appHTTP.NewBusinessHandler(businessSvc),
		Client:      appHTTP.NewClientHandler(clientSvc),
		Blog:        appHTTP.NewBlogHandler(blogSvc),
		JobPost:     appHTTP.NewJobPostHandler(jobPostSvc),
		WebsiteLead: appHTTP.NewWebsiteLeadHandler(leadSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
