package main

import (
	"fmt"
	"net/http"

	"github.com/brickmart/console-backend-go/internal/config"
	appHTTP "github.com/brickmart/console-backend-go/internal/handler/http"
	"github.com/brickmart/console-backend-go/internal/pkg/database"
	"github.com/brickmart/console-backend-go/internal/pkg/jwt"
	"github.com/brickmart/console-backend-go/internal/pkg/oauth"
	"github.com/brickmart/console-backend-go/internal/repository/postgresql"
	attendanceService "github.com/brickmart/console-backend-go/internal/service/attendance"
	authService "github.com/brickmart/console-backend-go/internal/service/auth"
	campaignService "github.com/brickmart/console-backend-go/internal/service/campaign"
	catalogService "github.com/brickmart/console-backend-go/internal/service/catalog"
	customerService "github.com/brickmart/console-backend-go/internal/service/customer"
	dashboardService "github.com/brickmart/console-backend-go/internal/service/dashboard"
	employeeService "github.com/brickmart/console-backend-go/internal/service/employee"
	orderService "github.com/brickmart/console-backend-go/internal/service/order"
	salaryService "github.com/brickmart/console-backend-go/internal/service/salary"
	ticketService "github.com/brickmart/console-backend-go/internal/service/ticket"
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

	userRepo := postgresql.NewUserRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	customerRepo := postgresql.NewCustomerRepository(db)
	catalogRepo := postgresql.NewCatalogRepository(db)
	orderRepo := postgresql.NewOrderRepository(db)
	campaignRepo := postgresql.NewCampaignRepository(db)
	ticketRepo := postgresql.NewTicketRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleSvc := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := authService.NewAuthService(db, userRepo, jwtSvc, jwtRepo)
	employeeSvc := employeeService.NewEmployeeService(db, userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, userRepo)
	salarySvc := salaryService.NewSalaryService(db, salaryRepo, attendanceRepo, userRepo)
	customerSvc := customerService.NewCustomerService(db, customerRepo)
	catalogSvc := catalogService.NewCatalogService(db, catalogRepo)
	orderSvc := orderService.NewOrderService(db, orderRepo, catalogRepo, customerRepo)
	campaignSvc := campaignService.NewCampaignService(db, campaignRepo)
	ticketSvc := ticketService.NewTicketService(db, ticketRepo, customerRepo)
	dashboardSvc := dashboardService.NewDashboardService(db, dashboardRepo)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtSvc, authSvc, googleSvc, cfg.App.FrontendURL),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Salary:     appHTTP.NewSalaryHandler(salarySvc),
		Customer:   appHTTP.NewCustomerHandler(customerSvc),
		Catalog:    appHTTP.NewCatalogHandler(catalogSvc),
		Order:      appHTTP.NewOrderHandler(orderSvc),
		Campaign:   appHTTP.NewCampaignHandler(campaignSvc),
		Ticket:     appHTTP.NewTicketHandler(ticketSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
	}

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		Env:         cfg.App.Env,
		FrontendURL: cfg.App.FrontendURL,
	}, jwtSvc, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
