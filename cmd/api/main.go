package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/leavedesk/leave-backend-go/internal/config"
	appHTTP "github.com/leavedesk/leave-backend-go/internal/handler/http"
	"github.com/leavedesk/leave-backend-go/internal/pkg/database"
	"github.com/leavedesk/leave-backend-go/internal/pkg/email"
	"github.com/leavedesk/leave-backend-go/internal/pkg/jwt"
	"github.com/leavedesk/leave-backend-go/internal/pkg/sse"
	"github.com/leavedesk/leave-backend-go/internal/repository/postgresql"
	analyticsService "github.com/leavedesk/leave-backend-go/internal/service/analytics"
	serviceAuth "github.com/leavedesk/leave-backend-go/internal/service/auth"
	leaveService "github.com/leavedesk/leave-backend-go/internal/service/leave"
	notificationService "github.com/leavedesk/leave-backend-go/internal/service/notification"
	projectService "github.com/leavedesk/leave-backend-go/internal/service/project"
	userService "github.com/leavedesk/leave-backend-go/internal/service/user"
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

	userRepo := postgresql.NewUserRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveSlotRepo := postgresql.NewLeaveSlotRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	analyticsRepo := postgresql.NewAnalyticsRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	emailSvc, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	hub := sse.NewHub()
	notificationSvc := notificationService.NewNotificationService(notificationRepo, hub, notificationService.Config{})
	defer notificationSvc.Stop()

	authSvc := serviceAuth.NewAuthService(db, userRepo, JWTService, JWTRepository)
	userSvc := userService.NewUserService(db, userRepo)
	projectSvc := projectService.NewProjectService(projectRepo, userRepo)
	leaveSvc := leaveService.NewLeaveService(
		db,
		leaveRequestRepo,
		leaveSlotRepo,
		userRepo,
		notificationSvc,
		emailSvc,
		cfg.App.FrontendURL,
	)
	analyticsSvc := analyticsService.NewAnalyticsService(analyticsRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc, userSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	projectHandler := appHTTP.NewProjectHandler(projectSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc, JWTService)
	analyticsHandler := appHTTP.NewAnalyticsHandler(analyticsSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		userHandler,
		projectHandler,
		leaveHandler,
		notificationHandler,
		analyticsHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	// Drain the notification queue before the process exits.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down...")
	server.Close()
}
