package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agendapro/config"
	"agendapro/cron"
	"agendapro/database"
	appointmentRepo "agendapro/database/repository/appointment"
	availabilityRepo "agendapro/database/repository/availability"
	professionalRepo "agendapro/database/repository/professional"
	serviceRepo "agendapro/database/repository/service"
	studentRepo "agendapro/database/repository/student"
	"agendapro/routes"
	"agendapro/services/availability"
	"agendapro/services/booking"
	"agendapro/services/calendar"
	"agendapro/services/catalog"
	"agendapro/services/professional"
	"agendapro/utils"

	"agendapro/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	db, err := database.Connect()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	authCache := utils.NewAuthCacheClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// repositories.
	profRepo := professionalRepo.NewMongoProfessionalRepo(db)
	availRepo := availabilityRepo.NewMongoAvailabilityRepo(db)
	apptRepo := appointmentRepo.NewMongoAppointmentRepo(db)
	svcRepo := serviceRepo.NewMongoServiceRepo(db)
	studRepo := studentRepo.NewMongoStudentRepo(db)

	// Calendar sync: real client when OAuth credentials are configured,
	// logging no-op otherwise.
	var calendarSync calendar.SyncService
	if config.AppConfig.GoogleClientID != "" && config.AppConfig.GoogleRefreshToken != "" {
		gs, err := calendar.NewGoogleSync(
			context.Background(),
			logger,
			config.AppConfig.GoogleClientID,
			config.AppConfig.GoogleClientSecret,
			config.AppConfig.GoogleRefreshToken,
			config.AppConfig.GoogleCalendarID,
		)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize Google Calendar sync: %v", err)
		}
		calendarSync = gs
	} else {
		calendarSync = &calendar.NoopSync{Logger: logger}
	}

	// services.
	professionalService := &professional.DefaultProfessionalService{
		Repo:     profRepo,
		Services: svcRepo,
	}
	catalogService := &catalog.DefaultCatalogService{
		Repo: svcRepo,
	}
	availabilityService := &availability.DefaultAvailabilityService{
		Blocks:       availRepo,
		Appointments: apptRepo,
		Services:     svcRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Appointments: apptRepo,
		Students:     studRepo,
		Services:     svcRepo,
		Calendar:     calendarSync,
		Reminders:    cron.NewReminderQueue(),
	}

	cron.InitReminderWorker()

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Auth:         handlers.NewAuthHandler(professionalService),
		Availability: handlers.NewAvailabilityHandler(availabilityService),
		Services:     handlers.NewServiceHandler(catalogService),
		Students:     handlers.NewStudentHandler(bookingService),
		Appointments: handlers.NewAppointmentHandler(bookingService),
		Public: handlers.NewPublicHandler(
			professionalService,
			catalogService,
			availabilityService,
			bookingService,
		),
		AuthCache:        authCache,
		ProfessionalRepo: profRepo,
	}

	routes.RegisterAuthRoutes(router, handlerBundle)
	routes.RegisterDashboardRoutes(router, handlerBundle)
	routes.RegisterPublicRoutes(router, handlerBundle)
	routes.RegisterHealthRoute(router)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}
