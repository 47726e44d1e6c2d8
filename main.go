package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"padoo/config"
	"padoo/cron"
	"padoo/database"
	bookingRepo "padoo/database/repository/booking"
	rotationRepo "padoo/database/repository/rotation"
	scheduleRepo "padoo/database/repository/schedule"
	staffRepo "padoo/database/repository/staff"
	"padoo/handlers"
	"padoo/middleware"
	"padoo/routes"
	"padoo/services/availability"
	"padoo/services/consultation"
	"padoo/services/reservation"
	"padoo/services/rotation"
	"padoo/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	staffRepository := staffRepo.NewMongoStaffRepo()
	scheduleRepository := scheduleRepo.NewMongoScheduleRepo()
	rotationRepository := rotationRepo.NewMongoRotationRepo()
	consultationRepository := bookingRepo.NewMongoConsultationRepo()
	reservationRepository := bookingRepo.NewMongoReservationRepo()

	// services.
	rotationService := &rotation.DefaultRotationService{
		Queues:   rotationRepository,
		Schedule: scheduleRepository,
		Staff:    staffRepository,
	}
	availabilityService := &availability.DefaultAvailabilityService{
		Consultations: consultationRepository,
		Reservations:  reservationRepository,
		Schedule:      scheduleRepository,
		Cache:         utils.GetCacheClient(),
	}
	consultationService := &consultation.DefaultConsultationService{
		Repo:         consultationRepository,
		Staff:        staffRepository,
		Availability: availabilityService,
		Rotation:     rotationService,
	}
	reservationService := &reservation.DefaultReservationService{
		Repo:         reservationRepository,
		Staff:        staffRepository,
		Availability: availabilityService,
	}

	// handlers.
	staffHandler := handlers.NewStaffHandler(staffRepository, logger)
	scheduleHandler := handlers.NewScheduleHandler(scheduleRepository, logger)
	rotationHandler := handlers.NewRotationHandler(rotationService, logger)
	consultationHandler := handlers.NewConsultationHandler(consultationService, logger)
	reservationHandler := handlers.NewReservationHandler(reservationService, logger)
	timelineHandler := handlers.NewTimelineHandler(availabilityService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		RegisterStaffHandler: staffHandler.RegisterStaffHandler,
		GetStaffHandler:      staffHandler.GetStaffHandler,
		ListStaffHandler:     staffHandler.ListStaffHandler,
		UpdateStaffHandler:   staffHandler.UpdateStaffHandler,

		SetScheduleHandler: scheduleHandler.SetScheduleHandler,
		GetScheduleHandler: scheduleHandler.GetScheduleHandler,

		InitQueueHandler: rotationHandler.InitQueueHandler,
		GetQueueHandler:  rotationHandler.GetQueueHandler,
		ServeHandler:     rotationHandler.ServeHandler,
		MoveHandler:      rotationHandler.MoveHandler,

		CreateConsultationHandler: consultationHandler.CreateConsultationHandler,
		VoidConsultationHandler:   consultationHandler.VoidConsultationHandler,
		ListConsultationsHandler:  consultationHandler.ListConsultationsHandler,

		CreateReservationHandler: reservationHandler.CreateReservationHandler,
		CancelReservationHandler: reservationHandler.CancelReservationHandler,
		ListReservationsHandler:  reservationHandler.ListReservationsHandler,

		GetTimelineHandler: timelineHandler.GetTimelineHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Daily rotation-queue pre-initialization.
	cron.InitQueueWorker(rotationService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
