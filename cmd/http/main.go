package main

import (
	"benefits-portal-service/internal/app/config"
	"benefits-portal-service/internal/app/contracts"
	"benefits-portal-service/internal/app/delivery/http/controllers"
	"benefits-portal-service/internal/app/delivery/http/middlewares"
	"benefits-portal-service/internal/app/delivery/http/routers"
	"benefits-portal-service/internal/app/drivers/database"
	"benefits-portal-service/internal/app/drivers/logger"
	"benefits-portal-service/internal/app/drivers/messaging"
	"benefits-portal-service/internal/app/drivers/storage"
	"benefits-portal-service/internal/app/services/acuity"
	"benefits-portal-service/internal/app/services/core/bookings"
	"benefits-portal-service/internal/app/services/core/brands"
	"benefits-portal-service/internal/app/services/core/documents"
	"benefits-portal-service/internal/app/services/core/ledger"
	"benefits-portal-service/internal/app/services/core/scheduling"
	"benefits-portal-service/internal/app/services/core/terms"
	"benefits-portal-service/internal/app/services/shared/eventqueue"
	"benefits-portal-service/internal/app/services/shared/locker"
	"benefits-portal-service/internal/app/services/shared/medicalterms"
	"benefits-portal-service/internal/app/services/shared/redis"
	sharedStorage "benefits-portal-service/internal/app/services/shared/storage"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	ctx := context.Background()
	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Postgres:       database.NewPostgresPool(ctx, driverConfig),
		Redis:          database.NewRedisClient(driverConfig),
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig),
		Minio:          storage.NewMinio(driverConfig),
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Error bootstraping the app: %v", err)
	}

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig
	zapLogger := bootstrap.Logger

	// Optional collaborators stay untyped nil interfaces when their driver is missing.
	var (
		ledgerRepository contracts.AppointmentLedgerRepository
		eventPublisher   contracts.SchedulingEventPublisher
		draftRepository  contracts.BookingDraftRepository
		lockerService    contracts.LockerService
	)

	if bootstrap.Postgres != nil {
		ledgerRepository = ledger.NewLedgerPostgresRepository(bootstrap.Postgres, zapLogger)
	}

	if bootstrap.RabbitMQ != nil {
		publisher, err := eventqueue.NewSchedulingEventPublisher(bootstrap.RabbitMQ, internalConfig.RabbitMQ.SchedulingEventsQueue, zapLogger)
		if err != nil {
			return err
		}
		eventPublisher = publisher
	}

	if bootstrap.Redis != nil {
		redisRepository := redis.NewRedisRepository(bootstrap.Redis)
		draftRepository = bookings.NewBookingDraftRedisRepository(redisRepository)
		lockerService = locker.NewLockService(redisRepository, zapLogger)
	} else {
		draftRepository = bookings.NewBookingDraftMemoryRepository()
		lockerService = locker.NewMemoryLockService()
	}

	// Scheduling
	acuityClient := acuity.NewAcuityClient(internalConfig.Scheduling, zapLogger)
	schedulingUsecase := scheduling.NewSchedulingUsecase(acuityClient, ledgerRepository, eventPublisher, internalConfig, zapLogger)
	schedulingController := controllers.NewSchedulingController(zapLogger, schedulingUsecase)

	// Booking drafts
	bookingDraftUsecase := bookings.NewBookingDraftUsecase(draftRepository, schedulingUsecase, lockerService, internalConfig, zapLogger)
	bookingDraftController := controllers.NewBookingDraftController(zapLogger, bookingDraftUsecase)

	// Medical terms
	termsClient := medicalterms.NewClient(medicalterms.ClientConfig{
		BaseUrl:       internalConfig.MedicalTerms.BaseUrl,
		Timeout:       internalConfig.MedicalTerms.Timeout,
		MaxResults:    internalConfig.MedicalTerms.MaxResults,
		CacheCapacity: internalConfig.MedicalTerms.CacheCapacity,
		CacheTTL:      internalConfig.MedicalTerms.CacheTTL,
	}, zapLogger)
	termsUsecase := terms.NewTermsUsecase(termsClient, zapLogger)
	termsController := controllers.NewTermsController(zapLogger, termsUsecase)

	// Documents
	var documentController *controllers.DocumentController
	if bootstrap.Postgres != nil && bootstrap.Minio != nil {
		documentRepository := documents.NewDocumentPostgresRepository(bootstrap.Postgres, zapLogger)
		minioStorage := sharedStorage.NewMinioStorage(bootstrap.Minio)
		documentUsecase := documents.NewDocumentUsecase(documentRepository, minioStorage, internalConfig, zapLogger)
		documentController = controllers.NewDocumentController(zapLogger, documentUsecase)
	}

	// Brand configs
	var brandController *controllers.BrandController
	if bootstrap.Postgres != nil {
		brandConfigRepository := brands.NewBrandConfigPostgresRepository(bootstrap.Postgres, zapLogger)
		brandConfigUsecase := brands.NewBrandConfigUsecase(brandConfigRepository, zapLogger)
		brandController = controllers.NewBrandController(zapLogger, brandConfigUsecase)
	}

	healthController := controllers.NewHealthController(internalConfig.App.Version, map[string]bool{
		"postgres": bootstrap.Postgres != nil,
		"redis":    bootstrap.Redis != nil,
		"rabbitmq": bootstrap.RabbitMQ != nil,
		"minio":    bootstrap.Minio != nil,
	})

	middlewareInstance := middlewares.NewMiddlewares(zapLogger, internalConfig, bookingDraftUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewareInstance,
		healthController,
		schedulingController,
		bookingDraftController,
		termsController,
		documentController,
		brandController,
	)
	return nil
}
