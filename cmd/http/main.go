package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medicapp-gateway/internal/app/config"
	"medicapp-gateway/internal/app/contracts"
	"medicapp-gateway/internal/app/delivery/http/controllers"
	"medicapp-gateway/internal/app/delivery/http/middlewares"
	"medicapp-gateway/internal/app/delivery/http/routers"
	"medicapp-gateway/internal/app/drivers/database"
	"medicapp-gateway/internal/app/drivers/logger"
	"medicapp-gateway/internal/app/drivers/messaging"
	"medicapp-gateway/internal/app/services/audit"
	"medicapp-gateway/internal/app/services/auth"
	"medicapp-gateway/internal/app/services/events"
	"medicapp-gateway/internal/app/services/sessions"
	sharedredis "medicapp-gateway/internal/app/services/shared/redis"
	"medicapp-gateway/internal/app/services/upstream"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()
	requestLog := logrus.New()

	redisClient := database.NewRedisClient(driverConfig, log)
	chiRouter := chi.NewRouter()

	// Session store
	redisRepository := sharedredis.NewRedisRepository(redisClient)
	sessionExpiry := time.Duration(internalConfig.App.SessionExpiryTimeInHours) * time.Hour
	sessionService := sessions.NewSessionService(redisRepository, sessionExpiry, log)

	authUsecase := auth.NewAuthUsecase(
		upstream.NewUsersClient(internalConfig.Upstream),
		sessionService,
		buildAuditRepository(driverConfig, internalConfig),
		buildEventPublisher(driverConfig, internalConfig),
		internalConfig,
		log,
	)

	middlewareInstance := middlewares.NewMiddlewares(log, sessionService, internalConfig)

	routers.SetupRoutes(
		chiRouter,
		internalConfig,
		requestLog,
		middlewareInstance,
		controllers.NewAuthController(log, authUsecase),
		controllers.NewNavigationController(log),
		controllers.NewDashboardController(log),
		controllers.NewSessionController(log, sessionService),
	)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()
	log.Info("Gateway listening", zap.String("addr", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(internalConfig.App.ShutdownTimeoutInSeconds)*time.Second,
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exiting")
}

// The audit trail and the event stream are optional collaborators;
// disabling them swaps in nop implementations so the auth path never
// needs to know.
func buildAuditRepository(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) contracts.AuditRepository {
	if !internalConfig.App.AuditEnabled {
		return audit.NopAuditRepository{}
	}
	mongoClient := database.NewMongoDB(driverConfig)
	return audit.NewAuditMongoRepository(mongoClient, driverConfig.MongoDB.DbName)
}

func buildEventPublisher(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) contracts.EventPublisher {
	if !internalConfig.App.EventsEnabled {
		return events.NopEventPublisher{}
	}
	connection := messaging.NewRabbitMQ(driverConfig)
	return events.NewRabbitMQPublisher(connection)
}
