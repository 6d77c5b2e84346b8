package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/studentapp/backend/internal/config"
	"github.com/studentapp/backend/internal/delivery/httpd"
	"github.com/studentapp/backend/internal/repository"
	"github.com/studentapp/backend/internal/service"
	"github.com/studentapp/backend/internal/service/integration"
)

type App struct {
	server         *http.Server
	logger         zerolog.Logger
	config         *config.Config
	mongoClient    *mongo.Client
	eventPublisher integration.EventPublisher
}

func New(cfg *config.Config, log zerolog.Logger, mongoClient *mongo.Client, db *mongo.Database) (*App, error) {
	storageRepo, err := repository.NewMinIORepository(cfg.Storage, log)
	if err != nil {
		return nil, err
	}

	eventPublisher, err := integration.NewRabbitMQClient(
		cfg.RabbitMQ.URL,
		cfg.RabbitMQ.Exchange,
		cfg.RabbitMQ.RoutingKey,
		cfg.RabbitMQ.QueueName,
		log,
	)
	if err != nil {
		// Events are best effort; the API stays up without a broker.
		log.Error().Err(err).Msg("Failed to create RabbitMQ client")
		eventPublisher = nil
	}

	adminRepo := repository.NewAdminRepository(db, log)
	studentRepo := repository.NewStudentRepository(db, log)
	assignmentRepo := repository.NewAssignmentRepository(db, log)
	submissionRepo := repository.NewSubmissionRepository(db, log)
	lectureRepo := repository.NewLectureRepository(db, log)
	scheduleRepo := repository.NewScheduleRepository(db, log)
	queryRepo := repository.NewQueryRepository(db, log)

	adminService := service.NewAdminService(adminRepo, log)
	studentService := service.NewStudentService(studentRepo, log)
	assignmentService := service.NewAssignmentService(assignmentRepo, log)
	submissionService := service.NewSubmissionService(submissionRepo, storageRepo, eventPublisher, log, cfg.Upload)
	lectureService := service.NewLectureService(lectureRepo, log)
	scheduleService := service.NewScheduleService(scheduleRepo, log)
	queryService := service.NewQueryService(queryRepo, log)

	handler := httpd.NewHandler(
		adminService,
		studentService,
		assignmentService,
		submissionService,
		lectureService,
		scheduleService,
		queryService,
		log,
	)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	handler.RegisterRoutes(router)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &App{
		server:         server,
		logger:         log,
		config:         cfg,
		mongoClient:    mongoClient,
		eventPublisher: eventPublisher,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info().Msgf("Starting studentapp backend on %s", a.config.Server.Address)
	return a.server.ListenAndServe()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info().Msg("Shutting down studentapp backend...")

	if a.eventPublisher != nil {
		if err := a.eventPublisher.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close RabbitMQ connection")
		}
	}

	if a.mongoClient != nil {
		if err := a.mongoClient.Disconnect(ctx); err != nil {
			a.logger.Error().Err(err).Msg("Failed to disconnect from MongoDB")
		}
	}

	return a.server.Shutdown(ctx)
}
