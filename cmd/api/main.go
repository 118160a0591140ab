package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/bensapovits/studiously/internal/entity"
	"github.com/bensapovits/studiously/internal/infra/auth"
	"github.com/bensapovits/studiously/internal/infra/config"
	"github.com/bensapovits/studiously/internal/infra/database"
	"github.com/bensapovits/studiously/internal/infra/http/handlers"
	"github.com/bensapovits/studiously/internal/infra/http/middleware"
	"github.com/bensapovits/studiously/internal/infra/logger"
	"github.com/bensapovits/studiously/internal/infra/mail"
	"github.com/bensapovits/studiously/internal/infra/queue"
	"github.com/bensapovits/studiously/internal/infra/scheduler"
	"github.com/bensapovits/studiously/internal/infra/worker"
	"github.com/bensapovits/studiously/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg)

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitUser, cfg.RabbitPass, cfg.RabbitHost, cfg.RabbitPort)
	if err != nil {
		logrus.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositories
	contactRepo := database.NewContactRepository(db)
	followUpRepo := database.NewFollowUpRepository(db)
	taskRepo := database.NewTaskRepository(db)
	eventRepo := database.NewEventRepository(db)
	noteRepo := database.NewNoteRepository(db)

	// 2. Auth, queue and mail adapters
	validator := auth.NewTokenValidator([]byte(cfg.JWTSecret), cfg.JWTIssuer, cfg.JWTAudience)
	identity := auth.NewContextIdentity()
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom)

	// 3. Use cases
	catalog := entity.NewCatalog()
	transitionUC := usecase.NewStageTransitionUseCase(catalog, contactRepo, identity)
	schedulerUC := usecase.NewFollowUpSchedulerUseCase(followUpRepo, identity)
	boardUC := usecase.NewBoardUseCase(catalog, transitionUC, schedulerUC, identity)
	contactUC := usecase.NewContactUseCase(catalog, contactRepo, identity)
	taskUC := usecase.NewTaskUseCase(taskRepo, identity)
	eventUC := usecase.NewEventUseCase(eventRepo, identity)
	noteUC := usecase.NewNoteUseCase(noteRepo, identity)
	dispatchUC := usecase.NewReminderDispatchUseCase(followUpRepo, producer)

	// 4. Background work: mail consumer, reminder sweep, reconciliation
	mailWorker := queue.NewWorker(rabbitMQ.Ch, mailSender)
	go mailWorker.Start(queue.QueueName)

	reminderScheduler := scheduler.NewReminderScheduler(dispatchUC, cfg.CronSpecReminderSweep)
	reminderScheduler.Start()
	defer reminderScheduler.Stop()

	reconciler := worker.NewReconciliationWorker(contactRepo, time.Duration(cfg.ReconcileIntervalMin)*time.Minute)
	go reconciler.Start(context.Background())

	// 5. Handlers
	boardHandler := handlers.NewBoardHandler(boardUC, contactUC)
	contactHandler := handlers.NewContactHandler(contactUC)
	followUpHandler := handlers.NewFollowUpHandler(schedulerUC)
	taskHandler := handlers.NewTaskHandler(taskUC)
	eventHandler := handlers.NewEventHandler(eventUC)
	noteHandler := handlers.NewNoteHandler(noteUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(middleware.Metrics)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(validator))

		r.Post("/capture", contactHandler.HandleCapture)

		r.Route("/contacts", func(r chi.Router) {
			r.Get("/", contactHandler.HandleList)
			r.Post("/", contactHandler.HandleCreate)
			r.Get("/{id}", contactHandler.HandleGet)
			r.Put("/{id}", contactHandler.HandleUpdate)
			r.Delete("/{id}", contactHandler.HandleDelete)
			r.Get("/{id}/follow-up", followUpHandler.HandleGetByContact)
			r.Get("/{id}/notes", noteHandler.HandleListByContact)
		})

		r.Route("/board", func(r chi.Router) {
			r.Get("/{track}", boardHandler.HandleColumns)
			r.Post("/drop", boardHandler.HandleDrop)
			r.Post("/follow-up", boardHandler.HandleConfirmFollowUp)
		})

		r.Route("/follow-ups", func(r chi.Router) {
			r.Post("/{id}/complete", followUpHandler.HandleComplete)
			r.Post("/{id}/snooze", followUpHandler.HandleSnooze)
			r.Put("/{id}/frequency", followUpHandler.HandleUpdateFrequency)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", taskHandler.HandleList)
			r.Post("/", taskHandler.HandleCreate)
			r.Put("/{id}", taskHandler.HandleUpdate)
			r.Delete("/{id}", taskHandler.HandleDelete)
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", eventHandler.HandleList)
			r.Post("/", eventHandler.HandleCreate)
			r.Put("/{id}", eventHandler.HandleUpdate)
			r.Delete("/{id}", eventHandler.HandleDelete)
		})

		r.Route("/notes", func(r chi.Router) {
			r.Post("/", noteHandler.HandleCreate)
			r.Put("/{id}", noteHandler.HandleUpdate)
			r.Delete("/{id}", noteHandler.HandleDelete)
		})
	})

	addr := ":" + cfg.Port
	logrus.Infof("Studiously API listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
