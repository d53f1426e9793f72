package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mottivme/socialfy/internal/infra/database"
	"github.com/mottivme/socialfy/internal/infra/http/handlers"
	"github.com/mottivme/socialfy/internal/infra/http/middleware"
	"github.com/mottivme/socialfy/internal/infra/integration/sender"
	"github.com/mottivme/socialfy/internal/infra/mail"
	"github.com/mottivme/socialfy/internal/infra/queue"
	"github.com/mottivme/socialfy/internal/infra/worker"
	"github.com/mottivme/socialfy/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "user"),
		envOr("RABBITMQ_PASS", "password"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		panic(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositórios
	accountRepo := database.NewSendingAccountRepository(db)
	sendLogRepo := database.NewSendLogRepository(db)
	leadRepo := database.NewLeadRepository(db)

	// 2. Adapters
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), 587, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
	)

	// 3. Engines de decisão. RNG explícito e com seed própria: nada de
	// rand global, testes fixam a seed.
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	scorer := usecase.NewLeadScorer()
	composer := usecase.NewMessageComposer(rng)
	quota := usecase.NewQuotaManager(accountRepo, sendLogRepo, mailSender)

	outreachUC := usecase.NewOutreachUseCase(scorer, composer, quota, producer, leadRepo)

	// 4. Rate limiter do webhook (janela deslizante por IP)
	limiter := middleware.NewRateLimiter(
		envIntOr("RATE_LIMIT_MAX", 30),
		time.Duration(envIntOr("RATE_LIMIT_WINDOW_SECONDS", 60))*time.Second,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pruneWorker := worker.NewLimiterPruneWorker(limiter)
	go pruneWorker.Start(ctx)

	// 5. Worker de despacho (consome a fila e chama o serviço de automação)
	senderClient := sender.NewClient(
		envOr("SENDER_URL", "http://localhost:8090"),
		os.Getenv("SENDER_API_KEY"),
	)
	dispatchWorker := queue.NewWorker(rabbitMQ.Ch, senderClient, quota, sendLogRepo)
	go dispatchWorker.Start(queue.QueueName)

	// 6. Handlers
	scoreHandler := handlers.NewScoreHandler(scorer, composer)
	outreachHandler := handlers.NewOutreachHandler(outreachUC)
	accountHandler := handlers.NewAccountHandler(accountRepo, quota)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn, limiter)

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Group(func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Post("/webhook/score-lead", scoreHandler.HandleScore)
		r.Post("/webhook/compose-message", scoreHandler.HandleCompose)
		r.Post("/webhook/outreach", outreachHandler.Handle)
	})

	r.Post("/api/accounts", accountHandler.HandleCreate)
	r.Get("/api/accounts/{tenantId}", accountHandler.HandleList)
	r.Delete("/api/accounts/{id}", accountHandler.HandleDelete)
	r.Post("/api/accounts/{id}/block", accountHandler.HandleBlock)
	r.Post("/api/accounts/{id}/unblock", accountHandler.HandleUnblock)
	r.Get("/api/stats/{tenantId}", accountHandler.HandleTenantStats)
	r.Get("/api/ratelimit/stats", healthHandler.HandleRateLimitStats)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":8080"
	log.Printf("🔥 Server Socialfy rodando na porta %s", port)
	http.ListenAndServe(port, r)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
