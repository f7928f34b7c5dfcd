package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/geass0621/QuizCraft/internal/api/http"
	"github.com/geass0621/QuizCraft/internal/config"
	"github.com/geass0621/QuizCraft/internal/db"
	"github.com/geass0621/QuizCraft/internal/questionnaire"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	store := questionnaire.NewSQLStore(dbh)
	questionnaires := questionnaire.NewService(store)
	responses := questionnaire.NewResponseService(store)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	r.Route("/api", func(ar chi.Router) {
		ar.Use(httprate.LimitByIP(cfg.RateLimitRequests, cfg.RateLimitWindow))

		ar.Post("/questionnaires", api.CreateQuestionnaireHandler(questionnaires, cfg.FrontendURL))
		ar.Get("/questionnaires/{shareableToken}", api.GetQuestionnaireHandler(questionnaires))
		ar.Post("/responses", api.SubmitResponseHandler(responses))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","message":"QuizCraft API is running"}`))
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (db=%s)", cfg.HTTPAddr, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
