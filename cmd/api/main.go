package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/luuuuuuuilaguardia/internship-tracker/internal/adapters/cache"
	adapterHTTP "github.com/luuuuuuuilaguardia/internship-tracker/internal/adapters/handler/http"
	"github.com/luuuuuuuilaguardia/internship-tracker/internal/adapters/repository"
	"github.com/luuuuuuuilaguardia/internship-tracker/internal/core/services"
	"github.com/luuuuuuuilaguardia/internship-tracker/internal/core/workers"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	startTime := time.Now()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbHost := envOr("DB_HOST", "localhost")
	dbPort := envOr("DB_PORT", "5432")
	serverPort := envOr("PORT", "8080")

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("Critical: JWT_SECRET is not set")
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPass, dbHost, dbPort, dbName)

	log.Println("Connecting to database...")

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		log.Fatalf("Critical: Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	log.Println("Database connected successfully.")

	rdb, err := cache.NewRedisClient(
		envOr("REDIS_HOST", "localhost"),
		envOr("REDIS_PORT", "6379"),
		os.Getenv("REDIS_PASSWORD"),
		0,
	)
	if err != nil {
		log.Printf("Redis unavailable, running without snapshot cache: %v", err)
		rdb = nil
	}

	userRepo := repository.NewPostgresUserRepository(db)
	attendanceRepo := repository.NewPostgresAttendanceRepository(db)

	// Assign through locals so a missing redis stays a true nil interface.
	var snapshotCache services.SnapshotCache
	var workerStore workers.SnapshotStore
	if rdb != nil {
		store := cache.NewRedisSnapshotStore(rdb)
		snapshotCache = store
		workerStore = store
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	worker := workers.NewSnapshotWorker(userRepo, attendanceRepo, workerStore)
	worker.Start(ctx)

	tokenService := services.NewTokenService(jwtSecret, "internship-tracker", 24*time.Hour, userRepo)
	authService := services.NewAuthService(userRepo)
	attendanceService := services.NewAttendanceService(attendanceRepo, worker)
	profileService := services.NewProfileService(userRepo, worker)
	statsService := services.NewStatsService(userRepo, attendanceRepo, snapshotCache)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:       adapterHTTP.NewAuthHandler(authService, tokenService),
		AttendanceHandler: adapterHTTP.NewAttendanceHandler(attendanceService),
		StatsHandler:      adapterHTTP.NewStatsHandler(statsService),
		ProfileHandler:    adapterHTTP.NewProfileHandler(profileService),
		TokenService:      tokenService,
		DB:                db,
		Redis:             rdb,
		StartTime:         startTime,
	})

	srv := &http.Server{
		Addr:         ":" + serverPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Internship Tracker API running on http://localhost:%s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}
