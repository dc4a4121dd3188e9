package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// startServices verifies external dependencies before the worker
// accepts tasks, then exposes a probe endpoint.
func startServices(cfg *WorkerConfig) error {
	log.Println("[Startup] Worker starting...")

	checker := &healthChecker{
		redisClient: redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}),
	}
	defer checker.redisClient.Close()

	if err := checker.checkRedis(); err != nil {
		return fmt.Errorf("redis check failed: %w", err)
	}
	log.Println("[Startup] Redis: OK")

	go startHealthCheckServer()

	return nil
}

type healthChecker struct {
	redisClient *redis.Client
}

func (h *healthChecker) checkRedis() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return h.redisClient.Ping(ctx).Err()
}

// startHealthCheckServer serves liveness/readiness probes on :9999.
func startHealthCheckServer() {
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"UP","service":"caminodevida-worker"}`))
	})
	http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"READY"}`))
	})

	log.Println("[Health] Starting health check server on :9999")
	if err := http.ListenAndServe(":9999", nil); err != nil {
		log.Printf("[Health] Failed to start: %v", err)
	}
}
