package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"property-calc/config"
	httpLayer "property-calc/http"
	"property-calc/repository"
	"property-calc/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	cache := newCache(cfg)
	provider := newProvider(cfg)

	mortgageService := service.NewMortgageService()
	investmentService := service.NewInvestmentService()
	rentVsBuyService := service.NewRentVsBuyService()
	analysisService := service.NewAnalysisService(
		provider,
		cache,
		service.WithAnalysisTTL(cfg.CacheTTL),
		service.WithAnalysisTimeout(cfg.AITimeout),
	)

	calculatorHandler := httpLayer.NewCalculatorHandler(mortgageService, investmentService, rentVsBuyService)
	analysisHandler := httpLayer.NewAnalysisHandler(analysisService, mortgageService, investmentService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpLayer.NewRouter(calculatorHandler, analysisHandler, rateLimiter),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.AITimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("API running on http://localhost:%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}

// newCache prefers Redis and falls back to memory when it is not reachable.
func newCache(cfg *config.Config) repository.CacheRepository {
	if cfg.RedisAddr == "" {
		return repository.NewMemoryCache()
	}

	redisCache := repository.NewRedisCache(cfg.RedisAddr)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		log.Printf("Warning: redis at %s unavailable, using in-memory cache: %v", cfg.RedisAddr, err)
		redisCache.Close()
		return repository.NewMemoryCache()
	}
	return redisCache
}

// newProvider returns nil when deal analysis is switched off.
func newProvider(cfg *config.Config) service.Provider {
	if !cfg.AIEnabled() {
		log.Println("AI deal analysis disabled: no provider credentials configured")
		return nil
	}

	switch cfg.AIProvider {
	case "gemini":
		provider, err := service.NewGeminiProvider(context.Background(), cfg.APIKey(), cfg.AIModel)
		if err != nil {
			log.Printf("Warning: AI deal analysis disabled: %v", err)
			return nil
		}
		return provider
	case "openai":
		return service.NewOpenAIProvider(cfg.APIKey(), cfg.AIModel)
	}
	return nil
}
