package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/riobonito-sos/backend/internal/config"
	"github.com/riobonito-sos/backend/internal/handler"
	"github.com/riobonito-sos/backend/internal/logging"
	"github.com/riobonito-sos/backend/internal/service"
	"github.com/riobonito-sos/backend/pkg/ghostpay"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	cfg := config.Load()
	if cfg.SecretKey == "" {
		slog.Warn("GHOSTPAY_SECRET_KEY não configurada; /create-payment vai falhar até configurar")
	}

	client := ghostpay.NewClient(ghostpay.Config{
		URL:           cfg.GhostPayURL,
		SecretKey:     cfg.SecretKey,
		CompanyID:     cfg.CompanyID,
		Scheme:        ghostpay.AuthScheme(cfg.AuthScheme),
		DebugPayloads: cfg.DebugPayloads,
	})
	paymentService := service.NewPaymentService(client)

	h := handler.New(cfg.CORSOrigin)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	debugHandler := handler.NewDebugHandler(paymentService, cfg)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("POST /create-payment", paymentHandler.CreatePayment)

	// Endpoints de diagnóstico (credenciais sempre mascaradas)
	mux.HandleFunc("GET /test-ghostpay", debugHandler.TestGhostPay)
	mux.HandleFunc("GET /debug-config", debugHandler.DebugConfig)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Port),
		Handler:     handler.RequestLogger(h.CORS(mux)),
		ReadTimeout: 10 * time.Second,
		// A chamada à GhostPay pode levar até 30s; a escrita precisa sobrar.
		WriteTimeout: 35 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "ghostpay_url", cfg.GhostPayURL,
			"auth_scheme", cfg.AuthScheme, "secret_key", config.MaskSecret(cfg.SecretKey))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
