// Command playground runs a small HTTP server over the SDK so the raw and
// hydrated pipelines can be exercised against live collaborators.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	ads "github.com/vtex/ads-sdk-go"
	"github.com/vtex/ads-sdk-go/adserver"
	"github.com/vtex/ads-sdk-go/config"
	"github.com/vtex/ads-sdk-go/observability"
)

func main() {
	cfg := config.Load()

	logger, err := observability.InitLoggerWithService(cfg.ServiceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}

	defer func() {
		if err := logger.Sync(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to sync logger: %v\n", err)
		}
	}()

	if err := run(logger, cfg); err != nil {
		logger.Error("server error", zap.Error(err))
		os.Exit(1)
	}
}

func run(logger *zap.Logger, cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.TracingEnabled {
		shutdown, err := observability.InitTracing(ctx, logger, cfg.ServiceName, cfg.TracingEndpoint, cfg.TracingSampleRate)
		if err != nil {
			return fmt.Errorf("init tracing: %w", err)
		}
		defer shutdown()
	}

	client := ads.New(cfg, logger, observability.NewPrometheusRegistry())
	h := &handlers{client: client, logger: logger}

	r := mux.NewRouter()
	r.HandleFunc("/v1/raw-ads", h.RawAds).Methods("POST")
	r.HandleFunc("/v1/hydrated-ads", h.HydratedAds).Methods("POST")
	r.HandleFunc("/healthz", h.Health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	logger.Info("playground running", zap.String("addr", srv.Addr))

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("listen: %w", err)
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.WriteTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

type handlers struct {
	client *ads.Client
	logger *zap.Logger
}

type adsRequest struct {
	Identity struct {
		AccountName string           `json:"accountName"`
		PublisherID string           `json:"publisherId"`
		UserID      string           `json:"userId,omitempty"`
		SessionID   string           `json:"sessionId,omitempty"`
		Channel     adserver.Channel `json:"channel,omitempty"`
	} `json:"identity"`
	Search struct {
		SelectedFacets []adserver.Facet `json:"selectedFacets,omitempty"`
		Term           string           `json:"term,omitempty"`
		SkuID          string           `json:"skuId,omitempty"`
	} `json:"search"`
	Placements map[adserver.Placement]adserver.PlacementBody `json:"placements"`
}

func (req *adsRequest) toArgs() ads.GetAdsArgs {
	// Anonymous playground sessions get fresh identifiers.
	userID := req.Identity.UserID
	if userID == "" {
		userID = uuid.NewString()
	}
	sessionID := req.Identity.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	return ads.GetAdsArgs{
		Identity: ads.Identity{
			AccountName: req.Identity.AccountName,
			PublisherID: req.Identity.PublisherID,
			UserID:      userID,
			SessionID:   sessionID,
			Channel:     req.Identity.Channel,
		},
		Search: ads.SearchParams{
			SelectedFacets: req.Search.SelectedFacets,
			Term:           req.Search.Term,
			SkuID:          req.Search.SkuID,
		},
		Placements: req.Placements,
	}
}

func (h *handlers) RawAds(w http.ResponseWriter, r *http.Request) {
	var req adsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := ads.GetRawAds(r.Context(), h.client, req.toArgs())
	if err != nil {
		h.logger.Error("raw ads failed", zap.Error(err))
		http.Error(w, "upstream failure", http.StatusBadGateway)
		return
	}

	writeJSON(w, h.logger, resp)
}

func (h *handlers) HydratedAds(w http.ResponseWriter, r *http.Request) {
	var req adsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := ads.GetHydratedSearchAds(r.Context(), h.client, req.toArgs())
	if err != nil {
		h.logger.Error("hydrated ads failed", zap.Error(err))
		http.Error(w, "upstream failure", http.StatusBadGateway)
		return
	}

	writeJSON(w, h.logger, resp)
}

func (h *handlers) Health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("failed to encode response", zap.Error(err))
	}
}
