// Package server exposes the calculators and the mock auth flow over a
// JSON HTTP API.
package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/credwise/credwise/internal/auth"
	"github.com/credwise/credwise/internal/cache"
	"github.com/credwise/credwise/internal/middleware"
	"github.com/credwise/credwise/internal/profile"
	"github.com/credwise/credwise/pkg/constants"
	"github.com/credwise/credwise/pkg/eligibility"
	"github.com/credwise/credwise/pkg/loans"
	"github.com/credwise/credwise/pkg/savings"
	"go.uber.org/zap"
)

// Options wires the handler's collaborators. Nil fields get working
// in-process defaults so tests can construct a handler with zero setup.
type Options struct {
	Logger         *zap.Logger
	Version        string
	MaxRequestSize int64
	Cache          cache.Cache
	Store          profile.Store
	Sessions       *auth.JWTManager
	RateLimiter    *middleware.RateLimiter
	Metrics        *middleware.Metrics
}

type handler struct {
	logger         *zap.Logger
	version        string
	maxRequestSize int64
	cache          cache.Cache

	simulator *loans.Simulator
	projector *savings.Projector
	resolver  *eligibility.Resolver

	store         profile.Store
	authenticator *auth.PasswordAuthenticator
	sessions      *auth.JWTManager
}

// NewHandler constructs the HTTP handler that serves the calculator and
// auth APIs.
func NewHandler(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	version := strings.TrimSpace(opts.Version)
	if version == "" {
		version = "dev"
	}

	maxRequestSize := opts.MaxRequestSize
	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	store := opts.Store
	if store == nil {
		store = profile.NewMemoryStore()
	}

	sessions := opts.Sessions
	if sessions == nil {
		sessions = auth.NewJWTManager("", 0)
	}

	h := &handler{
		logger:         logger,
		version:        version,
		maxRequestSize: maxRequestSize,
		cache:          opts.Cache,
		simulator:      loans.NewSimulator(logger),
		projector:      savings.NewProjector(logger),
		resolver:       eligibility.NewResolver(logger),
		store:          store,
		authenticator:  auth.NewPasswordAuthenticator(store),
		sessions:       sessions,
	}

	mux := http.NewServeMux()

	// Calculator API endpoints
	mux.HandleFunc("/api/calc/loan", h.handleLoan)
	mux.HandleFunc("/api/calc/payoff", h.handlePayoff)
	mux.HandleFunc("/api/calc/savings", h.handleSavings)
	mux.HandleFunc("/api/calc/credit-score", h.handleCreditScore)
	mux.HandleFunc("/api/calc/dti", h.handleDTI)
	mux.HandleFunc("/api/calc/eligibility", h.handleEligibility)

	// Mock auth and profile endpoints
	mux.HandleFunc("/api/auth/register", h.handleRegister)
	mux.HandleFunc("/api/auth/login", h.handleLogin)
	mux.HandleFunc("/api/profile", h.handleProfile)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	var wrapped http.Handler = mux
	if opts.Metrics != nil {
		mux.Handle("/metrics", opts.Metrics.Handler())
		wrapped = opts.Metrics.Instrument(wrapped)
	}
	if opts.RateLimiter != nil {
		wrapped = middleware.RateLimit(opts.RateLimiter, wrapped)
	}
	wrapped = middleware.Logging(logger, wrapped)

	return wrapped
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// decodeRequest decodes a JSON request body into dst with the configured
// size limit applied.
func (h *handler) decodeRequest(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}
	return json.NewDecoder(r.Body).Decode(dst)
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	if h.logger != nil {
		h.logger.Error("request failed",
			zap.String("op", op),
			zap.Int("status", status),
			zap.String("error", msg),
		)
	}

	h.writeJSON(w, status, map[string]string{"error": msg})
}

// encodeForCache renders a response to the JSON string stored in the
// calculation cache.
func encodeForCache(payload interface{}) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
