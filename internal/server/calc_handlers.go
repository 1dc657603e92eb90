package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/credwise/credwise/internal/cache"
	"github.com/credwise/credwise/pkg/dti"
	"github.com/credwise/credwise/pkg/eligibility"
	"github.com/credwise/credwise/pkg/format"
	"github.com/credwise/credwise/pkg/loans"
	"github.com/credwise/credwise/pkg/mathutil"
	"github.com/credwise/credwise/pkg/output"
	"github.com/credwise/credwise/pkg/score"
	"github.com/credwise/credwise/pkg/validation"
	"go.uber.org/zap"
)

type loanRequest struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
	Term              int     `json:"term"`
	TermUnit          string  `json:"termUnit,omitempty"` // months (default) or years
}

type loanResponse struct {
	loans.AmortizationResult
	CSV      string `json:"csv"`
	Duration string `json:"duration"`
}

func (h *handler) handleLoan(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleLoan"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()

	var req loanRequest
	if err := h.decodeRequest(w, r, &req); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return
	}

	termMonths, err := validation.TermInMonths(req.Term, req.TermUnit)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}
	if err := validation.ValidateLoanInput(req.Principal, req.AnnualRatePercent, termMonths); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	if done := h.serveCached(w, r, "loan", req, op); done {
		return
	}

	result := h.simulator.Amortize(req.Principal, req.AnnualRatePercent, termMonths)

	response := loanResponse{
		AmortizationResult: result,
		CSV:                output.ScheduleCSV(result),
		Duration:           time.Since(start).String(),
	}

	h.logger.Info("loan amortization computed",
		zap.String("op", op),
		zap.Float64("monthlyPayment", result.MonthlyPayment),
		zap.Int("termMonths", termMonths),
	)

	h.writeAndCache(w, r, "loan", req, response, op)
}

type payoffRequest struct {
	Balance           float64 `json:"balance"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
	MonthlyPayment    float64 `json:"monthlyPayment"`
}

type payoffResponse struct {
	loans.PayoffResult
	CSV      string `json:"csv"`
	Duration string `json:"duration"`
}

func (h *handler) handlePayoff(w http.ResponseWriter, r *http.Request) {
	const op = "server.handlePayoff"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()

	var req payoffRequest
	if err := h.decodeRequest(w, r, &req); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return
	}

	if err := validation.ValidatePayoffInput(req.Balance, req.AnnualRatePercent, req.MonthlyPayment); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	if done := h.serveCached(w, r, "payoff", req, op); done {
		return
	}

	result, err := h.simulator.Payoff(req.Balance, req.AnnualRatePercent, req.MonthlyPayment)
	if errors.Is(err, loans.ErrPaymentTooLow) {
		minimum := loans.MinimumViablePayment(req.Balance, req.AnnualRatePercent)
		h.writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error": fmt.Sprintf(
				"your monthly payment is less than the monthly interest; it must be higher than %s to reduce the principal",
				format.Currency(minimum)),
			"paymentTooLow":  true,
			"minimumPayment": mathutil.Round(minimum),
		})
		return
	}
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("payoff simulation failed: %v", err), op)
		return
	}

	response := payoffResponse{
		PayoffResult: result,
		CSV:          output.PayoffCSV(result),
		Duration:     time.Since(start).String(),
	}

	h.logger.Info("payoff computed",
		zap.String("op", op),
		zap.Int("months", result.Months),
		zap.Bool("capped", result.Capped),
	)

	h.writeAndCache(w, r, "payoff", req, response, op)
}

type savingsRequest struct {
	InitialDeposit      float64 `json:"initialDeposit"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	AnnualRatePercent   float64 `json:"annualRatePercent"`
	Years               int     `json:"years"`
}

func (h *handler) handleSavings(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSavings"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req savingsRequest
	if err := h.decodeRequest(w, r, &req); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return
	}

	if err := validation.ValidateSavingsInput(
		req.InitialDeposit, req.MonthlyContribution, req.AnnualRatePercent, req.Years); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	result := h.projector.Project(req.InitialDeposit, req.MonthlyContribution, req.AnnualRatePercent, req.Years)
	h.writeJSON(w, http.StatusOK, result)
}

type creditScoreResponse struct {
	Score  int    `json:"score"`
	Rating string `json:"rating"`
}

func (h *handler) handleCreditScore(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCreditScore"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var factors score.Factors
	if err := h.decodeRequest(w, r, &factors); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return
	}

	estimated := score.EstimateCreditScore(validation.NormalizeScoreFactors(factors))
	h.writeJSON(w, http.StatusOK, creditScoreResponse{
		Score:  estimated,
		Rating: score.CreditRating(estimated),
	})
}

type dtiRequest struct {
	MonthlyIncome float64 `json:"monthlyIncome"`
	MonthlyDebt   float64 `json:"monthlyDebt"`
}

type dtiResponse struct {
	Ratio       float64 `json:"ratio"`
	Rating      string  `json:"rating"`
	Description string  `json:"description"`
}

func (h *handler) handleDTI(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleDTI"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req dtiRequest
	if err := h.decodeRequest(w, r, &req); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return
	}

	if err := validation.ValidateDTIInput(req.MonthlyIncome, req.MonthlyDebt); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	ratio := dti.Ratio(req.MonthlyIncome, req.MonthlyDebt)
	assessment := dti.Rate(ratio)
	h.writeJSON(w, http.StatusOK, dtiResponse{
		Ratio:       mathutil.Round(ratio),
		Rating:      assessment.Rating,
		Description: assessment.Description,
	})
}

func (h *handler) handleEligibility(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleEligibility"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var input eligibility.Input
	if err := h.decodeRequest(w, r, &input); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return
	}

	if err := validation.ValidateEligibilityInput(input); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	result := h.resolver.Resolve(input)

	h.logger.Info("eligibility resolved",
		zap.String("op", op),
		zap.String("loanType", input.LoanType),
		zap.Float64("maxPrincipal", result.MaxEligiblePrincipal),
	)

	h.writeJSON(w, http.StatusOK, result)
}

// serveCached writes a previously cached response for the given request
// payload if one exists, reporting whether the request was served.
func (h *handler) serveCached(w http.ResponseWriter, r *http.Request, prefix string, payload interface{}, op string) bool {
	if h.cache == nil {
		return false
	}

	key, err := cache.Key(prefix, payload)
	if err != nil {
		h.logger.Warn("failed to build cache key", zap.String("op", op), zap.Error(err))
		return false
	}

	cached, ok := h.cache.Get(r.Context(), key)
	if !ok {
		return false
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(cached)); err != nil {
		h.logger.Error("failed to write cached response", zap.String("op", op), zap.Error(err))
	}
	return true
}

// writeAndCache writes the response and stores its encoding for later
// requests with the same payload. Cache failures are logged, not surfaced.
func (h *handler) writeAndCache(w http.ResponseWriter, r *http.Request, prefix string, payload, response interface{}, op string) {
	h.writeJSON(w, http.StatusOK, response)

	if h.cache == nil {
		return
	}

	key, err := cache.Key(prefix, payload)
	if err != nil {
		h.logger.Warn("failed to build cache key", zap.String("op", op), zap.Error(err))
		return
	}

	encoded, err := encodeForCache(response)
	if err != nil {
		h.logger.Warn("failed to encode response for cache", zap.String("op", op), zap.Error(err))
		return
	}

	if err := h.cache.Set(r.Context(), key, encoded); err != nil {
		h.logger.Warn("failed to store cached response", zap.String("op", op), zap.Error(err))
	}
}
