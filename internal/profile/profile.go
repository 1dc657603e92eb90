// Package profile defines the user financial profile and its store.
package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound reports a lookup for a user that does not exist.
	ErrNotFound = errors.New("user not found")

	// ErrEmailExists reports a registration against a taken email.
	ErrEmailExists = errors.New("email already registered")
)

// HistoryPoint is one month of a tracked series.
type HistoryPoint struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// Financial is the onboarding questionnaire result. Every attribute is
// optional; a nil field means the user skipped that question, which is
// distinct from an explicit zero.
type Financial struct {
	CreditScore            *int           `json:"creditScore,omitempty"`
	MonthlyIncome          *float64       `json:"monthlyIncome,omitempty"`
	MonthlyDebt            *float64       `json:"monthlyDebt,omitempty"`
	TotalSavings           *float64       `json:"totalSavings,omitempty"`
	TotalDebt              *float64       `json:"totalDebt,omitempty"`
	CreditHistory          []HistoryPoint `json:"creditHistory,omitempty"`
	SavingsHistory         []HistoryPoint `json:"savingsHistory,omitempty"`
	DebtHistory            []HistoryPoint `json:"debtHistory,omitempty"`
	HasCompletedOnboarding bool           `json:"hasCompletedOnboarding"`
}

// Merge overlays the set fields of other onto f, leaving unset fields
// untouched, mirroring partial profile updates from the onboarding flow.
func (f *Financial) Merge(other Financial) {
	if other.CreditScore != nil {
		f.CreditScore = other.CreditScore
	}
	if other.MonthlyIncome != nil {
		f.MonthlyIncome = other.MonthlyIncome
	}
	if other.MonthlyDebt != nil {
		f.MonthlyDebt = other.MonthlyDebt
	}
	if other.TotalSavings != nil {
		f.TotalSavings = other.TotalSavings
	}
	if other.TotalDebt != nil {
		f.TotalDebt = other.TotalDebt
	}
	if other.CreditHistory != nil {
		f.CreditHistory = other.CreditHistory
	}
	if other.SavingsHistory != nil {
		f.SavingsHistory = other.SavingsHistory
	}
	if other.DebtHistory != nil {
		f.DebtHistory = other.DebtHistory
	}
	if other.HasCompletedOnboarding {
		f.HasCompletedOnboarding = true
	}
}

// User is a registered account with its financial profile.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Financial    Financial `json:"financialData"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewUser creates a user with a fresh id and empty profile.
func NewUser(name, email, passwordHash string) *User {
	return &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
}

// Store persists users for the lifetime of a session. Implementations are
// deliberately transient; durable persistence is out of scope.
type Store interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
	UpdateFinancial(ctx context.Context, id string, data Financial) (*User, error)
	DeleteUser(ctx context.Context, id string) error
}
