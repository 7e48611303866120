// Package http serves the JSON API: transaction lifecycle, user profile, and
// per-user financial insights.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lokesh-122/SmartMoney/internal/core"
)

var (
	errMissingUser   = errors.New("missing user id (X-User-ID header or user_id query parameter)")
	errInvalidAmount = errors.New("amount must be a positive decimal number")
	errInvalidDate   = errors.New("date must be RFC 3339 or YYYY-MM-DD")
)

// userID extracts the caller's user ID from the header or query string.
func userID(r *http.Request) (string, error) {
	if id := strings.TrimSpace(r.Header.Get("X-User-ID")); id != "" {
		return id, nil
	}
	if id := strings.TrimSpace(r.URL.Query().Get("user_id")); id != "" {
		return id, nil
	}
	return "", errMissingUser
}

// createTransactionRequest is the POST /api/transactions body. Amount comes
// in as a JSON number or string and is parsed decimally so values like
// "10.10" survive the trip exactly.
type createTransactionRequest struct {
	Amount      json.Number `json:"amount"`
	Category    string      `json:"category"`
	Type        string      `json:"type"`
	Date        string      `json:"date"`
	Description string      `json:"description"`
}

// parseAmount rejects anything that is not a strictly positive decimal.
func parseAmount(raw json.Number) (float64, error) {
	s := strings.TrimSpace(raw.String())
	if s == "" {
		return 0, errInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errInvalidAmount
	}
	if d.Sign() <= 0 {
		return 0, errInvalidAmount
	}
	return d.InexactFloat64(), nil
}

// parseDate accepts RFC 3339 timestamps and bare dates; empty defaults to now.
func parseDate(raw string, now time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Time{}, errInvalidDate
}

// toTransaction validates and converts the request into a domain transaction
// for the given user. Unknown categories collapse into "other".
func (req createTransactionRequest) toTransaction(uid string, now time.Time) (core.Transaction, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return core.Transaction{}, err
	}

	date, err := parseDate(req.Date, now)
	if err != nil {
		return core.Transaction{}, err
	}

	tx := core.Transaction{
		UserID:      uid,
		Amount:      amount,
		Category:    core.NormalizeCategory(req.Category),
		Type:        core.TransactionType(strings.ToLower(strings.TrimSpace(req.Type))),
		Date:        date,
		Description: strings.TrimSpace(req.Description),
	}
	if err := tx.Type.Validate(); err != nil {
		return core.Transaction{}, err
	}
	if !tx.Category.ValidFor(tx.Type) {
		tx.Category = core.CategoryOther
	}
	return tx, nil
}

// profileRequest is the PUT /api/profile body.
type profileRequest struct {
	Income       json.Number `json:"income"`
	SavingsGoal  json.Number `json:"savingsGoal"`
	RiskAppetite string      `json:"riskAppetite"`
}

func (req profileRequest) toProfile() (core.UserProfile, error) {
	income, err := parseNonNegative(req.Income)
	if err != nil {
		return core.UserProfile{}, errors.New("income must be a non-negative decimal number")
	}
	goal, err := parseNonNegative(req.SavingsGoal)
	if err != nil {
		return core.UserProfile{}, errors.New("savingsGoal must be a non-negative decimal number")
	}
	risk, err := core.ParseRiskLevel(req.RiskAppetite)
	if err != nil {
		return core.UserProfile{}, err
	}
	return core.UserProfile{Income: income, SavingsGoal: goal, RiskAppetite: risk}, nil
}

func parseNonNegative(raw json.Number) (float64, error) {
	s := strings.TrimSpace(raw.String())
	if s == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	if d.Sign() < 0 {
		return 0, errors.New("negative value")
	}
	return d.InexactFloat64(), nil
}
