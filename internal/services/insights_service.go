package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lokesh-122/SmartMoney/internal/advisor"
	"github.com/lokesh-122/SmartMoney/internal/analytics"
	"github.com/lokesh-122/SmartMoney/internal/cache"
	"github.com/lokesh-122/SmartMoney/internal/core"
	"github.com/lokesh-122/SmartMoney/internal/storage"
)

// InsightsRepository is the slice of storage the insights service reads from.
type InsightsRepository interface {
	ListTransactions(ctx context.Context, userID string) ([]core.Transaction, error)
	GetProfile(ctx context.Context, userID string) (core.UserProfile, error)
}

// Forecast is the expense projection for the next calendar month.
type Forecast struct {
	PredictedExpense float64         `json:"predictedExpense"`
	Trend            analytics.Trend `json:"trend"`
}

// Insights bundles everything the dashboard endpoints serve for one user.
type Insights struct {
	Summary     analytics.Totals           `json:"summary"`
	Spending    []analytics.CategorySpend  `json:"spending"`
	Monthly     []analytics.MonthlyBucket  `json:"monthly"`
	Forecast    Forecast                   `json:"forecast"`
	Investments []advisor.InvestmentOption `json:"investments"`
	Tips        []advisor.SavingTip        `json:"tips"`
}

// InsightsService computes per-user analytics and recommendations, with an
// LRU cache in front. The cache is invalidated whenever the user writes.
type InsightsService struct {
	repo  InsightsRepository
	cache *cache.LRUCache[*Insights]
	now   func() time.Time
}

func NewInsightsService(repo InsightsRepository, cacheSize int, cacheTTL time.Duration) *InsightsService {
	return &InsightsService{
		repo:  repo,
		cache: cache.NewLRUCache[*Insights](cacheSize, cacheTTL),
		now:   time.Now,
	}
}

// Cache exposes the underlying cache for cleanup registration.
func (s *InsightsService) Cache() *cache.LRUCache[*Insights] {
	return s.cache
}

// Invalidate drops the cached insights for a user. Wire it to the
// transaction service's write callback.
func (s *InsightsService) Invalidate(userID string) {
	s.cache.Delete(userID)
}

// GetInsights returns the full insights bundle for a user, computing it if
// nothing fresh is cached.
func (s *InsightsService) GetInsights(ctx context.Context, userID string) (*Insights, error) {
	if cached, ok := s.cache.Get(userID); ok {
		return cached, nil
	}

	txs, err := s.repo.ListTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	profile, err := s.repo.GetProfile(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		// No profile yet: analytics still work, recommendations degrade to
		// their cold-start paths.
		profile = core.UserProfile{}
	} else if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	insights := s.compute(txs, profile)
	s.cache.Set(userID, insights)

	slog.InfoContext(ctx, "Insights computed",
		"user_id", userID,
		"transactions", len(txs),
		"investments", len(insights.Investments),
		"tips", len(insights.Tips))
	return insights, nil
}

func (s *InsightsService) compute(txs []core.Transaction, profile core.UserProfile) *Insights {
	now := s.now()

	topCategory, haveTop := analytics.TopSpendingCategory(txs)
	investable := advisor.InvestableAmount(profile, txs, now)

	return &Insights{
		Summary:  analytics.FinancialTotals(txs, now),
		Spending: analytics.SpendingByCategory(txs),
		Monthly:  analytics.MonthlyRollup(txs, analytics.DefaultRollupMonths, now),
		Forecast: Forecast{
			PredictedExpense: analytics.PredictNextMonthExpense(txs),
			Trend:            analytics.SpendingTrend(txs),
		},
		Investments: advisor.RecommendInvestments(investable, profile.RiskAppetite),
		Tips:        advisor.RecommendTips(analytics.UserExpenseCategories(txs), topCategory, haveTop),
	}
}
