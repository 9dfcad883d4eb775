package service

import (
	"context"
	"sync"
	"time"

	"github.com/jinzhu/copier"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	localCache "github.com/krishnateja08/FII-DII-Pulse/cache"
	"github.com/krishnateja08/FII-DII-Pulse/client"
	"github.com/krishnateja08/FII-DII-Pulse/customerrors"
	"github.com/krishnateja08/FII-DII-Pulse/model"
	"github.com/krishnateja08/FII-DII-Pulse/repository"
	"github.com/krishnateja08/FII-DII-Pulse/util"
)

const dashboardCacheKey = "latest_dashboard"

// DashboardService runs the whole pipeline: source chain, per-stock price
// history and indicators, flow signals, market summary, optional
// persistence.
type DashboardService interface {
	GetDashboard(ctx context.Context) (*model.DashboardSnapshot, error)
	Refresh(ctx context.Context) (*model.DashboardSnapshot, error)
	HistoryByDate(ctx context.Context, date string) (*model.DashboardSnapshot, error)
	LatestRun(ctx context.Context) (*model.DashboardSnapshot, error)
}

type DashboardServiceImpl struct {
	chain        *StockSourceChain
	technical    TechnicalService
	market       MarketService
	yahoo        *client.YahooClient
	snapshotRepo *repository.SnapshotRepository
	workers      int
	throttle     *rate.Limiter
}

// NewDashboardService wires the pipeline. snapshotRepo may be nil; the run
// then simply skips persistence. The throttle paces price-history requests
// so the provider does not rate-limit us.
func NewDashboardService(
	chain *StockSourceChain,
	technical TechnicalService,
	market MarketService,
	yahoo *client.YahooClient,
	snapshotRepo *repository.SnapshotRepository,
	workers int,
) DashboardService {
	return &DashboardServiceImpl{
		chain:        chain,
		technical:    technical,
		market:       market,
		yahoo:        yahoo,
		snapshotRepo: snapshotRepo,
		workers:      workers,
		throttle:     rate.NewLimiter(rate.Every(400*time.Millisecond), 1),
	}
}

func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*model.DashboardSnapshot, error) {
	if cached, found := localCache.DashboardCache.Get(dashboardCacheKey); found {
		snapshot := cached.(model.DashboardSnapshot)
		return &snapshot, nil
	}
	return s.Refresh(ctx)
}

func (s *DashboardServiceImpl) Refresh(ctx context.Context) (*model.DashboardSnapshot, error) {
	started := time.Now()

	stocks, source, window := s.chain.Fetch(ctx)
	market := s.market.FetchMarketSummary(ctx)
	enriched := s.enrichAll(ctx, stocks)

	now := time.Now().In(util.IstLocation)
	snapshot := model.DashboardSnapshot{
		RunDate:     util.IsoDate(now),
		Source:      source,
		WindowLabel: window,
		Market:      market,
		Stocks:      enriched,
		GeneratedAt: now,
	}

	if s.snapshotRepo != nil {
		if err := s.snapshotRepo.SaveRun(ctx, snapshot); err != nil {
			log.Warn().Err(err).Msg("failed to persist dashboard run")
		}
	}

	localCache.DashboardCache.Set(dashboardCacheKey, snapshot, cache.DefaultExpiration)
	log.Info().
		Str("source", source).
		Int("stocks", len(enriched)).
		Dur("took", time.Since(started)).
		Msg("dashboard built")
	return &snapshot, nil
}

// HistoryByDate returns the persisted run for an ISO date. Without a
// configured repository there is no history to serve.
func (s *DashboardServiceImpl) HistoryByDate(ctx context.Context, date string) (*model.DashboardSnapshot, error) {
	if s.snapshotRepo == nil {
		return nil, customerrors.ErrSnapshotNotFound
	}
	return s.snapshotRepo.FindByDate(ctx, date)
}

// LatestRun returns the most recently persisted run.
func (s *DashboardServiceImpl) LatestRun(ctx context.Context) (*model.DashboardSnapshot, error) {
	if s.snapshotRepo == nil {
		return nil, customerrors.ErrSnapshotNotFound
	}
	return s.snapshotRepo.FindLatest(ctx)
}

// enrichAll fans the per-stock pipeline (price fetch → indicators → score)
// across a bounded worker pool. Each stock is independent: a failed fetch
// degrades that one stock to the neutral snapshot and touches nothing else.
func (s *DashboardServiceImpl) enrichAll(ctx context.Context, stocks []model.InstitutionalStock) []model.EnrichedStock {
	results := make([]model.EnrichedStock, len(stocks))

	var wg sync.WaitGroup
	sem := make(chan struct{}, s.workers)
	for i, stock := range stocks {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, stock model.InstitutionalStock) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = s.enrichOne(ctx, stock)
		}(i, stock)
	}
	wg.Wait()

	return results
}

func (s *DashboardServiceImpl) enrichOne(ctx context.Context, stock model.InstitutionalStock) model.EnrichedStock {
	snapshot := model.EmptySnapshot()

	if err := s.throttle.Wait(ctx); err == nil {
		bars, err := s.yahoo.GetDailyBars(ctx, stock.Symbol, model.Range6mo)
		if err != nil {
			log.Warn().Err(err).Str("symbol", stock.Symbol).Msg("price history unavailable")
		} else {
			snapshot = s.technical.Compute(bars)
		}
	}

	var enriched model.EnrichedStock
	copier.Copy(&enriched.InstitutionalStock, &stock)
	enriched.TechnicalSnapshot = snapshot
	enriched.InstSignal = FlowSignal(stock)
	return enriched
}
