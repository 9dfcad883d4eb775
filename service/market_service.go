package service

import (
	"context"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	localCache "github.com/krishnateja08/FII-DII-Pulse/cache"
	"github.com/krishnateja08/FII-DII-Pulse/client"
	"github.com/krishnateja08/FII-DII-Pulse/model"
)

const (
	niftySymbol  = "^NSEI"
	sensexSymbol = "^BSESN"
)

// MarketService produces the shared benchmark summary. Index fetch
// failures degrade to a zeroed summary; they never fail the run.
type MarketService interface {
	FetchMarketSummary(ctx context.Context) model.MarketSummary
}

type MarketServiceImpl struct {
	yahoo *client.YahooClient
}

func NewMarketService(yahoo *client.YahooClient) MarketService {
	return &MarketServiceImpl{yahoo: yahoo}
}

func (s *MarketServiceImpl) FetchMarketSummary(ctx context.Context) model.MarketSummary {
	cacheKey := "market_summary"
	if cached, found := localCache.MarketSummaryCache.Get(cacheKey); found {
		return cached.(model.MarketSummary)
	}

	var summary model.MarketSummary
	summary.NiftyPrice, summary.NiftyChange = s.indexReading(ctx, niftySymbol)
	summary.SensexPrice, summary.SensexChange = s.indexReading(ctx, sensexSymbol)

	if summary.NiftyPrice > 0 || summary.SensexPrice > 0 {
		localCache.MarketSummaryCache.Set(cacheKey, summary, cache.DefaultExpiration)
	}
	return summary
}

func (s *MarketServiceImpl) indexReading(ctx context.Context, symbol string) (price, change float64) {
	bars, err := s.yahoo.GetDailyBars(ctx, symbol, model.Range5d)
	if err != nil || len(bars) == 0 {
		log.Warn().Err(err).Str("symbol", symbol).Msg("market summary fetch failed")
		return 0, 0
	}

	lastBar := bars[len(bars)-1]
	price = round2(lastBar.Close)
	if len(bars) >= 2 {
		prev := bars[len(bars)-2].Close
		change = round2((lastBar.Close - prev) / prev * 100)
	}
	return price, change
}
