package client

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	localCache "github.com/krishnateja08/FII-DII-Pulse/cache"
	"github.com/krishnateja08/FII-DII-Pulse/database"
	"github.com/krishnateja08/FII-DII-Pulse/model"
	"github.com/krishnateja08/FII-DII-Pulse/util"
)

// YahooClient retrieves daily OHLCV history from the Yahoo v8 chart API.
// Results go through Redis when configured, the in-process cache otherwise.
type YahooClient struct {
	client *resty.Client
}

func NewYahooClient() *YahooClient {
	client := resty.New().
		SetBaseURL("https://query1.finance.yahoo.com/v8/finance/chart").
		SetTimeout(10 * time.Second).
		SetHeaders(map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
			"User-Agent":   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36",
		})

	return &YahooClient{client: client}
}

// GetDailyBars returns daily bars for symbol in chronological order,
// most-recent-last. Symbols are passed through untouched, so both ".NS"
// equities and "^" index tickers work.
func (y *YahooClient) GetDailyBars(ctx context.Context, symbol string, timeRange model.YahooTimeRange) ([]model.PriceBar, error) {
	cacheKey := "yahoo_history_" + symbol + "_" + string(timeRange)

	var bars []model.PriceBar
	if database.RedisHelper != nil {
		if ok, _ := database.RedisHelper.GetAsStruct(cacheKey, &bars); ok && len(bars) > 0 {
			return bars, nil
		}
	} else if cached, found := localCache.PriceHistoryCache.Get(cacheKey); found {
		return cached.([]model.PriceBar), nil
	}

	var chartResponse model.YahooChartResponse
	resp, err := y.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"range":    string(timeRange),
			"interval": string(model.Range1d),
		}).
		SetResult(&chartResponse).
		Get("/" + symbol)

	if err != nil || !resp.IsSuccess() || chartResponse.Chart.Error != nil {
		log.Warn().Str("symbol", symbol).Msg("Error calling yahoo api")
		return nil, fmt.Errorf("Yahoo request failed for %s: %v", symbol, err)
	}
	if len(chartResponse.Chart.Result) == 0 || len(chartResponse.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("Yahoo returned no quote data for %s", symbol)
	}

	result := chartResponse.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	bars = make([]model.PriceBar, 0, len(result.Timestamp))
	for i := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == 0 || quote.Open[i] == 0 {
			continue
		}
		bars = append(bars, model.PriceBar{
			Date:   time.Unix(result.Timestamp[i], 0).In(util.IstLocation),
			Open:   quote.Open[i],
			High:   quote.High[i],
			Low:    quote.Low[i],
			Close:  quote.Close[i],
			Volume: quote.Volume[i],
		})
	}

	if len(bars) > 0 {
		if database.RedisHelper != nil {
			database.RedisHelper.SetAsStruct(cacheKey, bars, 1*time.Hour)
		} else {
			localCache.PriceHistoryCache.Set(cacheKey, bars, cache.DefaultExpiration)
		}
	}

	return bars, nil
}
