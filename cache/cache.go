package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

var DealWindowCache = cache.New(30*time.Minute, 10*time.Minute)
var PriceHistoryCache = cache.New(1*time.Hour, 10*time.Minute)
var MarketSummaryCache = cache.New(15*time.Minute, 10*time.Minute)
var DashboardCache = cache.New(1*time.Hour, 10*time.Minute)
var RateLimiterCache = cache.New(5*time.Minute, 10*time.Minute)
