package model

var SnapshotCollectionName = "DashboardRuns"

// EnvConfig holds sensitive environment settings
type EnvConfig struct {
	Port           string `json:"port"`
	Environment    string `json:"environment"`
	MongoUser      string `json:"mongoUser"`
	MongoPassword  string `json:"mongoPassword"`
	RedisUrl       string `json:"redisUrl"`
	MarketDataFile string `json:"marketDataFile"`
	RateLimiter    bool   `json:"rateLimiter"`
	FetchWorkers   int    `json:"fetchWorkers"`
}

// MarketConfig carries the data tables the engine depends on but must not
// hardcode: the exchange holiday calendar (year-keyed, refreshed yearly),
// the FII/DII client-name keyword lists, the static fallback stock list and
// the disclosure cutoff time. Loaded from marketDataFile when set,
// otherwise from the embedded defaults.
type MarketConfig struct {
	Holidays       []string             `json:"holidays"`
	FiiKeywords    []string             `json:"fiiKeywords"`
	DiiKeywords    []string             `json:"diiKeywords"`
	FallbackStocks []InstitutionalStock `json:"fallbackStocks"`
	CutoffHour     int                  `json:"cutoffHour"`
	CutoffMinute   int                  `json:"cutoffMinute"`
}
