package model

import "time"

// DashboardSnapshot is one complete run: every enriched stock plus the
// shared market summary. This is the structure the reporting layer consumes
// and the only thing the run persists.
type DashboardSnapshot struct {
	RunDate     string          `json:"runDate" bson:"_id"`
	Source      string          `json:"source" bson:"source"`
	WindowLabel string          `json:"windowLabel" bson:"windowLabel"`
	Market      MarketSummary   `json:"market" bson:"market"`
	Stocks      []EnrichedStock `json:"stocks" bson:"stocks"`
	GeneratedAt time.Time       `json:"generatedAt" bson:"generatedAt"`
}
