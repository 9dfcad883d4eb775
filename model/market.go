package model

// MarketSummary holds the benchmark index readings for one run. Computed
// once and shared read-only by every downstream consumer.
type MarketSummary struct {
	NiftyPrice   float64 `json:"niftyPrice" bson:"niftyPrice"`
	NiftyChange  float64 `json:"niftyChange" bson:"niftyChange"`
	SensexPrice  float64 `json:"sensexPrice" bson:"sensexPrice"`
	SensexChange float64 `json:"sensexChange" bson:"sensexChange"`
}
