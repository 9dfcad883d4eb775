package model

import "time"

// PriceBar is one daily OHLCV candle.
type PriceBar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// EmaCross labels the EMA20/EMA50 relationship.
type EmaCross string

const (
	EmaBullish EmaCross = "bullish"
	EmaBearish EmaCross = "bearish"
	EmaUnknown EmaCross = "unknown"
)

// Bollinger position labels.
const (
	BollingerOverbought = "Overbought"
	BollingerMid        = "Mid"
	BollingerOversold   = "Oversold"
	BollingerNA         = "N/A"
)

// OverallSignal is the composite trading signal.
type OverallSignal string

const (
	SignalStrongBuy OverallSignal = "STRONG BUY"
	SignalBuy       OverallSignal = "BUY"
	SignalNeutral   OverallSignal = "NEUTRAL"
	SignalCaution   OverallSignal = "CAUTION"
	SignalSell      OverallSignal = "SELL"
	SignalNA        OverallSignal = "N/A"
)

// TechnicalSnapshot holds all indicator readings for one symbol at the end
// of a run. DataOk=false means the neutral defaults below are in effect and
// no numeric field should be trusted.
type TechnicalSnapshot struct {
	Rsi        float64       `json:"rsi" bson:"rsi"`
	MacdHist   float64       `json:"macdHist" bson:"macdHist"`
	EmaCross   EmaCross      `json:"emaCross" bson:"emaCross"`
	BbLabel    string        `json:"bbLabel" bson:"bbLabel"`
	Adx        float64       `json:"adx" bson:"adx"`
	StochRsi   float64       `json:"stochRsi" bson:"stochRsi"`
	Resist1    float64       `json:"resist1" bson:"resist1"`
	Support1   float64       `json:"support1" bson:"support1"`
	Resist2    float64       `json:"resist2" bson:"resist2"`
	Support2   float64       `json:"support2" bson:"support2"`
	SwingHigh  float64       `json:"swingHigh" bson:"swingHigh"`
	SwingLow   float64       `json:"swingLow" bson:"swingLow"`
	LastPrice  float64       `json:"lastPrice" bson:"lastPrice"`
	Score      int           `json:"score" bson:"score"`
	Overall    OverallSignal `json:"overall" bson:"overall"`
	Sparkline  []float64     `json:"sparkline" bson:"sparkline"`
	DataOk     bool          `json:"dataOk" bson:"dataOk"`
}

// EmptySnapshot returns the hard-fallback snapshot used whenever price
// history is missing or an indicator cannot be computed.
func EmptySnapshot() TechnicalSnapshot {
	return TechnicalSnapshot{
		Rsi:      50.0,
		EmaCross: EmaUnknown,
		BbLabel:  BollingerNA,
		Overall:  SignalNA,
	}
}
