package service

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/krishnateja08/FII-DII-Pulse/model"
)

const (
	minBars       = 25  // below this a snapshot is not computable
	swingWindow   = 120 // ~6 months of sessions
	sparklineBars = 7
)

// TechnicalService derives the indicator snapshot from a daily OHLCV series.
type TechnicalService interface {
	Compute(bars []model.PriceBar) model.TechnicalSnapshot
}

type TechnicalServiceImpl struct{}

func NewTechnicalService() TechnicalService {
	return &TechnicalServiceImpl{}
}

// Compute runs every indicator over the series (most-recent-last) and
// scores the result. Fewer than minBars usable bars yields the neutral
// fallback snapshot; this never errors to the caller.
func (t *TechnicalServiceImpl) Compute(bars []model.PriceBar) model.TechnicalSnapshot {
	if len(bars) < minBars {
		log.Warn().Int("bars", len(bars)).Msg("insufficient price history")
		return model.EmptySnapshot()
	}

	closes := make([]float64, len(bars))
	highs := make([]float64, len(bars))
	lows := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
		highs[i] = b.High
		lows[i] = b.Low
	}
	lastClose := closes[len(closes)-1]
	lastHigh := highs[len(highs)-1]
	lastLow := lows[len(lows)-1]

	rsiSeries := relativeStrength(closes)
	rsi := rsiSeries[len(rsiSeries)-1]

	macdHist := macdHistogram(closes)

	emaCross := model.EmaBearish
	if last(emaSpan(closes, 20)) > last(emaSpan(closes, 50)) {
		emaCross = model.EmaBullish
	}

	bbLabel := bollingerLabel(closes, lastClose)
	adx := averageDirectionalIndex(highs, lows, closes)
	stochRsi := stochasticRsi(rsiSeries)

	pivot := (lastHigh + lastLow + lastClose) / 3
	window := len(bars)
	if window > swingWindow {
		window = swingWindow
	}
	swingHigh := sliceMax(highs[len(highs)-window:])
	swingLow := sliceMin(lows[len(lows)-window:])

	snapshot := model.TechnicalSnapshot{
		Rsi:       round1(rsi),
		MacdHist:  round2(macdHist),
		EmaCross:  emaCross,
		BbLabel:   bbLabel,
		Adx:       round1(adx),
		StochRsi:  round2(stochRsi),
		Resist1:   round2(2*pivot - lastLow),
		Support1:  round2(2*pivot - lastHigh),
		Resist2:   round2(pivot + (lastHigh - lastLow)),
		Support2:  round2(pivot - (lastHigh - lastLow)),
		SwingHigh: round2(swingHigh),
		SwingLow:  round2(swingLow),
		LastPrice: round2(lastClose),
		Sparkline: sparkline(closes),
		DataOk:    true,
	}
	snapshot.Score, snapshot.Overall = Score(snapshot)
	return snapshot
}

// Score is the composite classifier: a deterministic additive rule set over
// the exposed snapshot values. Every rule contributes; none short-circuits.
func Score(s model.TechnicalSnapshot) (int, model.OverallSignal) {
	score := 0

	switch {
	case s.Rsi < 40:
		score += 2
	case s.Rsi < 55:
		score++
	case s.Rsi > 70:
		score -= 2
	}
	if s.MacdHist > 0 {
		score += 2
	}
	if s.EmaCross == model.EmaBullish {
		score += 2
	}
	if s.Adx > 25 {
		score++
	}
	switch {
	case s.StochRsi < 0.3:
		score++
	case s.StochRsi > 0.8:
		score--
	}

	switch {
	case score >= 5:
		return score, model.SignalStrongBuy
	case score >= 3:
		return score, model.SignalBuy
	case score >= 0:
		return score, model.SignalNeutral
	case score >= -2:
		return score, model.SignalCaution
	default:
		return score, model.SignalSell
	}
}

// --- series primitives ---

// ewm is the recursive exponential average seeded by the first value:
// avg_t = alpha*x_t + (1-alpha)*avg_{t-1}.
func ewm(values []float64, alpha float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}

// emaSpan is the span-parameterized EMA: alpha = 2/(span+1).
func emaSpan(values []float64, span int) []float64 {
	return ewm(values, 2/(float64(span)+1))
}

// wilder is the classic Wilder smoothing: alpha = 1/period
// (center of mass period-1).
func wilder(values []float64, period int) []float64 {
	return ewm(values, 1/float64(period))
}

// relativeStrength computes the RSI(14) series over the close deltas.
// A zero average loss means uninterrupted gains; RSI saturates at 100
// rather than dividing by zero.
func relativeStrength(closes []float64) []float64 {
	gains := make([]float64, len(closes)-1)
	losses := make([]float64, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			gains[i-1] = delta
		} else {
			losses[i-1] = -delta
		}
	}

	avgGain := wilder(gains, 14)
	avgLoss := wilder(losses, 14)

	rsi := make([]float64, len(gains))
	for i := range rsi {
		if avgLoss[i] == 0 {
			rsi[i] = 100
			continue
		}
		rs := avgGain[i] / avgLoss[i]
		rsi[i] = 100 - 100/(1+rs)
	}
	return rsi
}

func macdHistogram(closes []float64) float64 {
	ema12 := emaSpan(closes, 12)
	ema26 := emaSpan(closes, 26)
	macd := make([]float64, len(closes))
	for i := range macd {
		macd[i] = ema12[i] - ema26[i]
	}
	signal := emaSpan(macd, 9)
	return last(macd) - last(signal)
}

func bollingerLabel(closes []float64, lastClose float64) string {
	window := closes[len(closes)-20:]
	mean := 0.0
	for _, v := range window {
		mean += v
	}
	mean /= float64(len(window))

	variance := 0.0
	for _, v := range window {
		variance += (v - mean) * (v - mean)
	}
	// Sample standard deviation, Bessel-corrected.
	std := math.Sqrt(variance / float64(len(window)-1))

	upper := mean + 2*std
	lower := mean - 2*std
	width := upper - lower
	if width == 0 {
		width = 1
	}
	position := (lastClose - lower) / width

	switch {
	case position > 0.8:
		return model.BollingerOverbought
	case position < 0.2:
		return model.BollingerOversold
	default:
		return model.BollingerMid
	}
}

// averageDirectionalIndex is ADX(14) with Wilder smoothing throughout.
// Bars where ATR or DI+ + DI- are zero contribute no DX reading; the
// running average simply carries over them.
func averageDirectionalIndex(highs, lows, closes []float64) float64 {
	n := len(closes) - 1
	plusDM := make([]float64, n)
	minusDM := make([]float64, n)
	trueRange := make([]float64, n)
	for i := 1; i <= n; i++ {
		if up := highs[i] - highs[i-1]; up > 0 {
			plusDM[i-1] = up
		}
		if down := lows[i-1] - lows[i]; down > 0 {
			minusDM[i-1] = down
		}
		prevClose := closes[i-1]
		trueRange[i-1] = math.Max(highs[i]-lows[i],
			math.Max(math.Abs(highs[i]-prevClose), math.Abs(lows[i]-prevClose)))
	}

	atr := wilder(trueRange, 14)
	smoothPlus := wilder(plusDM, 14)
	smoothMinus := wilder(minusDM, 14)

	const alpha = 1.0 / 14
	adx := 0.0
	seeded := false
	for i := 0; i < n; i++ {
		if atr[i] == 0 {
			continue
		}
		plusDI := 100 * smoothPlus[i] / atr[i]
		minusDI := 100 * smoothMinus[i] / atr[i]
		sum := plusDI + minusDI
		if sum == 0 {
			continue
		}
		dx := 100 * math.Abs(plusDI-minusDI) / sum
		if !seeded {
			adx = dx
			seeded = true
		} else {
			adx = alpha*dx + (1-alpha)*adx
		}
	}
	return adx
}

// stochasticRsi positions the latest RSI within its rolling 14-bar range.
// A zero range (RSI flat or saturated) reads as the neutral 0.5.
func stochasticRsi(rsiSeries []float64) float64 {
	window := rsiSeries
	if len(window) > 14 {
		window = window[len(window)-14:]
	}
	lowest := sliceMin(window)
	highest := sliceMax(window)
	if highest == lowest {
		return 0.5
	}
	return (last(rsiSeries) - lowest) / (highest - lowest)
}

func sparkline(closes []float64) []float64 {
	start := len(closes) - sparklineBars
	if start < 0 {
		start = 0
	}
	out := make([]float64, 0, sparklineBars)
	for _, v := range closes[start:] {
		out = append(out, round2(v))
	}
	return out
}

func last(values []float64) float64 {
	return values[len(values)-1]
}

func sliceMax(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func sliceMin(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
