package util

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/krishnateja08/FII-DII-Pulse/model"
)

const (
	maxToDateWalkback   = 10 // days searched backward for a trading day
	maxWindowSpanDays   = 30 // calendar bound while counting trading days
	windowTradingSteps  = 5  // steps back from to_date, a 6-trading-day window
)

// TradingCalendar answers trading-day questions against an injected holiday
// table and disclosure cutoff time.
type TradingCalendar struct {
	holidays     map[string]struct{}
	cutoffHour   int
	cutoffMinute int
}

func NewTradingCalendar(cfg *model.MarketConfig) *TradingCalendar {
	holidays := make(map[string]struct{}, len(cfg.Holidays))
	for _, d := range cfg.Holidays {
		holidays[d] = struct{}{}
	}
	return &TradingCalendar{
		holidays:     holidays,
		cutoffHour:   cfg.CutoffHour,
		cutoffMinute: cfg.CutoffMinute,
	}
}

// IsTradingDay reports whether dt is a weekday and not an exchange holiday.
func (c *TradingCalendar) IsTradingDay(dt time.Time) bool {
	if wd := dt.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}
	_, holiday := c.holidays[IsoDate(dt)]
	return !holiday
}

// CurrentWindow returns the most recent completed disclosure window as of
// now. The deal window closes at the cutoff time: past it, today (if a
// trading day) is to_date; otherwise the last trading day is. from_date
// sits exactly windowTradingSteps trading days earlier, so the window spans
// six trading days inclusive.
func (c *TradingCalendar) CurrentWindow(now time.Time) (from, to time.Time, err error) {
	now = now.In(IstLocation)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, IstLocation)

	pastCutoff := now.Hour() > c.cutoffHour ||
		(now.Hour() == c.cutoffHour && now.Minute() >= c.cutoffMinute)

	if pastCutoff && c.IsTradingDay(today) {
		to = today
	} else {
		to = today.AddDate(0, 0, -1)
		found := false
		for i := 0; i < maxToDateWalkback; i++ {
			if c.IsTradingDay(to) {
				found = true
				break
			}
			to = to.AddDate(0, 0, -1)
		}
		if !found && !c.IsTradingDay(to) {
			return time.Time{}, time.Time{}, fmt.Errorf("no trading day within %d days of %s", maxToDateWalkback, IsoDate(today))
		}
	}

	from = to
	steps := 0
	candidate := to.AddDate(0, 0, -1)
	for {
		if int(to.Sub(candidate).Hours()/24) > maxWindowSpanDays {
			log.Warn().Str("to", IsoDate(to)).Msgf("could not find %d trading days within %d calendar days", windowTradingSteps, maxWindowSpanDays)
			break
		}
		if c.IsTradingDay(candidate) {
			steps++
			from = candidate
			if steps == windowTradingSteps {
				break
			}
		}
		candidate = candidate.AddDate(0, 0, -1)
	}

	return from, to, nil
}

// WindowLabel renders a window the way NSE displays it.
func WindowLabel(from, to time.Time) string {
	return FormatNseDate(from) + " → " + FormatNseDate(to)
}
