package util

import (
	"strings"
	"time"
)

var (
	nseLayout    = "02-01-2006"
	outputLayout = "2006-01-02"
)

// IstLocation is the exchange timezone; every date decision is made in IST.
var IstLocation = mustLoadIst()

func mustLoadIst() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+30*60)
	}
	return loc
}

// FormatNseDate renders a date the way the NSE API expects: DD-MM-YYYY.
func FormatNseDate(t time.Time) string {
	return t.Format(nseLayout)
}

// ParseNseDate converts a DD-MM-YYYY string to ISO form.
func ParseNseDate(nseDate string) (string, error) {
	t, err := time.Parse(nseLayout, strings.TrimSpace(nseDate))
	if err != nil {
		return "", err
	}
	return t.Format(outputLayout), nil
}

// IsoDate renders the year-keyed form used by the holiday calendar.
func IsoDate(t time.Time) string {
	return t.Format(outputLayout)
}
