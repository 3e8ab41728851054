package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
)

func (g Granularity) Valid() bool {
	return g == GranularityDay || g == GranularityMonth
}

// Layout returns the time layout used to label a bucket.
func (g Granularity) Layout() string {
	if g == GranularityMonth {
		return "2006-01"
	}
	return "2006-01-02"
}

// RevenueQuery covers the closed range of calendar days [Start, End] in UTC.
type RevenueQuery struct {
	RestaurantID string
	Start        time.Time
	End          time.Time
	Granularity  Granularity
}

type RevenueBucket struct {
	Date   string
	Income decimal.Decimal
}
