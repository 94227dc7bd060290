package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
	GranularityAnnual  Granularity = "annual"
)

// RevenueBucket is the revenue summed over one calendar period.
type RevenueBucket struct {
	Label        string
	Start        time.Time // first day of the period that had sales
	TotalRevenue decimal.Decimal
}

type RevenueTotal struct {
	Period       DateRange
	TotalRevenue decimal.Decimal
}

type DailyRevenue struct {
	Date         time.Time
	TotalRevenue decimal.Decimal
}

type ProductRevenue struct {
	ProductID    int64
	ProductName  string
	TotalRevenue decimal.Decimal
}

type CategoryRevenue struct {
	CategoryID   int64
	CategoryName string
	TotalRevenue decimal.Decimal
}
