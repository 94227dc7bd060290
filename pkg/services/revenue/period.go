package revenue

import (
	"fmt"
	"strconv"
	"time"

	"github.com/de-tools/commerce-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

var monthAbbr = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthAbbr returns the three-letter English name of month 1..12 and "" otherwise.
func MonthAbbr(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthAbbr[month-1]
}

// bucketKey maps a day to the calendar period containing it.
type bucketKey func(day time.Time) (key int, label string)

func dayKey(day time.Time) (int, string) {
	y, m, d := day.Date()
	return y*10000 + int(m)*100 + d, day.Format(domain.DateLayout)
}

// isoWeekKey uses the ISO week-numbering year, so Jan 1 2021 lands in "Week 53 - 2020".
func isoWeekKey(day time.Time) (int, string) {
	year, week := day.ISOWeek()
	return year*100 + week, fmt.Sprintf("Week %d - %d", week, year)
}

func monthKey(day time.Time) (int, string) {
	year, month, _ := day.Date()
	return year*100 + int(month), fmt.Sprintf("%s %d", MonthAbbr(int(month)), year)
}

func yearKey(day time.Time) (int, string) {
	year := day.Year()
	return year, strconv.Itoa(year)
}

func keyFor(granularity domain.Granularity) (bucketKey, error) {
	switch granularity {
	case domain.GranularityDaily:
		return dayKey, nil
	case domain.GranularityWeekly:
		return isoWeekKey, nil
	case domain.GranularityMonthly:
		return monthKey, nil
	case domain.GranularityAnnual:
		return yearKey, nil
	default:
		return nil, domain.Invalid("unknown granularity %q", granularity)
	}
}

// fold sums ascending daily revenue into buckets, preserving first-seen order.
// Days without sales produce no bucket.
func fold(days []domain.DailyRevenue, key bucketKey) []domain.RevenueBucket {
	buckets := make([]domain.RevenueBucket, 0)
	index := make(map[int]int)
	for _, day := range days {
		k, label := key(day.Date)
		i, ok := index[k]
		if !ok {
			index[k] = len(buckets)
			buckets = append(buckets, domain.RevenueBucket{
				Label:        label,
				Start:        day.Date,
				TotalRevenue: decimal.Zero,
			})
			i = len(buckets) - 1
		}
		buckets[i].TotalRevenue = buckets[i].TotalRevenue.Add(day.TotalRevenue)
	}
	return buckets
}

func sum(buckets []domain.RevenueBucket) decimal.Decimal {
	total := decimal.Zero
	for _, b := range buckets {
		total = total.Add(b.TotalRevenue)
	}
	return total
}

// Window returns the inclusive range ending today and reaching n periods back.
// Month arithmetic clamps to the last day of the target month, so Mar 31 minus
// one month is Feb 28 (or 29) and Feb 29 minus one year is Feb 28.
func Window(granularity domain.Granularity, today time.Time, n int) (domain.DateRange, error) {
	if n < 0 {
		return domain.DateRange{}, domain.Invalid("%s window must not be negative, got %d", granularity, n)
	}
	end := domain.Day(today)

	var start time.Time
	switch granularity {
	case domain.GranularityDaily:
		start = end.AddDate(0, 0, -n)
	case domain.GranularityWeekly:
		start = end.AddDate(0, 0, -7*n)
	case domain.GranularityMonthly:
		start = addMonthsClamped(end, -n)
	case domain.GranularityAnnual:
		start = addMonthsClamped(end, -12*n)
	default:
		return domain.DateRange{}, domain.Invalid("unknown granularity %q", granularity)
	}
	return domain.NewDateRange(start, end)
}

func addMonthsClamped(day time.Time, months int) time.Time {
	year, month, d := day.Date()
	first := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}
