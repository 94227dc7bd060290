package store

import "time"

type DailyRevenue struct {
	Date    time.Time
	Revenue float64
}

type GroupRevenue struct {
	ID      int64
	Name    string
	Revenue float64
}
