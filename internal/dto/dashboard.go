package dto

import "time"

// DashboardStatsResponse aggregates the admin landing numbers.
type DashboardStatsResponse struct {
	CurrencyCount  int64      `json:"currencyCount"`
	ImageCount     int64      `json:"imageCount"`
	LastRateUpdate *time.Time `json:"lastRateUpdate,omitempty"`
}
