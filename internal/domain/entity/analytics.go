package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusCount is a generic group-by-status aggregate row.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// CategoryCount is a group-by-category aggregate row.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// RoleCount is a group-by-role aggregate row.
type RoleCount struct {
	Role  string `json:"role"`
	Count int64  `json:"count"`
}

// DonationStatusAggregate holds per-status donation sums.
type DonationStatusAggregate struct {
	Status  string          `json:"status"`
	Count   int64           `json:"count"`
	Total   decimal.Decimal `json:"total"`
	Average decimal.Decimal `json:"average"`
}

// TrendPoint is one bucket of the date-bucketed donation trend series.
type TrendPoint struct {
	Date  time.Time       `json:"date"`
	Count int64           `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// PlatformTotals summarizes money flow across the platform.
type PlatformTotals struct {
	TotalRaised       decimal.Decimal `json:"total_raised"`
	TotalGoal         decimal.Decimal `json:"total_goal"`
	SucceededCount    int64           `json:"succeeded_count"`
	ActiveCampaigns   int64           `json:"active_campaigns"`
	RegisteredDonors  int64           `json:"registered_donors"`
}

// AnalyticsOverview is the admin dashboard aggregate response.
type AnalyticsOverview struct {
	Totals              PlatformTotals            `json:"totals"`
	CampaignsByStatus   []StatusCount             `json:"campaigns_by_status"`
	CampaignsByCategory []CategoryCount           `json:"campaigns_by_category"`
	DonationsByStatus   []DonationStatusAggregate `json:"donations_by_status"`
	UsersByRole         []RoleCount               `json:"users_by_role"`
}
