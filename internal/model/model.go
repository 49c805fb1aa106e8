package model

import "time"

// LinkedAccount is the flattened view of a user joined with their wallet,
// resolved from a Discord snowflake id. A nil LinkedAccount means the invoker
// has not linked their Discord account yet.
type LinkedAccount struct {
	ID          string
	DiscordID   string
	Username    string
	Balance     float64
	TotalEarned float64
}

type CampaignSummary struct {
	ID           string
	Title        string
	PayoutAmount float64
	EndDate      *time.Time
	JoinedAt     time.Time
}

type StatsSummary struct {
	TotalSubmissions    int64
	ApprovedSubmissions int64
	PendingSubmissions  int64
	RejectedSubmissions int64
	MonthlyEarnings     float64
	ActiveCampaigns     int64
}

type LeaderboardEntry struct {
	Rank        int
	Username    string
	TotalEarned float64
}

type GetStatusRequest struct{}

type GetStatusResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
