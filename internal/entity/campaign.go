package entity

import (
	"database/sql"
	"time"

	"github.com/virality-gg/backend/pkg/enum"
)

type CampaignStatus string

var (
	CampaignDraft     = enum.New(CampaignStatus("draft"))
	CampaignActive    = enum.New(CampaignStatus("active"))
	CampaignPaused    = enum.New(CampaignStatus("paused"))
	CampaignCompleted = enum.New(CampaignStatus("completed"))
)

type Campaign struct {
	Base

	Title        string
	Description  string
	Status       CampaignStatus `gorm:"index"`
	PayoutAmount float64
	EndDate      sql.NullTime
}

type MembershipStatus string

var (
	MembershipActive = enum.New(MembershipStatus("active"))
	MembershipLeft   = enum.New(MembershipStatus("left"))
)

type CampaignMember struct {
	Base

	CampaignID string   `gorm:"index:idx_campaign_member,unique"`
	Campaign   Campaign `gorm:"foreignKey:CampaignID"`

	UserID   string `gorm:"index:idx_campaign_member,unique"`
	Status   MembershipStatus
	JoinedAt time.Time
}
