package entity

import "github.com/virality-gg/backend/pkg/enum"

type Platform string

var (
	PlatformTiktok    = enum.New(Platform("tiktok"))
	PlatformInstagram = enum.New(Platform("instagram"))
	PlatformYoutube   = enum.New(Platform("youtube"))
	PlatformTwitter   = enum.New(Platform("twitter"))
	PlatformOther     = enum.New(Platform("other"))
)

type SubmissionStatus string

var (
	SubmissionPending  = enum.New(SubmissionStatus("pending"))
	SubmissionApproved = enum.New(SubmissionStatus("approved"))
	SubmissionRejected = enum.New(SubmissionStatus("rejected"))
)

type Submission struct {
	Base

	CampaignID string   `gorm:"index"`
	Campaign   Campaign `gorm:"foreignKey:CampaignID"`

	CreatorID  string `gorm:"index"`
	ContentURL string
	Platform   Platform
	Status     SubmissionStatus `gorm:"index"`
	Notes      string           `gorm:"type:text"`
	Earnings   float64
}
