package entity

import "github.com/virality-gg/backend/pkg/enum"

type TicketStatus string

var (
	TicketOpen     = enum.New(TicketStatus("open"))
	TicketResolved = enum.New(TicketStatus("resolved"))
	TicketClosed   = enum.New(TicketStatus("closed"))
)

type Ticket struct {
	Base

	Number  string `gorm:"uniqueIndex"`
	UserID  string `gorm:"index"`
	Subject string
	Message string `gorm:"type:text"`
	Status  TicketStatus
}
