package entity

import (
	"context"

	"github.com/virality-gg/backend/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&Wallet{},
		&Transaction{},
		&Campaign{},
		&CampaignMember{},
		&Submission{},
		&Ticket{},
	)
}
