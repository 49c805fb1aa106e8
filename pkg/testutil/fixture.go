package testutil

import (
	"context"
	"database/sql"
	"time"

	"github.com/virality-gg/backend/internal/entity"
	"github.com/virality-gg/backend/pkg/xcontext"
)

var (
	// Users.
	User1 = &entity.User{
		Base:            entity.Base{ID: "user1"},
		DiscordID:       sql.NullString{Valid: true, String: "discord-user-1"},
		DiscordUsername: "creator_one",
		Username:        "creator_one",
		FullName:        "Creator One",
	}
	User2 = &entity.User{
		Base:            entity.Base{ID: "user2"},
		DiscordID:       sql.NullString{Valid: true, String: "discord-user-2"},
		DiscordUsername: "creator_two",
		Username:        "creator_two",
		FullName:        "Creator Two",
	}
	User3 = &entity.User{
		Base:     entity.Base{ID: "user3"},
		Username: "creator_three",
		FullName: "Creator Three",
	}

	// Wallets.
	Wallet1 = &entity.Wallet{
		Base:        entity.Base{ID: "wallet1"},
		UserID:      User1.ID,
		Balance:     120.5,
		TotalEarned: 500,
	}
	Wallet2 = &entity.Wallet{
		Base:        entity.Base{ID: "wallet2"},
		UserID:      User2.ID,
		Balance:     40,
		TotalEarned: 750,
	}
	Wallet3 = &entity.Wallet{
		Base:        entity.Base{ID: "wallet3"},
		UserID:      User3.ID,
		Balance:     0,
		TotalEarned: 10,
	}

	// Campaigns.
	Campaign1 = &entity.Campaign{
		Base:         entity.Base{ID: "campaign1"},
		Title:        "Summer Launch",
		Description:  "Promote the summer product line",
		Status:       entity.CampaignActive,
		PayoutAmount: 25,
		EndDate:      sql.NullTime{Valid: true, Time: time.Now().AddDate(0, 1, 0)},
	}
	Campaign2 = &entity.Campaign{
		Base:         entity.Base{ID: "campaign2"},
		Title:        "Holiday Teaser",
		Status:       entity.CampaignDraft,
		PayoutAmount: 40,
	}

	// Memberships.
	Membership1 = &entity.CampaignMember{
		Base:       entity.Base{ID: "membership1"},
		CampaignID: Campaign1.ID,
		UserID:     User1.ID,
		Status:     entity.MembershipActive,
		JoinedAt:   time.Now().AddDate(0, 0, -7),
	}

	// Submissions.
	Submission1 = &entity.Submission{
		Base:       entity.Base{ID: "submission1"},
		CampaignID: Campaign1.ID,
		CreatorID:  User1.ID,
		ContentURL: "https://www.tiktok.com/@creator_one/video/123",
		Platform:   entity.PlatformTiktok,
		Status:     entity.SubmissionApproved,
		Earnings:   25,
	}
	Submission2 = &entity.Submission{
		Base:       entity.Base{ID: "submission2"},
		CampaignID: Campaign1.ID,
		CreatorID:  User1.ID,
		ContentURL: "https://www.instagram.com/reel/abc",
		Platform:   entity.PlatformInstagram,
		Status:     entity.SubmissionPending,
	}

	// Transactions.
	Transaction1 = &entity.Transaction{
		Base:   entity.Base{ID: "transaction1"},
		UserID: User1.ID,
		Amount: 25,
		Type:   entity.TransactionEarning,
	}
)

func CreateFixtureDb(ctx context.Context) {
	insertUsers(ctx)
	insertWallets(ctx)
	insertCampaigns(ctx)
	insertMemberships(ctx)
	insertSubmissions(ctx)
	insertTransactions(ctx)
}

func insertUsers(ctx context.Context) {
	for _, user := range []*entity.User{User1, User2, User3} {
		if err := xcontext.DB(ctx).Create(user).Error; err != nil {
			panic(err)
		}
	}
}

func insertWallets(ctx context.Context) {
	for _, wallet := range []*entity.Wallet{Wallet1, Wallet2, Wallet3} {
		if err := xcontext.DB(ctx).Create(wallet).Error; err != nil {
			panic(err)
		}
	}
}

func insertCampaigns(ctx context.Context) {
	for _, campaign := range []*entity.Campaign{Campaign1, Campaign2} {
		if err := xcontext.DB(ctx).Create(campaign).Error; err != nil {
			panic(err)
		}
	}
}

func insertMemberships(ctx context.Context) {
	if err := xcontext.DB(ctx).Create(Membership1).Error; err != nil {
		panic(err)
	}
}

func insertSubmissions(ctx context.Context) {
	for _, submission := range []*entity.Submission{Submission1, Submission2} {
		if err := xcontext.DB(ctx).Create(submission).Error; err != nil {
			panic(err)
		}
	}
}

func insertTransactions(ctx context.Context) {
	if err := xcontext.DB(ctx).Create(Transaction1).Error; err != nil {
		panic(err)
	}
}
