package domain

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/virality-gg/backend/internal/entity"
	"github.com/virality-gg/backend/internal/repository"
	"github.com/virality-gg/backend/pkg/discord"
	"github.com/virality-gg/backend/pkg/testutil"
	"github.com/virality-gg/backend/pkg/xcontext"
)

func newTestDomain() InteractionDomain {
	userRepo := repository.NewUserRepository()
	walletRepo := repository.NewWalletRepository()

	return NewInteractionDomain(
		NewAccountResolver(userRepo, walletRepo),
		walletRepo,
		repository.NewCampaignRepository(),
		repository.NewSubmissionRepository(),
		repository.NewTicketRepository(),
	)
}

func commandInteraction(discordID, name string, options ...discord.CommandOption) *discord.Interaction {
	return &discord.Interaction{
		ID:   "interaction-1",
		Type: discord.InteractionApplicationCommand,
		Member: &discord.Member{
			User: &discord.User{ID: discordID, Username: "tester"},
		},
		Data: discord.InteractionData{Name: name, Options: options},
	}
}

func messageData(t *testing.T, resp *discord.InteractionResponse) *discord.MessageData {
	t.Helper()
	data, ok := resp.Data.(*discord.MessageData)
	require.True(t, ok)
	return data
}

func Test_interactionDomain_Ping(t *testing.T) {
	// A ping never needs a database; a nil one proves no store access.
	d := newTestDomain()
	resp := d.Handle(context.Background(), &discord.Interaction{Type: discord.InteractionPing})
	require.Equal(t, discord.ResponsePong, resp.Type)
	require.Nil(t, resp.Data)
}

func Test_interactionDomain_unknownCommand(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestDomain()

	resp := d.Handle(ctx, commandInteraction("discord-user-1", "frobnicate"))
	require.Equal(t, discord.ResponseChannelMessage, resp.Type)

	data := messageData(t, resp)
	require.Equal(t, discord.EphemeralFlag, data.Flags)
	require.Contains(t, data.Content, "Unknown command")
	require.Contains(t, data.Content, "balance")
}

func Test_interactionDomain_Autocomplete(t *testing.T) {
	d := newTestDomain()
	resp := d.Handle(context.Background(), &discord.Interaction{Type: discord.InteractionAutocomplete})
	require.Equal(t, discord.ResponseAutocompleteResult, resp.Type)

	data, ok := resp.Data.(*discord.AutocompleteData)
	require.True(t, ok)
	require.NotNil(t, data.Choices)
	require.Empty(t, data.Choices)
}

func Test_interactionDomain_componentDefault(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestDomain()

	resp := d.Handle(ctx, &discord.Interaction{
		Type: discord.InteractionMessageComponent,
		Data: discord.InteractionData{CustomID: "refresh:balance"},
	})
	require.Equal(t, discord.ResponseDeferredUpdateMessage, resp.Type)
}

func Test_handleBalance_unlinked(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestDomain()

	resp := d.Handle(ctx, commandInteraction("discord-stranger", "balance"))
	data := messageData(t, resp)
	require.Equal(t, discord.EphemeralFlag, data.Flags)
	require.Len(t, data.Embeds, 1)
	require.Equal(t, "🔗 Account Not Linked", data.Embeds[0].Title)
}

func Test_handleBalance_linked(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestDomain()

	resp := d.Handle(ctx, commandInteraction(testutil.User1.DiscordID.String, "balance"))
	data := messageData(t, resp)
	require.Len(t, data.Embeds, 1)

	embed := data.Embeds[0]
	require.Equal(t, "💰 Your Wallet", embed.Title)
	require.Equal(t, discord.ColorSuccess, embed.Color)
	require.Equal(t, "**$120.50**", embed.Fields[0].Value)
	require.Equal(t, "$500.00", embed.Fields[1].Value)
}

func Test_handleCampaigns(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestDomain()

	resp := d.Handle(ctx, commandInteraction(testutil.User1.DiscordID.String, "campaigns"))
	data := messageData(t, resp)
	require.Len(t, data.Embeds, 1)
	require.Equal(t, "📋 Your Campaigns", data.Embeds[0].Title)
	require.Len(t, data.Embeds[0].Fields, 1)
	require.Contains(t, data.Embeds[0].Fields[0].Name, testutil.Campaign1.Title)
}

func Test_handleCampaigns_none(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestDomain()

	resp := d.Handle(ctx, commandInteraction(testutil.User2.DiscordID.String, "campaigns"))
	data := messageData(t, resp)
	require.Contains(t, data.Embeds[0].Description, "haven't joined any campaigns")
}

func Test_handleStats(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestDomain()

	resp := d.Handle(ctx, commandInteraction(testutil.User1.DiscordID.String, "stats"))
	data := messageData(t, resp)
	require.Len(t, data.Embeds, 1)

	embed := data.Embeds[0]
	require.Equal(t, "📊 Your Statistics", embed.Title)
	require.Contains(t, embed.Description, "All Time")
	require.Equal(t, "**$25.00**", embed.Fields[0].Value)
	require.Equal(t, "1 active", embed.Fields[2].Value)
	require.Equal(t, "2 total", embed.Fields[3].Value)

	// 1 of 2 approved.
	require.Equal(t, "📈 Approval Rate 50%", embed.Fields[6].Name)
	require.Equal(t, "`█████░░░░░`", embed.Fields[6].Value)
	require.Equal(t, discord.ColorWarning, embed.Color)
}

func Test_handleStats_periodFiltersSubmissions(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestDomain()

	// Everything on record is two months old; a 7 day window must be empty.
	err := xcontext.DB(ctx).
		Model(&entity.Submission{}).
		Where("creator_id=?", testutil.User1.ID).
		Update("created_at", time.Now().AddDate(0, -2, 0)).Error
	require.NoError(t, err)
	err = xcontext.DB(ctx).
		Model(&entity.Transaction{}).
		Where("user_id=?", testutil.User1.ID).
		Update("created_at", time.Now().AddDate(0, -2, 0)).Error
	require.NoError(t, err)

	resp := d.Handle(ctx, commandInteraction(testutil.User1.DiscordID.String, "stats",
		discord.CommandOption{Name: "period", Value: "7d"}))
	data := messageData(t, resp)

	embed := data.Embeds[0]
	require.Contains(t, embed.Description, "Last 7 Days")
	require.Equal(t, "**$0.00**", embed.Fields[0].Value)
	require.Equal(t, "0 total", embed.Fields[3].Value)
	require.Equal(t, "0", embed.Fields[4].Value)
	require.Equal(t, "0", embed.Fields[5].Value)
}

func Test_handleLeaderboard(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestDomain()

	resp := d.Handle(ctx, commandInteraction(testutil.User1.DiscordID.String, "leaderboard"))
	data := messageData(t, resp)

	// The leaderboard is public.
	require.Zero(t, data.Flags)
	require.Equal(t, "🏆 Top Creators", data.Embeds[0].Title)

	lines := strings.Split(data.Embeds[0].Description, "\n")
	require.Contains(t, lines[0], "🥇")
	require.Contains(t, lines[0], testutil.User2.FullName)
	require.Contains(t, lines[1], "🥈")
	require.Contains(t, lines[1], testutil.User1.FullName)

	// User1 earned less than User2 only, rank 2.
	require.Contains(t, data.Embeds[0].Description, "**Your Rank:** #2")
}

func Test_handleLink(t *testing.T) {
	ctx := testutil.MockContext()
	d := newTestDomain()

	resp := d.Handle(ctx, commandInteraction("discord-stranger", "link"))
	data := messageData(t, resp)
	require.Equal(t, discord.EphemeralFlag, data.Flags)
	require.Equal(t, "🔗 Link Your Account", data.Embeds[0].Title)
	require.Len(t, data.Components, 1)
	require.Len(t, data.Components[0].Components, 2)
}

func Test_handleTicket(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestDomain()

	resp := d.Handle(ctx, commandInteraction(testutil.User1.DiscordID.String, "ticket",
		discord.CommandOption{Name: "subject", Value: "Payment issue"},
		discord.CommandOption{Name: "description", Value: "My payout has not arrived."},
	))

	data := messageData(t, resp)
	require.Equal(t, "🎫 Ticket Created", data.Embeds[0].Title)
	require.Equal(t, "Payment issue", data.Embeds[0].Fields[1].Value)

	number := strings.Trim(data.Embeds[0].Fields[0].Value, "`")
	ticket, err := repository.NewTicketRepository().GetByNumber(ctx, number)
	require.NoError(t, err)
	require.Equal(t, testutil.User1.ID, ticket.UserID)
	require.Contains(t, ticket.Message, "My payout has not arrived.")
}

func Test_handleHelp(t *testing.T) {
	ctx := testutil.MockContext()
	d := newTestDomain()

	resp := d.Handle(ctx, commandInteraction("discord-stranger", "help"))
	data := messageData(t, resp)
	require.Equal(t, "📖 Commands", data.Embeds[0].Title)
	require.Len(t, data.Embeds[0].Fields, 8)
}

func Test_handleHelp_commandDetail(t *testing.T) {
	ctx := testutil.MockContext()
	d := newTestDomain()

	resp := d.Handle(ctx, commandInteraction("discord-stranger", "help",
		discord.CommandOption{Name: "command", Value: "submit"}))
	data := messageData(t, resp)
	require.Equal(t, "📖 /submit", data.Embeds[0].Title)

	resp = d.Handle(ctx, commandInteraction("discord-stranger", "help",
		discord.CommandOption{Name: "command", Value: "frobnicate"}))
	data = messageData(t, resp)
	require.Equal(t, "📖 Unknown Command", data.Embeds[0].Title)
}
