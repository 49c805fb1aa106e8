package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/virality-gg/backend/internal/entity"
	"github.com/virality-gg/backend/internal/model"
	"github.com/virality-gg/backend/pkg/discord"
	"github.com/virality-gg/backend/pkg/idutil"
	"github.com/virality-gg/backend/pkg/xcontext"
)

const shortIDLen = 8

// brandEmbed decorates an embed with the Virality author and footer so every
// response carries the same identity.
func brandEmbed(ctx context.Context, embed discord.Embed) discord.Embed {
	siteURL := xcontext.Configs(ctx).App.SiteURL
	if embed.Color == 0 {
		embed.Color = discord.ColorBrand
	}

	embed.Author = &discord.EmbedAuthor{
		Name:    "Virality",
		URL:     siteURL,
		IconURL: siteURL + "/logo.png",
	}
	embed.Footer = &discord.EmbedFooter{Text: "virality.gg"}
	embed.Timestamp = discord.Now()
	return embed
}

func notLinkedResponse(ctx context.Context, reason string) *discord.InteractionResponse {
	embed := brandEmbed(ctx, discord.Embed{
		Title:       "🔗 Account Not Linked",
		Description: "You haven't linked your Virality account yet.\n\n" + reason,
		Color:       discord.ColorWarning,
	})

	settingsURL := xcontext.Configs(ctx).App.SiteURL + "/dashboard?tab=settings"
	return discord.EmbedResponse(embed, true,
		discord.ActionRow(discord.LinkButton("Link Account", settingsURL)),
	)
}

func shortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}

	return id[:shortIDLen]
}

func (d *interactionDomain) handleBalance(
	ctx context.Context, interaction *discord.Interaction,
) (*discord.InteractionResponse, error) {
	account, err := d.accountResolver.Resolve(ctx, interaction.InvokerID())
	if err != nil {
		return nil, err
	}

	if account == nil {
		return notLinkedResponse(ctx,
			"Connect your Discord to access your wallet, submit content, and track earnings!"), nil
	}

	color := discord.ColorPrimary
	if account.Balance > 0 {
		color = discord.ColorSuccess
	}

	// Pending payouts are not tracked yet; the field is shown for parity with
	// the dashboard wallet card.
	embed := brandEmbed(ctx, discord.Embed{
		Title: "💰 Your Wallet",
		Fields: []discord.EmbedField{
			{Name: "Available Balance", Value: fmt.Sprintf("**$%.2f**", account.Balance), Inline: true},
			{Name: "Total Earned", Value: fmt.Sprintf("$%.2f", account.TotalEarned), Inline: true},
			{Name: "Pending", Value: "$0.00", Inline: true},
		},
		Color: color,
	})

	walletURL := xcontext.Configs(ctx).App.SiteURL + "/dashboard?tab=wallet"
	return discord.EmbedResponse(embed, true,
		discord.ActionRow(discord.LinkButton("View Wallet", walletURL)),
	), nil
}

func (d *interactionDomain) handleCampaigns(
	ctx context.Context, interaction *discord.Interaction,
) (*discord.InteractionResponse, error) {
	account, err := d.accountResolver.Resolve(ctx, interaction.InvokerID())
	if err != nil {
		return nil, err
	}

	if account == nil {
		return notLinkedResponse(ctx, "Connect your Discord to view and join campaigns!"), nil
	}

	memberships, err := d.campaignRepo.GetActiveMemberships(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	siteURL := xcontext.Configs(ctx).App.SiteURL
	discoverRow := discord.ActionRow(
		discord.LinkButton("Discover Campaigns", siteURL+"/dashboard?tab=campaigns"))

	if len(memberships) == 0 {
		embed := brandEmbed(ctx, discord.Embed{
			Title:       "📋 Your Campaigns",
			Description: "You haven't joined any campaigns yet.\n\nDiscover campaigns and start earning!",
			Color:       discord.ColorPrimary,
		})

		return discord.EmbedResponse(embed, true, discoverRow), nil
	}

	fields := make([]discord.EmbedField, 0, len(memberships))
	for _, m := range memberships {
		fields = append(fields, discord.EmbedField{
			Name:  "🟢 " + m.Campaign.Title,
			Value: fmt.Sprintf("💵 $%v • 📅 %s", m.Campaign.PayoutAmount, formatEndDate(&m.Campaign)),
		})
	}

	embed := brandEmbed(ctx, discord.Embed{
		Title:       "📋 Your Campaigns",
		Description: fmt.Sprintf("You are in %d active campaigns", len(memberships)),
		Fields:      fields,
	})

	return discord.EmbedResponse(embed, true, discoverRow), nil
}

func formatEndDate(campaign *entity.Campaign) string {
	if !campaign.EndDate.Valid {
		return "Ongoing"
	}

	return campaign.EndDate.Time.Format("Jan 2, 2006")
}

func (d *interactionDomain) handleStats(
	ctx context.Context, interaction *discord.Interaction,
) (*discord.InteractionResponse, error) {
	account, err := d.accountResolver.Resolve(ctx, interaction.InvokerID())
	if err != nil {
		return nil, err
	}

	if account == nil {
		return notLinkedResponse(ctx, "Connect your Discord to track your performance!"), nil
	}

	period := interaction.Data.Options.String("period")
	since, periodLabel := resolvePeriod(period)

	stats, err := d.collectStats(ctx, account.ID, since)
	if err != nil {
		return nil, err
	}

	color := discord.ColorBrand
	rateName := "📈 Approval Rate"
	if stats.TotalSubmissions > 0 {
		rate := float64(stats.ApprovedSubmissions) / float64(stats.TotalSubmissions)
		rateName = fmt.Sprintf("📈 Approval Rate %.0f%%", rate*100)
		if rate >= 0.8 {
			color = discord.ColorSuccess
		} else if rate >= 0.5 {
			color = discord.ColorWarning
		}
	}

	embed := brandEmbed(ctx, discord.Embed{
		Title:       "📊 Your Statistics",
		Description: "**Period:** " + periodLabel,
		Fields: []discord.EmbedField{
			{Name: "💰 Earnings", Value: fmt.Sprintf("**$%.2f**", stats.MonthlyEarnings), Inline: true},
			{Name: "💳 Balance", Value: fmt.Sprintf("$%.2f", account.Balance), Inline: true},
			{Name: "📋 Campaigns", Value: fmt.Sprintf("%d active", stats.ActiveCampaigns), Inline: true},
			{Name: "📤 Submissions", Value: fmt.Sprintf("%d total", stats.TotalSubmissions), Inline: true},
			{Name: "✅ Approved", Value: fmt.Sprintf("%d", stats.ApprovedSubmissions), Inline: true},
			{Name: "⏳ Pending", Value: fmt.Sprintf("%d", stats.PendingSubmissions), Inline: true},
			{Name: rateName, Value: fmt.Sprintf("`%s`", progressBar(stats.ApprovedSubmissions, stats.TotalSubmissions))},
		},
		Color: color,
	})

	dashboardURL := xcontext.Configs(ctx).App.SiteURL + "/dashboard"
	return discord.EmbedResponse(embed, true,
		discord.ActionRow(discord.LinkButton("View Dashboard", dashboardURL)),
	), nil
}

func progressBar(value, total int64) string {
	filled := 0
	if total > 0 {
		filled = int(float64(value) / float64(total) * 10)
	}

	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

func resolvePeriod(period string) (time.Time, string) {
	switch period {
	case "7d":
		return time.Now().AddDate(0, 0, -7), "Last 7 Days"
	case "30d":
		return time.Now().AddDate(0, 0, -30), "Last 30 Days"
	}

	return time.Time{}, "All Time"
}

func (d *interactionDomain) collectStats(
	ctx context.Context, userID string, since time.Time,
) (*model.StatsSummary, error) {
	statistic, err := d.submissionRepo.Statistic(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	stats := &model.StatsSummary{}
	for _, s := range statistic {
		stats.TotalSubmissions += s.Count
		switch s.Status {
		case entity.SubmissionApproved:
			stats.ApprovedSubmissions = s.Count
		case entity.SubmissionPending:
			stats.PendingSubmissions = s.Count
		case entity.SubmissionRejected:
			stats.RejectedSubmissions = s.Count
		}
	}

	stats.MonthlyEarnings, err = d.walletRepo.SumEarnings(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	stats.ActiveCampaigns, err = d.campaignRepo.CountActiveMemberships(ctx, userID)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (d *interactionDomain) handleLeaderboard(
	ctx context.Context, interaction *discord.Interaction,
) (*discord.InteractionResponse, error) {
	limit := xcontext.Configs(ctx).App.LeaderboardLimit
	if limit <= 0 {
		limit = 10
	}

	topEarners, err := d.walletRepo.TopEarners(ctx, limit)
	if err != nil {
		return nil, err
	}

	siteURL := xcontext.Configs(ctx).App.SiteURL
	fullRow := discord.ActionRow(discord.LinkButton("View Full Leaderboard", siteURL+"/leaderboard"))

	if len(topEarners) == 0 {
		embed := brandEmbed(ctx, discord.Embed{
			Title:       "🏆 Leaderboard",
			Description: "No creators on the leaderboard yet.\n\nBe the first to earn!",
			Color:       discord.ColorPrimary,
		})

		return discord.EmbedResponse(embed, false, fullRow), nil
	}

	lines := make([]string, 0, len(topEarners))
	for i, wallet := range topEarners {
		name := wallet.User.FullName
		if name == "" {
			name = wallet.User.Username
		}
		if name == "" {
			name = "Anonymous"
		}

		lines = append(lines, fmt.Sprintf("%s **%s** • $%.2f earned", medal(i+1), name, wallet.TotalEarned))
	}

	description := strings.Join(lines, "\n")
	if rank := d.viewerRank(ctx, interaction.InvokerID()); rank > 0 {
		description += fmt.Sprintf("\n\n🎯 **Your Rank:** #%d", rank)
	}

	embed := brandEmbed(ctx, discord.Embed{
		Title:       "🏆 Top Creators",
		Description: description,
	})

	// The leaderboard is the one public answer; everyone in the channel can
	// see it.
	return discord.EmbedResponse(embed, false, fullRow), nil
}

func medal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}

	return fmt.Sprintf("`#%d`", rank)
}

// viewerRank is best effort. A failure only drops the rank line.
func (d *interactionDomain) viewerRank(ctx context.Context, discordID string) int {
	account, err := d.accountResolver.Resolve(ctx, discordID)
	if err != nil || account == nil {
		return 0
	}

	count, err := d.walletRepo.CountEarnedMoreThan(ctx, account.TotalEarned)
	if err != nil {
		xcontext.Logger(ctx).Warnf("cannot count wallets for rank: %v", err)
		return 0
	}

	return int(count) + 1
}

func (d *interactionDomain) handleLink(
	ctx context.Context, interaction *discord.Interaction,
) (*discord.InteractionResponse, error) {
	embed := brandEmbed(ctx, discord.Embed{
		Title: "🔗 Link Your Account",
		Description: "Connect your Discord to access all features:\n\n" +
			"**Step 1:** Visit your dashboard settings\n" +
			"**Step 2:** Click \"Connect Discord\"\n" +
			"**Step 3:** Authorize the connection\n\n" +
			"Once linked, you can check balance, submit content, and track earnings directly from Discord!",
		Color: discord.ColorPrimary,
	})

	siteURL := xcontext.Configs(ctx).App.SiteURL
	return discord.EmbedResponse(embed, true,
		discord.ActionRow(
			discord.LinkButton("Open Settings", siteURL+"/dashboard?tab=settings"),
			discord.LinkButton("Create Account", siteURL+"/auth"),
		),
	), nil
}

func (d *interactionDomain) handleSubmit(
	ctx context.Context, interaction *discord.Interaction,
) (*discord.InteractionResponse, error) {
	account, err := d.accountResolver.Resolve(ctx, interaction.InvokerID())
	if err != nil {
		return nil, err
	}

	if account == nil {
		return notLinkedResponse(ctx, "Connect your Discord to get started!"), nil
	}

	memberships, err := d.campaignRepo.GetActiveMemberships(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	siteURL := xcontext.Configs(ctx).App.SiteURL
	if len(memberships) == 0 {
		embed := brandEmbed(ctx, discord.Embed{
			Title: "📋 No Active Campaigns",
			Description: "You're not currently part of any active campaigns.\n\n" +
				"Discover and join campaigns to start earning!",
			Color: discord.ColorWarning,
		})

		return discord.EmbedResponse(embed, true,
			discord.ActionRow(discord.LinkButton("Discover Campaigns", siteURL+"/dashboard?tab=campaigns")),
		), nil
	}

	if len(memberships) == 1 {
		return newSubmitVideoModal(&memberships[0].Campaign), nil
	}

	const maxSelectOptions = 25
	if len(memberships) > maxSelectOptions {
		memberships = memberships[:maxSelectOptions]
	}

	options := make([]discord.SelectOption, 0, len(memberships))
	for _, m := range memberships {
		options = append(options, discord.SelectOption{
			Label:       truncate(m.Campaign.Title, 100),
			Value:       m.CampaignID,
			Description: fmt.Sprintf("$%v per submission", m.Campaign.PayoutAmount),
			Emoji:       &discord.Emoji{Name: "📋"},
		})
	}

	embed := brandEmbed(ctx, discord.Embed{
		Title: "📤 Submit Content",
		Description: "Select a campaign to submit your content to.\n\n" +
			"You can submit TikTok, Instagram, YouTube, or Twitter links.",
	})

	return discord.EmbedResponse(embed, true,
		discord.ActionRow(discord.SelectMenu(selectCampaignCustomID, "Choose a campaign...", options)),
	), nil
}

func (d *interactionDomain) handleTicket(
	ctx context.Context, interaction *discord.Interaction,
) (*discord.InteractionResponse, error) {
	account, err := d.accountResolver.Resolve(ctx, interaction.InvokerID())
	if err != nil {
		return nil, err
	}

	if account == nil {
		return notLinkedResponse(ctx, "Connect your Discord to create support tickets!"), nil
	}

	subject := interaction.Data.Options.String("subject")
	if subject == "" {
		subject = "Support Request"
	}
	description := interaction.Data.Options.String("description")

	ticket := &entity.Ticket{
		Number:  idutil.NewTicketNumber(),
		UserID:  account.ID,
		Subject: subject,
		Message: fmt.Sprintf("**Subject:** %s\n\n%s", subject, description),
		Status:  entity.TicketOpen,
	}

	if err := d.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}

	embed := brandEmbed(ctx, discord.Embed{
		Title:       "🎫 Ticket Created",
		Description: "Your support request has been submitted. Our team will respond as soon as possible.",
		Fields: []discord.EmbedField{
			{Name: "Ticket ID", Value: fmt.Sprintf("`%s`", ticket.Number), Inline: true},
			{Name: "Subject", Value: subject, Inline: true},
		},
		Color: discord.ColorSuccess,
	})

	return discord.EmbedResponse(embed, true), nil
}

var commandSummaries = map[string]string{
	"balance":     "Check your wallet balance and total earnings",
	"campaigns":   "List the active campaigns you have joined",
	"stats":       "Your submission and earnings statistics",
	"leaderboard": "Top creators by total earnings",
	"submit":      "Submit content to one of your campaigns",
	"ticket":      "Open a support ticket with `subject` and `description`",
	"link":        "How to connect your Discord account",
	"help":        "This command catalogue",
}

func (d *interactionDomain) handleHelp(
	ctx context.Context, interaction *discord.Interaction,
) (*discord.InteractionResponse, error) {
	if name := interaction.Data.Options.String("command"); name != "" {
		summary, ok := commandSummaries[name]
		if !ok {
			embed := brandEmbed(ctx, discord.Embed{
				Title:       "📖 Unknown Command",
				Description: fmt.Sprintf("There is no `/%s` command.", name),
				Color:       discord.ColorWarning,
			})

			return discord.EmbedResponse(embed, true), nil
		}

		embed := brandEmbed(ctx, discord.Embed{
			Title:       "📖 /" + name,
			Description: summary,
		})

		return discord.EmbedResponse(embed, true), nil
	}

	fields := make([]discord.EmbedField, 0, len(commandSummaries))
	for _, name := range d.commandNames() {
		fields = append(fields, discord.EmbedField{Name: "/" + name, Value: commandSummaries[name]})
	}

	embed := brandEmbed(ctx, discord.Embed{
		Title:  "📖 Commands",
		Fields: fields,
	})

	return discord.EmbedResponse(embed, true), nil
}

// truncate shortens s to at most max runes without splitting a multi-byte
// sequence.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}

	return string([]rune(s)[:max])
}
