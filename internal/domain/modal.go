package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/virality-gg/backend/internal/entity"
	"github.com/virality-gg/backend/pkg/discord"
	"github.com/virality-gg/backend/pkg/xcontext"
	"gorm.io/gorm"
)

const (
	submitVideoModalCustomID = "submit_video_modal"
	selectCampaignCustomID   = "select_campaign_submit"
)

// newSubmitVideoModal builds the content submission form. The row order is a
// contract with parseSubmitVideoForm: url, campaign id, notes. The campaign
// id row is prefilled at issuance so the submission round-trips it without
// any server-side session.
func newSubmitVideoModal(campaign *entity.Campaign) *discord.InteractionResponse {
	title := "Submit to: " + truncate(campaign.Title, 30)

	return discord.ModalResponse(submitVideoModalCustomID, title,
		discord.ActionRow(discord.TextInput(discord.TextInputOptions{
			CustomID:    "content_url",
			Label:       "Video URL",
			Style:       discord.TextInputShort,
			Placeholder: "https://tiktok.com/@username/video/...",
			Required:    true,
		})),
		discord.ActionRow(discord.TextInput(discord.TextInputOptions{
			CustomID: "campaign_id",
			Label:    "Campaign ID (do not change)",
			Style:    discord.TextInputShort,
			Required: true,
			Value:    campaign.ID,
		})),
		discord.ActionRow(discord.TextInput(discord.TextInputOptions{
			CustomID:    "notes",
			Label:       "Notes (Optional)",
			Style:       discord.TextInputParagraph,
			Placeholder: "Any additional notes for the brand...",
			Required:    false,
		})),
	)
}

type submitVideoForm struct {
	ContentURL string
	CampaignID string
	Notes      string
}

// parseSubmitVideoForm extracts the form by position, mirroring the row order
// of newSubmitVideoModal. Labels and custom ids are not consulted.
func parseSubmitVideoForm(rows []discord.Component) (*submitVideoForm, error) {
	form := &submitVideoForm{}

	var ok bool
	if form.ContentURL, ok = discord.TextInputValue(rows, 0, 0); !ok || form.ContentURL == "" {
		return nil, fmt.Errorf("video url is required")
	}

	if form.CampaignID, ok = discord.TextInputValue(rows, 1, 0); !ok || form.CampaignID == "" {
		return nil, fmt.Errorf("campaign id is required")
	}

	// Notes are optional, a missing third row is fine.
	form.Notes, _ = discord.TextInputValue(rows, 2, 0)
	return form, nil
}

func detectPlatform(url string) entity.Platform {
	lower := strings.ToLower(url)
	switch {
	case strings.Contains(lower, "tiktok.com"):
		return entity.PlatformTiktok
	case strings.Contains(lower, "instagram.com"):
		return entity.PlatformInstagram
	case strings.Contains(lower, "youtube.com"), strings.Contains(lower, "youtu.be"):
		return entity.PlatformYoutube
	case strings.Contains(lower, "twitter.com"), strings.Contains(lower, "x.com"):
		return entity.PlatformTwitter
	}

	return entity.PlatformOther
}

func (d *interactionDomain) handleModalSubmit(
	ctx context.Context, interaction *discord.Interaction,
) (*discord.InteractionResponse, error) {
	if interaction.Data.CustomID != submitVideoModalCustomID {
		return discord.TextResponse("Unknown modal submission.", true), nil
	}

	account, err := d.accountResolver.Resolve(ctx, interaction.InvokerID())
	if err != nil {
		return nil, err
	}

	if account == nil {
		return discord.TextResponse("Your account is not linked. Use `/link` first.", true), nil
	}

	form, err := parseSubmitVideoForm(interaction.Data.Components)
	if err != nil {
		return discord.TextResponse("Video URL is required. Please try again.", true), nil
	}

	membership, err := d.campaignRepo.GetMembership(ctx, account.ID, form.CampaignID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if membership == nil || membership.Status != entity.MembershipActive {
		embed := brandEmbed(ctx, discord.Embed{
			Title:       "❌ Not a Member",
			Description: "You're not a member of this campaign.",
			Color:       discord.ColorError,
		})

		return discord.EmbedResponse(embed, true), nil
	}

	campaign, err := d.campaignRepo.GetByID(ctx, form.CampaignID)
	if err != nil {
		return nil, err
	}

	platform := detectPlatform(form.ContentURL)
	submission := &entity.Submission{
		CampaignID: form.CampaignID,
		CreatorID:  account.ID,
		ContentURL: form.ContentURL,
		Platform:   platform,
		Status:     entity.SubmissionPending,
		Notes:      form.Notes,
	}

	if err := d.submissionRepo.Create(ctx, submission); err != nil {
		return nil, err
	}

	embed := brandEmbed(ctx, discord.Embed{
		Title:       "✅ Content Submitted!",
		Description: "Your content has been submitted for review.",
		Fields: []discord.EmbedField{
			{Name: "Campaign", Value: campaign.Title, Inline: true},
			{Name: "Platform", Value: fmt.Sprintf("%s %s", platformEmoji(platform), platform), Inline: true},
			{Name: "Submission ID", Value: fmt.Sprintf("`%s`", shortID(submission.ID)), Inline: true},
			{Name: "Content", Value: form.ContentURL},
		},
		Color: discord.ColorSuccess,
	})

	submissionsURL := xcontext.Configs(ctx).App.SiteURL + "/dashboard?tab=campaigns"
	return discord.EmbedResponse(embed, true,
		discord.ActionRow(discord.LinkButton("View Submissions", submissionsURL)),
	), nil
}

// reissueSubmitModal answers a campaign pick from the submit select menu with
// the submission form for the chosen campaign.
func (d *interactionDomain) reissueSubmitModal(
	ctx context.Context, interaction *discord.Interaction, campaignID string,
) (*discord.InteractionResponse, error) {
	account, err := d.accountResolver.Resolve(ctx, interaction.InvokerID())
	if err != nil {
		return nil, err
	}

	if account == nil {
		return discord.TextResponse("Your account is not linked. Use `/link` first.", true), nil
	}

	membership, err := d.campaignRepo.GetMembership(ctx, account.ID, campaignID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if membership == nil || membership.Status != entity.MembershipActive {
		return discord.TextResponse("You're not a member of this campaign.", true), nil
	}

	campaign, err := d.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	return newSubmitVideoModal(campaign), nil
}

func platformEmoji(platform entity.Platform) string {
	switch platform {
	case entity.PlatformTiktok:
		return "🎵"
	case entity.PlatformInstagram:
		return "📸"
	case entity.PlatformYoutube:
		return "▶️"
	case entity.PlatformTwitter:
		return "🐦"
	}

	return "🔗"
}
