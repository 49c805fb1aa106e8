package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/virality-gg/backend/internal/repository"
	"github.com/virality-gg/backend/pkg/discord"
	"github.com/virality-gg/backend/pkg/xcontext"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type commandHandler func(ctx context.Context, interaction *discord.Interaction) (*discord.InteractionResponse, error)

// InteractionDomain routes a verified, parsed interaction to its handler and
// always produces a response. Failures of the backing store never escape;
// they become a generic ephemeral retry message.
type InteractionDomain interface {
	Handle(ctx context.Context, interaction *discord.Interaction) *discord.InteractionResponse
}

type interactionDomain struct {
	accountResolver AccountResolver
	walletRepo      repository.WalletRepository
	campaignRepo    repository.CampaignRepository
	submissionRepo  repository.SubmissionRepository
	ticketRepo      repository.TicketRepository

	commands map[string]commandHandler
}

func NewInteractionDomain(
	accountResolver AccountResolver,
	walletRepo repository.WalletRepository,
	campaignRepo repository.CampaignRepository,
	submissionRepo repository.SubmissionRepository,
	ticketRepo repository.TicketRepository,
) *interactionDomain {
	d := &interactionDomain{
		accountResolver: accountResolver,
		walletRepo:      walletRepo,
		campaignRepo:    campaignRepo,
		submissionRepo:  submissionRepo,
		ticketRepo:      ticketRepo,
	}

	d.commands = map[string]commandHandler{
		"balance":     d.handleBalance,
		"campaigns":   d.handleCampaigns,
		"stats":       d.handleStats,
		"leaderboard": d.handleLeaderboard,
		"link":        d.handleLink,
		"submit":      d.handleSubmit,
		"ticket":      d.handleTicket,
		"help":        d.handleHelp,
	}

	return d
}

func (d *interactionDomain) Handle(
	ctx context.Context, interaction *discord.Interaction,
) *discord.InteractionResponse {
	switch interaction.Type {
	case discord.InteractionPing:
		// Answered before touching any backing store.
		return discord.Pong()

	case discord.InteractionApplicationCommand:
		handler, ok := d.commands[interaction.Data.Name]
		if !ok {
			return discord.TextResponse(
				fmt.Sprintf("Unknown command. Available commands: %s.", strings.Join(d.commandNames(), ", ")),
				true)
		}

		resp, err := handler(ctx, interaction)
		if err != nil {
			return d.retryResponse(ctx, interaction, err)
		}

		return resp

	case discord.InteractionMessageComponent:
		resp, err := d.handleComponent(ctx, interaction)
		if err != nil {
			return d.retryResponse(ctx, interaction, err)
		}

		return resp

	case discord.InteractionAutocomplete:
		return discord.EmptyAutocomplete()

	case discord.InteractionModalSubmit:
		resp, err := d.handleModalSubmit(ctx, interaction)
		if err != nil {
			return d.retryResponse(ctx, interaction, err)
		}

		return resp
	}

	return discord.TextResponse("Unsupported interaction.", true)
}

// retryResponse logs the failure with the interaction id for correlation and
// answers with a generic message. The raw error never reaches the client.
func (d *interactionDomain) retryResponse(
	ctx context.Context, interaction *discord.Interaction, err error,
) *discord.InteractionResponse {
	xcontext.Logger(ctx).Errorf("interaction %s failed: %v", interaction.ID, err)
	return discord.TextResponse("Something went wrong. Please try again.", true)
}

func (d *interactionDomain) commandNames() []string {
	names := maps.Keys(d.commands)
	slices.Sort(names)
	return names
}

func (d *interactionDomain) handleComponent(
	ctx context.Context, interaction *discord.Interaction,
) (*discord.InteractionResponse, error) {
	if interaction.Data.CustomID == selectCampaignCustomID && len(interaction.Data.Values) > 0 {
		return d.reissueSubmitModal(ctx, interaction, interaction.Data.Values[0])
	}

	// Buttons and other selects only decorate messages the bot already sent.
	return discord.DeferredUpdate(), nil
}
