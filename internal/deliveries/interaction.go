package deliveries

import (
	"context"
	"crypto/ed25519"
	"io"
	"net/http"

	"github.com/virality-gg/backend/internal/domain"
	"github.com/virality-gg/backend/pkg/discord"
	"github.com/virality-gg/backend/pkg/router"
	"github.com/virality-gg/backend/pkg/xcontext"
)

type InteractionDelivery struct {
	interactionDomain domain.InteractionDomain
	publicKey         ed25519.PublicKey
}

func NewInteractionDelivery(
	interactionDomain domain.InteractionDomain,
	publicKey ed25519.PublicKey,
) *InteractionDelivery {
	return &InteractionDelivery{
		interactionDomain: interactionDomain,
		publicKey:         publicKey,
	}
}

// Handle serves the interactions webhook. The signature is verified over the
// raw body before any parsing happens; only a failed signature produces a
// non-200 status.
func (d *InteractionDelivery) Handle(ctx context.Context) error {
	req := xcontext.HTTPRequest(ctx)
	w := xcontext.HTTPWriter(ctx)

	switch req.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusNoContent)
		return nil
	case http.MethodPost:
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return nil
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return err
	}

	if err := discord.VerifyRequest(req, body, d.publicKey); err != nil {
		// Only the outcome is logged, nothing derived from the payload.
		xcontext.Logger(ctx).Warnf("interaction signature verification failed")
		w.WriteHeader(http.StatusUnauthorized)
		return nil
	}

	interaction, err := discord.ParseInteraction(body)
	if err != nil {
		xcontext.Logger(ctx).Warnf("cannot parse a verified interaction: %v", err)
		return router.WriteJson(w, discord.TextResponse("Unsupported interaction.", true))
	}

	resp := d.interactionDomain.Handle(ctx, interaction)
	if err := resp.ValidFor(interaction.Type); err != nil {
		xcontext.Logger(ctx).Errorf("invalid response for interaction %s: %v", interaction.ID, err)
		resp = discord.TextResponse("Something went wrong. Please try again.", true)
	}

	return router.WriteJson(w, resp)
}
