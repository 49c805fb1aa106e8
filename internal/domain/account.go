package domain

import (
	"context"
	"errors"

	"github.com/virality-gg/backend/internal/model"
	"github.com/virality-gg/backend/internal/repository"
	"github.com/virality-gg/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// AccountResolver maps a Discord snowflake id to the linked marketplace
// account. An unlinked invoker resolves to nil without an error; handlers
// treat that as a normal outcome and answer with linking guidance.
type AccountResolver interface {
	Resolve(ctx context.Context, discordID string) (*model.LinkedAccount, error)
}

type accountResolver struct {
	userRepo   repository.UserRepository
	walletRepo repository.WalletRepository
}

func NewAccountResolver(
	userRepo repository.UserRepository,
	walletRepo repository.WalletRepository,
) *accountResolver {
	return &accountResolver{
		userRepo:   userRepo,
		walletRepo: walletRepo,
	}
}

func (r *accountResolver) Resolve(ctx context.Context, discordID string) (*model.LinkedAccount, error) {
	if discordID == "" {
		return nil, nil
	}

	user, err := r.userRepo.GetByDiscordID(ctx, discordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		xcontext.Logger(ctx).Errorf("cannot get user by discord id: %v", err)
		return nil, err
	}

	account := &model.LinkedAccount{
		ID:        user.ID,
		DiscordID: discordID,
		Username:  user.Username,
	}
	if account.Username == "" {
		account.Username = user.FullName
	}

	wallet, err := r.walletRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("cannot get wallet of user: %v", err)
			return nil, err
		}
	} else {
		account.Balance = wallet.Balance
		account.TotalEarned = wallet.TotalEarned
	}

	return account, nil
}
