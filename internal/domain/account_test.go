package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/virality-gg/backend/internal/repository"
	"github.com/virality-gg/backend/pkg/testutil"
)

func Test_accountResolver_Resolve(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	resolver := NewAccountResolver(repository.NewUserRepository(), repository.NewWalletRepository())

	account, err := resolver.Resolve(ctx, testutil.User1.DiscordID.String)
	require.NoError(t, err)
	require.NotNil(t, account)
	require.Equal(t, testutil.User1.ID, account.ID)
	require.Equal(t, testutil.User1.Username, account.Username)
	require.Equal(t, testutil.Wallet1.Balance, account.Balance)
	require.Equal(t, testutil.Wallet1.TotalEarned, account.TotalEarned)
}

func Test_accountResolver_Resolve_unlinked(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	resolver := NewAccountResolver(repository.NewUserRepository(), repository.NewWalletRepository())

	account, err := resolver.Resolve(ctx, "discord-stranger")
	require.NoError(t, err)
	require.Nil(t, account)

	account, err = resolver.Resolve(ctx, "")
	require.NoError(t, err)
	require.Nil(t, account)
}

func Test_accountResolver_Resolve_withoutWallet(t *testing.T) {
	ctx := testutil.MockContext()
	userRepo := repository.NewUserRepository()
	resolver := NewAccountResolver(userRepo, repository.NewWalletRepository())

	require.NoError(t, userRepo.Create(ctx, testutil.User1))

	account, err := resolver.Resolve(ctx, testutil.User1.DiscordID.String)
	require.NoError(t, err)
	require.NotNil(t, account)
	require.Zero(t, account.Balance)
	require.Zero(t, account.TotalEarned)
}
