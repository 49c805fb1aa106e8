package testutil

import (
	"context"

	"github.com/virality-gg/backend/config"
	"github.com/virality-gg/backend/internal/entity"
	"github.com/virality-gg/backend/pkg/logger"
	"github.com/virality-gg/backend/pkg/xcontext"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func MockContext() context.Context {
	cfg := config.Configs{
		Env:      "testing",
		LogLevel: "ERROR",
		Discord: config.DiscordConfigs{
			// Zero key, only the decode path cares about the shape.
			PublicKey:     "0000000000000000000000000000000000000000000000000000000000000000",
			ApplicationID: "app-test",
		},
		App: config.AppConfigs{
			SiteURL:          "https://virality.gg",
			LeaderboardLimit: 10,
		},
	}

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.ERROR))
	ctx = xcontext.WithDB(ctx, db)

	if err := entity.MigrateTable(ctx); err != nil {
		panic(err)
	}

	return ctx
}
