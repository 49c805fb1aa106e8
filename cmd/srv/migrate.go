package main

import (
	"context"

	"github.com/urfave/cli/v2"
	"github.com/virality-gg/backend/internal/entity"
	"github.com/virality-gg/backend/pkg/xcontext"
)

func (s *srv) startMigrate(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, *s.configs)
	ctx = xcontext.WithLogger(ctx, s.logger)
	ctx = xcontext.WithDB(ctx, s.db)

	if err := entity.MigrateTable(ctx); err != nil {
		return err
	}

	s.logger.Infof("migration completed")
	return nil
}
