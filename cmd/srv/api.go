package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/cors"
	"github.com/urfave/cli/v2"
	"github.com/virality-gg/backend/internal/middleware"
	"github.com/virality-gg/backend/internal/model"
	"github.com/virality-gg/backend/pkg/discord"
	"github.com/virality-gg/backend/pkg/router"
)

func (s *srv) startApi(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()
	s.loadRepos()
	s.loadDomains()
	s.loadDeliveries()
	s.loadRouter()

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{
			"Content-Type",
			discord.SignatureHeader,
			discord.TimestampHeader,
		},
	})

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", s.configs.ApiServer.Port),
		Handler: c.Handler(s.router.Handler()),
	}

	s.logger.Infof("starting server on port %s", s.configs.ApiServer.Port)
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, *s.configs, s.logger)
	s.router.AddCloser(middleware.Logger())

	router.GET(s.router, "/", s.getStatus)
	router.Handle(s.router, "/interactions", s.interactionDelivery.Handle)
}

func (s *srv) getStatus(context.Context, *model.GetStatusRequest) (*model.GetStatusResponse, error) {
	return &model.GetStatusResponse{Status: "ok", Service: "virality-backend"}, nil
}
