package main

import (
	"net/http"

	"github.com/urfave/cli/v2"
	"github.com/virality-gg/backend/config"
	"github.com/virality-gg/backend/internal/deliveries"
	"github.com/virality-gg/backend/internal/domain"
	"github.com/virality-gg/backend/internal/repository"
	"github.com/virality-gg/backend/pkg/logger"
	"github.com/virality-gg/backend/pkg/router"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App

	userRepo       repository.UserRepository
	walletRepo     repository.WalletRepository
	campaignRepo   repository.CampaignRepository
	submissionRepo repository.SubmissionRepository
	ticketRepo     repository.TicketRepository

	accountResolver   domain.AccountResolver
	interactionDomain domain.InteractionDomain

	interactionDelivery *deliveries.InteractionDelivery

	router *router.Router

	db      *gorm.DB
	logger  logger.Logger
	configs *config.Configs

	server *http.Server
}

func (s *srv) loadLogger() {
	s.logger = logger.NewLogger(logger.ParseLevel(s.configs.LogLevel))
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.Open(s.configs.Database.ConnectionString()), &gorm.Config{})
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.walletRepo = repository.NewWalletRepository()
	s.campaignRepo = repository.NewCampaignRepository()
	s.submissionRepo = repository.NewSubmissionRepository()
	s.ticketRepo = repository.NewTicketRepository()
}

func (s *srv) loadDomains() {
	s.accountResolver = domain.NewAccountResolver(s.userRepo, s.walletRepo)
	s.interactionDomain = domain.NewInteractionDomain(
		s.accountResolver,
		s.walletRepo,
		s.campaignRepo,
		s.submissionRepo,
		s.ticketRepo,
	)
}

func (s *srv) loadDeliveries() {
	publicKey, err := s.configs.Discord.DecodePublicKey()
	if err != nil {
		panic(err)
	}

	s.interactionDelivery = deliveries.NewInteractionDelivery(s.interactionDomain, publicKey)
}
