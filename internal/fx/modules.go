package fx

import (
	"rift-scout/internal/config"
	"rift-scout/internal/logger"
	"rift-scout/internal/riot"
	"rift-scout/internal/server"
	"rift-scout/internal/service"

	"go.uber.org/fx"
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	// riot client
	fx.Provide(
		fx.Annotate(
			riot.NewClient,
			fx.As(new(service.RiotAPI)),
		),
	),
	// svc
	fx.Provide(service.NewPlayerService),
	fx.Provide(service.NewMatchService),
	fx.Provide(service.NewLiveService),
	fx.Provide(service.NewStatusService),
	fx.Provide(service.NewLeaderboardService),
	fx.Provide(service.NewLobbyService),
	fx.Provide(service.NewAnalysisService),
	// server
	fx.Provide(server.NewServer),
)
