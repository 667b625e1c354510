package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"rift-scout/internal/client"
	"rift-scout/internal/config"
	"rift-scout/internal/database"
	"rift-scout/internal/ddragon"
	"rift-scout/internal/history"
	"rift-scout/internal/logger"
	"rift-scout/internal/repository"

	"github.com/rs/zerolog"
)

const usage = `usage: scout <command> [flags] [args]

commands:
  profile  Name#Tag          profile, ranks, top mastery and recent form
  live     Name#Tag          enriched live game
  analyze  MATCH_ID Name#Tag lane diff, deaths and badges for one match
  lobby                      scout a pasted lobby read from stdin
  leaderboard                top challenger players
  status                     platform status and free rotation
  recent                     recent profile searches

every command accepts -region (default na1)
`

type app struct {
	proxy   *client.Client
	statics *ddragon.Client
	history *history.History
	logger  zerolog.Logger
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1], os.Args[2:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, args []string) error {
	bootLog := logger.Console("")
	cfg := config.LoadClient(bootLog)
	log := logger.Console(cfg.LogLevel)

	db, err := database.New(cfg, log)
	if err != nil {
		return err
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			log.Warn().Err(err).Msg("error closing history database")
		}
	}(db)

	a := &app{
		proxy:   client.New(cfg),
		statics: ddragon.New(cfg),
		history: history.New(repository.NewSearchRepository(db, log)),
		logger:  log,
	}

	cmd, ok := a.commands()[command]
	if !ok {
		return errUsage
	}
	return cmd(ctx, args)
}
