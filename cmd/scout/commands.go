package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"rift-scout/internal/constants"
	"rift-scout/internal/domain"
	"rift-scout/internal/insights"
	"rift-scout/internal/region"
)

var errUsage = errors.New("usage")

type command func(ctx context.Context, args []string) error

func (a *app) commands() map[string]command {
	return map[string]command{
		"profile":     a.profile,
		"live":        a.live,
		"analyze":     a.analyze,
		"lobby":       a.lobby,
		"leaderboard": a.leaderboard,
		"status":      a.status,
		"recent":      a.recent,
	}
}

// parse handles the shared -region flag and checks the positional count.
func parse(name string, args []string, positional int) (string, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	platform := fs.String("region", constants.DefaultPlatform, "platform routing value")
	if err := fs.Parse(args); err != nil {
		return "", nil, errUsage
	}
	if fs.NArg() != positional {
		return "", nil, errUsage
	}
	if !region.IsPlatform(strings.TrimSpace(*platform)) {
		return "", nil, fmt.Errorf("unknown region %q", *platform)
	}
	return region.Platform(*platform), fs.Args(), nil
}

func splitRiotID(raw string) (string, string, error) {
	name, tag, ok := strings.Cut(raw, "#")
	name, tag = strings.TrimSpace(name), strings.TrimSpace(tag)
	if !ok || name == "" || tag == "" {
		return "", "", fmt.Errorf("%q is missing a #Tag", raw)
	}
	return name, tag, nil
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

func (a *app) resolve(ctx context.Context, riotID, platform string) (*domain.PlayerProfile, error) {
	name, tag, err := splitRiotID(riotID)
	if err != nil {
		return nil, err
	}
	return a.proxy.Profile(ctx, name, tag, platform)
}

func (a *app) profile(ctx context.Context, args []string) error {
	platform, rest, err := parse("profile", args, 1)
	if err != nil {
		return err
	}

	p, err := a.resolve(ctx, rest[0], platform)
	if err != nil {
		return err
	}

	if _, err := a.history.Record(ctx, p.Account.GameName, p.Account.TagLine, platform, p.Summoner.ProfileIconID); err != nil {
		a.logger.Warn().Err(err).Msg("failed to record search")
	}

	fmt.Printf("%s#%s  level %d  (%s)\n", p.Account.GameName, p.Account.TagLine, p.Summoner.SummonerLevel, platform)

	if best, ok := insights.BestRank(p.Ranks); ok {
		fmt.Printf("%s: %s %s %d LP  %dW %dL  %.0f%%\n",
			insights.QueueLabel(best.QueueType), best.Tier, best.Rank, best.LeaguePoints,
			best.Wins, best.Losses, insights.WinRate(best.Wins, best.Losses))
	} else {
		fmt.Println("Unranked")
	}

	if len(p.Mastery) > 0 {
		fmt.Println("\nTop mastery")
		tw := newTable()
		for _, m := range p.Mastery {
			fmt.Fprintf(tw, "  %s\tlevel %d\t%s\n", a.statics.ChampionName(ctx, m.ChampionID), m.ChampionLevel, insights.FormatPoints(m.ChampionPoints))
		}
		tw.Flush()
	}

	summary, err := a.proxy.Summary(ctx, p.Account.Puuid, platform)
	if err != nil {
		a.logger.Warn().Err(err).Msg("recent matches unavailable")
		return nil
	}

	fmt.Println("\nRecent matches")
	tw := newTable()
	for _, m := range summary.Matches {
		result := "L"
		if m.Win {
			result = "W"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\n", m.MatchID, result, m.Champion, m.KDA, m.Duration, joinBadges(m.Badges))
	}
	tw.Flush()

	for _, b := range summary.WinRates {
		if b.Total > 0 {
			fmt.Printf("  %s: %d%% over %d games\n", b.Label, b.WinRate, b.Total)
		}
	}
	return nil
}

func (a *app) live(ctx context.Context, args []string) error {
	platform, rest, err := parse("live", args, 1)
	if err != nil {
		return err
	}

	p, err := a.resolve(ctx, rest[0], platform)
	if err != nil {
		return err
	}

	game, err := a.proxy.Live(ctx, p.Account.Puuid, platform)
	if err != nil {
		return err
	}

	fmt.Printf("%s  %s\n", game.GameMode, insights.FormatDuration(game.GameLength))
	tw := newTable()
	for _, part := range game.Participants {
		fmt.Fprintf(tw, "  %d\t%s\t%s\t%s\t%s\t%s\n",
			part.TeamID, part.RiotID, a.statics.ChampionName(ctx, part.ChampionID),
			part.Rank, insights.FormatPoints(part.Mastery), strings.Join(part.Tags, " "))
	}
	return tw.Flush()
}

func (a *app) analyze(ctx context.Context, args []string) error {
	platform, rest, err := parse("analyze", args, 2)
	if err != nil {
		return err
	}

	p, err := a.resolve(ctx, rest[1], platform)
	if err != nil {
		return err
	}

	analysis, err := a.proxy.Analysis(ctx, rest[0], p.Account.Puuid, platform)
	if err != nil {
		return err
	}

	fmt.Printf("%s on %s  score %.1f  %s\n", analysis.MatchID, analysis.Champion, analysis.Score, joinBadges(analysis.Badges))
	if analysis.Opponent != "" {
		fmt.Printf("Lane opponent: %s\n", analysis.Opponent)
	}
	if analysis.Tip != "" {
		fmt.Printf("Tip: %s\n", analysis.Tip)
	}

	tw := newTable()
	fmt.Fprintln(tw, "  min\tgold\txp")
	for _, d := range analysis.LaneDiff {
		fmt.Fprintf(tw, "  %d\t%+d\t%+d\n", d.Minute, d.GoldDiff, d.XPDiff)
	}
	tw.Flush()

	fmt.Printf("Deaths: %d\n", len(analysis.Deaths))
	return nil
}

func (a *app) lobby(ctx context.Context, args []string) error {
	platform, _, err := parse("lobby", args, 0)
	if err != nil {
		return err
	}

	var sb strings.Builder
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		sb.WriteString(scanner.Text())
		sb.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read lobby: %w", err)
	}

	results, err := a.proxy.Lobby(ctx, sb.String(), platform)
	if err != nil {
		return err
	}

	tw := newTable()
	for _, r := range results {
		if r.Error != "" || r.Data == nil {
			fmt.Fprintf(tw, "  %s\t%s\n", r.Name, r.Error)
			continue
		}
		rank := "Unranked"
		if best, ok := insights.BestRank(r.Data.Ranks); ok {
			rank = fmt.Sprintf("%s %s %.0f%%", best.Tier, best.Rank, insights.WinRate(best.Wins, best.Losses))
		}
		fmt.Fprintf(tw, "  %s\tlevel %d\t%s\n", r.Name, r.Data.Summoner.SummonerLevel, rank)
	}
	return tw.Flush()
}

func (a *app) leaderboard(ctx context.Context, args []string) error {
	platform, _, err := parse("leaderboard", args, 0)
	if err != nil {
		return err
	}

	entries, err := a.proxy.Leaderboard(ctx, platform)
	if err != nil {
		return err
	}

	tw := newTable()
	for i, e := range entries {
		player := e.GameName
		if e.TagLine != "" {
			player += "#" + e.TagLine
		}
		fmt.Fprintf(tw, "  %d\t%s\t%d LP\t%dW %dL\n", i+1, player, e.LeaguePoints, e.Wins, e.Losses)
	}
	return tw.Flush()
}

func (a *app) status(ctx context.Context, args []string) error {
	platform, _, err := parse("status", args, 0)
	if err != nil {
		return err
	}

	st, err := a.proxy.Status(ctx, platform)
	if err != nil {
		return err
	}

	if st.Status != nil {
		fmt.Printf("%s: %d incidents, %d maintenances\n", st.Status.Name, len(st.Status.Incidents), len(st.Status.Maintenances))
	}

	names := make([]string, 0, len(st.Rotation))
	for _, id := range st.Rotation {
		names = append(names, a.statics.ChampionName(ctx, int64(id)))
	}
	fmt.Printf("Free rotation: %s\n", strings.Join(names, ", "))
	return nil
}

func (a *app) recent(ctx context.Context, args []string) error {
	if _, _, err := parse("recent", args, 0); err != nil {
		return err
	}

	searches, err := a.history.Recent(ctx)
	if err != nil {
		return err
	}
	if len(searches) == 0 {
		fmt.Println("No recent searches")
		return nil
	}

	tw := newTable()
	for _, s := range searches {
		fmt.Fprintf(tw, "  %s#%s\t%s\t%s\n", s.Name, s.Tag, s.Region, s.SearchedAt.Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}

func joinBadges(badges []insights.Badge) string {
	parts := make([]string, len(badges))
	for i, b := range badges {
		parts[i] = string(b)
	}
	return strings.Join(parts, " ")
}
