// Package insights derives presentation statistics from a single match or
// timeline. Every function is pure.
package insights

import (
	"math"

	"rift-scout/internal/riot"
)

type Badge string

const (
	BadgeMVP       Badge = "MVP"
	BadgeACE       Badge = "ACE"
	BadgeStomper   Badge = "STOMPER"
	BadgeCarry     Badge = "CARRY"
	BadgeVisionary Badge = "VISIONARY"
	BadgeImmortal  Badge = "IMMORTAL"
	BadgeBreach    Badge = "BREACH"
)

const (
	stomperMaxMinutes  = 20.0
	carryDamageShare   = 0.30
	visionPerMinute    = 1.5
	immortalMaxDeaths  = 1
	immortalMinMinutes = 15.0
	breachTurretDamage = 5000
)

// PerformanceScore weighs kills, assists, deaths, vision and farm into one number.
func PerformanceScore(p riot.Participant) float64 {
	return float64(p.Kills*3) +
		float64(p.Assists*2) -
		float64(p.Deaths*2) +
		float64(p.VisionScore) +
		float64(p.TotalMinionsKilled)/10
}

// Standouts returns the puuid of the overall best performer and of the best
// performer on the losing side. Ties keep the earlier participant.
func Standouts(participants []riot.Participant) (mvp, ace string) {
	mvpScore := math.Inf(-1)
	aceScore := math.Inf(-1)

	for _, p := range participants {
		score := PerformanceScore(p)
		if score > mvpScore {
			mvpScore = score
			mvp = p.Puuid
		}
		if !p.Win && score > aceScore {
			aceScore = score
			ace = p.Puuid
		}
	}
	return mvp, ace
}

func Minutes(m *riot.Match) float64 {
	return float64(m.Info.GameDuration) / 60
}

// Badges evaluates every badge predicate for puuid in m. A player absent from
// the match gets nil.
func Badges(m *riot.Match, puuid string) []Badge {
	user, ok := FindParticipant(m, puuid)
	if !ok {
		return nil
	}

	minutes := Minutes(m)
	badges := []Badge{}

	mvp, ace := Standouts(m.Info.Participants)
	if user.Puuid == mvp {
		badges = append(badges, BadgeMVP)
	} else if user.Puuid == ace {
		badges = append(badges, BadgeACE)
	}

	if user.Win && minutes < stomperMaxMinutes {
		badges = append(badges, BadgeStomper)
	}
	if DamageShare(m, user) > carryDamageShare {
		badges = append(badges, BadgeCarry)
	}
	if float64(user.VisionScore) > visionPerMinute*minutes {
		badges = append(badges, BadgeVisionary)
	}
	if user.Deaths <= immortalMaxDeaths && minutes > immortalMinMinutes {
		badges = append(badges, BadgeImmortal)
	}
	if user.DamageDealtToTurrets > breachTurretDamage {
		badges = append(badges, BadgeBreach)
	}

	return badges
}

// DamageShare is the fraction of the team's champion damage dealt by p.
func DamageShare(m *riot.Match, p riot.Participant) float64 {
	team := 0
	for _, other := range m.Info.Participants {
		if other.TeamID == p.TeamID {
			team += other.TotalDamageDealtToChampions
		}
	}
	if team == 0 {
		return 0
	}
	return float64(p.TotalDamageDealtToChampions) / float64(team)
}

func FindParticipant(m *riot.Match, puuid string) (riot.Participant, bool) {
	for _, p := range m.Info.Participants {
		if p.Puuid == puuid {
			return p, true
		}
	}
	return riot.Participant{}, false
}

func CSPerMinute(m *riot.Match, p riot.Participant) float64 {
	minutes := Minutes(m)
	if minutes == 0 {
		return 0
	}
	return float64(p.TotalMinionsKilled) / minutes
}
