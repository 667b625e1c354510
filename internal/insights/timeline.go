package insights

import (
	"strconv"

	"rift-scout/internal/riot"
)

const invalidPosition = "Invalid"

type DiffPoint struct {
	Minute   int `json:"minute"`
	GoldDiff int `json:"goldDiff"`
	XPDiff   int `json:"xpDiff"`
}

// LaneOpponent finds the enemy who played the same individual position.
func LaneOpponent(participants []riot.Participant, participantID int) (riot.Participant, bool) {
	var user riot.Participant
	found := false
	for _, p := range participants {
		if p.ParticipantID == participantID {
			user = p
			found = true
			break
		}
	}
	if !found {
		return riot.Participant{}, false
	}

	for _, p := range participants {
		if p.TeamID != user.TeamID &&
			p.IndividualPosition == user.IndividualPosition &&
			p.IndividualPosition != invalidPosition {
			return p, true
		}
	}
	return riot.Participant{}, false
}

// LaneDiff produces one point per frame. Frames missing either side, or a
// match without a lane opponent, produce zero differences.
func LaneDiff(tl *riot.Timeline, participants []riot.Participant, participantID int) []DiffPoint {
	opponent, hasOpponent := LaneOpponent(participants, participantID)

	points := make([]DiffPoint, 0, len(tl.Info.Frames))
	for i, frame := range tl.Info.Frames {
		point := DiffPoint{Minute: i}

		user, okUser := frame.ParticipantFrames[strconv.Itoa(participantID)]
		if hasOpponent && okUser {
			if opp, okOpp := frame.ParticipantFrames[strconv.Itoa(opponent.ParticipantID)]; okOpp {
				point.GoldDiff = user.TotalGold - opp.TotalGold
				point.XPDiff = user.XP - opp.XP
			}
		}

		points = append(points, point)
	}
	return points
}

// DeathPositions lists where participantID died, in event order.
func DeathPositions(tl *riot.Timeline, participantID int) []riot.Position {
	deaths := []riot.Position{}
	for _, frame := range tl.Info.Frames {
		for _, event := range frame.Events {
			if event.Type == "CHAMPION_KILL" && event.VictimID == participantID && event.Position != nil {
				deaths = append(deaths, *event.Position)
			}
		}
	}
	return deaths
}
