package insights

// matchupTips is keyed by "MINE|ENEMY" champion names.
var matchupTips = map[string]string{
	"Ahri|Zed":          "Rush Seeker's Armguard. Save Charm for when he ults, he always lands behind you.",
	"Ahri|Yasuo":        "Auto-attack him to break his passive shield before using spells. Do not Charm into Windwall.",
	"Zed|Sylas":         "Buy Executioner's Calling early. His W heal is massive.",
	"Sylas|TwistedFate": "Hard engage at level 3. TF is weak early. Take Cleanse for his Gold Card.",
	"Darius|Garen":      "Short trades only. Do not let Garen passive heal back up. Kite his E spin.",
	"Riven|Fiora":       "Skill matchup. Do not use your third Q while her Riposte is up.",
	"Nasus|Teemo":       "Survive until level 6. Buy Mercury's Treads. E max can push him out.",
	"Vayne|Caitlyn":     "You lose lane hard. Give up CS to stay healthy. All-in at level 6.",
	"Ezreal|Draven":     "Do not trade autos. Poke with Q. If he drops an axe, punish him.",
	"Generic|Assassin":  "Enemy is an Assassin. Buy Stopwatch or Zhonya's and stay with your team.",
	"Generic|Healer":    "Enemy has high sustain. Buy Grievous Wounds early.",
}

// Tip returns the matchup advice for mine against enemy, or "" if none is known.
func Tip(mine, enemy string) string {
	return matchupTips[mine+"|"+enemy]
}
