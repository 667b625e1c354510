package constants

import "time"

const (
	DefaultPlatform    = "na1"
	DefaultContinental = "americas"
)

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	MatchCount          = 5
	TopMasteryCount     = 3
	LeaderboardSize     = 10
	RecentSearchesLimit = 5
)

const (
	DBMaxOpenConns    = 1
	DBMaxIdleConns    = 1
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	SoloQueue  = "RANKED_SOLO_5x5"
	FlexQueue  = "RANKED_FLEX_SR"
	ArenaQueue = "CHERRY"
)
