package riot

import "encoding/json"

type Account struct {
	Puuid    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// Summoner is shared by the LoL and TFT summoner endpoints. ID is absent for
// accounts the platform no longer exposes an encrypted summoner id for.
type Summoner struct {
	ID            string `json:"id,omitempty"`
	AccountID     string `json:"accountId,omitempty"`
	Puuid         string `json:"puuid"`
	ProfileIconID int    `json:"profileIconId"`
	RevisionDate  int64  `json:"revisionDate"`
	SummonerLevel int64  `json:"summonerLevel"`
}

type ClashPlayer struct {
	SummonerID string `json:"summonerId,omitempty"`
	Puuid      string `json:"puuid,omitempty"`
	TeamID     string `json:"teamId,omitempty"`
	Position   string `json:"position"`
	Role       string `json:"role"`
}

type LeagueEntry struct {
	LeagueID     string `json:"leagueId,omitempty"`
	SummonerID   string `json:"summonerId,omitempty"`
	Puuid        string `json:"puuid,omitempty"`
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	HotStreak    bool   `json:"hotStreak"`
	Veteran      bool   `json:"veteran"`
	FreshBlood   bool   `json:"freshBlood"`
	Inactive     bool   `json:"inactive"`
}

type ChampionMastery struct {
	Puuid                        string `json:"puuid"`
	ChampionID                   int64  `json:"championId"`
	ChampionLevel                int    `json:"championLevel"`
	ChampionPoints               int    `json:"championPoints"`
	LastPlayTime                 int64  `json:"lastPlayTime"`
	ChampionPointsSinceLastLevel int64  `json:"championPointsSinceLastLevel"`
	ChampionPointsUntilNextLevel int64  `json:"championPointsUntilNextLevel"`
	TokensEarned                 int    `json:"tokensEarned"`
}

type Match struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`

	raw json.RawMessage
}

type MatchMetadata struct {
	DataVersion  string   `json:"dataVersion"`
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

type MatchInfo struct {
	EndOfGameResult  string        `json:"endOfGameResult,omitempty"`
	GameCreation     int64         `json:"gameCreation"`
	GameDuration     int64         `json:"gameDuration"`
	GameEndTimestamp int64         `json:"gameEndTimestamp"`
	GameID           int64         `json:"gameId"`
	GameMode         string        `json:"gameMode"`
	GameStartTime    int64         `json:"gameStartTimestamp"`
	GameType         string        `json:"gameType"`
	GameVersion      string        `json:"gameVersion"`
	MapID            int           `json:"mapId"`
	PlatformID       string        `json:"platformId"`
	QueueID          int           `json:"queueId"`
	Participants     []Participant `json:"participants"`
	Teams            []Team        `json:"teams"`
}

type Participant struct {
	Puuid                       string `json:"puuid"`
	ParticipantID               int    `json:"participantId"`
	TeamID                      int    `json:"teamId"`
	RiotIDGameName              string `json:"riotIdGameName"`
	RiotIDTagline               string `json:"riotIdTagline"`
	ChampionID                  int    `json:"championId"`
	ChampionName                string `json:"championName"`
	ChampLevel                  int    `json:"champLevel"`
	IndividualPosition          string `json:"individualPosition"`
	TeamPosition                string `json:"teamPosition"`
	Kills                       int    `json:"kills"`
	Deaths                      int    `json:"deaths"`
	Assists                     int    `json:"assists"`
	TotalMinionsKilled          int    `json:"totalMinionsKilled"`
	NeutralMinionsKilled        int    `json:"neutralMinionsKilled"`
	VisionScore                 int    `json:"visionScore"`
	TotalDamageDealtToChampions int    `json:"totalDamageDealtToChampions"`
	DamageDealtToTurrets        int    `json:"damageDealtToTurrets"`
	GoldEarned                  int    `json:"goldEarned"`
	TimePlayed                  int    `json:"timePlayed"`
	Win                         bool   `json:"win"`
	Item0                       int    `json:"item0"`
	Item1                       int    `json:"item1"`
	Item2                       int    `json:"item2"`
	Item3                       int    `json:"item3"`
	Item4                       int    `json:"item4"`
	Item5                       int    `json:"item5"`
	Item6                       int    `json:"item6"`
	Summoner1ID                 int    `json:"summoner1Id"`
	Summoner2ID                 int    `json:"summoner2Id"`
	Perks                       Perks  `json:"perks"`
}

type Perks struct {
	StatPerks map[string]int `json:"statPerks,omitempty"`
	Styles    []PerkStyle    `json:"styles"`
}

type PerkStyle struct {
	Description string          `json:"description"`
	Style       int             `json:"style"`
	Selections  []PerkSelection `json:"selections"`
}

type PerkSelection struct {
	Perk int `json:"perk"`
	Var1 int `json:"var1"`
	Var2 int `json:"var2"`
	Var3 int `json:"var3"`
}

type Team struct {
	TeamID int   `json:"teamId"`
	Win    bool  `json:"win"`
	Bans   []Ban `json:"bans"`
}

type Ban struct {
	ChampionID int `json:"championId"`
	PickTurn   int `json:"pickTurn"`
}

type Timeline struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     TimelineInfo  `json:"info"`

	raw json.RawMessage
}

type TimelineInfo struct {
	EndOfGameResult string                `json:"endOfGameResult,omitempty"`
	FrameInterval   int64                 `json:"frameInterval"`
	GameID          int64                 `json:"gameId"`
	Frames          []Frame               `json:"frames"`
	Participants    []TimelineParticipant `json:"participants"`
}

type TimelineParticipant struct {
	ParticipantID int    `json:"participantId"`
	Puuid         string `json:"puuid"`
}

// Frame keys participant frames by the participant id rendered as a string ("1".."10").
type Frame struct {
	Timestamp         int64                       `json:"timestamp"`
	Events            []Event                     `json:"events"`
	ParticipantFrames map[string]ParticipantFrame `json:"participantFrames"`
}

type ParticipantFrame struct {
	ParticipantID       int       `json:"participantId"`
	CurrentGold         int       `json:"currentGold"`
	TotalGold           int       `json:"totalGold"`
	XP                  int       `json:"xp"`
	Level               int       `json:"level"`
	MinionsKilled       int       `json:"minionsKilled"`
	JungleMinionsKilled int       `json:"jungleMinionsKilled"`
	Position            *Position `json:"position,omitempty"`
}

type Event struct {
	Type                    string    `json:"type"`
	Timestamp               int64     `json:"timestamp"`
	RealTimestamp           int64     `json:"realTimestamp,omitempty"`
	KillerID                int       `json:"killerId,omitempty"`
	VictimID                int       `json:"victimId,omitempty"`
	AssistingParticipantIDs []int     `json:"assistingParticipantIds,omitempty"`
	ParticipantID           int       `json:"participantId,omitempty"`
	TeamID                  int       `json:"teamId,omitempty"`
	ItemID                  int       `json:"itemId,omitempty"`
	BuildingType            string    `json:"buildingType,omitempty"`
	LaneType                string    `json:"laneType,omitempty"`
	TowerType               string    `json:"towerType,omitempty"`
	WardType                string    `json:"wardType,omitempty"`
	MonsterType             string    `json:"monsterType,omitempty"`
	Bounty                  int       `json:"bounty,omitempty"`
	Position                *Position `json:"position,omitempty"`
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type ActiveGame struct {
	GameID            int64               `json:"gameId"`
	GameType          string              `json:"gameType"`
	GameStartTime     int64               `json:"gameStartTime"`
	MapID             int                 `json:"mapId"`
	GameLength        int64               `json:"gameLength"`
	PlatformID        string              `json:"platformId"`
	GameMode          string              `json:"gameMode"`
	GameQueueConfigID int                 `json:"gameQueueConfigId"`
	BannedChampions   []BannedChampion    `json:"bannedChampions"`
	Observers         Observer            `json:"observers"`
	Participants      []ActiveParticipant `json:"participants"`

	raw json.RawMessage
}

type BannedChampion struct {
	ChampionID int64 `json:"championId"`
	TeamID     int   `json:"teamId"`
	PickTurn   int   `json:"pickTurn"`
}

type Observer struct {
	EncryptionKey string `json:"encryptionKey"`
}

type ActiveParticipant struct {
	ChampionID    int64     `json:"championId"`
	Perks         LivePerks `json:"perks"`
	ProfileIconID int       `json:"profileIconId"`
	Bot           bool      `json:"bot"`
	TeamID        int       `json:"teamId"`
	SummonerID    string    `json:"summonerId,omitempty"`
	Puuid         string    `json:"puuid"`
	RiotID        string    `json:"riotId,omitempty"`
	Spell1ID      int       `json:"spell1Id"`
	Spell2ID      int       `json:"spell2Id"`

	raw json.RawMessage
}

type LivePerks struct {
	PerkIDs      []int64 `json:"perkIds"`
	PerkStyle    int64   `json:"perkStyle"`
	PerkSubStyle int64   `json:"perkSubStyle"`
}

type PlatformStatus struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Locales      []string `json:"locales"`
	Maintenances []Status `json:"maintenances"`
	Incidents    []Status `json:"incidents"`
}

type Status struct {
	ID                int       `json:"id"`
	MaintenanceStatus string    `json:"maintenance_status,omitempty"`
	IncidentSeverity  string    `json:"incident_severity,omitempty"`
	Titles            []Content `json:"titles"`
	Updates           []Update  `json:"updates"`
	CreatedAt         string    `json:"created_at"`
	ArchiveAt         string    `json:"archive_at,omitempty"`
	UpdatedAt         string    `json:"updated_at,omitempty"`
	Platforms         []string  `json:"platforms"`
}

type Content struct {
	Locale  string `json:"locale"`
	Content string `json:"content"`
}

type Update struct {
	ID               int       `json:"id"`
	Author           string    `json:"author"`
	Publish          bool      `json:"publish"`
	PublishLocations []string  `json:"publish_locations"`
	Translations     []Content `json:"translations"`
	CreatedAt        string    `json:"created_at"`
	UpdatedAt        string    `json:"updated_at"`
}

type ChampionRotation struct {
	FreeChampionIDs              []int `json:"freeChampionIds"`
	FreeChampionIDsForNewPlayers []int `json:"freeChampionIdsForNewPlayers"`
	MaxNewPlayerLevel            int   `json:"maxNewPlayerLevel"`
}

type LeagueList struct {
	LeagueID string       `json:"leagueId"`
	Tier     string       `json:"tier"`
	Name     string       `json:"name"`
	Queue    string       `json:"queue"`
	Entries  []LeagueItem `json:"entries"`
}

type LeagueItem struct {
	SummonerID   string `json:"summonerId,omitempty"`
	Puuid        string `json:"puuid,omitempty"`
	LeaguePoints int    `json:"leaguePoints"`
	Rank         string `json:"rank"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	Veteran      bool   `json:"veteran"`
	Inactive     bool   `json:"inactive"`
	FreshBlood   bool   `json:"freshBlood"`
	HotStreak    bool   `json:"hotStreak"`
}
