package leagues

// League is the metadata for a fantasy league.
type League struct {
	ID           string `json:"id" yaml:"id" validate:"nonblank"`
	Name         string `json:"name" yaml:"name"`
	Season       string `json:"season" yaml:"season"`
	Sport        string `json:"sport" yaml:"sport"`
	Status       string `json:"status" yaml:"status"`
	TotalRosters int    `json:"totalRosters" yaml:"totalRosters"`
}

// Roster is one team's roster within a league.
type Roster struct {
	RosterID  int      `json:"rosterId" yaml:"rosterId" validate:"gt=0"`
	OwnerID   string   `json:"ownerId" yaml:"ownerId"`
	LeagueID  string   `json:"leagueId" yaml:"leagueId"`
	Players   []string `json:"players" yaml:"players"`
	Starters  []string `json:"starters" yaml:"starters"`
	Wins      int      `json:"wins" yaml:"wins"`
	Losses    int      `json:"losses" yaml:"losses"`
	Ties      int      `json:"ties" yaml:"ties"`
	PointsFor float64  `json:"pointsFor" yaml:"pointsFor"`
}

// Snapshot is the combined league view published for one league ID.
type Snapshot struct {
	League  League   `json:"league" yaml:"league"`
	Rosters []Roster `json:"rosters" yaml:"rosters"`
}
