package sleeper

// playerResponse is one value of the keyed /players/{sport} payload.
type playerResponse struct {
	PlayerID  string  `json:"player_id"`
	FullName  string  `json:"full_name"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Team      *string `json:"team"`
	Position  *string `json:"position"`
}

type trendingResponse struct {
	PlayerID string `json:"player_id"`
	Count    int    `json:"count"`
}

type leagueResponse struct {
	LeagueID     string `json:"league_id"`
	Name         string `json:"name"`
	Season       string `json:"season"`
	Sport        string `json:"sport"`
	Status       string `json:"status"`
	TotalRosters int    `json:"total_rosters"`
}

type rosterResponse struct {
	RosterID int            `json:"roster_id"`
	OwnerID  *string        `json:"owner_id"`
	LeagueID string         `json:"league_id"`
	Players  []string       `json:"players"`
	Starters []string       `json:"starters"`
	Settings rosterSettings `json:"settings"`
}

type rosterSettings struct {
	Wins        int `json:"wins"`
	Losses      int `json:"losses"`
	Ties        int `json:"ties"`
	Fpts        int `json:"fpts"`
	FptsDecimal int `json:"fpts_decimal"`
}
