package espn

type leagueResponse struct {
	ID       int            `json:"id"`
	SeasonID int            `json:"seasonId"`
	Teams    []teamResponse `json:"teams"`
}

type teamResponse struct {
	ID     int            `json:"id"`
	Roster rosterResponse `json:"roster"`
}

type rosterResponse struct {
	Entries []rosterEntry `json:"entries"`
}

type rosterEntry struct {
	InjuryStatus    string          `json:"injuryStatus"`
	PlayerPoolEntry playerPoolEntry `json:"playerPoolEntry"`
}

type playerPoolEntry struct {
	ID     int            `json:"id"`
	Player playerResponse `json:"player"`
}

type playerResponse struct {
	ID           int    `json:"id"`
	FullName     string `json:"fullName"`
	InjuryStatus string `json:"injuryStatus"`
	Injured      bool   `json:"injured"`
}
