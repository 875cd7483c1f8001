package apisports

import "encoding/json"

type injuriesResponse struct {
	Get      string           `json:"get"`
	Errors   json.RawMessage  `json:"errors"`
	Results  int              `json:"results"`
	Response []injuryResponse `json:"response"`
}

type injuryResponse struct {
	Player      playerResponse `json:"player"`
	Team        teamResponse   `json:"team"`
	Date        string         `json:"date"`
	Status      string         `json:"status"`
	Description string         `json:"description"`
}

type playerResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type teamResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
