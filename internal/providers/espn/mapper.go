package espn

import "github.com/preston-bernstein/injury-report-service/internal/domain/injuries"

// mapRosters flattens every team roster into injury records. The player-level
// status wins; the roster-entry status fills in when the player has none.
func mapRosters(league leagueResponse) []injuries.Record {
	records := make([]injuries.Record, 0)
	for _, team := range league.Teams {
		for _, entry := range team.Roster.Entries {
			player := entry.PlayerPoolEntry.Player
			if player.FullName == "" {
				continue
			}
			status := player.InjuryStatus
			if status == "" {
				status = entry.InjuryStatus
			}
			records = append(records, injuries.Record{
				PlayerName: player.FullName,
				RawStatus:  status,
			})
		}
	}
	return records
}
