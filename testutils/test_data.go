package testutils

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// TeamsJSON is a minimal teams/schedule file: two NFL teams sharing
// one game, which therefore appears under both teams' payloads.
const TeamsJSON = `{
  "proTeams": [
    {
      "id": 1,
      "name": "Bears",
      "location": "Chicago",
      "abbrev": "CHI",
      "byeWeek": 10,
      "proGamesByScoringPeriod": {
        "1": [
          {"id": 101, "homeProTeamId": 1, "awayProTeamId": 2, "date": 1441580400000,
           "scoringPeriodId": 1, "startTimeTBD": false, "statsOfficial": true, "validForLocking": true}
        ]
      }
    },
    {
      "id": 2,
      "name": "Packers",
      "location": "Green Bay",
      "abbrev": "GB",
      "byeWeek": 7,
      "proGamesByScoringPeriod": {
        "1": [
          {"id": 101, "homeProTeamId": 1, "awayProTeamId": 2, "date": 1441580400000,
           "scoringPeriodId": 1, "startTimeTBD": false, "statsOfficial": true, "validForLocking": true}
        ]
      }
    }
  ]
}`

// WriteTeamsFile drops TeamsJSON into dir and returns its path.
func WriteTeamsFile(t testing.TB, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "teams.json")
	if err := os.WriteFile(path, []byte(TeamsJSON), 0o644); err != nil {
		t.Fatalf("error writing teams file: %v", err)
	}
	return path
}

// WriteProjectionFile writes a projection ranking document named
// {season}_{position}.json into dir.
func WriteProjectionFile(t testing.TB, dir string, season int, position, content string) string {
	t.Helper()

	path := filepath.Join(dir, fmt.Sprintf("%d_%s.json", season, position))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("error writing projection file: %v", err)
	}
	return path
}
