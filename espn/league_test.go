package espn

import (
	"testing"

	"github.com/chasen-bettinger/fantasy-analysis/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerToModel(t *testing.T) {
	teamID := int64(3)

	tests := []struct {
		name       string
		player     Player
		wantOK     bool
		wantName   string
		wantPos    model.Position
		wantStatus string
		wantActive bool
	}{
		{
			name: "healthy quarterback",
			player: Player{
				ID:            101,
				FullName:      "Alan Marsh",
				EligibleSlots: []int{0, 20},
				ProTeamID:     &teamID,
			},
			wantOK:     true,
			wantName:   "Alan Marsh",
			wantPos:    model.POS_QB,
			wantStatus: "ACTIVE",
			wantActive: true,
		},
		{
			name: "injured wide receiver",
			player: Player{
				ID:            103,
				FullName:      "Cody Vance",
				EligibleSlots: []int{4, 20},
				InjuryStatus:  "QUESTIONABLE",
			},
			wantOK:     true,
			wantName:   "Cody Vance",
			wantPos:    model.POS_WR,
			wantStatus: "QUESTIONABLE",
			wantActive: false,
		},
		{
			name: "missing name gets a fallback",
			player: Player{
				ID:            105,
				EligibleSlots: []int{17, 20},
			},
			wantOK:     true,
			wantName:   "Player 105",
			wantPos:    model.POS_K,
			wantStatus: "ACTIVE",
			wantActive: true,
		},
		{
			name: "no recognized position is dropped",
			player: Player{
				ID:            106,
				FullName:      "Edge Rusher",
				EligibleSlots: []int{99},
			},
			wantOK: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.player.ToModel(2015)
			require.Equal(t, tc.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, 2015, got.Season)
			assert.Equal(t, tc.player.ID, got.ESPNPlayerID)
			assert.Equal(t, tc.wantName, got.Name)
			assert.Equal(t, tc.wantPos, got.Position)
			assert.Equal(t, tc.wantStatus, got.EligibilityStatus)
			assert.Equal(t, tc.wantActive, got.Active)
		})
	}
}

func TestPlayerToModelProTeam(t *testing.T) {
	teamID := int64(9)
	p := Player{ID: 101, FullName: "Alan Marsh", EligibleSlots: []int{0}, ProTeamID: &teamID}

	got, ok := p.ToModel(2015)
	require.True(t, ok)
	require.True(t, got.NFLTeamID.Valid)
	assert.Equal(t, int64(9), got.NFLTeamID.Int64)

	p.ProTeamID = nil
	got, ok = p.ToModel(2015)
	require.True(t, ok)
	assert.False(t, got.NFLTeamID.Valid)
}

func TestSeasonTotal(t *testing.T) {
	p := PoolPlayer{
		FullName: "Alan Marsh",
		Stats: []Stat{
			{ID: "002014", AppliedTotal: 120.5},
			{ID: "002015", AppliedTotal: 300},
			{ID: "102015", AppliedTotal: 275},
		},
	}

	total, ok := p.SeasonTotal(2015)
	require.True(t, ok)
	assert.Equal(t, 300.0, total)

	_, ok = p.SeasonTotal(2016)
	assert.False(t, ok)
}

func TestTeamToModel(t *testing.T) {
	team := Team{
		ID:                  1,
		Name:                "Gridiron Geeks",
		RankCalculatedFinal: 1,
		Record: Record{Overall: OverallRecord{
			Wins: 10, Losses: 3, Ties: 0, PointsFor: 1502.5, PointsAgainst: 1300.2,
		}},
	}

	got := team.ToModel(2015)
	assert.Equal(t, 2015, got.Season)
	assert.Equal(t, int64(1), got.ESPNTeamID)
	assert.Equal(t, "Gridiron Geeks", got.Name)
	assert.Equal(t, 10, got.Wins)
	assert.Equal(t, 1502.5, got.PointsFor)
	require.True(t, got.FinalPosition.Valid)
	assert.Equal(t, int64(1), got.FinalPosition.Int64)

	// A zero rank means the season has no final standing yet.
	team.RankCalculatedFinal = 0
	got = team.ToModel(2015)
	assert.False(t, got.FinalPosition.Valid)
}
