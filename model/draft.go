package model

import "time"

// DraftPick is one selection event. PlayerID and FantasyTeamID are
// internal surrogate ids, translated from ESPN ids before insert.
type DraftPick struct {
	ID                int64
	Season            int
	ESPNPickID        int64
	PlayerID          int64
	FantasyTeamID     int64
	RoundID           int
	RoundPickNumber   int
	OverallPickNumber int
	LineupSlotID      int
	Keeper            bool
	AutoDraftTypeID   int
	Created           time.Time
}

// RosterEntry assigns a player to a fantasy team's lineup slot for a
// season. The lineup slot distinguishes starters from bench.
type RosterEntry struct {
	ID            int64
	Season        int
	FantasyTeamID int64
	PlayerID      int64
	LineupSlotID  int
}
