package model

import "testing"

func TestParsePosition(t *testing.T) {
	tests := []struct {
		input    string
		expected Position
	}{
		{input: "QB", expected: POS_QB},
		{input: "qb", expected: POS_QB},
		{input: "RB", expected: POS_RB},
		{input: "WR", expected: POS_WR},
		{input: "TE", expected: POS_TE},
		{input: "K", expected: POS_K},
		{input: "DST", expected: POS_DST},
		{input: "D/ST", expected: POS_DST},
		{input: "FLEX", expected: POS_UNKNOWN},
		{input: "", expected: POS_UNKNOWN},
	}

	for _, tc := range tests {
		a := ParsePosition(tc.input)
		if a != tc.expected {
			t.Errorf("input: '%s', expected: '%s', got '%s'", tc.input, tc.expected, a)
		}
	}
}

func TestPositionFromSlots(t *testing.T) {
	tests := []struct {
		name     string
		slots    []int
		expected Position
	}{
		{name: "qb", slots: []int{0, 7, 20}, expected: POS_QB},
		{name: "rb with flex", slots: []int{2, 3, 23, 20}, expected: POS_RB},
		{name: "wr", slots: []int{4, 5, 23}, expected: POS_WR},
		{name: "te", slots: []int{6, 23, 20}, expected: POS_TE},
		{name: "kicker", slots: []int{17, 20}, expected: POS_K},
		{name: "defense", slots: []int{16, 20}, expected: POS_DST},
		{name: "first match wins", slots: []int{4, 2}, expected: POS_WR},
		{name: "no primary slot", slots: []int{99}, expected: POS_UNKNOWN},
		{name: "empty", slots: nil, expected: POS_UNKNOWN},
	}

	for _, tc := range tests {
		a := PositionFromSlots(tc.slots)
		if a != tc.expected {
			t.Errorf("%s: expected '%s', got '%s'", tc.name, tc.expected, a)
		}
	}
}
