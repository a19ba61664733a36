package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ProjectionRank is one entry of a pre-computed positional ranking
// document. The documents are named {season}_{position}.json and hold
// a "rankings" array of {name, <pos>_rank, overall_rank} objects.
type ProjectionRank struct {
	Name         string
	PositionRank int
	OverallRank  int
}

type projectionDoc struct {
	Rankings []map[string]json.RawMessage `json:"rankings"`
}

// LoadProjections reads the ranking document for one season and
// position and returns its entries keyed by exact display name.
// A missing file is not an error for callers doing a best-effort
// join; they should treat os.IsNotExist specially.
func LoadProjections(dir string, season int, pos Position) (map[string]ProjectionRank, error) {
	name := fmt.Sprintf("%d_%s.json", season, strings.ToLower(string(pos)))
	b, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return nil, err
	}

	var doc projectionDoc
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("error parsing projection file %s: %w", name, err)
	}

	posKey := fmt.Sprintf("%s_rank", strings.ToLower(string(pos)))
	result := make(map[string]ProjectionRank, len(doc.Rankings))
	for _, entry := range doc.Rankings {
		r := ProjectionRank{}
		if raw, ok := entry["name"]; ok {
			if err := json.Unmarshal(raw, &r.Name); err != nil {
				continue
			}
		}
		if r.Name == "" {
			continue
		}
		if raw, ok := entry[posKey]; ok {
			json.Unmarshal(raw, &r.PositionRank)
		}
		if raw, ok := entry["overall_rank"]; ok {
			json.Unmarshal(raw, &r.OverallRank)
		}
		result[r.Name] = r
	}
	return result, nil
}
