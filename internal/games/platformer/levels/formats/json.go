package formats

import (
	"encoding/json"
	"fmt"
)

// ParseJSON parses the classic pack format: a top-level array of levels,
// each an array of row strings. The file carries no id or names.
func ParseJSON(data []byte) (Pack, error) {
	var plans [][]string
	if err := json.Unmarshal(data, &plans); err != nil {
		return Pack{}, fmt.Errorf("json unmarshal: %w", err)
	}

	pack := Pack{Levels: make([]Level, 0, len(plans))}
	for i, rows := range plans {
		pack.Levels = append(pack.Levels, Level{
			Name: fmt.Sprintf("Level %d", i+1),
			Rows: rows,
		})
	}

	if err := checkLevels(pack.Levels); err != nil {
		return Pack{}, err
	}
	return pack, nil
}
