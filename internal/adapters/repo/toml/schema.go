package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int           `toml:"version"`
	Scoring scoringSchema `toml:"scoring"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported scoring schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

// Pointer fields distinguish "not set" from false and zero so partially
// written profiles fall back to the defaults.
type scoringSchema struct {
	WinnerSeat  string `toml:"winner_seat,omitempty"`
	CurrentWind string `toml:"current_wind,omitempty"`
	WinningTile string `toml:"winning_tile,omitempty"`
	SelfDrawn   *bool  `toml:"self_drawn,omitempty"`
	DoorClear   *bool  `toml:"door_clear,omitempty"`
	BaseValue   *int   `toml:"base_value,omitempty"`
	Multiplier  *int   `toml:"multiplier,omitempty"`
	UpdatedAt   string `toml:"updated_at,omitempty"`
}
