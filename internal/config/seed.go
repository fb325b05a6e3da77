package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

type SeedSlot struct {
	Start string `toml:"start"`
	End   string `toml:"end"`
}

type SeedDay struct {
	DayOfWeek    int        `toml:"day_of_week"`
	Available    bool       `toml:"available"`
	WorkingHours []SeedSlot `toml:"working_hours"`
}

type SeedTrainer struct {
	ID    uint      `toml:"id"`
	Name  string    `toml:"name"`
	Email string    `toml:"email"`
	Days  []SeedDay `toml:"days"`
}

type seedFile struct {
	Trainers []SeedTrainer `toml:"trainers"`
}

// LoadSeed reads a TOML file of [[trainers]] tables.
func LoadSeed(path string) ([]SeedTrainer, error) {
	var f seedFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("load seed file %s: %w", path, err)
	}
	for _, t := range f.Trainers {
		if t.ID == 0 {
			return nil, fmt.Errorf("seed file %s: trainer %q has no id", path, t.Name)
		}
	}
	return f.Trainers, nil
}
