package game

import (
	"io"
	"io/ioutil"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type GameConfig struct {
	Seed   int64
	Budget time.Duration

	Generator GeneratorConfig

	// Snapshot to take the mine layout from, instead of generating one
	Snapshot *BoardSnapshot
	// Whether to set all cells as closed when loading the Snapshot
	LoadSnapshotFresh bool

	// Plays the game through Game.Step, if set
	Director Director

	Clock Clock
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Budget:            DefaultBudget,
		Generator:         NewGeneratorConfig(),
		Snapshot:          nil,
		LoadSnapshotFresh: true,
		Director:          nil,
		Clock:             WallClock{},
	}
}

// configFile mirrors the YAML config file. Absent keys leave the config as is.
type configFile struct {
	Seed          *int64  `yaml:"seed"`
	BudgetSeconds *int    `yaml:"budget_seconds"`
	MineChance    *int    `yaml:"mine_chance"`
	Policy        *string `yaml:"policy"`
	MinMines      *int    `yaml:"min_mines"`
	MaxMines      *int    `yaml:"max_mines"`
	MaxAttempts   *int    `yaml:"max_attempts"`
}

// LoadGameConfig overlays the YAML document in `in` onto config
func LoadGameConfig(in io.Reader, config *GameConfig) error {
	data, err := ioutil.ReadAll(in)
	if err != nil {
		return errors.Wrap(err, "reading config")
	}

	var file configFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return errors.Wrap(err, "parsing config")
	}

	if file.Seed != nil {
		config.Seed = *file.Seed
	}
	if file.BudgetSeconds != nil {
		if *file.BudgetSeconds <= 0 {
			return errors.Errorf("budget_seconds must be positive, got %d", *file.BudgetSeconds)
		}
		config.Budget = time.Duration(*file.BudgetSeconds) * time.Second
	}
	if file.MineChance != nil {
		if *file.MineChance < 1 {
			return errors.Errorf("mine_chance must be at least 1, got %d", *file.MineChance)
		}
		config.Generator.MineChance = *file.MineChance
	}
	if file.Policy != nil {
		policy, ok := GenerationPolicies[*file.Policy]
		if !ok {
			return errors.Errorf("unknown policy %q", *file.Policy)
		}
		config.Generator.Policy = policy
	}
	if file.MinMines != nil {
		config.Generator.MinMines = *file.MinMines
	}
	if file.MaxMines != nil {
		config.Generator.MaxMines = *file.MaxMines
	}
	if file.MaxAttempts != nil {
		config.Generator.MaxAttempts = *file.MaxAttempts
	}

	return nil
}
