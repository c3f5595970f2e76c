package roster

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mergington/activities/internal/model"
)

//go:embed seed.yaml
var defaultSeed []byte

// DefaultSeed returns the built-in roster the service starts with.
func DefaultSeed() model.Roster {
	seed, err := parseSeed(defaultSeed)
	if err != nil {
		// The embedded seed is fixed at build time; a parse failure here is
		// a programming error, not a runtime condition.
		panic(fmt.Sprintf("embedded seed: %v", err))
	}
	return seed
}

// LoadSeedFile reads a YAML roster from path.
func LoadSeedFile(path string) (model.Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	seed, err := parseSeed(data)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return seed, nil
}

func parseSeed(data []byte) (model.Roster, error) {
	var seed model.Roster
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	for name, activity := range seed {
		if activity == nil {
			return nil, fmt.Errorf("activity %q has no fields", name)
		}
		if activity.MaxParticipants <= 0 {
			return nil, fmt.Errorf("activity %q: max_participants must be positive", name)
		}
		if activity.Participants == nil {
			activity.Participants = []string{}
		}
	}
	return seed, nil
}
