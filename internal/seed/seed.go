// Package seed loads the demo element fixture used to populate an empty registry.
package seed

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"sigma/internal/models"

	"gopkg.in/yaml.v3"
)

var ErrUnknownInstallationType = errors.New("unknown installation type")

type Fixture struct {
	Elements []ElementSeed `yaml:"elements"`
}

type ElementSeed struct {
	ID               string         `yaml:"id"`
	StationID        string         `yaml:"station"`
	InstallationType string         `yaml:"type"`
	Name             string         `yaml:"name"`
	Completed        bool           `yaml:"completed"`
	Data             map[string]any `yaml:"data"`
}

// Load reads a fixture file. An empty path yields no elements.
func Load(path string) ([]models.Element, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) ([]models.Element, error) {
	var fx Fixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	out := make([]models.Element, 0, len(fx.Elements))
	for i, s := range fx.Elements {
		typ := models.InstallationType(strings.ToUpper(strings.TrimSpace(s.InstallationType)))
		if !typ.Valid() {
			return nil, fmt.Errorf("seed element %d (%s): %w %q", i, s.ID, ErrUnknownInstallationType, s.InstallationType)
		}
		payload := models.Payload(s.Data)
		if payload == nil {
			payload = models.Payload{}
		}
		out = append(out, models.Element{
			ID:               s.ID,
			StationID:        s.StationID,
			InstallationType: typ,
			Name:             s.Name,
			IsCompleted:      s.Completed,
			Data:             payload,
		})
	}
	return out, nil
}
