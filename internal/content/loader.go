package content

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/misterlister/Creature-Summoner-sub000/pkg/logger"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// loadYAML decodes one file strictly: unknown keys are content errors.
func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// LoadLibrary reads elements.yaml, terrain.yaml and actions.yaml from dir.
func LoadLibrary(dir string) (*Library, error) {
	var ec ElementsConfig
	var tc TerrainConfig
	var ac ActionsConfig
	if err := loadYAML(filepath.Join(dir, "elements.yaml"), &ec); err != nil {
		return nil, err
	}
	if err := loadYAML(filepath.Join(dir, "terrain.yaml"), &tc); err != nil {
		return nil, err
	}
	if err := loadYAML(filepath.Join(dir, "actions.yaml"), &ac); err != nil {
		return nil, err
	}

	lib, err := NewLibrary(&ec, &tc, &ac)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", dir, err)
	}
	logger.Component("content").WithFields(logrus.Fields{
		"dir":     dir,
		"actions": len(lib.Actions),
		"terrain": len(tc.Terrain),
	}).Info("Content library loaded")
	return lib, nil
}

// LoadScenario reads one scenario file. Rules it leaves out keep their defaults.
func LoadScenario(path string) (*ScenarioConfig, error) {
	sc := NewScenarioConfig()
	if err := loadYAML(path, sc); err != nil {
		return nil, err
	}
	if len(sc.Combatants) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyScenario)
	}
	return sc, nil
}
