// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/example/brain/internal/core/goal"
	"github.com/example/brain/internal/ports/secondary"
)

// GoalsStore implements secondary.GoalsStore over a hand-authored YAML
// document. The file is edited by the user, never written by us.
type GoalsStore struct {
	path string
}

// NewGoalsStore creates a goals store reading from path. If path is
// empty, defaults to ~/.brain/goals.yaml.
func NewGoalsStore(path string) (*GoalsStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, ".brain", "goals.yaml")
	}
	return &GoalsStore{path: path}, nil
}

// Load reads the goals document. A missing file loads as empty goals.
func (s *GoalsStore) Load(ctx context.Context) (goal.Goals, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return goal.Goals{}, nil
	}
	if err != nil {
		return goal.Goals{}, fmt.Errorf("failed to read goals file: %w", err)
	}

	var goals goal.Goals
	if err := yaml.Unmarshal(raw, &goals); err != nil {
		return goal.Goals{}, fmt.Errorf("failed to parse goals file: %w", err)
	}
	return goals, nil
}

// Path returns where the goals document lives.
func (s *GoalsStore) Path() string {
	return s.path
}

// Ensure GoalsStore implements the interface
var _ secondary.GoalsStore = (*GoalsStore)(nil)
