// Package config loads interpretation settings from YAML files for the
// CLI. Library callers construct interp.Config directly; the file form
// exists only at the tool boundary.
//
// File angles are in degrees for authoring convenience and converted
// to radians on load:
//
//	default_step: 1.0
//	default_angle: 22.5
//	initial_width: 0.1
//	tropism: [0, -1, 0]
//	elasticity: 0.15
//	move_breaks_strand: true
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/turtle3d-xyz/go-turtle3d/interp"
	"github.com/turtle3d-xyz/go-turtle3d/turtle"
)

// fileConfig is the on-disk YAML form of interp.Config.
type fileConfig struct {
	DefaultStep      *float64    `yaml:"default_step"`
	DefaultAngle     *float64    `yaml:"default_angle"`
	InitialWidth     *float64    `yaml:"initial_width"`
	Tropism          *[3]float64 `yaml:"tropism"`
	Elasticity       *float64    `yaml:"elasticity"`
	MoveBreaksStrand *bool       `yaml:"move_breaks_strand"`
}

// Load reads a YAML config file, applying defaults for absent fields.
func Load(path string) (interp.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return interp.Config{}, fmt.Errorf("reading config: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (interp.Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return interp.Config{}, fmt.Errorf("parsing config: %w", err)
	}

	cfg := interp.DefaultConfig()
	if fc.DefaultStep != nil {
		if *fc.DefaultStep <= 0 {
			return interp.Config{}, fmt.Errorf("default_step must be positive, got %v", *fc.DefaultStep)
		}
		cfg.DefaultStep = *fc.DefaultStep
	}
	if fc.DefaultAngle != nil {
		cfg.DefaultAngle = *fc.DefaultAngle * math.Pi / 180
	}
	if fc.InitialWidth != nil {
		if *fc.InitialWidth < 0 {
			return interp.Config{}, fmt.Errorf("initial_width must be non-negative, got %v", *fc.InitialWidth)
		}
		cfg.InitialWidth = *fc.InitialWidth
	}
	if fc.Tropism != nil {
		t := turtle.Vec3{X: fc.Tropism[0], Y: fc.Tropism[1], Z: fc.Tropism[2]}
		cfg.Tropism = &t
	}
	if fc.Elasticity != nil {
		if *fc.Elasticity < 0 || *fc.Elasticity > 1 {
			return interp.Config{}, fmt.Errorf("elasticity must be in [0,1], got %v", *fc.Elasticity)
		}
		cfg.Elasticity = *fc.Elasticity
	}
	if fc.MoveBreaksStrand != nil {
		cfg.MoveBreaksStrand = *fc.MoveBreaksStrand
	}
	return cfg, nil
}
