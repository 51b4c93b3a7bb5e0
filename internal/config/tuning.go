package config

import (
	"fmt"
	"os"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/scoring"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// LoadTuning overlays the YAML file at path on the default tuning and
// validates the result. An empty path yields the defaults.
func LoadTuning(path string) (scoring.Tuning, error) {
	t := scoring.DefaultTuning()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return scoring.Tuning{}, fmt.Errorf("read tuning file: %w", err)
	}
	return ParseTuning(data)
}

// ParseTuning decodes YAML over the defaults. Keys absent from data keep
// their default values.
func ParseTuning(data []byte) (scoring.Tuning, error) {
	t := scoring.DefaultTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return scoring.Tuning{}, fmt.Errorf("parse tuning: %w", err)
	}
	if err := validate.Struct(t); err != nil {
		return scoring.Tuning{}, fmt.Errorf("validate tuning: %w", err)
	}
	if err := t.CheckInvariants(); err != nil {
		return scoring.Tuning{}, fmt.Errorf("validate tuning: %w", err)
	}
	return t, nil
}
