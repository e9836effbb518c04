// Package params builds a kinematics.State from the reference scenario, an optional
// parameter file and explicit overrides.
package params

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/litescript/ls-burn/internal/kinematics"
)

// StdinPath selects JSON on standard input.
const StdinPath = "-"

// Source describes where parameters come from.
type Source struct {
	// Path is a .json, .yaml, .yml or .toml file, StdinPath, or empty for the
	// reference scenario.
	Path string

	// Stdin is read when Path is StdinPath.
	Stdin io.Reader

	// Overrides replace individual fields after the base is loaded. Keys are
	// canonical field names.
	Overrides map[string]float64
}

// Load merges the source into a validated State. When a file is given, every
// field must be present in it unless an override supplies it.
func Load(src Source) (kinematics.State, error) {
	raw, err := Raw(src)
	if err != nil {
		return kinematics.State{}, err
	}
	return kinematics.ParseState(raw)
}

// Raw returns the merged parameter map without validating it. Overrides are
// float64 values; file values keep the type the decoder produced.
func Raw(src Source) (map[string]any, error) {
	raw, err := base(src)
	if err != nil {
		return nil, err
	}
	for name, v := range src.Overrides {
		raw[name] = v
	}
	return raw, nil
}

func base(src Source) (map[string]any, error) {
	if src.Path == "" {
		return kinematics.ReferenceState().Map(), nil
	}

	v := viper.New()
	if src.Path == StdinPath {
		if src.Stdin == nil {
			return nil, errors.New("read parameters from stdin: no input")
		}
		v.SetConfigType("json")
		if err := v.ReadConfig(src.Stdin); err != nil {
			return nil, fmt.Errorf("read parameters from stdin: %w", err)
		}
	} else {
		if !supportedExt(src.Path) {
			return nil, fmt.Errorf("parameter file %s: unsupported extension %q (want .json, .yaml, .yml or .toml)",
				src.Path, filepath.Ext(src.Path))
		}
		v.SetConfigFile(src.Path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read parameter file %s: %w", src.Path, err)
		}
	}

	return canonicalKeys(v.AllSettings()), nil
}

func supportedExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml", ".toml":
		return true
	default:
		return false
	}
}

// canonicalKeys restores field-name casing; viper lower-cases every key.
// Keys that match no field are kept as-is so ParseState can reject them.
func canonicalKeys(settings map[string]any) map[string]any {
	out := make(map[string]any, len(settings))
	for k, val := range settings {
		name := k
		for _, f := range kinematics.Fields() {
			if strings.EqualFold(f.Name, k) {
				name = f.Name
				break
			}
		}
		out[name] = val
	}
	return out
}
