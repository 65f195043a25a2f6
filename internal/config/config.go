package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sxgraph/sxgraph/pkg/sx"
)

// DefaultFileName is the config file the CLI looks for in the working
// directory when --config is not given.
const DefaultFileName = ".sxgraph.yaml"

// File is the on-disk option set. Fields are pointers so an absent key
// keeps the engine default instead of zeroing it.
type File struct {
	Simplify *bool `yaml:"simplify"`
	EqDepth  *int  `yaml:"eq_depth"`
}

// Load reads path and merges it over sx.DefaultOptions.
func Load(path string) (sx.Options, error) {
	opts := sx.DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return opts, fmt.Errorf("config %s: %w", path, err)
	}
	return Merge(opts, f), nil
}

// LoadDefault loads DefaultFileName if it exists; a missing file is not an
// error, it just means defaults.
func LoadDefault() (sx.Options, error) {
	opts, err := Load(DefaultFileName)
	if os.IsNotExist(err) {
		return sx.DefaultOptions(), nil
	}
	return opts, err
}

// Merge applies the set fields of f over opts.
func Merge(opts sx.Options, f File) sx.Options {
	if f.Simplify != nil {
		opts.Simplify = *f.Simplify
	}
	if f.EqDepth != nil {
		opts.EqDepth = *f.EqDepth
	}
	return opts
}
