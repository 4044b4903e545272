package patterns

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/keyhound/keyhound/internal/types"
)

// customFile is the on-disk YAML shape for user-supplied rules:
//
//	patterns:
//	  - pattern:
//	      name: my_rule
//	      regex: 'tok_[a-z0-9]{24}'
type customFile struct {
	Patterns []struct {
		Pattern struct {
			Name  string `yaml:"name"`
			Regex string `yaml:"regex"`
		} `yaml:"pattern"`
	} `yaml:"patterns"`
}

// Build returns the registry of defaults overlaid with the custom rules at
// path, if any. The custom set is all-or-nothing: a document that fails to
// parse, an entry missing name or regex, or a single regex that fails to
// compile discards every custom rule and the run proceeds on defaults
// only. Partially-applied custom rules could silently under-scan.
func Build(path string) Registry {
	defaults := must(New(Defaults()))
	if path == "" {
		return defaults
	}
	custom, err := loadCustom(path)
	if err != nil {
		log.Warn().Err(err).Str("file", path).Msg("custom patterns discarded, scanning with defaults")
		return defaults
	}
	reg, err := New(Defaults(), custom)
	if err != nil {
		log.Warn().Err(err).Str("file", path).Msg("custom patterns discarded, scanning with defaults")
		return defaults
	}
	log.Info().Int("count", len(custom)).Str("file", path).Msg("loaded custom patterns")
	return reg
}

func loadCustom(path string) ([]types.Pattern, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc customFile
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if len(doc.Patterns) == 0 {
		return nil, fmt.Errorf("no patterns in %s", path)
	}
	out := make([]types.Pattern, 0, len(doc.Patterns))
	for i, e := range doc.Patterns {
		if e.Pattern.Name == "" || e.Pattern.Regex == "" {
			return nil, fmt.Errorf("entry %d: missing name or regex", i)
		}
		out = append(out, types.Pattern{Name: e.Pattern.Name, Regex: e.Pattern.Regex})
	}
	return out, nil
}

func must(r Registry, err error) Registry {
	if err != nil {
		panic(err)
	}
	return r
}
