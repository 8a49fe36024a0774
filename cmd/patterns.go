package cmd

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var errNoPatterns = errors.New("no patterns defined")

// patternFile is the --patterns document:
//
//	patterns:
//	  - name: error
//	    tokens: ERRd
//	  - name: ticket
//	    tokens: u+-d+x
type patternFile struct {
	Patterns []patternSpec `yaml:"patterns"`
}

type patternSpec struct {
	Name   string `yaml:"name"`
	Tokens string `yaml:"tokens"`
}

func loadPatterns(path string) ([]patternSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading patterns file: %w", err)
	}
	return parsePatterns(path, data)
}

func parsePatterns(path string, data []byte) ([]patternSpec, error) {
	var pf patternFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("error parsing patterns file %s: %w", path, err)
	}
	if len(pf.Patterns) == 0 {
		return nil, fmt.Errorf("%s: %w", path, errNoPatterns)
	}
	for i := range pf.Patterns {
		if pf.Patterns[i].Name == "" {
			pf.Patterns[i].Name = fmt.Sprintf("pattern%d", i+1)
		}
	}
	return pf.Patterns, nil
}
