package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Test describes one Viavi campaign test that can be run on the testbed.
type Test struct {
	CampaignFilename string `yaml:"campaign_filename"`
	ID               string `yaml:"id"`
	Description      string `yaml:"description,omitempty"`
}

// declaration mirrors the on-disk layout of the test declaration file.
// Tests is a pointer so that a missing key can be told apart from an empty list.
type declaration struct {
	Tests *[]Test `yaml:"tests"`
}

// ParseError reports a catalog file that is not valid YAML.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse test catalog %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError reports a catalog that parsed but does not describe a valid test list.
type SchemaError struct {
	Path     string
	Problems []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid test catalog %s: %s", e.Path, strings.Join(e.Problems, "; "))
}

// Load reads the test declaration file at path.
func Load(path string) ([]Test, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test catalog: %w", err)
	}
	return Parse(path, data)
}

// Parse decodes and validates a test declaration document. path is only
// used for error messages.
func Parse(path string, data []byte) ([]Test, error) {
	var decl declaration
	if err := yaml.Unmarshal(data, &decl); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if decl.Tests == nil {
		return nil, &SchemaError{Path: path, Problems: []string{"missing top-level 'tests' list"}}
	}

	tests := *decl.Tests
	if problems := validate(tests); len(problems) > 0 {
		return nil, &SchemaError{Path: path, Problems: problems}
	}
	return tests, nil
}

func validate(tests []Test) []string {
	var problems []string
	firstSeen := make(map[string]int, len(tests))

	for i, t := range tests {
		var missing []string
		if t.CampaignFilename == "" {
			missing = append(missing, "campaign_filename")
		}
		if t.ID == "" {
			missing = append(missing, "id")
		}
		if len(missing) > 0 {
			problems = append(problems, fmt.Sprintf("entry %d is missing %s", i, strings.Join(missing, ", ")))
			continue
		}

		if prev, ok := firstSeen[t.ID]; ok {
			problems = append(problems, fmt.Sprintf("entry %d duplicates id %q of entry %d", i, t.ID, prev))
			continue
		}
		firstSeen[t.ID] = i
	}
	return problems
}

// Find returns the first test whose ID equals id.
func Find(tests []Test, id string) (Test, bool) {
	for _, t := range tests {
		if t.ID == id {
			return t, true
		}
	}
	return Test{}, false
}
