package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	tesseraerrors "github.com/alexisbeaulieu97/tessera/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

//go:embed default.yaml
var defaultDocument []byte

// DefaultPath is the name shown in errors for the built-in document.
const DefaultPath = "<built-in gallery>"

// Load reads, decodes, defaults and validates the gallery at path.
func Load(path string) (*Gallery, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tesseraerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// LoadDefault parses the built-in gallery document.
func LoadDefault() (*Gallery, error) {
	return Parse(DefaultPath, defaultDocument)
}

// Default is LoadDefault for callers that cannot handle an error, such as
// tests and examples. It panics when the built-in document is invalid.
func Default() *Gallery {
	g, err := LoadDefault()
	if err != nil {
		panic(fmt.Sprintf("built-in gallery is invalid: %v", err))
	}
	return g
}

// Parse decodes data as a gallery document. Unknown keys are errors.
func Parse(path string, data []byte) (*Gallery, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var g Gallery
	if err := dec.Decode(&g); err != nil {
		if err == io.EOF {
			err = fmt.Errorf("document is empty")
		}
		return nil, tesseraerrors.NewParseError(path, extractLine(err), err)
	}

	g.applyDefaults()
	if err := Validate(&g); err != nil {
		return nil, err
	}
	return &g, nil
}

// Validate checks field rules and the rules that span fields.
func Validate(g *Gallery) error {
	if g == nil {
		return tesseraerrors.NewValidationError("gallery", "gallery is nil", nil)
	}

	if err := validatorInstance().Struct(g); err != nil {
		return convertValidationError(err)
	}

	dp := g.Datepicker
	if dp.MinDate != "" && dp.MaxDate != "" {
		minDate, _ := time.Parse(ISODate, dp.MinDate)
		maxDate, _ := time.Parse(ISODate, dp.MaxDate)
		if minDate.After(maxDate) {
			return tesseraerrors.NewValidationError("datepicker.max_date",
				fmt.Sprintf("%s is before min_date %s", dp.MaxDate, dp.MinDate), nil)
		}
	}

	targets := make(map[string]struct{})
	for i, s := range g.Navbar.Sections {
		for j, l := range s.Links {
			if _, dup := targets[l.Target]; dup {
				return tesseraerrors.NewValidationError(fieldForLink(i, j, "target"),
					fmt.Sprintf("duplicate target %q", l.Target), nil)
			}
			targets[l.Target] = struct{}{}
		}
	}
	if active := g.Navbar.Active; active != "" {
		if _, ok := targets[active]; !ok {
			return tesseraerrors.NewValidationError("navbar.active",
				fmt.Sprintf("references unknown target %q", active), nil)
		}
	}

	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
