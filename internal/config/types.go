package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Gallery is the document that configures the widget gallery.
type Gallery struct {
	Version      string             `yaml:"version" validate:"required,oneof=1"`
	Title        string             `yaml:"title" validate:"max=80"`
	Theme        string             `yaml:"theme" validate:"omitempty,oneof=light dark"`
	Pager        PagerConfig        `yaml:"pager"`
	Autocomplete AutocompleteConfig `yaml:"autocomplete"`
	Datepicker   DatepickerConfig   `yaml:"datepicker"`
	Navbar       NavbarConfig       `yaml:"navbar"`
}

// PagerConfig configures the pagination control. Siblings and Boundary are
// pointers so an explicit zero is kept.
type PagerConfig struct {
	Total       int  `yaml:"total" validate:"min=0,max=100000"`
	Siblings    *int `yaml:"siblings" validate:"omitempty,min=0,max=10"`
	Boundary    *int `yaml:"boundary" validate:"omitempty,min=0,max=10"`
	InitialPage int  `yaml:"initial_page" validate:"min=0"`
}

// AutocompleteConfig configures the autocomplete input.
type AutocompleteConfig struct {
	Placeholder  string           `yaml:"placeholder"`
	NothingFound string           `yaml:"nothing_found"`
	Limit        int              `yaml:"limit" validate:"min=0,max=50"`
	Fuzzy        bool             `yaml:"fuzzy"`
	Data         []SuggestionItem `yaml:"data" validate:"dive"`
}

// SuggestionItem is an autocomplete entry. It decodes from a plain string
// or from a mapping with value and description.
type SuggestionItem struct {
	Value       string `yaml:"value" validate:"required"`
	Description string `yaml:"description,omitempty"`
}

// UnmarshalYAML accepts both scalar and mapping forms.
func (s *SuggestionItem) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*s = SuggestionItem{Value: node.Value}
		return nil
	case yaml.MappingNode:
		type plain SuggestionItem
		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}
		*s = SuggestionItem(p)
		return nil
	default:
		return fmt.Errorf("line %d: suggestion must be a string or a mapping", node.Line)
	}
}

// DatepickerConfig configures the date picker. Dates use the ISO layout
// 2006-01-02. Boolean behaviours default to true when omitted.
type DatepickerConfig struct {
	Format            DateFormat `yaml:"format"`
	Placeholder       string     `yaml:"placeholder"`
	MinDate           string     `yaml:"min_date" validate:"omitempty,iso_date"`
	MaxDate           string     `yaml:"max_date" validate:"omitempty,iso_date"`
	ExcludeWeekends   bool       `yaml:"exclude_weekends"`
	AllowManualTyping *bool      `yaml:"allow_manual_typing"`
	FixOnBlur         *bool      `yaml:"fix_on_blur"`
	Clearable         *bool      `yaml:"clearable"`
	CloseOnChange     *bool      `yaml:"close_on_change"`
}

// DateFormat holds Go time layouts and the first day of the week.
type DateFormat struct {
	Input        string `yaml:"input" validate:"omitempty,go_layout"`
	Label        string `yaml:"label" validate:"omitempty,month_layout"`
	FirstWeekday string `yaml:"first_weekday" validate:"omitempty,weekday"`
	Location     string `yaml:"location" validate:"omitempty,timezone"`
}

// NavbarConfig configures the navigation column.
type NavbarConfig struct {
	Width    int             `yaml:"width" validate:"omitempty,min=10,max=80"`
	Padding  string          `yaml:"padding" validate:"omitempty,oneof=none xs sm md lg xl"`
	Active   string          `yaml:"active"`
	Sections []SectionConfig `yaml:"sections" validate:"dive"`
}

// SectionConfig is a titled group of links.
type SectionConfig struct {
	Title string       `yaml:"title"`
	Grow  bool         `yaml:"grow"`
	Links []LinkConfig `yaml:"links" validate:"dive"`
}

// LinkConfig is a navbar link.
type LinkConfig struct {
	Label  string `yaml:"label" validate:"required"`
	Target string `yaml:"target" validate:"required"`
}
