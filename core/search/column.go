package search

import (
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v2"
)

// ColumnType is an explicit override for how a column's values are compared.
type ColumnType string

const ColumnTypeNumber ColumnType = "number"

// ColumnConfig is the canonical description of one searchable column.
// Raw configuration entries are normalized into this shape once, at the
// boundary; nothing downstream branches on the raw shape again.
type ColumnConfig struct {
	Field    string     `yaml:"field,omitempty" json:"field,omitempty"`
	Label    string     `yaml:"label,omitempty" json:"label,omitempty"`
	Relation string     `yaml:"relation,omitempty" json:"relation,omitempty"`
	Type     ColumnType `yaml:"type,omitempty" json:"type,omitempty"`
}

// IsRelation reports whether the column lives on a related record rather
// than the host record. Both relation and field must be resolvable.
func (c ColumnConfig) IsRelation() bool {
	return c.Relation != "" && c.Field != ""
}

// RawColumnConfig is a configuration entry before normalization. An entry is
// either a plain label string or a structured ColumnConfig:
//
//	name: "Customer Name"
//	total_cost:
//	  type: number
//	user_name:
//	  relation: user
//	  field: full_name
type RawColumnConfig struct {
	label  string
	config *ColumnConfig
}

// LabelColumn builds a plain-label entry.
func LabelColumn(label string) RawColumnConfig {
	return RawColumnConfig{label: label}
}

// StructuredColumn builds a structured entry.
func StructuredColumn(cfg ColumnConfig) RawColumnConfig {
	return RawColumnConfig{config: &cfg}
}

func (rc *RawColumnConfig) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var label string
	if err := unmarshal(&label); err == nil {
		*rc = RawColumnConfig{label: label}
		return nil
	}

	var cfg ColumnConfig
	if err := unmarshal(&cfg); err != nil {
		return fmt.Errorf("column config must be a label string or a mapping: %w", err)
	}
	*rc = RawColumnConfig{config: &cfg}
	return nil
}

// Normalize turns a raw configuration entry into its canonical record.
// A plain label value for a column is equivalent to
// {field: columnKey, label: value}; a structured value gets
// {field: columnKey} merged in as a default.
func Normalize(columnKey string, raw RawColumnConfig) ColumnConfig {
	if raw.config == nil {
		return ColumnConfig{Field: columnKey, Label: raw.label}
	}

	cfg := *raw.config
	if cfg.Field == "" {
		cfg.Field = columnKey
	}
	return cfg
}

// ColumnConfigMap holds the searchable-column configuration of one entity,
// keyed by column name. Declaration order is preserved so UI option lists
// come out the way the configuration was written.
type ColumnConfigMap struct {
	keys    []string
	entries map[string]RawColumnConfig
}

// Set appends or replaces an entry. Replacing keeps the original position.
func (m *ColumnConfigMap) Set(key string, raw RawColumnConfig) *ColumnConfigMap {
	if m.entries == nil {
		m.entries = map[string]RawColumnConfig{}
	}
	if _, exists := m.entries[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.entries[key] = raw
	return m
}

// Get returns the raw entry for key.
func (m ColumnConfigMap) Get(key string) (RawColumnConfig, bool) {
	raw, ok := m.entries[key]
	return raw, ok
}

// Keys returns column keys in declaration order.
func (m ColumnConfigMap) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

func (m ColumnConfigMap) Len() int {
	return len(m.keys)
}

func (m *ColumnConfigMap) UnmarshalYAML(unmarshal func(interface{}) error) error {
	// decode twice: MapSlice for declaration order, typed map for values
	var ordered yaml.MapSlice
	if err := unmarshal(&ordered); err != nil {
		return err
	}
	var entries map[string]RawColumnConfig
	if err := unmarshal(&entries); err != nil {
		return err
	}

	*m = ColumnConfigMap{entries: entries}
	m.keys = make([]string, 0, len(ordered))
	for _, item := range ordered {
		m.keys = append(m.keys, fmt.Sprint(item.Key))
	}
	return nil
}

// ColumnOption is one UI-facing searchable-column choice.
type ColumnOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// SearchColumnOptions projects the configuration into an ordered list of
// column options for UI population. Label resolution: explicit label on a
// structured entry, the raw value of a plain entry, then a titleized form
// of the column key.
func SearchColumnOptions(columns ColumnConfigMap) []ColumnOption {
	options := make([]ColumnOption, 0, columns.Len())
	for _, key := range columns.Keys() {
		raw, _ := columns.Get(key)

		label := raw.label
		if raw.config != nil {
			label = raw.config.Label
		}
		if label == "" {
			label = titleize(key)
		}

		options = append(options, ColumnOption{Key: key, Label: label})
	}
	return options
}

func titleize(key string) string {
	name := strings.ReplaceAll(key, "_", " ")
	runes := []rune(name)
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}
