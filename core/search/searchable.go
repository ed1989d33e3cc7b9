package search

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

// Relation describes how a named association scopes a relation-existence
// check: a related record matches when related.ForeignKey = host.OwnerKey.
type Relation struct {
	Table      string `yaml:"table"`
	ForeignKey string `yaml:"foreign_key"`
	OwnerKey   string `yaml:"owner_key"`
}

// Searchable is the capability an entity type provides to become
// searchable. The configuration is read-only at request time.
type Searchable interface {
	SearchTable() string
	SearchableColumns() ColumnConfigMap
	SearchRelations() map[string]Relation
}

// ConfigEntity is a Searchable declared in configuration.
type ConfigEntity struct {
	Table     string              `yaml:"table"`
	Columns   ColumnConfigMap     `yaml:"search_columns"`
	Relations map[string]Relation `yaml:"relations"`
}

func (e ConfigEntity) SearchTable() string { return e.Table }

func (e ConfigEntity) SearchableColumns() ColumnConfigMap { return e.Columns }

func (e ConfigEntity) SearchRelations() map[string]Relation { return e.Relations }

// Registry associates entity names with their Searchable implementations.
// Register everything during startup; lookups after that need no locking.
type Registry struct {
	names    []string
	entities map[string]Searchable
}

func NewRegistry() *Registry {
	return &Registry{entities: map[string]Searchable{}}
}

// Register adds or replaces an entity. Replacing keeps the original position.
func (r *Registry) Register(name string, ent Searchable) {
	if _, exists := r.entities[name]; !exists {
		r.names = append(r.names, name)
	}
	r.entities[name] = ent
}

func (r *Registry) Get(name string) (Searchable, bool) {
	ent, ok := r.entities[name]
	return ent, ok
}

// Names returns registered entity names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

type entitiesFile struct {
	Entities map[string]ConfigEntity `yaml:"entities"`
}

// LoadRegistry reads an entity declaration file and registers every entity
// in declaration order. An entity without a table name is rejected.
func LoadRegistry(rd io.Reader) (*Registry, error) {
	raw, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("error reading entity config: %w", err)
	}

	var file entitiesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("error parsing entity config: %w", err)
	}

	var ordered struct {
		Entities yaml.MapSlice `yaml:"entities"`
	}
	if err := yaml.Unmarshal(raw, &ordered); err != nil {
		return nil, fmt.Errorf("error parsing entity config: %w", err)
	}

	registry := NewRegistry()
	for _, item := range ordered.Entities {
		name := fmt.Sprint(item.Key)
		ent := file.Entities[name]
		if ent.Table == "" {
			return nil, fmt.Errorf("entity %q is missing a table name", name)
		}
		registry.Register(name, ent)
	}
	return registry, nil
}
