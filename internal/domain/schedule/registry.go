package schedule

import "fmt"

// DefaultName is the schedule every unknown or empty name resolves to.
const DefaultName = "general"

// Registry holds the enumerated schedule table. Configs are injected at
// startup; lookups never fail, they fall back to the default config.
type Registry struct {
	configs map[string]Config
}

// NewRegistry validates the given table and requires the default entry
// to be present.
func NewRegistry(configs map[string]Config) (*Registry, error) {
	if _, ok := configs[DefaultName]; !ok {
		return nil, fmt.Errorf("schedule table is missing the %q entry", DefaultName)
	}
	copied := make(map[string]Config, len(configs))
	for name, cfg := range configs {
		if err := cfg.validate(); err != nil {
			return nil, fmt.Errorf("schedule %q: %w", name, err)
		}
		copied[name] = cfg
	}
	return &Registry{configs: copied}, nil
}

// Resolve returns the config for name, or the default config when the
// name is unknown. The fallback is deliberate, not an error.
func (r *Registry) Resolve(name string) Config {
	if cfg, ok := r.configs[name]; ok {
		return cfg
	}
	return r.configs[DefaultName]
}

// Names lists the registered schedule names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.configs))
	for name := range r.configs {
		names = append(names, name)
	}
	return names
}

// Defaults is the built-in schedule table.
func Defaults() map[string]Config {
	return map[string]Config{
		"general": {
			Weekdays:         Window{Start: "10:30", End: "19:00", BreakMinutes: 60},
			Saturday:         &Window{Start: "10:00", End: "13:00", BreakMinutes: 15},
			WorkingSaturdays: []int{1, 3},
		},
		"shreyas": {
			Weekdays:   Window{Start: "16:30", End: "19:00", BreakMinutes: 15},
			Friday:     &Window{Start: "12:00", End: "18:00", BreakMinutes: 45},
			WeekendOff: true,
		},
		"srushti": {
			Weekdays:         Window{Start: "10:30", End: "16:30", BreakMinutes: 45},
			Saturday:         &Window{Start: "10:00", End: "13:00", BreakMinutes: 15},
			WorkingSaturdays: []int{1, 3},
		},
		"vinay": {
			Weekdays:         Window{Start: "10:30", End: "21:00", BreakMinutes: 60},
			Saturday:         &Window{Start: "10:00", End: "13:00", BreakMinutes: 15},
			WorkingSaturdays: []int{1, 3},
		},
	}
}
