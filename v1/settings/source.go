package settings

// Source is a read-only view of a host application's stored settings.
// Implementations return the raw value for key and whether it is present.
type Source interface {
	Get(key string) (any, bool)
}

// Map is a Source backed by a plain map. A nil Map has no keys.
type Map map[string]any

// Get implements Source.
func (m Map) Get(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

// Chain looks a key up in each Source in order and returns the first hit.
// It lets a host layer, for example, environment overrides over database values.
type Chain []Source

// Get implements Source.
func (c Chain) Get(key string) (any, bool) {
	for _, src := range c {
		if src == nil {
			continue
		}
		if v, ok := src.Get(key); ok {
			return v, true
		}
	}
	return nil, false
}
