package model

// EnvVar is one environment entry.
type EnvVar struct {
	Name  string
	Value string
}

// Environment is an ordered key/value set. Setting an existing key replaces
// its value but keeps the position of its first insertion.
type Environment struct {
	keys   []string
	values map[string]string
}

// Set stores value under name, last write wins.
func (e *Environment) Set(name, value string) {
	if e.values == nil {
		e.values = make(map[string]string)
	}
	if _, ok := e.values[name]; !ok {
		e.keys = append(e.keys, name)
	}
	e.values[name] = value
}

// Get returns the value stored under name.
func (e *Environment) Get(name string) (string, bool) {
	v, ok := e.values[name]
	return v, ok
}

// Len returns the number of distinct keys.
func (e *Environment) Len() int {
	return len(e.keys)
}

// Vars returns the surviving entries in first-insertion order.
func (e *Environment) Vars() []EnvVar {
	if len(e.keys) == 0 {
		return nil
	}
	out := make([]EnvVar, 0, len(e.keys))
	for _, k := range e.keys {
		out = append(out, EnvVar{Name: k, Value: e.values[k]})
	}
	return out
}

// Map returns a copy of the entries as a plain map.
func (e *Environment) Map() map[string]string {
	if len(e.keys) == 0 {
		return nil
	}
	out := make(map[string]string, len(e.keys))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}
