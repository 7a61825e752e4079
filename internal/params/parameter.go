package params

import "fmt"

// ID is the position of a parameter in its store. It is assigned at
// construction and preserved by Clone.
type ID int

// Template is one seed entry: a name and its range.
type Template struct {
	Name    string  `json:"name" yaml:"name" toml:"name"`
	Min     float64 `json:"min" yaml:"min" toml:"min"`
	Central float64 `json:"central" yaml:"central" toml:"central"`
	Max     float64 `json:"max" yaml:"max" toml:"max"`
}

type record struct {
	Template
	value float64
	id    ID
}

// Parameter is a handle onto one record of a store. Copies of a Parameter
// alias the same record.
type Parameter struct {
	s  *store
	id ID
}

// Valid reports whether the handle is bound to a store.
func (p Parameter) Valid() bool {
	return p.s != nil
}

// Value returns the current value.
func (p Parameter) Value() float64 {
	return p.s.records[p.id].value
}

// Set overwrites the current value. Every view sharing the store sees it.
func (p Parameter) Set(value float64) {
	p.s.records[p.id].value = value
}

func (p Parameter) Central() float64 {
	return p.s.records[p.id].Central
}

func (p Parameter) Min() float64 {
	return p.s.records[p.id].Min
}

func (p Parameter) Max() float64 {
	return p.s.records[p.id].Max
}

func (p Parameter) Name() string {
	return p.s.records[p.id].Name
}

func (p Parameter) ID() ID {
	return p.s.records[p.id].id
}

// Clone returns another handle onto the same store and record. It does not
// copy the store.
func (p Parameter) Clone() Parameter {
	return Parameter{s: p.s, id: p.id}
}

func (p Parameter) String() string {
	if p.s == nil {
		return "<unbound parameter>"
	}
	r := p.s.records[p.id]
	return fmt.Sprintf("%s = %g [%g, %g]", r.Name, r.value, r.Min, r.Max)
}
