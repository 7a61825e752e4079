package params

import (
	"fmt"
	"iter"
)

// store is the backing array shared by views. Records are never added,
// removed or reordered once built.
type store struct {
	records []record
	// index is read-only after construction and shared between clones.
	index map[string]ID
}

func (s *store) clone() *store {
	records := make([]record, len(s.records))
	copy(records, s.records)
	return &store{records: records, index: s.index}
}

// Parameters is a view onto a parameter store. The zero value is an empty
// view with no parameters.
//
// Two views compare equal with == exactly when they share a store.
type Parameters struct {
	s *store
}

// New builds a store from templates in order and returns a view onto it.
// Each value starts at its template's central value. Bounds are not checked.
func New(templates ...Template) (Parameters, error) {
	s := &store{
		records: make([]record, 0, len(templates)),
		index:   make(map[string]ID, len(templates)),
	}
	for i, t := range templates {
		if _, ok := s.index[t.Name]; ok {
			return Parameters{}, fmt.Errorf("%w: %q", ErrDuplicateName, t.Name)
		}
		id := ID(i)
		s.records = append(s.records, record{Template: t, value: t.Central, id: id})
		s.index[t.Name] = id
	}
	return Parameters{s: s}, nil
}

// MustNew is like New but panics on error.
func MustNew(templates ...Template) Parameters {
	p, err := New(templates...)
	if err != nil {
		panic(err)
	}
	return p
}

// Clone deep-copies the store. Handles taken from p keep reading p.
func (p Parameters) Clone() Parameters {
	if p.s == nil {
		return Parameters{}
	}
	return Parameters{s: p.s.clone()}
}

// Equal reports whether p and other share a store. Values are not compared.
func (p Parameters) Equal(other Parameters) bool {
	return p.s == other.s
}

func (p Parameters) Len() int {
	if p.s == nil {
		return 0
	}
	return len(p.s.records)
}

func (p Parameters) Has(name string) bool {
	if p.s == nil {
		return false
	}
	_, ok := p.s.index[name]
	return ok
}

// ByName returns a handle for the named parameter.
func (p Parameters) ByName(name string) (Parameter, error) {
	id, ok := p.lookup(name)
	if !ok {
		return Parameter{}, &UnknownParameterError{Name: name}
	}
	return Parameter{s: p.s, id: id}, nil
}

// ByID returns a handle for the parameter at position id. An id outside the
// store is a programming error and is reported as *InvalidIDError.
func (p Parameters) ByID(id ID) (Parameter, error) {
	if id < 0 || int(id) >= p.Len() {
		return Parameter{}, &InvalidIDError{ID: id, Len: p.Len()}
	}
	return Parameter{s: p.s, id: id}, nil
}

// Set overwrites the value of the named parameter. The range and the name
// are left as they are.
func (p Parameters) Set(name string, value float64) error {
	id, ok := p.lookup(name)
	if !ok {
		return &UnknownParameterError{Name: name}
	}
	p.s.records[id].value = value
	return nil
}

// Apply sets every named value. Names are resolved first, so an unknown name
// leaves the store untouched.
func (p Parameters) Apply(values map[string]float64) error {
	ids := make(map[ID]float64, len(values))
	for name, v := range values {
		id, ok := p.lookup(name)
		if !ok {
			return &UnknownParameterError{Name: name}
		}
		ids[id] = v
	}
	for id, v := range ids {
		p.s.records[id].value = v
	}
	return nil
}

// Reset restores every value to its central value.
func (p Parameters) Reset() {
	if p.s == nil {
		return
	}
	for i := range p.s.records {
		p.s.records[i].value = p.s.records[i].Central
	}
}

// All yields one handle per record in id order.
func (p Parameters) All() iter.Seq[Parameter] {
	return func(yield func(Parameter) bool) {
		for i := 0; i < p.Len(); i++ {
			if !yield(Parameter{s: p.s, id: ID(i)}) {
				return
			}
		}
	}
}

// Names returns parameter names in id order.
func (p Parameters) Names() []string {
	names := make([]string, 0, p.Len())
	for par := range p.All() {
		names = append(names, par.Name())
	}
	return names
}

// Snapshot returns the current values keyed by name.
func (p Parameters) Snapshot() map[string]float64 {
	values := make(map[string]float64, p.Len())
	for par := range p.All() {
		values[par.Name()] = par.Value()
	}
	return values
}

func (p Parameters) lookup(name string) (ID, bool) {
	if p.s == nil {
		return 0, false
	}
	id, ok := p.s.index[name]
	return id, ok
}
