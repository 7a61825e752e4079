package params

import (
	"iter"
	"slices"
)

// User records the ids of the parameters a calculation reads. Observables
// embed one so outer tooling can ask what they depend on.
//
// The zero value is ready to use.
type User struct {
	ids map[ID]struct{}
}

// Tracker is implemented by anything that exposes its dependency set.
type Tracker interface {
	User() *User
}

// Uses adds id to the set. Repeated calls have no further effect.
func (u *User) Uses(id ID) {
	if u.ids == nil {
		u.ids = make(map[ID]struct{})
	}
	u.ids[id] = struct{}{}
}

// UsesAll merges the ids of other into u.
func (u *User) UsesAll(other *User) {
	if other == nil {
		return
	}
	for id := range other.ids {
		u.Uses(id)
	}
}

func (u *User) Has(id ID) bool {
	_, ok := u.ids[id]
	return ok
}

func (u *User) Len() int {
	return len(u.ids)
}

// IDs yields the tracked ids in ascending order.
func (u *User) IDs() iter.Seq[ID] {
	ids := make([]ID, 0, len(u.ids))
	for id := range u.ids {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return slices.Values(ids)
}

// Acquire looks up name in ps and registers it with u. Nothing is
// registered when the lookup fails.
func (u *User) Acquire(ps Parameters, name string) (UsedParameter, error) {
	p, err := ps.ByName(name)
	if err != nil {
		return UsedParameter{}, err
	}
	return Use(p, u), nil
}

// UsedParameter is a Parameter whose id has been registered with a User.
type UsedParameter struct {
	Parameter
}

// Use registers p with u and returns the handle. Calculations take their
// inputs this way so that reading a parameter and declaring the dependency
// cannot drift apart.
func Use(p Parameter, u *User) UsedParameter {
	u.Uses(p.ID())
	return UsedParameter{Parameter: p}
}
