// Package params provides the shared parameter store used by every
// observable in flavorsim.
//
// A parameter is a named scalar with a central value and a [min, max]
// range. The package exposes four pieces:
//
//   - [Parameters]: a view onto a backing store, with lookup by name or id
//   - [Parameter]: a cheap handle onto one record of a store
//   - [User]: the set of parameter ids a calculation depends on
//   - [UsedParameter]: a handle whose acquisition registered its id
//
// Views are small values. Copying a [Parameters] aliases the store, so a
// [Parameters.Set] through one copy is visible through every other copy.
// [Parameters.Clone] allocates a new store; after it returns the two views
// are independent.
//
// Ids are positions in the seed table. They never change and a clone keeps
// every record at the same position, so an id taken from one view can be
// resolved against any clone of it with [Parameters.ByID]. Handles are not
// rebound by cloning: a [Parameter] always reads the store it came from.
//
// # Example
//
//	p := params.Defaults()
//	mb, _ := p.ByName("mass::B_d")
//	worker := p.Clone()
//	_ = worker.Set("mass::B_d", 5.3)
//	fmt.Println(mb.Value()) // 5.27958, the clone diverged
//
// # Thread Safety
//
// Stores carry no locks. Give each goroutine its own clone.
package params
