package selection

import (
	"errors"
	"sort"

	"workshop/internal/core/domain/model/kernel"
)

var (
	// ErrRecordIsNotConstructed is returned when a Record instance was not
	// created through NewRecord or RestoreRecord.
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord constructor")

	// ErrNotActingRole is returned when a mutation names a role other than
	// the one acting in the current request. Reads are open to every role;
	// writes are confined to one's own sub-selection.
	ErrNotActingRole = errors.New("selection can only be mutated by its owning role")
)

// Record holds the four role-scoped row id sets of one (order, category)
// pair. All roles may read all four sets; a mutation only ever touches the
// acting role's set, so concurrent edits by different roles never overwrite
// one another.
//
// A Record starts empty when an artifact view opens, is hydrated from the
// store, mutated by local toggles and persisted on explicit save. Hydration
// replaces the whole in-memory state; saving transmits only the acting
// role's set.
type Record struct {
	// orderID identifies the order the selection belongs to
	orderID kernel.UUID

	// category identifies the sub-selection
	category Category

	// sets holds the selected row ids per role
	sets map[Role]map[string]struct{}

	// isConstructed ensures the record was created via a constructor
	isConstructed bool
}

// NewRecord creates an empty Record for the given order and category.
// All four role sets exist and are empty.
func NewRecord(orderID kernel.UUID, category Category) (*Record, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := category.Validate(); err != nil {
		return nil, err
	}

	return &Record{
		orderID:       orderID,
		category:      category,
		sets:          emptySets(),
		isConstructed: true,
	}, nil
}

// RestoreRecord reconstructs a Record from persisted role sets. Roles absent
// from the input get an empty set; ids of invalid roles are rejected.
func RestoreRecord(orderID kernel.UUID, category Category, ids map[Role][]string) (*Record, error) {
	record, err := NewRecord(orderID, category)
	if err != nil {
		return nil, err
	}

	for role, roleIDs := range ids {
		if err := role.Validate(); err != nil {
			return nil, err
		}
		for _, id := range roleIDs {
			record.sets[role][id] = struct{}{}
		}
	}

	return record, nil
}

func emptySets() map[Role]map[string]struct{} {
	sets := make(map[Role]map[string]struct{}, len(Roles()))
	for _, role := range Roles() {
		sets[role] = make(map[string]struct{})
	}
	return sets
}

// Validate ensures the Record was properly constructed through a constructor.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// OrderID returns the order the selection belongs to.
func (r *Record) OrderID() kernel.UUID {
	return r.orderID
}

// Category returns the sub-selection category.
func (r *Record) Category() Category {
	return r.category
}

// IDs returns a sorted copy of the given role's selected row ids.
// Readable by every role.
func (r *Record) IDs(role Role) []string {
	set, ok := r.sets[role]
	if !ok {
		return nil
	}

	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IsSelected reports whether the given role has the row id selected.
func (r *Record) IsSelected(role Role, id string) bool {
	set, ok := r.sets[role]
	if !ok {
		return false
	}
	_, selected := set[id]
	return selected
}

// IsEmpty reports whether the given role has no rows selected.
func (r *Record) IsEmpty(role Role) bool {
	return len(r.sets[role]) == 0
}

// Toggle sets or clears one row id in the acting role's set. Only the acting
// role's own set is ever touched; an invalid acting role is rejected without
// changing any stored set.
func (r *Record) Toggle(acting Role, id string, selected bool) error {
	if err := acting.Validate(); err != nil {
		return ErrNotActingRole
	}

	if selected {
		r.sets[acting][id] = struct{}{}
	} else {
		delete(r.sets[acting], id)
	}
	return nil
}

// SelectAll adds every visible row id to the acting role's set. The scope is
// whatever rows are visible in the active sub-tab, not the whole order,
// because nesting artifacts present different id sets per tab.
func (r *Record) SelectAll(acting Role, visibleIDs []string) error {
	if err := acting.Validate(); err != nil {
		return ErrNotActingRole
	}

	for _, id := range visibleIDs {
		r.sets[acting][id] = struct{}{}
	}
	return nil
}

// ClearAll removes every visible row id from the acting role's set, scoped
// like SelectAll.
func (r *Record) ClearAll(acting Role, visibleIDs []string) error {
	if err := acting.Validate(); err != nil {
		return ErrNotActingRole
	}

	for _, id := range visibleIDs {
		delete(r.sets[acting], id)
	}
	return nil
}

// ReplaceRole replaces the acting role's whole set, the shape of an incoming
// save payload. Other roles' sets are untouched.
func (r *Record) ReplaceRole(acting Role, ids []string) error {
	if err := acting.Validate(); err != nil {
		return ErrNotActingRole
	}

	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	r.sets[acting] = set
	return nil
}
