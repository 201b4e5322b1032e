package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoOwners       = errors.New("at least one owner is required")
	ErrDuplicateOwner = errors.New("duplicate owner")
	ErrReservedOwner  = errors.New("owner name is reserved")
)

// Owner is one co-owner, identified by name.
type Owner string

// SharedPool marks an expense paid from the shared pool rather than by
// a single owner.
const SharedPool Owner = "Shared"

// OwnerSet is the fixed, ordered set of owners. The order is the enumeration
// order used for tie-breaks and output ordering.
type OwnerSet struct {
	owners []Owner
	index  map[Owner]int
}

// NewOwnerSet builds an owner set from names, keeping their order.
// Names are trimmed; empty names, duplicates and the shared-pool sentinel are rejected.
func NewOwnerSet(names ...string) (OwnerSet, error) {
	if len(names) == 0 {
		return OwnerSet{}, ErrNoOwners
	}

	set := OwnerSet{
		owners: make([]Owner, 0, len(names)),
		index:  make(map[Owner]int, len(names)),
	}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return OwnerSet{}, fmt.Errorf("owner name cannot be empty")
		}
		o := Owner(name)
		if o == SharedPool {
			return OwnerSet{}, fmt.Errorf("%w: %s", ErrReservedOwner, name)
		}
		if _, exists := set.index[o]; exists {
			return OwnerSet{}, fmt.Errorf("%w: %s", ErrDuplicateOwner, name)
		}
		set.index[o] = len(set.owners)
		set.owners = append(set.owners, o)
	}
	return set, nil
}

// MustOwnerSet is like NewOwnerSet but panics on error. Intended for tests
// and static defaults.
func MustOwnerSet(names ...string) OwnerSet {
	set, err := NewOwnerSet(names...)
	if err != nil {
		panic(err)
	}
	return set
}

// Len returns the number of owners.
func (s OwnerSet) Len() int { return len(s.owners) }

// List returns a copy of the owners in enumeration order.
func (s OwnerSet) List() []Owner {
	out := make([]Owner, len(s.owners))
	copy(out, s.owners)
	return out
}

// First returns the canonical first owner, or "" for an empty set.
func (s OwnerSet) First() Owner {
	if len(s.owners) == 0 {
		return ""
	}
	return s.owners[0]
}

// Contains reports whether o is a member of the set.
func (s OwnerSet) Contains(o Owner) bool {
	_, ok := s.index[o]
	return ok
}

// Index returns the enumeration position of o, or -1.
func (s OwnerSet) Index(o Owner) int {
	if i, ok := s.index[o]; ok {
		return i
	}
	return -1
}

// Strings returns the owner names in enumeration order.
func (s OwnerSet) Strings() []string {
	out := make([]string, len(s.owners))
	for i, o := range s.owners {
		out[i] = string(o)
	}
	return out
}
