package session

import (
	"github.com/vyakarana-tools/rupavali/pkg/catalog"
	"github.com/vyakarana-tools/rupavali/pkg/vyakarana"
)

// State is a snapshot of one browsing session: which tab is open, which
// dhatu is selected, which generated form (if any) the user has picked,
// and the derivation options in effect.
//
// Snapshots are values. Pointer fields are never mutated in place by the
// Store, only replaced, so a snapshot stays valid after later mutations.
type State struct {
	Tab        vyakarana.Tab
	Dhatu      *catalog.Dhatu
	ActivePada vyakarana.Pada
	Display    *vyakarana.Derivation
	Options    vyakarana.Options
	Query      string
	Script     vyakarana.Scheme
}

// Phase describes how far the selection has progressed.
type Phase int

const (
	// PhaseBrowsing: no dhatu selected.
	PhaseBrowsing Phase = iota
	// PhaseDhatuSelected: a dhatu is selected, no form picked yet.
	PhaseDhatuSelected
	// PhasePadaSelected: a dhatu and one of its forms are selected.
	PhasePadaSelected
)

// Phase derives the selection phase from the snapshot.
func (s State) Phase() Phase {
	switch {
	case s.Dhatu == nil:
		return PhaseBrowsing
	case s.ActivePada == nil:
		return PhaseDhatuSelected
	default:
		return PhasePadaSelected
	}
}
