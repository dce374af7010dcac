// Package session holds the mutable selection state of one demo session
// and enforces its invariants: a picked form always belongs to the
// selected dhatu, and anything that invalidates a selection clears it in
// the same atomic step.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/vyakarana-tools/rupavali/internal/logging"
	"github.com/vyakarana-tools/rupavali/pkg/catalog"
	"github.com/vyakarana-tools/rupavali/pkg/prakriya"
	"github.com/vyakarana-tools/rupavali/pkg/vyakarana"
)

// Store is the single writer for session state. Every mutator runs under
// one lock and, when it changes anything, notifies each observer exactly
// once with the post-mutation snapshot, still under the lock. Observers
// must not call back into the Store.
type Store struct {
	mu        sync.Mutex
	state     State
	catalog   *catalog.Catalog
	deriver   *prakriya.Deriver
	logger    *slog.Logger
	observers []func(State)
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore creates a session over a loaded catalog and a deriver. The
// initial state shows the dhatu list in Devanagari with nothing selected.
func NewStore(cat *catalog.Catalog, deriver *prakriya.Deriver, opts ...Option) *Store {
	s := &Store{
		catalog: cat,
		deriver: deriver,
		logger:  logging.NewNop(),
		state: State{
			Tab:    vyakarana.TabDhatus,
			Script: vyakarana.SchemeDevanagari,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// OnChange registers an observer. Observers run synchronously inside the
// mutating call, in registration order.
func (s *Store) OnChange(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// apply runs fn under the lock; when fn reports a change, every observer
// is notified once with the new snapshot.
func (s *Store) apply(fn func(*State) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !fn(&s.state) {
		return
	}
	snapshot := s.state
	for _, obs := range s.observers {
		obs(snapshot)
	}
}

// SetDhatu selects a dhatu by catalog code and clears any picked form.
// An unknown code is a silent no-op.
func (s *Store) SetDhatu(code string) {
	dhatu, err := s.catalog.Get(code)
	if err != nil {
		s.logger.Debug("ignoring unknown dhatu", "code", code)
		return
	}
	s.apply(func(st *State) bool {
		st.Dhatu = &dhatu
		st.ActivePada = nil
		st.Display = nil
		return true
	})
}

// ClearDhatu clears the selected dhatu along with the picked form and all
// derivation options, as one transition.
func (s *Store) ClearDhatu() {
	s.apply(func(st *State) bool {
		st.ActivePada = nil
		st.Display = nil
		st.Options = vyakarana.Options{}
		st.Dhatu = nil
		return true
	})
}

// SetActivePada picks a generated form. The pick is ignored unless a
// dhatu is selected and the descriptor names its code. On success the
// form's derivation is materialized for display; a descriptor whose text
// no longer matches any candidate leaves the display empty. An engine
// failure leaves the state untouched and is returned.
func (s *Store) SetActivePada(ctx context.Context, pada vyakarana.Pada) error {
	if pada == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Dhatu == nil || s.state.Dhatu.Code != pada.DhatuCode() {
		s.logger.Debug("ignoring pada for inactive dhatu", "code", pada.DhatuCode())
		return nil
	}

	display, err := s.deriver.Materialize(ctx, pada)
	if err != nil {
		return fmt.Errorf("materializing pada: %w", err)
	}

	s.state.ActivePada = pada
	s.state.Display = display

	snapshot := s.state
	for _, obs := range s.observers {
		obs(snapshot)
	}
	return nil
}

// ClearActivePada unpicks the form, keeping the dhatu and options.
func (s *Store) ClearActivePada() {
	s.apply(func(st *State) bool {
		if st.ActivePada == nil && st.Display == nil {
			return false
		}
		st.ActivePada = nil
		st.Display = nil
		return true
	})
}

// SetTab switches the view. Switching clears the picked form; options and
// the selected dhatu survive. Unknown tabs and the current tab are no-ops.
func (s *Store) SetTab(tab vyakarana.Tab) {
	if !tab.Valid() {
		s.logger.Debug("ignoring unknown tab", "tab", string(tab))
		return
	}
	s.apply(func(st *State) bool {
		if st.Tab == tab {
			return false
		}
		st.Tab = tab
		st.ActivePada = nil
		st.Display = nil
		return true
	})
}

// SetPrayoga sets or clears the prayoga option.
func (s *Store) SetPrayoga(p *vyakarana.Prayoga) {
	if p != nil && !p.Valid() {
		return
	}
	s.apply(func(st *State) bool {
		if eqPtr(st.Options.Prayoga, p) {
			return false
		}
		st.Options.Prayoga = copyPtr(p)
		invalidateSelection(st)
		return true
	})
}

// SetPada sets or clears the dhatu-pada option.
func (s *Store) SetPada(p *vyakarana.DhatuPada) {
	if p != nil && !p.Valid() {
		return
	}
	s.apply(func(st *State) bool {
		if eqPtr(st.Options.Pada, p) {
			return false
		}
		st.Options.Pada = copyPtr(p)
		invalidateSelection(st)
		return true
	})
}

// SetSanadi sets or clears the sanadi option.
func (s *Store) SetSanadi(p *vyakarana.Sanadi) {
	if p != nil && !p.Valid() {
		return
	}
	s.apply(func(st *State) bool {
		if eqPtr(st.Options.Sanadi, p) {
			return false
		}
		st.Options.Sanadi = copyPtr(p)
		invalidateSelection(st)
		return true
	})
}

// SetUpasarga sets or clears the upasarga option. The value is free text;
// the engine decides what it accepts.
func (s *Store) SetUpasarga(upasarga string) {
	s.apply(func(st *State) bool {
		if st.Options.Upasarga == upasarga {
			return false
		}
		st.Options.Upasarga = upasarga
		invalidateSelection(st)
		return true
	})
}

// SetQuery updates the dhatu list filter. Session-local: it never touches
// the selection.
func (s *Store) SetQuery(query string) {
	s.apply(func(st *State) bool {
		if st.Query == query {
			return false
		}
		st.Query = query
		return true
	})
}

// SetScript changes the display script. Session-local.
func (s *Store) SetScript(script vyakarana.Scheme) {
	if !script.Valid() {
		return
	}
	s.apply(func(st *State) bool {
		if st.Script == script {
			return false
		}
		st.Script = script
		return true
	})
}

// invalidateSelection drops the picked form after an option change; a
// descriptor derived under the old options must not survive the flip.
func invalidateSelection(st *State) {
	st.ActivePada = nil
	st.Display = nil
}

func eqPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
