package ports

import (
	"context"

	"github.com/vyakarana-tools/rupavali/pkg/vyakarana"
)

// Engine defines the interface for derivation backends. An Engine is pure:
// the same args always yield the same derivations, in the same order, so
// callers are free to re-derive instead of caching.
//
// A nil or empty result with a nil error means the engine derives nothing
// for these args; errors are reserved for transport and load failures.
type Engine interface {
	// DeriveTinantas derives all conjugated forms for one cell of the
	// paradigm (dhatu x lakara x prayoga x purusha x vacana, plus optional
	// pada, sanadi, and upasarga constraints).
	DeriveTinantas(ctx context.Context, args vyakarana.TinantaArgs) ([]vyakarana.Derivation, error)

	// DeriveKrdantas derives all forms of one krt affix applied to a dhatu.
	DeriveKrdantas(ctx context.Context, args vyakarana.KrdantaArgs) ([]vyakarana.Derivation, error)
}

// Initializer is implemented by engines that need a one-time warmup (table
// load, process spawn, health probe). The startup gate runs Init once,
// concurrently with catalog loading, and aborts startup on error.
type Initializer interface {
	Init(ctx context.Context) error
}
