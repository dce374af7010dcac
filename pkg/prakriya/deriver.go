// Package prakriya orchestrates derivation requests: it expands one user
// selection into the many engine calls behind a conjugation table or a
// krdanta listing, and reassembles the results in display order.
//
// The package holds no state and never caches engine output; the engine
// contract promises identical results for identical arguments, so views
// are rebuilt by re-deriving.
package prakriya

import (
	"context"
	"log/slog"
	"time"

	"github.com/vyakarana-tools/rupavali/internal/logging"
	"github.com/vyakarana-tools/rupavali/pkg/catalog"
	"github.com/vyakarana-tools/rupavali/pkg/ports"
	"github.com/vyakarana-tools/rupavali/pkg/vyakarana"
)

// Deriver fans user selections out into engine calls.
type Deriver struct {
	engine  ports.Engine
	logger  *slog.Logger
	metrics *Metrics
}

// Option configures a Deriver.
type Option func(*Deriver)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Deriver) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithMetrics attaches derivation counters and timings.
func WithMetrics(m *Metrics) Option {
	return func(d *Deriver) { d.metrics = m }
}

// New creates a Deriver over an engine.
func New(engine ports.Engine, opts ...Option) *Deriver {
	d := &Deriver{
		engine: engine,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Krdantas derives every affix of the given ordered groups for one dhatu.
// Without explicit groups it walks the three demo groups: nominal bases,
// participles, avyayas. One engine call per affix; outputs keep engine
// order and are not deduplicated.
func (d *Deriver) Krdantas(ctx context.Context, dhatu catalog.Dhatu, opts vyakarana.Options, groups ...[]vyakarana.Krt) ([]KrtForms, error) {
	if len(groups) == 0 {
		groups = [][]vyakarana.Krt{vyakarana.NominalKrts, vyakarana.ParticipleKrts, vyakarana.AvyayaKrts}
	}

	var out []KrtForms
	for _, group := range groups {
		for _, krt := range group {
			args := vyakarana.KrdantaArgs{
				Dhatu:    dhatu.Code,
				Krt:      krt,
				Sanadi:   opts.Sanadi,
				Upasarga: opts.Upasarga,
			}
			derivations, err := d.deriveKrdantas(ctx, args)
			if err != nil {
				return nil, err
			}

			forms := KrtForms{Krt: krt}
			for _, der := range derivations {
				forms.Choices = append(forms.Choices, Choice{
					Text: der.Text,
					Pada: vyakarana.Krdanta{
						Dhatu:    dhatu.Code,
						Text:     der.Text,
						Krt:      krt,
						Sanadi:   opts.Sanadi,
						Upasarga: opts.Upasarga,
					},
				})
			}
			out = append(out, forms)
		}
	}
	return out, nil
}

// Paradigm builds the nine-cell grid for one dhatu, lakara, and prayoga.
// Each cell is deduplicated by surface text, first occurrence winning. If
// any cell comes back empty the combination is judged underivable and the
// whole grid is discarded: the result is nil with no error.
func (d *Deriver) Paradigm(ctx context.Context, dhatu catalog.Dhatu, lakara vyakarana.Lakara, prayoga vyakarana.Prayoga, opts vyakarana.Options) (*Paradigm, error) {
	paradigm := &Paradigm{
		Lakara:  lakara,
		Prayoga: prayoga,
		Cells:   make([]Cell, 0, len(vyakarana.PurushaOrder)*len(vyakarana.VacanaOrder)),
	}

	for _, purusha := range vyakarana.PurushaOrder {
		for _, vacana := range vyakarana.VacanaOrder {
			args := vyakarana.TinantaArgs{
				Dhatu:    dhatu.Code,
				Lakara:   lakara,
				Prayoga:  prayoga,
				Purusha:  purusha,
				Vacana:   vacana,
				Pada:     opts.Pada,
				Sanadi:   opts.Sanadi,
				Upasarga: opts.Upasarga,
			}
			derivations, err := d.deriveTinantas(ctx, args)
			if err != nil {
				return nil, err
			}

			cell := Cell{Purusha: purusha, Vacana: vacana}
			seen := make(map[string]bool, len(derivations))
			for _, der := range derivations {
				if seen[der.Text] {
					continue
				}
				seen[der.Text] = true
				cell.Choices = append(cell.Choices, Choice{
					Text: der.Text,
					Pada: vyakarana.Tinanta{
						Dhatu:    dhatu.Code,
						Text:     der.Text,
						Lakara:   lakara,
						Prayoga:  prayoga,
						Purusha:  purusha,
						Vacana:   vacana,
						Pada:     opts.Pada,
						Sanadi:   opts.Sanadi,
						Upasarga: opts.Upasarga,
					},
				})
			}
			if len(cell.Choices) == 0 {
				d.logger.Debug("paradigm discarded",
					"dhatu", dhatu.Code,
					"lakara", lakara.String(),
					"prayoga", prayoga.String(),
					"purusha", purusha.String(),
					"vacana", vacana.String(),
				)
				return nil, nil
			}
			paradigm.Cells = append(paradigm.Cells, cell)
		}
	}
	return paradigm, nil
}

// Tinantas assembles the conjugation view: every paradigm lakara crossed
// with the selected prayoga, or with kartari and karmani when none is
// selected. Incomplete grids are dropped; lakaras whose every grid was
// dropped are omitted. Order follows the lakara and prayoga enumerations.
func (d *Deriver) Tinantas(ctx context.Context, dhatu catalog.Dhatu, opts vyakarana.Options) ([]LakaraTable, error) {
	prayogas := vyakarana.ParadigmPrayogas
	if opts.Prayoga != nil {
		prayogas = []vyakarana.Prayoga{*opts.Prayoga}
	}

	var out []LakaraTable
	for _, lakara := range vyakarana.ParadigmLakaras {
		table := LakaraTable{Lakara: lakara}
		for _, prayoga := range prayogas {
			paradigm, err := d.Paradigm(ctx, dhatu, lakara, prayoga, opts)
			if err != nil {
				return nil, err
			}
			if paradigm != nil {
				table.Paradigms = append(table.Paradigms, *paradigm)
			}
		}
		if len(table.Paradigms) > 0 {
			out = append(out, table)
		}
	}
	return out, nil
}

// Materialize re-derives the candidates for a descriptor and returns the
// derivation whose text equals the recorded surface text, or nil when no
// candidate matches anymore.
func (d *Deriver) Materialize(ctx context.Context, pada vyakarana.Pada) (*vyakarana.Derivation, error) {
	var (
		derivations []vyakarana.Derivation
		err         error
	)
	switch p := pada.(type) {
	case vyakarana.Tinanta:
		derivations, err = d.deriveTinantas(ctx, p.Args())
	case *vyakarana.Tinanta:
		if p == nil {
			return nil, nil
		}
		derivations, err = d.deriveTinantas(ctx, p.Args())
	case vyakarana.Krdanta:
		derivations, err = d.deriveKrdantas(ctx, p.Args())
	case *vyakarana.Krdanta:
		if p == nil {
			return nil, nil
		}
		derivations, err = d.deriveKrdantas(ctx, p.Args())
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	for _, der := range derivations {
		if der.Text == pada.Surface() {
			found := der
			return &found, nil
		}
	}
	return nil, nil
}

func (d *Deriver) deriveTinantas(ctx context.Context, args vyakarana.TinantaArgs) ([]vyakarana.Derivation, error) {
	start := time.Now()
	out, err := d.engine.DeriveTinantas(ctx, args)
	d.observe("tinanta", start, err)
	return out, err
}

func (d *Deriver) deriveKrdantas(ctx context.Context, args vyakarana.KrdantaArgs) ([]vyakarana.Derivation, error) {
	start := time.Now()
	out, err := d.engine.DeriveKrdantas(ctx, args)
	d.observe("krdanta", start, err)
	return out, err
}

func (d *Deriver) observe(kind string, start time.Time, err error) {
	if d.metrics == nil {
		return
	}
	d.metrics.observe(kind, time.Since(start), err)
}
