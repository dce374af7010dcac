package rupavali

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/vyakarana-tools/rupavali/internal/data"
	"github.com/vyakarana-tools/rupavali/internal/lipi"
	"github.com/vyakarana-tools/rupavali/internal/logging"
	"github.com/vyakarana-tools/rupavali/pkg/adapters/fixture"
	"github.com/vyakarana-tools/rupavali/pkg/catalog"
	"github.com/vyakarana-tools/rupavali/pkg/ports"
	"github.com/vyakarana-tools/rupavali/pkg/prakriya"
	"github.com/vyakarana-tools/rupavali/pkg/session"
	"github.com/vyakarana-tools/rupavali/pkg/vyakarana"
)

// App is the high-level entry point for the rupavali library. It wires
// the dhatu catalog, rule texts, derivation engine, and deriver together.
// One App serves any number of sessions and all of the surfaces (HTTP,
// MCP, CLI, TUI).
type App struct {
	engine     ports.Engine
	translit   ports.Transliterator
	logger     *slog.Logger
	registerer prometheus.Registerer

	dhatupatha []byte
	sutrapatha []byte

	catalog *catalog.Catalog
	sutras  *catalog.Sutrapatha
	deriver *prakriya.Deriver
}

// Option defines a functional option for configuring the App.
type Option func(*App)

// WithEngine injects a derivation engine, replacing the default
// table-backed one.
func WithEngine(e ports.Engine) Option {
	return func(a *App) { a.engine = e }
}

// WithTransliterator replaces the built-in script converter.
func WithTransliterator(t ports.Transliterator) Option {
	return func(a *App) { a.translit = t }
}

// WithLogger sets a structured logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) { a.logger = logger }
}

// WithMetrics registers derivation metrics on the given registerer.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(a *App) { a.registerer = reg }
}

// WithDhatupatha replaces the embedded dhatupatha TSV.
func WithDhatupatha(source []byte) Option {
	return func(a *App) { a.dhatupatha = source }
}

// WithSutrapatha replaces the embedded sutrapatha TSV.
func WithSutrapatha(source []byte) Option {
	return func(a *App) { a.sutrapatha = source }
}

// New initializes an App. The catalog, the rule texts, and the engine
// load concurrently; New returns only when all three are ready, and any
// failure aborts startup. After New returns the App is immutable and
// safe for concurrent use.
func New(ctx context.Context, opts ...Option) (*App, error) {
	app := &App{}
	for _, opt := range opts {
		opt(app)
	}

	if app.engine == nil {
		app.engine = fixture.Default()
	}
	if app.translit == nil {
		app.translit = lipi.New()
	}
	if app.logger == nil {
		app.logger = logging.NewNop()
	}
	if app.dhatupatha == nil {
		app.dhatupatha = data.Dhatupatha
	}
	if app.sutrapatha == nil {
		app.sutrapatha = data.Sutrapatha
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cat, err := catalog.Load(bytes.NewReader(app.dhatupatha), catalog.WithTransliterator(app.translit))
		if err != nil {
			return fmt.Errorf("loading dhatupatha: %w", err)
		}
		app.catalog = cat
		return nil
	})
	g.Go(func() error {
		sutras, err := catalog.LoadSutrapatha(bytes.NewReader(app.sutrapatha))
		if err != nil {
			return fmt.Errorf("loading sutrapatha: %w", err)
		}
		app.sutras = sutras
		return nil
	})
	g.Go(func() error {
		init, ok := app.engine.(ports.Initializer)
		if !ok {
			return nil
		}
		if err := init.Init(ctx); err != nil {
			return fmt.Errorf("initializing engine: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	deriverOpts := []prakriya.Option{prakriya.WithLogger(app.logger)}
	if app.registerer != nil {
		deriverOpts = append(deriverOpts, prakriya.WithMetrics(prakriya.NewMetrics(app.registerer)))
	}
	app.deriver = prakriya.New(app.engine, deriverOpts...)

	app.logger.Info("rupavali ready",
		"dhatus", app.catalog.Len(),
		"sutras", app.sutras.Len(),
	)
	return app, nil
}

// Catalog returns the loaded dhatupatha.
func (a *App) Catalog() *catalog.Catalog { return a.catalog }

// Sutrapatha returns the loaded rule texts.
func (a *App) Sutrapatha() *catalog.Sutrapatha { return a.sutras }

// Deriver returns the derivation orchestrator.
func (a *App) Deriver() *prakriya.Deriver { return a.deriver }

// Transliterator returns the script converter.
func (a *App) Transliterator() ports.Transliterator { return a.translit }

// NewSession creates an independent interactive session over this App.
func (a *App) NewSession() *session.Store {
	return session.NewStore(a.catalog, a.deriver, session.WithLogger(a.logger))
}

// Dhatu looks up one catalog entry by code.
func (a *App) Dhatu(code string) (catalog.Dhatu, error) {
	return a.catalog.Get(code)
}

// SearchDhatus filters the catalog by a query in any supported script.
func (a *App) SearchDhatus(query string) []catalog.Dhatu {
	return a.catalog.Filter(query)
}

// TinantaTables derives every non-empty conjugation table for a dhatu.
func (a *App) TinantaTables(ctx context.Context, code string, opts vyakarana.Options) ([]prakriya.LakaraTable, error) {
	dhatu, err := a.catalog.Get(code)
	if err != nil {
		return nil, err
	}
	return a.deriver.Tinantas(ctx, dhatu, opts)
}

// KrdantaForms derives the demo krt affix groups for a dhatu.
func (a *App) KrdantaForms(ctx context.Context, code string, opts vyakarana.Options) ([]prakriya.KrtForms, error) {
	dhatu, err := a.catalog.Get(code)
	if err != nil {
		return nil, err
	}
	return a.deriver.Krdantas(ctx, dhatu, opts)
}

// Prakriya re-derives a selected form and returns its step history, or
// nil when the engine no longer produces the recorded text.
func (a *App) Prakriya(ctx context.Context, pada vyakarana.Pada) (*vyakarana.Derivation, error) {
	return a.deriver.Materialize(ctx, pada)
}

// Convert transliterates between supported schemes.
func (a *App) Convert(text string, from, to vyakarana.Scheme) string {
	return a.translit.Convert(text, from, to)
}
