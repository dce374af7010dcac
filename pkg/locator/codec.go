// Package locator encodes the shareable part of a session into URL query
// parameters and replays such parameters onto a fresh session.
//
// Seven keys are persisted: tab, dhatu, pada, prayoga, sanadi, upasarga,
// and activePada. The filter query and display script are session-local
// and never leave the process. Restoration is forgiving: a value that
// cannot be parsed, or that the current catalog and engine cannot honor,
// is skipped and the remaining keys still apply.
package locator

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/vyakarana-tools/rupavali/internal/logging"
	"github.com/vyakarana-tools/rupavali/pkg/session"
	"github.com/vyakarana-tools/rupavali/pkg/vyakarana"
)

// Persisted parameter names.
const (
	KeyTab        = "tab"
	KeyDhatu      = "dhatu"
	KeyPada       = "pada"
	KeyPrayoga    = "prayoga"
	KeySanadi     = "sanadi"
	KeyUpasarga   = "upasarga"
	KeyActivePada = "activePada"
)

// Codec translates between session state and url.Values.
type Codec struct {
	logger *slog.Logger
}

// Option configures a Codec.
type Option func(*Codec)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Codec) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Codec.
func New(opts ...Option) *Codec {
	c := &Codec{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Encode renders the persisted fields of a snapshot. Unset fields are
// omitted; enums are written as decimal ordinals; the active pada as its
// JSON envelope.
func (c *Codec) Encode(state session.State) url.Values {
	values := url.Values{}
	values.Set(KeyTab, string(state.Tab))

	if state.Options.Prayoga != nil {
		values.Set(KeyPrayoga, strconv.Itoa(int(*state.Options.Prayoga)))
	}
	if state.Options.Pada != nil {
		values.Set(KeyPada, strconv.Itoa(int(*state.Options.Pada)))
	}
	if state.Options.Sanadi != nil {
		values.Set(KeySanadi, strconv.Itoa(int(*state.Options.Sanadi)))
	}
	if state.Options.Upasarga != "" {
		values.Set(KeyUpasarga, state.Options.Upasarga)
	}
	if state.Dhatu != nil {
		values.Set(KeyDhatu, state.Dhatu.Code)
	}
	if state.ActivePada != nil {
		if data, err := vyakarana.MarshalPada(state.ActivePada); err == nil {
			values.Set(KeyActivePada, string(data))
		} else {
			c.logger.Warn("skipping unencodable active pada", "error", err)
		}
	}
	return values
}

// EncodeString renders the snapshot as a canonical query string.
func (c *Codec) EncodeString(state session.State) string {
	return c.Encode(state).Encode()
}

// Apply replays persisted values onto a store in a fixed order: tab,
// then prayoga, pada, sanadi, upasarga, then the dhatu, then the active
// pada. Options must land before the dhatu and the dhatu before the pada;
// url.Values iteration order carries no meaning. Individual failures are
// skipped silently.
func (c *Codec) Apply(ctx context.Context, store *session.Store, values url.Values) {
	if tab := values.Get(KeyTab); tab != "" {
		store.SetTab(vyakarana.Tab(tab))
	}

	if p, ok := parseOrdinal(values.Get(KeyPrayoga), vyakarana.Prayoga.Valid); ok {
		store.SetPrayoga(p)
	}
	if p, ok := parseOrdinal(values.Get(KeyPada), vyakarana.DhatuPada.Valid); ok {
		store.SetPada(p)
	}
	if p, ok := parseOrdinal(values.Get(KeySanadi), vyakarana.Sanadi.Valid); ok {
		store.SetSanadi(p)
	}
	if upasarga := values.Get(KeyUpasarga); upasarga != "" {
		store.SetUpasarga(upasarga)
	}

	if code := values.Get(KeyDhatu); code != "" {
		store.SetDhatu(code)
	}

	if raw := values.Get(KeyActivePada); raw != "" {
		pada, err := vyakarana.UnmarshalPada([]byte(raw))
		if err != nil {
			c.logger.Debug("skipping unparseable active pada", "error", err)
			return
		}
		if err := store.SetActivePada(ctx, pada); err != nil {
			c.logger.Warn("skipping unrestorable active pada", "error", err)
		}
	}
}

// ApplyString parses a query string and replays it. A string the URL
// parser rejects restores nothing.
func (c *Codec) ApplyString(ctx context.Context, store *session.Store, raw string) {
	values, err := url.ParseQuery(raw)
	if err != nil {
		c.logger.Debug("skipping unparseable locator", "error", err)
		return
	}
	c.Apply(ctx, store, values)
}

// parseOrdinal reads a decimal enum ordinal, rejecting anything outside
// the enum's range.
func parseOrdinal[T ~int](s string, valid func(T) bool) (*T, bool) {
	if s == "" {
		return nil, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || !valid(T(n)) {
		return nil, false
	}
	v := T(n)
	return &v, true
}
