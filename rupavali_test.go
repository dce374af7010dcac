package rupavali_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyakarana-tools/rupavali"
	"github.com/vyakarana-tools/rupavali/pkg/catalog"
	"github.com/vyakarana-tools/rupavali/pkg/vyakarana"
)

func TestNew_Defaults(t *testing.T) {
	app, err := rupavali.New(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, app.Catalog().Len())
	assert.NotZero(t, app.Sutrapatha().Len())

	state := app.NewSession().Snapshot()
	assert.Equal(t, vyakarana.TabDhatus, state.Tab)
	assert.Equal(t, vyakarana.SchemeDevanagari, state.Script)
}

func TestNew_StartupFailures(t *testing.T) {
	ctx := context.Background()

	_, err := rupavali.New(ctx, rupavali.WithDhatupatha([]byte("code\tdhatu\tartha\n")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading dhatupatha")

	_, err = rupavali.New(ctx, rupavali.WithSutrapatha([]byte("id\ttext\n")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading sutrapatha")

	_, err = rupavali.New(ctx, rupavali.WithEngine(initFailEngine{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "initializing engine")
}

func TestApp_TinantaTables(t *testing.T) {
	ctx := context.Background()
	app, err := rupavali.New(ctx, rupavali.WithMetrics(prometheus.NewRegistry()))
	require.NoError(t, err)

	tables, err := app.TinantaTables(ctx, "01.0001", vyakarana.Options{})
	require.NoError(t, err)
	require.NotEmpty(t, tables)
	assert.Equal(t, vyakarana.Lat, tables[0].Lakara)

	_, err = app.TinantaTables(ctx, "99.9999", vyakarana.Options{})
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestApp_Prakriya(t *testing.T) {
	ctx := context.Background()
	app, err := rupavali.New(ctx)
	require.NoError(t, err)

	derivation, err := app.Prakriya(ctx, &vyakarana.Tinanta{
		Dhatu:   "01.0001",
		Text:    "Bavati",
		Lakara:  vyakarana.Lat,
		Prayoga: vyakarana.Kartari,
		Purusha: vyakarana.Prathama,
		Vacana:  vyakarana.Eka,
	})
	require.NoError(t, err)
	require.NotNil(t, derivation)
	require.NotEmpty(t, derivation.Steps)
	assert.Equal(t, "3.2.123", derivation.Steps[0].Rule)
}

func TestApp_SessionsAreIndependent(t *testing.T) {
	app, err := rupavali.New(context.Background())
	require.NoError(t, err)

	first := app.NewSession()
	second := app.NewSession()

	first.SetDhatu("01.0001")
	require.NotNil(t, first.Snapshot().Dhatu)
	assert.Nil(t, second.Snapshot().Dhatu)
}

type initFailEngine struct{}

func (initFailEngine) Init(context.Context) error {
	return errors.New("engine data missing")
}

func (initFailEngine) DeriveTinantas(context.Context, vyakarana.TinantaArgs) ([]vyakarana.Derivation, error) {
	return nil, nil
}

func (initFailEngine) DeriveKrdantas(context.Context, vyakarana.KrdantaArgs) ([]vyakarana.Derivation, error) {
	return nil, nil
}
