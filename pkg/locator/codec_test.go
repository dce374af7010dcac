package locator_test

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyakarana-tools/rupavali/pkg/catalog"
	"github.com/vyakarana-tools/rupavali/pkg/locator"
	"github.com/vyakarana-tools/rupavali/pkg/prakriya"
	"github.com/vyakarana-tools/rupavali/pkg/session"
	"github.com/vyakarana-tools/rupavali/pkg/vyakarana"
)

type gridEngine struct{}

func (gridEngine) DeriveTinantas(_ context.Context, args vyakarana.TinantaArgs) ([]vyakarana.Derivation, error) {
	if args.Dhatu != "01.0001" || args.Lakara != vyakarana.Lat {
		return nil, nil
	}
	if args.Purusha == vyakarana.Prathama && args.Vacana == vyakarana.Eka {
		return []vyakarana.Derivation{{Text: "Bavati"}}, nil
	}
	return nil, nil
}

func (gridEngine) DeriveKrdantas(_ context.Context, args vyakarana.KrdantaArgs) ([]vyakarana.Derivation, error) {
	if args.Dhatu == "01.0001" && args.Krt == vyakarana.KrtTumun {
		return []vyakarana.Derivation{{Text: "Bavitum"}}, nil
	}
	return nil, nil
}

func newStore(t *testing.T) *session.Store {
	t.Helper()
	cat, err := catalog.Load(strings.NewReader(
		"code\tdhatu\tartha\n01.0001\tBU\tsattAyAm\n01.1137\tgamx~\tgatO\n"))
	require.NoError(t, err)
	return session.NewStore(cat, prakriya.New(gridEngine{}))
}

func TestCodec_EncodeDefaults(t *testing.T) {
	s := newStore(t)
	c := locator.New()

	values := c.Encode(s.Snapshot())
	assert.Equal(t, "dhatus", values.Get(locator.KeyTab))
	assert.Empty(t, values.Get(locator.KeyDhatu))
	assert.Empty(t, values.Get(locator.KeyPrayoga))
	assert.Empty(t, values.Get(locator.KeyActivePada))
}

func TestCodec_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := locator.New()

	src := newStore(t)
	src.SetTab(vyakarana.TabTinantas)
	karmani := vyakarana.Karmani
	src.SetPrayoga(&karmani)
	atmane := vyakarana.Atmanepada
	src.SetPada(&atmane)
	src.SetUpasarga("pra")
	src.SetDhatu("01.0001")
	src.SetQuery("session local")
	encoded := c.EncodeString(src.Snapshot())

	dst := newStore(t)
	c.ApplyString(ctx, dst, encoded)

	got := dst.Snapshot()
	assert.Equal(t, vyakarana.TabTinantas, got.Tab)
	require.NotNil(t, got.Dhatu)
	assert.Equal(t, "01.0001", got.Dhatu.Code)
	require.NotNil(t, got.Options.Prayoga)
	assert.Equal(t, vyakarana.Karmani, *got.Options.Prayoga)
	require.NotNil(t, got.Options.Pada)
	assert.Equal(t, vyakarana.Atmanepada, *got.Options.Pada)
	assert.Nil(t, got.Options.Sanadi)
	assert.Equal(t, "pra", got.Options.Upasarga)
	assert.Empty(t, got.Query, "the filter query is not persisted")
}

func TestCodec_RoundTripWithActivePada(t *testing.T) {
	ctx := context.Background()
	c := locator.New()

	src := newStore(t)
	src.SetDhatu("01.0001")
	require.NoError(t, src.SetActivePada(ctx, vyakarana.Tinanta{
		Dhatu: "01.0001", Text: "Bavati",
		Lakara: vyakarana.Lat, Prayoga: vyakarana.Kartari,
		Purusha: vyakarana.Prathama, Vacana: vyakarana.Eka,
	}))

	dst := newStore(t)
	c.Apply(ctx, dst, c.Encode(src.Snapshot()))

	got := dst.Snapshot()
	require.NotNil(t, got.ActivePada)
	assert.Equal(t, "Bavati", got.ActivePada.Surface())
	require.NotNil(t, got.Display, "restoring a pada rematerializes its derivation")
	assert.Equal(t, "Bavati", got.Display.Text)
}

func TestCodec_EnumsEncodeAsOrdinals(t *testing.T) {
	c := locator.New()
	s := newStore(t)
	karmani := vyakarana.Karmani
	s.SetPrayoga(&karmani)

	values := c.Encode(s.Snapshot())
	assert.Equal(t, "1", values.Get(locator.KeyPrayoga))
}

func TestCodec_ApplySkipsBadValues(t *testing.T) {
	ctx := context.Background()
	c := locator.New()

	values := url.Values{}
	values.Set(locator.KeyTab, "krdantas")
	values.Set(locator.KeyPrayoga, "kartari") // not an ordinal
	values.Set(locator.KeySanadi, "99")       // out of range
	values.Set(locator.KeyDhatu, "01.0001")
	values.Set(locator.KeyActivePada, "{not json")

	s := newStore(t)
	c.Apply(ctx, s, values)

	got := s.Snapshot()
	assert.Equal(t, vyakarana.TabKrdantas, got.Tab)
	require.NotNil(t, got.Dhatu)
	assert.Nil(t, got.Options.Prayoga)
	assert.Nil(t, got.Options.Sanadi)
	assert.Nil(t, got.ActivePada)
}

func TestCodec_ApplySkipsPadaOfOtherDhatu(t *testing.T) {
	ctx := context.Background()
	c := locator.New()

	pada, err := vyakarana.MarshalPada(vyakarana.Tinanta{
		Dhatu: "01.1137", Text: "gacCati",
		Lakara: vyakarana.Lat, Prayoga: vyakarana.Kartari,
		Purusha: vyakarana.Prathama, Vacana: vyakarana.Eka,
	})
	require.NoError(t, err)

	values := url.Values{}
	values.Set(locator.KeyDhatu, "01.0001")
	values.Set(locator.KeyActivePada, string(pada))

	s := newStore(t)
	c.Apply(ctx, s, values)

	got := s.Snapshot()
	require.NotNil(t, got.Dhatu)
	assert.Equal(t, "01.0001", got.Dhatu.Code)
	assert.Nil(t, got.ActivePada)
}

func TestCodec_ApplyUnknownDhatuDropsDependents(t *testing.T) {
	ctx := context.Background()
	c := locator.New()

	pada, err := vyakarana.MarshalPada(vyakarana.Tinanta{
		Dhatu: "77.7777", Text: "x",
		Lakara: vyakarana.Lat, Prayoga: vyakarana.Kartari,
		Purusha: vyakarana.Prathama, Vacana: vyakarana.Eka,
	})
	require.NoError(t, err)

	values := url.Values{}
	values.Set(locator.KeyDhatu, "77.7777")
	values.Set(locator.KeyActivePada, string(pada))

	s := newStore(t)
	c.Apply(ctx, s, values)

	got := s.Snapshot()
	assert.Nil(t, got.Dhatu)
	assert.Nil(t, got.ActivePada)
}

func TestCodec_ApplyStringRejectsGarbageWholesale(t *testing.T) {
	ctx := context.Background()
	c := locator.New()
	s := newStore(t)

	c.ApplyString(ctx, s, "%zz=%zz")

	got := s.Snapshot()
	assert.Equal(t, vyakarana.TabDhatus, got.Tab)
	assert.Nil(t, got.Dhatu)
}

func TestCodec_EmptyValuesLeaveDefaults(t *testing.T) {
	ctx := context.Background()
	c := locator.New()
	s := newStore(t)

	c.Apply(ctx, s, url.Values{})

	got := s.Snapshot()
	assert.Equal(t, vyakarana.TabDhatus, got.Tab)
	assert.Nil(t, got.Dhatu)
	assert.Nil(t, got.ActivePada)
}
