package vyakarana_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyakarana-tools/rupavali/pkg/vyakarana"
)

func TestLakara_Names(t *testing.T) {
	assert.Equal(t, "law", vyakarana.Lat.String())
	assert.Equal(t, "liw", vyakarana.Lit.String())
	assert.Equal(t, "viDiliN", vyakarana.VidhiLin.String())
	assert.Equal(t, "ASIrliN", vyakarana.AshirLin.String())
	assert.Equal(t, "lfN", vyakarana.Lrn.String())
	assert.Equal(t, "unknown", vyakarana.Lakara(99).String())
}

func TestLakara_ParadigmSetOmitsLet(t *testing.T) {
	assert.Len(t, vyakarana.LakaraOrder, 11)
	assert.Len(t, vyakarana.ParadigmLakaras, 10)
	assert.NotContains(t, vyakarana.ParadigmLakaras, vyakarana.Let)
	for _, l := range vyakarana.ParadigmLakaras {
		assert.True(t, l.Valid(), "paradigm lakara %d", l)
	}
}

func TestPrayoga_Names(t *testing.T) {
	assert.Equal(t, "kartari", vyakarana.Kartari.String())
	assert.Equal(t, "karmaRi", vyakarana.Karmani.String())
	assert.Equal(t, "BAve", vyakarana.Bhave.String())
	assert.Equal(t, []vyakarana.Prayoga{vyakarana.Kartari, vyakarana.Karmani}, vyakarana.ParadigmPrayogas)
}

func TestAxes_ValidRanges(t *testing.T) {
	for _, l := range vyakarana.LakaraOrder {
		assert.True(t, l.Valid())
	}
	for _, p := range vyakarana.PrayogaOrder {
		assert.True(t, p.Valid())
	}
	for _, p := range vyakarana.PurushaOrder {
		assert.True(t, p.Valid())
	}
	for _, v := range vyakarana.VacanaOrder {
		assert.True(t, v.Valid())
	}
	for _, p := range vyakarana.DhatuPadaOrder {
		assert.True(t, p.Valid())
	}
	for _, s := range vyakarana.SanadiOrder {
		assert.True(t, s.Valid())
	}
	for _, k := range vyakarana.KrtOrder {
		assert.True(t, k.Valid())
	}

	assert.False(t, vyakarana.Lakara(-1).Valid())
	assert.False(t, vyakarana.Lakara(11).Valid())
	assert.False(t, vyakarana.Prayoga(3).Valid())
	assert.False(t, vyakarana.Purusha(3).Valid())
	assert.False(t, vyakarana.Vacana(3).Valid())
	assert.False(t, vyakarana.DhatuPada(2).Valid())
	assert.False(t, vyakarana.Sanadi(4).Valid())
	assert.False(t, vyakarana.Krt(14).Valid())
}

func TestKrt_GroupsPartitionOrder(t *testing.T) {
	var joined []vyakarana.Krt
	joined = append(joined, vyakarana.NominalKrts...)
	joined = append(joined, vyakarana.ParticipleKrts...)
	joined = append(joined, vyakarana.AvyayaKrts...)
	assert.Equal(t, vyakarana.KrtOrder, joined)
}

func TestKrt_Names(t *testing.T) {
	assert.Equal(t, "GaY", vyakarana.KrtGaY.String())
	assert.Equal(t, "kta", vyakarana.KrtKta.String())
	assert.Equal(t, "ktvA", vyakarana.KrtKtvA.String())
	assert.Equal(t, "tumun", vyakarana.KrtTumun.String())
}

func TestParseScheme(t *testing.T) {
	for _, s := range vyakarana.SchemeOrder {
		got, err := vyakarana.ParseScheme(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := vyakarana.ParseScheme("itrans")
	assert.Error(t, err)
}

func TestParse_RoundTrips(t *testing.T) {
	for _, l := range vyakarana.LakaraOrder {
		got, err := vyakarana.ParseLakara(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}
	for _, k := range vyakarana.KrtOrder {
		got, err := vyakarana.ParseKrt(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := vyakarana.ParsePrayoga("karmaRi")
	require.NoError(t, err)
	assert.Equal(t, vyakarana.Karmani, got)

	_, err = vyakarana.ParseLakara("lat")
	assert.Error(t, err, "roman names are not SLP1 names")
	_, err = vyakarana.ParseKrt("")
	assert.Error(t, err)
}

func TestTab_Valid(t *testing.T) {
	for _, tab := range vyakarana.TabOrder {
		assert.True(t, tab.Valid())
	}
	assert.False(t, vyakarana.Tab("").Valid())
	assert.False(t, vyakarana.Tab("settings").Valid())
}
