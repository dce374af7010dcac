package ports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyakarana-tools/rupavali/pkg/vyakarana"
)

// RunEngineContract runs a suite of tests to verify that an Engine
// implementation adheres to the interface contract. The engine must know
// the standard dhatupatha entry 01.0001 (BU "to be").
func RunEngineContract(t *testing.T, engine Engine) {
	ctx := context.Background()

	bhavati := vyakarana.TinantaArgs{
		Dhatu:   "01.0001",
		Lakara:  vyakarana.Lat,
		Prayoga: vyakarana.Kartari,
		Purusha: vyakarana.Prathama,
		Vacana:  vyakarana.Eka,
	}

	t.Run("DeriveTinantas", func(t *testing.T) {
		derivations, err := engine.DeriveTinantas(ctx, bhavati)
		require.NoError(t, err)
		require.NotEmpty(t, derivations)

		texts := make([]string, 0, len(derivations))
		for _, d := range derivations {
			assert.NotEmpty(t, d.Text)
			texts = append(texts, d.Text)
		}
		assert.Contains(t, texts, "Bavati")
	})

	t.Run("DeriveKrdantas", func(t *testing.T) {
		derivations, err := engine.DeriveKrdantas(ctx, vyakarana.KrdantaArgs{
			Dhatu: "01.0001",
			Krt:   vyakarana.KrtTumun,
		})
		require.NoError(t, err)
		require.NotEmpty(t, derivations)
		assert.Equal(t, "Bavitum", derivations[0].Text)
	})

	t.Run("Deterministic", func(t *testing.T) {
		first, err := engine.DeriveTinantas(ctx, bhavati)
		require.NoError(t, err)
		second, err := engine.DeriveTinantas(ctx, bhavati)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Unknown dhatu derives nothing", func(t *testing.T) {
		derivations, err := engine.DeriveTinantas(ctx, vyakarana.TinantaArgs{
			Dhatu:   "99.9999",
			Lakara:  vyakarana.Lat,
			Prayoga: vyakarana.Kartari,
			Purusha: vyakarana.Prathama,
			Vacana:  vyakarana.Eka,
		})
		if err == nil {
			assert.Empty(t, derivations)
		}
	})
}
