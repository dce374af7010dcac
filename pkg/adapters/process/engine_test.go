package process_test

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyakarana-tools/rupavali/pkg/adapters/process"
	"github.com/vyakarana-tools/rupavali/pkg/vyakarana"
)

// shEngine builds an engine around an inline sh script. The scripts read
// the request from stdin, so tests can branch on its contents.
func shEngine(t *testing.T, script string) *process.Engine {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test fixture needs sh")
	}
	return process.New("sh", process.WithArgs("-c", script))
}

func TestEngine_DeriveTinantas(t *testing.T) {
	engine := shEngine(t, `in=$(cat)
case "$in" in
*'"kind":"tinantas"'*) ;;
*) echo "wrong kind" >&2; exit 1 ;;
esac
case "$in" in
*'"lakara":"law"'*) printf '[{"text":"Bavati","steps":[{"rule":"3.4.78","result":"BU+tip"}]}]' ;;
*) printf '[]' ;;
esac`)

	derivations, err := engine.DeriveTinantas(context.Background(), vyakarana.TinantaArgs{
		Dhatu:   "01.0001",
		Lakara:  vyakarana.Lat,
		Prayoga: vyakarana.Kartari,
		Purusha: vyakarana.Prathama,
		Vacana:  vyakarana.Eka,
	})
	require.NoError(t, err)
	require.Len(t, derivations, 1)
	assert.Equal(t, "Bavati", derivations[0].Text)
	assert.Equal(t, "3.4.78", derivations[0].Steps[0].Rule)

	derivations, err = engine.DeriveTinantas(context.Background(), vyakarana.TinantaArgs{
		Dhatu:   "01.0001",
		Lakara:  vyakarana.Lit,
		Prayoga: vyakarana.Kartari,
		Purusha: vyakarana.Prathama,
		Vacana:  vyakarana.Eka,
	})
	require.NoError(t, err)
	assert.Empty(t, derivations)
}

func TestEngine_DeriveKrdantas(t *testing.T) {
	engine := shEngine(t, `in=$(cat)
case "$in" in
*'"kind":"krdantas"'*'"krt":"tumun"'*) printf '[{"text":"Bavitum"}]' ;;
*) echo "unexpected request: $in" >&2; exit 1 ;;
esac`)

	derivations, err := engine.DeriveKrdantas(context.Background(), vyakarana.KrdantaArgs{
		Dhatu: "01.0001",
		Krt:   vyakarana.KrtTumun,
	})
	require.NoError(t, err)
	require.Len(t, derivations, 1)
	assert.Equal(t, "Bavitum", derivations[0].Text)
}

func TestEngine_CommandFailure(t *testing.T) {
	engine := shEngine(t, `cat > /dev/null; echo "dhatupatha missing" >&2; exit 3`)

	_, err := engine.DeriveTinantas(context.Background(), vyakarana.TinantaArgs{Dhatu: "01.0001"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit status 3")
	assert.Contains(t, err.Error(), "dhatupatha missing")
}

func TestEngine_BadOutput(t *testing.T) {
	engine := shEngine(t, `cat > /dev/null; printf 'not json'`)

	_, err := engine.DeriveKrdantas(context.Background(), vyakarana.KrdantaArgs{
		Dhatu: "01.0001",
		Krt:   vyakarana.KrtKta,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding derive output")
}

func TestEngine_EmptyOutput(t *testing.T) {
	engine := shEngine(t, `cat > /dev/null`)

	derivations, err := engine.DeriveTinantas(context.Background(), vyakarana.TinantaArgs{Dhatu: "01.0001"})
	require.NoError(t, err)
	assert.Empty(t, derivations)
}

func TestEngine_ContextCancellation(t *testing.T) {
	engine := shEngine(t, `sleep 10`)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := engine.DeriveTinantas(ctx, vyakarana.TinantaArgs{Dhatu: "01.0001"})
	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second, "cancellation should kill the command")
}

func TestEngine_Init(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test fixture needs sh")
	}

	require.NoError(t, process.New("sh").Init(context.Background()))

	err := process.New("rupavali-no-such-engine").Init(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "derive command")
}
