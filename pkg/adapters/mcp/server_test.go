package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyakarana-tools/rupavali"
	"github.com/vyakarana-tools/rupavali/pkg/vyakarana"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	app, err := rupavali.New(context.Background())
	require.NoError(t, err)
	return NewServer(app)
}

func TestHandleSearchDhatus(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.handleSearchDhatus(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"q": "gam"})
	require.NoError(t, err)
	require.Len(t, resp.Dhatus, 1)
	assert.Equal(t, "01.1137", resp.Dhatus[0].Code)
	assert.Empty(t, resp.Suggestions)

	resp, err = s.handleSearchDhatus(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"q": "bhuu"})
	require.NoError(t, err)
	assert.Empty(t, resp.Dhatus)
	require.NotEmpty(t, resp.Suggestions)
	assert.Equal(t, "01.0001", resp.Suggestions[0].Code)
}

func TestHandleDeriveTinantas(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.handleDeriveTinantas(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"dhatu":   "01.0001",
		"prayoga": "kartari",
	})
	require.NoError(t, err)
	assert.Equal(t, "01.0001", resp.Dhatu.Code)
	require.NotEmpty(t, resp.Tables)
	assert.Equal(t, "law", resp.Tables[0].Lakara)

	first := resp.Tables[0].Paradigms[0]
	assert.Equal(t, "kartari", first.Prayoga)
	require.NotEmpty(t, first.Cells[0].Choices)
	assert.Equal(t, "Bavati", first.Cells[0].Choices[0].Text)
	assert.NotEmpty(t, first.Cells[0].Choices[0].Pada)

	_, err = s.handleDeriveTinantas(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{})
	assert.ErrorContains(t, err, "dhatu is required")

	_, err = s.handleDeriveTinantas(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"dhatu":   "01.0001",
		"prayoga": "passive",
	})
	assert.Error(t, err)

	_, err = s.handleDeriveTinantas(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"dhatu": "99.9999",
	})
	assert.ErrorContains(t, err, "99.9999")
}

func TestHandleDeriveKrdantas(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.handleDeriveKrdantas(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"dhatu": "01.0001",
	})
	require.NoError(t, err)
	assert.Len(t, resp.Forms, len(vyakarana.KrtOrder))

	texts := map[string][]string{}
	for _, f := range resp.Forms {
		for _, c := range f.Choices {
			texts[f.Krt] = append(texts[f.Krt], c.Text)
		}
	}
	assert.Contains(t, texts["tumun"], "Bavitum")
	assert.Contains(t, texts["ktvA"], "BUtvA")
}

func TestHandleExplainPada(t *testing.T) {
	s := newTestServer(t)

	descriptor, err := vyakarana.MarshalPada(&vyakarana.Tinanta{
		Dhatu:   "01.0001",
		Text:    "Bavati",
		Lakara:  vyakarana.Lat,
		Prayoga: vyakarana.Kartari,
		Purusha: vyakarana.Prathama,
		Vacana:  vyakarana.Eka,
	})
	require.NoError(t, err)

	resp, err := s.handleExplainPada(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"pada": string(descriptor),
	})
	require.NoError(t, err)
	assert.Equal(t, "Bavati", resp.Text)
	require.NotEmpty(t, resp.Steps)
	assert.Equal(t, "3.2.123", resp.Steps[0].Rule)
	assert.NotEmpty(t, resp.Steps[0].Sutra)

	_, err = s.handleExplainPada(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"pada": "{not json",
	})
	assert.ErrorContains(t, err, "invalid pada descriptor")
}

func TestParseOptions(t *testing.T) {
	opts, err := parseOptions("karmaRi", "Atmanepada", "Ric", "pra")
	require.NoError(t, err)
	require.NotNil(t, opts.Prayoga)
	assert.Equal(t, vyakarana.Karmani, *opts.Prayoga)
	require.NotNil(t, opts.Pada)
	assert.Equal(t, vyakarana.Atmanepada, *opts.Pada)
	require.NotNil(t, opts.Sanadi)
	assert.Equal(t, vyakarana.Ric, *opts.Sanadi)
	assert.Equal(t, "pra", opts.Upasarga)

	opts, err = parseOptions("", "", "", "")
	require.NoError(t, err)
	assert.Nil(t, opts.Prayoga)
	assert.Nil(t, opts.Pada)
	assert.Nil(t, opts.Sanadi)

	_, err = parseOptions("", "", "causative", "")
	assert.Error(t, err)
}
