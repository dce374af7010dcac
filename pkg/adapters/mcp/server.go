// Package mcp exposes the word-form generator to language-model agents
// over the Model Context Protocol. Tools accept grammatical options as
// SLP1 names and answer with the same JSON shapes the HTTP API serves,
// so a pada descriptor returned by one tool feeds straight into
// explain_pada.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/vyakarana-tools/rupavali"
	"github.com/vyakarana-tools/rupavali/internal/dto"
	"github.com/vyakarana-tools/rupavali/pkg/vyakarana"
)

// suggestionLimit caps the near-miss list on empty search results.
const suggestionLimit = 5

// SearchResponse lists catalog matches for a search_dhatus call.
type SearchResponse struct {
	Dhatus      []dto.Dhatu `json:"dhatus" jsonschema_description:"Dhatus matching the query"`
	Suggestions []dto.Dhatu `json:"suggestions,omitempty" jsonschema_description:"Near misses offered when nothing matched"`
}

// TinantaResponse carries the conjugation tables of one dhatu.
type TinantaResponse struct {
	Dhatu  dto.Dhatu         `json:"dhatu" jsonschema_description:"The resolved dhatupatha entry"`
	Tables []dto.LakaraTable `json:"tables" jsonschema_description:"One table of paradigms per lakara"`
}

// KrdantaResponse carries the krt derivations of one dhatu.
type KrdantaResponse struct {
	Dhatu dto.Dhatu      `json:"dhatu" jsonschema_description:"The resolved dhatupatha entry"`
	Forms []dto.KrtForms `json:"forms" jsonschema_description:"Derived forms grouped by krt affix"`
}

// Server wraps an App and exposes it as an MCP server.
type Server struct {
	app       *rupavali.App
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance over an App.
func NewServer(app *rupavali.App) *Server {
	s := &Server{
		app:       app,
		mcpServer: server.NewMCPServer("rupavali-mcp", rupavali.Version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: search_dhatus
	searchTool := mcp.NewTool("search_dhatus",
		mcp.WithDescription("Search the dhatupatha by code, root form, or meaning. An empty query lists every dhatu."),
		mcp.WithString("q", mcp.Description("Search text in any supported script (optional)")),
		mcp.WithOutputSchema[SearchResponse](),
	)
	s.mcpServer.AddTool(searchTool, mcp.NewStructuredToolHandler(s.handleSearchDhatus))

	// TOOL: derive_tinantas
	tinantaTool := mcp.NewTool("derive_tinantas",
		mcp.WithDescription("Derive the full conjugation tables for a dhatu, one paradigm per lakara and prayoga."),
		mcp.WithString("dhatu", mcp.Required(), mcp.Description("Dhatupatha code, e.g. 01.0001")),
		mcp.WithString("prayoga", mcp.Description("Restrict to one prayoga by SLP1 name: kartari, karmaRi, or BAve (optional)")),
		mcp.WithString("pada", mcp.Description("Restrict to one pada by SLP1 name: parasmEpada or Atmanepada (optional)")),
		mcp.WithString("sanadi", mcp.Description("Derive through a sanadi affix by SLP1 name: san, yaN, yaNluk, or Ric (optional)")),
		mcp.WithString("upasarga", mcp.Description("Prefix the dhatu with an upasarga in SLP1, e.g. pra (optional)")),
		mcp.WithOutputSchema[TinantaResponse](),
	)
	s.mcpServer.AddTool(tinantaTool, mcp.NewStructuredToolHandler(s.handleDeriveTinantas))

	// TOOL: derive_krdantas
	krdantaTool := mcp.NewTool("derive_krdantas",
		mcp.WithDescription("Derive the krt participle and infinitive forms for a dhatu, grouped by affix."),
		mcp.WithString("dhatu", mcp.Required(), mcp.Description("Dhatupatha code, e.g. 01.0001")),
		mcp.WithString("sanadi", mcp.Description("Derive through a sanadi affix by SLP1 name (optional)")),
		mcp.WithString("upasarga", mcp.Description("Prefix the dhatu with an upasarga in SLP1 (optional)")),
		mcp.WithOutputSchema[KrdantaResponse](),
	)
	s.mcpServer.AddTool(krdantaTool, mcp.NewStructuredToolHandler(s.handleDeriveKrdantas))

	// TOOL: explain_pada
	explainTool := mcp.NewTool("explain_pada",
		mcp.WithDescription("Explain how a form is derived, rule by rule. Takes the pada descriptor returned inside a derive result."),
		mcp.WithString("pada", mcp.Required(), mcp.Description("JSON pada descriptor, as returned in the pada field of a choice")),
		mcp.WithOutputSchema[dto.Prakriya](),
	)
	s.mcpServer.AddTool(explainTool, mcp.NewStructuredToolHandler(s.handleExplainPada))

	// TOOL: convert_text
	s.mcpServer.AddTool(mcp.NewTool("convert_text",
		mcp.WithDescription("Transliterate Sanskrit text between scripts."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The text to convert")),
		mcp.WithString("from", mcp.Required(), mcp.Description("Source scheme: slp1, hk, iast, or devanagari")),
		mcp.WithString("to", mcp.Required(), mcp.Description("Target scheme: slp1, hk, iast, or devanagari")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var a convertArgs
		if err := mapstructure.Decode(request.GetArguments(), &a); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("decoding arguments: %v", err)), nil
		}
		from, err := vyakarana.ParseScheme(a.From)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		to, err := vyakarana.ParseScheme(a.To)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(s.app.Convert(a.Text, from, to)), nil
	})
}

// Argument shapes for the structured tools.

type searchArgs struct {
	Query string `mapstructure:"q"`
}

type tinantaArgs struct {
	Dhatu    string `mapstructure:"dhatu"`
	Prayoga  string `mapstructure:"prayoga"`
	Pada     string `mapstructure:"pada"`
	Sanadi   string `mapstructure:"sanadi"`
	Upasarga string `mapstructure:"upasarga"`
}

type krdantaArgs struct {
	Dhatu    string `mapstructure:"dhatu"`
	Sanadi   string `mapstructure:"sanadi"`
	Upasarga string `mapstructure:"upasarga"`
}

type explainArgs struct {
	Pada string `mapstructure:"pada"`
}

type convertArgs struct {
	Text string `mapstructure:"text"`
	From string `mapstructure:"from"`
	To   string `mapstructure:"to"`
}

// parseOptions assembles derivation options from SLP1 axis names. Empty
// strings leave the axis unrestricted.
func parseOptions(prayoga, pada, sanadi, upasarga string) (vyakarana.Options, error) {
	var opts vyakarana.Options
	if prayoga != "" {
		p, err := vyakarana.ParsePrayoga(prayoga)
		if err != nil {
			return opts, err
		}
		opts.Prayoga = &p
	}
	if pada != "" {
		p, err := vyakarana.ParseDhatuPada(pada)
		if err != nil {
			return opts, err
		}
		opts.Pada = &p
	}
	if sanadi != "" {
		sn, err := vyakarana.ParseSanadi(sanadi)
		if err != nil {
			return opts, err
		}
		opts.Sanadi = &sn
	}
	opts.Upasarga = upasarga
	return opts, nil
}

// Handler methods for structured tools

func (s *Server) handleSearchDhatus(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SearchResponse, error) {
	var a searchArgs
	if err := mapstructure.Decode(args, &a); err != nil {
		return SearchResponse{}, fmt.Errorf("decoding arguments: %w", err)
	}

	matches := s.app.SearchDhatus(a.Query)
	resp := SearchResponse{Dhatus: dto.FromDhatus(matches)}
	if len(matches) == 0 && a.Query != "" {
		resp.Suggestions = dto.FromDhatus(s.app.Catalog().Suggest(a.Query, suggestionLimit))
	}
	return resp, nil
}

func (s *Server) handleDeriveTinantas(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (TinantaResponse, error) {
	var a tinantaArgs
	if err := mapstructure.Decode(args, &a); err != nil {
		return TinantaResponse{}, fmt.Errorf("decoding arguments: %w", err)
	}
	if a.Dhatu == "" {
		return TinantaResponse{}, fmt.Errorf("dhatu is required")
	}
	opts, err := parseOptions(a.Prayoga, a.Pada, a.Sanadi, a.Upasarga)
	if err != nil {
		return TinantaResponse{}, err
	}

	dhatu, err := s.app.Dhatu(a.Dhatu)
	if err != nil {
		return TinantaResponse{}, fmt.Errorf("dhatu %s: %w", a.Dhatu, err)
	}
	tables, err := s.app.TinantaTables(ctx, a.Dhatu, opts)
	if err != nil {
		return TinantaResponse{}, fmt.Errorf("deriving tinantas: %w", err)
	}

	return TinantaResponse{
		Dhatu:  dto.FromDhatu(dhatu),
		Tables: dto.FromLakaraTables(tables),
	}, nil
}

func (s *Server) handleDeriveKrdantas(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (KrdantaResponse, error) {
	var a krdantaArgs
	if err := mapstructure.Decode(args, &a); err != nil {
		return KrdantaResponse{}, fmt.Errorf("decoding arguments: %w", err)
	}
	if a.Dhatu == "" {
		return KrdantaResponse{}, fmt.Errorf("dhatu is required")
	}
	opts, err := parseOptions("", "", a.Sanadi, a.Upasarga)
	if err != nil {
		return KrdantaResponse{}, err
	}

	dhatu, err := s.app.Dhatu(a.Dhatu)
	if err != nil {
		return KrdantaResponse{}, fmt.Errorf("dhatu %s: %w", a.Dhatu, err)
	}
	forms, err := s.app.KrdantaForms(ctx, a.Dhatu, opts)
	if err != nil {
		return KrdantaResponse{}, fmt.Errorf("deriving krdantas: %w", err)
	}

	return KrdantaResponse{
		Dhatu: dto.FromDhatu(dhatu),
		Forms: dto.FromKrtForms(forms),
	}, nil
}

func (s *Server) handleExplainPada(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (dto.Prakriya, error) {
	var a explainArgs
	if err := mapstructure.Decode(args, &a); err != nil {
		return dto.Prakriya{}, fmt.Errorf("decoding arguments: %w", err)
	}

	pada, err := vyakarana.UnmarshalPada([]byte(a.Pada))
	if err != nil {
		return dto.Prakriya{}, fmt.Errorf("invalid pada descriptor: %w", err)
	}
	derivation, err := s.app.Prakriya(ctx, pada)
	if err != nil {
		return dto.Prakriya{}, fmt.Errorf("deriving prakriya: %w", err)
	}
	if derivation == nil {
		return dto.Prakriya{}, fmt.Errorf("form %q is not derivable with the current engine", pada.Surface())
	}

	return dto.FromDerivation(*derivation, s.app.Sutrapatha().Text), nil
}

func (s *Server) registerResources() {
	// EXPOSE: rupavali://dhatupatha
	s.mcpServer.AddResource(mcp.NewResource("rupavali://dhatupatha", "Dhatupatha Catalog",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(dto.FromDhatus(s.app.Catalog().All()))
		if err != nil {
			return nil, fmt.Errorf("encoding dhatupatha: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "rupavali://dhatupatha",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
