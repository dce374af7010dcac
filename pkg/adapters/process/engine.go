// Package process implements the derivation engine port by shelling out
// to a local derivation command, one invocation per request.
//
// The command receives a single JSON request object on stdin and must
// write a JSON array of derivations to stdout. A "kind" field tells the
// command which derivation family is being asked for; axis values travel
// as SLP1 names. A non-zero exit fails the request with stderr attached.
package process

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/vyakarana-tools/rupavali/pkg/vyakarana"
)

// request is the stdin envelope. Tinanta and krdanta requests share it;
// fields that do not apply to the kind stay empty.
type request struct {
	Kind     string `json:"kind"`
	Dhatu    string `json:"dhatu"`
	Lakara   string `json:"lakara,omitempty"`
	Prayoga  string `json:"prayoga,omitempty"`
	Purusha  string `json:"purusha,omitempty"`
	Vacana   string `json:"vacana,omitempty"`
	Pada     string `json:"pada,omitempty"`
	Krt      string `json:"krt,omitempty"`
	Sanadi   string `json:"sanadi,omitempty"`
	Upasarga string `json:"upasarga,omitempty"`
}

// Engine is a ports.Engine that runs an external derivation command.
type Engine struct {
	command string
	args    []string
	dir     string
	env     []string
}

// Option configures the engine.
type Option func(*Engine)

// WithArgs sets the fixed arguments passed on every invocation.
func WithArgs(args ...string) Option {
	return func(e *Engine) { e.args = args }
}

// WithDir sets the working directory for the command.
func WithDir(dir string) Option {
	return func(e *Engine) { e.dir = dir }
}

// WithEnv appends KEY=VALUE entries to the command environment.
func WithEnv(env ...string) Option {
	return func(e *Engine) { e.env = env }
}

// New creates an engine around the given command.
func New(command string, opts ...Option) *Engine {
	e := &Engine{command: command}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Init checks that the command resolves to an executable, so a typo in
// the configuration fails at startup rather than on the first request.
func (e *Engine) Init(context.Context) error {
	if _, err := exec.LookPath(e.command); err != nil {
		return fmt.Errorf("derive command: %w", err)
	}
	return nil
}

// DeriveTinantas runs the command for one paradigm cell.
func (e *Engine) DeriveTinantas(ctx context.Context, args vyakarana.TinantaArgs) ([]vyakarana.Derivation, error) {
	req := request{
		Kind:     "tinantas",
		Dhatu:    args.Dhatu,
		Lakara:   args.Lakara.String(),
		Prayoga:  args.Prayoga.String(),
		Purusha:  args.Purusha.String(),
		Vacana:   args.Vacana.String(),
		Upasarga: args.Upasarga,
	}
	if args.Pada != nil {
		req.Pada = args.Pada.String()
	}
	if args.Sanadi != nil {
		req.Sanadi = args.Sanadi.String()
	}
	return e.derive(ctx, req)
}

// DeriveKrdantas runs the command for one krt affix.
func (e *Engine) DeriveKrdantas(ctx context.Context, args vyakarana.KrdantaArgs) ([]vyakarana.Derivation, error) {
	req := request{
		Kind:     "krdantas",
		Dhatu:    args.Dhatu,
		Krt:      args.Krt.String(),
		Upasarga: args.Upasarga,
	}
	if args.Sanadi != nil {
		req.Sanadi = args.Sanadi.String()
	}
	return e.derive(ctx, req)
}

func (e *Engine) derive(ctx context.Context, req request) ([]vyakarana.Derivation, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding derive request: %w", err)
	}

	cmd := exec.CommandContext(ctx, e.command, e.args...)
	// Children inheriting the stdio pipes can hold Wait open past the
	// kill; WaitDelay closes the pipes and lets Run return.
	cmd.WaitDelay = time.Second
	cmd.Dir = e.dir
	if len(e.env) > 0 {
		cmd.Env = append(cmd.Environ(), e.env...)
	}
	cmd.Stdin = bytes.NewReader(body)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if detail := strings.TrimSpace(stderr.String()); detail != "" {
			return nil, fmt.Errorf("derive command: %w: %s", err, detail)
		}
		return nil, fmt.Errorf("derive command: %w", err)
	}

	out := strings.TrimSpace(stdout.String())
	if out == "" {
		return nil, nil
	}
	var derivations []vyakarana.Derivation
	if err := json.Unmarshal([]byte(out), &derivations); err != nil {
		return nil, fmt.Errorf("decoding derive output: %w", err)
	}
	return derivations, nil
}
