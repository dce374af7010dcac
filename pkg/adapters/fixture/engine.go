// Package fixture provides a table-backed derivation engine. It serves
// forms out of a TSV shipped with the binary, which keeps the demo and
// the test suite fully offline.
//
// The shipped tables do not record dhatu-pada, so the pada constraint of
// a request is ignored; requests carrying a sanadi or upasarga the tables
// do not list derive nothing.
package fixture

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vyakarana-tools/rupavali/internal/data"
	"github.com/vyakarana-tools/rupavali/pkg/vyakarana"
)

type tinantaKey struct {
	code     string
	lakara   vyakarana.Lakara
	prayoga  vyakarana.Prayoga
	purusha  vyakarana.Purusha
	vacana   vyakarana.Vacana
	sanadi   string
	upasarga string
}

type krdantaKey struct {
	code     string
	krt      vyakarana.Krt
	sanadi   string
	upasarga string
}

// Engine is a ports.Engine over fixed form tables.
type Engine struct {
	source []byte

	once     sync.Once
	loadErr  error
	tinantas map[tinantaKey][]vyakarana.Derivation
	krdantas map[krdantaKey][]vyakarana.Derivation
}

// New creates an engine over a forms TSV. The table is parsed on Init or
// on first use, whichever comes first.
func New(source []byte) *Engine {
	return &Engine{source: source}
}

// Default returns an engine over the embedded demo tables.
func Default() *Engine {
	return New(data.Forms)
}

// Init parses the tables. Safe to call more than once.
func (e *Engine) Init(context.Context) error {
	e.once.Do(func() { e.loadErr = e.load() })
	return e.loadErr
}

func (e *Engine) load() error {
	e.tinantas = make(map[tinantaKey][]vyakarana.Derivation)
	e.krdantas = make(map[krdantaKey][]vyakarana.Derivation)

	scanner := bufio.NewScanner(bytes.NewReader(e.source))
	line := 0
	for scanner.Scan() {
		line++
		row := scanner.Text()
		if strings.TrimSpace(row) == "" || strings.HasPrefix(row, "#") {
			continue
		}

		fields := strings.Split(row, "\t")
		var err error
		switch fields[0] {
		case "tinanta":
			err = e.loadTinanta(fields)
		case "krdanta":
			err = e.loadKrdanta(fields)
		default:
			err = fmt.Errorf("unknown row kind %q", fields[0])
		}
		if err != nil {
			return fmt.Errorf("forms line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading forms: %w", err)
	}
	return nil
}

func (e *Engine) loadTinanta(fields []string) error {
	if len(fields) < 7 {
		return fmt.Errorf("want at least 7 columns, got %d", len(fields))
	}
	lakara, err := vyakarana.ParseLakara(fields[2])
	if err != nil {
		return err
	}
	prayoga, err := vyakarana.ParsePrayoga(fields[3])
	if err != nil {
		return err
	}
	purusha, err := vyakarana.ParsePurusha(fields[4])
	if err != nil {
		return err
	}
	vacana, err := vyakarana.ParseVacana(fields[5])
	if err != nil {
		return err
	}
	der := vyakarana.Derivation{Text: fields[6]}
	if len(fields) > 7 && fields[7] != "" {
		if der.Steps, err = parseSteps(fields[7]); err != nil {
			return err
		}
	}

	key := tinantaKey{
		code:    fields[1],
		lakara:  lakara,
		prayoga: prayoga,
		purusha: purusha,
		vacana:  vacana,
	}
	e.tinantas[key] = append(e.tinantas[key], der)
	return nil
}

func (e *Engine) loadKrdanta(fields []string) error {
	if len(fields) < 4 {
		return fmt.Errorf("want at least 4 columns, got %d", len(fields))
	}
	krt, err := vyakarana.ParseKrt(fields[2])
	if err != nil {
		return err
	}
	der := vyakarana.Derivation{Text: fields[3]}
	if len(fields) > 4 && fields[4] != "" {
		if der.Steps, err = parseSteps(fields[4]); err != nil {
			return err
		}
	}

	key := krdantaKey{code: fields[1], krt: krt}
	e.krdantas[key] = append(e.krdantas[key], der)
	return nil
}

// parseSteps decodes "rule=result;rule=result".
func parseSteps(s string) ([]vyakarana.Step, error) {
	parts := strings.Split(s, ";")
	steps := make([]vyakarana.Step, 0, len(parts))
	for _, part := range parts {
		rule, result, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("malformed step %q", part)
		}
		steps = append(steps, vyakarana.Step{Rule: rule, Result: result})
	}
	return steps, nil
}

// DeriveTinantas returns the recorded forms for one paradigm cell.
func (e *Engine) DeriveTinantas(ctx context.Context, args vyakarana.TinantaArgs) ([]vyakarana.Derivation, error) {
	if err := e.Init(ctx); err != nil {
		return nil, err
	}
	key := tinantaKey{
		code:     args.Dhatu,
		lakara:   args.Lakara,
		prayoga:  args.Prayoga,
		purusha:  args.Purusha,
		vacana:   args.Vacana,
		sanadi:   sanadiName(args.Sanadi),
		upasarga: args.Upasarga,
	}
	return slices.Clone(e.tinantas[key]), nil
}

// DeriveKrdantas returns the recorded forms for one krt affix.
func (e *Engine) DeriveKrdantas(ctx context.Context, args vyakarana.KrdantaArgs) ([]vyakarana.Derivation, error) {
	if err := e.Init(ctx); err != nil {
		return nil, err
	}
	key := krdantaKey{
		code:     args.Dhatu,
		krt:      args.Krt,
		sanadi:   sanadiName(args.Sanadi),
		upasarga: args.Upasarga,
	}
	return slices.Clone(e.krdantas[key]), nil
}

func sanadiName(s *vyakarana.Sanadi) string {
	if s == nil {
		return ""
	}
	return s.String()
}
