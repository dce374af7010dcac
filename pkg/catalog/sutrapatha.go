package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Sutrapatha maps rule identifiers (e.g. "3.2.123") to rule text. The
// prakriya display uses it to print the wording of each rule an engine
// cites; lookups it cannot answer are not an error, the display just
// shows the bare identifier.
type Sutrapatha struct {
	texts map[string]string
}

// LoadSutrapatha reads a rule-text TSV (columns id, text; header row
// present). Later rows win on duplicate identifiers.
func LoadSutrapatha(r io.Reader) (*Sutrapatha, error) {
	s := &Sutrapatha{texts: make(map[string]string)}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		row := norm.NFC.String(scanner.Text())
		if strings.TrimSpace(row) == "" {
			continue
		}
		fields := strings.SplitN(row, "\t", 2)
		if fields[0] == "id" {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("sutrapatha line %d: want 2 columns", line)
		}
		s.texts[strings.TrimSpace(fields[0])] = strings.TrimSpace(fields[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading sutrapatha: %w", err)
	}
	if len(s.texts) == 0 {
		return nil, errors.New("sutrapatha has no entries")
	}
	return s, nil
}

// Text returns the wording of a rule, if known.
func (s *Sutrapatha) Text(id string) (string, bool) {
	text, ok := s.texts[id]
	return text, ok
}

// Len returns the number of rules loaded.
func (s *Sutrapatha) Len() int { return len(s.texts) }
