package vyakarana

import (
	"encoding/json"
	"fmt"
)

// Pada is one user-selectable generated form: either a conjugated verb
// (Tinanta) or a derived nominal/participle/indeclinable (Krdanta). A Pada
// carries every parameter needed to re-run its derivation plus the surface
// text observed when it was selected, so a restored session can re-locate
// the exact form among the engine's candidates.
//
// The type is a sealed sum: the only implementations are Tinanta and
// Krdanta, and consumers dispatch with a type switch. Value receivers
// admit pointers to either variant as well; dispatch sites treat those
// as their value forms.
type Pada interface {
	// DhatuCode returns the catalog code of the owning dhatu.
	DhatuCode() string
	// Surface returns the surface text recorded at selection time.
	Surface() string

	isPada()
}

// Tinanta describes one conjugated form.
type Tinanta struct {
	Dhatu    string     `json:"dhatu"`
	Text     string     `json:"text"`
	Lakara   Lakara     `json:"lakara"`
	Prayoga  Prayoga    `json:"prayoga"`
	Purusha  Purusha    `json:"purusha"`
	Vacana   Vacana     `json:"vacana"`
	Pada     *DhatuPada `json:"pada,omitempty"`
	Sanadi   *Sanadi    `json:"sanadi,omitempty"`
	Upasarga string     `json:"upasarga,omitempty"`
}

// DhatuCode returns the catalog code of the owning dhatu.
func (t Tinanta) DhatuCode() string { return t.Dhatu }

// Surface returns the surface text recorded at selection time.
func (t Tinanta) Surface() string { return t.Text }

func (Tinanta) isPada() {}

// Args returns the engine request that reproduces this form's candidates.
func (t Tinanta) Args() TinantaArgs {
	return TinantaArgs{
		Dhatu:    t.Dhatu,
		Lakara:   t.Lakara,
		Prayoga:  t.Prayoga,
		Purusha:  t.Purusha,
		Vacana:   t.Vacana,
		Pada:     t.Pada,
		Sanadi:   t.Sanadi,
		Upasarga: t.Upasarga,
	}
}

// Krdanta describes one derived form.
type Krdanta struct {
	Dhatu    string  `json:"dhatu"`
	Text     string  `json:"text"`
	Krt      Krt     `json:"krt"`
	Sanadi   *Sanadi `json:"sanadi,omitempty"`
	Upasarga string  `json:"upasarga,omitempty"`
}

// DhatuCode returns the catalog code of the owning dhatu.
func (k Krdanta) DhatuCode() string { return k.Dhatu }

// Surface returns the surface text recorded at selection time.
func (k Krdanta) Surface() string { return k.Text }

func (Krdanta) isPada() {}

// Args returns the engine request that reproduces this form's candidates.
func (k Krdanta) Args() KrdantaArgs {
	return KrdantaArgs{Dhatu: k.Dhatu, Krt: k.Krt, Sanadi: k.Sanadi, Upasarga: k.Upasarga}
}

// Wire names of the two Pada variants.
const (
	padaKindTinanta = "tinanta"
	padaKindKrdanta = "krdanta"
)

type padaEnvelope struct {
	Kind string `json:"type"`
	Tinanta
	Krt *Krt `json:"krt,omitempty"`
}

// MarshalPada encodes a Pada as its JSON envelope: the variant's fields
// plus a "type" discriminator. Pointer-held variants encode the same as
// their value forms.
func MarshalPada(p Pada) ([]byte, error) {
	switch v := p.(type) {
	case Tinanta:
		return json.Marshal(struct {
			Kind string `json:"type"`
			Tinanta
		}{padaKindTinanta, v})
	case *Tinanta:
		if v == nil {
			return nil, fmt.Errorf("pada: cannot marshal nil %T", p)
		}
		return MarshalPada(*v)
	case Krdanta:
		return json.Marshal(struct {
			Kind string `json:"type"`
			Krdanta
		}{padaKindKrdanta, v})
	case *Krdanta:
		if v == nil {
			return nil, fmt.Errorf("pada: cannot marshal nil %T", p)
		}
		return MarshalPada(*v)
	default:
		return nil, fmt.Errorf("pada: cannot marshal %T", p)
	}
}

// UnmarshalPada decodes a JSON envelope produced by MarshalPada. Unknown
// discriminators, missing dhatu codes, and out-of-range enum values are
// errors; callers restoring persisted state treat any error as "absent".
func UnmarshalPada(data []byte) (Pada, error) {
	var env padaEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("pada: %w", err)
	}
	if env.Dhatu == "" {
		return nil, fmt.Errorf("pada: missing dhatu code")
	}
	if env.Pada != nil && !env.Pada.Valid() {
		return nil, fmt.Errorf("pada: dhatu-pada out of range")
	}
	if env.Sanadi != nil && !env.Sanadi.Valid() {
		return nil, fmt.Errorf("pada: sanadi out of range")
	}

	switch env.Kind {
	case padaKindTinanta:
		t := env.Tinanta
		if !t.Lakara.Valid() || !t.Prayoga.Valid() || !t.Purusha.Valid() || !t.Vacana.Valid() {
			return nil, fmt.Errorf("pada: tinanta axis out of range")
		}
		return t, nil
	case padaKindKrdanta:
		if env.Krt == nil || !env.Krt.Valid() {
			return nil, fmt.Errorf("pada: krt out of range")
		}
		return Krdanta{
			Dhatu:    env.Dhatu,
			Text:     env.Text,
			Krt:      *env.Krt,
			Sanadi:   env.Sanadi,
			Upasarga: env.Upasarga,
		}, nil
	default:
		return nil, fmt.Errorf("pada: unknown type %q", env.Kind)
	}
}
