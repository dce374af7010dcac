package vyakarana

// Options are the cross-cutting modifiers a user can apply to derivation
// requests. Every field is independently optional; the zero value means
// "unmodified base".
type Options struct {
	// Prayoga restricts the paradigm table to one voice when set.
	Prayoga *Prayoga
	// Pada restricts conjugations to one subject-voice when set.
	Pada *DhatuPada
	// Sanadi inserts a sanādi affix into every derivation when set.
	Sanadi *Sanadi
	// Upasarga prefixes a preverb to every derivation when non-empty.
	Upasarga string
}

// TinantaArgs is one conjugated-form derivation request.
type TinantaArgs struct {
	// Dhatu is the catalog code of the root, e.g. "01.0001".
	Dhatu    string
	Lakara   Lakara
	Prayoga  Prayoga
	Purusha  Purusha
	Vacana   Vacana
	Pada     *DhatuPada
	Sanadi   *Sanadi
	Upasarga string
}

// KrdantaArgs is one derived-form (nominal/participle/indeclinable)
// derivation request.
type KrdantaArgs struct {
	Dhatu    string
	Krt      Krt
	Sanadi   *Sanadi
	Upasarga string
}

// Step is one rule application inside a derivation history. Rule is the
// rule identifier as the engine reports it (an Aṣṭādhyāyī sūtra number
// like "3.4.78" for pāṇinian engines); Result is the intermediate text
// after the rule fired.
type Step struct {
	Rule   string `json:"rule"`
	Result string `json:"result"`
}

// Derivation is the engine's literal output for one generated form: the
// surface text plus, when the engine logs them, the steps that produced
// it. Orchestration decisions (dedup, abort policy) look at Text only.
type Derivation struct {
	Text  string `json:"text"`
	Steps []Step `json:"steps,omitempty"`
}
