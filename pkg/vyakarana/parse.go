package vyakarana

import "fmt"

// The Parse functions resolve enums from their canonical SLP1 names, the
// spelling used in data files, tool arguments, and command-line flags.

// ParseLakara resolves a lakāra from its SLP1 name (e.g. "law").
func ParseLakara(name string) (Lakara, error) {
	for i, n := range lakaraNames {
		if n == name {
			return Lakara(i), nil
		}
	}
	return 0, fmt.Errorf("unknown lakara %q", name)
}

// ParsePrayoga resolves a prayoga from its SLP1 name (e.g. "kartari").
func ParsePrayoga(name string) (Prayoga, error) {
	for i, n := range prayogaNames {
		if n == name {
			return Prayoga(i), nil
		}
	}
	return 0, fmt.Errorf("unknown prayoga %q", name)
}

// ParsePurusha resolves a purusha from its SLP1 name (e.g. "praTama").
func ParsePurusha(name string) (Purusha, error) {
	for i, n := range purushaNames {
		if n == name {
			return Purusha(i), nil
		}
	}
	return 0, fmt.Errorf("unknown purusha %q", name)
}

// ParseVacana resolves a vacana from its SLP1 name (e.g. "eka").
func ParseVacana(name string) (Vacana, error) {
	for i, n := range vacanaNames {
		if n == name {
			return Vacana(i), nil
		}
	}
	return 0, fmt.Errorf("unknown vacana %q", name)
}

// ParseDhatuPada resolves a pada from its SLP1 name (e.g. "parasmEpada").
func ParseDhatuPada(name string) (DhatuPada, error) {
	for i, n := range dhatuPadaNames {
		if n == name {
			return DhatuPada(i), nil
		}
	}
	return 0, fmt.Errorf("unknown pada %q", name)
}

// ParseSanadi resolves a sanādi affix from its SLP1 name (e.g. "Ric").
func ParseSanadi(name string) (Sanadi, error) {
	for i, n := range sanadiNames {
		if n == name {
			return Sanadi(i), nil
		}
	}
	return 0, fmt.Errorf("unknown sanadi %q", name)
}

// ParseKrt resolves a kṛt affix from its SLP1 name (e.g. "ktvA").
func ParseKrt(name string) (Krt, error) {
	for i, n := range krtNames {
		if n == name {
			return Krt(i), nil
		}
	}
	return 0, fmt.Errorf("unknown krt %q", name)
}
