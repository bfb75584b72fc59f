package pokeapi

import (
	"fmt"
	"strings"
)

type LookupMode int

const (
	PokemonData LookupMode = iota + 1
	Moveset
	Stats
	TypeStats
	TypeMoves
)

var Modes = []LookupMode{PokemonData, Moveset, Stats, TypeStats, TypeMoves}

const (
	pokemonResource = "pokemon"
	typeResource    = "type"
)

func (m LookupMode) String() string {
	switch m {
	case PokemonData:
		return "data"
	case Moveset:
		return "moveset"
	case Stats:
		return "stats"
	case TypeStats:
		return "type-stats"
	case TypeMoves:
		return "type-moves"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

func (m LookupMode) Valid() bool {
	return m >= PokemonData && m <= TypeMoves
}

// Resource is the PokeAPI collection the mode reads from.
func (m LookupMode) Resource() string {
	switch m {
	case TypeStats, TypeMoves:
		return typeResource
	}
	return pokemonResource
}

// ParseLookupMode accepts the mode names as well as the menu labels
// ("Type Stats", "type_moves"), ignoring case and separators.
func ParseLookupMode(s string) (LookupMode, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer(" ", "-", "_", "-").Replace(normalized)
	for _, m := range Modes {
		if m.String() == normalized {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown lookup mode %q", s)
}

func (m LookupMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid lookup mode %d", int(m))
	}
	return []byte(m.String()), nil
}

func (m *LookupMode) UnmarshalText(text []byte) error {
	parsed, err := ParseLookupMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
