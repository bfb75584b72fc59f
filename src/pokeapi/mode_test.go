package pokeapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLookupMode(t *testing.T) {
	tests := []struct {
		input string
		want  LookupMode
	}{
		{"data", PokemonData},
		{"Data", PokemonData},
		{"moveset", Moveset},
		{" Stats ", Stats},
		{"Type Stats", TypeStats},
		{"type_moves", TypeMoves},
		{"TYPE-MOVES", TypeMoves},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLookupMode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLookupMode_Unknown(t *testing.T) {
	_, err := ParseLookupMode("evolution")
	assert.Error(t, err)
}

func TestLookupMode_Resource(t *testing.T) {
	assert.Equal(t, "pokemon", PokemonData.Resource())
	assert.Equal(t, "pokemon", Moveset.Resource())
	assert.Equal(t, "pokemon", Stats.Resource())
	assert.Equal(t, "type", TypeStats.Resource())
	assert.Equal(t, "type", TypeMoves.Resource())
}

func TestLookupMode_TextRoundTrip(t *testing.T) {
	for _, m := range Modes {
		text, err := m.MarshalText()
		require.NoError(t, err)
		var parsed LookupMode
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, m, parsed)
	}
	_, err := LookupMode(0).MarshalText()
	assert.Error(t, err)
}
