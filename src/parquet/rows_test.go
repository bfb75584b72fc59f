package parquet

import (
	"testing"

	"github.com/BielosX/wombat/pokedex/src/pokeapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRows_PokemonData(t *testing.T) {
	rows := ToRows("q-1", pokeapi.PokemonDataResult{
		Name:             "Charizard",
		PokedexOrder:     7,
		WeightHectograms: 905,
		HeightDecimetres: 17,
		BaseExperience:   267,
		Types:            []string{"fire", "flying"},
		SpriteUrl:        pokeapi.SpriteUrl("charizard"),
	})
	require.Len(t, rows, 7)
	for _, row := range rows {
		assert.Equal(t, "q-1", row.QueryId)
		assert.Equal(t, "data", row.Mode)
		assert.Equal(t, "Charizard", row.Subject)
	}
	assert.Equal(t, LookupRow{QueryId: "q-1", Mode: "data", Subject: "Charizard", Attribute: "weight_hectograms", Value: "905"}, rows[1])
	assert.Equal(t, "type", rows[4].Attribute)
	assert.Equal(t, int32(0), rows[4].Ordinal)
	assert.Equal(t, "fire", rows[4].Value)
	assert.Equal(t, int32(1), rows[5].Ordinal)
	assert.Equal(t, "flying", rows[5].Value)
	assert.Equal(t, "https://play.pokemonshowdown.com/sprites/ani/charizard.gif", rows[6].Value)
}

func TestToRows_Moveset(t *testing.T) {
	rows := ToRows("q-2", pokeapi.MovesetResult{
		Name: "Pikachu",
		Moves: []pokeapi.Move{
			{MoveName: "thunder-shock", LevelLearnedAt: 1, LearnMethod: "level-up"},
			{MoveName: "agility", LevelLearnedAt: 33, LearnMethod: "level-up"},
		},
	})
	require.Len(t, rows, 7)
	assert.Equal(t, "move", rows[3].Attribute)
	assert.Equal(t, int32(1), rows[3].Ordinal)
	assert.Equal(t, "agility", rows[3].Value)
	assert.Equal(t, "33", rows[4].Value)
}

func TestToRows_TypeStatsKeepsOrder(t *testing.T) {
	rows := ToRows("q-3", pokeapi.TypeStatsResult{
		TypeName:         "Fire",
		DoubleDamageFrom: []string{"ground", "rock", "water"},
		DoubleDamageTo:   []string{},
		HalfDamageFrom:   []string{},
		HalfDamageTo:     []string{},
		NoDamageFrom:     []string{},
		NoDamageTo:       []string{},
	})
	require.Len(t, rows, 3)
	for i, want := range []string{"ground", "rock", "water"} {
		assert.Equal(t, "double_damage_from", rows[i].Attribute)
		assert.Equal(t, int32(i), rows[i].Ordinal)
		assert.Equal(t, want, rows[i].Value)
		assert.Equal(t, "type-stats", rows[i].Mode)
	}
}

func TestToRows_TypeMoves(t *testing.T) {
	rows := ToRows("q-4", pokeapi.TypeMovesResult{TypeName: "Fire", Moves: []string{"ember", "flamethrower"}})
	require.Len(t, rows, 2)
	assert.Equal(t, "Fire", rows[1].Subject)
	assert.Equal(t, "flamethrower", rows[1].Value)
}
