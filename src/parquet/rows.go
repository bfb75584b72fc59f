package parquet

import (
	"strconv"

	"github.com/BielosX/wombat/pokedex/src/pokeapi"
)

type rowBuilder struct {
	queryId string
	mode    string
	subject string
	rows    []LookupRow
}

func (b *rowBuilder) add(attribute string, ordinal int, value string) {
	b.rows = append(b.rows, LookupRow{
		QueryId:   b.queryId,
		Mode:      b.mode,
		Subject:   b.subject,
		Attribute: attribute,
		Ordinal:   int32(ordinal),
		Value:     value,
	})
}

func (b *rowBuilder) addInt(attribute string, ordinal int, value int) {
	b.add(attribute, ordinal, strconv.Itoa(value))
}

func (b *rowBuilder) addList(attribute string, values []string) {
	for i, v := range values {
		b.add(attribute, i, v)
	}
}

func ToRows(queryId string, result pokeapi.ModeResult) []LookupRow {
	b := &rowBuilder{queryId: queryId, mode: result.Mode().String()}
	switch r := result.(type) {
	case pokeapi.PokemonDataResult:
		b.subject = r.Name
		b.addInt("pokedex_order", 0, r.PokedexOrder)
		b.addInt("weight_hectograms", 0, r.WeightHectograms)
		b.addInt("height_decimetres", 0, r.HeightDecimetres)
		b.addInt("base_experience", 0, r.BaseExperience)
		b.addList("type", r.Types)
		b.add("sprite_url", 0, r.SpriteUrl)
	case pokeapi.MovesetResult:
		b.subject = r.Name
		for i, m := range r.Moves {
			b.add("move", i, m.MoveName)
			b.addInt("level_learned_at", i, m.LevelLearnedAt)
			b.add("learn_method", i, m.LearnMethod)
		}
		b.add("sprite_url", 0, r.SpriteUrl)
	case pokeapi.StatsResult:
		b.subject = r.Name
		for i, s := range r.Stats {
			b.add("stat", i, s.StatName)
			b.addInt("base_stat", i, s.BaseStat)
		}
		b.add("sprite_url", 0, r.SpriteUrl)
	case pokeapi.TypeStatsResult:
		b.subject = r.TypeName
		b.addList("double_damage_from", r.DoubleDamageFrom)
		b.addList("double_damage_to", r.DoubleDamageTo)
		b.addList("half_damage_from", r.HalfDamageFrom)
		b.addList("half_damage_to", r.HalfDamageTo)
		b.addList("no_damage_from", r.NoDamageFrom)
		b.addList("no_damage_to", r.NoDamageTo)
	case pokeapi.TypeMovesResult:
		b.subject = r.TypeName
		b.addList("move", r.Moves)
	}
	return b.rows
}
