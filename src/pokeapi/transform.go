package pokeapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

func isSuccess(status int) bool {
	return status >= 200 && status <= 299
}

// Transform turns a PokeAPI response into the result for query.Mode. It is a
// pure function of its arguments.
func Transform(query Query, status int, body []byte) (ModeResult, error) {
	mode := query.Mode
	if !isSuccess(status) {
		return nil, notFound(mode, status)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, malformed(mode, "empty response body")
	}
	switch mode {
	case PokemonData:
		return decodeWith(mode, body, toPokemonData)
	case Moveset:
		return decodeWith(mode, body, toMoveset)
	case Stats:
		return decodeWith(mode, body, toStats)
	case TypeStats:
		return decodeWith(mode, body, func(t *TypeResponse) (ModeResult, error) {
			return toTypeStats(t, query.RawInput)
		})
	case TypeMoves:
		return decodeWith(mode, body, func(t *TypeResponse) (ModeResult, error) {
			return toTypeMoves(t, query.RawInput)
		})
	}
	return nil, fmt.Errorf("transform: invalid lookup mode %d", int(mode))
}

func decodeWith[T any](mode LookupMode, body []byte, convert func(*T) (ModeResult, error)) (ModeResult, error) {
	var payload T
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, malformed(mode, "decode json: %s", err)
	}
	result, err := convert(&payload)
	if err != nil {
		if qe, ok := err.(*QueryError); ok {
			qe.Mode = mode
		}
		return nil, err
	}
	return result, nil
}

func missing(field string) *QueryError {
	return malformed(0, "missing required field %q", field)
}

func toPokemonData(p *PokemonResponse) (ModeResult, error) {
	switch {
	case p.Name == nil:
		return nil, missing("name")
	case p.Order == nil:
		return nil, missing("order")
	case p.Weight == nil:
		return nil, missing("weight")
	case p.Height == nil:
		return nil, missing("height")
	case p.BaseExperience == nil:
		return nil, missing("base_experience")
	case p.Types == nil:
		return nil, missing("types")
	}
	types := make([]string, 0, len(p.Types))
	for i, t := range p.Types {
		if t.Type == nil || t.Type.Name == nil {
			return nil, missing(fmt.Sprintf("types[%d].type.name", i))
		}
		types = append(types, *t.Type.Name)
	}
	return PokemonDataResult{
		Name:             Capitalize(*p.Name),
		PokedexOrder:     *p.Order,
		WeightHectograms: *p.Weight,
		HeightDecimetres: *p.Height,
		BaseExperience:   *p.BaseExperience,
		Types:            types,
		SpriteUrl:        SpriteUrl(strings.ToLower(*p.Name)),
	}, nil
}

// toMoveset keeps only the first version group entry of every move.
func toMoveset(p *PokemonResponse) (ModeResult, error) {
	switch {
	case p.Name == nil:
		return nil, missing("name")
	case p.Moves == nil:
		return nil, missing("moves")
	}
	moves := make([]Move, 0, len(p.Moves))
	for i, m := range p.Moves {
		if m.Move == nil || m.Move.Name == nil {
			return nil, missing(fmt.Sprintf("moves[%d].move.name", i))
		}
		if len(m.VersionGroupDetails) == 0 {
			return nil, malformed(0, "moves[%d] (%s) has no version_group_details", i, *m.Move.Name)
		}
		detail := m.VersionGroupDetails[0]
		if detail.LevelLearnedAt == nil {
			return nil, missing(fmt.Sprintf("moves[%d].version_group_details[0].level_learned_at", i))
		}
		if detail.MoveLearnMethod == nil || detail.MoveLearnMethod.Name == nil {
			return nil, missing(fmt.Sprintf("moves[%d].version_group_details[0].move_learn_method.name", i))
		}
		moves = append(moves, Move{
			MoveName:       *m.Move.Name,
			LevelLearnedAt: *detail.LevelLearnedAt,
			LearnMethod:    *detail.MoveLearnMethod.Name,
		})
	}
	return MovesetResult{
		Name:      Capitalize(*p.Name),
		Moves:     moves,
		SpriteUrl: SpriteUrl(strings.ToLower(*p.Name)),
	}, nil
}

func toStats(p *PokemonResponse) (ModeResult, error) {
	switch {
	case p.Name == nil:
		return nil, missing("name")
	case p.Stats == nil:
		return nil, missing("stats")
	}
	stats := make([]Stat, 0, len(p.Stats))
	for i, s := range p.Stats {
		if s.Stat == nil || s.Stat.Name == nil {
			return nil, missing(fmt.Sprintf("stats[%d].stat.name", i))
		}
		if s.BaseStat == nil {
			return nil, missing(fmt.Sprintf("stats[%d].base_stat", i))
		}
		stats = append(stats, Stat{StatName: *s.Stat.Name, BaseStat: *s.BaseStat})
	}
	return StatsResult{
		Name:      Capitalize(*p.Name),
		Stats:     stats,
		SpriteUrl: SpriteUrl(strings.ToLower(*p.Name)),
	}, nil
}

func toTypeStats(t *TypeResponse, input string) (ModeResult, error) {
	if t.DamageRelations == nil {
		return nil, missing("damage_relations")
	}
	relations := t.DamageRelations
	result := TypeStatsResult{TypeName: Capitalize(strings.TrimSpace(input))}
	fields := []struct {
		key    string
		source []NamedResource
		target *[]string
	}{
		{"double_damage_from", relations.DoubleDamageFrom, &result.DoubleDamageFrom},
		{"double_damage_to", relations.DoubleDamageTo, &result.DoubleDamageTo},
		{"half_damage_from", relations.HalfDamageFrom, &result.HalfDamageFrom},
		{"half_damage_to", relations.HalfDamageTo, &result.HalfDamageTo},
		{"no_damage_from", relations.NoDamageFrom, &result.NoDamageFrom},
		{"no_damage_to", relations.NoDamageTo, &result.NoDamageTo},
	}
	for _, f := range fields {
		names, err := resourceNames("damage_relations."+f.key, f.source)
		if err != nil {
			return nil, err
		}
		*f.target = names
	}
	return result, nil
}

func toTypeMoves(t *TypeResponse, input string) (ModeResult, error) {
	moves, err := resourceNames("moves", t.Moves)
	if err != nil {
		return nil, err
	}
	return TypeMovesResult{
		TypeName: Capitalize(strings.TrimSpace(input)),
		Moves:    moves,
	}, nil
}

func resourceNames(field string, resources []NamedResource) ([]string, error) {
	if resources == nil {
		return nil, missing(field)
	}
	names := make([]string, 0, len(resources))
	for i, r := range resources {
		if r.Name == nil {
			return nil, missing(fmt.Sprintf("%s[%d].name", field, i))
		}
		names = append(names, *r.Name)
	}
	return names, nil
}
