// Package render formats lookup results and errors as the text blocks shown
// to the user.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BielosX/wombat/pokedex/src/pokeapi"
)

func Text(result pokeapi.ModeResult) string {
	switch r := result.(type) {
	case pokeapi.PokemonDataResult:
		return strings.Join([]string{
			"Name: " + r.Name,
			fmt.Sprintf("Pokedex Order: %d", r.PokedexOrder),
			fmt.Sprintf("Weight: %d hectograms", r.WeightHectograms),
			fmt.Sprintf("Height: %d decimetres", r.HeightDecimetres),
			fmt.Sprintf("XP Base: %d", r.BaseExperience),
			"Types: " + strings.Join(r.Types, ", "),
		}, "\n")
	case pokeapi.MovesetResult:
		lines := []string{r.Name + "'s Movesets:"}
		for _, m := range r.Moves {
			lines = append(lines, fmt.Sprintf("%s: Level %d by %s", m.MoveName, m.LevelLearnedAt, m.LearnMethod))
		}
		return strings.Join(lines, "\n")
	case pokeapi.StatsResult:
		lines := []string{r.Name + "'s Stats:"}
		for _, s := range r.Stats {
			lines = append(lines, fmt.Sprintf("%s: %d", s.StatName, s.BaseStat))
		}
		return strings.Join(lines, "\n")
	case pokeapi.TypeStatsResult:
		return strings.Join([]string{
			r.TypeName + " Type Stats:",
			"Double Damage From: " + strings.Join(r.DoubleDamageFrom, ", "),
			"Double Damage To: " + strings.Join(r.DoubleDamageTo, ", "),
			"Half Damage From: " + strings.Join(r.HalfDamageFrom, ", "),
			"Half Damage To: " + strings.Join(r.HalfDamageTo, ", "),
			"No Damage From: " + strings.Join(r.NoDamageFrom, ", "),
			"No Damage To: " + strings.Join(r.NoDamageTo, ", "),
		}, "\n")
	case pokeapi.TypeMovesResult:
		return strings.Join(append([]string{r.TypeName + " Type Moves:"}, r.Moves...), "\n")
	}
	return ""
}

// SpriteUrl returns the animated sprite for results that have one.
func SpriteUrl(result pokeapi.ModeResult) string {
	switch r := result.(type) {
	case pokeapi.PokemonDataResult:
		return r.SpriteUrl
	case pokeapi.MovesetResult:
		return r.SpriteUrl
	case pokeapi.StatsResult:
		return r.SpriteUrl
	}
	return ""
}

func ErrorMessage(err error) string {
	var qe *pokeapi.QueryError
	if !errors.As(err, &qe) {
		return "Something went wrong: " + err.Error()
	}
	switch qe.Kind {
	case pokeapi.BlankInput:
		return "Please enter a valid Pokémon name or type."
	case pokeapi.NotFound:
		if qe.Mode.Resource() == "type" {
			return "Type not found!"
		}
		return "Pokémon not found!"
	case pokeapi.TransportFailure:
		return "Request failed: " + qe.Detail
	case pokeapi.MalformedResponse:
		return "Unexpected response from the Pokémon API."
	}
	return qe.Error()
}
