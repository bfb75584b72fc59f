package pokeapi

import "fmt"

const spriteUrlTemplate = "https://play.pokemonshowdown.com/sprites/ani/%s.gif"

// ModeResult is implemented by exactly one result type per LookupMode.
type ModeResult interface {
	Mode() LookupMode
	isModeResult()
}

type PokemonDataResult struct {
	Name             string   `json:"name"`
	PokedexOrder     int      `json:"pokedexOrder"`
	WeightHectograms int      `json:"weightHectograms"`
	HeightDecimetres int      `json:"heightDecimetres"`
	BaseExperience   int      `json:"baseExperience"`
	Types            []string `json:"types"`
	SpriteUrl        string   `json:"spriteUrl"`
}

type Move struct {
	MoveName       string `json:"moveName"`
	LevelLearnedAt int    `json:"levelLearnedAt"`
	LearnMethod    string `json:"learnMethod"`
}

type MovesetResult struct {
	Name      string `json:"name"`
	Moves     []Move `json:"moves"`
	SpriteUrl string `json:"spriteUrl"`
}

type Stat struct {
	StatName string `json:"statName"`
	BaseStat int    `json:"baseStat"`
}

type StatsResult struct {
	Name      string `json:"name"`
	Stats     []Stat `json:"stats"`
	SpriteUrl string `json:"spriteUrl"`
}

type TypeStatsResult struct {
	TypeName         string   `json:"typeName"`
	DoubleDamageFrom []string `json:"doubleDamageFrom"`
	DoubleDamageTo   []string `json:"doubleDamageTo"`
	HalfDamageFrom   []string `json:"halfDamageFrom"`
	HalfDamageTo     []string `json:"halfDamageTo"`
	NoDamageFrom     []string `json:"noDamageFrom"`
	NoDamageTo       []string `json:"noDamageTo"`
}

type TypeMovesResult struct {
	TypeName string   `json:"typeName"`
	Moves    []string `json:"moves"`
}

func (PokemonDataResult) Mode() LookupMode { return PokemonData }
func (MovesetResult) Mode() LookupMode     { return Moveset }
func (StatsResult) Mode() LookupMode       { return Stats }
func (TypeStatsResult) Mode() LookupMode   { return TypeStats }
func (TypeMovesResult) Mode() LookupMode   { return TypeMoves }

func (PokemonDataResult) isModeResult() {}
func (MovesetResult) isModeResult()     {}
func (StatsResult) isModeResult()       {}
func (TypeStatsResult) isModeResult()   {}
func (TypeMovesResult) isModeResult()   {}

func SpriteUrl(name string) string {
	return fmt.Sprintf(spriteUrlTemplate, name)
}

// Capitalize upper-cases the first ASCII letter only; the rest is untouched.
func Capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-('a'-'A')) + s[1:]
}
