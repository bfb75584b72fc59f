package pokeapi

// Response shapes mirror the PokeAPI JSON. Required scalars are pointers and
// required arrays are left nil when the key is absent, so the transformer can
// tell a missing field from a zero value.

type NamedResource struct {
	Name *string `json:"name"`
	Url  string  `json:"url"`
}

type PokemonType struct {
	Slot int32          `json:"slot"`
	Type *NamedResource `json:"type"`
}

type VersionGroupDetail struct {
	LevelLearnedAt  *int           `json:"level_learned_at"`
	MoveLearnMethod *NamedResource `json:"move_learn_method"`
	VersionGroup    *NamedResource `json:"version_group"`
}

type PokemonMove struct {
	Move                *NamedResource       `json:"move"`
	VersionGroupDetails []VersionGroupDetail `json:"version_group_details"`
}

type PokemonStat struct {
	Stat     *NamedResource `json:"stat"`
	BaseStat *int           `json:"base_stat"`
	Effort   int            `json:"effort"`
}

type PokemonResponse struct {
	Name           *string       `json:"name"`
	Order          *int          `json:"order"`
	Weight         *int          `json:"weight"`
	Height         *int          `json:"height"`
	BaseExperience *int          `json:"base_experience"`
	Types          []PokemonType `json:"types"`
	Moves          []PokemonMove `json:"moves"`
	Stats          []PokemonStat `json:"stats"`
}

type DamageRelations struct {
	DoubleDamageFrom []NamedResource `json:"double_damage_from"`
	DoubleDamageTo   []NamedResource `json:"double_damage_to"`
	HalfDamageFrom   []NamedResource `json:"half_damage_from"`
	HalfDamageTo     []NamedResource `json:"half_damage_to"`
	NoDamageFrom     []NamedResource `json:"no_damage_from"`
	NoDamageTo       []NamedResource `json:"no_damage_to"`
}

type TypeResponse struct {
	Name            *string          `json:"name"`
	DamageRelations *DamageRelations `json:"damage_relations"`
	Moves           []NamedResource  `json:"moves"`
}
