package pokeapi

import "strings"

type Query struct {
	Mode     LookupMode `json:"mode"`
	RawInput string     `json:"input"`
}

func NewQuery(mode LookupMode, rawInput string) Query {
	return Query{Mode: mode, RawInput: strings.TrimSpace(rawInput)}
}

func (q Query) Blank() bool {
	return strings.TrimSpace(q.RawInput) == ""
}
