package pokeapi

const pikachuJson = `{
	"name": "pikachu",
	"order": 35,
	"weight": 60,
	"height": 40,
	"base_experience": 112,
	"types": [
		{"slot": 1, "type": {"name": "electric", "url": "https://pokeapi.co/api/v2/type/13/"}}
	],
	"moves": [
		{
			"move": {"name": "mega-punch"},
			"version_group_details": [
				{"level_learned_at": 0, "move_learn_method": {"name": "tutor"}, "version_group": {"name": "red-blue"}},
				{"level_learned_at": 5, "move_learn_method": {"name": "level-up"}, "version_group": {"name": "sword-shield"}}
			]
		},
		{
			"move": {"name": "thunder-shock"},
			"version_group_details": [
				{"level_learned_at": 1, "move_learn_method": {"name": "level-up"}}
			]
		},
		{
			"move": {"name": "agility"},
			"version_group_details": [
				{"level_learned_at": 33, "move_learn_method": {"name": "level-up"}}
			]
		}
	],
	"stats": [
		{"base_stat": 35, "effort": 0, "stat": {"name": "hp"}},
		{"base_stat": 55, "effort": 0, "stat": {"name": "attack"}},
		{"base_stat": 40, "effort": 0, "stat": {"name": "defense"}},
		{"base_stat": 90, "effort": 2, "stat": {"name": "speed"}}
	]
}`

const groundTypeJson = `{
	"name": "electric",
	"damage_relations": {
		"double_damage_from": [{"name": "ground"}],
		"double_damage_to": [],
		"half_damage_from": [],
		"half_damage_to": [],
		"no_damage_from": [],
		"no_damage_to": []
	},
	"moves": []
}`

const fireTypeJson = `{
	"name": "fire",
	"damage_relations": {
		"double_damage_from": [{"name": "ground"}, {"name": "rock"}, {"name": "water"}],
		"double_damage_to": [{"name": "bug"}, {"name": "steel"}, {"name": "grass"}, {"name": "ice"}],
		"half_damage_from": [{"name": "bug"}, {"name": "steel"}, {"name": "fire"}, {"name": "grass"}, {"name": "ice"}, {"name": "fairy"}],
		"half_damage_to": [{"name": "rock"}, {"name": "fire"}, {"name": "water"}, {"name": "dragon"}],
		"no_damage_from": [],
		"no_damage_to": []
	},
	"moves": [{"name": "fire-punch"}, {"name": "ember"}, {"name": "flamethrower"}, {"name": "fire-spin"}]
}`
