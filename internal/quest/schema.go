package quest

import "github.com/abhisek/lovequest/internal/validate"

func stageEnum() []string {
	var out []string
	for _, s := range QuestStages() {
		out = append(out, string(s))
	}
	return out
}

var stringArray = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "string"},
}

// adventureSchema describes the adventure content document.
var adventureSchema = &validate.Schema{
	Name: "adventure",
	Definition: map[string]any{
		"type":     "object",
		"required": []string{"title", "quests"},
		"properties": map[string]any{
			"title":   map[string]any{"type": "string", "minLength": 1},
			"tagline": map[string]any{"type": "string"},
			"intro":   map[string]any{"type": "string"},
			"quests": map[string]any{
				"type":  "array",
				"items": questSchema,
			},
			"finale": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"greeting":  map[string]any{"type": "string"},
					"letter":    map[string]any{"type": "string"},
					"signature": map[string]any{"type": "string"},
				},
				"additionalProperties": false,
			},
		},
		"additionalProperties": false,
	},
}

var questSchema = map[string]any{
	"type":     "object",
	"required": []string{"id", "stage", "title", "riddle", "answers"},
	"properties": map[string]any{
		"id":             map[string]any{"type": "string", "minLength": 1},
		"stage":          map[string]any{"type": "string", "enum": stageEnum()},
		"title":          map[string]any{"type": "string"},
		"location":       map[string]any{"type": "string"},
		"time":           map[string]any{"type": "string"},
		"character":      map[string]any{"type": "string", "enum": []string{string(CharacterCody), string(CharacterBoth)}},
		"riddle":         map[string]any{"type": "string"},
		"answers":        map[string]any{"type": "array", "minItems": 1, "items": map[string]any{"type": "string", "minLength": 1}},
		"choices":        stringArray,
		"hint":           map[string]any{"type": "string"},
		"successMessage": map[string]any{"type": "string"},
		"memory":         map[string]any{"type": "string"},
		"hasCarSurprise": map[string]any{"type": "boolean"},
	},
	"additionalProperties": false,
}
