package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

const movesYAML = `
- id: 1
  ename: Pound
  type: Normal
  power: 40
  accuracy: 100
  category: Physical
- ename: Swift
  type: Normal
  power: 60
  accuracy: null
  category: Special
- ename: Growl
  type: Normal
  power: null
  accuracy: 100
  category: Status
`

// the pokedex is plain JSON on purpose
const pokedexJSON = `[
  {"id": 6, "name": {"english": "Charizard", "japanese": "リザードン"}, "type": ["Fire", "Flying"],
   "base": {"HP": 78, "Attack": 84, "Defense": 78, "Sp. Attack": 109, "Sp. Defense": 85, "Speed": 100}},
  {"id": 143, "name": "Snorlax", "type": ["Normal"],
   "base": {"HP": 160, "Attack": 110, "Defense": 65, "Sp. Attack": 65, "Sp. Defense": 110, "Speed": 30}}
]`

const simYAML = `
search_depth: 3
scenarios:
  - name: Mixed
    team: [a, b, c, d, e, f]
`

func TestLoadAll(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		MovesFile:   movesYAML,
		PokedexFile: pokedexJSON,
		SimFile:     simYAML,
	})
	b, err := LoadAll(dir)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(b.Moves.Moves) != 3 {
		t.Fatalf("moves = %d, want 3", len(b.Moves.Moves))
	}
	if b.Moves.Moves[1].Accuracy != nil {
		t.Fatalf("null accuracy should stay nil")
	}
	if b.Moves.Moves[2].Power != nil {
		t.Fatalf("null power should stay nil")
	}
	if got := b.Pokedex.Entries[0].Name; got != "Charizard" {
		t.Fatalf("name = %q, want english name", got)
	}
	if got := b.Pokedex.Entries[1].Base.SpDefense; got != 110 {
		t.Fatalf("Sp. Defense = %d, want 110", got)
	}
	if b.Sim.SearchDepth != 3 {
		t.Fatalf("search_depth = %d, want 3", b.Sim.SearchDepth)
	}
	if b.Sim.Level != 50 || b.Sim.MaxTurns != 150 || b.Sim.Greedy.SwitchMargin != 20 {
		t.Fatalf("defaults not kept: %+v", b.Sim)
	}
	if b.Types != nil {
		t.Fatalf("types should be nil without types.yaml")
	}
}

func TestLoadAllWithTypesAndMappings(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		MovesFile:   "moves:\n  - ename: Ember\n    type: fire\n    power: 40\n",
		PokedexFile: "pokedex: []\n",
		SimFile:     "{}\n",
		TypesFile:   "chart:\n  Fire: {Grass: 2, Water: 0.5}\n",
	})
	b, err := LoadAll(dir)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(b.Moves.Moves) != 1 || b.Moves.Moves[0].Name != "Ember" {
		t.Fatalf("moves = %+v", b.Moves.Moves)
	}
	if b.Types == nil || b.Types.Chart["Fire"]["Water"] != 0.5 {
		t.Fatalf("types = %+v", b.Types)
	}
}

func TestLoadAllErrors(t *testing.T) {
	cases := []struct {
		name  string
		files map[string]string
		want  string
	}{
		{"missing moves", map[string]string{PokedexFile: "[]", SimFile: "{}"}, MovesFile},
		{"bad yaml", map[string]string{MovesFile: "- [", PokedexFile: "[]", SimFile: "{}"}, "parse"},
		{"scalar pokedex", map[string]string{MovesFile: "[]", PokedexFile: "nope", SimFile: "{}"}, "pokedex must be"},
		{"short team", map[string]string{MovesFile: "[]", PokedexFile: "[]", SimFile: "scenarios: [{name: x, team: [a]}]"}, "needs 6"},
		{"bad depth", map[string]string{MovesFile: "[]", PokedexFile: "[]", SimFile: "search_depth: 0"}, "search_depth"},
		{"broken types", map[string]string{MovesFile: "[]", PokedexFile: "[]", SimFile: "{}", TypesFile: "chart: ["}, "parse"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadAll(writeFiles(t, tc.files))
			if err == nil {
				t.Fatalf("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err = %v, want it to mention %q", err, tc.want)
			}
		})
	}
}
