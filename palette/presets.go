package palette

import (
	_ "embed"
	"sort"
	"strings"

	"gopkg.in/yaml.v2"
)

//go:embed qualitative.yaml
var qualitativeTable []byte

//go:embed continuous.yaml
var continuousTable []byte

// Built-in palette names. Lookup is case-insensitive. WARPPED keeps its
// historical spelling; Warped is accepted as an alias.
const (
	Cozy       = "COZY"
	Cherry     = "CHERRY"
	Vintage    = "VINTAGE"
	Warpped    = "WARPPED"
	Office     = "OFFICE"
	Monochrome = "MONOCHROME"
	GiveMeAll  = "GIVE_ME_ALL"
)

var presets map[string]*Palette

func init() {
	var qual map[string][]string
	var cont map[string][]string
	if err := yaml.Unmarshal(qualitativeTable, &qual); err != nil {
		panic("palette: bad qualitative table: " + err.Error())
	}
	if err := yaml.Unmarshal(continuousTable, &cont); err != nil {
		panic("palette: bad continuous table: " + err.Error())
	}

	presets = make(map[string]*Palette, len(qual)+1)
	names := make([]string, 0, len(qual))
	for name := range qual {
		names = append(names, name)
	}
	sort.Strings(names)

	var all []string
	for _, name := range names {
		presets[strings.ToUpper(name)] = MustNew(Spec{
			Discrete:   qual[name],
			Continuous: cont[name],
		})
		all = append(all, qual[name]...)
	}
	presets[GiveMeAll] = MustNew(Spec{Discrete: all})
}

// Names returns the built-in palette names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset looks up a built-in palette by name, case-insensitively.
func Preset(name string) (*Palette, bool) {
	key := strings.ToUpper(name)
	if key == "WARPED" {
		key = Warpped
	}
	p, ok := presets[key]
	return p, ok
}
