package anatomy

import (
	"sort"
	"strings"
)

// RegionInfo describes one vocabulary entry.
type RegionInfo struct {
	// ID is the canonical region key, always singular ("kidney", not
	// "kidneys").
	ID string

	// Aliases are the identifier forms upstream providers use for this
	// region. The canonical id is always included.
	Aliases []string

	// Color is the display key the rendering layer uses for this
	// region's marker and label. Opaque to the layout engine.
	Color string
}

// Vocabulary is the fixed, closed set of annotatable regions, in the
// head-to-pelvis order used for listings.
var Vocabulary = []RegionInfo{
	{ID: "brain", Aliases: []string{"brain"}, Color: "#b48ead"},
	{ID: "sinuses", Aliases: []string{"sinuses", "sinus"}, Color: "#88c0d0"},
	{ID: "throat", Aliases: []string{"throat"}, Color: "#d08770"},
	{ID: "bronchi", Aliases: []string{"bronchi", "bronchus"}, Color: "#8fbcbb"},
	{ID: "lungs", Aliases: []string{"lungs", "lung"}, Color: "#81a1c1"},
	{ID: "heart", Aliases: []string{"heart"}, Color: "#bf616a"},
	{ID: "liver", Aliases: []string{"liver"}, Color: "#a3be8c"},
	{ID: "stomach", Aliases: []string{"stomach"}, Color: "#ebcb8b"},
	{ID: "pancreas", Aliases: []string{"pancreas"}, Color: "#d8a657"},
	{ID: "kidney", Aliases: []string{"kidneys", "kidney"}, Color: "#ab6470"},
	{ID: "intestine", Aliases: []string{"intestines", "intestine"}, Color: "#c7a252"},
	{ID: "bladder", Aliases: []string{"bladder"}, Color: "#7a9dbf"},
}

// aliasIndex pairs every alias with its canonical id, longest alias
// first so "bronchus" wins over any shorter overlap. Built once at
// package init; the vocabulary never changes at runtime.
var aliasIndex = buildAliasIndex()

type aliasEntry struct {
	alias string
	id    string
}

func buildAliasIndex() []aliasEntry {
	var idx []aliasEntry
	for _, info := range Vocabulary {
		for _, a := range info.Aliases {
			idx = append(idx, aliasEntry{alias: a, id: info.ID})
		}
	}
	sort.Slice(idx, func(i, j int) bool {
		if len(idx[i].alias) != len(idx[j].alias) {
			return len(idx[i].alias) > len(idx[j].alias)
		}
		return idx[i].alias < idx[j].alias
	})
	return idx
}

// Match resolves a free-form identifier to a canonical region id.
// Matching is case-insensitive substring containment: the identifier
// matches the first (longest) alias it contains, so "Left Kidney" and
// "kidneys" both resolve to "kidney". Returns false for identifiers
// that contain no vocabulary alias.
func Match(identifier string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(identifier))
	if needle == "" {
		return "", false
	}
	for _, e := range aliasIndex {
		if strings.Contains(needle, e.alias) {
			return e.id, true
		}
	}
	return "", false
}

// Info returns the vocabulary entry for a canonical id.
func Info(id string) (RegionInfo, bool) {
	for _, info := range Vocabulary {
		if info.ID == id {
			return info, true
		}
	}
	return RegionInfo{}, false
}

// IDs returns all canonical region ids in vocabulary order.
func IDs() []string {
	ids := make([]string, len(Vocabulary))
	for i, info := range Vocabulary {
		ids[i] = info.ID
	}
	return ids
}
