package dungeon

import (
	"math/rand"
	"strings"
)

// featureIcons map each feature kind to the glyph the grid renderer draws.
var featureIcons = map[FeatureKind]string{
	FeatureTrap:      "^",
	FeatureTreasure:  "$",
	FeatureAltar:     "_",
	FeatureLair:      "&",
	FeatureEncounter: "!",
}

// featureWeight pairs a kind with its sampling weight.
type featureWeight struct {
	kind   FeatureKind
	weight int
}

// featureTable builds the weighted sampling table for one level. Trap and
// encounter frequency rise with difficulty; a matching theme keyword boosts
// its kind.
func featureTable(theme string, difficulty Difficulty) []featureWeight {
	table := []featureWeight{
		{FeatureTrap, 20},
		{FeatureTreasure, 25},
		{FeatureAltar, 15},
		{FeatureLair, 15},
		{FeatureEncounter, 25},
	}

	switch difficulty {
	case DifficultyHard:
		table[0].weight += 10
		table[4].weight += 5
	case DifficultyDeadly:
		table[0].weight += 20
		table[4].weight += 10
	case DifficultyEasy:
		table[0].weight -= 10
	}

	lower := strings.ToLower(theme)
	boosts := map[string]int{
		"lair":   3,
		"temple": 2,
		"shrine": 2,
		"crypt":  1,
		"tomb":   1,
	}
	kindFor := map[string]FeatureKind{
		"lair":   FeatureLair,
		"temple": FeatureAltar,
		"shrine": FeatureAltar,
		"crypt":  FeatureTrap,
		"tomb":   FeatureTrap,
	}
	for _, keyword := range []string{"lair", "temple", "shrine", "crypt", "tomb"} {
		if !strings.Contains(lower, keyword) {
			continue
		}
		boost := boosts[keyword]
		boosted := kindFor[keyword]
		for i := range table {
			if table[i].kind == boosted {
				table[i].weight *= boost
			}
		}
	}

	return table
}

// scatterFeatures attaches features to every non-entry room. Special rooms
// are guaranteed at least one; other rooms get up to two.
func scatterFeatures(rooms []Room, theme string, difficulty Difficulty, rng *rand.Rand) {
	table := featureTable(theme, difficulty)

	for i := range rooms {
		if rooms[i].Type == RoomEntry {
			continue
		}

		count := rng.Intn(3)
		if rooms[i].Type == RoomSpecial && count == 0 {
			count = 1
		}
		for n := 0; n < count; n++ {
			kind := sampleFeature(table, rng)
			rooms[i].Features = append(rooms[i].Features, Feature{
				Kind: kind,
				Icon: featureIcons[kind],
			})
		}
	}
}

func sampleFeature(table []featureWeight, rng *rand.Rand) FeatureKind {
	total := 0
	for _, fw := range table {
		total += fw.weight
	}
	roll := rng.Intn(total)
	for _, fw := range table {
		roll -= fw.weight
		if roll < 0 {
			return fw.kind
		}
	}
	return table[len(table)-1].kind
}
