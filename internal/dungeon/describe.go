package dungeon

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"
)

var roomDescriptions = map[RoomType][]string{
	RoomEntry: {
		"A broad landing where the surface light gives out.",
		"Worn steps descend into stale air.",
	},
	RoomExit: {
		"A sealed passage leads out of the depths.",
		"Cold air drifts from a crack in the far wall.",
	},
	RoomStairwell: {
		"A spiral stair plunges deeper into the dark.",
		"A rough-hewn shaft drops to the level below.",
	},
	RoomSpecial: {
		"Something about this chamber feels deliberate.",
		"Carvings cover every surface of this room.",
	},
	RoomChamber: {
		"A plain chamber of fitted stone.",
		"Dust lies thick across the flagstones.",
		"An empty hall, its purpose long forgotten.",
	},
}

// describeRooms fills each room's description from a per-type pool.
func describeRooms(rooms []Room, rng *rand.Rand) {
	for i := range rooms {
		pool := roomDescriptions[rooms[i].Type]
		if len(pool) == 0 {
			continue
		}
		rooms[i].Description = pool[rng.Intn(len(pool))]
	}
}

var nameSuffixes = []string{"Delve", "Depths", "Halls", "Warrens", "Vaults", "Catacombs"}

// dungeonName derives a display name from the theme.
func dungeonName(theme string, rng *rand.Rand) string {
	suffix := nameSuffixes[rng.Intn(len(nameSuffixes))]
	theme = strings.TrimSpace(theme)
	if theme == "" {
		return "The Forgotten " + suffix
	}
	return fmt.Sprintf("%s of the %s", suffix, titleWords(theme))
}

func titleWords(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
