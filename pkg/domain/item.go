package domain

import "strings"

// ItemEntry is the cached metadata of a single game item
type ItemEntry struct {
	ID     int        `json:"id"`
	Name   string     `json:"name"`
	Rarity ItemRarity `json:"rarity"`
	Level  int        `json:"level"`
}

// ItemRarity represents item rarity classification
type ItemRarity string

// item rarities as reported by the remote API
const (
	RarityUnknown    ItemRarity = "Unknown"
	RarityJunk       ItemRarity = "Junk"
	RarityBasic      ItemRarity = "Basic"
	RarityFine       ItemRarity = "Fine"
	RarityMasterwork ItemRarity = "Masterwork"
	RarityRare       ItemRarity = "Rare"
	RarityExotic     ItemRarity = "Exotic"
	RarityAscended   ItemRarity = "Ascended"
	RarityLegendary  ItemRarity = "Legendary"
)

var rarities = []ItemRarity{RarityJunk, RarityBasic, RarityFine, RarityMasterwork,
	RarityRare, RarityExotic, RarityAscended, RarityLegendary}

// ParseRarity converts API rarity string to ItemRarity, case-insensitive.
// Unrecognized values map to RarityUnknown.
func ParseRarity(s string) ItemRarity {
	for _, r := range rarities {
		if strings.EqualFold(string(r), strings.TrimSpace(s)) {
			return r
		}
	}
	return RarityUnknown
}

// Rank returns the position of rarity in ascending order, -1 for unknown
func (r ItemRarity) Rank() int {
	for i, v := range rarities {
		if v == r {
			return i
		}
	}
	return -1
}
