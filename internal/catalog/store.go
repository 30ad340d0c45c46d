package catalog

import "strings"

// SearchLimit caps the suggestion endpoint results.
const SearchLimit = 8

// Store serves the static catalog. All data is read-only after construction.
type Store struct {
	games      []Game
	categories []Category
}

func NewStore() *Store {
	return &Store{
		categories: []Category{
			{ID: 1, Name: "MMORPG", Icon: "fa-gamepad"},
			{ID: 2, Name: "Shooter", Icon: "fa-crosshairs"},
			{ID: 3, Name: "Strategy", Icon: "fa-chess"},
			{ID: 4, Name: "Sandbox", Icon: "fa-cube"},
		},
		games: []Game{
			{ID: 1, Name: "Roblox", Category: "Sandbox", Image: "https://via.placeholder.com/300x180/667eea/white?text=Roblox", Description: "Accounts with rare limiteds and Robux balances", AccountsAvailable: 24},
			{ID: 2, Name: "Minecraft", Category: "Sandbox", Image: "https://via.placeholder.com/300x180/764ba2/white?text=Minecraft", Description: "Java and Bedrock accounts with capes", AccountsAvailable: 17},
			{ID: 3, Name: "Fortnite", Category: "Shooter", Image: "https://via.placeholder.com/300x180/ff6b6b/white?text=Fortnite", Description: "Accounts with OG skins and V-Bucks", AccountsAvailable: 31},
			{ID: 4, Name: "World of Warcraft", Category: "MMORPG", Image: "https://via.placeholder.com/300x180/f0932b/white?text=WoW", Description: "Max-level characters with mounts", AccountsAvailable: 9},
			{ID: 5, Name: "Counter-Strike 2", Category: "Shooter", Image: "https://via.placeholder.com/300x180/22a6b3/white?text=CS2", Description: "Prime accounts with skin inventories", AccountsAvailable: 42},
			{ID: 6, Name: "Civilization VI", Category: "Strategy", Image: "https://via.placeholder.com/300x180/6ab04c/white?text=Civ+VI", Description: "Accounts with all DLC unlocked", AccountsAvailable: 5},
		},
	}
}

func (s *Store) Categories() []Category {
	return s.categories
}

// Games returns the catalog, optionally narrowed by category and by a
// case-insensitive substring of the name. Empty filters match everything.
func (s *Store) Games(category, search string) []Game {
	results := make([]Game, 0, len(s.games))
	search = strings.ToLower(search)
	for _, game := range s.games {
		if category != "" && category != "all" && !strings.EqualFold(game.Category, category) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(game.Name), search) {
			continue
		}
		results = append(results, game)
	}
	return results
}

// Search powers the suggestion dropdown: case-insensitive substring match on
// the name, capped at limit. An empty query returns no suggestions rather
// than the whole catalog.
func (s *Store) Search(query string, limit int) []Game {
	query = strings.ToLower(strings.TrimSpace(query))
	results := make([]Game, 0, limit)
	if query == "" {
		return results
	}
	for _, game := range s.games {
		if !strings.Contains(strings.ToLower(game.Name), query) {
			continue
		}
		results = append(results, game)
		if len(results) == limit {
			break
		}
	}
	return results
}
