package catalog

// Static sample dataset served when the pricing catalog is unreachable.
// Raw payload shape so it flows through the same normalization path as
// live responses.
var fallbackRawCards = []map[string]interface{}{
	{
		"id":     "fallback-1",
		"name":   "Sample Card",
		"game":   "pokemon",
		"set":    "Base Set",
		"number": "001",
		"rarity": "Common",
		"variants": []interface{}{
			map[string]interface{}{"condition": "Near Mint", "printing": "Normal", "price": 1.99},
		},
	},
	{
		"id":     "fallback-2",
		"name":   "Sample Holo",
		"game":   "pokemon",
		"set":    "Base Set",
		"number": "004",
		"rarity": "Rare",
		"variants": []interface{}{
			map[string]interface{}{"condition": "Near Mint", "printing": "Holofoil", "price": 24.50},
			map[string]interface{}{"condition": "Lightly Played", "printing": "Holofoil", "price": 17.25},
		},
	},
	{
		"id":     "fallback-3",
		"name":   "Sample Leader",
		"game":   "one-piece-card-game",
		"set":    "Romance Dawn",
		"number": "OP01-001",
		"rarity": "L",
		"variants": []interface{}{
			map[string]interface{}{"condition": "Near Mint", "printing": "Normal", "price": 3.10},
		},
	},
}
