package bot

import (
	"fmt"
	"strings"
)

const idPrefix = "bot-"

// BotIdentity is a seatable bot profile.
type BotIdentity struct {
	UserID      string
	DisplayName string
	Level       BotLevel
}

var identities = []BotIdentity{
	{UserID: "bot-mai", DisplayName: "Mai", Level: BotLevelGreedy},
	{UserID: "bot-linh", DisplayName: "Linh", Level: BotLevelGreedy},
	{UserID: "bot-tuan", DisplayName: "Tuan", Level: BotLevelEasy},
	{UserID: "bot-hoa", DisplayName: "Hoa", Level: BotLevelEasy},
	{UserID: "bot-duc", DisplayName: "Duc", Level: BotLevelGreedy},
	{UserID: "bot-thu", DisplayName: "Thu", Level: BotLevelEasy},
	{UserID: "bot-nam", DisplayName: "Nam", Level: BotLevelGreedy},
}

// GetBotIdentity returns an identity by index, wrapping around the pool.
// Indices past the pool get a synthesized profile so large tables still fill.
func GetBotIdentity(index int) BotIdentity {
	if index < len(identities) {
		return identities[index]
	}
	return BotIdentity{
		UserID:      fmt.Sprintf("bot-%d", index),
		DisplayName: fmt.Sprintf("AI Player %d", index),
		Level:       BotLevelGreedy,
	}
}

// IsBot reports whether the given user ID belongs to the bot pool.
func IsBot(userID string) bool {
	return strings.HasPrefix(userID, idPrefix)
}
