package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a lobby-capable match.
	RpcQuickMatch = "quick_match"

	// MatchName is the authoritative match handler name registered with Nakama.
	MatchName = "jokershed_match"

	// labelGame tags match labels for quick-match queries.
	labelGame = "jokershed"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartGame int64 = 1
	OpPlayCards int64 = 2
	OpPassTurn  int64 = 3
	OpAddBot    int64 = 4
	OpGetState  int64 = 5

	// Server -> Client events
	OpPlayerJoined int64 = 101
	OpPlayerLeft   int64 = 102
	OpGameStarted  int64 = 103
	OpHandDealt    int64 = 104 // sent privately
	OpCardPlayed   int64 = 105
	OpTurnPassed   int64 = 106
	OpRoundReset   int64 = 107
	OpGameEnded    int64 = 108
	OpState        int64 = 109 // sent privately
	OpError        int64 = 110 // sent privately
)
