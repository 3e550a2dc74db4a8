package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/heroiclabs/nakama-common/runtime"
)

// QuickMatchResponse is the payload returned to clients when requesting a
// lobby-capable match.
type QuickMatchResponse struct {
	MatchID string `json:"match_id"`
	IsNew   bool   `json:"is_new"`
}

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	return initializer.RegisterRpc(RpcQuickMatch, rpcQuickMatch)
}

func rpcQuickMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	// Find any open lobby for our game.
	query := "+label.open:T label.game:" + labelGame + " label.phase:lobby"

	limit := 10
	authoritative := true
	minSize := 1
	maxSize := 7

	matches, err := nk.MatchList(ctx, limit, authoritative, "", &minSize, &maxSize, query)
	if err != nil {
		logger.Error("MatchList error: %v", err)
		return "", err
	}

	if len(matches) > 0 {
		b, _ := json.Marshal(QuickMatchResponse{MatchID: matches[0].MatchId})
		return string(b), nil
	}

	matchID, err := nk.MatchCreate(ctx, MatchName, map[string]interface{}{})
	if err != nil {
		logger.Error("MatchCreate error: %v", err)
		return "", err
	}

	b, _ := json.Marshal(QuickMatchResponse{MatchID: matchID, IsNew: true})
	return string(b), nil
}
