package nakama

import (
	"context"
	"database/sql"

	"jokershed/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// configPathEnv names the runtime environment variable pointing at the
// optional YAML configuration file.
const configPathEnv = "JOKERSHED_CONFIG"

// InitModule wires RPCs and match handlers for the Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	cfg, err := config.Load(configPath(ctx))
	if err != nil {
		return err
	}

	if err := RegisterRPCs(initializer); err != nil {
		return err
	}

	if err := initializer.RegisterMatch(MatchName, func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
		return newMatchHandler(cfg), nil
	}); err != nil {
		return err
	}

	logger.Info("jokershed module loaded.")
	return nil
}

func configPath(ctx context.Context) string {
	env, ok := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if !ok {
		return ""
	}
	return env[configPathEnv]
}
