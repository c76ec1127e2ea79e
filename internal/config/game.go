package config

import "github.com/tomz197/pong/internal/game"

// Game builds the game configuration from the environment:
// PONG_CPU (strong|weak), PONG_PADDLE (narrow|normal|wide),
// PONG_WIN_SCORE and PONG_SEED. A set seed makes serves reproducible.
func Game() (game.Config, []game.Option) {
	cfg := game.DefaultConfig()
	cfg.Difficulty = game.ParseDifficulty(GetEnv("PONG_CPU", cfg.Difficulty.String()))
	cfg.PaddleSize = game.ParsePaddleSize(GetEnv("PONG_PADDLE", cfg.PaddleSize.String()))
	if score := GetEnvInt("PONG_WIN_SCORE", cfg.WinningScore); score > 0 {
		cfg.WinningScore = score
	}

	var opts []game.Option
	if seed, ok := GetEnvUint64("PONG_SEED"); ok {
		opts = append(opts, game.WithSeed(seed))
	}
	return cfg, opts
}
