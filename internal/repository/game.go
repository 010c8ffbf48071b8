package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/Chiusaroli/TP3-EDA-EDAversi/internal/models"
	"github.com/Chiusaroli/TP3-EDA-EDAversi/internal/services"
)

const (
	gameStatsKey = "game_stats"
	gameStatsTTL = 5 * time.Minute
)

// ErrGameNotFound is returned when no archived game has the requested ID.
var ErrGameNotFound = errors.New("game not found")

// GameRepository handles database operations for archived games.
type GameRepository struct {
	services *services.Services
}

// NewGameRepository creates a new GameRepository.
func NewGameRepository(c *fiber.Ctx) *GameRepository {
	services := c.Locals("services").(*services.Services) //nolint: errcheck

	return &GameRepository{
		services: services,
	}
}

func NewGameRepositoryFromServices(services *services.Services) *GameRepository {
	return &GameRepository{
		services: services,
	}
}

// SaveGame archives a finished game and returns it with its assigned ID.
func (repo *GameRepository) SaveGame(ctx context.Context, req models.SaveGameRequest) (models.Game, error) {
	game := models.Game{
		ID:         uuid.New().String(),
		Moves:      pq.StringArray(req.Moves),
		Winner:     req.Winner,
		BlackScore: req.BlackScore,
		WhiteScore: req.WhiteScore,
		CreatedAt:  time.Now().UTC(),
	}

	query := `
		INSERT INTO games (id, moves, winner, black_score, white_score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	pgConn := repo.services.Postgres

	if _, err := pgConn.ExecContext(ctx, query,
		game.ID, game.Moves, game.Winner, game.BlackScore, game.WhiteScore, game.CreatedAt,
	); err != nil {
		return models.Game{}, fmt.Errorf("error saving game: %w", err)
	}

	// Archived games change the stats, drop the cached value.
	redisConn := repo.services.Redis
	if err := redisConn.Del(ctx, gameStatsKey).Err(); err != nil {
		return models.Game{}, fmt.Errorf("error invalidating stats cache: %w", err)
	}

	return game, nil
}

// GetGame fetches an archived game by ID.
func (repo *GameRepository) GetGame(ctx context.Context, id string) (models.Game, error) {
	var game models.Game

	query := `
		SELECT id, moves, winner, black_score, white_score, created_at
		FROM games
		WHERE id = $1
	`

	pgConn := repo.services.Postgres

	if err := pgConn.GetContext(ctx, &game, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Game{}, ErrGameNotFound
		}
		return models.Game{}, fmt.Errorf("error fetching game: %w", err)
	}

	return game, nil
}

// GetStats returns aggregate statistics over the archive, cached in Redis.
func (repo *GameRepository) GetStats(ctx context.Context) (models.GameStats, error) {
	redisConn := repo.services.Redis

	cached, err := redisConn.Get(ctx, gameStatsKey).Result()
	if err == nil {
		var stats models.GameStats
		if err = json.Unmarshal([]byte(cached), &stats); err != nil {
			return models.GameStats{}, fmt.Errorf("error unmarshaling cached stats: %w", err)
		}
		return stats, nil
	}
	if !errors.Is(err, redis.Nil) {
		return models.GameStats{}, fmt.Errorf("error reading stats cache: %w", err)
	}

	var stats models.GameStats

	query := `
		SELECT
			COUNT(*) AS total_games,
			COUNT(*) FILTER (WHERE winner = 'black') AS black_wins,
			COUNT(*) FILTER (WHERE winner = 'white') AS white_wins,
			COUNT(*) FILTER (WHERE winner = 'draw') AS draws,
			COALESCE(AVG(ABS(black_score - white_score)), 0) AS avg_margin
		FROM games
	`

	pgConn := repo.services.Postgres

	if err = pgConn.GetContext(ctx, &stats, query); err != nil {
		return models.GameStats{}, fmt.Errorf("error computing stats: %w", err)
	}

	jsonData, err := json.Marshal(stats)
	if err != nil {
		return models.GameStats{}, fmt.Errorf("error marshaling stats: %w", err)
	}

	if err = redisConn.Set(ctx, gameStatsKey, jsonData, gameStatsTTL).Err(); err != nil {
		return models.GameStats{}, fmt.Errorf("error caching stats: %w", err)
	}

	return stats, nil
}
