package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/Chiusaroli/TP3-EDA-EDAversi/internal/models"
	"github.com/Chiusaroli/TP3-EDA-EDAversi/internal/reversi"
	"github.com/Chiusaroli/TP3-EDA-EDAversi/internal/services"
)

const (
	analysisKeyPrefix = "analysis:"
	analysisTTL       = 1 * time.Hour
)

// AnalysisRepository caches engine analyses in Redis.
type AnalysisRepository struct {
	services *services.Services
}

// NewAnalysisRepository creates a new AnalysisRepository.
func NewAnalysisRepository(c *fiber.Ctx) *AnalysisRepository {
	services := c.Locals("services").(*services.Services) //nolint: errcheck

	return &AnalysisRepository{
		services: services,
	}
}

func NewAnalysisRepositoryFromServices(services *services.Services) *AnalysisRepository {
	return &AnalysisRepository{
		services: services,
	}
}

// Analyze returns the best move for the given state, from cache when the same
// position was analyzed before. The state must be the parse of stateString.
func (repo *AnalysisRepository) Analyze(ctx context.Context, stateString string, state *reversi.GameState) (models.AnalysisResponse, error) {
	key := analysisKeyPrefix + stateString
	redisConn := repo.services.Redis

	cached, err := redisConn.Get(ctx, key).Result()
	if err == nil {
		var response models.AnalysisResponse
		if err = json.Unmarshal([]byte(cached), &response); err != nil {
			return models.AnalysisResponse{}, fmt.Errorf("error unmarshaling cached analysis: %w", err)
		}
		return response, nil
	}
	if !errors.Is(err, redis.Nil) {
		return models.AnalysisResponse{}, fmt.Errorf("error reading analysis cache: %w", err)
	}

	start := time.Now()
	result := reversi.Search(state)
	response := models.NewAnalysisResponse(result)

	slog.Debug("analysis computed",
		"move", response.Move,
		"nodes", response.Nodes,
		"depth", response.Depth,
		"duration", time.Since(start),
	)

	jsonData, err := json.Marshal(response)
	if err != nil {
		return models.AnalysisResponse{}, fmt.Errorf("error marshaling analysis: %w", err)
	}

	if err = redisConn.Set(ctx, key, jsonData, analysisTTL).Err(); err != nil {
		return models.AnalysisResponse{}, fmt.Errorf("error caching analysis: %w", err)
	}

	return response, nil
}
