package ws

import (
	"encoding/json"

	"github.com/Chiusaroli/TP3-EDA-EDAversi/internal/models"
)

type Incoming struct {
	Event string          `json:"event"`
	ID    int             `json:"id"`
	Data  json.RawMessage `json:"data"`
}

type Outgoing struct {
	ID   int `json:"id"`
	Data any `json:"data"`
}

type AnalysisRequest struct {
	States []string `json:"states"`
}

type AnalysisResponse struct {
	Analyses []models.AnalysisResponse `json:"analyses"`
}
