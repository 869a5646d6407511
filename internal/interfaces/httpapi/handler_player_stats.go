package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerStats")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	card, err := h.playerStatsService.GetStatCard(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player stats failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, statCardToDTO(card))
}

func (h *Handler) ListTeamPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamPlayerStats")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	cards, err := h.playerStatsService.ListTeamStatCards(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list team player stats failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]statCardDTO, 0, len(cards))
	for _, card := range cards {
		items = append(items, statCardToDTO(card))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
