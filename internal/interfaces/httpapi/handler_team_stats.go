package httpapi

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"

	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/teamstats"
	"github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.teamStatsService.ListTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

// GetTeamSummary writes the flat summary object, or {} when the team has no
// matches in the requested range.
func (h *Handler) GetTeamSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamSummary")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	rng, err := h.parseDateRange(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, ok, err := h.teamStatsService.GetSummary(ctx, teamID, rng)
	if err != nil {
		h.logger.WarnContext(ctx, "get team summary failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, summaryToMap(summary, ok))
}

func (h *Handler) ExportTeamSummaryCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportTeamSummaryCSV")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	rng, err := h.parseDateRange(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, ok, err := h.teamStatsService.GetSummary(ctx, teamID, rng)
	if err != nil {
		h.logger.WarnContext(ctx, "export team summary failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := writeSummaryCSV(buf, summary, ok); err != nil {
		h.logger.ErrorContext(ctx, "encode team summary csv failed", "team_id", teamID, "error", err)
		writeInternalError(ctx, w)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", attachmentDisposition(teamID+"-summary.csv"))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) CompareTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompareTeams")
	defer span.End()

	teamIDs, rng, err := h.parseCompareQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.teamStatsService.CompareTeams(ctx, teamIDs, rng)
	if err != nil {
		h.logger.WarnContext(ctx, "compare teams failed", "team_ids", teamIDs, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]teamComparisonDTO, 0, len(items))
	for _, item := range items {
		out = append(out, comparisonToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

// writeSummaryCSV writes metric,value rows in a fixed order. An empty
// summary produces only the header.
func writeSummaryCSV(buf *bytebufferpool.ByteBuffer, summary teamstats.TeamSummary, ok bool) error {
	cw := csv.NewWriter(buf)
	rows := [][]string{{"metric", "value"}}
	if ok {
		rows = append(rows,
			[]string{"totalMatches", strconv.Itoa(summary.TotalMatches)},
			[]string{"goalsFor", strconv.Itoa(summary.GoalsFor)},
			[]string{"goalsAgainst", strconv.Itoa(summary.GoalsAgainst)},
			[]string{"goalDifference", strconv.Itoa(summary.GoalDifference)},
			[]string{"wins", strconv.Itoa(summary.Wins)},
			[]string{"draws", strconv.Itoa(summary.Draws)},
			[]string{"losses", strconv.Itoa(summary.Losses)},
			[]string{"winPercentage", strconv.Itoa(summary.WinPercentage)},
			[]string{"form", strings.Join(formToStrings(summary.Form), "")},
		)
		for _, field := range teamstats.RateFields {
			rows = append(rows, []string{"avg_" + string(field), strconv.Itoa(summary.Average(field))})
		}
		for _, field := range teamstats.RateFields {
			rows = append(rows, []string{"total_" + string(field), strconv.FormatFloat(summary.Total(field), 'f', -1, 64)})
		}
	}

	if err := cw.WriteAll(rows); err != nil {
		return errors.Wrap(err, "write csv rows")
	}
	return nil
}
