package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/teamstats"
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/usecase"
	"github.com/samber/lo"
)

type dateRangeQuery struct {
	Start string `validate:"omitempty,datetime=2006-01-02"`
	End   string `validate:"omitempty,datetime=2006-01-02"`
}

type compareQuery struct {
	dateRangeQuery
	TeamIDs []string `validate:"required,min=1,dive,required"`
}

func (h *Handler) parseDateRange(ctx context.Context, r *http.Request) (teamstats.DateRange, error) {
	q := dateRangeQuery{
		Start: strings.TrimSpace(r.URL.Query().Get("start")),
		End:   strings.TrimSpace(r.URL.Query().Get("end")),
	}
	if err := h.validator.StructCtx(ctx, q); err != nil {
		return teamstats.DateRange{}, fmt.Errorf("%w: start and end must be YYYY-MM-DD dates", usecase.ErrInvalidInput)
	}

	return q.toDateRange(), nil
}

func (h *Handler) parseCompareQuery(ctx context.Context, r *http.Request) ([]string, teamstats.DateRange, error) {
	values := r.URL.Query()
	q := compareQuery{
		dateRangeQuery: dateRangeQuery{
			Start: strings.TrimSpace(values.Get("start")),
			End:   strings.TrimSpace(values.Get("end")),
		},
		TeamIDs: splitIDs(values["ids"]),
	}
	if err := h.validator.StructCtx(ctx, q); err != nil {
		return nil, teamstats.DateRange{}, fmt.Errorf("%w: ids is required and start/end must be YYYY-MM-DD dates", usecase.ErrInvalidInput)
	}

	return q.TeamIDs, q.toDateRange(), nil
}

// toDateRange assumes the fields already passed validation.
func (q dateRangeQuery) toDateRange() teamstats.DateRange {
	var rng teamstats.DateRange
	if q.Start != "" {
		rng.Start, _ = time.Parse(time.DateOnly, q.Start)
	}
	if q.End != "" {
		rng.End, _ = time.Parse(time.DateOnly, q.End)
	}
	return rng
}

// splitIDs accepts both ids=a,b and repeated ids=a&ids=b.
func splitIDs(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		for _, id := range strings.Split(item, ",") {
			out = append(out, strings.TrimSpace(id))
		}
	}
	return lo.Uniq(lo.Compact(out))
}
