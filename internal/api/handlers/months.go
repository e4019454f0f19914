package handlers

import (
	"context"
	"errors"
	"net/http"
	"timezone-months-service/internal/api/dto"
	"timezone-months-service/internal/domain"
	"timezone-months-service/internal/platform/obs"

	"github.com/rs/zerolog/log"
)

// Computes month ends for a location; implemented by services.MonthEndsService.
type MonthEndsComputer interface {
	Compute(ctx context.Context, coords domain.Coordinates, from, to, format string) (domain.MonthEnds, error)
}

// MonthsHandler exposes the month-end endpoints.
type MonthsHandler struct {
	Service MonthEndsComputer
}

// Months returns the UTC end-of-month instants for a location in ISO-8601.
func (h *MonthsHandler) Months(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	q, err := parseMonthsQuery(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.Service.Compute(r.Context(), q.Coords, q.From, q.To, "")
	if err != nil {
		h.writeComputeError(w, r, err, false)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.MonthsResponse{MonthStarts: res.Values})
}

// FormattedMonths is Months with a required dateFormat and response metadata.
func (h *MonthsHandler) FormattedMonths(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	q, err := parseMonthsQuery(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	format := r.URL.Query().Get("dateFormat")
	if format == "" {
		writeError(w, r, http.StatusBadRequest, "dateFormat parameter is required")
		return
	}

	res, err := h.Service.Compute(r.Context(), q.Coords, q.From, q.To, format)
	if err != nil {
		h.writeComputeError(w, r, err, true)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FormattedMonthsResponse{
		MonthStarts: res.Values,
		Metadata: dto.FormatMetadata{
			Timezone: res.Timezone,
			Format:   format,
		},
	})
}

func (h *MonthsHandler) writeComputeError(w http.ResponseWriter, r *http.Request, err error, withMessage bool) {
	if errors.Is(err, domain.ErrInvalidMonth) {
		writeError(w, r, http.StatusBadRequest, "invalid month range. Months must be YYYY-MM with a month between 01 and 12")
		return
	}

	log.Error().
		Str("req_id", obs.RequestID(r.Context())).
		Str("path", r.URL.Path).
		Err(err).
		Msg("Compute month ends failed")

	res := dto.ErrorResponse{Error: "internal server error"}
	if withMessage {
		res.Message = err.Error()
	}
	writeJSON(w, r, http.StatusInternalServerError, res)
}
