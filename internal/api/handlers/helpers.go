package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"timezone-months-service/internal/api/dto"
	"timezone-months-service/internal/domain"
	"timezone-months-service/internal/platform/obs"

	"github.com/rs/zerolog/log"
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().
			Str("req_id", obs.RequestID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Err(err).
			Msg("Encode failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, dto.ErrorResponse{Error: msg})
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	return true
}

type monthsQuery struct {
	Coords domain.Coordinates
	From   string
	To     string
}

// Parse and validate lon, lat, from and to. The returned error message is
// meant for the client.
func parseMonthsQuery(r *http.Request) (monthsQuery, error) {
	q := r.URL.Query()

	lon, err := parseCoordinate(q.Get("lon"))
	if err != nil {
		return monthsQuery{}, errors.New("invalid longitude parameter")
	}
	lat, err := parseCoordinate(q.Get("lat"))
	if err != nil {
		return monthsQuery{}, errors.New("invalid latitude parameter")
	}

	from := strings.TrimSpace(q.Get("from"))
	if !monthPattern.MatchString(from) {
		return monthsQuery{}, errors.New("invalid from parameter. Format should be YYYY-MM")
	}
	to := strings.TrimSpace(q.Get("to"))
	if !monthPattern.MatchString(to) {
		return monthsQuery{}, errors.New("invalid to parameter. Format should be YYYY-MM")
	}

	return monthsQuery{
		Coords: domain.Coordinates{Lon: lon, Lat: lat},
		From:   from,
		To:     to,
	}, nil
}

func parseCoordinate(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errors.New("missing")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("not finite")
	}
	return v, nil
}
