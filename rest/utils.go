package rest

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"
)

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"message": message})
}

func respondWithValidationError(errs map[string]string, w http.ResponseWriter) {
	respondWithJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": errs})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// getPageParams reads page and limit with the defaults the list
// endpoints always used.
func getPageParams(r *http.Request) (page, limit int64) {
	page, limit = 1, 10
	if v := r.FormValue("page"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			page = n
		}
	}
	if v := r.FormValue("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}
	return page, limit
}

// getDateRange reads optional startDate/endDate filters. The end date
// is pushed to the end of its day so the range stays inclusive.
func getDateRange(r *http.Request) (start, end *time.Time, err error) {
	if v := r.FormValue("startDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return nil, nil, err
		}
		start = &t
	}
	if v := r.FormValue("endDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return nil, nil, err
		}
		t = endOfDay(t)
		end = &t
	}
	return start, end, nil
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}

func totalPages(total, limit int64) int64 {
	if limit == 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
