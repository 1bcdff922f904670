package adapthttp

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"healthchat/internal/domain"
)

// measurementBody is the write payload. Schema checks happen here, upstream
// of the engine: the services never see a malformed record.
type measurementBody struct {
	UserID    string  `json:"userId"`
	Type      string  `json:"type"`
	Value     any     `json:"value"`
	Unit      string  `json:"unit"`
	Timestamp *string `json:"timestamp"`
	Notes     string  `json:"notes"`
}

func (s *Server) handleMeasurements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		items, err := s.measurements.ListAll(ctx, keyQuery(r, "userId"))
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})

	case http.MethodPost:
		var body measurementBody
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		metric := domain.MetricType(body.Type)
		if !metric.Valid() {
			writeError(w, http.StatusBadRequest, fmt.Errorf("unknown metric type %q", body.Type))
			return
		}
		if body.Value == nil {
			writeError(w, http.StatusBadRequest, errors.New("value is required"))
			return
		}
		if body.Unit == "" {
			writeError(w, http.StatusBadRequest, errors.New("unit is required"))
			return
		}

		rec := domain.MeasurementRecord{
			Type:  metric,
			Value: body.Value,
			Unit:  body.Unit,
			Notes: body.Notes,
		}
		if body.Timestamp != nil {
			ts, err := time.Parse(time.RFC3339, *body.Timestamp)
			if err != nil {
				writeError(w, http.StatusBadRequest, fmt.Errorf("invalid timestamp: %w", err))
				return
			}
			rec.Timestamp = ts
		}

		stored, err := s.measurements.Record(ctx, orDefault(body.UserID), rec)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"record": stored})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
