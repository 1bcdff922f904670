package adapthttp

import "net/http"

// insightsNoData is the fixed reply when a user has zero measurements; the
// insight engine itself is never invoked in that case.
const insightsNoData = "No health data recorded yet. Log some measurements to see your insights."

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	report, err := s.insights.Compute(r.Context(), keyQuery(r, "userId"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if report == nil {
		writeJSON(w, http.StatusOK, map[string]any{"message": insightsNoData})
		return
	}
	writeJSON(w, http.StatusOK, report)
}
