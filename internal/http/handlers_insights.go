package http

import (
	"log/slog"
	"net/http"

	"github.com/lokesh-122/SmartMoney/internal/services"
)

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	insights, ok := s.loadInsights(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, insights)
}

// handleInsightsSection serves one slice of the bundle, e.g.
// GET /api/insights/spending.
func (s *Server) handleInsightsSection(w http.ResponseWriter, r *http.Request) {
	insights, ok := s.loadInsights(w, r)
	if !ok {
		return
	}

	switch r.PathValue("section") {
	case "summary":
		writeJSON(w, http.StatusOK, insights.Summary)
	case "spending":
		writeJSON(w, http.StatusOK, insights.Spending)
	case "monthly":
		writeJSON(w, http.StatusOK, insights.Monthly)
	case "forecast":
		writeJSON(w, http.StatusOK, insights.Forecast)
	case "investments":
		writeJSON(w, http.StatusOK, insights.Investments)
	case "tips":
		writeJSON(w, http.StatusOK, insights.Tips)
	default:
		writeError(w, http.StatusNotFound, "unknown insights section")
	}
}

func (s *Server) loadInsights(w http.ResponseWriter, r *http.Request) (*services.Insights, bool) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	insights, err := s.insights.GetInsights(r.Context(), uid)
	if err != nil {
		slog.ErrorContext(r.Context(), "Compute insights failed", "user_id", uid, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to compute insights")
		return nil, false
	}
	return insights, true
}
