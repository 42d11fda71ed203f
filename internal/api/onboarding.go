package api

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/kampus/internal/prefs"
)

// OnboardingHandler exposes the persisted onboarding flag.
type OnboardingHandler struct {
	Prefs prefs.Store
}

type onboardingResponse struct {
	Complete bool `json:"complete"`
}

// Get handles GET /api/onboarding.
func (h *OnboardingHandler) Get(w http.ResponseWriter, r *http.Request) {
	done, err := prefs.OnboardingComplete(r.Context(), h.Prefs)
	if err != nil {
		slog.Error("failed to read onboarding flag", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to read onboarding state")
		return
	}
	jsonResponse(w, http.StatusOK, onboardingResponse{Complete: done})
}

// Complete handles PUT /api/onboarding.
func (h *OnboardingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	if err := prefs.CompleteOnboarding(r.Context(), h.Prefs); err != nil {
		slog.Error("failed to write onboarding flag", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to save onboarding state")
		return
	}
	slog.Info("onboarding completed", "user", GetClaims(r.Context()).Username)
	jsonResponse(w, http.StatusOK, onboardingResponse{Complete: true})
}
