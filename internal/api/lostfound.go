package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/erazemk/kampus/internal/campus"
	"github.com/erazemk/kampus/internal/catalog"
	"github.com/erazemk/kampus/internal/imaging"
	"github.com/erazemk/kampus/internal/model"
	"github.com/erazemk/kampus/internal/notify"
)

// LostFoundHandler handles the lost-and-found board.
type LostFoundHandler struct {
	Sessions  *campus.Registry
	Publisher notify.Publisher
}

type reportRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	Location    string `json:"location"`
	ContactInfo string `json:"contact_info"`
	Image       string `json:"image"`
}

// validate trims the request and checks required fields and enums.
func (req *reportRequest) validate() error {
	for _, f := range []*string{&req.Title, &req.Description, &req.Category, &req.Status, &req.Location, &req.ContactInfo, &req.Image} {
		*f = strings.TrimSpace(*f)
	}
	if req.Title == "" || req.Description == "" || req.Location == "" || req.ContactInfo == "" {
		return errors.New("title, description, location and contact info required")
	}
	if !model.IsCategory(model.ItemCategories, req.Category) {
		return errors.New("invalid category")
	}
	if req.Status != model.ItemStatusLost && req.Status != model.ItemStatusFound {
		return errors.New("status must be lost or found")
	}
	return nil
}

// List handles GET /api/lostfound?category=&status=&q=.
func (h *LostFoundHandler) List(w http.ResponseWriter, r *http.Request) {
	category, query := filterParams(r)
	status := r.URL.Query().Get("status")
	if status == "" {
		status = catalog.All
	}
	jsonResponse(w, http.StatusOK, userSession(h.Sessions, r).Items(category, status, query))
}

// Report handles POST /api/lostfound.
func (h *LostFoundHandler) Report(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.validate(); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	claims := GetClaims(r.Context())
	item := userSession(h.Sessions, r).Report(model.LostFoundItem{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Category:    req.Category,
		Status:      req.Status,
		Location:    req.Location,
		ReportedBy:  claims.Name(),
		ContactInfo: req.ContactInfo,
	})

	notify.Send(r.Context(), h.Publisher, notify.NewItemEvent(notify.KindReported, item, claims.UserID))
	slog.Info("item reported", "user", claims.Username, "item", item.ID, "status", item.Status)
	jsonResponse(w, http.StatusCreated, item)
}

// Claim handles POST /api/lostfound/{id}/claim.
func (h *LostFoundHandler) Claim(w http.ResponseWriter, r *http.Request) {
	item, err := userSession(h.Sessions, r).Claim(r.PathValue("id"))
	if err != nil {
		sessionError(w, err, "item")
		return
	}

	claims := GetClaims(r.Context())
	notify.Send(r.Context(), h.Publisher, notify.NewItemEvent(notify.KindClaimed, item, claims.UserID))
	slog.Info("item claimed", "user", claims.Username, "item", item.ID)
	jsonResponse(w, http.StatusOK, item)
}

// UploadPhoto handles PUT /api/lostfound/{id}/photo with a multipart
// "photo" field.
func (h *LostFoundHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	sess := userSession(h.Sessions, r)
	id := r.PathValue("id")
	if _, err := sess.Item(id); err != nil {
		sessionError(w, err, "item")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, imaging.MaxUploadBytes+1<<20)
	if err := r.ParseMultipartForm(imaging.MaxUploadBytes); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "photo file required")
		return
	}
	defer file.Close()

	photo, err := imaging.NormalizePhoto(file)
	if err != nil {
		if !errors.Is(err, imaging.ErrUnsupported) {
			slog.Warn("rejected photo upload", "item", id, "error", err)
		}
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := sess.SetItemPhoto(id, photo.Data, photo.MIME); err != nil {
		sessionError(w, err, "item")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"message": "photo uploaded",
		"width":   photo.Width,
		"height":  photo.Height,
	})
}

// GetPhoto handles GET /api/lostfound/{id}/photo.
func (h *LostFoundHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	item, err := userSession(h.Sessions, r).Item(r.PathValue("id"))
	if err != nil {
		sessionError(w, err, "item")
		return
	}
	if item.Photo == nil {
		jsonError(w, http.StatusNotFound, "no photo")
		return
	}

	w.Header().Set("Content-Type", item.PhotoMIME)
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.Write(item.Photo)
}
