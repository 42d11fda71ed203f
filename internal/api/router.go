package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/erazemk/kampus/internal/campus"
	"github.com/erazemk/kampus/internal/model"
	"github.com/erazemk/kampus/internal/notify"
	"github.com/erazemk/kampus/internal/prefs"
)

// Deps is everything the API needs to serve requests.
type Deps struct {
	DB        *sql.DB
	JWTSecret string
	Sessions  *campus.Registry
	Prefs     prefs.Store
	Publisher notify.Publisher
}

// NewRouter creates the API router with all endpoints registered.
func NewRouter(d Deps) http.Handler {
	if d.Prefs == nil {
		d.Prefs = &prefs.SQL{DB: d.DB}
	}
	if d.Publisher == nil {
		d.Publisher = notify.Nop{}
	}

	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: d.DB, JWTSecret: d.JWTSecret, Sessions: d.Sessions}
	usersHandler := &UsersHandler{DB: d.DB, Sessions: d.Sessions}
	onboardingHandler := &OnboardingHandler{Prefs: d.Prefs}
	dashboardHandler := &DashboardHandler{Sessions: d.Sessions}
	eventsHandler := &EventsHandler{Sessions: d.Sessions}
	lostFoundHandler := &LostFoundHandler{Sessions: d.Sessions, Publisher: d.Publisher}
	cafeteriaHandler := &CafeteriaHandler{Sessions: d.Sessions}
	navigationHandler := &NavigationHandler{Sessions: d.Sessions}

	authMW := AuthMiddleware(d.JWTSecret, d.DB)
	requireAdmin := RequireRole(model.RoleAdmin)

	authed := func(h http.HandlerFunc) http.Handler { return authMW(h) }
	admin := func(h http.HandlerFunc) http.Handler { return authMW(requireAdmin(h)) }

	// Public.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/health", health(d.DB))

	// Account.
	mux.Handle("PUT /api/auth/password", authed(authHandler.ChangePassword))
	mux.Handle("POST /api/auth/logout", authed(authHandler.Logout))

	// Onboarding and dashboard.
	mux.Handle("GET /api/onboarding", authed(onboardingHandler.Get))
	mux.Handle("PUT /api/onboarding", authed(onboardingHandler.Complete))
	mux.Handle("GET /api/dashboard", authed(dashboardHandler.Get))

	// Events.
	mux.Handle("GET /api/events", authed(eventsHandler.List))
	mux.Handle("POST /api/events/{id}/registration", authed(eventsHandler.ToggleRegistration))

	// Lost and found.
	mux.Handle("GET /api/lostfound", authed(lostFoundHandler.List))
	mux.Handle("POST /api/lostfound", authed(lostFoundHandler.Report))
	mux.Handle("POST /api/lostfound/{id}/claim", authed(lostFoundHandler.Claim))
	mux.Handle("PUT /api/lostfound/{id}/photo", authed(lostFoundHandler.UploadPhoto))
	mux.Handle("GET /api/lostfound/{id}/photo", authed(lostFoundHandler.GetPhoto))

	// Cafeteria.
	mux.Handle("GET /api/cafeteria/menu", authed(cafeteriaHandler.Menu))
	mux.Handle("GET /api/cafeteria/queues", authed(cafeteriaHandler.Queues))
	mux.Handle("GET /api/cafeteria/cart", authed(cafeteriaHandler.Cart))
	mux.Handle("POST /api/cafeteria/cart/{id}", authed(cafeteriaHandler.Add))
	mux.Handle("DELETE /api/cafeteria/cart/{id}", authed(cafeteriaHandler.Remove))

	// Navigation.
	mux.Handle("GET /api/navigation/points", authed(navigationHandler.Points))
	mux.Handle("POST /api/navigation/locate", authed(navigationHandler.Locate))
	mux.Handle("GET /api/navigation/points/{id}/directions", authed(navigationHandler.Directions))

	// Users (admin only).
	mux.Handle("GET /api/users", admin(usersHandler.List))
	mux.Handle("POST /api/users", admin(usersHandler.Create))
	mux.Handle("PUT /api/users/{id}/password", admin(usersHandler.ResetPassword))
	mux.Handle("DELETE /api/users/{id}", admin(usersHandler.Delete))

	return mux
}

// health handles GET /api/health.
func health(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			slog.Error("database unreachable", "error", err)
			jsonError(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
		jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
