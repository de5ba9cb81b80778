package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/gw2tracker/pkg/domain"
	"github.com/umputun/gw2tracker/pkg/itemdb"
	"github.com/umputun/gw2tracker/pkg/tracker"
	"github.com/umputun/gw2tracker/pkg/viewmodel"
)

// statusHandler returns server status with the item database state
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	locale, count := s.items.Loaded()
	status := map[string]any{
		"status":     "ok",
		"version":    s.version,
		"time":       time.Now().UTC(),
		"next_reset": s.events.NextReset(),
		"items": map[string]any{
			"locale": locale,
			"count":  count,
		},
		"rebuild": s.items.Progress(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// eventsHandler lists visible events, or all of them with ?all=true
func (s *Server) eventsHandler(w http.ResponseWriter, r *http.Request) {
	events := s.events.Events()
	if all, _ := strconv.ParseBool(r.URL.Query().Get("all")); all {
		events = s.events.AllEvents()
	}
	res := make([]eventView, 0, len(events))
	for _, e := range events {
		res = append(res, newEventView(e))
	}
	renderJSON(w, r, http.StatusOK, res)
}

func (s *Server) hideEventHandler(w http.ResponseWriter, r *http.Request) {
	s.idCommand(w, r, s.events.HideCommand)
}

func (s *Server) unhideEventHandler(w http.ResponseWriter, r *http.Request) {
	s.idCommand(w, r, s.events.UnhideCommand)
}

func (s *Server) resetEventsHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.events.ResetHiddenCommand(); err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// dungeonsHandler lists visible dungeons, or all of them with ?all=true
func (s *Server) dungeonsHandler(w http.ResponseWriter, r *http.Request) {
	list := s.dungeons.Dungeons
	if all, _ := strconv.ParseBool(r.URL.Query().Get("all")); all {
		list = s.dungeons.AllDungeons
	}
	dungeons, err := list(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to get dungeons: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	res := make([]dungeonView, 0, len(dungeons))
	for _, d := range dungeons {
		res = append(res, newDungeonView(d))
	}
	renderJSON(w, r, http.StatusOK, res)
}

func (s *Server) hideDungeonHandler(w http.ResponseWriter, r *http.Request) {
	s.idCommand(w, r, func(id uuid.UUID) error { return s.dungeons.HideDungeonCommand(id, true) })
}

func (s *Server) showDungeonHandler(w http.ResponseWriter, r *http.Request) {
	s.idCommand(w, r, func(id uuid.UUID) error { return s.dungeons.HideDungeonCommand(id, false) })
}

func (s *Server) resetDungeonsHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.dungeons.ResetCommand(); err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) togglePathHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	completed, err := s.dungeons.TogglePathCommand(id)
	if err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"id": id, "completed": completed})
}

// completePathHandler marks path completed, optional "duration" form value records a timed run
func (s *Server) completePathHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var d time.Duration
	if v := r.FormValue("duration"); v != "" {
		var err error
		if d, err = time.ParseDuration(v); err != nil || d <= 0 {
			renderError(w, r, fmt.Errorf("invalid duration %q", v), http.StatusBadRequest)
			return
		}
	}
	run, err := s.dungeons.CompletePathCommand(r.Context(), id, d)
	if err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	res := map[string]any{"id": id, "completed": true}
	if run != nil {
		res["run"] = newRunView(*run)
	}
	renderJSON(w, r, http.StatusOK, res)
}

func (s *Server) pathRunsHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			renderError(w, r, fmt.Errorf("invalid limit %q", v), http.StatusBadRequest)
			return
		}
		limit = n
	}
	runs, err := s.dungeons.RunsCommand(r.Context(), id, limit)
	if err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	res := make([]runView, 0, len(runs))
	for _, run := range runs {
		res = append(res, newRunView(run))
	}
	renderJSON(w, r, http.StatusOK, res)
}

func (s *Server) clearPathRunsHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	n, err := s.dungeons.ClearRunsCommand(r.Context(), id)
	if err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"deleted": n})
}

func (s *Server) getSettingsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.settings.Settings())
}

func (s *Server) updateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var patch viewmodel.SettingsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		renderError(w, r, fmt.Errorf("invalid settings: %w", err), http.StatusBadRequest)
		return
	}
	res, err := s.settings.Update(patch)
	if err != nil {
		lgr.Printf("[WARN] failed to update settings: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

func (s *Server) itemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		renderError(w, r, errors.New("invalid item ID"), http.StatusBadRequest)
		return
	}
	item, ok := s.items.Item(id)
	if !ok {
		renderError(w, r, fmt.Errorf("item %d not found", id), http.StatusNotFound)
		return
	}
	renderJSON(w, r, http.StatusOK, newItemView(item))
}

// rebuildHandler starts item database rebuild for ?lang=xx, current locale by default
func (s *Server) rebuildHandler(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		current, _ := s.items.Loaded()
		lang = string(current)
	}
	if lang == "" {
		lang = string(domain.DefaultLocale)
	}
	locale, err := domain.ParseLocale(lang)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	if err := s.items.RebuildCommand(s.backgroundCtx(), locale); err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusAccepted, s.items.Progress())
}

func (s *Server) rebuildStatusHandler(w http.ResponseWriter, r *http.Request) {
	p := s.items.Progress()
	res := map[string]any{"progress": p, "percent": p.Percent()}
	if p.Locale != "" {
		last, err := s.items.LastRebuild(r.Context(), p.Locale)
		if err != nil {
			lgr.Printf("[WARN] can't get last rebuild time for %s: %v", p.Locale, err)
		}
		if !last.IsZero() {
			res["last_rebuild"] = last
		}
	}
	renderJSON(w, r, http.StatusOK, res)
}

func (s *Server) cancelRebuildHandler(w http.ResponseWriter, r *http.Request) {
	s.items.CancelCommand()
	renderJSON(w, r, http.StatusAccepted, s.items.Progress())
}

// idCommand runs a command taking the {id} path value
func (s *Server) idCommand(w http.ResponseWriter, r *http.Request, cmd func(id uuid.UUID) error) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := cmd(id); err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"id": id, "status": "ok"})
}

// pathID parses {id} path value, renders 400 on failure
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid id %q", r.PathValue("id")), http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

// errorCode maps known errors to http status codes
func errorCode(err error) int {
	switch {
	case errors.Is(err, tracker.ErrUnknownEvent), errors.Is(err, tracker.ErrUnknownPath),
		errors.Is(err, tracker.ErrUnknownDungeon):
		return http.StatusNotFound
	case errors.Is(err, itemdb.ErrRebuildInProgress):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
