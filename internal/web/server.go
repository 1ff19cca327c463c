package web

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/dojanjanjan/charm-reservations/internal/auth"
	"github.com/dojanjanjan/charm-reservations/internal/booking"
	"github.com/dojanjanjan/charm-reservations/internal/reservations"
)

// conflictMessage is the exact copy the frontend shows on a double booking.
const conflictMessage = "This table is already booked for the selected time slot."

// Server is the JSON API for the reservation book. Everything except login
// and the health check sits behind the staff session.
type Server struct {
	Auth         *auth.Store
	Reservations *reservations.Service
	Plan         booking.FloorPlan
	Schedule     booking.Schedule
	Hub          *Hub
}

func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()
	r.Use(corsMiddleware)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/api/logout", s.handleLogout).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.Auth.RequireAuth)
	api.HandleFunc("/floorplan", s.handleFloorPlan).Methods(http.MethodGet)
	api.HandleFunc("/days/{date}", s.handleDay).Methods(http.MethodGet)
	api.HandleFunc("/days/{date}/ws", s.handleDayWS).Methods(http.MethodGet)
	api.HandleFunc("/reservations", s.handleCreate).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{id}", s.handleGet).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{id}", s.handleUpdate).Methods(http.MethodPut)
	api.HandleFunc("/reservations/{id}", s.handleDelete).Methods(http.MethodDelete)
	api.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)

	return r
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps the service's sentinel errors onto HTTP statuses.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reservations.ErrConflict):
		respondError(w, http.StatusConflict, conflictMessage)
	case errors.Is(err, reservations.ErrNotFound):
		respondError(w, http.StatusNotFound, "reservation not found")
	case errors.Is(err, reservations.ErrInvalid):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("api: %v", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", r.Header.Get("Origin"))
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PIN string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !s.Auth.VerifyPIN(req.PIN) {
		respondError(w, http.StatusUnauthorized, "wrong PIN")
		return
	}
	if err := s.Auth.SetSession(w, r); err != nil {
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.Auth.ClearSession(w)
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type floorPlanView struct {
	Tables          []booking.Table                   `json:"tables"`
	OpeningHours    map[time.Weekday][]booking.Period `json:"openingHours"`
	SlotMinutes     int                               `json:"slotMinutes"`
	DurationMinutes int                               `json:"durationMinutes"`
}

func (s *Server) handleFloorPlan(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, floorPlanView{
		Tables:          s.Plan.Tables,
		OpeningHours:    s.Schedule.Hours,
		SlotMinutes:     s.Schedule.SlotMinutes,
		DurationMinutes: s.Schedule.DurationMinutes,
	})
}

// occupancyCell is the JSON shape of one table×slot cell. Free cells are
// omitted from the day view entirely.
type occupancyCell struct {
	State       string               `json:"state"`
	Reservation *booking.Reservation `json:"reservation,omitempty"`
}

type dayView struct {
	Date         string                           `json:"date"`
	Closed       bool                             `json:"closed"`
	Slots        []string                         `json:"slots"`
	GridSlots    []string                         `json:"gridSlots"`
	Reservations []booking.Reservation            `json:"reservations"`
	Occupancy    map[int]map[string]occupancyCell `json:"occupancy"`
}

func (s *Server) handleDay(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["date"]
	date, err := booking.ParseDate(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	rs, err := s.Reservations.ListByDate(r.Context(), raw)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	grid := s.Schedule.GridSlots(date)
	occ := s.Schedule.ProjectOccupancy(rs, grid)

	view := dayView{
		Date:         raw,
		Closed:       len(grid) == 0,
		Slots:        s.Schedule.Slots(date),
		GridSlots:    grid,
		Reservations: rs,
		Occupancy:    make(map[int]map[string]occupancyCell, len(occ)),
	}
	for tableID, cells := range occ {
		out := make(map[string]occupancyCell, len(cells))
		for slot, st := range cells {
			out[slot] = occupancyCell{State: st.State.String(), Reservation: st.Reservation}
		}
		view.Occupancy[tableID] = out
	}
	respondJSON(w, http.StatusOK, view)
}

func (s *Server) handleDayWS(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["date"]
	if _, err := booking.ParseDate(raw); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.Hub.ServeWS(w, r, raw)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var in reservations.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	res, err := s.Reservations.Create(r.Context(), in)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, res)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	res, err := s.Reservations.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var in reservations.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	res, err := s.Reservations.Update(r.Context(), mux.Vars(r)["id"], in)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.Reservations.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sum, err := s.Reservations.Stats(r.Context(), q.Get("from"), q.Get("to"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sum)
}

// Start serves h on addr until ctx is cancelled, then shuts down gracefully.
func Start(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	log.Printf("listening on %s", addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
