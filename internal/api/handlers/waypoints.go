package handlers

import (
	"geometry-service/internal/api/dto"
	"geometry-service/internal/domain"
	"geometry-service/internal/ports"
	"log"
	"net/http"
	"strings"
)

// WaypointHandler lists and stores named waypoints.
type WaypointHandler struct {
	Repo ports.WaypointRepository
}

func (h *WaypointHandler) Serve(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.List(w, r)
	case http.MethodPost:
		h.Upsert(w, r)
	default:
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *WaypointHandler) List(w http.ResponseWriter, r *http.Request) {
	waypoints, err := h.Repo.ListWaypoints(r.Context())
	if err != nil {
		log.Printf("list waypoints failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListWaypointsResponse{
		Waypoints: make([]dto.WaypointResponse, 0, len(waypoints)),
	}
	for _, wp := range waypoints {
		res.Waypoints = append(res.Waypoints, dto.WaypointResponse{
			Name: wp.Name,
			X:    wp.Position.X(),
			Y:    wp.Position.Y(),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *WaypointHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req dto.UpsertWaypointRequest
	if !decodeBody(w, r, &req) {
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		writeError(w, r, http.StatusBadRequest, "name is required")
		return
	}

	wp := &domain.Waypoint{Name: name, Position: domain.NewPoint2D(req.X, req.Y)}
	if err := h.Repo.UpsertWaypoint(r.Context(), wp); err != nil {
		log.Printf("upsert waypoint failed: name=%q err=%v", name, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.WaypointResponse{Name: name, X: req.X, Y: req.Y})
}
