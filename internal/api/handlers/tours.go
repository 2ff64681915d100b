package handlers

import (
	"errors"
	"geometry-service/internal/api/dto"
	"geometry-service/internal/ports"
	"geometry-service/internal/services"
	"log"
	"net/http"
	"strings"
)

type TourHandler struct {
	Repo ports.WaypointRepository
}

// Plan orders the requested waypoints into a nearest-neighbor tour.
func (h *TourHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.TourRequest
	if !decodeBody(w, r, &req) {
		return
	}

	start := strings.TrimSpace(req.Start)
	if start == "" {
		writeError(w, r, http.StatusBadRequest, "start is required")
		return
	}

	unit, ok := parseUnit(w, r, req.Unit)
	if !ok {
		return
	}

	tour, err := services.PlanWaypointTour(r.Context(), services.PlanTourRequest{
		Start:         start,
		Stops:         req.Stops,
		ReturnToStart: req.ReturnToStart,
	}, h.Repo)
	if errors.Is(err, ports.ErrWaypointNotFound) {
		writeError(w, r, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		log.Printf("plan tour failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.TourResponse{
		Start: tour.Start,
		Unit:  unit.String(),
		Stops: make([]dto.TourStopResponse, 0, len(tour.Stops)),
		Total: tour.Total.Value(unit),
	}
	for _, s := range tour.Stops {
		res.Stops = append(res.Stops, dto.TourStopResponse{
			Name:     s.Name,
			X:        s.Position.X(),
			Y:        s.Position.Y(),
			Leg:      s.Leg.Value(unit),
			Traveled: s.Traveled.Value(unit),
		})
	}
	if tour.ReturnLeg != nil {
		back := tour.ReturnLeg.Value(unit)
		res.ReturnLeg = &back
	}

	writeJSON(w, r, http.StatusOK, res)
}
