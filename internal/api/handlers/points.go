package handlers

import (
	"geometry-service/internal/api/dto"
	"geometry-service/internal/domain"
	"geometry-service/internal/services"
	"net/http"
)

// PointDistance measures the straight-line distance between two points whose
// coordinates are meters.
func PointDistance(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.PointDistanceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	unit, ok := parseUnit(w, r, req.Unit)
	if !ok {
		return
	}

	from := domain.NewPoint2D(req.From.X, req.From.Y)
	to := domain.NewPoint2D(req.To.X, req.To.Y)

	writeJSON(w, r, http.StatusOK, distanceResponse(domain.Meters(from.DistanceTo(to)), unit))
}

// MeasurePath returns the length of the polyline through the given points.
func MeasurePath(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.MeasurePathRequest
	if !decodeBody(w, r, &req) {
		return
	}

	unit, ok := parseUnit(w, r, req.Unit)
	if !ok {
		return
	}

	points := make([]domain.Point2D, 0, len(req.Points))
	for _, p := range req.Points {
		points = append(points, domain.NewPoint2D(p.X, p.Y))
	}

	writeJSON(w, r, http.StatusOK, distanceResponse(services.MeasurePath(points), unit))
}
