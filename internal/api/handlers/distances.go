package handlers

import (
	"geometry-service/internal/api/dto"
	"geometry-service/internal/domain"
	"net/http"
	"strings"
)

// ConvertDistance reports a distance in every supported unit.
func ConvertDistance(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.ConvertDistanceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	unit, ok := parseUnit(w, r, req.Unit)
	if !ok {
		return
	}

	d := domain.NewDistance(req.Value, unit)

	res := dto.ConvertDistanceResponse{
		Nanometers: d.Nanometers(),
		Values:     make(map[string]float64, len(domain.Units())),
	}
	for _, u := range domain.Units() {
		res.Values[u.String()] = d.Value(u)
	}

	writeJSON(w, r, http.StatusOK, res)
}

// ScaleDistance multiplies or divides a distance by a scalar.
// The domain division never fails, so a zero divisor is rejected here.
func ScaleDistance(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.ScaleDistanceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	unit, ok := parseUnit(w, r, req.Unit)
	if !ok {
		return
	}

	d := domain.NewDistance(req.Value, unit)

	switch strings.ToLower(strings.TrimSpace(req.Op)) {
	case "mul":
		d.MulInPlace(req.Scale)
	case "div":
		if req.Scale == 0 {
			writeError(w, r, http.StatusBadRequest, "scale must be non-zero for div")
			return
		}
		d.DivInPlace(req.Scale)
	default:
		writeError(w, r, http.StatusBadRequest, `op must be "mul" or "div"`)
		return
	}

	writeJSON(w, r, http.StatusOK, distanceResponse(d, unit))
}

func distanceResponse(d domain.Distance, unit domain.Unit) dto.DistanceResponse {
	return dto.DistanceResponse{
		Value:      d.Value(unit),
		Unit:       unit.String(),
		Nanometers: d.Nanometers(),
	}
}
