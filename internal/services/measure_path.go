package services

import "geometry-service/internal/domain"

// MeasurePath returns the length of the polyline through points, treating
// coordinates as meters. Fewer than two points measure zero.
func MeasurePath(points []domain.Point2D) domain.Distance {
	var total domain.Distance
	for i := 0; i < len(points)-1; i++ {
		total.AddInPlace(domain.Meters(points[i].DistanceTo(points[i+1])))
	}
	return total
}
