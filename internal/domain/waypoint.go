package domain

// Represents a named position in a local planar frame.
// Position coordinates are meters east (X) and north (Y) of the frame origin.
type Waypoint struct {
	Name     string
	Position Point2D
}

// Return the straight-line distance between two waypoints.
func (w Waypoint) DistanceTo(other Waypoint) Distance {
	return Meters(w.Position.DistanceTo(other.Position))
}
