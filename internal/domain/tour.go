package domain

// Represents a single visit in a planned tour.
// Leg is the distance from the previous stop (or the start) and Traveled is the
// running total including this leg.
type TourStop struct {
	Name     string
	Position Point2D
	Leg      Distance
	Traveled Distance
}

// Represents the ordered visit sequence produced by the tour planner.
// ReturnLeg is set only when the tour closes back at its start and is already
// included in Total.
type Tour struct {
	Start     string
	Stops     []TourStop
	Total     Distance
	ReturnLeg *Distance
}
