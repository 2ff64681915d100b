package dto

type TourRequest struct {
	Start         string   `json:"start"`
	Stops         []string `json:"stops"`
	ReturnToStart bool     `json:"return_to_start"`
	Unit          string   `json:"unit"`
}

type TourStopResponse struct {
	Name     string  `json:"name"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Leg      float64 `json:"leg"`
	Traveled float64 `json:"traveled"`
}

type TourResponse struct {
	Start     string             `json:"start"`
	Unit      string             `json:"unit"`
	Stops     []TourStopResponse `json:"stops"`
	Total     float64            `json:"total"`
	ReturnLeg *float64           `json:"return_leg,omitempty"`
}
