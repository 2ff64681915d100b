package dto

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type PointDistanceRequest struct {
	From Point  `json:"from"`
	To   Point  `json:"to"`
	Unit string `json:"unit"`
}

type MeasurePathRequest struct {
	Points []Point `json:"points"`
	Unit   string  `json:"unit"`
}
