package dto

type ConvertDistanceRequest struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type ConvertDistanceResponse struct {
	Nanometers int64              `json:"nanometers"`
	Values     map[string]float64 `json:"values"`
}

type ScaleDistanceRequest struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
	Op    string  `json:"op"`
	Scale float64 `json:"scale"`
}

type DistanceResponse struct {
	Value      float64 `json:"value"`
	Unit       string  `json:"unit"`
	Nanometers int64   `json:"nanometers"`
}
