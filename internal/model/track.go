// Package model defines the vessel tracking data types.
package model

import "time"

// PositionRecord is one AIS position report from the collected CSV.
// NavStatus and ShipTypeCode are negative when the feed omitted the
// field; SpeedKnots is negative and EstimatedDWT zero in the same case.
type PositionRecord struct {
	MMSI         string    `json:"mmsi"`
	VesselName   string    `json:"vessel_name,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	SpeedKnots   float64   `json:"speed_knots,omitempty"`
	NavStatus    int       `json:"nav_status,omitempty"`
	ShipTypeCode int       `json:"ship_type,omitempty"`
	Destination  string    `json:"destination,omitempty"`
	EstimatedDWT float64   `json:"estimated_dwt,omitempty"`
}

// Vessel is one entry of the vessel database.
type Vessel struct {
	MMSI         string  `json:"mmsi"`
	Name         string  `json:"name"`
	EstimatedDWT float64 `json:"estimated_dwt,omitempty"`
	ShipTypeCode int     `json:"ship_type,omitempty"`
}
