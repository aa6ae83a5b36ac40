// Package analyzer loads collected AIS position dumps and computes
// fleet statistics over them.
package analyzer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rcliao/ais-codes/internal/model"
)

// timestampFormats are tried in order when parsing the CSV timestamp
// column.
var timestampFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// Dataset holds the loaded position records plus the optional vessel
// database keyed by MMSI.
type Dataset struct {
	Records []model.PositionRecord
	Vessels map[string]model.Vessel
}

// LoadCSV reads position records from a header-addressed CSV file.
// The timestamp, mmsi, latitude and longitude columns are required;
// everything else is optional and gets a sentinel when absent.
func LoadCSV(path string) ([]model.PositionRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"timestamp", "mmsi", "latitude", "longitude"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("csv missing required column %q", required)
		}
	}

	var records []model.PositionRecord
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}
		rec, err := parseRecord(row, col)
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRecord(row []string, col map[string]int) (model.PositionRecord, error) {
	field := func(name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	ts, err := parseTimestamp(field("timestamp"))
	if err != nil {
		return model.PositionRecord{}, err
	}
	lat, err := strconv.ParseFloat(field("latitude"), 64)
	if err != nil {
		return model.PositionRecord{}, fmt.Errorf("parse latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(field("longitude"), 64)
	if err != nil {
		return model.PositionRecord{}, fmt.Errorf("parse longitude: %w", err)
	}

	rec := model.PositionRecord{
		MMSI:         field("mmsi"),
		VesselName:   field("vessel_name"),
		Timestamp:    ts,
		Latitude:     lat,
		Longitude:    lon,
		SpeedKnots:   optionalFloat(field("speed_knots"), -1),
		NavStatus:    optionalInt(field("nav_status"), -1),
		ShipTypeCode: optionalInt(field("ship_type"), -1),
		Destination:  field("destination"),
		EstimatedDWT: optionalFloat(field("estimated_dwt"), 0),
	}
	if rec.MMSI == "" {
		return model.PositionRecord{}, fmt.Errorf("empty mmsi")
	}
	return rec, nil
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampFormats {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse timestamp %q", s)
}

func optionalFloat(s string, absent float64) float64 {
	if s == "" {
		return absent
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return absent
	}
	return v
}

func optionalInt(s string, absent int) int {
	if s == "" {
		return absent
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return absent
	}
	return v
}

// LoadVesselDB reads the vessel database JSON array. A missing file is
// not an error; the analyzer just runs without vessel metadata.
func LoadVesselDB(path string) (map[string]model.Vessel, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string]model.Vessel{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read vessel db: %w", err)
	}
	var vessels []model.Vessel
	if err := json.Unmarshal(b, &vessels); err != nil {
		return nil, fmt.Errorf("parse vessel db: %w", err)
	}
	byMMSI := make(map[string]model.Vessel, len(vessels))
	for _, v := range vessels {
		byMMSI[v.MMSI] = v
	}
	return byMMSI, nil
}

// NewDataset pairs position records with the vessel database.
func NewDataset(records []model.PositionRecord, vessels map[string]model.Vessel) *Dataset {
	if vessels == nil {
		vessels = map[string]model.Vessel{}
	}
	return &Dataset{Records: records, Vessels: vessels}
}

// FilterDays drops records older than the given number of days before
// now and returns how many were removed.
func (d *Dataset) FilterDays(days int, now time.Time) int {
	cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)
	kept := d.Records[:0]
	for _, rec := range d.Records {
		if !rec.Timestamp.Before(cutoff) {
			kept = append(kept, rec)
		}
	}
	removed := len(d.Records) - len(kept)
	d.Records = kept
	return removed
}

// VesselName resolves a display name for an MMSI, preferring the
// vessel database over the name carried in the position feed.
func (d *Dataset) VesselName(mmsi string) string {
	if v, ok := d.Vessels[mmsi]; ok && v.Name != "" {
		return v.Name
	}
	for _, rec := range d.Records {
		if rec.MMSI == mmsi && rec.VesselName != "" {
			return rec.VesselName
		}
	}
	return mmsi
}
