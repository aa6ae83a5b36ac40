package analyzer

import (
	"testing"
	"time"

	"github.com/rcliao/ais-codes/internal/model"
)

func rec(mmsi string, ts time.Time, lat, lon, speed float64) model.PositionRecord {
	return model.PositionRecord{
		MMSI:         mmsi,
		Timestamp:    ts,
		Latitude:     lat,
		Longitude:    lon,
		SpeedKnots:   speed,
		NavStatus:    -1,
		ShipTypeCode: -1,
	}
}

func TestSummary(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	ds := NewDataset([]model.PositionRecord{
		rec("1", start, 40, -30, 10),
		rec("1", start.Add(10*time.Hour), 44, -20, 10),
		rec("2", start.Add(5*time.Hour), 42, -25, 10),
	}, nil)

	s := ds.Summary()
	if s.Records != 3 || s.UniqueVessels != 2 {
		t.Errorf("unexpected counts: %+v", s)
	}
	if s.SpanHours != 10 {
		t.Errorf("expected 10 hour span, got %v", s.SpanHours)
	}
	if s.MinLat != 40 || s.MaxLat != 44 || s.MinLon != -30 || s.MaxLon != -20 {
		t.Errorf("unexpected extent: %+v", s)
	}
}

func TestSummary_Empty(t *testing.T) {
	s := NewDataset(nil, nil).Summary()
	if s.Records != 0 || s.UniqueVessels != 0 {
		t.Errorf("expected zero summary, got %+v", s)
	}
}

func TestActivity_SpeedClasses(t *testing.T) {
	ts := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	ds := NewDataset([]model.PositionRecord{
		rec("1", ts, 0, 0, 0.5),  // stationary
		rec("1", ts, 0, 0, 1),    // slow (boundary)
		rec("1", ts, 0, 0, 4.9),  // slow
		rec("1", ts, 0, 0, 5),    // cruising (boundary)
		rec("1", ts, 0, 0, 11.9), // cruising
		rec("1", ts, 0, 0, 12),   // fast (boundary)
		rec("1", ts, 0, 0, -1),   // no speed reported
	}, nil)

	a := ds.Activity()
	if a.Samples != 6 {
		t.Fatalf("expected 6 samples, got %d", a.Samples)
	}
	if a.Stationary != 1 || a.Slow != 2 || a.Cruising != 2 || a.Fast != 1 {
		t.Errorf("unexpected classes: %+v", a)
	}
	if a.Max != 12 {
		t.Errorf("expected max 12, got %v", a.Max)
	}
	if a.PeakHour != 8 || a.PeakHourCount != 7 {
		t.Errorf("unexpected peak hour: %+v", a)
	}
}

func TestMedian(t *testing.T) {
	if got := median([]float64{1, 2, 3}); got != 2 {
		t.Errorf("odd length: expected 2, got %v", got)
	}
	if got := median([]float64{1, 2, 3, 4}); got != 2.5 {
		t.Errorf("even length: expected 2.5, got %v", got)
	}
	if got := median(nil); got != 0 {
		t.Errorf("empty: expected 0, got %v", got)
	}
}

func TestClassifyRegion(t *testing.T) {
	cases := []struct {
		lat, lon float64
		want     string
	}{
		{45, -30, "North Atlantic"},
		{35, 10, "Mediterranean"},
		{55, 5, "North Sea/Baltic"},
		{10, 120, "Asia-Pacific"},
		{-10, -60, "Americas"},
		{0, 50, "Other"},
		// First match wins: lat 42 lon -2 misses the North Atlantic
		// box (lon > -20) and lands in the Mediterranean box.
		{42, -2, "Mediterranean"},
		// Overlap with North Sea/Baltic resolves to North Atlantic.
		{52, -25, "North Atlantic"},
	}
	for _, tc := range cases {
		if got := classifyRegion(tc.lat, tc.lon); got != tc.want {
			t.Errorf("(%v, %v): expected %s, got %s", tc.lat, tc.lon, tc.want, got)
		}
	}
}

func TestRegions_Partition(t *testing.T) {
	ts := time.Now().UTC()
	ds := NewDataset([]model.PositionRecord{
		rec("1", ts, 45, -30, 10),
		rec("2", ts, 35, 10, 10),
		rec("3", ts, 0, 50, 10),
		rec("4", ts, 0, 50, 10),
	}, nil)

	total := 0
	for _, rc := range ds.Regions() {
		total += rc.Count
		if rc.Name == "Other" && rc.Count != 2 {
			t.Errorf("expected 2 in Other, got %d", rc.Count)
		}
	}
	if total != 4 {
		t.Errorf("region counts should partition the records, got total %d", total)
	}
}

func TestDWTDistribution(t *testing.T) {
	ts := time.Now().UTC()
	records := []model.PositionRecord{
		rec("1", ts, 0, 0, 10),
		rec("2", ts, 0, 0, 10),
		rec("3", ts, 0, 0, 10),
	}
	records[0].EstimatedDWT = 45000
	records[1].EstimatedDWT = 82000
	// Vessel 3 has DWT only in the database.
	vessels := map[string]model.Vessel{
		"3": {MMSI: "3", EstimatedDWT: 55000},
	}

	stats := NewDataset(records, vessels).DWTDistribution()
	if stats.Vessels != 3 {
		t.Fatalf("expected 3 vessels with DWT, got %d", stats.Vessels)
	}
	if stats.Min != 45000 || stats.Max != 82000 || stats.Median != 55000 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if len(stats.Bins) != 6 {
		t.Fatalf("expected 6 bins, got %d", len(stats.Bins))
	}
	if stats.Bins[0].Count != 1 || stats.Bins[1].Count != 1 || stats.Bins[4].Count != 1 {
		t.Errorf("unexpected bin counts: %+v", stats.Bins)
	}
}

func TestNavStatusBreakdown(t *testing.T) {
	ts := time.Now().UTC()
	records := []model.PositionRecord{
		rec("1", ts, 0, 0, 10),
		rec("2", ts, 0, 0, 10),
		rec("3", ts, 0, 0, 10),
		rec("4", ts, 0, 0, 10),
	}
	records[0].NavStatus = 0
	records[1].NavStatus = 0
	records[2].NavStatus = 50 // undocumented gap code
	// records[3] keeps the -1 sentinel and is skipped.

	breakdown := NewDataset(records, nil).NavStatusBreakdown()
	if len(breakdown) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(breakdown))
	}
	if breakdown[0].Code != 0 || breakdown[0].Count != 2 || breakdown[0].Description != "Under way using engine" {
		t.Errorf("unexpected first entry: %+v", breakdown[0])
	}
	if breakdown[1].Code != 50 || breakdown[1].Description != "Unknown" {
		t.Errorf("undocumented code should be labelled Unknown: %+v", breakdown[1])
	}
}

func TestShipTypeBreakdown_VesselDBFallback(t *testing.T) {
	ts := time.Now().UTC()
	records := []model.PositionRecord{
		rec("1", ts, 0, 0, 10),
		rec("2", ts, 0, 0, 10),
	}
	records[0].ShipTypeCode = 71
	vessels := map[string]model.Vessel{
		"2": {MMSI: "2", ShipTypeCode: 70},
	}

	breakdown := NewDataset(records, vessels).ShipTypeBreakdown()
	if len(breakdown) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(breakdown))
	}
	for _, cc := range breakdown {
		switch cc.Code {
		case 70:
			if cc.Description != "Cargo, all ships of this type" {
				t.Errorf("code 70: unexpected description %q", cc.Description)
			}
		case 71:
			if cc.Description != "Cargo, Hazardous category A" {
				t.Errorf("code 71: unexpected description %q", cc.Description)
			}
		default:
			t.Errorf("unexpected code %d", cc.Code)
		}
	}
}

func TestTopVessels(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	ds := NewDataset([]model.PositionRecord{
		rec("1", start, 0, 0, 10),
		rec("1", start.Add(6*time.Hour), 0, 0, 14),
		rec("1", start.Add(12*time.Hour), 0, 0, 9),
		rec("2", start, 0, 0, 5),
	}, map[string]model.Vessel{
		"1": {MMSI: "1", Name: "OCEAN PRIDE", EstimatedDWT: 75000},
	})

	top := ds.TopVessels(10)
	if len(top) != 2 {
		t.Fatalf("expected 2 vessels, got %d", len(top))
	}
	lead := top[0]
	if lead.MMSI != "1" || lead.Name != "OCEAN PRIDE" || lead.Positions != 3 {
		t.Errorf("unexpected leader: %+v", lead)
	}
	if lead.Hours != 12 || lead.MaxSpeed != 14 || lead.DWT != 75000 {
		t.Errorf("unexpected leader stats: %+v", lead)
	}

	if got := ds.TopVessels(1); len(got) != 1 {
		t.Errorf("expected truncation to 1, got %d", len(got))
	}
}

func TestTopDestinations(t *testing.T) {
	ts := time.Now().UTC()
	records := []model.PositionRecord{
		rec("1", ts, 0, 0, 10),
		rec("2", ts, 0, 0, 10),
		rec("3", ts, 0, 0, 10),
		rec("4", ts, 0, 0, 10),
	}
	records[0].Destination = "ROTTERDAM"
	records[1].Destination = "ROTTERDAM"
	records[2].Destination = "Unknown"
	// records[3] has no destination.

	dests := NewDataset(records, nil).TopDestinations(10)
	if len(dests) != 1 {
		t.Fatalf("expected 1 destination, got %d", len(dests))
	}
	if dests[0].Destination != "ROTTERDAM" || dests[0].Vessels != 2 || dests[0].Reports != 2 {
		t.Errorf("unexpected destination: %+v", dests[0])
	}
}

func TestWeekdays_MondayFirst(t *testing.T) {
	monday := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC) // a Monday
	sunday := time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)
	ds := NewDataset([]model.PositionRecord{
		rec("1", monday, 0, 0, 10),
		rec("1", sunday, 0, 0, 10),
		rec("1", sunday, 0, 0, 10),
	}, nil)

	counts := ds.Weekdays()
	if counts[0] != 1 {
		t.Errorf("expected 1 Monday record, got %d", counts[0])
	}
	if counts[6] != 2 {
		t.Errorf("expected 2 Sunday records, got %d", counts[6])
	}
}
