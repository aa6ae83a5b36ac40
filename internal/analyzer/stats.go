package analyzer

import (
	"sort"
	"time"

	"github.com/rcliao/ais-codes/internal/codes"
)

// Summary holds the headline dataset numbers.
type Summary struct {
	Records        int
	UniqueVessels  int
	Start          time.Time
	End            time.Time
	SpanHours      float64
	RecordsPerHour float64
	MinLat         float64
	MaxLat         float64
	MinLon         float64
	MaxLon         float64
}

// Summary computes record counts, time span and geographic extent.
func (d *Dataset) Summary() Summary {
	if len(d.Records) == 0 {
		return Summary{}
	}
	s := Summary{
		Records: len(d.Records),
		Start:   d.Records[0].Timestamp,
		End:     d.Records[0].Timestamp,
		MinLat:  d.Records[0].Latitude,
		MaxLat:  d.Records[0].Latitude,
		MinLon:  d.Records[0].Longitude,
		MaxLon:  d.Records[0].Longitude,
	}
	seen := make(map[string]bool)
	for _, rec := range d.Records {
		seen[rec.MMSI] = true
		if rec.Timestamp.Before(s.Start) {
			s.Start = rec.Timestamp
		}
		if rec.Timestamp.After(s.End) {
			s.End = rec.Timestamp
		}
		s.MinLat = min(s.MinLat, rec.Latitude)
		s.MaxLat = max(s.MaxLat, rec.Latitude)
		s.MinLon = min(s.MinLon, rec.Longitude)
		s.MaxLon = max(s.MaxLon, rec.Longitude)
	}
	s.UniqueVessels = len(seen)
	s.SpanHours = s.End.Sub(s.Start).Hours()
	if s.SpanHours > 0 {
		s.RecordsPerHour = float64(s.Records) / s.SpanHours
	}
	return s
}

// DWTBin is one bucket of the deadweight tonnage histogram.
type DWTBin struct {
	Min   float64
	Max   float64
	Count int
	Pct   float64
}

// DWTStats summarizes deadweight tonnage across vessels that report it.
type DWTStats struct {
	Vessels int
	Min     float64
	Max     float64
	Mean    float64
	Median  float64
	Bins    []DWTBin
}

// DWTDistribution buckets per-vessel DWT into 10kt bins over the
// 40k-100k tonne dry bulk range.
func (d *Dataset) DWTDistribution() DWTStats {
	perVessel := make(map[string]float64)
	for _, rec := range d.Records {
		if rec.EstimatedDWT > 0 {
			perVessel[rec.MMSI] = rec.EstimatedDWT
		}
	}
	for mmsi, v := range d.Vessels {
		if _, ok := perVessel[mmsi]; !ok && v.EstimatedDWT > 0 {
			perVessel[mmsi] = v.EstimatedDWT
		}
	}
	if len(perVessel) == 0 {
		return DWTStats{}
	}

	values := make([]float64, 0, len(perVessel))
	for _, v := range perVessel {
		values = append(values, v)
	}
	sort.Float64s(values)

	stats := DWTStats{
		Vessels: len(values),
		Min:     values[0],
		Max:     values[len(values)-1],
		Median:  median(values),
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	stats.Mean = sum / float64(len(values))

	for lo := 40000.0; lo < 100000; lo += 10000 {
		bin := DWTBin{Min: lo, Max: lo + 10000}
		for _, v := range values {
			if v >= bin.Min && v < bin.Max {
				bin.Count++
			}
		}
		bin.Pct = 100 * float64(bin.Count) / float64(len(values))
		stats.Bins = append(stats.Bins, bin)
	}
	return stats
}

// ActivityStats classifies reported speeds and finds the peak activity
// hour (UTC).
type ActivityStats struct {
	Samples       int
	Mean          float64
	Median        float64
	Max           float64
	Stationary    int // < 1 kt
	Slow          int // 1-5 kt
	Cruising      int // 5-12 kt
	Fast          int // >= 12 kt
	PeakHour      int
	PeakHourCount int
}

// Activity computes speed statistics over records that report a speed.
func (d *Dataset) Activity() ActivityStats {
	var speeds []float64
	var hours [24]int
	for _, rec := range d.Records {
		hours[rec.Timestamp.UTC().Hour()]++
		if rec.SpeedKnots < 0 {
			continue
		}
		speeds = append(speeds, rec.SpeedKnots)
	}
	if len(speeds) == 0 {
		return ActivityStats{}
	}

	stats := ActivityStats{Samples: len(speeds)}
	var sum float64
	for _, s := range speeds {
		sum += s
		stats.Max = max(stats.Max, s)
		switch {
		case s < 1:
			stats.Stationary++
		case s < 5:
			stats.Slow++
		case s < 12:
			stats.Cruising++
		default:
			stats.Fast++
		}
	}
	stats.Mean = sum / float64(len(speeds))
	sort.Float64s(speeds)
	stats.Median = median(speeds)

	for h, n := range hours {
		if n > hours[stats.PeakHour] {
			stats.PeakHour = h
		}
	}
	stats.PeakHourCount = hours[stats.PeakHour]
	return stats
}

// RegionCount is the number of position reports inside one region.
type RegionCount struct {
	Name  string
	Count int
	Pct   float64
}

// Regions buckets every record into its first matching region.
func (d *Dataset) Regions() []RegionCount {
	counts := make(map[string]int)
	for _, rec := range d.Records {
		counts[classifyRegion(rec.Latitude, rec.Longitude)]++
	}
	total := len(d.Records)
	var out []RegionCount
	for _, name := range RegionNames() {
		rc := RegionCount{Name: name, Count: counts[name]}
		if total > 0 {
			rc.Pct = 100 * float64(rc.Count) / float64(total)
		}
		out = append(out, rc)
	}
	return out
}

// CodeCount pairs a reference code with its report count. Description
// is the documented table text, or "Unknown" for codes outside the
// tables.
type CodeCount struct {
	Code        int
	Description string
	Count       int
}

// NavStatusBreakdown counts reports per navigation status code.
// Records that did not report a status are skipped.
func (d *Dataset) NavStatusBreakdown() []CodeCount {
	counts := make(map[int]int)
	for _, rec := range d.Records {
		if rec.NavStatus >= 0 {
			counts[rec.NavStatus]++
		}
	}
	return describeCounts(counts, func(code int) (string, bool) {
		entry, ok := codes.LookupNavStatus(code)
		return entry.Description, ok
	})
}

// ShipTypeBreakdown counts reports per ship type code, falling back to
// the vessel database when the feed omitted the field.
func (d *Dataset) ShipTypeBreakdown() []CodeCount {
	counts := make(map[int]int)
	for _, rec := range d.Records {
		code := rec.ShipTypeCode
		if code < 0 {
			if v, ok := d.Vessels[rec.MMSI]; ok && v.ShipTypeCode > 0 {
				code = v.ShipTypeCode
			}
		}
		if code >= 0 {
			counts[code]++
		}
	}
	return describeCounts(counts, func(code int) (string, bool) {
		entry, ok := codes.LookupShipType(code)
		return entry.Description, ok
	})
}

func describeCounts(counts map[int]int, describe func(int) (string, bool)) []CodeCount {
	out := make([]CodeCount, 0, len(counts))
	for code, n := range counts {
		cc := CodeCount{Code: code, Description: "Unknown", Count: n}
		if desc, ok := describe(code); ok {
			cc.Description = desc
		}
		out = append(out, cc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Code < out[j].Code
	})
	return out
}

// VesselActivity summarizes one vessel's presence in the dataset.
type VesselActivity struct {
	MMSI      string
	Name      string
	Positions int
	Hours     float64
	MaxSpeed  float64
	DWT       float64
}

// TopVessels returns the n most frequently tracked vessels, most
// tracked first.
func (d *Dataset) TopVessels(n int) []VesselActivity {
	type span struct {
		first, last time.Time
	}
	positions := make(map[string]int)
	spans := make(map[string]span)
	maxSpeed := make(map[string]float64)
	for _, rec := range d.Records {
		positions[rec.MMSI]++
		sp, ok := spans[rec.MMSI]
		if !ok {
			sp = span{first: rec.Timestamp, last: rec.Timestamp}
		} else {
			if rec.Timestamp.Before(sp.first) {
				sp.first = rec.Timestamp
			}
			if rec.Timestamp.After(sp.last) {
				sp.last = rec.Timestamp
			}
		}
		spans[rec.MMSI] = sp
		if rec.SpeedKnots > maxSpeed[rec.MMSI] {
			maxSpeed[rec.MMSI] = rec.SpeedKnots
		}
	}

	out := make([]VesselActivity, 0, len(positions))
	for mmsi, count := range positions {
		va := VesselActivity{
			MMSI:      mmsi,
			Name:      d.VesselName(mmsi),
			Positions: count,
			Hours:     spans[mmsi].last.Sub(spans[mmsi].first).Hours(),
			MaxSpeed:  maxSpeed[mmsi],
		}
		if v, ok := d.Vessels[mmsi]; ok {
			va.DWT = v.EstimatedDWT
		}
		out = append(out, va)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Positions != out[j].Positions {
			return out[i].Positions > out[j].Positions
		}
		return out[i].MMSI < out[j].MMSI
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// DestinationCount aggregates reports naming the same destination.
type DestinationCount struct {
	Destination string
	Vessels     int
	Reports     int
}

// TopDestinations returns the n most reported destinations. Blank and
// "Unknown" destination strings are ignored.
func (d *Dataset) TopDestinations(n int) []DestinationCount {
	reports := make(map[string]int)
	vessels := make(map[string]map[string]bool)
	for _, rec := range d.Records {
		dest := rec.Destination
		if dest == "" || dest == "Unknown" {
			continue
		}
		reports[dest]++
		if vessels[dest] == nil {
			vessels[dest] = make(map[string]bool)
		}
		vessels[dest][rec.MMSI] = true
	}

	out := make([]DestinationCount, 0, len(reports))
	for dest, count := range reports {
		out = append(out, DestinationCount{
			Destination: dest,
			Vessels:     len(vessels[dest]),
			Reports:     count,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Reports != out[j].Reports {
			return out[i].Reports > out[j].Reports
		}
		return out[i].Destination < out[j].Destination
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// Weekdays counts reports per day of week, Monday first.
func (d *Dataset) Weekdays() [7]int {
	var out [7]int
	for _, rec := range d.Records {
		// time.Weekday is Sunday=0; shift to Monday-first.
		out[(int(rec.Timestamp.UTC().Weekday())+6)%7]++
	}
	return out
}

// median expects a sorted slice.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
