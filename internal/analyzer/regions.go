package analyzer

// Region is a named latitude/longitude bounding box used to bucket
// position reports into maritime areas. Bounds follow the
// [south, north] x [west, east] convention.
type Region struct {
	Name   string
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// Contains reports whether the point falls inside the box.
func (r Region) Contains(lat, lon float64) bool {
	return lat >= r.MinLat && lat <= r.MaxLat && lon >= r.MinLon && lon <= r.MaxLon
}

// regions are checked in order; the first match wins. Anything that
// falls through is counted as "Other".
var regions = []Region{
	{Name: "North Atlantic", MinLat: 40, MaxLat: 90, MinLon: -180, MaxLon: -20},
	{Name: "Mediterranean", MinLat: 30, MaxLat: 46, MinLon: -6, MaxLon: 36},
	{Name: "North Sea/Baltic", MinLat: 50, MaxLat: 90, MinLon: -5, MaxLon: 30},
	{Name: "Asia-Pacific", MinLat: -90, MaxLat: 90, MinLon: 100, MaxLon: 180},
	{Name: "Americas", MinLat: -90, MaxLat: 90, MinLon: -180, MaxLon: -30},
}

// classifyRegion names the first region containing the point.
func classifyRegion(lat, lon float64) string {
	for _, r := range regions {
		if r.Contains(lat, lon) {
			return r.Name
		}
	}
	return "Other"
}

// RegionNames lists the classification buckets in report order.
func RegionNames() []string {
	names := make([]string, 0, len(regions)+1)
	for _, r := range regions {
		names = append(names, r.Name)
	}
	return append(names, "Other")
}
