// Package codes provides the AIS reference code tables: navigation
// status and ship type. The tables are initialized once and never
// mutated, so any number of callers may look codes up concurrently.
package codes

import "sort"

// NavStatus is one entry of the navigation status table.
type NavStatus struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
	// Extended marks vendor-specific codes (95-99) that come from a
	// commercial AIS aggregation API rather than the AIS standard.
	Extended bool `json:"extended,omitempty"`
}

// navStatusStandard covers the AIS standard range 0-15. Codes 9-13 are
// documented as reserved and keep their literal reserved text.
var navStatusStandard = map[int]string{
	0:  "Under way using engine",
	1:  "At anchor",
	2:  "Not under command",
	3:  "Restricted manoeuvrability",
	4:  "Constrained by her draught",
	5:  "Moored",
	6:  "Aground",
	7:  "Engaged in fishing",
	8:  "Under way sailing",
	9:  "Reserved for future amendment of Navigational Status for HSC",
	10: "Reserved for future amendment of Navigational Status for WIG",
	11: "Reserved for future use",
	12: "Reserved for future use",
	13: "Reserved for future use",
	14: "AIS-SART is active",
	15: "Not defined (default)",
}

// navStatusExtended covers the vendor range 95-99.
var navStatusExtended = map[int]string{
	95: "Base Station",
	96: "Class B",
	97: "SAR Aircraft",
	98: "Aid to Navigation",
	99: "Class B",
}

// LookupNavStatus resolves a navigation status code. The second return
// is false when the code is outside the documented ranges, including
// the 16-94 gap and negative values.
func LookupNavStatus(code int) (NavStatus, bool) {
	if desc, ok := navStatusStandard[code]; ok {
		return NavStatus{Code: code, Description: desc}, true
	}
	if desc, ok := navStatusExtended[code]; ok {
		return NavStatus{Code: code, Description: desc, Extended: true}, true
	}
	return NavStatus{}, false
}

// NavStatuses returns every documented navigation status entry in code
// order.
func NavStatuses() []NavStatus {
	entries := make([]NavStatus, 0, len(navStatusStandard)+len(navStatusExtended))
	for code, desc := range navStatusStandard {
		entries = append(entries, NavStatus{Code: code, Description: desc})
	}
	for code, desc := range navStatusExtended {
		entries = append(entries, NavStatus{Code: code, Description: desc, Extended: true})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Code < entries[j].Code })
	return entries
}
