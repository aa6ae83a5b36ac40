package codes

import "sort"

// ShipType is one entry of the ship type table. Only the cargo
// sub-range 70-79 of the AIS ship type enumeration is documented here.
type ShipType struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
}

var shipTypeCargo = map[int]string{
	70: "Cargo, all ships of this type",
	71: "Cargo, Hazardous category A",
	72: "Cargo, Hazardous category B",
	73: "Cargo, Hazardous category C",
	74: "Cargo, Hazardous category D",
	75: "Cargo, Reserved for future use",
	76: "Cargo, Reserved for future use",
	77: "Cargo, Reserved for future use",
	78: "Cargo, Reserved for future use",
	79: "Cargo, No additional information",
}

// LookupShipType resolves a ship type code. The second return is false
// for any code outside the documented 70-79 range.
func LookupShipType(code int) (ShipType, bool) {
	if desc, ok := shipTypeCargo[code]; ok {
		return ShipType{Code: code, Description: desc}, true
	}
	return ShipType{}, false
}

// ShipTypes returns every documented ship type entry in code order.
func ShipTypes() []ShipType {
	entries := make([]ShipType, 0, len(shipTypeCargo))
	for code, desc := range shipTypeCargo {
		entries = append(entries, ShipType{Code: code, Description: desc})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Code < entries[j].Code })
	return entries
}
