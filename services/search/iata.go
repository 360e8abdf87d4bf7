package search

import "strings"

var iataCodes = map[string]string{
	"delhi":     "DEL",
	"new delhi": "DEL",
	"mumbai":    "BOM",
	"bangalore": "BLR",
	"bengaluru": "BLR",
	"kolkata":   "CCU",
	"chennai":   "MAA",
	"hyderabad": "HYD",
	"pune":      "PNQ",
	"ahmedabad": "AMD",
	"jaipur":    "JAI",
	"goa":       "GOI",
	"kochi":     "COK",
	"cochin":    "COK",
	"lucknow":   "LKO",
	"varanasi":  "VNS",
	"srinagar":  "SXR",
	"amritsar":  "ATQ",
	"dubai":     "DXB",
	"singapore": "SIN",
	"bangkok":   "BKK",
	"london":    "LON",
}

// IATACode returns the airport code for a city, or the first three letters
// upper-cased when the city is unknown.
func IATACode(city string) string {
	normalized := strings.ToLower(strings.TrimSpace(city))
	if code, ok := iataCodes[normalized]; ok {
		return code
	}
	if len(normalized) == 3 {
		return strings.ToUpper(normalized)
	}
	if len(normalized) > 3 {
		return strings.ToUpper(normalized[:3])
	}
	return strings.ToUpper(normalized)
}
