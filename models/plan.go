package models

import (
	"encoding/json"
	"fmt"
)

// TripPlanData is a priced, bookable itinerary. A plan is never edited after
// it is built; a later turn replaces it with a new one.
type TripPlanData struct {
	Transport           Transport   `json:"transport"`
	TransportType       string      `json:"transportType,omitempty"`
	Hotel               *HotelOffer `json:"hotel"`
	CabToStation        *CabLeg     `json:"cabToStation,omitempty"`
	CabToHotel          *CabLeg     `json:"cabToHotel,omitempty"`
	CabOptionsToStation []CabQuote  `json:"cabOptionsToStation,omitempty"`
	CabOptionsToHotel   []CabQuote  `json:"cabOptionsToHotel,omitempty"`
	GroupSize           int         `json:"groupSize"`
	Total               float64     `json:"total"`
	Currency            string      `json:"currency,omitempty"`
	ReturnTrip          bool        `json:"returnTrip"`
	ReturnDate          string      `json:"returnDate,omitempty"`
	ReturnTransport     Transport   `json:"returnTransport,omitempty"`
}

// UnmarshalJSON restores the transport legs using transportType, since the
// Transport interface cannot be decoded on its own.
func (p *TripPlanData) UnmarshalJSON(data []byte) error {
	type alias TripPlanData
	aux := struct {
		*alias
		Transport       json.RawMessage `json:"transport"`
		ReturnTransport json.RawMessage `json:"returnTransport"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	var err error
	if p.Transport, err = decodeTransport(p.TransportType, aux.Transport); err != nil {
		return fmt.Errorf("transport: %w", err)
	}
	if p.ReturnTransport, err = decodeTransport(p.TransportType, aux.ReturnTransport); err != nil {
		return fmt.Errorf("returnTransport: %w", err)
	}
	return nil
}

func decodeTransport(kind string, raw json.RawMessage) (Transport, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	switch kind {
	case ModeFlight.Kind():
		var f FlightOffer
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, err
		}
		return &f, nil
	case ModeTrain.Kind():
		var t TrainOffer
		if err := json.Unmarshal(raw, &t); err != nil {
			return nil, err
		}
		return &t, nil
	case ModeBus.Kind():
		var b BusOffer
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, err
		}
		return &b, nil
	}
	return nil, fmt.Errorf("unknown transport type %q", kind)
}
