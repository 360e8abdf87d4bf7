package models

// Transport is one bookable leg. It is implemented only by *FlightOffer,
// *TrainOffer and *BusOffer; switch on the concrete type to handle a leg.
type Transport interface {
	Mode() Mode
	Fare() float64
	Reference() string
	Label() string
	isTransport()
}

type FlightOffer struct {
	ID               string  `json:"id" bson:"id"`
	Airline          string  `json:"airline" bson:"airline"`
	FlightNumber     string  `json:"flightNumber" bson:"flightNumber"`
	DepartureAirport string  `json:"departureAirportIata,omitempty" bson:"departureAirportIata,omitempty"`
	ArrivalAirport   string  `json:"arrivalAirportIata,omitempty" bson:"arrivalAirportIata,omitempty"`
	DepartureCity    string  `json:"departureCity" bson:"departureCity"`
	ArrivalCity      string  `json:"arrivalCity" bson:"arrivalCity"`
	DepartureDate    string  `json:"departureDate" bson:"departureDate"`
	DepartureTime    string  `json:"departureTime" bson:"departureTime"`
	ArrivalTime      string  `json:"arrivalTime" bson:"arrivalTime"`
	Duration         string  `json:"duration" bson:"duration"`
	Stops            int     `json:"stops" bson:"stops"`
	Price            float64 `json:"price" bson:"price"`
	Currency         string  `json:"currency" bson:"currency"`
	Deeplink         string  `json:"deeplink,omitempty" bson:"deeplink,omitempty"`
}

func (f *FlightOffer) Mode() Mode        { return ModeFlight }
func (f *FlightOffer) Fare() float64     { return f.Price }
func (f *FlightOffer) Reference() string { return f.ID }
func (f *FlightOffer) Label() string     { return f.Airline + " " + f.FlightNumber }
func (f *FlightOffer) isTransport()      {}

type TrainOffer struct {
	ID               string  `json:"id" bson:"id"`
	TrainName        string  `json:"trainName" bson:"trainName"`
	TrainNumber      string  `json:"trainNumber" bson:"trainNumber"`
	DepartureStation string  `json:"departureStation" bson:"departureStation"`
	ArrivalStation   string  `json:"arrivalStation" bson:"arrivalStation"`
	DepartureDate    string  `json:"departureDate" bson:"departureDate"`
	DepartureTime    string  `json:"departureTime" bson:"departureTime"`
	ArrivalTime      string  `json:"arrivalTime" bson:"arrivalTime"`
	Duration         string  `json:"duration" bson:"duration"`
	Class            string  `json:"class" bson:"class"`
	SeatsAvailable   int     `json:"seatsAvailable" bson:"seatsAvailable"`
	Price            float64 `json:"price" bson:"price"`
	Currency         string  `json:"currency" bson:"currency"`
	Deeplink         string  `json:"deeplink,omitempty" bson:"deeplink,omitempty"`
}

func (t *TrainOffer) Mode() Mode        { return ModeTrain }
func (t *TrainOffer) Fare() float64     { return t.Price }
func (t *TrainOffer) Reference() string { return t.ID }
func (t *TrainOffer) Label() string     { return t.TrainName + " (" + t.TrainNumber + ")" }
func (t *TrainOffer) isTransport()      {}

type BusOffer struct {
	ID             string  `json:"id" bson:"id"`
	Operator       string  `json:"operator" bson:"operator"`
	BusType        string  `json:"busType" bson:"busType"`
	DeparturePoint string  `json:"departurePoint" bson:"departurePoint"`
	ArrivalPoint   string  `json:"arrivalPoint" bson:"arrivalPoint"`
	DepartureDate  string  `json:"departureDate" bson:"departureDate"`
	DepartureTime  string  `json:"departureTime" bson:"departureTime"`
	ArrivalTime    string  `json:"arrivalTime" bson:"arrivalTime"`
	Duration       string  `json:"duration" bson:"duration"`
	SeatsAvailable int     `json:"seatsAvailable" bson:"seatsAvailable"`
	Price          float64 `json:"price" bson:"price"`
	Currency       string  `json:"currency" bson:"currency"`
	Deeplink       string  `json:"deeplink,omitempty" bson:"deeplink,omitempty"`
}

func (b *BusOffer) Mode() Mode        { return ModeBus }
func (b *BusOffer) Fare() float64     { return b.Price }
func (b *BusOffer) Reference() string { return b.ID }
func (b *BusOffer) Label() string     { return b.Operator + " " + b.BusType }
func (b *BusOffer) isTransport()      {}

type HotelOffer struct {
	ID          string   `json:"id" bson:"id"`
	Name        string   `json:"name" bson:"name"`
	Location    string   `json:"location,omitempty" bson:"location,omitempty"`
	Address     string   `json:"address,omitempty" bson:"address,omitempty"`
	Rating      float64  `json:"rating" bson:"rating"`
	Price       float64  `json:"price" bson:"price"`
	Currency    string   `json:"currency" bson:"currency"`
	Amenities   []string `json:"amenities,omitempty" bson:"amenities,omitempty"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Deeplink    string   `json:"deeplink,omitempty" bson:"deeplink,omitempty"`
	Category    Budget   `json:"category,omitempty" bson:"category,omitempty"`
}

// CabQuote is one ride option returned by the ground-transport pricer.
type CabQuote struct {
	Provider      string  `json:"provider"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	EstimatedTime string  `json:"estimatedTime,omitempty"`
	Details       string  `json:"details,omitempty"`
	Deeplink      string  `json:"deeplink,omitempty"`
}

// CabLeg is the ride priced into a finalized plan.
type CabLeg struct {
	Name    string  `json:"name" bson:"name"`
	Price   float64 `json:"price" bson:"price"`
	Details string  `json:"details" bson:"details"`
}

// TransportQuery is the request sent to a mode-specific transport search.
type TransportQuery struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	Passengers  int    `json:"passengers"`
}

// HotelQuery is the request sent to the hotel search.
type HotelQuery struct {
	Destination string `json:"destination"`
	Budget      Budget `json:"budget"`
	CheckIn     string `json:"checkIn"`
	Guests      int    `json:"guests"`
}
