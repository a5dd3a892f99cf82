package dto

// VenueAreaResponse names the area a venue sits in.
type VenueAreaResponse struct {
	Venue string `json:"venue"`
	Area  string `json:"area"`
}

// TravelTimeResponse is the travel buffer between two venues.
type TravelTimeResponse struct {
	From     string `json:"from"`
	To       string `json:"to"`
	FromArea string `json:"fromArea"`
	ToArea   string `json:"toArea"`
	Minutes  int    `json:"minutes"`
}
