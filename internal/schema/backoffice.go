package schema

import (
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Shapes of the back-office REST collaborator. Creates follow the backend's
// zero-id convention: the id field is sent as 0 and assigned server-side.

type CityOption struct {
	CityID   int    `json:"cityId"`
	CityName string `json:"cityName"`
}

type CountryWithCities struct {
	CountryID   int          `json:"countryId"`
	CountryName string       `json:"countryName"`
	Cities      []CityOption `json:"cities"`
}

type DateWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type PackageSummary struct {
	PackageID   int            `json:"packageId"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Country     string         `json:"country"`
	City        string         `json:"city"`
	DateWindow  DateWindow     `json:"dateWindow"`
	Hotels      []PackageHotel `json:"hotels"`
}

type Agency struct {
	AgencyID int                 `json:"agencyId"`
	Name     string              `json:"name"`
	Email    openapi_types.Email `json:"email"`
	Phone    string              `json:"phone"`
}

type AgencyCreateInput struct {
	AgencyID int    `json:"agencyId"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type FlightCreateInput struct {
	FlightID             int     `json:"flightId"`
	Airline              string  `json:"airline"`
	Origin               string  `json:"origin"`
	Destination          string  `json:"destination"`
	DepartureDate        string  `json:"departureDate"`
	ArrivalDate          string  `json:"arrivalDate"`
	ExceptionalDeparture *string `json:"exceptionalDeparture"`
	ExceptionalArrival   *string `json:"exceptionalArrival"`
}

type Flight struct {
	FlightID             int     `json:"flightId"`
	Airline              string  `json:"airline"`
	Origin               string  `json:"origin"`
	Destination          string  `json:"destination"`
	DepartureDate        string  `json:"departureDate"`
	ArrivalDate          string  `json:"arrivalDate"`
	ExceptionalDeparture *string `json:"exceptionalDeparture"`
	ExceptionalArrival   *string `json:"exceptionalArrival"`
}

type ReservationCreateInput struct {
	ReservationID   int          `json:"reservationId"`
	UserID          int          `json:"userId"`
	FlightID        int          `json:"flightId"`
	PackageID       int          `json:"packageId"`
	AgencyID        int          `json:"agencyId"`
	ReservationDate string       `json:"reservationDate"`
	TotalCost       RoundedFloat `json:"totalCost"`
	Active          bool         `json:"active"`
}

type Reservation struct {
	ReservationID   int          `json:"reservationId"`
	UserID          int          `json:"userId"`
	FlightID        int          `json:"flightId"`
	PackageID       int          `json:"packageId"`
	AgencyID        int          `json:"agencyId"`
	ReservationDate string       `json:"reservationDate"`
	TotalCost       RoundedFloat `json:"totalCost"`
	Active          bool         `json:"active"`
}

type PassengerCreateInput struct {
	PassengerID   int    `json:"passengerId"`
	ReservationID int    `json:"reservationId"`
	Name          string `json:"name"`
	Surname       string `json:"surname"`
	NationalID    string `json:"nationalId"`
	BirthDate     string `json:"birthDate"`
	Passport      bool   `json:"passport"`
	Visa          bool   `json:"visa"`
}

type HotelStayCreateInput struct {
	HotelStayID         int     `json:"hotelStayId"`
	ReservationID       int     `json:"reservationId"`
	HotelID             int     `json:"hotelId"`
	CheckinDate         string  `json:"checkinDate"`
	CheckoutDate        string  `json:"checkoutDate"`
	ExceptionalCheckin  *string `json:"exceptionalCheckin"`
	ExceptionalCheckout *string `json:"exceptionalCheckout"`
}

type HotelStay struct {
	HotelStayID         int     `json:"hotelStayId"`
	ReservationID       int     `json:"reservationId"`
	HotelID             int     `json:"hotelId"`
	CheckinDate         string  `json:"checkinDate"`
	CheckoutDate        string  `json:"checkoutDate"`
	ExceptionalCheckin  *string `json:"exceptionalCheckin"`
	ExceptionalCheckout *string `json:"exceptionalCheckout"`
}

// ActingUser is the identity resolved from the console token; reservations
// are created on its behalf.
type ActingUser struct {
	UserID int                 `json:"userId"`
	Name   string              `json:"name"`
	Role   string              `json:"role"`
	Email  openapi_types.Email `json:"email"`
}
