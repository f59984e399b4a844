package schema

import "fmt"

type RoundedFloat float64

func (f RoundedFloat) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%.2f", f)), nil
}

type Key string

const (
	RequestingTypeKey Key = "requestingType"
)

// BackendRequestName labels an outgoing back-office request in the request
// history attached to submit responses.
type BackendRequestName string

const (
	ListDestinations  BackendRequestName = "listDestinations"
	FindPackages      BackendRequestName = "findPackages"
	ListAgencies      BackendRequestName = "listAgencies"
	CreateFlight      BackendRequestName = "createFlight"
	CreateAgency      BackendRequestName = "createAgency"
	CreateReservation BackendRequestName = "createReservation"
	CreatePassenger   BackendRequestName = "createPassenger"
	CreateHotelStay   BackendRequestName = "createHotelStay"
	ResolveActingUser BackendRequestName = "actingUser"
)
