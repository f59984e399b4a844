package backoffice

import (
	"context"

	"bitbucket.org/crgw/reservation-wizard/internal/schema"
)

func (c *Client) CreateFlight(ctx context.Context, input schema.FlightCreateInput) (*schema.Flight, *schema.BackendResponseError) {
	input.FlightID = 0

	flight := schema.Flight{}
	if err := c.post(ctx, schema.CreateFlight, c.baseURL+"/flights", input, &flight); err != nil {
		return nil, err
	}

	return &flight, nil
}

func (c *Client) CreateAgency(ctx context.Context, input schema.AgencyCreateInput) (*schema.Agency, *schema.BackendResponseError) {
	input.AgencyID = 0

	agency := schema.Agency{}
	if err := c.post(ctx, schema.CreateAgency, c.baseURL+"/agencies", input, &agency); err != nil {
		return nil, err
	}

	return &agency, nil
}

func (c *Client) CreateReservation(ctx context.Context, input schema.ReservationCreateInput) (*schema.Reservation, *schema.BackendResponseError) {
	input.ReservationID = 0

	reservation := schema.Reservation{}
	if err := c.post(ctx, schema.CreateReservation, c.baseURL+"/reservations", input, &reservation); err != nil {
		return nil, err
	}

	return &reservation, nil
}

func (c *Client) CreatePassenger(ctx context.Context, input schema.PassengerCreateInput) *schema.BackendResponseError {
	input.PassengerID = 0

	return c.post(ctx, schema.CreatePassenger, c.baseURL+"/passengers", input, nil)
}

func (c *Client) CreateHotelStay(ctx context.Context, input schema.HotelStayCreateInput) *schema.BackendResponseError {
	input.HotelStayID = 0

	return c.post(ctx, schema.CreateHotelStay, c.baseURL+"/hotel-stays", input, nil)
}
