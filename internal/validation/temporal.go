package validation

import "math"

// Field names the input a failed date validation belongs to, so the console
// can attach the message to the correct control.
type Field string

const (
	FieldDeparture Field = "departure"
	FieldArrival   Field = "arrival"
	FieldCheckin   Field = "checkin"
	FieldCheckout  Field = "checkout"
)

// Result is the outcome of a temporal validation.
type Result struct {
	Valid    bool   `json:"valid"`
	Error    string `json:"error,omitempty"`
	Field    Field  `json:"field,omitempty"`
	TooYoung bool   `json:"tooYoung,omitempty"`
}

func invalid(message string) Result {
	return Result{Valid: false, Error: message}
}

func invalidField(message string, field Field) Result {
	return Result{Valid: false, Error: message, Field: field}
}

// ValidateBirthDate checks a passenger birth date:
//   - not missing or unparsable
//   - not in the future
//   - at most 90 years back
//   - at least 5 years back; a younger child cannot travel in a separate
//     seat, reported with the TooYoung marker.
func ValidateBirthDate(date string) Result {
	if date == "" {
		return invalid("A birth date is required.")
	}

	birth, ok := ParseDateOnly(date)
	if !ok {
		return invalid("Birth date is not a valid date.")
	}

	today := Today()
	if birth.After(today) {
		return invalid("Birth date cannot be later than the current date.")
	}

	ageYears := int(math.Floor(today.Sub(birth).Hours() / 24 / 365.25))
	if ageYears > 90 {
		return invalid("Birth date cannot be more than 90 years back.")
	}

	if ageYears < 5 {
		return Result{
			Valid:    false,
			TooYoung: true,
			Error:    "A child under 5 years old cannot travel in a separate seat.",
		}
	}

	return Result{Valid: true}
}

// ValidateFlightDates checks a departure/arrival pair:
//   - departure: >= today, <= package end date (when given)
//   - arrival: > departure, <= package end date (when given)
//
// The returned Field points at the offending input.
func ValidateFlightDates(departureDate string, arrivalDate string, packageEndDate string) Result {
	if departureDate == "" || arrivalDate == "" {
		return invalidField("Departure and arrival dates are required.", FieldDeparture)
	}

	departure, departureOk := ParseDateOnly(departureDate)
	arrival, arrivalOk := ParseDateOnly(arrivalDate)
	if !departureOk || !arrivalOk {
		return invalidField("Flight dates are not valid.", FieldDeparture)
	}

	if departure.Before(Today()) {
		return invalidField("Departure date cannot be earlier than the current date.", FieldDeparture)
	}

	if !arrival.After(departure) {
		return invalidField("Arrival date must be later than the departure date.", FieldArrival)
	}

	if packageEndDate != "" {
		if packageEnd, ok := ParseDateOnly(packageEndDate); ok {
			if departure.After(packageEnd) {
				return invalidField("Departure date cannot be later than the package end date.", FieldDeparture)
			}
			if arrival.After(packageEnd) {
				return invalidField("Arrival date cannot be later than the package end date.", FieldArrival)
			}
		}
	}

	return Result{Valid: true}
}

// ValidateHotelStayDates checks a check-in/check-out pair against the package
// date window:
//   - check-in: >= today, within [packageStart, packageEnd]
//   - check-out: > check-in, >= today, within the package window
func ValidateHotelStayDates(checkinDate string, checkoutDate string, packageStartDate string, packageEndDate string) Result {
	if checkinDate == "" || checkoutDate == "" {
		return invalidField("Check-in and check-out dates are required.", FieldCheckin)
	}

	checkin, checkinOk := ParseDateOnly(checkinDate)
	checkout, checkoutOk := ParseDateOnly(checkoutDate)
	if !checkinOk || !checkoutOk {
		return invalidField("Stay dates are not valid.", FieldCheckin)
	}

	start, startOk := ParseDateOnly(packageStartDate)
	end, endOk := ParseDateOnly(packageEndDate)
	if !startOk || !endOk {
		return invalidField("Package date window is not valid.", FieldCheckin)
	}

	today := Today()

	if checkin.Before(today) {
		return invalidField("Check-in date cannot be earlier than the current date.", FieldCheckin)
	}

	if checkin.Before(start) || checkin.After(end) {
		return invalidField("Check-in date must be within the package date window.", FieldCheckin)
	}

	if !checkout.After(checkin) {
		return invalidField("Check-out date must be later than the check-in date.", FieldCheckout)
	}

	if checkout.Before(today) {
		return invalidField("Check-out date cannot be earlier than the current date.", FieldCheckout)
	}

	if checkout.Before(start) || checkout.After(end) {
		return invalidField("Check-out date must be within the package date window.", FieldCheckout)
	}

	return Result{Valid: true}
}

// ValidateRebookedFlightDates checks exceptional flight dates entered after a
// schedule change. The rebooked departure must fall strictly after the
// original arrival, and the rebooked arrival strictly after the rebooked
// departure.
func ValidateRebookedFlightDates(originalArrivalDate string, newDepartureDate string, newArrivalDate string) Result {
	if newDepartureDate == "" || newArrivalDate == "" {
		return invalidField("Rebooked departure and arrival dates are required.", FieldDeparture)
	}

	originalArrival, originalOk := ParseDateOnly(originalArrivalDate)
	departure, departureOk := ParseDateOnly(newDepartureDate)
	arrival, arrivalOk := ParseDateOnly(newArrivalDate)
	if !originalOk || !departureOk || !arrivalOk {
		return invalidField("Rebooked flight dates are not valid.", FieldDeparture)
	}

	if !departure.After(originalArrival) {
		return invalidField("Rebooked departure must be later than the original arrival date.", FieldDeparture)
	}

	if !arrival.After(departure) {
		return invalidField("Rebooked arrival must be later than the rebooked departure date.", FieldArrival)
	}

	return Result{Valid: true}
}

// ValidateRebookedStayDates checks exceptional hotel stay dates entered after
// a schedule change, against the original check-out date.
func ValidateRebookedStayDates(originalCheckoutDate string, newCheckinDate string, newCheckoutDate string) Result {
	if newCheckinDate == "" || newCheckoutDate == "" {
		return invalidField("Rebooked check-in and check-out dates are required.", FieldCheckin)
	}

	originalCheckout, originalOk := ParseDateOnly(originalCheckoutDate)
	checkin, checkinOk := ParseDateOnly(newCheckinDate)
	checkout, checkoutOk := ParseDateOnly(newCheckoutDate)
	if !originalOk || !checkinOk || !checkoutOk {
		return invalidField("Rebooked stay dates are not valid.", FieldCheckin)
	}

	if !checkin.After(originalCheckout) {
		return invalidField("Rebooked check-in must be later than the original check-out date.", FieldCheckin)
	}

	if !checkout.After(checkin) {
		return invalidField("Rebooked check-out must be later than the rebooked check-in date.", FieldCheckout)
	}

	return Result{Valid: true}
}
