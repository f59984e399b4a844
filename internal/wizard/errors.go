package wizard

import "errors"

var (
	ErrUnknownEditType   = errors.New("unknown edit type")
	ErrNoCountrySelected = errors.New("no country selected")
	ErrNoCitySelected    = errors.New("no city selected")
	ErrNoPackageSelected = errors.New("no package selected")
	ErrUnknownCountry    = errors.New("country not found")
	ErrUnknownCity       = errors.New("city not found for the selected country")
	ErrUnknownPackage    = errors.New("package not found for the selected destination")
	ErrUnknownAgency     = errors.New("agency not found")
	ErrUnknownHotel      = errors.New("hotel does not belong to the selected package")
	ErrDuplicateHotel    = errors.New("hotel already has a stay entry")
	ErrStayIndex         = errors.New("stay entry index out of range")
	ErrMandatoryStay     = errors.New("mandatory stay entry cannot be removed")
	ErrPassengerIndex    = errors.New("passenger index out of range")
	ErrLastPassenger     = errors.New("at least one passenger is required")
	ErrMissingPayload    = errors.New("edit payload missing for this edit type")
	ErrStepGate          = errors.New("current step is not complete")
	ErrSubmitInFlight    = errors.New("a submission is already in flight")
	ErrNotOnConfirmation = errors.New("submission is only allowed from the confirmation step")
)
