package tests

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"rides/internal/service"
)

func validInput() map[string]any {
	return map[string]any{
		"start_lat":      12.9716,
		"start_long":     77.5946,
		"end_lat":        12.2958,
		"end_long":       76.6394,
		"rider_name":     "Asha",
		"driver_name":    "Ravi",
		"driver_vehicle": "KA-01-1234",
	}
}

func TestValidate_ValidInput_ReturnsNormalizedRide(t *testing.T) {
	ride, err := service.ValidateRideSubmission(validInput())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if ride.StartLat != 12.9716 || ride.StartLong != 77.5946 {
		t.Errorf("start mismatch: got (%f, %f)", ride.StartLat, ride.StartLong)
	}
	if ride.EndLat != 12.2958 || ride.EndLong != 76.6394 {
		t.Errorf("end mismatch: got (%f, %f)", ride.EndLat, ride.EndLong)
	}
	if ride.RiderName != "Asha" || ride.DriverName != "Ravi" || ride.DriverVehicle != "KA-01-1234" {
		t.Errorf("names mismatch: got %+v", ride)
	}
}

func TestValidate_BoundaryCoordinatesAccepted(t *testing.T) {
	input := validInput()
	input["start_lat"] = -90.0
	input["start_long"] = 180.0
	input["end_lat"] = 90.0
	input["end_long"] = -180.0

	if _, err := service.ValidateRideSubmission(input); err != nil {
		t.Errorf("expected boundaries to be valid, got: %v", err)
	}
}

func TestValidate_OutOfRangeCoordinates_Rejected(t *testing.T) {
	testCases := []struct {
		name  string
		field string
		value any
		want  error
	}{
		{"start latitude too low", "start_lat", -90.0001, service.ErrInvalidStartLocation},
		{"start latitude too high", "start_lat", 91.0, service.ErrInvalidStartLocation},
		{"start longitude too low", "start_long", -181.0, service.ErrInvalidStartLocation},
		{"start longitude too high", "start_long", 180.5, service.ErrInvalidStartLocation},
		{"end latitude too low", "end_lat", -999.0, service.ErrInvalidEndLocation},
		{"end latitude too high", "end_lat", 95.0, service.ErrInvalidEndLocation},
		{"end longitude too low", "end_long", -200.0, service.ErrInvalidEndLocation},
		{"end longitude too high", "end_long", 200.0, service.ErrInvalidEndLocation},
		{"start latitude missing", "start_lat", nil, service.ErrInvalidStartLocation},
		{"end longitude not numeric", "end_long", "east", service.ErrInvalidEndLocation},
		{"start longitude is an object", "start_long", map[string]any{}, service.ErrInvalidStartLocation},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			input := validInput()
			if tc.value == nil {
				delete(input, tc.field)
			} else {
				input[tc.field] = tc.value
			}

			_, err := service.ValidateRideSubmission(input)
			if err != tc.want {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestValidate_CoercesNumericValues(t *testing.T) {
	input := validInput()
	input["start_lat"] = "45.5"
	input["start_long"] = " -73.25 "
	input["end_lat"] = json.Number("10")
	input["end_long"] = ""

	ride, err := service.ValidateRideSubmission(input)
	if err != nil {
		t.Fatalf("expected numeric strings to be accepted, got: %v", err)
	}
	if ride.StartLat != 45.5 || ride.StartLong != -73.25 || ride.EndLat != 10 || ride.EndLong != 0 {
		t.Errorf("unexpected coercion: %+v", ride)
	}
}

func TestValidate_NaNRejected(t *testing.T) {
	input := validInput()
	input["end_lat"] = math.NaN()

	if _, err := service.ValidateRideSubmission(input); err != service.ErrInvalidEndLocation {
		t.Errorf("expected ErrInvalidEndLocation, got %v", err)
	}
}

func TestValidate_Names_Rejected(t *testing.T) {
	testCases := []struct {
		name  string
		field string
		value any
		want  error
	}{
		{"empty rider name", "rider_name", "", service.ErrInvalidRiderName},
		{"numeric rider name", "rider_name", 42.0, service.ErrInvalidRiderName},
		{"missing rider name", "rider_name", nil, service.ErrInvalidRiderName},
		{"empty driver name", "driver_name", "", service.ErrInvalidDriverName},
		{"boolean driver name", "driver_name", true, service.ErrInvalidDriverName},
		{"empty driver vehicle", "driver_vehicle", "", service.ErrInvalidDriverVehicle},
		{"array driver vehicle", "driver_vehicle", []any{"car"}, service.ErrInvalidDriverVehicle},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			input := validInput()
			if tc.value == nil {
				delete(input, tc.field)
			} else {
				input[tc.field] = tc.value
			}

			_, err := service.ValidateRideSubmission(input)
			if err != tc.want {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestValidate_FirstViolatedRuleWins(t *testing.T) {
	input := map[string]any{
		"start_lat":      91.0,
		"end_lat":        91.0,
		"rider_name":     "",
		"driver_name":    "",
		"driver_vehicle": "",
	}

	want := []error{
		service.ErrInvalidStartLocation,
		service.ErrInvalidEndLocation,
		service.ErrInvalidRiderName,
		service.ErrInvalidDriverName,
		service.ErrInvalidDriverVehicle,
	}
	fixes := []func(){
		func() { input["start_lat"], input["start_long"] = 0.0, 0.0 },
		func() { input["end_lat"], input["end_long"] = 0.0, 0.0 },
		func() { input["rider_name"] = "r" },
		func() { input["driver_name"] = "d" },
		func() { input["driver_vehicle"] = "v" },
	}

	for i, expected := range want {
		_, err := service.ValidateRideSubmission(input)
		if err != expected {
			t.Fatalf("step %d: expected %v, got %v", i, expected, err)
		}
		fixes[i]()
	}

	if _, err := service.ValidateRideSubmission(input); err != nil {
		t.Errorf("expected input to be valid after all fixes, got %v", err)
	}
}

func TestValidate_ErrorsAreValidationErrors(t *testing.T) {
	input := validInput()
	input["driver_vehicle"] = ""

	_, err := service.ValidateRideSubmission(input)

	var validationErr *service.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected *service.ValidationError, got %T", err)
	}
	if validationErr.Error() != "Driver vehicle name must be a non empty string" {
		t.Errorf("unexpected message: %q", validationErr.Error())
	}
}

func TestValidate_NullCoordinateRejected(t *testing.T) {
	input := validInput()
	input["start_long"] = nil

	if _, err := service.ValidateRideSubmission(input); err != service.ErrInvalidStartLocation {
		t.Errorf("expected ErrInvalidStartLocation for null, got %v", err)
	}
}
