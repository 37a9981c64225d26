package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError_Error(t *testing.T) {
	err := &NotFoundError{
		Resource: "country",
		ID:       "DEU",
	}
	
	expected := "country not found: DEU"
	if err.Error() != expected {
		t.Errorf("NotFoundError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Field:   "page_size",
		Message: "must be at least 1",
	}
	
	expected := "validation error on field 'page_size': must be at least 1"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestExternalAPIError_Error(t *testing.T) {
	err := &ExternalAPIError{
		StatusCode: 503,
		Message:    "service unavailable",
		API:        "restcountries",
	}
	
	expected := "external API error from restcountries: 503 - service unavailable"
	if err.Error() != expected {
		t.Errorf("ExternalAPIError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIsNotFound_True(t *testing.T) {
	err := &NotFoundError{
		Resource: "country",
		ID:       "ALA",
	}
	
	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestIsNotFound_False(t *testing.T) {
	err := errors.New("some other error")
	
	if IsNotFound(err) {
		t.Error("IsNotFound should return false for non-NotFoundError")
	}
}

func TestIsNotFound_WrappedError(t *testing.T) {
	notFound := &NotFoundError{
		Resource: "country",
		ID:       "DEU",
	}
	wrapped := fmt.Errorf("failed to select country: %w", notFound)
	
	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should return true for wrapped NotFoundError")
	}
}

func TestIsValidation_True(t *testing.T) {
	err := &ValidationError{
		Field:   "page",
		Message: "must be positive",
	}
	
	if !IsValidation(err) {
		t.Error("IsValidation should return true for ValidationError")
	}
}

func TestIsValidation_False(t *testing.T) {
	err := errors.New("some other error")
	
	if IsValidation(err) {
		t.Error("IsValidation should return false for non-ValidationError")
	}
}

func TestIsExternalAPI_True(t *testing.T) {
	err := &ExternalAPIError{
		StatusCode: 500,
		Message:    "internal server error",
		API:        "restcountries",
	}
	
	if !IsExternalAPI(err) {
		t.Error("IsExternalAPI should return true for ExternalAPIError")
	}
}

func TestIsExternalAPI_False(t *testing.T) {
	err := errors.New("some other error")
	
	if IsExternalAPI(err) {
		t.Error("IsExternalAPI should return false for non-ExternalAPIError")
	}
}

func TestWrapError_PreservesOriginalError(t *testing.T) {
	originalErr := &NotFoundError{Resource: "country", ID: "XYZ"}
	wrappedErr := WrapError(originalErr, "failed to show country")
	
	if wrappedErr == nil {
		t.Fatal("WrapError should not return nil for non-nil error")
	}
	
	// Check error message contains both context and original error
	expectedMsg := "failed to show country: country not found: XYZ"
	if wrappedErr.Error() != expectedMsg {
		t.Errorf("WrapError message = %v, want %v", wrappedErr.Error(), expectedMsg)
	}
	
	// Should still be identifiable as NotFoundError
	if !IsNotFound(wrappedErr) {
		t.Error("Wrapped error should still be identifiable as NotFoundError")
	}
}

func TestWrapError_AddsContextMessage(t *testing.T) {
	originalErr := errors.New("network timeout")
	wrappedErr := WrapError(originalErr, "external API call failed")
	
	expected := "external API call failed: network timeout"
	if wrappedErr.Error() != expected {
		t.Errorf("WrapError = %v, want %v", wrappedErr.Error(), expected)
	}
}

func TestWrapError_HandlesNilError(t *testing.T) {
	wrappedErr := WrapError(nil, "this should not happen")
	
	if wrappedErr != nil {
		t.Error("WrapError should return nil when wrapping nil error")
	}
}
func TestHTTPStatusError_Error(t *testing.T) {
	err := &HTTPStatusError{StatusCode: 500}

	if err.Error() != "HTTP 500" {
		t.Errorf("HTTPStatusError.Error() = %v, want HTTP 500", err.Error())
	}
}

func TestIsHTTPStatus(t *testing.T) {
	wrapped := fmt.Errorf("fetch countries: %w", &HTTPStatusError{StatusCode: 404})

	if !IsHTTPStatus(wrapped) {
		t.Error("IsHTTPStatus should return true for wrapped HTTPStatusError")
	}
	if IsHTTPStatus(errors.New("HTTP 404")) {
		t.Error("IsHTTPStatus should return false for plain errors")
	}
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"http status error", &HTTPStatusError{StatusCode: 502}, 502},
		{"wrapped http status error", fmt.Errorf("ctx: %w", &HTTPStatusError{StatusCode: 429}), 429},
		{"external api error", &ExternalAPIError{StatusCode: 503}, 503},
		{"plain error", errors.New("boom"), 0},
		{"nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusCode(tt.err); got != tt.want {
				t.Errorf("StatusCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseError(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := &ParseError{Resource: "countries", Err: cause}

	if err.Error() != "failed to parse countries: unexpected end of JSON input" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("ParseError should unwrap to its cause")
	}
	if !IsParse(fmt.Errorf("load: %w", err)) {
		t.Error("IsParse should return true for wrapped ParseError")
	}
	if IsParse(&HTTPStatusError{StatusCode: 500}) {
		t.Error("IsParse should return false for status errors")
	}
}
