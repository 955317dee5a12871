package reports

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	descriptionMinLen = 10
	descriptionMaxLen = 2000
)

// ValidateCreateReport checks every constraint on a submission before any
// entity is constructed or persisted: closed-set fields, description length
// and coordinate ranges.
func ValidateCreateReport(req *CreateReportRequest) error {
	if !contains(HazardTypes, req.HazardType) {
		return fmt.Errorf("hazardType must be one of: %s", strings.Join(HazardTypes, ", "))
	}

	if !contains(Severities, req.Severity) {
		return fmt.Errorf("severity must be one of: %s", strings.Join(Severities, ", "))
	}

	// Bounds are in characters, not bytes, so multibyte text measures right.
	desc := utf8.RuneCountInString(strings.TrimSpace(req.Description))
	if desc < descriptionMinLen || desc > descriptionMaxLen {
		return fmt.Errorf("description must be between %d and %d characters", descriptionMinLen, descriptionMaxLen)
	}

	return ValidateCoordinates(req.Location.Coordinates)
}

// ValidateCoordinates checks a [longitude, latitude] pair.
func ValidateCoordinates(coords []float64) error {
	if len(coords) != 2 {
		return errors.New("location.coordinates must be [longitude, latitude]")
	}

	lng, lat := coords[0], coords[1]
	if lng < -180 || lng > 180 {
		return errors.New("invalid longitude")
	}
	if lat < -90 || lat > 90 {
		return errors.New("invalid latitude")
	}
	return nil
}

// ValidateListFilter checks the optional status/hazardType filter values.
func ValidateListFilter(f ListFilter) error {
	if f.Status != "" && f.Status != StatusPending && f.Status != StatusVerified && f.Status != StatusRejected {
		return errors.New("invalid status filter")
	}
	if f.HazardType != "" && !contains(HazardTypes, f.HazardType) {
		return errors.New("invalid hazardType filter")
	}
	return nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
