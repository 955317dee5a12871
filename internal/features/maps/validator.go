package maps

import (
	"errors"
	"strconv"
	"strings"
)

const (
	minRadiusKM = 0.1
	maxRadiusKM = 100
)

// ParseBounds parses "swLng,swLat,neLng,neLat" into a Bounds, checking each
// coordinate against its valid range.
func ParseBounds(s string) (*Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, errors.New("bounds must be swLng,swLat,neLng,neLat")
	}

	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.New("bounds must contain four numbers")
		}
		vals[i] = v
	}

	b := &Bounds{SWLng: vals[0], SWLat: vals[1], NELng: vals[2], NELat: vals[3]}
	if b.SWLng < -180 || b.SWLng > 180 || b.NELng < -180 || b.NELng > 180 {
		return nil, errors.New("invalid longitude in bounds")
	}
	if b.SWLat < -90 || b.SWLat > 90 || b.NELat < -90 || b.NELat > 90 {
		return nil, errors.New("invalid latitude in bounds")
	}
	return b, nil
}

// ParseCenter builds a radius query from lat/lng/radius query strings. All
// three must be present together.
func ParseCenter(latStr, lngStr, radiusStr string) (*Center, error) {
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil || lat < -90 || lat > 90 {
		return nil, errors.New("invalid latitude")
	}

	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil || lng < -180 || lng > 180 {
		return nil, errors.New("invalid longitude")
	}

	radius, err := strconv.ParseFloat(radiusStr, 64)
	if err != nil || radius < minRadiusKM || radius > maxRadiusKM {
		return nil, errors.New("radius must be between 0.1 and 100 km")
	}

	return &Center{Lng: lng, Lat: lat, RadiusKM: radius}, nil
}
