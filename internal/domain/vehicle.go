package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const vehicleLabelPrefix = "VEH"

// Fleet entry a route is checked against.
// Capacity is in load units, Range in kilometers.
type VehicleSpec struct {
	VehicleID int     `validate:"gte=0"`
	Capacity  int     `validate:"gt=0"`
	Range     float64 `validate:"gt=0"`
}

// ParseVehicleLabel extracts the numeric vehicle ID from a "VEH<n>" label.
func ParseVehicleLabel(label string) (int, error) {
	label = strings.TrimSpace(label)
	rest, ok := strings.CutPrefix(label, vehicleLabelPrefix)
	if !ok {
		return 0, fmt.Errorf("parse vehicle label %q: missing %s prefix", label, vehicleLabelPrefix)
	}

	id, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("parse vehicle label %q: %w", label, err)
	}
	if id < 0 {
		return 0, fmt.Errorf("parse vehicle label %q: negative vehicle id", label)
	}

	return id, nil
}

// VehicleLabel is the inverse of ParseVehicleLabel.
func VehicleLabel(id int) string {
	return vehicleLabelPrefix + strconv.Itoa(id)
}
