package repository

import (
	"github.com/aarondl/opt/null"

	"github.com/mpapenbr/gc-segments/pkg/model"
)

// SensorArg converts a sensor reading into a nullable column value.
func SensorArg(v null.Val[float64]) *float64 {
	if x, ok := v.Get(); ok {
		return &x
	}
	return nil
}

// SensorColumn converts a nullable column value into a sensor reading.
// Stored zeros are treated like NULL.
func SensorColumn(v *float64) null.Val[float64] {
	if v == nil {
		return null.Val[float64]{}
	}
	return model.Sensor(*v)
}
