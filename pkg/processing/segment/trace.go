package segment

import (
	"sort"

	"github.com/mpapenbr/gc-segments/pkg/model"
)

// FindIndex returns the smallest index i with seconds[i] >= sec.
// seconds must be sorted ascending. If there is no such index 0 is returned.
func FindIndex(sec float64, seconds []float64) int {
	idx := sort.SearchFloat64s(seconds, sec)
	if idx == len(seconds) {
		return 0
	}
	return idx
}

// ExtractTrace returns the positions recorded between start and stop
// (elapsed seconds), both ends inclusive.
// An offset beyond the recorded data resolves to index 0, so the result may
// be a single point or empty.
func ExtractTrace(start, stop float64, telemetry *model.Telemetry) []model.Point {
	ret := make([]model.Point, 0)
	if telemetry == nil || telemetry.Len() == 0 {
		return ret
	}
	from := FindIndex(start, telemetry.Seconds)
	to := FindIndex(stop, telemetry.Seconds)
	for i := from; i <= to; i++ {
		ret = append(ret, model.Point{Lat: telemetry.Latitude[i], Lon: telemetry.Longitude[i]})
	}
	return ret
}
