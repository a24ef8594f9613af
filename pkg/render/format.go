package render

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/shopspring/decimal"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const DateFormat = "02.01.2006"

var ErrUnknownFormat = errors.New("unknown output format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatDuration renders seconds as m:ss. Minutes are not wrapped into hours.
func FormatDuration(secs float64) string {
	if math.IsNaN(secs) || math.IsInf(secs, 0) {
		return "0:00"
	}
	mins := int(secs / 60)
	rest := int(math.Mod(secs, 60))
	return fmt.Sprintf("%d:%02d", mins, rest)
}

func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// Show renders positive values with one decimal, everything else as "-".
func Show(v float64) string {
	if v > 0 {
		return decimal.NewFromFloat(v).StringFixed(1)
	}
	return "-"
}

// ShowInt truncates before applying the rules of Show.
func ShowInt(v float64) string {
	if i := int(v); i > 0 {
		return strconv.Itoa(i)
	}
	return "-"
}

func ShowSensor(v null.Val[float64]) string {
	return Show(v.GetOr(0))
}

func ShowSensorInt(v null.Val[float64]) string {
	return ShowInt(v.GetOr(0))
}

// Round renders v with the given number of decimals.
func Round(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}
