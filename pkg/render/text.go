package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mpapenbr/gc-segments/pkg/model"
	"github.com/mpapenbr/gc-segments/pkg/service"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	segmentStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// Text writes a human readable report of the leaderboard.
func Text(w io.Writer, lb *model.Leaderboard) error {
	var b strings.Builder
	b.WriteString(titleStyle.Render(heading(&lb.Overview)))
	b.WriteString("\n")
	b.WriteString(summary(&lb.Overview))
	b.WriteString("\n")
	for i, e := range lb.Entries {
		b.WriteString("\n")
		writeEntry(&b, i+1, e)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// TextFailure writes the failure message together with its resolution.
func TextFailure(w io.Writer, f *service.Failure) error {
	var b strings.Builder
	b.WriteString(errorStyle.Render(f.Message))
	b.WriteString("\n")
	if f.Resolution != "" {
		b.WriteString(f.Resolution)
		b.WriteString("\n")
	}
	if f.Detail != "" {
		b.WriteString(mutedStyle.Render(f.Detail))
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func heading(o *model.Overview) string {
	name := o.Route
	if name == "" {
		name = "Activity"
	}
	return fmt.Sprintf("%s (%s)", name, FormatDate(o.Date))
}

func summary(o *model.Overview) string {
	noun := "segments"
	if o.NumSegments == 1 {
		noun = "segment"
	}
	ret := fmt.Sprintf("Found %d route %s in season %s", o.NumSegments, noun, o.SeasonName)
	if o.OutOfSeason {
		ret += " " + mutedStyle.Render("(activity is out of season)")
	}
	return ret
}

func medal(e *model.Entry) string {
	if e.NumAttempts < 2 {
		return ""
	}
	switch e.Rank {
	case 1:
		return "gold"
	case 2:
		return "silver"
	case 3:
		return "bronze"
	case e.NumAttempts:
		return "last"
	}
	return ""
}

func writeEntry(b *strings.Builder, idx int, e *model.Entry) {
	title := fmt.Sprintf("%d. %s  %d / %d", idx, e.Name, e.Rank, e.NumAttempts)
	if m := medal(e); m != "" {
		title += " (" + m + ")"
	}
	b.WriteString(segmentStyle.Render(title))
	b.WriteString("\n")

	fmt.Fprintf(b, "Distance:   %s km\n", Round(e.Info.Distance, 2))
	fmt.Fprintf(b, "Elevation:  +%s / -%s m\n",
		Round(e.Info.ElevationGain, 1), Round(e.Info.ElevationLoss, 1))
	if e.NumAttempts > 1 {
		fmt.Fprintf(b, "Attempts:   %s - %s\n",
			FormatDate(e.FirstAttempt), FormatDate(e.LastAttempt))
		fmt.Fprintf(b, "Spread:     %s (%s%%)\n",
			FormatDuration(e.DeltaDuration), Round(e.DeltaPercent, 1))
		fmt.Fprintf(b, "Averages:   %s\n", averages(e))
	}
	b.WriteString(attemptsTable(e).String())
	b.WriteString("\n")
	if len(e.Trace) > 0 {
		first, last := e.Trace[0], e.Trace[len(e.Trace)-1]
		fmt.Fprintf(b, "Trace:      %s -> %s (%d points)\n",
			point(first), point(last), len(e.Trace))
	}
}

func averages(e *model.Entry) string {
	parts := []string{"duration " + FormatDuration(e.Averages.Duration)}
	if e.HasPower > 0 {
		parts = append(parts, "power "+ShowSensor(e.Averages.AvgPower))
	}
	if e.HasHeartRate > 0 {
		parts = append(parts, "hr "+ShowSensorInt(e.Averages.AvgHeartRate))
	}
	parts = append(parts, "speed "+Round(e.Averages.AvgSpeed, 2))
	if e.HasCadence > 0 {
		parts = append(parts, "cadence "+ShowSensorInt(e.Averages.AvgCadence))
	}
	if e.HasPower > 0 {
		parts = append(parts, "bikestress "+ShowSensorInt(e.Averages.BikeStress))
	}
	return strings.Join(parts, ", ")
}

// attemptsTable lists the attempts ordered by duration.
// Sensor columns are only present when at least one attempt recorded them.
func attemptsTable(e *model.Entry) *table.Table {
	multi := e.NumAttempts > 1
	headers := []string{"#", "Date", "Time", "Duration"}
	if multi {
		headers = append(headers, "Δ fastest")
	}
	if e.HasPower > 0 {
		headers = append(headers, "Power")
	}
	if e.HasHeartRate > 0 {
		headers = append(headers, "HR")
	}
	headers = append(headers, "Speed")
	if e.HasCadence > 0 {
		headers = append(headers, "Cadence")
	}
	if e.HasPower > 0 {
		headers = append(headers, "BikeStress")
	}

	rows := make([][]string, 0, len(e.Attempts))
	for i := range e.Attempts {
		a := &e.Attempts[i]
		pos := strconv.Itoa(i + 1)
		if a.IsCurrent {
			pos += "*"
		}
		row := []string{pos, FormatDate(a.Date), a.Time.String(), FormatDuration(a.Duration)}
		if multi {
			delta := ""
			if i > 0 {
				delta = fmt.Sprintf("%s (%s%%)", FormatDuration(a.DeltaDuration), Round(a.DeltaPercent, 1))
			}
			row = append(row, delta)
		}
		if e.HasPower > 0 {
			row = append(row, ShowSensor(a.AvgPower))
		}
		if e.HasHeartRate > 0 {
			row = append(row, ShowSensorInt(a.AvgHeartRate))
		}
		row = append(row, Round(a.AvgSpeed, 2))
		if e.HasCadence > 0 {
			row = append(row, ShowSensorInt(a.AvgCadence))
		}
		if e.HasPower > 0 {
			row = append(row, ShowSensorInt(a.BikeStress))
		}
		rows = append(rows, row)
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
}

func point(p model.Point) string {
	return Round(p.Lat, 5) + "," + Round(p.Lon, 5)
}
