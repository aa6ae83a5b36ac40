// Package report renders analyzer output for the terminal.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rcliao/ais-codes/internal/analyzer"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

var weekdayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Render produces the full fleet report for a dataset.
func Render(d *analyzer.Dataset, generated time.Time, source string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("AIS FLEET ANALYSIS REPORT") + "\n")
	b.WriteString(labelStyle.Render("Generated: ") + generated.Format("2006-01-02 15:04:05") + "\n")
	b.WriteString(labelStyle.Render("Source: ") + source + "\n\n")

	writeSummary(&b, d)
	writeDWT(&b, d)
	writeActivity(&b, d)
	writeRegions(&b, d)
	writeBreakdowns(&b, d)
	writeVessels(&b, d)
	writeDestinations(&b, d)
	writeWeekdays(&b, d)

	return b.String()
}

func section(b *strings.Builder, name string) {
	b.WriteString(sectionStyle.Render(name) + "\n")
}

func writeSummary(b *strings.Builder, d *analyzer.Dataset) {
	s := d.Summary()
	section(b, "BASIC STATISTICS")
	if s.Records == 0 {
		b.WriteString("No position records loaded\n\n")
		return
	}
	fmt.Fprintf(b, "Position records: %d\n", s.Records)
	fmt.Fprintf(b, "Unique vessels: %d\n", s.UniqueVessels)
	fmt.Fprintf(b, "Records per vessel: %.1f\n", float64(s.Records)/float64(s.UniqueVessels))
	fmt.Fprintf(b, "Time span: %.1f hours (%s to %s)\n",
		s.SpanHours,
		s.Start.Format("2006-01-02 15:04"),
		s.End.Format("2006-01-02 15:04"))
	if s.RecordsPerHour > 0 {
		fmt.Fprintf(b, "Records per hour: %.1f\n", s.RecordsPerHour)
	}
	fmt.Fprintf(b, "Coverage: %.1f deg latitude x %.1f deg longitude\n", s.MaxLat-s.MinLat, s.MaxLon-s.MinLon)
	fmt.Fprintf(b, "Extent: %.2fN..%.2fN, %.2fE..%.2fE\n\n", s.MinLat, s.MaxLat, s.MinLon, s.MaxLon)
}

func writeDWT(b *strings.Builder, d *analyzer.Dataset) {
	stats := d.DWTDistribution()
	section(b, "VESSEL SIZE")
	if stats.Vessels == 0 {
		b.WriteString("No DWT data available\n\n")
		return
	}
	fmt.Fprintf(b, "Vessels with DWT data: %d\n", stats.Vessels)
	fmt.Fprintf(b, "DWT range: %.0f - %.0f tonnes\n", stats.Min, stats.Max)
	fmt.Fprintf(b, "Average DWT: %.0f tonnes, median %.0f tonnes\n", stats.Mean, stats.Median)
	for _, bin := range stats.Bins {
		fmt.Fprintf(b, "%6.0fk-%.0fk: %3d (%4.1f%%) %s\n",
			bin.Min/1000, bin.Max/1000, bin.Count, bin.Pct, bar(bin.Pct/2))
	}
	b.WriteString("\n")
}

func writeActivity(b *strings.Builder, d *analyzer.Dataset) {
	stats := d.Activity()
	section(b, "ACTIVITY")
	if stats.Samples == 0 {
		b.WriteString("No speed data available\n\n")
		return
	}
	fmt.Fprintf(b, "Speed (knots): avg %.1f, median %.1f, max %.1f\n", stats.Mean, stats.Median, stats.Max)
	total := float64(stats.Samples)
	fmt.Fprintf(b, "Stationary (<1 kt): %d (%.1f%%)\n", stats.Stationary, 100*float64(stats.Stationary)/total)
	fmt.Fprintf(b, "Slow (1-5 kt): %d (%.1f%%)\n", stats.Slow, 100*float64(stats.Slow)/total)
	fmt.Fprintf(b, "Cruising (5-12 kt): %d (%.1f%%)\n", stats.Cruising, 100*float64(stats.Cruising)/total)
	fmt.Fprintf(b, "Fast (>12 kt): %d (%.1f%%)\n", stats.Fast, 100*float64(stats.Fast)/total)
	fmt.Fprintf(b, "Peak activity hour: %02d:00 UTC (%d records)\n\n", stats.PeakHour, stats.PeakHourCount)
}

func writeRegions(b *strings.Builder, d *analyzer.Dataset) {
	section(b, "REGIONS")
	for _, rc := range d.Regions() {
		fmt.Fprintf(b, "%-18s %6d (%4.1f%%)\n", rc.Name, rc.Count, rc.Pct)
	}
	b.WriteString("\n")
}

func writeBreakdowns(b *strings.Builder, d *analyzer.Dataset) {
	section(b, "NAVIGATION STATUS")
	nav := d.NavStatusBreakdown()
	if len(nav) == 0 {
		b.WriteString("No navigation status data available\n")
	}
	for _, cc := range nav {
		fmt.Fprintf(b, "%3d %-45s %6d\n", cc.Code, cc.Description, cc.Count)
	}
	b.WriteString("\n")

	section(b, "SHIP TYPES")
	types := d.ShipTypeBreakdown()
	if len(types) == 0 {
		b.WriteString("No ship type data available\n")
	}
	for _, cc := range types {
		fmt.Fprintf(b, "%3d %-45s %6d\n", cc.Code, cc.Description, cc.Count)
	}
	b.WriteString("\n")
}

func writeVessels(b *strings.Builder, d *analyzer.Dataset) {
	section(b, "MOST TRACKED VESSELS")
	for _, va := range d.TopVessels(10) {
		line := fmt.Sprintf("%s (%s): %d positions, %.1f hours", va.Name, va.MMSI, va.Positions, va.Hours)
		if va.DWT > 0 {
			line += fmt.Sprintf(", %.0ft DWT", va.DWT)
		}
		if va.MaxSpeed > 0 {
			line += fmt.Sprintf(", max %.1f kt", va.MaxSpeed)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
}

func writeDestinations(b *strings.Builder, d *analyzer.Dataset) {
	section(b, "TOP DESTINATIONS")
	dests := d.TopDestinations(10)
	if len(dests) == 0 {
		b.WriteString("No destination data available\n\n")
		return
	}
	for _, dc := range dests {
		fmt.Fprintf(b, "%-20s %d vessels, %d reports\n", dc.Destination, dc.Vessels, dc.Reports)
	}
	b.WriteString("\n")
}

func writeWeekdays(b *strings.Builder, d *analyzer.Dataset) {
	section(b, "ACTIVITY BY WEEKDAY")
	counts := d.Weekdays()
	peak := 0
	for _, n := range counts {
		peak = max(peak, n)
	}
	for i, n := range counts {
		width := 0.0
		if peak > 0 {
			width = 20 * float64(n) / float64(peak)
		}
		fmt.Fprintf(b, "%s %5d %s\n", weekdayNames[i], n, bar(width))
	}
}

// bar renders a solid block bar of the given width.
func bar(width float64) string {
	if width < 0 {
		width = 0
	}
	return barStyle.Render(strings.Repeat("█", int(width)))
}
