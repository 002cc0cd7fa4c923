package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	apiclient "github.com/jhartmann/carwatch/internal/api/client"
	domain "github.com/jhartmann/carwatch/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printListingsTable(listings []domain.Listing) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tVEHICLE\tYEAR\tKM\tPRICE\tSCORE\tTIER\n")
	for i := range listings {
		l := &listings[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			l.ID,
			truncate(l.Brand+" "+l.Model, 30),
			fmtIntPtr(l.Year),
			fmtIntPtr(l.MileageKM),
			fmtPrice(l.PriceEUR),
			fmtScore(l.Score),
			l.ScoreTier,
		)
	}
	return tw.finish()
}

func printListingDetail(l *domain.Listing) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", l.ID)
	tw.writef("Source:\t%s\n", l.Source)
	tw.writef("Vehicle:\t%s %s %s\n", l.Brand, l.Model, l.Variant)
	tw.writef("Year:\t%s\n", fmtIntPtr(l.Year))
	tw.writef("Mileage:\t%s km\n", fmtIntPtr(l.MileageKM))
	tw.writef("Price:\t%s\n", fmtPrice(l.PriceEUR))
	tw.writef("Fuel:\t%s\n", l.FuelType)
	tw.writef("Transmission:\t%s\n", l.Transmission)
	tw.writef("Condition:\t%s\n", l.Condition)
	tw.writef("Accident:\t%v\n", l.Accident)
	if l.Score != nil {
		tw.writef("Score:\t%.2f/100 (%s)\n", *l.Score, l.ScoreTier)
		if l.ScorePercentile != nil {
			tw.writef("Percentile:\t%.4f\n", *l.ScorePercentile)
		}
		if l.ScoreCohortSize != nil {
			tw.writef("Cohort Size:\t%d\n", *l.ScoreCohortSize)
		}
	}
	tw.writef("Active:\t%v\n", l.IsActive)
	tw.writef("First Seen:\t%s\n", l.FirstSeenAt.Format("2006-01-02 15:04:05"))
	tw.writef("Last Seen:\t%s\n", l.LastSeenAt.Format("2006-01-02 15:04:05"))
	tw.writef("URL:\t%s\n", l.URL)
	return tw.finish()
}

func printScoreHistoryTable(entries []domain.ScoreHistoryEntry) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("COMPUTED\tSCORE\tVERSION\n")
	for i := range entries {
		tw.writef("%s\t%s\t%s\n",
			entries[i].ComputedAt.Format("2006-01-02 15:04:05"),
			fmtScore(entries[i].Score),
			entries[i].ScoreVersion,
		)
	}
	return tw.finish()
}

func printPriceHistoryTable(entries []domain.PriceHistoryEntry) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("RECORDED\tPRICE\tMILEAGE\n")
	for i := range entries {
		tw.writef("%s\t%s\t%s\n",
			entries[i].RecordedAt.Format("2006-01-02 15:04:05"),
			fmtPrice(entries[i].PriceEUR),
			fmtIntPtr(entries[i].MileageKM),
		)
	}
	return tw.finish()
}

func printStatsTable(stats []domain.ModelYearStat) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("DATE\tBRAND\tMODEL\tYEAR\tN\tAVG PRICE\tMEDIAN PRICE\tMEDIAN KM\n")
	for i := range stats {
		st := &stats[i]
		tw.writef("%s\t%s\t%s\t%d\t%d\t%s\t%s\t%s\n",
			st.SnapshotDate.Format("2006-01-02"),
			st.Brand,
			st.Model,
			st.Year,
			st.N,
			fmtFloatPtr(st.AvgPrice),
			fmtFloatPtr(st.MedianPrice),
			fmtFloatPtr(st.MedianMileage),
		)
	}
	return tw.finish()
}

func printJobRunsTable(runs []domain.JobRun) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("JOB\tSTATUS\tSTARTED\tCOMPLETED\tROWS\tERROR\n")
	for i := range runs {
		r := &runs[i]
		completed := "-"
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Format("2006-01-02 15:04:05")
		}
		rows := "-"
		if r.RowsAffected != nil {
			rows = fmt.Sprintf("%d", *r.RowsAffected)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			r.JobName,
			r.Status,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			completed,
			rows,
			truncate(r.ErrorText, 40),
		)
	}
	return tw.finish()
}

func printRunSummary(s *domain.RunSummary) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Version:\t%s\n", s.ScoreVersion)
	tw.writef("Scored:\t%d\n", s.Scored)
	tw.writef("Insufficient:\t%d\n", s.Insufficient)
	tw.writef("Invalid:\t%d\n", s.Invalid)
	tw.writef("Failed:\t%d\n", s.Failed)
	tw.writef("Total:\t%d\n", s.Total)
	tw.writef("Duration:\t%s\n", s.Duration)
	return tw.finish()
}

func printScoreOutcome(o *apiclient.ScoreOutcome) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Status:\t%s\n", o.Status)
	if o.Score != nil {
		tw.writef("Score:\t%.2f/100\n", *o.Score)
	}
	if o.Tier != "" {
		tw.writef("Tier:\t%s\n", o.Tier)
	}
	if o.Percentile != nil {
		tw.writef("Percentile:\t%.4f\n", *o.Percentile)
	}
	tw.writef("Cohort Level:\t%s\n", o.CohortLevel)
	tw.writef("Cohort Size:\t%d\n", o.CohortSize)
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func fmtIntPtr(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

func fmtFloatPtr(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.0f", *v)
}

func fmtPrice(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("€%d", *v)
}

func fmtScore(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
