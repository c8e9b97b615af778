package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes the per-task metrics table as CSV, one row per task in
// input order.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"task_id", "label", "arrival", "burst", "priority", "waiting", "turnaround", "response", "completion"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, m := range r.PerTask {
		rec := []string{
			m.TaskID,
			m.Label,
			formatSeconds(m.Arrival),
			formatSeconds(m.Burst),
			strconv.Itoa(m.Priority),
			formatSeconds(m.Waiting),
			formatSeconds(m.Turnaround),
			formatSeconds(m.Response),
			formatSeconds(m.Completion),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("failed to write CSV row for task %s: %w", m.TaskID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
