package request

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// ExportCSV renders the selected requests as the admin bulk export:
// one row per id, in collection order, unknown ids skipped.
func (s *DefaultService) ExportCSV(ids []string) ([]byte, error) {
	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Request ID", "Customer Name", "Service", "Status", "Date", "Phone", "Email"}); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, req := range s.Store.Requests() {
		if !selected[req.ID] {
			continue
		}
		row := []string{
			req.ID,
			req.CustomerName,
			req.Title,
			string(req.Status),
			req.DatePreference,
			req.CustomerPhone,
			req.CustomerEmail,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
