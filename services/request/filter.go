package request

import (
	"strings"

	"quicklink/models"
)

func matchesAll(filter, value string) bool {
	return filter == "" || filter == "all" || filter == value
}

// Filter narrows the request list with the admin screen's combined filters:
// free-text search over id, title and customer name, plus status, type and
// payment dropdowns.
func (s *DefaultService) Filter(q Query) []models.Request {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	var out []models.Request
	for _, req := range s.Store.Requests() {
		if search != "" &&
			!strings.Contains(strings.ToLower(req.Title), search) &&
			!strings.Contains(strings.ToLower(req.ID), search) &&
			!strings.Contains(strings.ToLower(req.CustomerName), search) {
			continue
		}
		if !matchesAll(q.Status, string(req.Status)) {
			continue
		}
		if !matchesAll(q.Kind, string(req.Kind)) {
			continue
		}
		if !matchesAll(q.Payment, string(req.PaymentStatus)) {
			continue
		}
		out = append(out, req)
	}
	return out
}
