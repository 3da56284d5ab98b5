package services

import "navkar-inquiry/internal/core/domain"

// StatusBreakdown holds the approval statistics shown on the admin
// dashboard, recomputed from the full list on every refresh.
type StatusBreakdown struct {
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Pending  int `json:"pending"`
}

// Total returns the number of counted inquiries.
func (b StatusBreakdown) Total() int {
	return b.Approved + b.Rejected + b.Pending
}

// BreakdownOf counts inquiries per status.
func BreakdownOf(records []domain.InquiryRecord) StatusBreakdown {
	var b StatusBreakdown
	for _, rec := range records {
		switch rec.Status {
		case domain.StatusApproved:
			b.Approved++
		case domain.StatusRejected:
			b.Rejected++
		case domain.StatusPending:
			b.Pending++
		}
	}
	return b
}
