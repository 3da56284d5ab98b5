package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"navkar-inquiry/internal/core/domain"
)

func TestBreakdownOfCountsPerStatus(t *testing.T) {
	records := []domain.InquiryRecord{
		{Status: domain.StatusApproved},
		{Status: domain.StatusApproved},
		{Status: domain.StatusRejected},
		{Status: domain.StatusPending},
		{Status: "SOMETHING_ELSE"},
	}

	b := BreakdownOf(records)

	assert.Equal(t, StatusBreakdown{Approved: 2, Rejected: 1, Pending: 1}, b)
	assert.Equal(t, 4, b.Total(), "unrecognized statuses are excluded")
}

func TestBreakdownOfEmptyList(t *testing.T) {
	b := BreakdownOf(nil)

	assert.Zero(t, b.Total())
	assert.Equal(t, StatusBreakdown{}, b)
}
