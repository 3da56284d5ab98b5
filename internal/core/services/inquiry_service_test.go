package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navkar-inquiry/internal/core/domain"
)

func TestSubmitValidDraftCreatesRecord(t *testing.T) {
	gw := &fakeInquiryGateway{}
	toasts := &recordingNotifier{}
	svc := NewInquiryService(gw, toasts)

	created, err := svc.Submit(context.Background(), validDraft())

	require.NoError(t, err)
	require.NotNil(t, gw.created)
	assert.Equal(t, "John Doe", gw.created.Name)
	assert.Equal(t, 850000.0, gw.created.AnnualIncome)
	assert.False(t, gw.created.PastLoan)
	assert.Zero(t, gw.created.ID, "id is assigned server-side")
	assert.Empty(t, gw.created.Status, "status is assigned server-side")
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, []string{"Inquiry Added Successfully!"}, toasts.successes)
}

func TestSubmitInvalidDraftNeverReachesGateway(t *testing.T) {
	gw := &fakeInquiryGateway{}
	toasts := &recordingNotifier{}
	svc := NewInquiryService(gw, toasts)

	draft := validDraft()
	draft.MobileNumber = "12345"
	draft.PanCard = ""

	_, err := svc.Submit(context.Background(), draft)

	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Mobile number must be at least 10 digits", verr.Fields["mobileNumber"])
	assert.Equal(t, "PAN is required", verr.Fields["panCard"])
	assert.Zero(t, gw.calls, "an invalid draft must not reach the network")
	assert.Equal(t, []string{"Please fix validation errors"}, toasts.errors)
}

func TestSubmitSanitizesPastedPan(t *testing.T) {
	gw := &fakeInquiryGateway{}
	svc := NewInquiryService(gw, &recordingNotifier{})

	draft := validDraft()
	draft.PanCard = "abcde1234f"

	_, err := svc.Submit(context.Background(), draft)

	require.NoError(t, err)
	assert.Equal(t, "ABCDE1234F", gw.created.PanCard)
}

func TestSubmitGatewayFailureToast(t *testing.T) {
	gw := &fakeInquiryGateway{err: assert.AnError}
	toasts := &recordingNotifier{}
	svc := NewInquiryService(gw, toasts)

	_, err := svc.Submit(context.Background(), validDraft())

	require.Error(t, err)
	assert.Equal(t, []string{"Failed to add inquiry. Please try again."}, toasts.errors)
	assert.Empty(t, toasts.successes)
}

func TestUpdateRecordValidatesAndReplaces(t *testing.T) {
	gw := &fakeInquiryGateway{}
	toasts := &recordingNotifier{}
	svc := NewInquiryService(gw, toasts)

	draft := validDraft()
	draft.LoanType = "Car Loan"

	updated, err := svc.UpdateRecord(context.Background(), 4, draft)

	require.NoError(t, err)
	assert.Equal(t, uint(4), gw.updatedID)
	assert.Equal(t, "Car Loan", gw.updated.LoanType)
	assert.Equal(t, uint(4), updated.ID)
	assert.Equal(t, []string{"Inquiry Updated Successfully!"}, toasts.successes)
}

func TestUpdateRecordFailureToast(t *testing.T) {
	gw := &fakeInquiryGateway{err: assert.AnError}
	toasts := &recordingNotifier{}
	svc := NewInquiryService(gw, toasts)

	_, err := svc.UpdateRecord(context.Background(), 4, validDraft())

	require.Error(t, err)
	assert.Equal(t, []string{"Failed to update inquiry. Please try again."}, toasts.errors)
}

func TestLoadDraftSeedsEditForm(t *testing.T) {
	gw := &fakeInquiryGateway{records: []domain.InquiryRecord{{
		ID:           4,
		Name:         "Jane Roe",
		MobileNumber: "9123456780",
		Email:        "jane@example.com",
		Address:      "9 Hill Road",
		WorkType:     "Business",
		LoanType:     "Personal Loan",
		AnnualIncome: 1200000.5,
		PastLoan:     true,
		PanCard:      "FGHIJ5678K",
		Status:       domain.StatusApproved,
	}}}
	svc := NewInquiryService(gw, &recordingNotifier{})

	draft, err := svc.LoadDraft(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", draft.Name)
	assert.Equal(t, "1200000.5", draft.AnnualIncome)
	assert.Equal(t, "yes", draft.PastLoan)
}

func TestLoadDraftFailureToast(t *testing.T) {
	gw := &fakeInquiryGateway{err: assert.AnError}
	toasts := &recordingNotifier{}
	svc := NewInquiryService(gw, toasts)

	_, err := svc.LoadDraft(context.Background(), 99)

	require.Error(t, err)
	assert.Equal(t, []string{"Failed to load inquiry details."}, toasts.errors)
}

func TestListMineFailureToast(t *testing.T) {
	gw := &fakeInquiryGateway{err: assert.AnError}
	toasts := &recordingNotifier{}
	svc := NewInquiryService(gw, toasts)

	_, err := svc.ListMine(context.Background())

	require.Error(t, err)
	assert.Equal(t, []string{"Failed to load inquiries"}, toasts.errors)
}

func TestListAllFailureToast(t *testing.T) {
	gw := &fakeInquiryGateway{err: assert.AnError}
	toasts := &recordingNotifier{}
	svc := NewInquiryService(gw, toasts)

	_, err := svc.ListAll(context.Background())

	require.Error(t, err)
	assert.Equal(t, []string{"Failed to load inquiries"}, toasts.errors)
}

func TestDeleteToasts(t *testing.T) {
	gw := &fakeInquiryGateway{}
	toasts := &recordingNotifier{}
	svc := NewInquiryService(gw, toasts)

	require.NoError(t, svc.Delete(context.Background(), 7))
	assert.Equal(t, uint(7), gw.deletedID)
	assert.Equal(t, []string{"Inquiry deleted successfully!"}, toasts.successes)

	gw.err = assert.AnError
	require.Error(t, svc.Delete(context.Background(), 7))
	assert.Equal(t, []string{"Failed to delete inquiry!"}, toasts.errors)
}

func TestSetStatusToasts(t *testing.T) {
	gw := &fakeInquiryGateway{}
	toasts := &recordingNotifier{}
	svc := NewInquiryService(gw, toasts)

	require.NoError(t, svc.SetStatus(context.Background(), 3, domain.StatusRejected))
	assert.Equal(t, uint(3), gw.statusID)
	assert.Equal(t, domain.StatusRejected, gw.status)
	assert.Equal(t, []string{"Status updated"}, toasts.successes)

	gw.err = assert.AnError
	require.Error(t, svc.SetStatus(context.Background(), 3, domain.StatusApproved))
	assert.Equal(t, []string{"Failed to update status"}, toasts.errors)
}
