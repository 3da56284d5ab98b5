package services

import (
	"context"

	"navkar-inquiry/internal/core/domain"
	"navkar-inquiry/internal/pkg/logger"
	"navkar-inquiry/internal/pkg/notify"
	"navkar-inquiry/internal/pkg/validate"
)

// ValidationError carries the field -> message map of a rejected draft.
// The draft never reaches the network layer.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "Please fix validation errors"
}

// InquiryService handles inquiry record operations against the remote
// service: CRUD, admin status changes and the edit pre-fill.
type InquiryService struct {
	gw       InquiryGateway
	notifier notify.Notifier
}

// NewInquiryService creates a new inquiry service
func NewInquiryService(gw InquiryGateway, notifier notify.Notifier) *InquiryService {
	return &InquiryService{
		gw:       gw,
		notifier: notifier,
	}
}

// ListMine fetches the customer's own records. A failed refresh is
// reported once; the next polling tick retries naturally.
func (s *InquiryService) ListMine(ctx context.Context) ([]domain.InquiryRecord, error) {
	records, err := s.gw.ListMine(ctx)
	if err != nil {
		logger.Log.WithError(err).Error("error fetching inquiries")
		s.notifier.Error("Failed to load inquiries")
		return nil, err
	}
	return records, nil
}

// ListAll fetches every record across all owners (admin view).
func (s *InquiryService) ListAll(ctx context.Context) ([]domain.InquiryRecord, error) {
	records, err := s.gw.ListAll(ctx)
	if err != nil {
		logger.Log.WithError(err).Error("error fetching inquiries")
		s.notifier.Error("Failed to load inquiries")
		return nil, err
	}
	return records, nil
}

// Submit validates a draft and creates a new inquiry. The draft is
// sanitized first, the same canonicalization the form applies while
// typing, so pasted lowercase PANs still submit in the stored format.
func (s *InquiryService) Submit(ctx context.Context, draft domain.FormDraft) (*domain.InquiryRecord, error) {
	rec, err := s.prepare(draft)
	if err != nil {
		return nil, err
	}

	created, err := s.gw.Create(ctx, rec)
	if err != nil {
		logger.Log.WithError(err).Error("error adding inquiry")
		s.notifier.Error("Failed to add inquiry. Please try again.")
		return nil, err
	}

	s.notifier.Success("Inquiry Added Successfully!")
	return created, nil
}

// UpdateRecord validates a draft and replaces the record in full.
func (s *InquiryService) UpdateRecord(ctx context.Context, id uint, draft domain.FormDraft) (*domain.InquiryRecord, error) {
	rec, err := s.prepare(draft)
	if err != nil {
		return nil, err
	}

	updated, err := s.gw.Update(ctx, id, rec)
	if err != nil {
		logger.Log.WithError(err).Error("error updating inquiry")
		s.notifier.Error("Failed to update inquiry. Please try again.")
		return nil, err
	}

	s.notifier.Success("Inquiry Updated Successfully!")
	return updated, nil
}

// LoadDraft fetches a record by id and seeds the edit form from it.
func (s *InquiryService) LoadDraft(ctx context.Context, id uint) (domain.FormDraft, error) {
	rec, err := s.gw.GetByID(ctx, id)
	if err != nil {
		logger.Log.WithError(err).Error("error fetching inquiry")
		s.notifier.Error("Failed to load inquiry details.")
		return domain.FormDraft{}, err
	}
	return domain.DraftFromRecord(rec), nil
}

// Delete removes a record by id. Deleting an already-deleted id surfaces
// the server error; it is never a silent success.
func (s *InquiryService) Delete(ctx context.Context, id uint) error {
	if err := s.gw.Delete(ctx, id); err != nil {
		logger.Log.WithError(err).Error("error deleting inquiry")
		s.notifier.Error("Failed to delete inquiry!")
		return err
	}

	s.notifier.Success("Inquiry deleted successfully!")
	return nil
}

// SetStatus approves or rejects an inquiry (admin only). Only the status
// field changes; the rest of the record is untouched.
func (s *InquiryService) SetStatus(ctx context.Context, id uint, status domain.InquiryStatus) error {
	if _, err := s.gw.SetStatus(ctx, id, status); err != nil {
		logger.Log.WithError(err).Error("error updating status")
		s.notifier.Error("Failed to update status")
		return err
	}

	s.notifier.Success("Status updated")
	return nil
}

// prepare sanitizes and validates a draft, then builds the payload.
func (s *InquiryService) prepare(draft domain.FormDraft) (*domain.InquiryRecord, error) {
	draft = validate.SanitizeDraft(draft)

	if errs := validate.Draft(draft); len(errs) > 0 {
		s.notifier.Error("Please fix validation errors")
		return nil, &ValidationError{Fields: errs}
	}

	rec, err := draft.Record()
	if err != nil {
		s.notifier.Error("Please fix validation errors")
		return nil, &ValidationError{Fields: map[string]string{
			"annualIncome": "Annual income is required",
		}}
	}
	return rec, nil
}
