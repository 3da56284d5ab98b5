package services

import (
	"context"

	"navkar-inquiry/internal/core/domain"
)

// fakeAuthGateway scripts the remote auth responses.
type fakeAuthGateway struct {
	loginResult *domain.AuthResult
	loginErr    error
	registerErr error

	lastUsername string
	lastPassword string
	lastRole     domain.Role
}

func (f *fakeAuthGateway) Login(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	f.lastUsername = username
	f.lastPassword = password
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginResult, nil
}

func (f *fakeAuthGateway) Register(ctx context.Context, username, password string, role domain.Role) error {
	f.lastUsername = username
	f.lastPassword = password
	f.lastRole = role
	return f.registerErr
}

// fakeInquiryGateway scripts the remote inquiry responses and records the
// payloads it was handed.
type fakeInquiryGateway struct {
	records []domain.InquiryRecord
	err     error

	created   *domain.InquiryRecord
	updated   *domain.InquiryRecord
	updatedID uint
	deletedID uint
	statusID  uint
	status    domain.InquiryStatus
	calls     int
}

func (f *fakeInquiryGateway) ListAll(ctx context.Context) ([]domain.InquiryRecord, error) {
	f.calls++
	return f.records, f.err
}

func (f *fakeInquiryGateway) ListMine(ctx context.Context) ([]domain.InquiryRecord, error) {
	f.calls++
	return f.records, f.err
}

func (f *fakeInquiryGateway) Create(ctx context.Context, rec *domain.InquiryRecord) (*domain.InquiryRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	f.created = rec
	out := *rec
	out.ID = 1
	out.Status = domain.StatusPending
	return &out, nil
}

func (f *fakeInquiryGateway) GetByID(ctx context.Context, id uint) (*domain.InquiryRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	rec := f.records[0]
	return &rec, nil
}

func (f *fakeInquiryGateway) Update(ctx context.Context, id uint, rec *domain.InquiryRecord) (*domain.InquiryRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	f.updated = rec
	f.updatedID = id
	out := *rec
	out.ID = id
	return &out, nil
}

func (f *fakeInquiryGateway) Delete(ctx context.Context, id uint) error {
	f.calls++
	f.deletedID = id
	return f.err
}

func (f *fakeInquiryGateway) SetStatus(ctx context.Context, id uint, status domain.InquiryStatus) (*domain.InquiryRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	f.statusID = id
	f.status = status
	return &domain.InquiryRecord{ID: id, Status: status}, nil
}

// fakeSessionStore keeps the session in memory.
type fakeSessionStore struct {
	sess         domain.Session
	establishErr error
	cleared      bool
}

func (f *fakeSessionStore) Establish(token string, role domain.Role, displayName string) error {
	if f.establishErr != nil {
		return f.establishErr
	}
	f.sess = domain.Session{Token: token, Role: role, DisplayName: displayName}
	return nil
}

func (f *fakeSessionStore) Clear() error {
	f.cleared = true
	f.sess = domain.Session{}
	return nil
}

func (f *fakeSessionStore) Current() domain.Session { return f.sess }

// recordingNotifier captures every toast in order.
type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *recordingNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }

// validDraft is a draft that passes every validation rule.
func validDraft() domain.FormDraft {
	return domain.FormDraft{
		Name:         "John Doe",
		MobileNumber: "9876543210",
		Email:        "john@example.com",
		Address:      "12 Park Street",
		WorkType:     "Salaried",
		LoanType:     "Home Loan",
		AnnualIncome: "850000",
		PastLoan:     "no",
		PanCard:      "ABCDE1234F",
	}
}
