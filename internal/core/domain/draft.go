package domain

import "strconv"

// FormDraft holds the raw working state of the add/update inquiry form.
// Every field is kept as entered; PastLoan is the "yes"/"no" choice.
// A draft is transient and is discarded after a successful submit.
type FormDraft struct {
	Name         string
	MobileNumber string
	Email        string
	Address      string
	WorkType     string
	LoanType     string
	AnnualIncome string
	PastLoan     string
	PanCard      string
}

// DraftFromRecord seeds an edit form from an existing record.
func DraftFromRecord(rec *InquiryRecord) FormDraft {
	pastLoan := "no"
	if rec.PastLoan {
		pastLoan = "yes"
	}
	return FormDraft{
		Name:         rec.Name,
		MobileNumber: rec.MobileNumber,
		Email:        rec.Email,
		Address:      rec.Address,
		WorkType:     rec.WorkType,
		LoanType:     rec.LoanType,
		AnnualIncome: strconv.FormatFloat(rec.AnnualIncome, 'f', -1, 64),
		PastLoan:     pastLoan,
		PanCard:      rec.PanCard,
	}
}

// Record converts a validated draft into the payload sent to the backend.
// ID and Status stay zero: both are assigned server-side.
func (d FormDraft) Record() (*InquiryRecord, error) {
	income, err := strconv.ParseFloat(d.AnnualIncome, 64)
	if err != nil {
		return nil, ErrInvalidInput
	}
	return &InquiryRecord{
		Name:         d.Name,
		MobileNumber: d.MobileNumber,
		Email:        d.Email,
		Address:      d.Address,
		WorkType:     d.WorkType,
		LoanType:     d.LoanType,
		AnnualIncome: income,
		PastLoan:     d.PastLoan == "yes",
		PanCard:      d.PanCard,
	}, nil
}
