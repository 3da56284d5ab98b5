// Package validate holds the client-side form validation rules and the
// input sanitizers of the inquiry form. Every rule is a pure function
// returning an empty string when the value is acceptable, or the message
// shown next to the field otherwise.
package validate

import (
	"regexp"
	"strings"

	"navkar-inquiry/internal/core/domain"
)

var (
	nameRe   = regexp.MustCompile(`^[A-Za-z\s]+$`)
	mobileRe = regexp.MustCompile(`^[0-9]{10}$`)
	digitsRe = regexp.MustCompile(`^[0-9]+$`)
	panRe    = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]{1}$`)

	nonNameRe  = regexp.MustCompile(`[^A-Za-z\s]`)
	nonDigitRe = regexp.MustCompile(`\D`)
	nonPanChRe = regexp.MustCompile(`[^A-Z0-9]`)
)

// Name validates the applicant name.
func Name(v string) string {
	if strings.TrimSpace(v) == "" {
		return "Name is required"
	}
	if !nameRe.MatchString(v) {
		return "Name can contain only letters and spaces"
	}
	return ""
}

// Mobile validates the mobile number. Checks are ordered and stop at the
// first failure so the user sees the most specific message.
func Mobile(v string) string {
	if strings.TrimSpace(v) == "" {
		return "Mobile number is required"
	}
	if len(v) < 10 {
		return "Mobile number must be at least 10 digits"
	}
	if !digitsRe.MatchString(v) {
		return "Mobile number must contain only digits"
	}
	if !mobileRe.MatchString(v) {
		return "Mobile number must be exactly 10 digits"
	}
	return ""
}

// Pan validates the PAN card number.
func Pan(v string) string {
	if strings.TrimSpace(v) == "" {
		return "PAN is required"
	}
	if !panRe.MatchString(v) {
		return "PAN must be in format AAAAA9999A (uppercase)"
	}
	return ""
}

// Draft validates the whole form and returns a field -> message map.
// An empty map means the draft may be submitted.
func Draft(d domain.FormDraft) map[string]string {
	errs := map[string]string{}

	if msg := Name(d.Name); msg != "" {
		errs["name"] = msg
	}
	if msg := Mobile(d.MobileNumber); msg != "" {
		errs["mobileNumber"] = msg
	}
	if d.Email == "" {
		errs["email"] = "Email is required"
	}
	if d.Address == "" {
		errs["address"] = "Address is required"
	}
	if d.WorkType == "" {
		errs["workType"] = "Work Type is required"
	}
	if d.LoanType == "" {
		errs["loanType"] = "Loan Type is required"
	}
	if d.AnnualIncome == "" {
		errs["annualIncome"] = "Annual income is required"
	}
	if d.PastLoan == "" {
		errs["pastLoan"] = "Please choose Past Loan option"
	}
	if msg := Pan(d.PanCard); msg != "" {
		errs["panCard"] = msg
	}

	return errs
}

// SanitizeName strips everything outside letters and whitespace.
func SanitizeName(v string) string {
	return nonNameRe.ReplaceAllString(v, "")
}

// SanitizeMobile strips non-digits and truncates to 10 characters.
func SanitizeMobile(v string) string {
	digits := nonDigitRe.ReplaceAllString(v, "")
	if len(digits) > 10 {
		digits = digits[:10]
	}
	return digits
}

// SanitizePan uppercases, strips non-alphanumerics and truncates to 10.
func SanitizePan(v string) string {
	up := nonPanChRe.ReplaceAllString(strings.ToUpper(v), "")
	if len(up) > 10 {
		up = up[:10]
	}
	return up
}

// SanitizeDraft applies all input transforms to a raw draft, the same
// canonicalization the form applies as the user types.
func SanitizeDraft(d domain.FormDraft) domain.FormDraft {
	d.Name = SanitizeName(d.Name)
	d.MobileNumber = SanitizeMobile(d.MobileNumber)
	d.PanCard = SanitizePan(d.PanCard)
	return d
}
