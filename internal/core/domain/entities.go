package domain

// Role represents user role in the system
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Granted authority values as issued by the backend on login.
// Registration submits the short form (USER/ADMIN); the login response
// carries the ROLE_ prefixed form.
const (
	GrantedRoleUser  Role = "ROLE_USER"
	GrantedRoleAdmin Role = "ROLE_ADMIN"
)

// IsAdmin reports whether the role grants administrator access.
// Both the registration form and the granted authority form are accepted.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == GrantedRoleAdmin
}

// Granted returns the ROLE_ prefixed authority for a registration role.
func (r Role) Granted() Role {
	switch r {
	case RoleAdmin, GrantedRoleAdmin:
		return GrantedRoleAdmin
	default:
		return GrantedRoleUser
	}
}

// InquiryStatus represents the lifecycle state of an inquiry
type InquiryStatus string

const (
	StatusPending  InquiryStatus = "PENDING"
	StatusApproved InquiryStatus = "APPROVED"
	StatusRejected InquiryStatus = "REJECTED"
)

// Valid reports whether the status is one of the known values.
func (s InquiryStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Label returns the display label for a status badge.
func (s InquiryStatus) Label() string {
	switch s {
	case StatusApproved:
		return "Approved"
	case StatusRejected:
		return "Rejected"
	case StatusPending:
		return "Pending"
	case "":
		return "Unknown"
	}
	return string(s)
}

// LoanTypes is the fixed set of loan products offered on the inquiry form.
var LoanTypes = []string{
	"Home Loan",
	"Car Loan",
	"Bike Loan",
	"Personal Loan",
	"Education Loan",
}

// InquiryRecord represents a loan inquiry as exchanged with the backend
type InquiryRecord struct {
	ID           uint          `json:"id"`
	Name         string        `json:"name"`
	MobileNumber string        `json:"mobileNumber"`
	Email        string        `json:"email"`
	Address      string        `json:"address"`
	WorkType     string        `json:"workType"`
	LoanType     string        `json:"loanType"`
	AnnualIncome float64       `json:"annualIncome"`
	PastLoan     bool          `json:"pastLoan"`
	PanCard      string        `json:"panCard"`
	Status       InquiryStatus `json:"status,omitempty"`
}

// Session represents the locally persisted authentication context
type Session struct {
	Token       string `json:"token"`
	Role        Role   `json:"role"`
	DisplayName string `json:"displayName"`
}

// Authenticated reports whether a credential is present.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// AuthResult is the backend response to a successful login
type AuthResult struct {
	Token string `json:"token"`
	Role  Role   `json:"role"`
}
