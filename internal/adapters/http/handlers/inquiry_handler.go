package handlers

import (
	"errors"

	"navkar-inquiry/internal/adapters/persistence/models"
	"navkar-inquiry/internal/adapters/persistence/repositories"
	"navkar-inquiry/internal/core/domain"
	"navkar-inquiry/internal/pkg/response"
	"navkar-inquiry/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// InquiryHandler handles inquiry record endpoints
type InquiryHandler struct {
	inquiryRepo repositories.InquiryRepository
}

// NewInquiryHandler creates a new inquiry handler
func NewInquiryHandler(inquiryRepo repositories.InquiryRepository) *InquiryHandler {
	return &InquiryHandler{inquiryRepo: inquiryRepo}
}

// InquiryRequest is the create/update request body (no id, no status)
type InquiryRequest struct {
	Name         string  `json:"name"`
	MobileNumber string  `json:"mobileNumber"`
	Email        string  `json:"email"`
	Address      string  `json:"address"`
	WorkType     string  `json:"workType"`
	LoanType     string  `json:"loanType"`
	AnnualIncome float64 `json:"annualIncome"`
	PastLoan     bool    `json:"pastLoan"`
	PanCard      string  `json:"panCard"`
}

// validateRequest re-checks the field invariants server-side. The client
// gate is advisory; the service is the enforcement point.
func (h *InquiryHandler) validateRequest(req *InquiryRequest) string {
	if msg := validate.Name(req.Name); msg != "" {
		return msg
	}
	if msg := validate.Mobile(req.MobileNumber); msg != "" {
		return msg
	}
	if msg := validate.Pan(req.PanCard); msg != "" {
		return msg
	}
	if req.Email == "" || req.Address == "" || req.WorkType == "" || req.LoanType == "" {
		return "All fields are required"
	}
	return ""
}

// ListAll returns every inquiry (admin only)
func (h *InquiryHandler) ListAll(c *fiber.Ctx) error {
	inquiries, err := h.inquiryRepo.ListAll(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch inquiries")
	}
	return response.JSON(c, inquiries)
}

// ListMine returns the authenticated user's inquiries
func (h *InquiryHandler) ListMine(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)

	inquiries, err := h.inquiryRepo.ListByUser(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch inquiries")
	}
	return response.JSON(c, inquiries)
}

// Create stores a new inquiry with server-assigned id and PENDING status
func (h *InquiryHandler) Create(c *fiber.Ctx) error {
	var req InquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if msg := h.validateRequest(&req); msg != "" {
		return response.BadRequest(c, msg)
	}

	userID, _ := c.Locals("userID").(uint)
	inquiry := &models.Inquiry{
		UserID:       userID,
		Name:         req.Name,
		MobileNumber: req.MobileNumber,
		Email:        req.Email,
		Address:      req.Address,
		WorkType:     req.WorkType,
		LoanType:     req.LoanType,
		AnnualIncome: req.AnnualIncome,
		PastLoan:     req.PastLoan,
		PanCard:      req.PanCard,
		Status:       string(domain.StatusPending),
	}

	if err := h.inquiryRepo.Create(c.Context(), inquiry); err != nil {
		return response.InternalServerError(c, "Failed to create inquiry")
	}
	return response.Created(c, inquiry)
}

// GetByID returns one inquiry for edit pre-fill (owner or admin)
func (h *InquiryHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid inquiry id")
	}

	inquiry, err := h.inquiryRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Inquiry not found")
		}
		return response.InternalServerError(c, "Failed to fetch inquiry")
	}
	if !h.canAccess(c, inquiry) {
		return response.Forbidden(c, "You don't have permission to access this resource")
	}
	return response.JSON(c, inquiry)
}

// Update replaces an inquiry in full. Status and owner never change here.
func (h *InquiryHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid inquiry id")
	}

	var req InquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if msg := h.validateRequest(&req); msg != "" {
		return response.BadRequest(c, msg)
	}

	inquiry, err := h.inquiryRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Inquiry not found")
		}
		return response.InternalServerError(c, "Failed to fetch inquiry")
	}
	if !h.canAccess(c, inquiry) {
		return response.Forbidden(c, "You don't have permission to access this resource")
	}

	inquiry.Name = req.Name
	inquiry.MobileNumber = req.MobileNumber
	inquiry.Email = req.Email
	inquiry.Address = req.Address
	inquiry.WorkType = req.WorkType
	inquiry.LoanType = req.LoanType
	inquiry.AnnualIncome = req.AnnualIncome
	inquiry.PastLoan = req.PastLoan
	inquiry.PanCard = req.PanCard

	if err := h.inquiryRepo.Update(c.Context(), inquiry); err != nil {
		return response.InternalServerError(c, "Failed to update inquiry")
	}
	return response.JSON(c, inquiry)
}

// Delete removes an inquiry. A second delete of the same id is 404.
func (h *InquiryHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid inquiry id")
	}

	inquiry, err := h.inquiryRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Inquiry not found")
		}
		return response.InternalServerError(c, "Failed to delete inquiry")
	}
	if !h.canAccess(c, inquiry) {
		return response.Forbidden(c, "You don't have permission to access this resource")
	}

	if err := h.inquiryRepo.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Inquiry not found")
		}
		return response.InternalServerError(c, "Failed to delete inquiry")
	}
	return response.NoContent(c)
}

// SetStatus mutates only the status field (admin only)
func (h *InquiryHandler) SetStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid inquiry id")
	}

	status := domain.InquiryStatus(c.Query("status"))
	if !status.Valid() {
		return response.BadRequest(c, "Status must be PENDING, APPROVED or REJECTED")
	}

	inquiry, err := h.inquiryRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Inquiry not found")
		}
		return response.InternalServerError(c, "Failed to update status")
	}

	inquiry.Status = string(status)
	if err := h.inquiryRepo.Update(c.Context(), inquiry); err != nil {
		return response.InternalServerError(c, "Failed to update status")
	}
	return response.JSON(c, inquiry)
}

// canAccess allows the record owner and administrators.
func (h *InquiryHandler) canAccess(c *fiber.Ctx, inquiry *models.Inquiry) bool {
	userID, _ := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)
	return inquiry.UserID == userID || domain.Role(role).IsAdmin()
}
