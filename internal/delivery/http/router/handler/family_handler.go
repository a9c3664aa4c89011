// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"mirathi/internal/delivery/http/response"
	"mirathi/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FamilyHandler holds dependencies for family record handlers.
type FamilyHandler struct {
	uc     usecase.FamilyUsecase
	logger *slog.Logger
}

// NewFamilyHandler is the constructor for FamilyHandler, injected by Fx.
func NewFamilyHandler(uc usecase.FamilyUsecase, logger *slog.Logger) *FamilyHandler {
	return &FamilyHandler{
		uc:     uc,
		logger: logger,
	}
}

// memberRequest is the wire form of one member.
type memberRequest struct {
	Name                  string     `json:"name" validate:"required,max=255"`
	Gender                string     `json:"gender" validate:"omitempty,oneof=FEMALE MALE OTHER"`
	BirthDate             *time.Time `json:"birthDate"`
	BirthDateEstimated    bool       `json:"birthDateEstimated"`
	IsMinor               bool       `json:"isMinor"`
	HasDisability         bool       `json:"hasDisability"`
	MentallyIncapacitated bool       `json:"mentallyIncapacitated"`
	IdentityVerified      bool       `json:"identityVerified"`
}

func (r *memberRequest) toInput() usecase.MemberInput {
	return usecase.MemberInput{
		Name:                  r.Name,
		Gender:                r.Gender,
		BirthDate:             r.BirthDate,
		BirthDateEstimated:    r.BirthDateEstimated,
		IsMinor:               r.IsMinor,
		HasDisability:         r.HasDisability,
		MentallyIncapacitated: r.MentallyIncapacitated,
		IdentityVerified:      r.IdentityVerified,
	}
}

type createFamilyRequest struct {
	Name    string         `json:"name" validate:"required,max=255"`
	County  string         `json:"county" validate:"omitempty,max=100"`
	Founder *memberRequest `json:"founder"`
}

// CreateFamily opens a new family record.
func (h *FamilyHandler) CreateFamily(c echo.Context) error {
	var req createFamilyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid family input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.CreateFamilyInput{Name: req.Name, County: req.County}
	if req.Founder != nil {
		founder := req.Founder.toInput()
		input.Founder = &founder
	}

	output, err := h.uc.CreateFamily(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Family record created")
}

// GetFamily returns the full family record.
func (h *FamilyHandler) GetFamily(c echo.Context) error {
	familyID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid family ID")
	}

	output, err := h.uc.GetFamily(c.Request().Context(), familyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// ListFamilies pages through family summaries.
func (h *FamilyHandler) ListFamilies(c echo.Context) error {
	var req struct {
		County string `query:"county"`
		Limit  int    `query:"limit"`
		Offset int    `query:"offset"`
	}
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid list parameters")
	}

	output, err := h.uc.ListFamilies(c.Request().Context(), &usecase.ListFamiliesInput{
		County: req.County,
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// AddMember attaches a member to a family record.
func (h *FamilyHandler) AddMember(c echo.Context) error {
	familyID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid family ID")
	}

	var req memberRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid member input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.AddMember(c.Request().Context(), &usecase.AddMemberInput{
		FamilyID: familyID,
		Member:   req.toInput(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Member added")
}

type markDeceasedRequest struct {
	DeathDate time.Time `json:"deathDate" validate:"required"`
}

// MarkMemberDeceased records a member's death.
func (h *FamilyHandler) MarkMemberDeceased(c echo.Context) error {
	familyID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid family ID")
	}
	memberID, err := parseIDParam(c, "memberId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid member ID")
	}

	var req markDeceasedRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid death record input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.MarkMemberDeceased(c.Request().Context(), &usecase.MarkDeceasedInput{
		FamilyID:  familyID,
		MemberID:  memberID,
		DeathDate: req.DeathDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Member marked deceased")
}

type registerMarriageRequest struct {
	Spouse1ID            uuid.UUID `json:"spouse1Id" validate:"required"`
	Spouse2ID            uuid.UUID `json:"spouse2Id" validate:"required"`
	Type                 string    `json:"type" validate:"required,oneof=civil customary religious islamic other"`
	MarriageDate         time.Time `json:"marriageDate" validate:"required"`
	CertificateNumber    string    `json:"certificateNumber" validate:"omitempty,max=100"`
	BridePriceDocumented bool      `json:"bridePriceDocumented"`
}

// RegisterMarriage registers a union between two members.
func (h *FamilyHandler) RegisterMarriage(c echo.Context) error {
	familyID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid family ID")
	}

	var req registerMarriageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid marriage input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.RegisterMarriage(c.Request().Context(), &usecase.RegisterMarriageInput{
		FamilyID:             familyID,
		Spouse1ID:            req.Spouse1ID,
		Spouse2ID:            req.Spouse2ID,
		Type:                 req.Type,
		MarriageDate:         req.MarriageDate,
		CertificateNumber:    req.CertificateNumber,
		BridePriceDocumented: req.BridePriceDocumented,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Marriage registered")
}

type endMarriageRequest struct {
	Status  string    `json:"status" validate:"required,oneof=separated divorced widowed"`
	EndDate time.Time `json:"endDate" validate:"required"`
}

// EndMarriage moves a marriage to a terminated or separated status.
func (h *FamilyHandler) EndMarriage(c echo.Context) error {
	familyID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid family ID")
	}
	marriageID, err := parseIDParam(c, "marriageId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid marriage ID")
	}

	var req endMarriageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid marriage status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.EndMarriage(c.Request().Context(), &usecase.EndMarriageInput{
		FamilyID:   familyID,
		MarriageID: marriageID,
		Status:     req.Status,
		EndDate:    req.EndDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Marriage status updated")
}

type establishHouseRequest struct {
	Order              int         `json:"order" validate:"required,min=1"`
	WifeID             uuid.UUID   `json:"wifeId" validate:"required"`
	MemberIDs          []uuid.UUID `json:"memberIds"`
	AllocationWeight   float64     `json:"allocationWeight" validate:"omitempty,gt=0"`
	Certified          bool        `json:"certified"`
	ConsentEvidenceRef string      `json:"consentEvidenceRef" validate:"omitempty,max=512"`
}

// EstablishHouse records a polygamous house.
func (h *FamilyHandler) EstablishHouse(c echo.Context) error {
	familyID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid family ID")
	}

	var req establishHouseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid house input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.EstablishHouse(c.Request().Context(), &usecase.EstablishHouseInput{
		FamilyID:           familyID,
		Order:              req.Order,
		WifeID:             req.WifeID,
		MemberIDs:          req.MemberIDs,
		AllocationWeight:   req.AllocationWeight,
		Certified:          req.Certified,
		ConsentEvidenceRef: req.ConsentEvidenceRef,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "House established")
}

// DissolveHouse moves a house to the dissolved status.
func (h *FamilyHandler) DissolveHouse(c echo.Context) error {
	familyID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid family ID")
	}
	houseID, err := parseIDParam(c, "houseId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid house ID")
	}

	output, err := h.uc.DissolveHouse(c.Request().Context(), &usecase.DissolveHouseInput{
		FamilyID: familyID,
		HouseID:  houseID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "House dissolved")
}

type defineRelationshipRequest struct {
	FromMemberID uuid.UUID `json:"fromMemberId" validate:"required"`
	ToMemberID   uuid.UUID `json:"toMemberId" validate:"required"`
	Type         string    `json:"type" validate:"required,oneof=PARENT SPOUSE SIBLING GUARDIAN"`
	Verification string    `json:"verification" validate:"omitempty,oneof=unverified declared documented certified"`
	LegalBasis   string    `json:"legalBasis"`
}

// DefineRelationship adds a directed kinship edge.
func (h *FamilyHandler) DefineRelationship(c echo.Context) error {
	familyID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid family ID")
	}

	var req defineRelationshipRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid relationship input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	verification := req.Verification
	if verification == "" {
		verification = "unverified"
	}

	output, err := h.uc.DefineRelationship(c.Request().Context(), &usecase.DefineRelationshipInput{
		FamilyID:     familyID,
		FromMemberID: req.FromMemberID,
		ToMemberID:   req.ToMemberID,
		Type:         req.Type,
		Verification: verification,
		LegalBasis:   req.LegalBasis,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Relationship defined")
}

type recordCohabitationRequest struct {
	Partner1ID   uuid.UUID  `json:"partner1Id" validate:"required"`
	Partner2ID   uuid.UUID  `json:"partner2Id" validate:"required"`
	StartDate    time.Time  `json:"startDate" validate:"required"`
	EndDate      *time.Time `json:"endDate"`
	Witnesses    []string   `json:"witnesses" validate:"required,min=1,dive,required"`
	EvidenceRefs []string   `json:"evidenceRefs"`
}

// RecordCohabitation records a durable partnership.
func (h *FamilyHandler) RecordCohabitation(c echo.Context) error {
	familyID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid family ID")
	}

	var req recordCohabitationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cohabitation input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.RecordCohabitation(c.Request().Context(), &usecase.RecordCohabitationInput{
		FamilyID:     familyID,
		Partner1ID:   req.Partner1ID,
		Partner2ID:   req.Partner2ID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Witnesses:    req.Witnesses,
		EvidenceRefs: req.EvidenceRefs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Cohabitation recorded")
}

type recordAdoptionRequest struct {
	AdoptiveParentID uuid.UUID `json:"adoptiveParentId" validate:"required"`
	AdopteeID        uuid.UUID `json:"adopteeId" validate:"required"`
	LegalBasis       string    `json:"legalBasis"`
	CourtOrderNumber string    `json:"courtOrderNumber" validate:"omitempty,max=100"`
	ConsentObtained  bool      `json:"consentObtained"`
	AdoptionDate     time.Time `json:"adoptionDate" validate:"required"`
}

// RecordAdoption records an adoption.
func (h *FamilyHandler) RecordAdoption(c echo.Context) error {
	familyID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid family ID")
	}

	var req recordAdoptionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid adoption input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.RecordAdoption(c.Request().Context(), &usecase.RecordAdoptionInput{
		FamilyID:         familyID,
		AdoptiveParentID: req.AdoptiveParentID,
		AdopteeID:        req.AdopteeID,
		LegalBasis:       req.LegalBasis,
		CourtOrderNumber: req.CourtOrderNumber,
		ConsentObtained:  req.ConsentObtained,
		AdoptionDate:     req.AdoptionDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Adoption recorded")
}

// ArchiveFamily soft-terminates a family record.
func (h *FamilyHandler) ArchiveFamily(c echo.Context) error {
	familyID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid family ID")
	}

	if err := h.uc.ArchiveFamily(c.Request().Context(), familyID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Family record archived")
}

func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}
