// file: internals/features/finance/discounts/dto/discount_dto.go
package dto

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	model "schoolku_backend/internals/features/finance/discounts/model"
)

func errValidation(msg string) error {
	return fiber.NewError(fiber.StatusBadRequest, msg)
}

/* =========================================================
   REQUEST: Create
========================================================= */

type CreateDiscountRequest struct {
	DiscountName  string `json:"name" validate:"required,max=120"`
	DiscountType  string `json:"discount_type" validate:"required"`
	DiscountValue string `json:"discount_value" validate:"required"`

	DiscountFeeStructureIDs []uuid.UUID `json:"applicable_fee_structure_ids" validate:"required,min=1"`

	DiscountMinAmount *string `json:"min_amount"`
	DiscountMaxAmount *string `json:"max_discount"`

	// "YYYY-MM-DD"
	DiscountValidFrom  string  `json:"valid_from" validate:"required,datetime=2006-01-02"`
	DiscountValidUntil *string `json:"valid_until" validate:"omitempty,datetime=2006-01-02"`

	DiscountIsActive    *bool   `json:"is_active"`
	DiscountDescription *string `json:"description"`
}

func (r *CreateDiscountRequest) ToModel(schoolID uuid.UUID) (*model.DiscountModel, error) {
	dt := model.DiscountType(r.DiscountType)
	if !dt.Valid() {
		return nil, errValidation("discount_type harus percentage atau fixed")
	}

	value, err := decimal.NewFromString(r.DiscountValue)
	if err != nil {
		return nil, errValidation("discount_value bukan angka yang valid")
	}
	if dt == model.DiscountTypePercentage {
		if !value.IsPositive() || value.GreaterThan(decimal.NewFromInt(100)) {
			return nil, errValidation("discount_value persentase harus di rentang 0 < v <= 100")
		}
	} else if !value.IsPositive() {
		return nil, errValidation("discount_value fixed harus lebih dari 0")
	}

	validFrom, err := time.Parse("2006-01-02", r.DiscountValidFrom)
	if err != nil {
		return nil, errValidation("valid_from harus berformat YYYY-MM-DD")
	}

	m := &model.DiscountModel{
		DiscountSchoolID:    schoolID,
		DiscountName:        r.DiscountName,
		DiscountType:        dt,
		DiscountValue:       value,
		DiscountValidFrom:   validFrom,
		DiscountIsActive:    true,
		DiscountDescription: r.DiscountDescription,
	}

	ids := make(pq.StringArray, 0, len(r.DiscountFeeStructureIDs))
	for _, id := range r.DiscountFeeStructureIDs {
		ids = append(ids, id.String())
	}
	m.DiscountFeeStructureIDs = ids

	if r.DiscountMinAmount != nil {
		min, err := decimal.NewFromString(*r.DiscountMinAmount)
		if err != nil || min.IsNegative() {
			return nil, errValidation("min_amount harus angka >= 0")
		}
		m.DiscountMinAmount = min
	}
	if r.DiscountMaxAmount != nil {
		max, err := decimal.NewFromString(*r.DiscountMaxAmount)
		if err != nil || !max.IsPositive() {
			return nil, errValidation("max_discount harus angka > 0")
		}
		m.DiscountMaxAmount = &max
	}
	if r.DiscountValidUntil != nil && *r.DiscountValidUntil != "" {
		until, err := time.Parse("2006-01-02", *r.DiscountValidUntil)
		if err != nil {
			return nil, errValidation("valid_until harus berformat YYYY-MM-DD")
		}
		if until.Before(validFrom) {
			return nil, errValidation("valid_until tidak boleh sebelum valid_from")
		}
		m.DiscountValidUntil = &until
	}
	if r.DiscountIsActive != nil {
		m.DiscountIsActive = *r.DiscountIsActive
	}
	return m, nil
}

/* =========================================================
   REQUEST: Update (partial)
========================================================= */

type UpdateDiscountRequest struct {
	DiscountName            *string      `json:"name"`
	DiscountValue           *string      `json:"discount_value"`
	DiscountFeeStructureIDs *[]uuid.UUID `json:"applicable_fee_structure_ids"`
	DiscountMinAmount       *string      `json:"min_amount"`
	DiscountMaxAmount       *string      `json:"max_discount"`
	DiscountValidUntil      *string      `json:"valid_until"`
	DiscountIsActive        *bool        `json:"is_active"`
	DiscountDescription     *string      `json:"description"`
}

func (r *UpdateDiscountRequest) ApplyTo(m *model.DiscountModel) error {
	if r.DiscountName != nil {
		if *r.DiscountName == "" {
			return errValidation("name tidak boleh kosong")
		}
		m.DiscountName = *r.DiscountName
	}
	if r.DiscountValue != nil {
		value, err := decimal.NewFromString(*r.DiscountValue)
		if err != nil {
			return errValidation("discount_value bukan angka yang valid")
		}
		if m.DiscountType == model.DiscountTypePercentage {
			if !value.IsPositive() || value.GreaterThan(decimal.NewFromInt(100)) {
				return errValidation("discount_value persentase harus di rentang 0 < v <= 100")
			}
		} else if !value.IsPositive() {
			return errValidation("discount_value fixed harus lebih dari 0")
		}
		m.DiscountValue = value
	}
	if r.DiscountFeeStructureIDs != nil {
		ids := make(pq.StringArray, 0, len(*r.DiscountFeeStructureIDs))
		for _, id := range *r.DiscountFeeStructureIDs {
			ids = append(ids, id.String())
		}
		m.DiscountFeeStructureIDs = ids
	}
	if r.DiscountMinAmount != nil {
		min, err := decimal.NewFromString(*r.DiscountMinAmount)
		if err != nil || min.IsNegative() {
			return errValidation("min_amount harus angka >= 0")
		}
		m.DiscountMinAmount = min
	}
	if r.DiscountMaxAmount != nil {
		if *r.DiscountMaxAmount == "" {
			m.DiscountMaxAmount = nil
		} else {
			max, err := decimal.NewFromString(*r.DiscountMaxAmount)
			if err != nil || !max.IsPositive() {
				return errValidation("max_discount harus angka > 0")
			}
			m.DiscountMaxAmount = &max
		}
	}
	if r.DiscountValidUntil != nil {
		if *r.DiscountValidUntil == "" {
			m.DiscountValidUntil = nil
		} else {
			until, err := time.Parse("2006-01-02", *r.DiscountValidUntil)
			if err != nil {
				return errValidation("valid_until harus berformat YYYY-MM-DD")
			}
			m.DiscountValidUntil = &until
		}
	}
	if r.DiscountIsActive != nil {
		m.DiscountIsActive = *r.DiscountIsActive
	}
	if r.DiscountDescription != nil {
		m.DiscountDescription = r.DiscountDescription
	}
	return nil
}

/* =========================================================
   REQUEST: Apply preview
========================================================= */

type ApplyDiscountRequest struct {
	FeeStructureID uuid.UUID `json:"fee_structure_id" validate:"required"`
	// "YYYY-MM-DD", default hari ini
	AsOfDate *string `json:"as_of_date" validate:"omitempty,datetime=2006-01-02"`
}

/* =========================================================
   RESPONSE
========================================================= */

type DiscountResponse struct {
	DiscountID              uuid.UUID `json:"discount_id"`
	DiscountName            string    `json:"name"`
	DiscountType            string    `json:"discount_type"`
	DiscountValue           string    `json:"discount_value"`
	DiscountFeeStructureIDs []string  `json:"applicable_fee_structure_ids"`
	DiscountMinAmount       string    `json:"min_amount"`
	DiscountMaxAmount       *string   `json:"max_discount,omitempty"`
	DiscountValidFrom       string    `json:"valid_from"`
	DiscountValidUntil      *string   `json:"valid_until,omitempty"`
	DiscountIsActive        bool      `json:"is_active"`
	DiscountDescription     *string   `json:"description,omitempty"`
	DiscountCreatedAt       time.Time `json:"created_at"`
	DiscountUpdatedAt       time.Time `json:"updated_at"`
}

func FromModelDiscount(m *model.DiscountModel) *DiscountResponse {
	resp := &DiscountResponse{
		DiscountID:              m.DiscountID,
		DiscountName:            m.DiscountName,
		DiscountType:            string(m.DiscountType),
		DiscountValue:           m.DiscountValue.StringFixed(2),
		DiscountFeeStructureIDs: []string(m.DiscountFeeStructureIDs),
		DiscountMinAmount:       m.DiscountMinAmount.StringFixed(2),
		DiscountValidFrom:       m.DiscountValidFrom.Format("2006-01-02"),
		DiscountIsActive:        m.DiscountIsActive,
		DiscountDescription:     m.DiscountDescription,
		DiscountCreatedAt:       m.DiscountCreatedAt,
		DiscountUpdatedAt:       m.DiscountUpdatedAt,
	}
	if m.DiscountMaxAmount != nil {
		s := m.DiscountMaxAmount.StringFixed(2)
		resp.DiscountMaxAmount = &s
	}
	if m.DiscountValidUntil != nil {
		s := m.DiscountValidUntil.Format("2006-01-02")
		resp.DiscountValidUntil = &s
	}
	return resp
}

func FromModelDiscounts(ms []model.DiscountModel) []DiscountResponse {
	out := make([]DiscountResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModelDiscount(&ms[i]))
	}
	return out
}
