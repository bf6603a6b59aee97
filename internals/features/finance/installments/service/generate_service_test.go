package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	feeModel "schoolku_backend/internals/features/finance/fee_structures/model"
	model "schoolku_backend/internals/features/finance/installments/model"
)

func fixtureRefs(amount string, count int, ptype model.InstallmentPlanType) (*feeModel.FeeStructureModel, *model.InstallmentPlanModel, GenerateInput) {
	fs := &feeModel.FeeStructureModel{
		FeeStructureID:     uuid.New(),
		FeeStructureAmount: dec(amount),
	}
	plan := &model.InstallmentPlanModel{
		InstallmentPlanID:             uuid.New(),
		InstallmentPlanFeeStructureID: fs.FeeStructureID,
		InstallmentPlanCount:          count,
		InstallmentPlanType:           ptype,
		InstallmentPlanIsActive:       true,
	}
	in := GenerateInput{
		SchoolID:       uuid.New(),
		StudentID:      uuid.New(),
		FeeStructureID: fs.FeeStructureID,
		PlanID:         plan.InstallmentPlanID,
		StartDate:      time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		PeriodDays:     30,
	}
	return fs, plan, in
}

func TestBuildInstallmentRows_EqualPlan(t *testing.T) {
	fs, plan, in := fixtureRefs("3000", 3, model.InstallmentPlanTypeEqual)

	rows, err := BuildInstallmentRows(fs, plan, in)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	total := dec("0")
	for i, r := range rows {
		assert.Equal(t, i+1, r.InstallmentNumber)
		assert.True(t, r.InstallmentDueAmount.Equal(dec("1000")), "got %s", r.InstallmentDueAmount)
		assert.Equal(t, model.InstallmentStatusPending, r.InstallmentStatus)
		assert.True(t, r.InstallmentPaidAmount.IsZero())
		total = total.Add(r.InstallmentDueAmount)
	}
	assert.True(t, total.Equal(fs.FeeStructureAmount), "Σ due_amount harus = fee amount")

	// due_date ke-k = start + (k-1) × period
	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), rows[0].InstallmentDueDate)
	assert.Equal(t, time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC), rows[1].InstallmentDueDate)
	assert.Equal(t, time.Date(2024, 8, 30, 0, 0, 0, 0, time.UTC), rows[2].InstallmentDueDate)
}

func TestBuildInstallmentRows_EqualPlanRemainder(t *testing.T) {
	fs, plan, in := fixtureRefs("1000", 3, model.InstallmentPlanTypeEqual)

	rows, err := BuildInstallmentRows(fs, plan, in)
	require.NoError(t, err)

	total := dec("0")
	for _, r := range rows {
		total = total.Add(r.InstallmentDueAmount)
	}
	assert.True(t, total.Equal(dec("1000")))
	assert.True(t, rows[2].InstallmentDueAmount.Equal(dec("333.34")))
}

func TestBuildInstallmentRows_CustomPlan(t *testing.T) {
	fs, plan, in := fixtureRefs("1000", 3, model.InstallmentPlanTypeCustom)
	plan.InstallmentPlanCustomAmounts = datatypes.JSON([]byte(`[500, 300, 200]`))

	rows, err := BuildInstallmentRows(fs, plan, in)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.True(t, rows[0].InstallmentDueAmount.Equal(dec("500")))
	assert.True(t, rows[1].InstallmentDueAmount.Equal(dec("300")))
	assert.True(t, rows[2].InstallmentDueAmount.Equal(dec("200")))
}

func TestBuildInstallmentRows_CustomPlanSumMismatch(t *testing.T) {
	fs, plan, in := fixtureRefs("1000", 3, model.InstallmentPlanTypeCustom)
	plan.InstallmentPlanCustomAmounts = datatypes.JSON([]byte(`[500, 300, 100]`))

	_, err := BuildInstallmentRows(fs, plan, in)
	assert.Error(t, err)
}

func TestBuildInstallmentRows_PlanNotLinkedToFeeStructure(t *testing.T) {
	fs, plan, in := fixtureRefs("1000", 3, model.InstallmentPlanTypeEqual)
	plan.InstallmentPlanFeeStructureID = uuid.New() // plan milik fee lain

	_, err := BuildInstallmentRows(fs, plan, in)
	assert.Error(t, err)
}

func TestBuildInstallmentRows_InvalidPeriod(t *testing.T) {
	fs, plan, in := fixtureRefs("1000", 3, model.InstallmentPlanTypeEqual)
	in.PeriodDays = 0

	_, err := BuildInstallmentRows(fs, plan, in)
	assert.Error(t, err)
}
