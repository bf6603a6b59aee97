package service

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	feeModel "schoolku_backend/internals/features/finance/fee_structures/model"
)

func TestWriteFeeStructuresCSV(t *testing.T) {
	desc := "SPP bulanan"
	due := time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC)
	rows := []feeModel.FeeStructureModel{
		{
			FeeStructureClassID:      uuid.MustParse("6fa459ea-ee8a-3ca4-894e-db77e160355e"),
			FeeStructureFeeType:      feeModel.FeeTypeTuition,
			FeeStructureAmount:       decimal.RequireFromString("1500000"),
			FeeStructureDescription:  &desc,
			FeeStructureIsOptional:   false,
			FeeStructureDueDate:      &due,
			FeeStructureAcademicYear: "2024-25",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteFeeStructuresCSV(&buf, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "class_obj_id,fee_type,amount,description,is_optional,due_date,academic_year", lines[0])
	assert.Equal(t, "6fa459ea-ee8a-3ca4-894e-db77e160355e,tuition,1500000.00,SPP bulanan,false,2024-08-10,2024-25", lines[1])
}

func TestParseFeeStructuresCSV_ValidFile(t *testing.T) {
	in := strings.NewReader(
		"class_obj_id,fee_type,amount,description,is_optional,due_date,academic_year\n" +
			"6fa459ea-ee8a-3ca4-894e-db77e160355e,tuition,1500000.00,SPP,false,2024-08-10,2024-25\n" +
			"6fa459ea-ee8a-3ca4-894e-db77e160355e,exam,250000,,true,,2024-25\n")

	res, err := ParseFeeStructuresCSV(in)
	require.NoError(t, err)
	assert.Empty(t, res.Errors)
	require.Len(t, res.PreviewData, 2)
	assert.Equal(t, feeModel.FeeTypeTuition, res.PreviewData[0].FeeType)
	assert.True(t, res.PreviewData[1].IsOptional)
	assert.Nil(t, res.PreviewData[1].DueDate)
}

func TestParseFeeStructuresCSV_RowMissingAmount(t *testing.T) {
	// baris rusak masuk errors, baris lain di file yang sama tetap diterima
	in := strings.NewReader(
		"class_obj_id,fee_type,amount,description,is_optional,due_date,academic_year\n" +
			"6fa459ea-ee8a-3ca4-894e-db77e160355e,tuition,,SPP,false,,2024-25\n" +
			"6fa459ea-ee8a-3ca4-894e-db77e160355e,library,100000,buku,false,,2024-25\n")

	res, err := ParseFeeStructuresCSV(in)
	require.NoError(t, err)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, 2, res.Errors[0].Row)
	assert.Contains(t, res.Errors[0].Message, "amount")
	require.Len(t, res.PreviewData, 1)
	assert.Equal(t, feeModel.FeeTypeLibrary, res.PreviewData[0].FeeType)
}

func TestParseFeeStructuresCSV_BadValues(t *testing.T) {
	in := strings.NewReader(
		"class_obj_id,fee_type,amount,description,is_optional,due_date,academic_year\n" +
			"bukan-uuid,tuition,1000,,false,,2024-25\n" +
			"6fa459ea-ee8a-3ca4-894e-db77e160355e,sumbangan,1000,,false,,2024-25\n" +
			"6fa459ea-ee8a-3ca4-894e-db77e160355e,tuition,-50,,false,,2024-25\n" +
			"6fa459ea-ee8a-3ca4-894e-db77e160355e,tuition,1000,,mungkin,,2024-25\n" +
			"6fa459ea-ee8a-3ca4-894e-db77e160355e,tuition,1000,,false,10-08-2024,2024-25\n")

	res, err := ParseFeeStructuresCSV(in)
	require.NoError(t, err)
	assert.Len(t, res.Errors, 5)
	assert.Empty(t, res.PreviewData)
}

func TestParseFeeStructuresCSV_WrongHeader(t *testing.T) {
	in := strings.NewReader("id,nama\nx,y\n")
	_, err := ParseFeeStructuresCSV(in)
	assert.Error(t, err)
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "finance_fee-structures_2025-03-10.csv", ExportFilename("fee-structures", "csv", now))
	assert.Equal(t, "finance_payments_2025-03-10.pdf", ExportFilename("payments", "pdf", now))
}
