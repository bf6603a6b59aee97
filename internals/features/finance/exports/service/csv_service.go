package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	feeModel "schoolku_backend/internals/features/finance/fee_structures/model"
)

// Kontrak kolom CSV fee structure. Header wajib, boolean literal
// true/false, tanggal YYYY-MM-DD.
var FeeStructureCSVHeader = []string{
	"class_obj_id", "fee_type", "amount", "description",
	"is_optional", "due_date", "academic_year",
}

/* =========================================================
   Export
========================================================= */

func WriteFeeStructuresCSV(w io.Writer, rows []feeModel.FeeStructureModel) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(FeeStructureCSVHeader); err != nil {
		return err
	}
	for _, r := range rows {
		desc := ""
		if r.FeeStructureDescription != nil {
			desc = *r.FeeStructureDescription
		}
		due := ""
		if r.FeeStructureDueDate != nil {
			due = r.FeeStructureDueDate.Format("2006-01-02")
		}
		rec := []string{
			r.FeeStructureClassID.String(),
			string(r.FeeStructureFeeType),
			r.FeeStructureAmount.StringFixed(2),
			desc,
			fmt.Sprintf("%t", r.FeeStructureIsOptional),
			due,
			r.FeeStructureAcademicYear,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

/* =========================================================
   Import — parse per baris, baris rusak tidak menggagalkan file
========================================================= */

type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type FeeStructureCSVRow struct {
	ClassID      uuid.UUID        `json:"class_obj_id"`
	FeeType      feeModel.FeeType `json:"fee_type"`
	Amount       decimal.Decimal  `json:"amount"`
	Description  *string          `json:"description,omitempty"`
	IsOptional   bool             `json:"is_optional"`
	DueDate      *time.Time       `json:"due_date,omitempty"`
	AcademicYear string           `json:"academic_year"`
}

type ImportResult struct {
	PreviewData []FeeStructureCSVRow `json:"preview_data"`
	Errors      []RowError           `json:"errors"`
}

// ParseFeeStructuresCSV membaca file import:
// baris valid masuk preview_data, baris rusak masuk errors dengan
// nomor barisnya. Satu baris rusak tidak menolak baris lain.
func ParseFeeStructuresCSV(r io.Reader) (*ImportResult, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("file CSV kosong atau tidak terbaca: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	out := &ImportResult{
		PreviewData: []FeeStructureCSVRow{},
		Errors:      []RowError{},
	}

	for rowNum := 2; ; rowNum++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			out.Errors = append(out.Errors, RowError{Row: rowNum, Message: "Baris tidak bisa diparse sebagai CSV"})
			continue
		}
		row, rowErr := parseFeeStructureRow(rec)
		if rowErr != "" {
			out.Errors = append(out.Errors, RowError{Row: rowNum, Message: rowErr})
			continue
		}
		out.PreviewData = append(out.PreviewData, *row)
	}
	return out, nil
}

func checkHeader(header []string) error {
	if len(header) != len(FeeStructureCSVHeader) {
		return fmt.Errorf("header CSV harus %d kolom, dapat %d", len(FeeStructureCSVHeader), len(header))
	}
	for i, h := range header {
		if strings.TrimSpace(strings.ToLower(h)) != FeeStructureCSVHeader[i] {
			return fmt.Errorf("kolom ke-%d harus %q, dapat %q", i+1, FeeStructureCSVHeader[i], h)
		}
	}
	return nil
}

func parseFeeStructureRow(rec []string) (*FeeStructureCSVRow, string) {
	if len(rec) != len(FeeStructureCSVHeader) {
		return nil, fmt.Sprintf("jumlah kolom harus %d, dapat %d", len(FeeStructureCSVHeader), len(rec))
	}

	classID, err := uuid.Parse(strings.TrimSpace(rec[0]))
	if err != nil {
		return nil, "class_obj_id bukan UUID yang valid"
	}

	feeType := feeModel.FeeType(strings.TrimSpace(strings.ToLower(rec[1])))
	if !feeType.Valid() {
		return nil, fmt.Sprintf("fee_type %q tidak dikenal", rec[1])
	}

	amountStr := strings.TrimSpace(rec[2])
	if amountStr == "" {
		return nil, "amount wajib diisi"
	}
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Sprintf("amount %q bukan angka", rec[2])
	}
	if !amount.IsPositive() {
		return nil, "amount harus lebih dari 0"
	}

	var desc *string
	if d := strings.TrimSpace(rec[3]); d != "" {
		desc = &d
	}

	var isOptional bool
	switch strings.TrimSpace(strings.ToLower(rec[4])) {
	case "true":
		isOptional = true
	case "false", "":
		isOptional = false
	default:
		return nil, fmt.Sprintf("is_optional harus true/false, dapat %q", rec[4])
	}

	var dueDate *time.Time
	if d := strings.TrimSpace(rec[5]); d != "" {
		t, err := time.Parse("2006-01-02", d)
		if err != nil {
			return nil, fmt.Sprintf("due_date %q harus berformat YYYY-MM-DD", rec[5])
		}
		dueDate = &t
	}

	year := strings.TrimSpace(rec[6])
	if year == "" {
		return nil, "academic_year wajib diisi"
	}

	return &FeeStructureCSVRow{
		ClassID:      classID,
		FeeType:      feeType,
		Amount:       amount,
		Description:  desc,
		IsOptional:   isOptional,
		DueDate:      dueDate,
		AcademicYear: year,
	}, ""
}

// ExportFilename mengikuti pola finance_{dataType}_{date}.{ext}.
func ExportFilename(dataType, ext string, now time.Time) string {
	return fmt.Sprintf("finance_%s_%s.%s", dataType, now.Format("2006-01-02"), ext)
}
