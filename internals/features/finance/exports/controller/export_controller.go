// file: internals/features/finance/exports/controller/export_controller.go
package controller

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	service "schoolku_backend/internals/features/finance/exports/service"
	feeModel "schoolku_backend/internals/features/finance/fee_structures/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type ExportController struct {
	DB *gorm.DB
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{DB: db}
}

// ========== Export fee structures (csv|pdf) ==========
// GET /fee-structures/export?format=csv
func (ctl *ExportController) ExportFeeStructures(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	format := strings.ToLower(strings.TrimSpace(c.Query("format", "csv")))
	if format != "csv" && format != "pdf" {
		return helper.Error(c, fiber.StatusBadRequest, "format harus csv atau pdf")
	}

	q := ctl.DB.Where("fee_structure_school_id = ?", schoolID)
	if v := strings.TrimSpace(c.Query("academic_year")); v != "" {
		q = q.Where("fee_structure_academic_year = ?", v)
	}

	var rows []feeModel.FeeStructureModel
	if err := q.Order("fee_structure_created_at ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data export")
	}

	now := time.Now()
	filename := service.ExportFilename("fee-structures", format, now)

	switch format {
	case "csv":
		var buf bytes.Buffer
		if err := service.WriteFeeStructuresCSV(&buf, rows); err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyusun CSV")
		}
		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
		return c.Send(buf.Bytes())

	default: // pdf
		pdf, err := service.RenderFeeStructuresPDF(c.Context(), rows, now)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mencetak PDF")
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
		return c.Send(pdf)
	}
}

// ========== Import fee structures (multipart field `file`) ==========
// Respons: preview_data[] untuk baris valid, errors[] per baris rusak.
// Import adalah PREVIEW — tidak ada yang disimpan di endpoint ini.
func (ctl *ExportController) ImportFeeStructures(c *fiber.Ctx) error {
	if _, err := helperAuth.GetSchoolIDFromToken(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Field file wajib diisi (multipart)")
	}
	if format := strings.ToLower(strings.TrimSpace(c.FormValue("format", "csv"))); format != "csv" {
		return helper.Error(c, fiber.StatusBadRequest, "Hanya format csv yang didukung untuk import")
	}

	f, err := fh.Open()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File tidak bisa dibuka")
	}
	defer f.Close()

	result, err := service.ParseFeeStructuresCSV(f)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonOK(c, "File berhasil diproses", result)
}
