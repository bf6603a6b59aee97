package service

import (
	"bytes"
	"context"
	"html/template"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	feeModel "schoolku_backend/internals/features/finance/fee_structures/model"
)

// Template PDF ditanam langsung supaya tidak bergantung file eksternal
// saat deploy.
var feeStructurePDFTmpl = template.Must(template.New("fee_pdf").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
	body { font-family: Arial, sans-serif; font-size: 12px; margin: 24px; }
	h1 { font-size: 18px; }
	table { width: 100%; border-collapse: collapse; margin-top: 12px; }
	th, td { border: 1px solid #999; padding: 6px 8px; text-align: left; }
	th { background: #eee; }
	.muted { color: #666; font-size: 10px; }
</style>
</head>
<body>
	<h1>Daftar Struktur Biaya</h1>
	<p class="muted">Dicetak {{.PrintedAt}}</p>
	<table>
		<tr>
			<th>Jenis Biaya</th><th>Nominal</th><th>Opsional</th>
			<th>Jatuh Tempo</th><th>Tahun Ajaran</th><th>Keterangan</th>
		</tr>
		{{range .Rows}}
		<tr>
			<td>{{.FeeType}}</td><td>{{.Amount}}</td><td>{{.IsOptional}}</td>
			<td>{{.DueDate}}</td><td>{{.AcademicYear}}</td><td>{{.Description}}</td>
		</tr>
		{{end}}
	</table>
</body>
</html>`))

type pdfRow struct {
	FeeType      string
	Amount       string
	IsOptional   string
	DueDate      string
	AcademicYear string
	Description  string
}

// RenderFeeStructuresPDF menyusun HTML lalu mencetaknya ke PDF lewat
// headless Chrome. Butuh Chrome/Chromium tersedia di host.
func RenderFeeStructuresPDF(ctx context.Context, rows []feeModel.FeeStructureModel, now time.Time) ([]byte, error) {
	data := struct {
		PrintedAt string
		Rows      []pdfRow
	}{
		PrintedAt: now.Format("02 January 2006 15:04"),
	}
	for _, r := range rows {
		due, desc := "-", "-"
		if r.FeeStructureDueDate != nil {
			due = r.FeeStructureDueDate.Format("2006-01-02")
		}
		if r.FeeStructureDescription != nil {
			desc = *r.FeeStructureDescription
		}
		opt := "tidak"
		if r.FeeStructureIsOptional {
			opt = "ya"
		}
		data.Rows = append(data.Rows, pdfRow{
			FeeType:      string(r.FeeStructureFeeType),
			Amount:       r.FeeStructureAmount.StringFixed(2),
			IsOptional:   opt,
			DueDate:      due,
			AcademicYear: r.FeeStructureAcademicYear,
			Description:  desc,
		})
	}

	var html bytes.Buffer
	if err := feeStructurePDFTmpl.Execute(&html, data); err != nil {
		return nil, err
	}
	return printHTMLToPDF(ctx, html.String())
}

func printHTMLToPDF(parent context.Context, htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(parent)
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}
