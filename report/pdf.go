// /home/krylon/go/src/github.com/blicero/jadwal/report/pdf.go
// -*- mode: go; coding: utf-8; -*-
// Created on 13. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-14 21:05:26 krylon>

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageWidth = 180.0 // A4 minus margins, in mm
	lineH     = 5.0
)

// Column widths of the transaction table, same proportions as the
// HTML version.
var colWidths = []float64{9, 36, 27, 18, 63, 27}

// RenderPDF writes the Report as an A4 PDF document.
func RenderPDF(w io.Writer, r *Report) error {
	var (
		pdf = gofpdf.New("P", "mm", "A4", "")
		tr  = pdf.UnicodeTranslatorFromDescriptor("")
	)

	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle("Laporan Penjualan - "+r.PeriodLabel, true)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Arial", "", 7)
		pdf.SetTextColor(102, 102, 102)
		pdf.CellFormat(0, 4,
			tr(fmt.Sprintf("Dicetak pada: %s, %s WIB", FormatDate(r.PrintedAt), r.PrintedAt.Format("15:04"))),
			"", 1, "C", false, 0, "")
		pdf.CellFormat(0, 4,
			"Laporan ini dibuat secara otomatis oleh sistem kasir",
			"", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})
	pdf.AddPage()

	pdfHeader(pdf, tr, r)
	pdfSummary(pdf, tr, r)
	pdfTable(pdf, tr, r)
	pdfSignatures(pdf)

	return pdf.Output(w)
} // func RenderPDF(w io.Writer, r *Report) error

func pdfHeader(pdf *gofpdf.Fpdf, tr func(string) string, r *Report) {
	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 9, tr(strings.ToUpper(r.StoreName)), "", 1, "C", false, 0, "")

	if r.StoreAddress != "" {
		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(0, 5, tr(r.StoreAddress), "", 1, "C", false, 0, "")
	}

	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 7, "Laporan Penjualan", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, tr(r.PeriodLabel), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5,
		tr(FormatDate(r.Start)+" - "+FormatDate(r.End)),
		"", 1, "C", false, 0, "")

	var y = pdf.GetY() + 2
	pdf.SetLineWidth(0.8)
	pdf.Line(15, y, 15+pageWidth, y)
	pdf.SetLineWidth(0.2)
	pdf.SetY(y + 5)
} // func pdfHeader(pdf *gofpdf.Fpdf, tr func(string) string, r *Report)

func pdfSummary(pdf *gofpdf.Fpdf, tr func(string) string, r *Report) {
	type line struct {
		label, value string
	}

	var lines = []line{
		{"Total Transaksi:", strconv.Itoa(r.Stats.Transactions)},
		{"Total Item Terjual:", strconv.Itoa(r.Stats.Items)},
	}

	if r.Stats.Discount > 0 {
		lines = append(lines, line{"Total Diskon:", FormatPrice(r.Stats.Discount)})
	}

	lines = append(lines, line{"Total Penjualan:", FormatPrice(r.Stats.Sales)})

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 7, "RINGKASAN PENJUALAN", "", 1, "C", false, 0, "")

	pdf.SetFillColor(248, 249, 250)
	for _, l := range lines {
		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(pageWidth/2, 7, tr(l.label), "LTB", 0, "L", true, 0, "")
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(pageWidth/2, 7, tr(l.value), "RTB", 1, "R", true, 0, "")
	}

	pdf.SetFillColor(212, 237, 218)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(pageWidth/2, 8, "Total Keuntungan Bersih:", "LTB", 0, "L", true, 0, "")
	pdf.SetTextColor(21, 87, 36)
	pdf.CellFormat(pageWidth/2, 8, tr(FormatPrice(r.Stats.Profit)), "RTB", 1, "R", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)
} // func pdfSummary(pdf *gofpdf.Fpdf, tr func(string) string, r *Report)

func pdfTable(pdf *gofpdf.Fpdf, tr func(string) string, r *Report) {
	var headers = []string{"No", "ID Transaksi", "Tanggal", "Jam", "Item", "Total"}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 7, "DETAIL TRANSAKSI", "B", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(52, 58, 64)
	pdf.SetTextColor(255, 255, 255)
	for idx, h := range headers {
		var align = "L"
		if idx == len(headers)-1 {
			align = "R"
		}
		pdf.CellFormat(colWidths[idx], 7, h, "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Arial", "", 8)
	for idx := range r.Receipts {
		var (
			rc    = &r.Receipts[idx]
			items = receiptLines(rc)
			h     = float64(len(items)) * lineH
			x, y  float64
		)

		if h < lineH {
			h = lineH
		}

		if pdf.GetY()+h > 270 {
			pdf.AddPage()
		}

		x, y = pdf.GetXY()

		pdf.CellFormat(colWidths[0], h, strconv.Itoa(idx+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[1], h, tr(rc.ID), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[2], h, tr(FormatShortDate(rc.Timestamp)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[3], h, rc.Timestamp.Format("15:04"), "1", 0, "L", false, 0, "")

		var itemX = pdf.GetX()
		pdf.Rect(itemX, y, colWidths[4], h, "D")
		for lidx, l := range items {
			pdf.SetXY(itemX, y+float64(lidx)*lineH)
			if l.discount {
				pdf.SetFont("Arial", "I", 8)
				pdf.SetTextColor(220, 53, 69)
			}
			pdf.CellFormat(colWidths[4], lineH, tr(l.text), "", 0, "L", false, 0, "")
			pdf.SetFont("Arial", "", 8)
			pdf.SetTextColor(0, 0, 0)
		}

		pdf.SetXY(itemX+colWidths[4], y)
		pdf.SetFont("Arial", "B", 8)
		pdf.SetFillColor(255, 243, 205)
		pdf.CellFormat(colWidths[5], h, tr(FormatPrice(rc.Total)), "1", 0, "R", true, 0, "")
		pdf.SetFont("Arial", "", 8)
		pdf.SetXY(x, y+h)
	}
} // func pdfTable(pdf *gofpdf.Fpdf, tr func(string) string, r *Report)

type itemLine struct {
	text     string
	discount bool
}

func receiptLines(r *Receipt) []itemLine {
	var lines = make([]itemLine, 0, len(r.Items)+1)

	for _, i := range r.Items {
		lines = append(lines, itemLine{
			text: fmt.Sprintf("• %s x%d @ %s = %s",
				i.Product.Name,
				i.Quantity,
				FormatPrice(i.UnitPrice()),
				FormatPrice(i.Subtotal())),
		})
	}

	if r.Discount > 0 {
		lines = append(lines, itemLine{
			text:     "• Diskon: -" + FormatPrice(r.Discount),
			discount: true,
		})
	}

	return lines
} // func receiptLines(r *Receipt) []itemLine

func pdfSignatures(pdf *gofpdf.Fpdf) {
	const boxW = 60.0

	pdf.Ln(12)
	if pdf.GetY() > 240 {
		pdf.AddPage()
	}

	var (
		y     = pdf.GetY()
		left  = 15 + pageWidth/4 - boxW/2
		right = 15 + 3*pageWidth/4 - boxW/2
	)

	pdf.SetFont("Arial", "", 9)
	for _, box := range []struct {
		x            float64
		head, signer string
	}{
		{left, "Dibuat Oleh,", "Kasir"},
		{right, "Disetujui Oleh,", "Manajer/Pemilik"},
	} {
		pdf.SetXY(box.x, y)
		pdf.CellFormat(boxW, 5, box.head, "", 0, "C", false, 0, "")
		pdf.Line(box.x, y+22, box.x+boxW, y+22)
		pdf.SetXY(box.x, y+23)
		pdf.CellFormat(boxW, 5, box.signer, "", 0, "C", false, 0, "")
	}
} // func pdfSignatures(pdf *gofpdf.Fpdf)
