// /home/krylon/go/src/github.com/blicero/jadwal/report/html.go
// -*- mode: go; coding: utf-8; -*-
// Created on 12. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-14 20:40:02 krylon>

package report

import (
	"html/template"
	"io"
)

var funcmap = template.FuncMap{
	"price":     FormatPrice,
	"date":      FormatDate,
	"shortDate": FormatShortDate,
	"clock":     func(r Receipt) string { return r.Timestamp.Format("15:04") },
	"inc":       func(i int) int { return i + 1 },
	"printed": func(r *Report) string {
		return FormatDate(r.PrintedAt) + ", " + r.PrintedAt.Format("15:04")
	},
}

var a4 = template.Must(template.New("a4").Funcs(funcmap).Parse(a4Template))

// RenderHTML writes the Report as a printable A4 HTML page.
func RenderHTML(w io.Writer, r *Report) error {
	return a4.Execute(w, r)
} // func RenderHTML(w io.Writer, r *Report) error

const a4Template = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Laporan Penjualan - {{ .PeriodLabel }}</title>
  <style>
    @page { size: A4; margin: 1.5cm; }
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body { font-family: 'Arial', 'Helvetica', sans-serif; font-size: 10pt; line-height: 1.3; color: #000; background: white; }
    .container { width: 100%; max-width: 21cm; margin: 0 auto; }
    .header { text-align: center; border-bottom: 3px solid #000; padding-bottom: 10px; margin-bottom: 15px; }
    .header h1 { font-size: 20pt; font-weight: bold; margin-bottom: 4px; text-transform: uppercase; letter-spacing: 0.5px; }
    .header .store-info { font-size: 9pt; color: #333; margin-bottom: 2px; }
    .header .report-title { font-size: 14pt; font-weight: bold; margin-top: 8px; margin-bottom: 3px; }
    .header .period { font-size: 9pt; color: #555; }
    .summary-box { background: #f8f9fa; border: 2px solid #dee2e6; border-radius: 6px; padding: 15px; margin-bottom: 20px; }
    .summary-title { font-size: 12pt; font-weight: bold; margin-bottom: 12px; text-align: center; text-transform: uppercase; }
    .summary-grid { display: grid; grid-template-columns: 1fr 1fr; gap: 12px; }
    .summary-item { display: flex; justify-content: space-between; padding: 8px 12px; background: white; border-radius: 4px; border: 1px solid #dee2e6; }
    .summary-label { font-weight: 600; color: #495057; }
    .summary-value { font-weight: bold; color: #000; }
    .summary-highlight { grid-column: 1 / -1; background: #d4edda; border-color: #c3e6cb; }
    .summary-highlight .summary-value { color: #155724; font-size: 13pt; }
    .transactions-section { margin-top: 20px; }
    .section-title { font-size: 12pt; font-weight: bold; margin-bottom: 10px; padding-bottom: 6px; border-bottom: 2px solid #000; text-transform: uppercase; }
    table { width: 100%; border-collapse: collapse; margin-bottom: 15px; font-size: 9pt; }
    thead { background: #343a40; color: white; }
    th { padding: 8px 6px; text-align: left; font-weight: bold; border: 1px solid #000; }
    tbody tr { border-bottom: 1px solid #dee2e6; }
    tbody tr:nth-child(even) { background: #f8f9fa; }
    td { padding: 6px; border: 1px solid #dee2e6; }
    .text-right { text-align: right; }
    .text-center { text-align: center; }
    .item-details { font-size: 8pt; color: #666; padding-left: 12px; margin-top: 2px; }
    .discount-row { color: #dc3545; font-style: italic; }
    .total-row { font-weight: bold; background: #fff3cd !important; }
    .footer { margin-top: 30px; padding-top: 15px; border-top: 2px solid #000; text-align: center; font-size: 8pt; color: #666; }
    .signature-section { display: flex; justify-content: space-around; margin-top: 40px; margin-bottom: 25px; }
    .signature-box { text-align: center; width: 180px; }
    .signature-line { border-top: 1px solid #000; margin-top: 50px; padding-top: 5px; }
    @media print {
      .container { width: 100%; max-width: none; }
      .summary-box, .summary-item, tr { page-break-inside: avoid; }
    }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>{{ .StoreName }}</h1>
      {{- if .StoreAddress }}
      <div class="store-info">{{ .StoreAddress }}</div>
      {{- end }}
      <div class="report-title">Laporan Penjualan</div>
      <div class="period">{{ .PeriodLabel }}</div>
      <div class="period">{{ date .Start }} - {{ date .End }}</div>
    </div>

    <div class="summary-box">
      <div class="summary-title">Ringkasan Penjualan</div>
      <div class="summary-grid">
        <div class="summary-item">
          <span class="summary-label">Total Transaksi:</span>
          <span class="summary-value">{{ .Stats.Transactions }}</span>
        </div>
        <div class="summary-item">
          <span class="summary-label">Total Item Terjual:</span>
          <span class="summary-value">{{ .Stats.Items }}</span>
        </div>
        {{- if gt .Stats.Discount 0 }}
        <div class="summary-item">
          <span class="summary-label">Total Diskon:</span>
          <span class="summary-value">{{ price .Stats.Discount }}</span>
        </div>
        {{- end }}
        <div class="summary-item">
          <span class="summary-label">Total Penjualan:</span>
          <span class="summary-value">{{ price .Stats.Sales }}</span>
        </div>
        <div class="summary-item summary-highlight">
          <span class="summary-label">Total Keuntungan Bersih:</span>
          <span class="summary-value">{{ price .Stats.Profit }}</span>
        </div>
      </div>
    </div>

    <div class="transactions-section">
      <div class="section-title">Detail Transaksi</div>
      <table>
        <thead>
          <tr>
            <th style="width: 5%;">No</th>
            <th style="width: 20%;">ID Transaksi</th>
            <th style="width: 15%;">Tanggal</th>
            <th style="width: 15%;">Jam</th>
            <th style="width: 30%;">Item</th>
            <th style="width: 15%;" class="text-right">Total</th>
          </tr>
        </thead>
        <tbody>
          {{- range $idx, $r := .Receipts }}
          <tr>
            <td class="text-center">{{ inc $idx }}</td>
            <td>{{ $r.ID }}</td>
            <td>{{ shortDate $r.Timestamp }}</td>
            <td>{{ clock $r }}</td>
            <td>
              {{- range $r.Items }}
              <div class="item-details">&bull; {{ .Product.Name }} x{{ .Quantity }} @ {{ price .UnitPrice }} = {{ price .Subtotal }}</div>
              {{- end }}
              {{- if gt $r.Discount 0 }}
              <div class="item-details discount-row">&bull; Diskon: -{{ price $r.Discount }}</div>
              {{- end }}
            </td>
            <td class="text-right total-row">{{ price $r.Total }}</td>
          </tr>
          {{- end }}
        </tbody>
      </table>
    </div>

    <div class="signature-section">
      <div class="signature-box">
        <div>Dibuat Oleh,</div>
        <div class="signature-line">Kasir</div>
      </div>
      <div class="signature-box">
        <div>Disetujui Oleh,</div>
        <div class="signature-line">Manajer/Pemilik</div>
      </div>
    </div>

    <div class="footer">
      <p>Dicetak pada: {{ printed . }} WIB</p>
      <p>Laporan ini dibuat secara otomatis oleh sistem kasir</p>
    </div>
  </div>
</body>
</html>
`
