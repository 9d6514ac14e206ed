// /home/krylon/go/src/github.com/blicero/jadwal/report/report.go
// -*- mode: go; coding: utf-8; -*-
// Created on 12. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-14 20:11:37 krylon>

// Package report renders a printable sales report from a list of
// receipts, as an A4 HTML page or as a PDF document.
// Amounts are whole Rupiah.
package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/blicero/jadwal/schedule"
)

//go:generate ffjson report.go

// Product is something that is sold.
type Product struct {
	Name      string `json:"name"`
	SellPrice int64  `json:"sellPrice"`
	BuyPrice  int64  `json:"buyPrice"`
}

// Item is one line on a Receipt. If FinalPrice is zero, the Product's
// SellPrice applies.
type Item struct {
	Product    Product `json:"product"`
	Quantity   int     `json:"quantity"`
	FinalPrice int64   `json:"finalPrice,omitempty"`
}

// UnitPrice returns the price a single unit was sold for.
func (i Item) UnitPrice() int64 {
	if i.FinalPrice != 0 {
		return i.FinalPrice
	}

	return i.Product.SellPrice
} // func (i Item) UnitPrice() int64

// Subtotal returns the price of the whole line.
func (i Item) Subtotal() int64 {
	return i.UnitPrice() * int64(i.Quantity)
} // func (i Item) Subtotal() int64

// Receipt is a single sales transaction.
type Receipt struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Items     []Item    `json:"items"`
	Discount  int64     `json:"discount"`
	Total     int64     `json:"total"`
}

// Stats summarizes a list of Receipts.
type Stats struct {
	Transactions int   `json:"totalTransactions"`
	Items        int   `json:"totalItems"`
	Discount     int64 `json:"totalDiscount"`
	Sales        int64 `json:"totalSales"`
	Profit       int64 `json:"totalProfit"`
}

// Compute returns the Stats for the given Receipts. Profit is the
// margin over the buying price of all items, minus discounts.
func Compute(receipts []Receipt) Stats {
	var s = Stats{Transactions: len(receipts)}

	for ridx := range receipts {
		var r = &receipts[ridx]

		s.Discount += r.Discount
		s.Sales += r.Total
		s.Profit -= r.Discount

		for iidx := range r.Items {
			var i = &r.Items[iidx]
			s.Items += i.Quantity
			s.Profit += (i.UnitPrice() - i.Product.BuyPrice) * int64(i.Quantity)
		}
	}

	return s
} // func Compute(receipts []Receipt) Stats

// Report is everything that goes onto the printed page.
type Report struct {
	StoreName    string
	StoreAddress string
	PeriodLabel  string
	Start        time.Time
	End          time.Time
	Receipts     []Receipt
	Stats        Stats
	PrintedAt    time.Time
}

// New creates a Report, computing the Stats from the Receipts.
// An empty store name is replaced by "Toko".
func New(store, address, period string, start, end time.Time, receipts []Receipt) *Report {
	if store == "" {
		store = "Toko"
	}

	return &Report{
		StoreName:    store,
		StoreAddress: address,
		PeriodLabel:  period,
		Start:        start,
		End:          end,
		Receipts:     receipts,
		Stats:        Compute(receipts),
		PrintedAt:    time.Now(),
	}
} // func New(store, address, period string, start, end time.Time, receipts []Receipt) *Report

// FormatPrice renders an amount like "Rp 12.500".
func FormatPrice(amount int64) string {
	var (
		sign   string
		digits string
	)

	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits = strconv.FormatInt(amount, 10)

	var out = make([]byte, 0, len(digits)+len(digits)/3)
	for idx := range digits {
		if idx > 0 && (len(digits)-idx)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, digits[idx])
	}

	return fmt.Sprintf("%sRp %s", sign, out)
} // func FormatPrice(amount int64) string

// FormatDate renders a date like "05 Januari 2024".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%02d %s %d",
		t.Day(),
		schedule.Months[t.Month()-1],
		t.Year())
} // func FormatDate(t time.Time) string

// FormatShortDate renders a date like "05 Jan 2024".
func FormatShortDate(t time.Time) string {
	return fmt.Sprintf("%02d %s %d",
		t.Day(),
		shortMonths[t.Month()-1],
		t.Year())
} // func FormatShortDate(t time.Time) string

var shortMonths = []string{
	"Jan",
	"Feb",
	"Mar",
	"Apr",
	"Mei",
	"Jun",
	"Jul",
	"Agt",
	"Sep",
	"Okt",
	"Nov",
	"Des",
}
