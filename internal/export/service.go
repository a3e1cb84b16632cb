// Package export renders a filtered transaction list as CSV, a minimal
// HTML-table spreadsheet, or a paginated plain-text PDF layout. All three
// are pure functions of the snapshot; nothing here mutates state.
package export

import (
	"encoding/csv"
	"fmt"
	"html"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/MrJamesThe3rd/caixa/internal/ledger"
)

// Row is one exportable transaction with its category and payment-mode
// names denormalized for display.
type Row struct {
	Date        time.Time
	Type        ledger.Type
	Amount      decimal.Decimal
	Description string
	Category    string
	Mode        string
	Cashbook    string
	Currency    string
}

// Filter restricts the exported transaction set. Nil fields match all.
type Filter struct {
	CashbookID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Rows selects and denormalizes the transactions matching the filter,
// ordered as they appear in the snapshot.
func (s *Service) Rows(snap ledger.Snapshot, filter Filter) []Row {
	var rows []Row

	for _, tx := range snap.Transactions {
		if filter.CashbookID != nil && tx.CashbookID != *filter.CashbookID {
			continue
		}

		if filter.StartDate != nil && tx.Date.Before(*filter.StartDate) {
			continue
		}

		if filter.EndDate != nil && tx.Date.After(*filter.EndDate) {
			continue
		}

		row := Row{
			Date:        tx.Date,
			Type:        tx.Type,
			Amount:      tx.Amount,
			Description: tx.Description,
			Category:    snap.CategoryName(tx.CategoryID),
			Mode:        snap.ModeName(tx.ModeID),
		}

		if cb, ok := snap.Cashbook(tx.CashbookID); ok {
			row.Cashbook = cb.Name
			row.Currency = cb.Currency
		}

		rows = append(rows, row)
	}

	return rows
}

var csvHeader = []string{"date", "cashbook", "type", "amount", "currency", "description", "category", "mode"}

// CSV writes the rows as RFC 4180 CSV with a header row.
func (s *Service) CSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, r := range rows {
		record := []string{
			r.Date.Format(time.DateOnly),
			r.Cashbook,
			string(r.Type),
			r.Amount.StringFixed(2),
			r.Currency,
			r.Description,
			r.Category,
			r.Mode,
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// Spreadsheet writes a minimal HTML table blob, which spreadsheet
// applications open directly when served as an .xls attachment.
func (s *Service) Spreadsheet(w io.Writer, title string, rows []Row) error {
	var sb strings.Builder

	sb.WriteString("<html><head><meta charset=\"utf-8\"></head><body>\n")
	sb.WriteString("<table border=\"1\">\n<tr>")

	for _, h := range csvHeader {
		sb.WriteString("<th>" + html.EscapeString(h) + "</th>")
	}

	sb.WriteString("</tr>\n")

	for _, r := range rows {
		sb.WriteString("<tr>")
		sb.WriteString("<td>" + r.Date.Format(time.DateOnly) + "</td>")
		sb.WriteString("<td>" + html.EscapeString(r.Cashbook) + "</td>")
		sb.WriteString("<td>" + string(r.Type) + "</td>")
		sb.WriteString("<td>" + r.Amount.StringFixed(2) + "</td>")
		sb.WriteString("<td>" + html.EscapeString(r.Currency) + "</td>")
		sb.WriteString("<td>" + html.EscapeString(r.Description) + "</td>")
		sb.WriteString("<td>" + html.EscapeString(r.Category) + "</td>")
		sb.WriteString("<td>" + html.EscapeString(r.Mode) + "</td>")
		sb.WriteString("</tr>\n")
	}

	sb.WriteString("</table>\n</body></html>\n")

	_, err := io.WriteString(w, sb.String())
	if err != nil {
		return fmt.Errorf("writing spreadsheet: %w", err)
	}

	return nil
}

// rowsPerPage is the fixed page height of the text PDF layout.
const rowsPerPage = 40

// PDF writes a paginated fixed-width text report: a header per page and a
// totals footer on the last one.
func (s *Service) PDF(w io.Writer, title string, rows []Row) error {
	var sb strings.Builder

	pages := (len(rows) + rowsPerPage - 1) / rowsPerPage
	if pages == 0 {
		pages = 1
	}

	totalIn := decimal.Zero
	totalOut := decimal.Zero

	for page := 0; page < pages; page++ {
		fmt.Fprintf(&sb, "%s - page %d of %d\n", title, page+1, pages)
		fmt.Fprintf(&sb, "%-12s %-10s %12s  %-30s %-16s %-16s\n",
			"DATE", "TYPE", "AMOUNT", "DESCRIPTION", "CATEGORY", "MODE")
		sb.WriteString(strings.Repeat("-", 102) + "\n")

		start := page * rowsPerPage
		end := min(start+rowsPerPage, len(rows))

		for _, r := range rows[start:end] {
			amount := r.Amount
			if r.Type == ledger.TypeCashOut {
				totalOut = totalOut.Add(amount)
				amount = amount.Neg()
			} else {
				totalIn = totalIn.Add(amount)
			}

			fmt.Fprintf(&sb, "%-12s %-10s %12s  %-30s %-16s %-16s\n",
				r.Date.Format(time.DateOnly),
				r.Type,
				amount.StringFixed(2),
				clip(r.Description, 30),
				clip(r.Category, 16),
				clip(r.Mode, 16))
		}

		if page < pages-1 {
			sb.WriteString("\f")
		}
	}

	sb.WriteString(strings.Repeat("-", 102) + "\n")
	fmt.Fprintf(&sb, "cash in %s | cash out %s | net %s\n",
		totalIn.StringFixed(2), totalOut.StringFixed(2), totalIn.Sub(totalOut).StringFixed(2))

	_, err := io.WriteString(w, sb.String())
	if err != nil {
		return fmt.Errorf("writing pdf layout: %w", err)
	}

	return nil
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n-3] + "..."
}

// CurrencyLabel returns the display symbol for an ISO currency code, or
// the code itself when it is not a recognized unit. Currency is a plain
// label at the data layer; this is display-only.
func CurrencyLabel(code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return code
	}

	return fmt.Sprint(currency.Symbol(unit))
}
