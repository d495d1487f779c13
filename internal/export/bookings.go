// Package export builds spreadsheet reports from the manager's booking
// data, one sheet per booking status.
package export

import (
	"fmt"
	"time"

	"eventdesk/internal/model"
)

var bookingColumns = []string{
	"Date", "Time", "Customer", "Phone", "Event Type",
	"Location", "Services", "Amount", "Status", "Notes",
}

// statusOrder fixes the sheet order in the workbook.
var statusOrder = []string{
	model.BookingPending,
	model.BookingConfirmed,
	model.BookingCompleted,
	model.BookingCancelled,
}

// BookingsReport writes bookings grouped by status into the writer, one
// sheet per status that has bookings, each ending with a totals row.
func BookingsReport(w SheetWriter, bookings []model.Booking) error {
	byStatus := make(map[string][]model.Booking)
	for _, b := range bookings {
		byStatus[b.Status] = append(byStatus[b.Status], b)
	}

	wrote := false
	for _, status := range statusOrder {
		group := byStatus[status]
		if len(group) == 0 {
			continue
		}

		if err := w.AddSheet(status); err != nil {
			return fmt.Errorf("add sheet %s: %w", status, err)
		}
		if err := w.WriteHeader(bookingColumns); err != nil {
			return fmt.Errorf("write header: %w", err)
		}

		var total float64
		for _, b := range group {
			row := []interface{}{
				b.Date.Format("2006-01-02"),
				b.Time,
				b.CustomerName,
				b.CustomerPhone,
				b.EventType,
				b.Location,
				len(b.ServiceIDs),
				b.TotalAmount,
				b.Status,
				b.Notes,
			}
			if err := w.WriteRow(row); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
			total += b.TotalAmount
		}

		totals := []interface{}{"Total", "", "", "", "", "", len(group), total, "", ""}
		if err := w.WriteRow(totals); err != nil {
			return fmt.Errorf("write totals: %w", err)
		}
		wrote = true
	}

	if !wrote {
		if err := w.AddSheet("Bookings"); err != nil {
			return err
		}
		if err := w.WriteHeader(bookingColumns); err != nil {
			return err
		}
	}
	return nil
}

// ReportFilename names a report file for the given month.
func ReportFilename(year int, month time.Month) string {
	return fmt.Sprintf("bookings_%04d-%02d.xlsx", year, int(month))
}
