package httpserver

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/orientwatch/backend/internal/domain"
)

// exportBatch is the page size used while draining the filtered set; the
// export itself is unbounded.
const exportBatch = domain.MaxPageLimit

func (s *Server) handleExportOrders(w http.ResponseWriter, r *http.Request) {
	list, err := s.collectOrders(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, err)
		return
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	headers := []string{"Number", "Status", "Subtotal", "Shipping", "Total", "Payment", "Delivery", "Created"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for row, o := range list {
		values := []any{o.OrderNumber, string(o.Status), o.Subtotal, o.Shipping, o.Total, o.PaymentMethod, o.DeliveryMethod, o.CreatedAt.Format("2006-01-02 15:04")}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	writeWorkbook(w, f, "orders.xlsx")
}

func (s *Server) handleExportBookings(w http.ResponseWriter, r *http.Request) {
	list, err := s.collectBookings(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, err)
		return
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	headers := []string{"Number", "Status", "Name", "Phone", "Email", "Date", "Time", "Boutique", "Created"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for row, b := range list {
		values := []any{b.BookingNumber, string(b.Status), b.Name, b.Phone, b.Email, b.Date, b.Time, b.Boutique, b.CreatedAt.Format("2006-01-02 15:04")}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	writeWorkbook(w, f, "bookings.xlsx")
}

func (s *Server) collectOrders(ctx context.Context, status string) ([]domain.Order, error) {
	var all []domain.Order
	for page := 1; ; page++ {
		list, _, err := s.orders.List(ctx, domain.OrderFilter{Status: status, Page: page, Limit: exportBatch})
		if err != nil {
			return nil, err
		}
		all = append(all, list...)
		if len(list) < exportBatch {
			return all, nil
		}
	}
}

func (s *Server) collectBookings(ctx context.Context, status string) ([]domain.Booking, error) {
	var all []domain.Booking
	for page := 1; ; page++ {
		list, _, err := s.bookings.List(ctx, domain.BookingFilter{Status: status, Page: page, Limit: exportBatch})
		if err != nil {
			return nil, err
		}
		all = append(all, list...)
		if len(list) < exportBatch {
			return all, nil
		}
	}
}

func writeWorkbook(w http.ResponseWriter, f *excelize.File, name string) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	if _, err := f.WriteTo(w); err != nil {
		log.Error().Err(err).Str("file", name).Msg("export write")
	}
}
