package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/orientwatch/backend/internal/domain"
)

type orderPayload struct {
	UserID          *uint           `json:"userId"`
	Customer        json.RawMessage `json:"customer"`
	Items           json.RawMessage `json:"items"`
	Subtotal        float64         `json:"subtotal"`
	Shipping        float64         `json:"shipping"`
	Total           float64         `json:"total"`
	PaymentMethod   string          `json:"paymentMethod"`
	DeliveryMethod  string          `json:"deliveryMethod"`
	DeliveryAddress json.RawMessage `json:"deliveryAddress"`
	Notes           string          `json:"notes"`
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var pl orderPayload
	if err := decodeJSON(r, &pl); err != nil {
		writeError(w, err)
		return
	}
	o := domain.Order{
		UserID:          pl.UserID,
		CustomerData:    pl.Customer,
		Items:           pl.Items,
		Subtotal:        pl.Subtotal,
		Shipping:        pl.Shipping,
		Total:           pl.Total,
		PaymentMethod:   pl.PaymentMethod,
		DeliveryMethod:  pl.DeliveryMethod,
		DeliveryAddress: pl.DeliveryAddress,
		Notes:           pl.Notes,
	}
	if err := s.orders.Create(r.Context(), &o); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toOrderResponse(&o))
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page")
	if err != nil {
		writeError(w, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, err)
		return
	}
	f := domain.OrderFilter{Status: r.URL.Query().Get("status"), Page: page, Limit: limit}
	list, pg, err := s.orders.List(r.Context(), f)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]orderResponse, 0, len(list))
	for i := range list {
		out = append(out, toOrderResponse(&list[i]))
	}
	writeJSON(w, http.StatusOK, listResponse{Data: out, Pagination: pg})
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	o, err := s.orders.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(o))
}

func (s *Server) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	o, err := s.orders.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(o))
}

type bookingPayload struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Message  string `json:"message"`
	Boutique string `json:"boutique"`
}

func (s *Server) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	var pl bookingPayload
	if err := decodeJSON(r, &pl); err != nil {
		writeError(w, err)
		return
	}
	b := domain.Booking{
		Name:     pl.Name,
		Phone:    pl.Phone,
		Email:    pl.Email,
		Date:     pl.Date,
		Time:     pl.Time,
		Message:  pl.Message,
		Boutique: pl.Boutique,
	}
	if err := s.bookings.Create(r.Context(), &b); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBookingResponse(&b))
}

func (s *Server) handleListBookings(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page")
	if err != nil {
		writeError(w, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, err)
		return
	}
	f := domain.BookingFilter{Status: r.URL.Query().Get("status"), Page: page, Limit: limit}
	list, pg, err := s.bookings.List(r.Context(), f)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]bookingResponse, 0, len(list))
	for i := range list {
		out = append(out, toBookingResponse(&list[i]))
	}
	writeJSON(w, http.StatusOK, listResponse{Data: out, Pagination: pg})
}

func (s *Server) handleGetBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	b, err := s.bookings.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponse(b))
}

func (s *Server) handleUpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req struct {
		Status domain.BookingStatus `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	b, err := s.bookings.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponse(b))
}

func (s *Server) handleDeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.bookings.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Booking deleted successfully"})
}

func (s *Server) handleBookingStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.bookings.Stats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
