package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/orientwatch/backend/internal/domain"
)

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the domain error taxonomy onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": err.Error()})
	case errors.Is(err, domain.ErrConflict):
		writeJSON(w, http.StatusConflict, map[string]string{"detail": err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": err.Error()})
	case errors.Is(err, domain.ErrTooLarge):
		writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"detail": err.Error()})
	default:
		log.Error().Err(err).Msg("internal error")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "internal error"})
	}
}

type listResponse struct {
	Data       any               `json:"data"`
	Pagination domain.Pagination `json:"pagination"`
}

type productResponse struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Collection    string            `json:"collection"`
	Price         float64           `json:"price"`
	Image         string            `json:"image"`
	Images        []string          `json:"images"`
	Description   string            `json:"description"`
	Features      []string          `json:"features"`
	Specs         map[string]string `json:"specs"`
	InStock       bool              `json:"inStock"`
	StockQuantity int               `json:"stockQuantity"`
	SKU           string            `json:"sku,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

func toProductResponse(p *domain.Product) productResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	features := p.Features
	if features == nil {
		features = []string{}
	}
	specs := p.Specs
	if specs == nil {
		specs = map[string]string{}
	}
	return productResponse{
		ID:            strconv.FormatUint(uint64(p.ID), 10),
		Name:          p.Name,
		Collection:    p.Collection,
		Price:         p.Price,
		Image:         p.Image,
		Images:        images,
		Description:   p.Description,
		Features:      features,
		Specs:         specs,
		InStock:       p.InStock,
		StockQuantity: p.StockQuantity,
		SKU:           p.SKU,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toProductResponses(list []domain.Product) []productResponse {
	out := make([]productResponse, 0, len(list))
	for i := range list {
		out = append(out, toProductResponse(&list[i]))
	}
	return out
}

type collectionResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	WatchCount  int64     `json:"watchCount"`
	Number      string    `json:"number"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toCollectionResponse(c *domain.Collection) collectionResponse {
	return collectionResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Image:       c.Image,
		WatchCount:  c.WatchCount,
		Number:      c.Number,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
	}
}

type bookingResponse struct {
	ID            uint                 `json:"id"`
	BookingNumber string               `json:"bookingNumber"`
	Name          string               `json:"name"`
	Phone         string               `json:"phone"`
	Email         string               `json:"email"`
	Date          string               `json:"date"`
	Time          string               `json:"time"`
	Message       string               `json:"message"`
	Boutique      string               `json:"boutique"`
	Status        domain.BookingStatus `json:"status"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:            b.ID,
		BookingNumber: b.BookingNumber,
		Name:          b.Name,
		Phone:         b.Phone,
		Email:         b.Email,
		Date:          b.Date,
		Time:          b.Time,
		Message:       b.Message,
		Boutique:      b.Boutique,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

type orderResponse struct {
	ID              uint               `json:"id"`
	OrderNumber     string             `json:"orderNumber"`
	UserID          *uint              `json:"userId"`
	Customer        json.RawMessage    `json:"customer"`
	Items           json.RawMessage    `json:"items"`
	Subtotal        float64            `json:"subtotal"`
	Shipping        float64            `json:"shipping"`
	Total           float64            `json:"total"`
	Status          domain.OrderStatus `json:"status"`
	PaymentMethod   string             `json:"paymentMethod"`
	DeliveryMethod  string             `json:"deliveryMethod"`
	DeliveryAddress json.RawMessage    `json:"deliveryAddress"`
	Notes           string             `json:"notes"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

func toOrderResponse(o *domain.Order) orderResponse {
	return orderResponse{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		UserID:          o.UserID,
		Customer:        o.CustomerData,
		Items:           o.Items,
		Subtotal:        o.Subtotal,
		Shipping:        o.Shipping,
		Total:           o.Total,
		Status:          o.Status,
		PaymentMethod:   o.PaymentMethod,
		DeliveryMethod:  o.DeliveryMethod,
		DeliveryAddress: o.DeliveryAddress,
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

type featuredItemResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Collection string  `json:"collection"`
	Price      float64 `json:"price"`
	Image      string  `json:"image"`
	IsNew      bool    `json:"isNew"`
}

func toFeaturedResponses(items []domain.FeaturedItem) []featuredItemResponse {
	out := make([]featuredItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, featuredItemResponse{
			ID:         strconv.FormatUint(uint64(it.ProductID), 10),
			Name:       it.Name,
			Collection: it.Collection,
			Price:      it.Price,
			Image:      it.Image,
			IsNew:      it.IsNew,
		})
	}
	return out
}
