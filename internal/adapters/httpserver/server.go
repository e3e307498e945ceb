package httpserver

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/orientwatch/backend/internal/domain"
	"github.com/orientwatch/backend/internal/usecase"
)

const adminTokenTTL = 6 * time.Hour

// Login matches the adapters/auth provider: credential check + token issue.
type adminLogin interface {
	Login(email, password string, ttl time.Duration) (string, time.Time, error)
	Verify(token string) (*domain.Principal, error)
}

type Server struct {
	mux         *http.ServeMux
	products    *usecase.ProductUC
	collections *usecase.CollectionUC
	orders      *usecase.OrderUC
	bookings    *usecase.BookingUC
	content     *usecase.ContentUC
	uploads     *usecase.UploadUC
	auth        adminLogin
	uploadDir   string
}

func New(
	products *usecase.ProductUC,
	collections *usecase.CollectionUC,
	orders *usecase.OrderUC,
	bookings *usecase.BookingUC,
	content *usecase.ContentUC,
	uploads *usecase.UploadUC,
	auth adminLogin,
	uploadDir string,
) http.Handler {
	s := &Server{
		mux:         http.NewServeMux(),
		products:    products,
		collections: collections,
		orders:      orders,
		bookings:    bookings,
		content:     content,
		uploads:     uploads,
		auth:        auth,
		uploadDir:   uploadDir,
	}
	s.routes()
	return Chain(s.mux, RequestID, Recovery, Logging)
}

func (s *Server) routes() {
	s.mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.uploadDir))))

	s.mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})

	// public catalog
	s.mux.HandleFunc("GET /api/products", s.handleListProducts)
	s.mux.HandleFunc("GET /api/products/{id}", s.handleGetProduct)
	s.mux.HandleFunc("GET /api/collections", s.handleListCollections)
	s.mux.HandleFunc("GET /api/collections/{id}", s.handleGetCollection)
	s.mux.HandleFunc("GET /api/collections/{id}/products", s.handleCollectionProducts)

	// public content
	s.mux.HandleFunc("GET /api/content/hero", s.handleGetHero)
	s.mux.HandleFunc("GET /api/content/promo-banner", s.handleGetPromoBanner)
	s.mux.HandleFunc("GET /api/content/heritage", s.handleGetHeritage)
	s.mux.HandleFunc("GET /api/content/featured-watches", s.handleGetFeatured)

	// public create
	s.mux.HandleFunc("POST /api/bookings", s.handleCreateBooking)
	s.mux.HandleFunc("POST /api/orders", s.handleCreateOrder)

	s.mux.HandleFunc("POST /api/admin/login", s.handleAdminLogin)

	// admin catalog
	s.mux.HandleFunc("POST /api/admin/products", s.admin(s.handleCreateProduct))
	s.mux.HandleFunc("PUT /api/admin/products/{id}", s.admin(s.handleUpdateProduct))
	s.mux.HandleFunc("DELETE /api/admin/products/{id}", s.admin(s.handleDeleteProduct))
	s.mux.HandleFunc("POST /api/admin/collections", s.admin(s.handleCreateCollection))
	s.mux.HandleFunc("PUT /api/admin/collections/{id}", s.admin(s.handleUpdateCollection))
	s.mux.HandleFunc("DELETE /api/admin/collections/{id}", s.admin(s.handleDeleteCollection))

	// admin bookings
	s.mux.HandleFunc("GET /api/admin/bookings", s.admin(s.handleListBookings))
	s.mux.HandleFunc("GET /api/admin/bookings/stats/summary", s.admin(s.handleBookingStats))
	s.mux.HandleFunc("GET /api/admin/bookings/{id}", s.admin(s.handleGetBooking))
	s.mux.HandleFunc("PUT /api/admin/bookings/{id}/status", s.admin(s.handleUpdateBookingStatus))
	s.mux.HandleFunc("DELETE /api/admin/bookings/{id}", s.admin(s.handleDeleteBooking))

	// admin orders
	s.mux.HandleFunc("GET /api/admin/orders", s.admin(s.handleListOrders))
	s.mux.HandleFunc("GET /api/admin/orders/{id}", s.admin(s.handleGetOrder))
	s.mux.HandleFunc("PUT /api/admin/orders/{id}/status", s.admin(s.handleUpdateOrderStatus))

	// admin content
	s.mux.HandleFunc("PUT /api/admin/content/hero", s.admin(s.handleUpdateHero))
	s.mux.HandleFunc("PUT /api/admin/content/promo-banner", s.admin(s.handleUpdatePromoBanner))
	s.mux.HandleFunc("PUT /api/admin/content/heritage", s.admin(s.handleUpdateHeritage))
	s.mux.HandleFunc("PUT /api/admin/content/featured-watches", s.admin(s.handleReplaceFeatured))

	s.mux.HandleFunc("POST /api/admin/upload", s.admin(s.handleUpload))
	s.mux.HandleFunc("GET /api/admin/export/orders.xlsx", s.admin(s.handleExportOrders))
	s.mux.HandleFunc("GET /api/admin/export/bookings.xlsx", s.admin(s.handleExportBookings))
}

// admin gates a handler behind the AuthProvider. Public routes never pass
// through here.
func (s *Server) admin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tok := bearerToken(r)
		if tok == "" {
			writeError(w, fmt.Errorf("%w: missing bearer token", domain.ErrUnauthorized))
			return
		}
		if _, err := s.auth.Verify(tok); err != nil {
			writeError(w, err)
			return
		}
		next(w, r)
	}
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) > len(prefix) && auth[:len(prefix)] == prefix {
		return auth[len(prefix):]
	}
	return ""
}

func (s *Server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	tok, exp, err := s.auth.Login(req.Email, req.Password, adminTokenTTL)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"token": tok, "expiresAt": exp})
}

// pathID parses the numeric {id} path segment.
func pathID(r *http.Request) (uint, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: bad id %q", domain.ErrInvalidInput, raw)
	}
	return uint(id), nil
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, name)
	}
	return v, nil
}

func queryFloat(r *http.Request, name string) (*float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a number", domain.ErrInvalidInput, name)
	}
	return &v, nil
}
