package app

import (
	"net/http"
	"os"

	"gorm.io/gorm"

	"github.com/orientwatch/backend/internal/adapters/auth"
	"github.com/orientwatch/backend/internal/adapters/httpserver"
	"github.com/orientwatch/backend/internal/adapters/notify"
	"github.com/orientwatch/backend/internal/adapters/repo/postgres"
	"github.com/orientwatch/backend/internal/adapters/storage/localfs"
	"github.com/orientwatch/backend/internal/usecase"
)

type App struct {
	DB          *gorm.DB
	Products    *usecase.ProductUC
	Collections *usecase.CollectionUC
	Orders      *usecase.OrderUC
	Bookings    *usecase.BookingUC
	Content     *usecase.ContentUC
	Uploads     *usecase.UploadUC
	Auth        *auth.Provider
	uploadDir   string
}

func New(db *gorm.DB) (*App, error) {
	prodRepo := postgres.NewProductRepo(db)
	collRepo := postgres.NewCollectionRepo(db)
	orderRepo := postgres.NewOrderRepo(db)
	bookingRepo := postgres.NewBookingRepo(db)
	contentRepo := postgres.NewContentRepo(db)

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, err
	}
	storage := localfs.New(uploadDir)

	secret := os.Getenv("ADMIN_TOKEN_SECRET")
	if secret == "" {
		secret = "dev-admin-secret"
	}
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@orientwatch.local"
	}
	adminPass := os.Getenv("ADMIN_PASSWORD")
	if adminPass == "" {
		adminPass = "admin123"
	}

	// nil mailer disables notifications
	var notifier usecase.Notifier
	if m := notify.NewFromEnv(); m != nil {
		notifier = m
	}

	a := &App{DB: db, uploadDir: uploadDir}
	a.Products = &usecase.ProductUC{Products: prodRepo}
	a.Collections = &usecase.CollectionUC{Collections: collRepo, Products: prodRepo}
	a.Orders = &usecase.OrderUC{Orders: orderRepo, Notifier: notifier}
	a.Bookings = &usecase.BookingUC{Bookings: bookingRepo, Notifier: notifier}
	a.Content = &usecase.ContentUC{Content: contentRepo, Products: prodRepo}
	a.Uploads = &usecase.UploadUC{Storage: storage}
	a.Auth = auth.New([]byte(secret), adminEmail, adminPass)

	return a, nil
}

func (a *App) Migrate() error {
	return postgres.Migrate(a.DB)
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.Products, a.Collections, a.Orders, a.Bookings, a.Content, a.Uploads, a.Auth, a.uploadDir)
}
