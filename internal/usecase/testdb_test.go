package usecase_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/orientwatch/backend/internal/adapters/repo/postgres"
	"github.com/orientwatch/backend/internal/domain"
)

func newDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, postgres.Migrate(db))
	return db
}

// recordingNotifier counts deliveries and optionally fails them.
type recordingNotifier struct {
	bookings int
	orders   int
	err      error
}

func (n *recordingNotifier) BookingCreated(*domain.Booking) error {
	n.bookings++
	return n.err
}

func (n *recordingNotifier) OrderCreated(*domain.Order) error {
	n.orders++
	return n.err
}
