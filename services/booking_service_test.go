package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shev-k/mikes-cut/config"
	"github.com/shev-k/mikes-cut/database"
	"github.com/shev-k/mikes-cut/models"
	"github.com/shev-k/mikes-cut/services"
)

func TestMain(m *testing.M) {
	config.Load()
	m.Run()
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Barber{},
		&models.Service{},
		&models.Booking{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	))
	require.NoError(t, database.EnsureSlotUniqueIndex(db))

	return db
}

func seedBarberAndService(t *testing.T, db *gorm.DB) (models.Barber, models.Service) {
	t.Helper()

	barber := models.Barber{Name: "Mike Ramirez", Slug: "mike-ramirez"}
	require.NoError(t, db.Create(&barber).Error)

	service := models.Service{Name: "Classic Haircut", Slug: "classic-haircut", Price: 35, Duration: 30}
	require.NoError(t, db.Create(&service).Error)

	return barber, service
}

func newBookingService(db *gorm.DB) *services.BookingService {
	return services.NewBookingService(db, services.NewMailer())
}

func TestCreateBooking_NormalizesDisplayTime(t *testing.T) {
	db := openTestDB(t)
	barber, svc := seedBarberAndService(t, db)

	booking, err := newBookingService(db).Create(models.CreateBookingRequest{
		BarberID:      barber.ID,
		ServiceID:     svc.ID,
		Date:          "2026-09-03",
		Time:          "2:00 PM",
		CustomerName:  "Alex Reed",
		CustomerEmail: "alex@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "14:00:00", booking.BookingTime)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
}

func TestCreateBooking_RejectsTakenSlot(t *testing.T) {
	db := openTestDB(t)
	barber, svc := seedBarberAndService(t, db)
	bs := newBookingService(db)

	first := models.CreateBookingRequest{
		BarberID:      barber.ID,
		ServiceID:     svc.ID,
		Date:          "2026-09-03",
		Time:          "10:00 AM",
		CustomerName:  "Alex Reed",
		CustomerEmail: "alex@example.com",
	}
	_, err := bs.Create(first)
	require.NoError(t, err)

	second := first
	second.CustomerName = "Sam Park"
	second.CustomerEmail = "sam@example.com"
	_, err = bs.Create(second)
	assert.ErrorIs(t, err, services.ErrSlotTaken)

	// The losing request must leave no row behind.
	var count int64
	db.Model(&models.Booking{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCreateBooking_ConstraintCatchesRace(t *testing.T) {
	db := openTestDB(t)
	barber, svc := seedBarberAndService(t, db)
	bs := newBookingService(db)

	// StaffCreate has no availability pre-check, so the second insert hits
	// the unique index directly, same as a concurrent submission would.
	req := models.StaffBookingRequest{
		BarberID:     barber.ID,
		ServiceID:    svc.ID,
		BookingDate:  "2026-09-03",
		BookingTime:  "10:00:00",
		CustomerName: "Alex Reed",
	}
	_, err := bs.StaffCreate(req)
	require.NoError(t, err)

	req.CustomerName = "Sam Park"
	_, err = bs.StaffCreate(req)
	assert.ErrorIs(t, err, services.ErrSlotTaken)
}

func TestCreateBooking_CancelledSlotCanBeRebooked(t *testing.T) {
	db := openTestDB(t)
	barber, svc := seedBarberAndService(t, db)
	bs := newBookingService(db)

	cancelled := models.Booking{
		BarberID:     barber.ID,
		ServiceID:    svc.ID,
		BookingDate:  "2026-09-03",
		BookingTime:  "10:00:00",
		CustomerName: "Alex Reed",
		Status:       models.BookingStatusCancelled,
	}
	require.NoError(t, db.Create(&cancelled).Error)

	booking, err := bs.Create(models.CreateBookingRequest{
		BarberID:      barber.ID,
		ServiceID:     svc.ID,
		Date:          "2026-09-03",
		Time:          "10:00 AM",
		CustomerName:  "Sam Park",
		CustomerEmail: "sam@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "10:00:00", booking.BookingTime)
}

func TestUnavailableSlots_ExcludesCancelled(t *testing.T) {
	db := openTestDB(t)
	barber, svc := seedBarberAndService(t, db)
	bs := newBookingService(db)

	rows := []models.Booking{
		{BarberID: barber.ID, ServiceID: svc.ID, BookingDate: "2026-09-03", BookingTime: "09:00:00", CustomerName: "A", Status: models.BookingStatusConfirmed},
		{BarberID: barber.ID, ServiceID: svc.ID, BookingDate: "2026-09-03", BookingTime: "10:00:00", CustomerName: "B", Status: models.BookingStatusCancelled},
		{BarberID: barber.ID, ServiceID: svc.ID, BookingDate: "2026-09-03", BookingTime: "11:00:00", CustomerName: "C", Status: models.BookingStatusCompleted},
		{BarberID: barber.ID, ServiceID: svc.ID, BookingDate: "2026-09-04", BookingTime: "09:00:00", CustomerName: "D", Status: models.BookingStatusConfirmed},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	times, err := bs.UnavailableSlots(barber.ID, "2026-09-03")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"09:00:00", "11:00:00"}, times)
}

func TestListForBarber_OnlyOwnRows(t *testing.T) {
	db := openTestDB(t)
	barber, svc := seedBarberAndService(t, db)
	bs := newBookingService(db)

	other := models.Barber{Name: "Danny Cole", Slug: "danny-cole"}
	require.NoError(t, db.Create(&other).Error)

	rows := []models.Booking{
		{BarberID: barber.ID, ServiceID: svc.ID, BookingDate: "2026-09-03", BookingTime: "09:00:00", CustomerName: "A", Status: models.BookingStatusConfirmed},
		{BarberID: other.ID, ServiceID: svc.ID, BookingDate: "2026-09-03", BookingTime: "09:00:00", CustomerName: "B", Status: models.BookingStatusConfirmed},
		{BarberID: barber.ID, ServiceID: svc.ID, BookingDate: "2026-09-04", BookingTime: "09:00:00", CustomerName: "C", Status: models.BookingStatusCancelled},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	bookings, err := bs.ListForBarber(barber.ID)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "A", bookings[0].CustomerName)
}

func TestUpdateBooking_MovesSlot(t *testing.T) {
	db := openTestDB(t)
	barber, svc := seedBarberAndService(t, db)
	bs := newBookingService(db)

	created, err := bs.StaffCreate(models.StaffBookingRequest{
		BarberID:     barber.ID,
		ServiceID:    svc.ID,
		BookingDate:  "2026-09-03",
		BookingTime:  "10:00:00",
		CustomerName: "Alex Reed",
	})
	require.NoError(t, err)

	updated, err := bs.Update(created.ID, models.StaffBookingRequest{
		BarberID:     barber.ID,
		ServiceID:    svc.ID,
		BookingDate:  "2026-09-03",
		BookingTime:  "15:00:00",
		CustomerName: "Alex Reed",
		Status:       string(models.BookingStatusConfirmed),
	})
	require.NoError(t, err)
	assert.Equal(t, "15:00:00", updated.BookingTime)

	times, err := bs.UnavailableSlots(barber.ID, "2026-09-03")
	require.NoError(t, err)
	assert.Equal(t, []string{"15:00:00"}, times)
}
