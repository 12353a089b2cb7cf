package services_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shev-k/mikes-cut/models"
	"github.com/shev-k/mikes-cut/services"
)

func seedStatsFixture(t *testing.T, db *gorm.DB) (models.Barber, models.Barber, models.Service, models.Service) {
	t.Helper()

	rate := 40.0
	mike := models.Barber{Name: "Mike Ramirez", Slug: "mike-ramirez"} // nil rate, defaults to 50
	danny := models.Barber{Name: "Danny Cole", Slug: "danny-cole", CommissionRate: &rate}
	require.NoError(t, db.Create(&mike).Error)
	require.NoError(t, db.Create(&danny).Error)

	haircut := models.Service{Name: "Classic Haircut", Slug: "classic-haircut", Price: 30, Duration: 30}
	shave := models.Service{Name: "Hot Towel Shave", Slug: "hot-towel-shave", Price: 50, Duration: 45}
	require.NoError(t, db.Create(&haircut).Error)
	require.NoError(t, db.Create(&shave).Error)

	return mike, danny, haircut, shave
}

func addBooking(t *testing.T, db *gorm.DB, barber models.Barber, svc models.Service, date, at string, status models.BookingStatus, customer, email string) {
	t.Helper()
	b := models.Booking{
		BarberID:      barber.ID,
		ServiceID:     svc.ID,
		BookingDate:   date,
		BookingTime:   at,
		CustomerName:  customer,
		CustomerEmail: email,
		Status:        status,
	}
	require.NoError(t, db.Create(&b).Error)
}

func TestAdminStats_MonthlyAggregation(t *testing.T) {
	db := openTestDB(t)
	mike, danny, haircut, shave := seedStatsFixture(t, db)

	// March 2026: two for Mike (30 + 50), one for Danny (50).
	addBooking(t, db, mike, haircut, "2026-03-05", "09:00:00", models.BookingStatusConfirmed, "A", "a@example.com")
	addBooking(t, db, mike, shave, "2026-03-05", "10:00:00", models.BookingStatusConfirmed, "B", "b@example.com")
	addBooking(t, db, danny, shave, "2026-03-12", "09:00:00", models.BookingStatusConfirmed, "C", "c@example.com")

	// Outside the target month, still lifetime revenue.
	addBooking(t, db, mike, haircut, "2026-02-20", "09:00:00", models.BookingStatusConfirmed, "D", "d@example.com")

	// Cancelled bookings never count.
	addBooking(t, db, danny, shave, "2026-03-13", "09:00:00", models.BookingStatusCancelled, "E", "e@example.com")

	stats, err := services.NewStatsService(db).AdminStats(3, 2026)
	require.NoError(t, err)

	assert.InDelta(t, 160.0, stats.TotalRevenue, 0.001) // 30+50+50+30
	assert.InDelta(t, 130.0, stats.MonthlyRevenue, 0.001)
	assert.Equal(t, 3, stats.TotalBookings)

	require.Len(t, stats.BarberStats, 2)
	mikeStats := stats.BarberStats[0]
	dannyStats := stats.BarberStats[1]

	assert.Equal(t, 2, mikeStats.Bookings)
	assert.InDelta(t, 80.0, mikeStats.Revenue, 0.001)
	assert.InDelta(t, 50.0, mikeStats.CommissionRate, 0.001) // default
	assert.InDelta(t, 40.0, mikeStats.Earnings, 0.001)       // 80 * 50%

	assert.Equal(t, 1, dannyStats.Bookings)
	assert.InDelta(t, 50.0, dannyStats.Revenue, 0.001)
	assert.InDelta(t, 40.0, dannyStats.CommissionRate, 0.001)
	assert.InDelta(t, 20.0, dannyStats.Earnings, 0.001) // 50 * 40%
}

func TestAdminStats_DailyChartCoversWholeMonth(t *testing.T) {
	db := openTestDB(t)
	mike, _, haircut, _ := seedStatsFixture(t, db)

	addBooking(t, db, mike, haircut, "2026-02-10", "09:00:00", models.BookingStatusConfirmed, "A", "a@example.com")
	addBooking(t, db, mike, haircut, "2026-02-10", "10:00:00", models.BookingStatusConfirmed, "B", "b@example.com")

	stats, err := services.NewStatsService(db).AdminStats(2, 2026)
	require.NoError(t, err)

	// 2026 is not a leap year: February has 28 entries, zeroes included,
	// sorted by date.
	require.Len(t, stats.DailyRevenueChart, 28)
	assert.Equal(t, "2026-02-01", stats.DailyRevenueChart[0].Date)
	assert.Equal(t, "2026-02-28", stats.DailyRevenueChart[27].Date)

	var nonZero int
	for _, day := range stats.DailyRevenueChart {
		if day.Amount > 0 {
			nonZero++
			assert.Equal(t, "2026-02-10", day.Date)
			assert.InDelta(t, 60.0, day.Amount, 0.001)
		}
	}
	assert.Equal(t, 1, nonZero)
}

func TestAdminStats_BarbersWithNoBookingsStillListed(t *testing.T) {
	db := openTestDB(t)
	_, danny, _, _ := seedStatsFixture(t, db)

	stats, err := services.NewStatsService(db).AdminStats(3, 2026)
	require.NoError(t, err)

	require.Len(t, stats.BarberStats, 2)
	for _, bs := range stats.BarberStats {
		assert.Zero(t, bs.Bookings)
		assert.Zero(t, bs.Revenue)
		assert.Zero(t, bs.Earnings)
	}
	assert.Equal(t, danny.Name, stats.BarberStats[1].Name)
}

func TestAdminStats_TodayRevenue(t *testing.T) {
	db := openTestDB(t)
	mike, _, haircut, shave := seedStatsFixture(t, db)

	today := time.Now().Format("2006-01-02")
	addBooking(t, db, mike, haircut, today, "09:00:00", models.BookingStatusConfirmed, "A", "a@example.com")
	addBooking(t, db, mike, shave, today, "10:00:00", models.BookingStatusConfirmed, "B", "b@example.com")
	addBooking(t, db, mike, haircut, "2020-01-01", "09:00:00", models.BookingStatusConfirmed, "C", "c@example.com")

	stats, err := services.NewStatsService(db).AdminStats(0, 0)
	require.NoError(t, err)

	assert.InDelta(t, 80.0, stats.TodayRevenue, 0.001)
	assert.InDelta(t, 110.0, stats.TotalRevenue, 0.001)
}

func TestBarberStats_TopClientsAndServices(t *testing.T) {
	db := openTestDB(t)
	mike, danny, haircut, shave := seedStatsFixture(t, db)

	// Repeat client across months; email is the identity.
	addBooking(t, db, mike, shave, "2026-01-10", "09:00:00", models.BookingStatusConfirmed, "Alex Reed", "alex@example.com")
	addBooking(t, db, mike, shave, "2026-02-10", "09:00:00", models.BookingStatusConfirmed, "Alex Reed", "alex@example.com")
	addBooking(t, db, mike, haircut, "2026-02-11", "09:00:00", models.BookingStatusConfirmed, "Sam Park", "sam@example.com")
	addBooking(t, db, mike, haircut, "2026-02-12", "09:00:00", models.BookingStatusCompleted, "Jo Lee", "jo@example.com")

	// Cancelled and other-barber rows are invisible.
	addBooking(t, db, mike, shave, "2026-02-13", "09:00:00", models.BookingStatusCancelled, "Nobody", "no@example.com")
	addBooking(t, db, danny, shave, "2026-02-10", "09:00:00", models.BookingStatusConfirmed, "Other", "other@example.com")

	stats, err := services.NewStatsService(db).BarberStats(mike.ID)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalBookings)
	assert.Equal(t, 3, stats.UniqueClients)
	assert.InDelta(t, 160.0, stats.TotalEarnings, 0.001) // 50+50+30+30

	require.NotEmpty(t, stats.TopClients)
	assert.Equal(t, "Alex Reed", stats.TopClients[0].Name)
	assert.Equal(t, 2, stats.TopClients[0].Bookings)
	assert.InDelta(t, 100.0, stats.TopClients[0].Revenue, 0.001)

	require.Len(t, stats.TopServices, 2)
	assert.Equal(t, "Classic Haircut", stats.TopServices[0].Name) // 2 vs 1 by count
	assert.Equal(t, 2, stats.TopServices[0].Count)
}

func TestBarberStats_MonthlySeriesAndUpcoming(t *testing.T) {
	db := openTestDB(t)
	mike, _, haircut, _ := seedStatsFixture(t, db)

	addBooking(t, db, mike, haircut, "2026-01-10", "09:00:00", models.BookingStatusConfirmed, "A", "a@example.com")
	addBooking(t, db, mike, haircut, "2026-01-20", "09:00:00", models.BookingStatusConfirmed, "B", "b@example.com")
	addBooking(t, db, mike, haircut, "2026-02-05", "09:00:00", models.BookingStatusConfirmed, "C", "c@example.com")

	// Tomorrow is upcoming; far past is not.
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	addBooking(t, db, mike, haircut, tomorrow, "11:00:00", models.BookingStatusConfirmed, "D", "d@example.com")
	addBooking(t, db, mike, haircut, tomorrow, "09:00:00", models.BookingStatusConfirmed, "E", "e@example.com")

	stats, err := services.NewStatsService(db).BarberStats(mike.ID)
	require.NoError(t, err)

	byMonth := map[string]float64{}
	for _, point := range stats.MonthlyRevenue {
		byMonth[point.Month] = point.Revenue
	}
	assert.InDelta(t, 60.0, byMonth["2026-01"], 0.001)
	assert.InDelta(t, 30.0, byMonth["2026-02"], 0.001)

	require.Len(t, stats.UpcomingBookings, 2)
	// Same date orders by time.
	assert.Equal(t, "09:00:00", stats.UpcomingBookings[0].BookingTime)
	assert.Equal(t, "11:00:00", stats.UpcomingBookings[1].BookingTime)
	for _, b := range stats.UpcomingBookings {
		assert.Equal(t, tomorrow, b.BookingDate)
	}
}

func TestBarberStats_MonthlySeriesCapsAtTwelve(t *testing.T) {
	db := openTestDB(t)
	mike, _, haircut, _ := seedStatsFixture(t, db)

	for m := 1; m <= 12; m++ {
		addBooking(t, db, mike, haircut, fmt.Sprintf("2024-%02d-10", m), "09:00:00", models.BookingStatusConfirmed, "A", "a@example.com")
	}
	for m := 1; m <= 3; m++ {
		addBooking(t, db, mike, haircut, fmt.Sprintf("2025-%02d-10", m), "09:00:00", models.BookingStatusConfirmed, "A", "a@example.com")
	}

	stats, err := services.NewStatsService(db).BarberStats(mike.ID)
	require.NoError(t, err)

	require.Len(t, stats.MonthlyRevenue, 12)
	// Oldest months fall off; the series ends at the newest.
	assert.Equal(t, "2024-04", stats.MonthlyRevenue[0].Month)
	assert.Equal(t, "2025-03", stats.MonthlyRevenue[11].Month)
}
