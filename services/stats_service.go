package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/shev-k/mikes-cut/models"
)

// StatsService computes the revenue and performance numbers shown on the
// admin and barber dashboards. Everything is recomputed from the booking rows
// on every call; there is no caching layer, so the sums depend only on the
// fetched data and not on iteration order.
type StatsService struct {
	db *gorm.DB
}

// NewStatsService creates a new stats service
func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// BarberStat is one barber's line in the monthly report.
type BarberStat struct {
	BarberID       uint    `json:"barber_id"`
	Name           string  `json:"name"`
	Bookings       int     `json:"bookings"`
	Revenue        float64 `json:"revenue"`
	CommissionRate float64 `json:"commission_rate"`
	Earnings       float64 `json:"earnings"`
}

// DailyRevenue is one bar of the per-day revenue histogram.
type DailyRevenue struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// AdminStats is the admin dashboard payload for a target month.
type AdminStats struct {
	TotalRevenue      float64          `json:"total_revenue"`
	MonthlyRevenue    float64          `json:"monthly_revenue"`
	TodayRevenue      float64          `json:"today_revenue"`
	TotalBookings     int              `json:"total_bookings"`
	Bookings          []models.Booking `json:"bookings"`
	BarberStats       []BarberStat     `json:"barber_stats"`
	DailyRevenueChart []DailyRevenue   `json:"daily_revenue_chart"`
}

// AdminStats aggregates all confirmed bookings in a single pass: lifetime
// revenue over every date, revenue/count for the target month, today's
// revenue, and per-barber earnings restricted to the target month. Month is
// 1-12; zero values default to the current month and year. Barbers with no
// bookings still appear with zeroes, and a nil commission rate counts as 50%.
func (s *StatsService) AdminStats(month int, year int) (*AdminStats, error) {
	now := time.Now()
	if month < 1 || month > 12 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	todayStr := now.Format("2006-01-02")

	var bookings []models.Booking
	err := s.db.Preload("Barber").Preload("Service").
		Where("status = ?", models.BookingStatusConfirmed).
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for stats: %w", err)
	}

	var barbers []models.Barber
	if err := s.db.Find(&barbers).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch barbers for stats: %w", err)
	}

	barberStats := make(map[uint]*BarberStat, len(barbers))
	for _, b := range barbers {
		barberStats[b.ID] = &BarberStat{
			BarberID:       b.ID,
			Name:           b.Name,
			CommissionRate: b.EffectiveCommissionRate(),
		}
	}

	stats := &AdminStats{Bookings: []models.Booking{}}

	for _, booking := range bookings {
		price := booking.Service.Price
		bYear, bMonth, _ := splitDate(booking.BookingDate)

		// Lifetime
		stats.TotalRevenue += price

		// Target month
		if bMonth == month && bYear == year {
			stats.MonthlyRevenue += price
			stats.TotalBookings++
			stats.Bookings = append(stats.Bookings, booking)

			if bs, ok := barberStats[booking.BarberID]; ok {
				bs.Bookings++
				bs.Revenue += price
				bs.Earnings += price * (bs.CommissionRate / 100)
			}
		}

		if booking.BookingDate == todayStr {
			stats.TodayRevenue += price
		}
	}

	// Daily histogram: one zero-initialized entry per calendar day of the
	// target month, then accumulate the month's bookings into it.
	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	dailyMap := make(map[string]float64, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		dailyMap[fmt.Sprintf("%04d-%02d-%02d", year, month, day)] = 0
	}
	for _, booking := range stats.Bookings {
		if _, ok := dailyMap[booking.BookingDate]; ok {
			dailyMap[booking.BookingDate] += booking.Service.Price
		}
	}

	stats.DailyRevenueChart = make([]DailyRevenue, 0, daysInMonth)
	for date, amount := range dailyMap {
		stats.DailyRevenueChart = append(stats.DailyRevenueChart, DailyRevenue{Date: date, Amount: amount})
	}
	sort.Slice(stats.DailyRevenueChart, func(i, j int) bool {
		return stats.DailyRevenueChart[i].Date < stats.DailyRevenueChart[j].Date
	})

	stats.BarberStats = make([]BarberStat, 0, len(barberStats))
	for _, bs := range barberStats {
		stats.BarberStats = append(stats.BarberStats, *bs)
	}
	sort.Slice(stats.BarberStats, func(i, j int) bool {
		return stats.BarberStats[i].BarberID < stats.BarberStats[j].BarberID
	})

	return stats, nil
}

// MonthlyRevenuePoint is one month of a barber's revenue series.
type MonthlyRevenuePoint struct {
	Month   string  `json:"month"` // YYYY-MM
	Revenue float64 `json:"revenue"`
}

// ClientStat is one client on a barber's top-clients list.
type ClientStat struct {
	Name     string  `json:"name"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

// ServiceStat is one service on a barber's top-services list.
type ServiceStat struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// BarberStats is the per-barber dashboard payload.
type BarberStats struct {
	TotalEarnings     float64               `json:"total_earnings"`
	ThisMonthEarnings float64               `json:"this_month_earnings"`
	ThisMonthBookings int                   `json:"this_month_bookings"`
	TotalBookings     int                   `json:"total_bookings"`
	UniqueClients     int                   `json:"unique_clients"`
	MonthlyRevenue    []MonthlyRevenuePoint `json:"monthly_revenue"`
	TopClients        []ClientStat          `json:"top_clients"`
	TopServices       []ServiceStat         `json:"top_services"`
	UpcomingBookings  []models.Booking      `json:"upcoming_bookings"`
}

// BarberStats aggregates one barber's non-cancelled bookings: lifetime and
// current-month earnings, distinct clients, a last-12-months revenue series,
// top five clients by revenue, top five services by count, and the next ten
// upcoming confirmed appointments.
func (s *StatsService) BarberStats(barberID uint) (*BarberStats, error) {
	now := time.Now()
	currentMonth := int(now.Month())
	currentYear := now.Year()
	todayStr := now.Format("2006-01-02")

	var bookings []models.Booking
	err := s.db.Preload("Service").
		Where("barber_id = ? AND status <> ?", barberID, models.BookingStatusCancelled).
		Order("booking_date DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch barber bookings: %w", err)
	}

	monthlyRevenue := map[string]float64{}
	clients := map[string]*ClientStat{}
	servicesSeen := map[string]*ServiceStat{}

	stats := &BarberStats{TotalBookings: len(bookings)}

	for _, booking := range bookings {
		price := booking.Service.Price
		bYear, bMonth, _ := splitDate(booking.BookingDate)
		monthKey := fmt.Sprintf("%04d-%02d", bYear, bMonth)

		// Clients are keyed by email when present, name otherwise.
		clientKey := booking.CustomerEmail
		if clientKey == "" {
			clientKey = booking.CustomerName
		}

		monthlyRevenue[monthKey] += price
		stats.TotalEarnings += price

		if bMonth == currentMonth && bYear == currentYear {
			stats.ThisMonthEarnings += price
			stats.ThisMonthBookings++
		}

		if _, ok := clients[clientKey]; !ok {
			clients[clientKey] = &ClientStat{Name: booking.CustomerName}
		}
		clients[clientKey].Bookings++
		clients[clientKey].Revenue += price

		serviceName := booking.Service.Name
		if serviceName == "" {
			serviceName = "Unknown"
		}
		if _, ok := servicesSeen[serviceName]; !ok {
			servicesSeen[serviceName] = &ServiceStat{Name: serviceName}
		}
		servicesSeen[serviceName].Count++
		servicesSeen[serviceName].Revenue += price
	}

	stats.UniqueClients = len(clients)

	monthly := make([]MonthlyRevenuePoint, 0, len(monthlyRevenue))
	for month, revenue := range monthlyRevenue {
		monthly = append(monthly, MonthlyRevenuePoint{Month: month, Revenue: revenue})
	}
	sort.Slice(monthly, func(i, j int) bool { return monthly[i].Month < monthly[j].Month })
	if len(monthly) > 12 {
		monthly = monthly[len(monthly)-12:]
	}
	stats.MonthlyRevenue = monthly

	stats.TopClients = topClients(clients, 5)
	stats.TopServices = topServices(servicesSeen, 5)

	// Upcoming: confirmed bookings from today onward, soonest first.
	upcoming := make([]models.Booking, 0)
	for _, booking := range bookings {
		if booking.BookingDate >= todayStr && booking.Status == models.BookingStatusConfirmed {
			upcoming = append(upcoming, booking)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool {
		if upcoming[i].BookingDate == upcoming[j].BookingDate {
			return upcoming[i].BookingTime < upcoming[j].BookingTime
		}
		return upcoming[i].BookingDate < upcoming[j].BookingDate
	})
	if len(upcoming) > 10 {
		upcoming = upcoming[:10]
	}
	stats.UpcomingBookings = upcoming

	return stats, nil
}

func topClients(clients map[string]*ClientStat, limit int) []ClientStat {
	list := make([]ClientStat, 0, len(clients))
	for _, c := range clients {
		list = append(list, *c)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Revenue == list[j].Revenue {
			return list[i].Name < list[j].Name
		}
		return list[i].Revenue > list[j].Revenue
	})
	if len(list) > limit {
		list = list[:limit]
	}
	return list
}

func topServices(services map[string]*ServiceStat, limit int) []ServiceStat {
	list := make([]ServiceStat, 0, len(services))
	for _, s := range services {
		list = append(list, *s)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Count == list[j].Count {
			return list[i].Name < list[j].Name
		}
		return list[i].Count > list[j].Count
	})
	if len(list) > limit {
		list = list[:limit]
	}
	return list
}

// splitDate parses a YYYY-MM-DD string without timezone conversion.
func splitDate(date string) (year, month, day int) {
	parts := strings.SplitN(date, "-", 3)
	if len(parts) != 3 {
		return 0, 0, 0
	}
	year, _ = strconv.Atoi(parts[0])
	month, _ = strconv.Atoi(parts[1])
	day, _ = strconv.Atoi(parts[2])
	return year, month, day
}
