package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/waffyhq/waffy-dashboard/internal/models"
)

// Summary is the aggregate view rendered as dashboard cards. Count totals are
// taken over the unfiltered collections; the pending/completion/retention and
// resolution figures deliberately mix filtered numerators with unfiltered
// denominators, matching what the dashboard has always displayed.
type Summary struct {
	TotalOrders       int            `json:"totalOrders"`
	TotalCustomers    int            `json:"totalCustomers"`
	TotalEnquiries    int            `json:"totalEnquiries"`
	TotalIssues       int            `json:"totalIssues"`
	TotalRevenue      float64        `json:"totalRevenue"`
	AverageOrderValue string         `json:"averageOrderValue"`
	TodayOrders       int            `json:"todayOrders"`
	PendingOrders     int            `json:"pendingOrders"`
	RetentionRate     string         `json:"retentionRate"`
	CompletionRate    string         `json:"completionRate"`
	AvgOrderValue     string         `json:"avgOrderValue"`
	ResolvedIssues    int            `json:"resolvedIssues"`
	ResolutionRate    string         `json:"resolutionRate"`
	ResponseRate      string         `json:"responseRate"`
	AvgResponseTime   string         `json:"avgResponseTime"`
	TotalResponses    int            `json:"totalResponses"`
	ResponseTypes     map[string]int `json:"responseTypes"`
}

// ComputeMetrics builds the dashboard summary from the five raw collections
// plus the already-filtered orders and issues. It is pure apart from reading
// the current day for the todayOrders count.
func ComputeMetrics(
	orders []models.Order,
	customers []models.Customer,
	enquiries []models.Enquiry,
	issues []models.Issue,
	responseMetrics []models.ResponseMetric,
	filteredOrders []models.Order,
	filteredIssues []models.Issue,
) Summary {
	return MetricsAt(time.Now(),
		orders, customers, enquiries, issues, responseMetrics,
		filteredOrders, filteredIssues)
}

// MetricsAt is ComputeMetrics with an explicit "today" reference.
func MetricsAt(
	now time.Time,
	orders []models.Order,
	customers []models.Customer,
	enquiries []models.Enquiry,
	issues []models.Issue,
	responseMetrics []models.ResponseMetric,
	filteredOrders []models.Order,
	filteredIssues []models.Issue,
) Summary {
	s := Summary{
		TotalOrders:    len(orders),
		TotalCustomers: len(customers),
		TotalEnquiries: len(enquiries),
		TotalIssues:    len(issues),
		TotalResponses: len(responseMetrics),
		ResponseTypes:  map[string]int{},
	}

	for _, o := range orders {
		s.TotalRevenue += ParseAmount(o.TotalAmount)
	}
	s.AverageOrderValue = currency(safeDiv(s.TotalRevenue, float64(s.TotalOrders)))

	today := now.Format("2006-01-02")
	for _, o := range orders {
		if day, ok := NormalizeDate(o.FilterDate()); ok && day == today {
			s.TodayOrders++
		}
	}

	// Per-status tally over the filtered orders. The bucket keys are the raw
	// status strings, so "Pending" and "pending" count separately.
	statusCounts := map[string]int{}
	var filteredRevenue float64
	for _, o := range filteredOrders {
		statusCounts[o.Status]++
		filteredRevenue += ParseAmount(o.TotalAmount)
	}
	s.PendingOrders = statusCounts["Pending"]
	s.AvgOrderValue = "$" + currency(safeDiv(filteredRevenue, float64(len(filteredOrders))))

	// A customer "returns" when their identifier appears on more than one of
	// the filtered orders. The denominator is the full customer list.
	ordersPerCustomer := map[string]int{}
	for _, o := range filteredOrders {
		if key := o.CustomerKey(); key != "" {
			ordersPerCustomer[key]++
		}
	}
	returning := 0
	for _, n := range ordersPerCustomer {
		if n > 1 {
			returning++
		}
	}
	s.RetentionRate = percent(float64(returning), float64(s.TotalCustomers))
	s.CompletionRate = percent(float64(statusCounts["completed"]), float64(s.TotalOrders))

	for _, i := range filteredIssues {
		if i.Status == "resolved" {
			s.ResolvedIssues++
		}
	}
	s.ResolutionRate = percent(float64(s.ResolvedIssues), float64(s.TotalIssues))

	// Coarse ratio of logged responses to total messages, not a per-record
	// join: a response metric is not matched back to its message.
	totalMessages := s.TotalOrders + s.TotalEnquiries + s.TotalIssues
	s.ResponseRate = percent(float64(s.TotalResponses), float64(totalMessages))

	var totalSeconds float64
	for _, m := range responseMetrics {
		totalSeconds += m.ResponseTimeSeconds
		typ := m.ResponseType
		if typ == "" {
			typ = "unknown"
		}
		s.ResponseTypes[typ]++
	}
	s.AvgResponseTime = formatResponseTime(safeDiv(totalSeconds, float64(s.TotalResponses)))

	return s
}

// safeDiv returns a/b, or 0 when the result would be NaN or infinite.
func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	v := a / b
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// currency formats a value with exactly two decimal places.
func currency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return fmt.Sprintf("%.2f", v)
}

// percent renders num/den as a rounded integer percentage with a "%" suffix.
func percent(num, den float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(safeDiv(num, den)*100)))
}

// formatResponseTime renders an average duration in the unit the dashboard
// cards use: milliseconds under a second, seconds under a minute, minutes
// beyond that.
func formatResponseTime(seconds float64) string {
	switch {
	case seconds < 1:
		return fmt.Sprintf("%.0f ms", seconds*1000)
	case seconds < 60:
		return fmt.Sprintf("%.2f s", seconds)
	default:
		return fmt.Sprintf("%.2f min", seconds/60)
	}
}
