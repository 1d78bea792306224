// Package report формирует PDF-отчёты панели: сводный, по пользователям
// и по пожертвованиям. Строки отчёта поступают уже отфильтрованными, тем же
// конвейером, что и табличные ответы API.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/mmeshcher/savebite-admin/internal/filter"
	"github.com/mmeshcher/savebite-admin/internal/model"
)

// Context задаёт страницу, для которой формируется отчёт.
type Context string

const (
	ContextDashboard Context = "dashboard"
	ContextUsers     Context = "users"
	ContextDonations Context = "donations"
)

// MaxRows — максимум детальных записей в одном отчёте.
// Записи сверх лимита не печатаются; в конце ставится пометка об усечении.
const MaxRows = 50

const (
	leftMargin = 14.0
	pageBreakY = 280.0
	topY       = 20.0
)

// Metrics содержит переключатели метрик сводного отчёта.
type Metrics struct {
	TotalConsumers bool `json:"totalConsumers"`
	TotalMerchants bool `json:"totalMerchants"`
	TotalNGOs      bool `json:"totalNGOs"`
	TotalOrders    bool `json:"totalOrders"`
	OrdersTrend    bool `json:"ordersTrend"`
	DonationTrend  bool `json:"donationTrend"`
}

// Options описывает параметры формируемого отчёта.
type Options struct {
	Context    Context `json:"context"`
	RangeLabel string  `json:"rangeLabel"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	UserRole   string  `json:"userRole"`
	UserStatus string  `json:"userStatus"`
	MerchantID string  `json:"merchantId"`
	NGOID      string  `json:"ngoId"`
	Metrics    Metrics `json:"metrics"`
}

// Data содержит данные отчёта, подготовленные сервисным слоем.
type Data struct {
	Stats     model.DashboardStats
	Users     []model.User
	Donations []model.Donation
}

// Filename возвращает имя файла отчёта: {context}-report-{yyyy-MM-dd}.pdf.
func Filename(ctx Context, now time.Time) string {
	return fmt.Sprintf("%s-report-%s.pdf", ctx, now.Format("2006-01-02"))
}

// Generate записывает PDF-отчёт в w. Ошибка раскладки или записи
// возвращается вызывающему, генерация не считается безошибочной.
func Generate(w io.Writer, now time.Time, opts Options, data Data) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	doc.SetFont("Helvetica", "", 18)
	doc.Text(leftMargin, topY, title(opts.Context))

	doc.SetFont("Helvetica", "", 12)
	y := 30.0
	doc.Text(leftMargin, y, "Report Generated: "+now.Format("Jan 02, 2006 15:04"))
	y += 10

	doc.Text(leftMargin, y, rangeLine(opts))
	y += 15

	switch opts.Context {
	case ContextDashboard:
		writeDashboard(doc, y, opts.Metrics, data.Stats)
	case ContextUsers:
		writeUsers(doc, y, opts, data.Users)
	case ContextDonations:
		writeDonations(doc, y, data.Donations)
	default:
		return fmt.Errorf("unknown report context: %q", opts.Context)
	}

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func title(ctx Context) string {
	switch ctx {
	case ContextDashboard:
		return "SaveBite System Report"
	case ContextUsers:
		return "SaveBite User Management Report"
	case ContextDonations:
		return "SaveBite Donation Report"
	default:
		return "SaveBite Report"
	}
}

func rangeLine(opts Options) string {
	start, errStart := time.Parse("2006-01-02", opts.StartDate)
	end, errEnd := time.Parse("2006-01-02", opts.EndDate)
	if opts.StartDate != "" && opts.EndDate != "" && errStart == nil && errEnd == nil {
		return fmt.Sprintf("Date Range: %s - %s",
			start.Format("Jan 02, 2006"), end.Format("Jan 02, 2006"))
	}
	return "Time Range: " + opts.RangeLabel
}

func writeDashboard(doc *fpdf.Fpdf, y float64, metrics Metrics, stats model.DashboardStats) {
	doc.SetFont("Helvetica", "B", 10)
	doc.Text(leftMargin, y, "System Overview Statistics")
	y += 10
	doc.SetFont("Helvetica", "", 10)

	if metrics.TotalConsumers {
		doc.Text(leftMargin, y, fmt.Sprintf("Total Consumers: %d", stats.TotalConsumers))
		y += 7
	}
	if metrics.TotalMerchants {
		doc.Text(leftMargin, y, fmt.Sprintf("Total Merchants: %d", stats.TotalMerchants))
		y += 7
	}
	if metrics.TotalNGOs {
		doc.Text(leftMargin, y, fmt.Sprintf("Total NGOs Served: %d", stats.TotalNGOs))
		y += 7
	}
	if metrics.TotalOrders {
		doc.Text(leftMargin, y, fmt.Sprintf("Total Orders Completed: %d", stats.TotalOrders))
		y += 7
	}

	if metrics.OrdersTrend || metrics.DonationTrend {
		y += 5
		doc.SetFont("Helvetica", "B", 10)
		doc.Text(leftMargin, y, "Trends")
		y += 7
		doc.SetFont("Helvetica", "", 10)
		if metrics.OrdersTrend {
			doc.Text(leftMargin, y, "Orders Trend: Included in report")
			y += 7
		}
		if metrics.DonationTrend {
			doc.Text(leftMargin, y, "Donation Trend: Included in report")
		}
	}
}

func writeUsers(doc *fpdf.Fpdf, y float64, opts Options, users []model.User) {
	doc.SetFont("Helvetica", "B", 10)
	doc.Text(leftMargin, y, "User Account Report")
	y += 10

	doc.SetFont("Helvetica", "", 10)
	doc.Text(leftMargin, y, fmt.Sprintf("Total Users: %d", len(users)))
	y += 10

	if opts.UserRole != "" && opts.UserRole != filter.All {
		doc.Text(leftMargin, y, "User Type: "+capitalize(opts.UserRole))
		y += 7
	}
	if opts.UserStatus != "" && opts.UserStatus != filter.All {
		doc.Text(leftMargin, y, "Status: "+capitalize(opts.UserStatus))
		y += 7
	}

	y += 5
	doc.SetFont("Helvetica", "B", 10)
	doc.Text(leftMargin, y, "User Details")
	y += 7
	doc.SetFont("Helvetica", "", 10)

	shown := users
	if len(shown) > MaxRows {
		shown = shown[:MaxRows]
	}

	for _, u := range shown {
		if y > pageBreakY {
			doc.AddPage()
			y = topY
		}
		doc.Text(leftMargin, y, fmt.Sprintf("%s (%s)", u.Name, u.Email))
		y += 5
		doc.Text(leftMargin, y, fmt.Sprintf("  Role: %s | Status: %s | Created: %s",
			u.Role, u.Status, u.CreatedAt.Format("Jan 02, 2006")))
		y += 7
	}

	writeTruncationNote(doc, y, len(users))
}

func writeDonations(doc *fpdf.Fpdf, y float64, donations []model.Donation) {
	doc.SetFont("Helvetica", "B", 10)
	doc.Text(leftMargin, y, "Donation Delivery Report")
	y += 10

	doc.SetFont("Helvetica", "", 10)
	doc.Text(leftMargin, y, fmt.Sprintf("Total Donations: %d", len(donations)))
	y += 7
	doc.Text(leftMargin, y, fmt.Sprintf("Total Items: %d", filter.TotalQuantity(donations)))
	y += 10

	doc.SetFont("Helvetica", "B", 10)
	doc.Text(leftMargin, y, "Donation Details")
	y += 7
	doc.SetFont("Helvetica", "", 10)

	shown := donations
	if len(shown) > MaxRows {
		shown = shown[:MaxRows]
	}

	for _, d := range shown {
		if y > pageBreakY {
			doc.AddPage()
			y = topY
		}
		doc.Text(leftMargin, y, "ID: "+d.ID)
		y += 5
		doc.Text(leftMargin, y, fmt.Sprintf("  Merchant: %s -> NGO: %s", d.MerchantName, d.NGOName))
		y += 5
		doc.Text(leftMargin, y, "  Items: "+strings.Join(d.Items, ", "))
		y += 5
		doc.Text(leftMargin, y, fmt.Sprintf("  Quantity: %d | Delivery: %s",
			d.Quantity, d.DeliveryDate.Format("Jan 02, 2006")))
		y += 7
	}

	writeTruncationNote(doc, y, len(donations))
}

func writeTruncationNote(doc *fpdf.Fpdf, y float64, total int) {
	if total <= MaxRows {
		return
	}
	if y > pageBreakY {
		doc.AddPage()
		y = topY
	}
	doc.SetFont("Helvetica", "I", 10)
	doc.Text(leftMargin, y, fmt.Sprintf("Showing first %d of %d records", MaxRows, total))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
