package report

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/mmeshcher/savebite-admin/internal/filter"
	"github.com/mmeshcher/savebite-admin/internal/fixture"
	"github.com/mmeshcher/savebite-admin/internal/model"
)

func testNow() time.Time {
	return time.Date(2025, 12, 21, 12, 0, 0, 0, time.UTC)
}

func TestFilename(t *testing.T) {
	got := Filename(ContextDonations, testNow())
	want := "donations-report-2025-12-21.pdf"
	if got != want {
		t.Fatalf("filename = %q, want %q", got, want)
	}
}

func TestGenerateDashboard(t *testing.T) {
	store := fixture.NewStore()

	opts := Options{
		Context:    ContextDashboard,
		RangeLabel: "1week",
		Metrics: Metrics{
			TotalConsumers: true,
			TotalMerchants: true,
			TotalNGOs:      true,
			TotalOrders:    true,
			OrdersTrend:    true,
			DonationTrend:  true,
		},
	}

	var buf bytes.Buffer
	err := Generate(&buf, testNow(), opts, Data{Stats: store.Stats(testNow())})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Fatalf("output does not look like a PDF")
	}
}

func TestGenerateUsers(t *testing.T) {
	store := fixture.NewStore()

	opts := Options{
		Context:   ContextUsers,
		UserRole:  "merchant",
		StartDate: "2025-01-01",
		EndDate:   "2025-12-31",
	}

	users := filter.Users(store.Users(), filter.UserCriteria{
		Role:      opts.UserRole,
		StartDate: opts.StartDate,
		EndDate:   opts.EndDate,
	})

	var buf bytes.Buffer
	if err := Generate(&buf, testNow(), opts, Data{Users: users}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("empty output")
	}
}

func TestGenerateDonationsManyPages(t *testing.T) {
	// Больше лимита строк: проверяем разбиение на страницы и пометку об усечении.
	donations := make([]model.Donation, 0, 80)
	for i := 0; i < 80; i++ {
		donations = append(donations, model.Donation{
			ID:           fmt.Sprintf("D%03d", i+1),
			MerchantName: "Merchant",
			NGOName:      "NGO",
			Items:        []string{"Bread"},
			Quantity:     1,
			DeliveryDate: testNow(),
			Status:       model.DonationStatusCompleted,
		})
	}

	opts := Options{Context: ContextDonations, RangeLabel: "1month"}

	var buf bytes.Buffer
	if err := Generate(&buf, testNow(), opts, Data{Donations: donations}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("empty output")
	}
}

func TestGenerateEmptyResult(t *testing.T) {
	opts := Options{Context: ContextDonations, RangeLabel: "1day"}

	var buf bytes.Buffer
	if err := Generate(&buf, testNow(), opts, Data{Donations: []model.Donation{}}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("empty output")
	}
}

func TestGenerateUnknownContext(t *testing.T) {
	var buf bytes.Buffer
	err := Generate(&buf, testNow(), Options{Context: "profile"}, Data{})
	if err == nil {
		t.Fatalf("expected error for unknown context")
	}
}
