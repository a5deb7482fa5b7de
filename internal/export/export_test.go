package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/waffyhq/waffy-dashboard/internal/models"
)

func sampleOrders() []models.Order {
	return []models.Order{
		{ID: 1, CustomerID: "7", CustomerName: "Ada", Item: "Rice", Quantity: 2, Unit: "kg", Status: "Pending", TotalAmount: "30", DeliveryDate: "2026-08-28", CreatedAt: "2026-08-27"},
		{ID: 2, AltCustomerID: "8", Item: "Beans, premium", Quantity: 1, Status: "completed", TotalAmount: "20"},
	}
}

func TestOrdersTableCSV(t *testing.T) {
	out, err := OrdersTable(sampleOrders()).CSV()
	if err != nil {
		t.Fatalf("error encoding csv: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "order_id,customer_id,customer_name,item,quantity,unit,status,total_amount,delivery_date,created_at" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1,7,Ada,Rice,2,kg,Pending,30,") {
		t.Errorf("unexpected first row %q", lines[1])
	}
	// Values containing commas stay quoted.
	if !strings.Contains(lines[2], `"Beans, premium"`) {
		t.Errorf("expected quoted item in %q", lines[2])
	}
}

func TestOrdersTableUsesResolvedCustomerKey(t *testing.T) {
	table := OrdersTable(sampleOrders())
	if table.Rows[1][1] != "8" {
		t.Errorf("expected alternate customer field to resolve, got %q", table.Rows[1][1])
	}
}

func TestOrdersTableXLSX(t *testing.T) {
	out, err := OrdersTable(sampleOrders()).XLSX()
	if err != nil {
		t.Fatalf("error encoding workbook: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("error opening workbook: %v", err)
	}
	defer f.Close()

	if got, _ := f.GetCellValue("Orders", "A1"); got != "order_id" {
		t.Errorf("expected header 'order_id', got %q", got)
	}
	if got, _ := f.GetCellValue("Orders", "D3"); got != "Beans, premium" {
		t.Errorf("expected item in row 3, got %q", got)
	}
}

func TestEmptyTables(t *testing.T) {
	for _, table := range []Table{
		OrdersTable(nil),
		CustomersTable(nil),
		EnquiriesTable(nil),
		IssuesTable(nil),
	} {
		t.Run(table.Name, func(t *testing.T) {
			out, err := table.CSV()
			if err != nil {
				t.Fatalf("error encoding csv: %v", err)
			}
			lines := strings.Split(strings.TrimSpace(string(out)), "\n")
			if len(lines) != 1 {
				t.Errorf("expected only a header row, got %d lines", len(lines))
			}
		})
	}
}
