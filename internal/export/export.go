// Package export encodes the filtered, currently-visible collection as a
// spreadsheet for download into the user's CRM workflow.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/waffyhq/waffy-dashboard/internal/models"
)

// Table is a flat projection of one record collection, ready for encoding.
type Table struct {
	Name    string
	Headers []string
	Rows    [][]string
}

func OrdersTable(orders []models.Order) Table {
	t := Table{
		Name:    "Orders",
		Headers: []string{"order_id", "customer_id", "customer_name", "item", "quantity", "unit", "status", "total_amount", "delivery_date", "created_at"},
	}
	for _, o := range orders {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(o.ID),
			o.CustomerKey(),
			o.CustomerName,
			o.Item,
			strconv.Itoa(o.Quantity),
			o.Unit,
			o.Status,
			o.TotalAmount,
			o.FilterDate(),
			o.CreatedAt,
		})
	}
	return t
}

func CustomersTable(customers []models.Customer) Table {
	t := Table{
		Name:    "Customers",
		Headers: []string{"customer_id", "customer_name", "email", "created_at"},
	}
	for _, c := range customers {
		t.Rows = append(t.Rows, []string{c.CustomerKey(), c.Name, c.Email, c.CreatedAt})
	}
	return t
}

func EnquiriesTable(enquiries []models.Enquiry) Table {
	t := Table{
		Name:    "Enquiries",
		Headers: []string{"enquiry_id", "customer_id", "description", "category", "priority", "status", "follow_up_date"},
	}
	for _, e := range enquiries {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(e.ID),
			e.CustomerKey(),
			e.Description,
			e.Category,
			e.Priority,
			e.Status,
			e.FollowUpDate,
		})
	}
	return t
}

func IssuesTable(issues []models.Issue) Table {
	t := Table{
		Name:    "Issues",
		Headers: []string{"issue_id", "customer_id", "issue_type", "description", "priority", "status", "created_at"},
	}
	for _, i := range issues {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(i.ID),
			i.CustomerKey(),
			i.IssueType,
			i.Description,
			i.Priority,
			i.Status,
			i.CreatedAt,
		})
	}
	return t
}

// CSV encodes the table with a header row.
func (t Table) CSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(t.Headers); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// XLSX encodes the table as a single-sheet workbook with a styled header row.
func (t Table) XLSX() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := t.Name
	if sheet == "" {
		sheet = "Export"
	}
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	for col, name := range t.Headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, name)
	}
	if len(t.Headers) > 0 {
		lastCol, _ := excelize.CoordinatesToCellName(len(t.Headers), 1)
		f.SetCellStyle(sheet, "A1", lastCol, headerStyle)
	}

	for rowIdx, row := range t.Rows {
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
