package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestFinanceFlow_RecordAndReport(t *testing.T) {
	app := setupApp(t)

	// Step 1: Create categories
	salaryID := app.createCategory(t, "Salary", "income")
	groceriesID := app.createCategory(t, "Groceries", "expense")

	// Step 2: Record a month of activity
	app.createTransaction(t, "5000.00", "March paycheck", "2024-03-01", salaryID, "income")
	app.createTransaction(t, "3000.00", "Freelance project", "2024-03-10", salaryID, "income")
	app.createTransaction(t, "120.00", "Weekly groceries", "2024-03-15", groceriesID, "expense")
	app.createTransaction(t, "80.00", "More groceries", "2024-03-22", groceriesID, "expense")

	// Step 3: List transactions for the month, ordered by date
	rec := app.request("GET", "/api/v1/transactions?start_date=2024-03-01&end_date=2024-03-31", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 listing transactions, got %d: %s", rec.Code, rec.Body.String())
	}
	listResult := parseJSON(t, rec)
	transactions := listResult["transactions"].([]interface{})
	if len(transactions) != 4 {
		t.Fatalf("expected 4 transactions, got %d", len(transactions))
	}
	first := transactions[0].(map[string]interface{})
	if first["description"] != "March paycheck" {
		t.Errorf("expected earliest transaction first, got %v", first["description"])
	}
	if first["category_name"] != "Salary" {
		t.Errorf("expected category name Salary, got %v", first["category_name"])
	}

	// Step 4: Check the summary report
	rec = app.request("GET", "/api/v1/reports/summary?start_date=2024-03-01&end_date=2024-03-31", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for summary, got %d: %s", rec.Code, rec.Body.String())
	}
	summaryResult := parseJSON(t, rec)
	summary := summaryResult["summary"].(map[string]interface{})
	if summary["total_income"].(float64) != 8000 {
		t.Errorf("expected total_income 8000, got %v", summary["total_income"])
	}
	if summary["total_expense"].(float64) != 200 {
		t.Errorf("expected total_expense 200, got %v", summary["total_expense"])
	}
	if summary["net_amount"].(float64) != 7800 {
		t.Errorf("expected net_amount 7800, got %v", summary["net_amount"])
	}
	if summary["transactions_count"].(float64) != 4 {
		t.Errorf("expected transactions_count 4, got %v", summary["transactions_count"])
	}

	// Step 5: Check the per-category breakdown
	rec = app.request("GET", "/api/v1/reports/categories?start_date=2024-03-01&end_date=2024-03-31", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for category report, got %d: %s", rec.Code, rec.Body.String())
	}
	reportResult := parseJSON(t, rec)
	rows := reportResult["report"].([]interface{})
	if len(rows) != 2 {
		t.Fatalf("expected 2 report rows, got %d", len(rows))
	}
	totals := map[string]float64{}
	counts := map[string]float64{}
	for _, raw := range rows {
		row := raw.(map[string]interface{})
		name := row["category_name"].(string)
		totals[name] = row["total_amount"].(float64)
		counts[name] = row["transactions_count"].(float64)
	}
	if totals["Salary"] != 8000 || counts["Salary"] != 2 {
		t.Errorf("expected Salary 8000/2, got %v/%v", totals["Salary"], counts["Salary"])
	}
	if totals["Groceries"] != 200 || counts["Groceries"] != 2 {
		t.Errorf("expected Groceries 200/2, got %v/%v", totals["Groceries"], counts["Groceries"])
	}

	// Step 6: Export the report
	rec = app.request("GET", "/api/v1/reports/export?start_date=2024-03-01&end_date=2024-03-31", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for export, got %d: %s", rec.Code, rec.Body.String())
	}
	exportResult := parseJSON(t, rec)
	if exportResult["filename"] != "financial_report_2024-03-01_to_2024-03-31.xlsx" {
		t.Errorf("unexpected export filename: %v", exportResult["filename"])
	}
	if exportResult["file_url"] != "/exports/financial_report_2024-03-01_to_2024-03-31.xlsx" {
		t.Errorf("unexpected export file_url: %v", exportResult["file_url"])
	}
}

func TestFinanceFlow_SummaryMatchesFilteredTransactions(t *testing.T) {
	app := setupApp(t)
	catID := app.createCategory(t, "Utilities", "expense")

	app.createTransaction(t, "1234.56", "Annual insurance", "2024-03-01", catID, "expense")
	app.createTransaction(t, "0.01", "Rounding seed", "2024-03-02", catID, "expense")
	app.createTransaction(t, "500.00", "Outside the range", "2024-05-01", catID, "expense")

	rec := app.request("GET", "/api/v1/reports/summary?start_date=2024-03-01&end_date=2024-03-31", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)["summary"].(map[string]interface{})
	if summary["total_expense"].(float64) != 1234.57 {
		t.Errorf("expected total_expense 1234.57, got %v", summary["total_expense"])
	}
	if summary["transactions_count"].(float64) != 2 {
		t.Errorf("expected transactions_count 2, got %v", summary["transactions_count"])
	}

	// The same range filter on the transaction list agrees with the summary.
	rec = app.request("GET", fmt.Sprintf("/api/v1/transactions?start_date=%s&end_date=%s", "2024-03-01", "2024-03-31"), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	transactions := parseJSON(t, rec)["transactions"].([]interface{})
	if len(transactions) != 2 {
		t.Errorf("expected 2 transactions in range, got %d", len(transactions))
	}
}
