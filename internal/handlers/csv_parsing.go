package handlers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/paintops/damagecast/internal/models"
)

// dateLayouts covers the timestamp shapes accepted in CSV imports and
// date query parameters.
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// ParseShipmentsCSV parses a shipment import CSV into create requests.
// Required columns: date, dealer_code, warehouse, product_code, vehicle, shipped
// Optional column: returned (empty means no return recorded yet)
// Rows with an empty date are skipped. Business validation happens
// downstream per row; a structurally broken file fails here as a whole.
func ParseShipmentsCSV(r io.Reader) ([]models.CreateShipmentRequest, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIdx := make(map[string]int)
	for i, col := range header {
		colIdx[strings.ToLower(strings.TrimSpace(col))] = i
	}

	for _, col := range []string{"date", "dealer_code", "warehouse", "product_code", "vehicle", "shipped"} {
		if _, ok := colIdx[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	optionalCol := func(record []string, col string) string {
		idx, ok := colIdx[col]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var requests []models.CreateShipmentRequest
	rowNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: failed to read CSV record: %w", rowNum+1, err)
		}
		rowNum++

		dateStr := strings.TrimSpace(record[colIdx["date"]])
		if dateStr == "" {
			continue
		}
		date, err := parseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		dealerCode, err := strconv.Atoi(strings.TrimSpace(record[colIdx["dealer_code"]]))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid dealer_code: %w", rowNum, err)
		}
		shipped, err := strconv.Atoi(strings.TrimSpace(record[colIdx["shipped"]]))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid shipped: %w", rowNum, err)
		}

		req := models.CreateShipmentRequest{
			Date:        models.FlexibleTime{Time: date},
			DealerCode:  dealerCode,
			Warehouse:   strings.TrimSpace(record[colIdx["warehouse"]]),
			ProductCode: strings.TrimSpace(record[colIdx["product_code"]]),
			Vehicle:     strings.TrimSpace(record[colIdx["vehicle"]]),
			Shipped:     shipped,
		}

		if returnedStr := optionalCol(record, "returned"); returnedStr != "" {
			returned, err := strconv.Atoi(returnedStr)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid returned: %w", rowNum, err)
			}
			req.Returned = &returned
		}

		requests = append(requests, req)
	}

	return requests, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format %q", s)
}
