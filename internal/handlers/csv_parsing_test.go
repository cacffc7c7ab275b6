package handlers

import (
	"strings"
	"testing"
	"time"
)

func TestParseShipmentsCSV_HappyPath(t *testing.T) {
	csv := "date,dealer_code,warehouse,product_code,vehicle,shipped,returned\n" +
		"2024-06-15,42,MUM,321456678,Minitruck,20,5\n" +
		"2024-06-16T10:30:00Z,7,NAG,123234345,Vikram,15,\n"
	requests, err := ParseShipmentsCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(requests) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(requests))
	}
	if requests[0].DealerCode != 42 || requests[0].Shipped != 20 {
		t.Errorf("unexpected first request: %+v", requests[0])
	}
	if requests[0].Returned == nil || *requests[0].Returned != 5 {
		t.Errorf("expected returned 5, got %v", requests[0].Returned)
	}
	if !requests[0].Date.Time.Equal(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected date: %v", requests[0].Date.Time)
	}
	if requests[1].Returned != nil {
		t.Errorf("expected nil returned for empty cell, got %v", requests[1].Returned)
	}
	if requests[1].Date.Time.Hour() != 10 {
		t.Errorf("expected RFC3339 timestamp to keep the hour, got %v", requests[1].Date.Time)
	}
}

func TestParseShipmentsCSV_MissingColumn(t *testing.T) {
	csv := "date,dealer_code,warehouse,product_code,vehicle\n" +
		"2024-06-15,42,MUM,321456678,Minitruck\n"
	_, err := ParseShipmentsCSV(strings.NewReader(csv))
	if err == nil {
		t.Fatal("expected error for missing column")
	}
	if !strings.Contains(err.Error(), "shipped") {
		t.Errorf("expected error to mention missing column, got: %s", err.Error())
	}
}

func TestParseShipmentsCSV_EmptyDateSkipsRow(t *testing.T) {
	csv := "date,dealer_code,warehouse,product_code,vehicle,shipped\n" +
		",42,MUM,321456678,Minitruck,20\n" +
		"2024-06-16,7,NAG,123234345,Vikram,15\n"
	requests, err := ParseShipmentsCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(requests))
	}
	if requests[0].DealerCode != 7 {
		t.Errorf("expected the dated row to survive, got %+v", requests[0])
	}
}

func TestParseShipmentsCSV_InvalidDate(t *testing.T) {
	csv := "date,dealer_code,warehouse,product_code,vehicle,shipped\n" +
		"15/06/2024,42,MUM,321456678,Minitruck,20\n"
	_, err := ParseShipmentsCSV(strings.NewReader(csv))
	if err == nil {
		t.Fatal("expected error for invalid date")
	}
	if !strings.Contains(err.Error(), "row 2") {
		t.Errorf("expected error to mention row number, got: %s", err.Error())
	}
}

func TestParseShipmentsCSV_InvalidInt(t *testing.T) {
	csv := "date,dealer_code,warehouse,product_code,vehicle,shipped\n" +
		"2024-06-15,42,MUM,321456678,Minitruck,lots\n"
	_, err := ParseShipmentsCSV(strings.NewReader(csv))
	if err == nil {
		t.Fatal("expected error for invalid shipped count")
	}
	if !strings.Contains(err.Error(), "row 2") {
		t.Errorf("expected error to mention row number, got: %s", err.Error())
	}
}

func TestParseShipmentsCSV_HeaderOnly(t *testing.T) {
	csv := "date,dealer_code,warehouse,product_code,vehicle,shipped\n"
	requests, err := ParseShipmentsCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(requests) != 0 {
		t.Errorf("expected 0 requests, got %d", len(requests))
	}
}

func TestParseShipmentsCSV_CaseInsensitiveHeaders(t *testing.T) {
	csv := "Date,DEALER_CODE,Warehouse,Product_Code,VEHICLE,Shipped\n" +
		"2024-06-15,42,MUM,321456678,Minitruck,20\n"
	requests, err := ParseShipmentsCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(requests))
	}
	if requests[0].Warehouse != "MUM" {
		t.Errorf("unexpected request: %+v", requests[0])
	}
}

func TestParseShipmentsCSV_WhitespaceCells(t *testing.T) {
	csv := "date, dealer_code, warehouse, product_code, vehicle, shipped\n" +
		"2024-06-15, 42, MUM , 321456678, Minitruck, 20\n"
	requests, err := ParseShipmentsCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(requests))
	}
	if requests[0].Warehouse != "MUM" || requests[0].DealerCode != 42 {
		t.Errorf("expected trimmed cells, got %+v", requests[0])
	}
}
