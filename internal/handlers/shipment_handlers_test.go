package handlers

import (
	"bytes"
	"encoding/json"
	"math"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/paintops/damagecast/internal/models"
)

const createShipmentBody = `{
	"date": "2024-06-15T00:00:00Z",
	"dealer_code": 42,
	"warehouse": "mum",
	"product_code": "321456678",
	"vehicle": "minitruck",
	"shipped": 20,
	"returned": 5
}`

func TestCreateShipmentEndpoint(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, "POST", "/api/v1/shipments", "application/json", strings.NewReader(createShipmentBody))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var sh models.Shipment
	if err := json.Unmarshal(w.Body.Bytes(), &sh); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if sh.ID != 1 {
		t.Errorf("expected ID 1, got %d", sh.ID)
	}
	if sh.Warehouse != "MUM" || sh.Vehicle != "Minitruck" {
		t.Errorf("expected canonical MUM/Minitruck, got %q/%q", sh.Warehouse, sh.Vehicle)
	}
	if sh.DamageRate == nil || math.Abs(*sh.DamageRate-0.25) > 1e-9 {
		t.Errorf("expected damage rate 0.25, got %v", sh.DamageRate)
	}
	// 5 tins of an Expensive paint in a 678 tin at 800 each
	if sh.LossValue == nil || math.Abs(*sh.LossValue-4000) > 1e-9 {
		t.Errorf("expected loss value 4000, got %v", sh.LossValue)
	}
}

func TestCreateShipmentEndpointRejectsBadInput(t *testing.T) {
	env := newTestEnv()

	cases := []struct {
		name string
		body string
	}{
		{"missing shipped", `{"date": "2024-06-15T00:00:00Z", "dealer_code": 42, "warehouse": "MUM", "product_code": "321456678", "vehicle": "Vikram"}`},
		{"unknown warehouse", `{"date": "2024-06-15T00:00:00Z", "dealer_code": 42, "warehouse": "DEL", "product_code": "321456678", "vehicle": "Vikram", "shipped": 10}`},
		{"returned above shipped", `{"date": "2024-06-15T00:00:00Z", "dealer_code": 42, "warehouse": "MUM", "product_code": "321456678", "vehicle": "Vikram", "shipped": 10, "returned": 12}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := env.do(t, "POST", "/api/v1/shipments", "application/json", strings.NewReader(tc.body))
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}

	if env.shipments.count() != 0 {
		t.Errorf("expected no stored shipments, got %d", env.shipments.count())
	}
}

func TestGetShipmentEndpoint(t *testing.T) {
	env := newTestEnv()
	if w := env.do(t, "POST", "/api/v1/shipments", "application/json", strings.NewReader(createShipmentBody)); w.Code != http.StatusCreated {
		t.Fatalf("seed shipment failed: %d: %s", w.Code, w.Body.String())
	}

	w := env.do(t, "GET", "/api/v1/shipments/1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	var sh models.Shipment
	if err := json.Unmarshal(w.Body.Bytes(), &sh); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if sh.ID != 1 || sh.Shipped != 20 {
		t.Errorf("expected shipment 1 with 20 shipped, got %d/%d", sh.ID, sh.Shipped)
	}

	w = env.do(t, "GET", "/api/v1/shipments/9999", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal error response: %v", err)
	}
	if resp.Error != "not_found" {
		t.Errorf("expected not_found error code, got %q", resp.Error)
	}

	if w := env.do(t, "GET", "/api/v1/shipments/abc", "", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for non-numeric id, got %d", w.Code)
	}
}

func TestUpdateShipmentEndpoint(t *testing.T) {
	env := newTestEnv()

	noReturn := `{"date": "2024-06-15T00:00:00Z", "dealer_code": 42, "warehouse": "MUM", "product_code": "321456678", "vehicle": "Minitruck", "shipped": 20}`
	if w := env.do(t, "POST", "/api/v1/shipments", "application/json", strings.NewReader(noReturn)); w.Code != http.StatusCreated {
		t.Fatalf("seed shipment failed: %d: %s", w.Code, w.Body.String())
	}

	w := env.do(t, "PATCH", "/api/v1/shipments/1", "application/json", strings.NewReader(`{"returned": 4}`))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	var sh models.Shipment
	if err := json.Unmarshal(w.Body.Bytes(), &sh); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if sh.Returned == nil || *sh.Returned != 4 {
		t.Errorf("expected returned 4, got %v", sh.Returned)
	}
	if sh.DamageRate == nil || math.Abs(*sh.DamageRate-0.20) > 1e-9 {
		t.Errorf("expected damage rate 0.20, got %v", sh.DamageRate)
	}
	if sh.LossValue == nil || math.Abs(*sh.LossValue-3200) > 1e-9 {
		t.Errorf("expected loss value 3200, got %v", sh.LossValue)
	}

	if w := env.do(t, "PATCH", "/api/v1/shipments/1", "application/json", strings.NewReader(`{"returned": 25}`)); w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for count above shipped, got %d", w.Code)
	}
	if w := env.do(t, "PATCH", "/api/v1/shipments/1", "application/json", strings.NewReader(`{}`)); w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for missing returned, got %d", w.Code)
	}
	if w := env.do(t, "PATCH", "/api/v1/shipments/9999", "application/json", strings.NewReader(`{"returned": 4}`)); w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for missing shipment, got %d", w.Code)
	}
}

func TestDeleteShipmentEndpoint(t *testing.T) {
	env := newTestEnv()
	if w := env.do(t, "POST", "/api/v1/shipments", "application/json", strings.NewReader(createShipmentBody)); w.Code != http.StatusCreated {
		t.Fatalf("seed shipment failed: %d: %s", w.Code, w.Body.String())
	}

	w := env.do(t, "DELETE", "/api/v1/shipments/1", "", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d: %s", w.Code, w.Body.String())
	}
	if env.shipments.count() != 0 {
		t.Errorf("expected empty store after delete, got %d rows", env.shipments.count())
	}

	if w := env.do(t, "DELETE", "/api/v1/shipments/1", "", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 on second delete, got %d", w.Code)
	}
}

func TestListShipmentsEndpoint(t *testing.T) {
	env := newTestEnv()

	bodies := []string{
		`{"date": "2024-06-15T00:00:00Z", "dealer_code": 42, "warehouse": "MUM", "product_code": "321456678", "vehicle": "Minitruck", "shipped": 20}`,
		`{"date": "2024-06-16T00:00:00Z", "dealer_code": 7, "warehouse": "NAG", "product_code": "123234345", "vehicle": "Vikram", "shipped": 15}`,
	}
	for _, body := range bodies {
		if w := env.do(t, "POST", "/api/v1/shipments", "application/json", strings.NewReader(body)); w.Code != http.StatusCreated {
			t.Fatalf("seed shipment failed: %d: %s", w.Code, w.Body.String())
		}
	}

	w := env.do(t, "GET", "/api/v1/shipments", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp models.ShipmentListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Total != 2 || len(resp.Shipments) != 2 {
		t.Errorf("expected 2 shipments, got total %d with %d rows", resp.Total, len(resp.Shipments))
	}
	if resp.Limit != 100 || resp.Offset != 0 {
		t.Errorf("expected default paging 100/0, got %d/%d", resp.Limit, resp.Offset)
	}

	w = env.do(t, "GET", "/api/v1/shipments?dealer_code=42", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Total != 1 || resp.Shipments[0].DealerCode != 42 {
		t.Errorf("expected only dealer 42, got %+v", resp.Shipments)
	}

	if w := env.do(t, "GET", "/api/v1/shipments?start_date=15-06-2024", "", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for bad start_date, got %d", w.Code)
	}
}

func TestImportShipmentsEndpoint(t *testing.T) {
	env := newTestEnv()

	csv := "date,dealer_code,warehouse,product_code,vehicle,shipped,returned\n" +
		"2024-06-15,42,MUM,321456678,Minitruck,20,5\n" +
		"2024-06-16,7,DEL,123234345,Vikram,15,\n" +
		"2024-06-17,9,NAG,123234345,Vikram,15,2\n"

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "shipments.csv")
	if err != nil {
		t.Fatalf("failed to create file part: %v", err)
	}
	if _, err := part.Write([]byte(csv)); err != nil {
		t.Fatalf("failed to write CSV content: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	w := env.do(t, "POST", "/api/v1/shipments/import", writer.FormDataContentType(), &buf)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var result models.ImportResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if result.TotalRows != 3 || result.Imported != 2 || result.Failed != 1 {
		t.Errorf("expected 3/2/1 rows, got %d/%d/%d", result.TotalRows, result.Imported, result.Failed)
	}
	if len(result.Errors) != 1 || result.Errors[0].Row != 2 {
		t.Errorf("expected one error on row 2, got %+v", result.Errors)
	}
	if env.shipments.count() != 2 {
		t.Errorf("expected 2 stored shipments, got %d", env.shipments.count())
	}
}

func TestImportShipmentsEndpointRawBody(t *testing.T) {
	env := newTestEnv()

	csv := "date,dealer_code,warehouse,product_code,vehicle,shipped\n" +
		"2024-06-15,42,MUM,321456678,Minitruck,20\n"
	w := env.do(t, "POST", "/api/v1/shipments/import", "text/csv", strings.NewReader(csv))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var result models.ImportResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if result.Imported != 1 || result.Failed != 0 {
		t.Errorf("expected clean single-row import, got %+v", result)
	}
}

func TestImportShipmentsEndpointBrokenFile(t *testing.T) {
	env := newTestEnv()

	// Structurally broken: the required shipped column is missing
	csv := "date,dealer_code,warehouse,product_code,vehicle\n" +
		"2024-06-15,42,MUM,321456678,Minitruck\n"
	w := env.do(t, "POST", "/api/v1/shipments/import", "text/csv", strings.NewReader(csv))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
	if env.shipments.count() != 0 {
		t.Errorf("expected nothing stored, got %d", env.shipments.count())
	}
}
