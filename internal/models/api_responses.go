package models

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ShipmentListResponse wraps a shipment listing with its paging window
type ShipmentListResponse struct {
	Shipments []Shipment `json:"shipments"`
	Total     int        `json:"total"`
	Limit     int        `json:"limit"`
	Offset    int        `json:"offset"`
}

// ImportRowError records one rejected row of a CSV import
type ImportRowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// ImportResult summarizes a CSV bulk import. Rejected rows never abort the
// file; they are reported here alongside the imported count.
type ImportResult struct {
	TotalRows int              `json:"total_rows"`
	Imported  int              `json:"imported"`
	Failed    int              `json:"failed"`
	Errors    []ImportRowError `json:"errors,omitempty"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status       string `json:"status"`
	Database     string `json:"database"`
	ModelsLoaded int    `json:"models_loaded"`
}
