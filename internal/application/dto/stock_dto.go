package dto

// ScanInRequest body para POST /api/scan-in.
type ScanInRequest struct {
	Barcode     string `json:"barcode"`
	ProductName string `json:"productName,omitempty"`
	Floor       string `json:"floor"`
}

// ScanOutRequest body para POST /api/scan-out.
type ScanOutRequest struct {
	Barcode string `json:"barcode"`
	Floor   string `json:"floor"`
}
