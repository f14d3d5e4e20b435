package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type FileUploadResponse struct {
	Filename string `json:"filename"`
	Filepath string `json:"filepath"`
	Success  bool   `json:"success"`
}

type PaymentIntentResponse struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}

// Lookup payloads for the static utility endpoints.
type Font struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Preview string `json:"preview"`
}

type SizeOption struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	ExtraCost float64 `json:"extraCost"`
}

type ShirtStyle struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"basePrice"`
}
