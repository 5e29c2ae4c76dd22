package domain

// LiveQuotesResponse é o corpo esperado do endpoint de cotações ao vivo. As
// cotações vêm chaveadas como "<BASE><DESTINO>" (ex.: "USDEUR"). Qualquer
// outro formato é tratado como falha.
type LiveQuotesResponse struct {
	Success   bool               `json:"success"`
	Source    string             `json:"source"`
	Timestamp int64              `json:"timestamp"`
	Quotes    map[string]float64 `json:"quotes"`
	Error     *APIError          `json:"error,omitempty"`
}

// APIError é o erro estruturado que o feed devolve quando success é false.
type APIError struct {
	Code int    `json:"code"`
	Type string `json:"type"`
	Info string `json:"info"`
}
