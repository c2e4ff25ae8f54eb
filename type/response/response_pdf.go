package response

// RenderErrorResponse is the body of a failed POST /api/generate-pdf.
type RenderErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

type HealthResponse struct {
	Ok      bool   `json:"ok"`
	Service string `json:"service"`
}

type DebugResponse struct {
	Ok     bool   `json:"ok"`
	Method string `json:"method"`
	Url    string `json:"url"`
}
