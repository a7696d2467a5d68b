package domain

// ErrorResponse é a estrutura padronizada para respostas de erro na API.
// @Description Estrutura padronizada para respostas de erro na API.
type ErrorResponse struct {
	Error   string   `json:"error" example:"Client not found"`
	Details []string `json:"details,omitempty"`
}
