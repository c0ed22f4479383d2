package response_models

type TripGenerateResponse struct {
	RecommendationID string `json:"idAIRec"`
	Recommendation   string `json:"recommendation"`
}

type GeneratorHealthResponse struct {
	Status    string `json:"status"`
	AIService string `json:"ai_service"`
	Model     string `json:"model"`
	Message   string `json:"message"`
}
