package request_models

// TripGenerateRequest carries the structured trip parameters the generator
// turns into a recommendation.
type TripGenerateRequest struct {
	Departure      string   `json:"departure" binding:"required"`
	Destination    string   `json:"destination" binding:"required"`
	People         int      `json:"people" binding:"required,min=1"`
	Days           int      `json:"days" binding:"required,min=1"`
	Time           string   `json:"time"`
	Money          string   `json:"money"`
	Transportation string   `json:"transportation"`
	TravelStyle    string   `json:"travelStyle"`
	Interests      []string `json:"interests"`
	Accommodation  string   `json:"accommodation"`
}

type RecommendationCreateRequest struct {
	Input  string `json:"input" binding:"required"`
	Output string `json:"output" binding:"required"`
}
