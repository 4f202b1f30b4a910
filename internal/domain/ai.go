package domain

type AIQuestionRequest struct {
	Question string `json:"question"`
}

type AIResponse struct {
	Response string `json:"response"`
}

type WelcomeResponse struct {
	Message string `json:"message"`
}
