package dto

type ChatRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	Prompt    string `json:"prompt" validate:"required"`
	Language  string `json:"language,omitempty"` // accepted, not used
}

type ChatResponse struct {
	Response string `json:"response"`
}

type ChatLogResponse struct {
	Log string `json:"log"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ChatTurnResponse struct {
	Timestamp   string `json:"timestamp"`
	UserQuery   string `json:"user_query"`
	BotResponse string `json:"bot_response"`
}

type ChatHistoryResponse struct {
	SessionID string             `json:"session_id"`
	Turns     []ChatTurnResponse `json:"turns"`
}
