package conversation

// TurnRequest is the body of POST /api/v1/conversation. History is supplied by
// the client on every turn; the server keeps no per-conversation state outside
// the context store.
type TurnRequest struct {
	UserInput           string `json:"user_input" validate:"required,min=1"`
	ConversationHistory string `json:"conversation_history"`
}

// VoiceParameters selects the synthesized voice for a turn.
type VoiceParameters struct {
	VoiceID string
	Speed   float64
	Pitch   float64
}
