package api

import (
	"net/http"
)

// ContextRequest carries the latest gesture label.
type ContextRequest struct {
	Gesture string `json:"gesture" example:"Thank you"`
}

// ContextResponse is the sentence composed from recent gestures.
type ContextResponse struct {
	ContextGestures  []string `json:"context_gestures" example:"Hello,Thank you"`
	EnglishSentence  string   `json:"english_sentence" example:"Hello, thank you so much."`
	HindiTranslation string   `json:"hindi_translation" example:"नमस्ते, बहुत-बहुत धन्यवाद।"`
}

// MessageResponse is an informational reply.
type MessageResponse struct {
	Message string `json:"message" example:"Waiting for valid gesture"`
}

// ContextHandler handles POST /context-translate.
type ContextHandler struct {
	translator ContextTranslator
}

// NewContextHandler creates a ContextHandler.
func NewContextHandler(t ContextTranslator) *ContextHandler {
	return &ContextHandler{translator: t}
}

// ServeHTTP adds a gesture to the context and returns the sentence for it.
//
// @Summary     Compose a sentence from recent gestures
// @Description Appends the gesture to the last five valid gestures, asks the language model for a
// @Description short English sentence and translates it to Hindi. Empty or "No gesture" input is ignored.
// @Tags        context
// @Accept      json
// @Produce     json
// @Param       request  body      ContextRequest   true  "Latest gesture label"
// @Success     200      {object}  ContextResponse
// @Success     200      {object}  MessageResponse  "Ignored input"
// @Failure     500      {object}  ErrorResponse    "Invalid body, language model or translation failure"
// @Router      /context-translate [post]
func (h *ContextHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req ContextRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logger(r).Warn("invalid context request", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	result, err := h.translator.ContextTranslate(r.Context(), req.Gesture)
	if err != nil {
		logger(r).Error("context translate failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if result.Waiting {
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Waiting for valid gesture"})
		return
	}

	gestures := result.Gestures
	if gestures == nil {
		gestures = []string{}
	}
	writeJSON(w, http.StatusOK, ContextResponse{
		ContextGestures:  gestures,
		EnglishSentence:  result.Sentence,
		HindiTranslation: result.Translation,
	})
}
