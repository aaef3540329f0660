package api

import (
	"net/http"

	"github.com/ayusman/samvaad/internal/app"
)

// PredictRequest carries one webcam frame as a base64 string or data URI.
type PredictRequest struct {
	Image string `json:"image" example:"data:image/jpeg;base64,/9j/4AAQ..."`
}

// PredictResponse is the classified gesture and its translations.
type PredictResponse struct {
	Gesture       string `json:"gesture" example:"Hello"`
	TranslationEN string `json:"translation_en" example:"Hello"`
	TranslationHI string `json:"translation_hi" example:"नमस्ते"`
}

// NewPredictResponse converts a pipeline prediction to its wire form.
func NewPredictResponse(p *app.Prediction) PredictResponse {
	return PredictResponse{
		Gesture:       p.Gesture,
		TranslationEN: p.TranslationEN,
		TranslationHI: p.TranslationHI,
	}
}

// PredictHandler handles POST /predict.
type PredictHandler struct {
	predictor Predictor
}

// NewPredictHandler creates a PredictHandler.
func NewPredictHandler(p Predictor) *PredictHandler {
	return &PredictHandler{predictor: p}
}

// ServeHTTP classifies the gesture in the posted frame.
//
// @Summary     Classify a gesture
// @Description Decodes a webcam frame, classifies the hand gesture in it and translates the phrase to Hindi.
// @Description "No gesture" is reported when no hand sign is found.
// @Tags        predict
// @Accept      json
// @Produce     json
// @Param       request  body      PredictRequest   true  "Frame to classify"
// @Success     200      {object}  PredictResponse
// @Failure     400      {object}  ErrorResponse  "No image data"
// @Failure     500      {object}  ErrorResponse  "Invalid body, decode, model or translation failure"
// @Router      /predict [post]
func (h *PredictHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req PredictRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logger(r).Warn("invalid predict request", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if req.Image == "" {
		writeError(w, http.StatusBadRequest, "No image data")
		return
	}

	prediction, err := h.predictor.Predict(r.Context(), req.Image)
	if err != nil {
		logger(r).Error("predict failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, NewPredictResponse(prediction))
}
