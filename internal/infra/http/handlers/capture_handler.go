package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ishqme/popup-capture/internal/infra/http/middleware"
	"github.com/ishqme/popup-capture/internal/usecase"
)

type CaptureHandler struct {
	CaptureUC *usecase.CaptureLeadUseCase
}

func NewCaptureHandler(uc *usecase.CaptureLeadUseCase) *CaptureHandler {
	return &CaptureHandler{CaptureUC: uc}
}

type failureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func (h *CaptureHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.CaptureInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		middleware.RecordCapture("bad_request")
		writeJSON(w, http.StatusBadRequest, failureResponse{
			Message: "Invalid JSON: " + err.Error(),
			Code:    usecase.CodeValidation,
		})
		return
	}

	output, err := h.CaptureUC.Execute(r.Context(), input)
	if err != nil {
		h.writeFailure(w, err)
		return
	}

	middleware.RecordCapture("success")
	writeJSON(w, http.StatusOK, output)
}

// writeFailure maps the error taxonomy to a status code. The caller
// always gets structured JSON, never a stack trace.
func (h *CaptureHandler) writeFailure(w http.ResponseWriter, err error) {
	switch e := err.(type) {
	case *usecase.DomainError:
		middleware.RecordCapture("rejected")
		writeJSON(w, http.StatusBadRequest, failureResponse{
			Message: e.Message,
			Code:    e.Code,
		})
	case *usecase.TechnicalError:
		middleware.RecordCapture("failed")
		logrus.WithField("code", e.Code).Error(e.Message)
		writeJSON(w, http.StatusInternalServerError, failureResponse{
			Message: "Internal server error",
			Code:    e.Code,
		})
	default:
		middleware.RecordCapture("failed")
		logrus.WithError(err).Error("Unhandled capture error")
		writeJSON(w, http.StatusInternalServerError, failureResponse{
			Message: "Internal server error",
			Code:    usecase.CodeUnknown,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
