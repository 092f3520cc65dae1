package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/FruitClicker_Go/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body into req and validates it.
// If it returns an error the response has already been written and the handler should return.
//
//	var req SellItemRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Sell item"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf(LogMsgDecodeFailedFmt, actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf(LogMsgDecodedFmt, actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn(LogMsgValidationFailed, "action", actionName, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// PlayerID returns the acting player from the X-Player-ID header.
// When the header is missing it writes a 401 and returns false.
func PlayerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := strings.TrimSpace(r.Header.Get(HeaderPlayerID))
	if id == "" {
		logger.FromContext(r.Context()).Warn(LogMsgMissingPlayerID, "path", r.URL.Path)
		respondError(w, http.StatusUnauthorized, ErrMsgMissingPlayerID)
		return "", false
	}
	return id, true
}

// pathID returns the {id} route parameter or writes a 400.
func pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, ParamID)
	if id == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingPathParam, ParamID))
		return "", false
	}
	return id, true
}

// withPlayer scopes the request context logger to the acting player
func withPlayer(r *http.Request, playerID string) *http.Request {
	return r.WithContext(logger.WithPlayerID(r.Context(), playerID))
}
