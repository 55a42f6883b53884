package api

import (
	"encoding/json"
	"net/http"
	"time"

	"skyward/aerodrome/internal/common"
	"skyward/aerodrome/internal/constants"
	"skyward/aerodrome/internal/logging"
	"skyward/aerodrome/internal/models/dtos"
)

func responseTime(init time.Time) string {
	return time.Since(init).Round(time.Millisecond).String()
}

func respondSuccess(w http.ResponseWriter, statusCode int, initTime time.Time, message string, data any) {
	resp := dtos.APIResponse{
		Status:       string(constants.APIStatusOk),
		Message:      message,
		ResponseTime: responseTime(initTime),
		Data:         data,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

// respondError maps the error taxonomy onto HTTP statuses: validation
// failures are 400 with field detail, seat conflicts 409, missing
// resources 404, permission failures 403, anything else 500.
func respondError(w http.ResponseWriter, initTime time.Time, err error) {
	resp := dtos.APIResponse{
		Status:       string(constants.APIStatusError),
		ResponseTime: responseTime(initTime),
	}
	statusCode := http.StatusInternalServerError

	if ve, ok := common.AsValidationError(err); ok {
		statusCode = http.StatusBadRequest
		resp.Message = "Validation failed"
		resp.Errors = ve.Fields
	} else if ce, ok := common.AsConflictError(err); ok {
		statusCode = http.StatusConflict
		resp.Message = ce.Error()
		resp.Data = ce
	} else if _, ok := common.AsNotFoundError(err); ok {
		statusCode = http.StatusNotFound
		resp.Message = err.Error()
	} else if _, ok := common.AsPermissionError(err); ok {
		statusCode = http.StatusForbidden
		resp.Message = err.Error()
	} else {
		resp.Message = "Internal server error"
		logging.Error("request failed", "error", err.Error())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return common.NewValidationError().Add("body", "request body must be valid JSON")
	}
	return nil
}
