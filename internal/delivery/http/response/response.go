package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"sionlog-blog-service/internal/custom_errors"
)

type Payload struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload Payload) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// Error maps the service error taxonomy onto HTTP statuses. Internal detail
// stays in the logs; clients get a generic message per class.
func Error(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, custom_errors.ErrUnauthenticated):
		JSON(w, http.StatusUnauthorized, Payload{Success: false, Code: "unauthenticated", Message: "authentication required"})
	case errors.Is(err, custom_errors.ErrNicknameRequired):
		JSON(w, http.StatusConflict, Payload{Success: false, Code: "nickname_required", Message: "set a nickname before posting"})
	case errors.Is(err, custom_errors.ErrForbidden):
		JSON(w, http.StatusForbidden, Payload{Success: false, Code: "forbidden", Message: "you do not have permission for this post"})
	case errors.Is(err, custom_errors.ErrNicknameEmpty),
		errors.Is(err, custom_errors.ErrValidation),
		errors.Is(err, custom_errors.ErrInvalidCategory):
		JSON(w, http.StatusBadRequest, Payload{Success: false, Code: "validation_failed", Message: err.Error()})
	case errors.Is(err, custom_errors.ErrPostNotFound),
		errors.Is(err, custom_errors.ErrProfileNotFound):
		JSON(w, http.StatusNotFound, Payload{Success: false, Code: "not_found", Message: err.Error()})
	case errors.Is(err, custom_errors.ErrImageUpload),
		errors.Is(err, custom_errors.ErrImageDelete):
		JSON(w, http.StatusBadGateway, Payload{Success: false, Code: "storage_unavailable", Message: "image storage is unavailable, try again"})
	default:
		JSON(w, http.StatusInternalServerError, Payload{Success: false, Code: "internal", Message: "something went wrong"})
	}
}
