package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

const (
	msgInternalError = "внутренняя ошибка сервера"
	maxBodyBytes     = 1 << 20
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// DecodeJSON декодирует тело запроса, неизвестные поля запрещены
// Пустое тело не считается ошибкой
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return nil
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError пишет ошибку в формате {"error": "..."}
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondBadRequest 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondUnauthorized 401
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

// RespondForbidden 403
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

// RespondNotFound 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict 409
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondUnprocessable 422
func RespondUnprocessable(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnprocessableEntity, message)
}

// RespondInternalError 500 без деталей ошибки
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}
