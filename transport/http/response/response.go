package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"tudu/shared/constant"
	"tudu/shared/failure"
	"tudu/shared/logger"
)

// Error is the body of every non-2xx response.
type Error struct {
	Detail string `json:"detail"`
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, jsonPayload)
}

// WithNoContent sends an empty response with the given status code
func WithNoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// WithError sends the message of the innermost Failure; anything else is reported as a bare 500
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	detail := http.StatusText(http.StatusInternalServerError)

	var fail *failure.Failure
	if errors.As(err, &fail) && code != http.StatusInternalServerError {
		detail = fail.Message
	}

	response(writer, code, Error{Detail: detail})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	response(writer, http.StatusTooManyRequests, Error{Detail: constant.ResponseErrorRequestLimitExceeded})
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
