package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform response shape shared by every endpoint.
type Envelope struct {
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
	Status  int         `json:"status"`
}

func RenderSuccess(rw http.ResponseWriter, data interface{}, message string, status int) {
	render(rw, Envelope{Data: data, Message: message, Status: status}, status)
}

func RenderError(rw http.ResponseWriter, msg string, status int) {
	render(rw, Envelope{Message: msg, Status: status}, status)
}

func RenderUnauthorized(rw http.ResponseWriter) {
	RenderError(rw, "invalid authentication token", http.StatusUnauthorized)
}

func RenderInternalError(rw http.ResponseWriter) {
	RenderError(rw, "internal error", http.StatusInternalServerError)
}

func RenderValidationError(rw http.ResponseWriter, err error) {
	render(
		rw,
		Envelope{Data: err, Message: "invalid request data", Status: http.StatusBadRequest},
		http.StatusBadRequest,
	)
}

func render(rw http.ResponseWriter, res interface{}, status int) {
	rw.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(content)
}
