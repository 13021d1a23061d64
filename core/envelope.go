package core

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Envelope is the response wrapper returned by externally triggered entry
// points (the orchestrator and the inventory store worker). Body is a
// JSON-encoded document: a JSON string for plain message results, a JSON
// object for structured results.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// NewEnvelope JSON-encodes result into the envelope body. Encoding failures
// degrade to a 500 envelope rather than an error; entry points never fault
// past their boundary.
func NewEnvelope(statusCode int, result any) Envelope {
	b, err := json.Marshal(result)
	if err != nil {
		return Envelope{
			StatusCode: http.StatusInternalServerError,
			Body:       fmt.Sprintf("%q", "Error: failed to encode response"),
		}
	}
	return Envelope{StatusCode: statusCode, Body: string(b)}
}

// OK wraps result in a 200 envelope.
func OK(result any) Envelope {
	return NewEnvelope(http.StatusOK, result)
}

// BadRequest wraps an error object in a 400 envelope.
func BadRequest(msg string) Envelope {
	return NewEnvelope(http.StatusBadRequest, map[string]string{"error": msg})
}

// ServerError wraps an error object in a 500 envelope.
func ServerError(msg string) Envelope {
	return NewEnvelope(http.StatusInternalServerError, map[string]string{"error": msg})
}

// DecodeBody unmarshals the envelope body into v.
func (e Envelope) DecodeBody(v any) error {
	return json.Unmarshal([]byte(e.Body), v)
}

// Payload converts the envelope into a payload so it can travel back through
// the invoker like any other worker response.
func (e Envelope) Payload() Payload {
	return Payload{"statusCode": e.StatusCode, "body": e.Body}
}

// EnvelopeFromPayload reconstructs an envelope from a payload produced by
// Envelope.Payload (or by a remote worker speaking the same convention).
// The second return reports whether the payload had the envelope shape.
func EnvelopeFromPayload(p Payload) (Envelope, bool) {
	body, ok := p["body"].(string)
	if !ok {
		return Envelope{}, false
	}
	switch sc := p["statusCode"].(type) {
	case int:
		return Envelope{StatusCode: sc, Body: body}, true
	case float64:
		return Envelope{StatusCode: int(sc), Body: body}, true
	default:
		return Envelope{}, false
	}
}
