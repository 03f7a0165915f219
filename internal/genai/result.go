package genai

import "fmt"

// Result is the normalized outcome of a successful floor rendering call:
// exactly one of the inline payload or the remote URL is populated.
type Result struct {
	MIMEType   string
	Base64Data string
	RemoteURL  string
}

// Inline reports whether the result carries inline base64 image data.
func (r *Result) Inline() bool {
	return r != nil && r.Base64Data != ""
}

// ErrorKind tags the failure modes of the external API so callers can treat
// the heterogeneous response shapes as one closed set.
type ErrorKind int

const (
	ErrorKindConfig ErrorKind = iota
	ErrorKindTransport
	ErrorKindHTTP
	ErrorKindBlocked
	ErrorKindMalformed
	ErrorKindEmpty
	ErrorKindNoImage
)

// Error is an upstream generation failure. Detail is shown to the end user
// as-is; the bracketed model identifier lets an operator pin down which model
// misbehaved. Config failures carry no model prefix since the model itself may
// be what is missing.
type Error struct {
	Kind   ErrorKind
	Model  string
	Detail string
}

func (e *Error) Error() string {
	if e.Kind == ErrorKindConfig || e.Model == "" {
		return e.Detail
	}
	return fmt.Sprintf("[%s] %s", e.Model, e.Detail)
}

func (c *Client) errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Model: c.model, Detail: fmt.Sprintf(format, args...)}
}
