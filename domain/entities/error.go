package entities

// ErrorDetail is the structured form of an error crossing the SDK
// boundary.
//
// Error Types: "argument", "io", "script", "sequence", "manifest", "internal"
type ErrorDetail struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code,omitempty"`
}

// Error implements the error interface so an ErrorDetail can travel
// through standard error wrapping.
func (e *ErrorDetail) Error() string {
	return e.Message
}
