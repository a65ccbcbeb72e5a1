package errors

// ErrorCode identifies a class of application error in responses and logs.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK ErrorCode = 200

	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003

	ErrorCode_AI_ANALYSIS_FAILED     ErrorCode = 2000
	ErrorCode_AI_SERVICE_UNAVAILABLE ErrorCode = 2001
	ErrorCode_MISSING_PITCH_INPUT    ErrorCode = 2002
)

var errorCodeName = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                "HTTP_OK",
	ErrorCode_INTERNAL:               "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:       "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:              "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:        "INVALID_PAYLOAD",
	ErrorCode_AI_ANALYSIS_FAILED:     "AI_ANALYSIS_FAILED",
	ErrorCode_AI_SERVICE_UNAVAILABLE: "AI_SERVICE_UNAVAILABLE",
	ErrorCode_MISSING_PITCH_INPUT:    "MISSING_PITCH_INPUT",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := errorCodeName[c]; ok {
		return name
	}
	return "UNKNOWN"
}
