package dto

// Response is the envelope every endpoint returns:
// { success, message?, data?, error?, count? }.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

// OK wraps data in a success envelope.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// OKMessage wraps data in a success envelope with a message.
func OKMessage(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// OKList wraps a listing in a success envelope with its count.
func OKList(data any, count int) Response {
	return Response{Success: true, Data: data, Count: &count}
}

// Fail builds a failure envelope with a caller-facing message.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

// FailErr builds a failure envelope carrying the underlying error detail.
func FailErr(message string, err error) Response {
	r := Response{Success: false, Message: message}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}
