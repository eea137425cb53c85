package factom

import "fmt"

/*
ApiError is the error payload of a JSON-RPC response envelope. Code 0 is
reserved to mean "not an error": a successful response carries a zero
ApiError.
*/
type ApiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

/*
Implements "error". Note that the library always returns an ApiError as data
on the ApiResponse, never as the call error; this exists so callers can
promote it to one when that suits their control flow.
*/
func (self ApiError) Error() string {
	return fmt.Sprintf("factom: jsonrpc error %v: %v", self.Code, self.Message)
}

/*
ApiResponse is the decoded response envelope of a method whose result shape is
T. Exactly one of Result/Error is meaningful: when the daemon accepted the
request, Result holds the decoded payload and Error is zero; when it
declined, Error holds the daemon's code and message and Result is the zero T.

An ApiResponse with a populated Error still represents a COMPLETED call: the
exchange worked, the daemon answered, it just said no. Some of those refusals
are routine: re-sending an entry commit yields a "repeated commit" error
that callers are expected to branch on and move past. Transport and decoding
failures surface as Go errors from the call instead, so callers must inspect
both levels.
*/
type ApiResponse[T any] struct {
	Jsonrpc string
	Id      uint32
	Result  T
	Error   ApiError
}

// Success reports whether the daemon accepted the request.
func (self ApiResponse[T]) Success() bool { return self.Error.Code == 0 }

// Inverse of "Success".
func (self ApiResponse[T]) IsErr() bool { return self.Error.Code != 0 }
