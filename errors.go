package factom

/*
The three ways a call itself can fail. An error returned by the daemon inside
a well-formed envelope is NOT one of these; see "ApiError". Classify with
"errors.As"; all three unwrap to their cause.
*/

/*
TransportError: the HTTP exchange failed before a body was received: a
malformed configured URI, a connect failure, or a broken body read. Always
fatal to that call; never retried.
*/
type TransportError struct{ Err error }

func (self *TransportError) Error() string { return "factom: transport: " + self.Err.Error() }
func (self *TransportError) Unwrap() error { return self.Err }

/*
SerializationError: a parameter couldn't be encoded into the wire format.
Indicates a programming error in argument construction.
*/
type SerializationError struct{ Err error }

func (self *SerializationError) Error() string { return "factom: encode request: " + self.Err.Error() }
func (self *SerializationError) Unwrap() error { return self.Err }

/*
DeserializationError: the response body wasn't a well-formed JSON-RPC
envelope, or the result payload didn't match the method's declared result
shape. Indicates a protocol mismatch or a daemon malfunction.
*/
type DeserializationError struct{ Err error }

func (self *DeserializationError) Error() string { return "factom: decode response: " + self.Err.Error() }
func (self *DeserializationError) Unwrap() error { return self.Err }
