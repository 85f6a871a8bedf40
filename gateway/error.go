package gateway

import "fmt"

// Error is the single normalized shape every failed call comes back
// with. Status is 0 when no response was received (transport failure).
type Error struct {
	Status  int
	Message string
	Err     error // underlying transport/decode error, nil for server errors
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("gateway: %d: %s", e.Status, e.Message)
	}
	return "gateway: " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func transportMessage(err error) string {
	if err == nil || err.Error() == "" {
		return "Unknown error"
	}
	return err.Error()
}
