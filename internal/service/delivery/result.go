package delivery

// Outcome reports what happened to one send. Sent is true when the transport
// accepted the message or the fallback path ran.
type Outcome struct {
	Sent         bool
	UsedFallback bool
	// Err is the transport failure when Sent is false.
	Err error
}

// Reason is a short human-readable description of a failed send.
func (o Outcome) Reason() string {
	if o.Sent || o.Err == nil {
		return ""
	}
	return "email could not be delivered"
}
