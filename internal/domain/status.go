package domain

// Status is the order lifecycle vocabulary.
//
// There is deliberately no transition graph: any recognized status may follow
// any other, including moving backward or setting the same value again, so an
// operator can correct mistakes freely.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

var statuses = map[Status]bool{
	StatusPending:   true,
	StatusConfirmed: true,
	StatusPreparing: true,
	StatusReady:     true,
	StatusDelivered: true,
	StatusCancelled: true,
}

// ParseStatus converts a raw string into a Status, rejecting anything
// outside the six recognized values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !statuses[st] {
		return "", ValidationError{Field: "status", Message: "invalid status"}
	}
	return st, nil
}
