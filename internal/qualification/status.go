package qualification

import (
	"database/sql/driver"
	"fmt"
)

// Status is the decision state of a camp participation.
type Status uint8

const (
	None Status = iota
	Accepted
	Rejected
	Cancelled
)

// Historical one-character storage codes. None is stored as NULL.
const (
	codeAccepted  = "X"
	codeRejected  = "O"
	codeCancelled = "Z"
)

var statusNames = [...]string{
	None:      "none",
	Accepted:  "accepted",
	Rejected:  "rejected",
	Cancelled: "cancelled",
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// Decided reports whether a decision has been made for the participation.
func (s Status) Decided() bool {
	return s != None
}

// ParseStatus converts an API name ("none", "accepted", ...) into a Status.
// The empty string is accepted as None.
func ParseStatus(name string) (Status, error) {
	if name == "" {
		return None, nil
	}
	for i, n := range statusNames {
		if n == name {
			return Status(i), nil
		}
	}
	return None, fmt.Errorf("unknown qualification status %q", name)
}

// Code returns the storage code of the status; ok is false for None.
func (s Status) Code() (code string, ok bool) {
	switch s {
	case Accepted:
		return codeAccepted, true
	case Rejected:
		return codeRejected, true
	case Cancelled:
		return codeCancelled, true
	}
	return "", false
}

func statusFromCode(code string) (Status, error) {
	switch code {
	case "":
		return None, nil
	case codeAccepted:
		return Accepted, nil
	case codeRejected:
		return Rejected, nil
	case codeCancelled:
		return Cancelled, nil
	}
	return None, fmt.Errorf("unknown qualification status code %q", code)
}

// Value implements driver.Valuer.
func (s Status) Value() (driver.Value, error) {
	if code, ok := s.Code(); ok {
		return code, nil
	}
	if s != None {
		return nil, fmt.Errorf("cannot store %v", s)
	}
	return nil, nil
}

// Scan implements sql.Scanner.
func (s *Status) Scan(src any) error {
	var (
		st  Status
		err error
	)
	switch v := src.(type) {
	case nil:
		st = None
	case string:
		st, err = statusFromCode(v)
	case []byte:
		st, err = statusFromCode(string(v))
	default:
		err = fmt.Errorf("cannot scan %T into qualification status", src)
	}
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// GormDataType keeps the column a single character wide.
func (Status) GormDataType() string {
	return "varchar(1)"
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name.
func (s *Status) UnmarshalText(text []byte) error {
	st, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = st
	return nil
}
