package core

// Status is the per-item tri-state marker. The zero value is StatusUnset;
// wire and storage forms omit unset entries entirely, so only the other two
// values ever cross a boundary.
type Status string

const (
	StatusUnset       Status = ""
	StatusShortlisted Status = "shortlisted"
	StatusPurchased   Status = "purchased"
)

// Valid reports whether s is one of the two storable statuses.
func (s Status) Valid() bool {
	return s == StatusShortlisted || s == StatusPurchased
}

// ParseStatus converts a wire value into a Status. The empty string maps to
// StatusUnset; anything else outside the two storable values is rejected.
func ParseStatus(v string) (Status, error) {
	switch Status(v) {
	case StatusUnset:
		return StatusUnset, nil
	case StatusShortlisted:
		return StatusShortlisted, nil
	case StatusPurchased:
		return StatusPurchased, nil
	default:
		return StatusUnset, ErrInvalidStatus
	}
}
