package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// BookingStatus tracks a live/phone support booking.
type BookingStatus int

const (
	BookingStatusPending   BookingStatus = 0
	BookingStatusConfirmed BookingStatus = 1
	BookingStatusCompleted BookingStatus = 2
	BookingStatusCancelled BookingStatus = 3
)

func (s BookingStatus) String() string {
	names := [...]string{"pending", "confirmed", "completed", "cancelled"}
	if int(s) < 0 || int(s) >= len(names) {
		return "pending"
	}
	return names[s]
}

// ParseBookingStatus converts a wire string into a BookingStatus.
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch s {
	case "pending":
		return BookingStatusPending, true
	case "confirmed":
		return BookingStatusConfirmed, true
	case "completed":
		return BookingStatusCompleted, true
	case "cancelled":
		return BookingStatusCancelled, true
	}
	return BookingStatusPending, false
}

func (s BookingStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *BookingStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = BookingStatus(i)
		return nil
	}
	if parsed, ok := ParseBookingStatus(str); ok {
		*s = parsed
	}
	return nil
}

func (s BookingStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *BookingStatus) Scan(value interface{}) error {
	if value == nil {
		*s = BookingStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = BookingStatus(v)
	case int:
		*s = BookingStatus(v)
	}
	return nil
}
