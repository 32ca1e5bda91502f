package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// TicketStatus tracks a support ticket through triage and resolution.
type TicketStatus int

const (
	TicketStatusOpen       TicketStatus = 0
	TicketStatusInProgress TicketStatus = 1
	TicketStatusResolved   TicketStatus = 2
	TicketStatusClosed     TicketStatus = 3
)

func (s TicketStatus) String() string {
	names := [...]string{"open", "in_progress", "resolved", "closed"}
	if int(s) < 0 || int(s) >= len(names) {
		return "open"
	}
	return names[s]
}

// ParseTicketStatus converts a wire string into a TicketStatus.
func ParseTicketStatus(s string) (TicketStatus, bool) {
	switch s {
	case "open":
		return TicketStatusOpen, true
	case "in_progress":
		return TicketStatusInProgress, true
	case "resolved":
		return TicketStatusResolved, true
	case "closed":
		return TicketStatusClosed, true
	}
	return TicketStatusOpen, false
}

func (s TicketStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *TicketStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = TicketStatus(i)
		return nil
	}
	if parsed, ok := ParseTicketStatus(str); ok {
		*s = parsed
	}
	return nil
}

func (s TicketStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *TicketStatus) Scan(value interface{}) error {
	if value == nil {
		*s = TicketStatusOpen
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = TicketStatus(v)
	case int:
		*s = TicketStatus(v)
	}
	return nil
}
