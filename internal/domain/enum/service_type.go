package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ServiceType says how the technician delivers the service.
type ServiceType int

const (
	ServiceTypeOnsite ServiceType = 0
	ServiceTypeRemote ServiceType = 1
	ServiceTypePhone  ServiceType = 2
)

func (t ServiceType) String() string {
	names := [...]string{"onsite", "remote", "phone"}
	if int(t) < 0 || int(t) >= len(names) {
		return "onsite"
	}
	return names[t]
}

// ParseServiceType converts a wire string into a ServiceType.
func ParseServiceType(s string) (ServiceType, bool) {
	switch s {
	case "onsite":
		return ServiceTypeOnsite, true
	case "remote":
		return ServiceTypeRemote, true
	case "phone":
		return ServiceTypePhone, true
	}
	return ServiceTypeOnsite, false
}

func (t ServiceType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *ServiceType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = ServiceType(i)
		return nil
	}
	if parsed, ok := ParseServiceType(str); ok {
		*t = parsed
	}
	return nil
}

func (t ServiceType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *ServiceType) Scan(value interface{}) error {
	if value == nil {
		*t = ServiceTypeOnsite
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = ServiceType(v)
	case int:
		*t = ServiceType(v)
	}
	return nil
}
