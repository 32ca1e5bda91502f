package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// UserType identifies which side of the marketplace an account belongs to.
type UserType int

const (
	UserTypeCustomer        UserType = 0
	UserTypeServiceProvider UserType = 1
	UserTypeAdmin           UserType = 2
)

func (t UserType) String() string {
	names := [...]string{"customer", "service_provider", "admin"}
	if int(t) < 0 || int(t) >= len(names) {
		return "customer"
	}
	return names[t]
}

// IsValid reports whether the value is one of the known user types.
func (t UserType) IsValid() bool {
	return t >= UserTypeCustomer && t <= UserTypeAdmin
}

// ParseUserType converts a wire string into a UserType.
func ParseUserType(s string) (UserType, bool) {
	switch s {
	case "customer":
		return UserTypeCustomer, true
	case "service_provider":
		return UserTypeServiceProvider, true
	case "admin":
		return UserTypeAdmin, true
	}
	return UserTypeCustomer, false
}

func (t UserType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *UserType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = UserType(i)
		return nil
	}
	if parsed, ok := ParseUserType(str); ok {
		*t = parsed
	}
	return nil
}

func (t UserType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *UserType) Scan(value interface{}) error {
	if value == nil {
		*t = UserTypeCustomer
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = UserType(v)
	case int:
		*t = UserType(v)
	}
	return nil
}
