package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentStatus reflects whether a completed job has been paid for.
type PaymentStatus int

const (
	PaymentStatusPaid    PaymentStatus = 0
	PaymentStatusPending PaymentStatus = 1
	PaymentStatusFailed  PaymentStatus = 2
)

func (s PaymentStatus) String() string {
	names := [...]string{"paid", "pending", "failed"}
	if int(s) < 0 || int(s) >= len(names) {
		return "pending"
	}
	return names[s]
}

// ParsePaymentStatus converts a wire string into a PaymentStatus.
func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	switch s {
	case "paid":
		return PaymentStatusPaid, true
	case "pending":
		return PaymentStatusPending, true
	case "failed":
		return PaymentStatusFailed, true
	}
	return PaymentStatusPending, false
}

func (s PaymentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PaymentStatus(i)
		return nil
	}
	if parsed, ok := ParsePaymentStatus(str); ok {
		*s = parsed
	}
	return nil
}

func (s PaymentStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PaymentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PaymentStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PaymentStatus(v)
	case int:
		*s = PaymentStatus(v)
	}
	return nil
}
