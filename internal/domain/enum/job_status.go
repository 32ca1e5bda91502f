package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// JobStatus tracks a service job through its lifecycle.
type JobStatus int

const (
	JobStatusRequested  JobStatus = 0
	JobStatusScheduled  JobStatus = 1
	JobStatusInProgress JobStatus = 2
	JobStatusCompleted  JobStatus = 3
	JobStatusCancelled  JobStatus = 4
)

func (s JobStatus) String() string {
	names := [...]string{"requested", "scheduled", "in_progress", "completed", "cancelled"}
	if int(s) < 0 || int(s) >= len(names) {
		return "requested"
	}
	return names[s]
}

// ParseJobStatus converts a wire string into a JobStatus.
func ParseJobStatus(s string) (JobStatus, bool) {
	switch s {
	case "requested":
		return JobStatusRequested, true
	case "scheduled":
		return JobStatusScheduled, true
	case "in_progress":
		return JobStatusInProgress, true
	case "completed":
		return JobStatusCompleted, true
	case "cancelled":
		return JobStatusCancelled, true
	}
	return JobStatusRequested, false
}

func (s JobStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *JobStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = JobStatus(i)
		return nil
	}
	if parsed, ok := ParseJobStatus(str); ok {
		*s = parsed
	}
	return nil
}

func (s JobStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *JobStatus) Scan(value interface{}) error {
	if value == nil {
		*s = JobStatusRequested
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = JobStatus(v)
	case int:
		*s = JobStatus(v)
	}
	return nil
}
