package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MillisTime is a time.Time that (un)marshals as a millisecond Unix epoch.
// Cobalt instances report their start time as a string of milliseconds,
// so both quoted and bare numbers are accepted.
type MillisTime time.Time

// Time returns the underlying time.Time.
func (m MillisTime) Time() time.Time {
	return time.Time(m)
}

// MarshalJSON implements json.Marshaler interface
func (m MillisTime) MarshalJSON() ([]byte, error) {
	millis := time.Time(m).UnixMilli()
	return []byte(`"` + strconv.FormatInt(millis, 10) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler interface
func (m *MillisTime) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), `"`)
	millis, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid millisecond timestamp %q: %w", str, err)
	}
	*m = MillisTime(time.UnixMilli(millis))
	return nil
}

// InstanceInfo describes a running cobalt instance
type InstanceInfo struct {
	Version       string     `json:"version"`       // Instance version, e.g. "10.5.1"
	URL           string     `json:"url"`           // Public URL of the instance
	StartTime     MillisTime `json:"startTime"`     // When the instance was started
	DurationLimit int64      `json:"durationLimit"` // Maximum media duration in seconds
	Services      []string   `json:"services"`      // Supported source services, e.g. "youtube", "twitter"
}

// GitInfo carries the source-control metadata an instance was built from
type GitInfo struct {
	Commit string `json:"commit"`
	Branch string `json:"branch"`
	Remote string `json:"remote"`
}

// ServerInfo is the response of a GET against the instance root
type ServerInfo struct {
	Cobalt InstanceInfo `json:"cobalt"`
	Git    GitInfo      `json:"git"`
}
