package enums

import "fmt"

// FetchStatus tracks the lifecycle of an asynchronous catalog retrieval.
type FetchStatus string

const (
	FetchStatusIdle      FetchStatus = "idle"
	FetchStatusLoading   FetchStatus = "loading"
	FetchStatusSucceeded FetchStatus = "succeeded"
	FetchStatusFailed    FetchStatus = "failed"
)

var validFetchStatuses = []FetchStatus{
	FetchStatusIdle,
	FetchStatusLoading,
	FetchStatusSucceeded,
	FetchStatusFailed,
}

// String implements fmt.Stringer.
func (f FetchStatus) String() string {
	return string(f)
}

// IsValid reports whether the value is a known FetchStatus.
func (f FetchStatus) IsValid() bool {
	for _, candidate := range validFetchStatuses {
		if candidate == f {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status ends a fetch attempt. A retry
// re-enters loading from either terminal state; nothing returns to idle.
func (f FetchStatus) IsTerminal() bool {
	return f == FetchStatusSucceeded || f == FetchStatusFailed
}

// ParseFetchStatus converts raw input into a FetchStatus.
func ParseFetchStatus(value string) (FetchStatus, error) {
	for _, candidate := range validFetchStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid fetch status %q", value)
}
