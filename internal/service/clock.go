package service

import "time"

// now is truncated to microseconds, the precision Postgres keeps, so timestamps handed
// back to callers equal what a later read returns.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
