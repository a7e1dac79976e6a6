package service

import "time"

// Clock supplies the current moment for time-relative rules. Production
// wiring passes time.Now; tests pass a fixed instant.
type Clock func() time.Time
