package domain

import "time"

// PrepareStamp marks a build directory as successfully prepared. It is
// written after the prepare stage completes and consulted on later runs to
// decide whether prepare can be skipped. The fingerprint covers every input
// of the prepare stage, so a configuration change invalidates the stamp
// even though the build directory still exists.
type PrepareStamp struct {
	Fingerprint string    `json:"fingerprint"`
	CreatedAt   time.Time `json:"created_at"`
}
