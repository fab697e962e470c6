package lock

import "time"

// Lease is proof of holding a named lock until it expires or is released
type Lease struct {
	Name  string
	Token string
}

type AcquireInput struct {
	Name string
	TTL  time.Duration
}

type ReleaseInput struct {
	Lease *Lease
}
