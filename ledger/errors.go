package ledger

import "fmt"

// DuplicateFingerprintError is a fingerprint-integrity error (§7): two
// distinct postings within one journal carry the same fingerprint tag
// value. This is discovered at index build time (§4.1 invariant).
type DuplicateFingerprintError struct {
	Name   string // fingerprint tag name, e.g. "fp-nwcsv6.1.checking"
	Value  string // the colliding fingerprint value
	First  Handle
	Second Handle
}

func (e *DuplicateFingerprintError) Error() string {
	return fmt.Sprintf("fingerprint %s=%s is not unique: held by posting %v and posting %v",
		e.Name, e.Value, e.First, e.Second)
}
