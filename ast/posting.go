package ast

// Posting is one leg of a double-entry Transaction: an account, an optional
// amount (elided for the balancing posting), an optional balance assertion,
// a free-text comment, and an ordered bag of tags (§3). A Posting's lifetime
// equals its parent Transaction's.
type Posting struct {
	Pos     Position
	account string
	Amount  *Amount
	Balance *Amount
	Comment string
	tags    []Tag
}

// NewPosting constructs a Posting for the given account. Amount and Balance
// are left nil (elided / no assertion) and can be set afterward.
func NewPosting(account string) *Posting {
	return &Posting{account: account}
}

// Account returns the posting's account name.
func (p *Posting) Account() string { return p.account }

// SetAccount overwrites the posting's account name.
func (p *Posting) SetAccount(account string) { p.account = account }

// Tags returns the posting's tags in bag order. The returned slice must not
// be mutated by the caller; use the Add/Remove/Set methods instead.
func (p *Posting) Tags() []Tag { return p.tags }

// HasFlagTag reports whether the named flag tag is present.
func (p *Posting) HasFlagTag(name string) bool {
	for _, t := range p.tags {
		if t.IsFlag() && t.Name == name {
			return true
		}
	}
	return false
}

// AddFlagTag adds a flag tag. Idempotent: adding an already-present flag tag
// is a no-op.
func (p *Posting) AddFlagTag(name string) {
	if p.HasFlagTag(name) {
		return
	}
	p.tags = append(p.tags, Flag(name))
}

// RemoveFlagTag removes a flag tag. Idempotent: removing an absent flag tag
// is a no-op.
func (p *Posting) RemoveFlagTag(name string) {
	for i, t := range p.tags {
		if t.IsFlag() && t.Name == name {
			p.tags = append(p.tags[:i], p.tags[i+1:]...)
			return
		}
	}
}

// ValueTag returns the value of the named value tag, and whether it is
// present. A posting may carry at most one value for a given name.
func (p *Posting) ValueTag(name string) (string, bool) {
	for _, t := range p.tags {
		if !t.IsFlag() && t.Name == name {
			return *t.Value, true
		}
	}
	return "", false
}

// SetValueTag adds a value tag, overwriting any existing value for the same
// name (preserving its position in the bag).
func (p *Posting) SetValueTag(name, value string) {
	for i, t := range p.tags {
		if !t.IsFlag() && t.Name == name {
			p.tags[i] = ValueTag(name, value)
			return
		}
	}
	p.tags = append(p.tags, ValueTag(name, value))
}

// RemoveValueTag removes the named value tag, if present.
func (p *Posting) RemoveValueTag(name string) {
	for i, t := range p.tags {
		if !t.IsFlag() && t.Name == name {
			p.tags = append(p.tags[:i], p.tags[i+1:]...)
			return
		}
	}
}

// Fingerprints returns the set of value-tag entries whose name starts with
// the reserved fp- prefix (§4.1).
func (p *Posting) Fingerprints() []Tag {
	var out []Tag
	for _, t := range p.tags {
		if t.IsFingerprint() {
			out = append(out, t)
		}
	}
	return out
}

// Clone returns a deep copy of the posting: a new tag slice and copied
// Amount/Balance pointers, so that mutating the clone never affects the
// original (§9 posting-copy-semantics design note).
func (p *Posting) Clone() *Posting {
	clone := &Posting{
		Pos:     p.Pos,
		account: p.account,
		Comment: p.Comment,
	}
	if p.Amount != nil {
		a := *p.Amount
		clone.Amount = &a
	}
	if p.Balance != nil {
		b := *p.Balance
		clone.Balance = &b
	}
	if len(p.tags) > 0 {
		clone.tags = make([]Tag, len(p.tags))
		copy(clone.tags, p.tags)
	}
	return clone
}
