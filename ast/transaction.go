package ast

// Transaction is a dated, described set of Postings (§3). Posting order
// within a transaction is stable across merge unless a posting is
// explicitly removed; transaction-level tags are a set; the date is
// immutable once set.
type Transaction struct {
	Pos         Position
	date        Date
	Description string
	Code        string
	tags        []string
	Postings    []*Posting
}

// NewTransaction constructs a Transaction with an immutable date.
func NewTransaction(date Date, description string) *Transaction {
	return &Transaction{date: date, Description: description}
}

// Date returns the transaction's date.
func (t *Transaction) Date() Date { return t.date }

// AppendPosting appends a posting to the transaction, preserving order.
func (t *Transaction) AppendPosting(p *Posting) {
	t.Postings = append(t.Postings, p)
}

// Tags returns the transaction's tag set in insertion order.
func (t *Transaction) Tags() []string { return t.tags }

// HasTag reports whether the named transaction-level tag is present.
func (t *Transaction) HasTag(name string) bool {
	for _, name2 := range t.tags {
		if name2 == name {
			return true
		}
	}
	return false
}

// AddTag adds a transaction-level tag. Idempotent: a set, not a bag.
func (t *Transaction) AddTag(name string) {
	if t.HasTag(name) {
		return
	}
	t.tags = append(t.tags, name)
}

// RemoveTag removes the tag at the given index in Tags().
func (t *Transaction) RemoveTag(i int) {
	t.tags = append(t.tags[:i], t.tags[i+1:]...)
}

// RemoveTagNamed removes the named transaction-level tag, if present.
func (t *Transaction) RemoveTagNamed(name string) {
	for i, n := range t.tags {
		if n == name {
			t.RemoveTag(i)
			return
		}
	}
}

// Clone returns a copy of the transaction's header (Pos, date, Description,
// Code, tags) with Postings left empty — the merge engine uses it to
// allocate a fresh destination transaction from a source transaction's
// header before appending merged postings to it one at a time.
func (t *Transaction) Clone() *Transaction {
	clone := &Transaction{
		Pos:         t.Pos,
		date:        t.date,
		Description: t.Description,
		Code:        t.Code,
	}
	if len(t.tags) > 0 {
		clone.tags = append([]string(nil), t.tags...)
	}
	return clone
}
