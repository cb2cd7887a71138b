package rules

import (
	"strings"

	"github.com/ledgerkit/ledgerkit/ast"
)

// Action is effectful, applied in order; each observes the prior effects of
// its sibling actions within the same All (§4.2).
type Action interface {
	Apply(ctx *EvalContext) error
}

// SetAccount overwrites the posting's account.
type SetAccount struct {
	Name string
}

func (a SetAccount) Apply(ctx *EvalContext) error {
	ctx.Posting.SetAccount(a.Name)
	return nil
}

// AddPostingFlagTag adds a flag tag to the posting. Idempotent.
type AddPostingFlagTag struct {
	Name string
}

func (a AddPostingFlagTag) Apply(ctx *EvalContext) error {
	ctx.Posting.AddFlagTag(a.Name)
	return nil
}

// RemovePostingFlagTag removes a flag tag from the posting. Idempotent.
type RemovePostingFlagTag struct {
	Name string
}

func (a RemovePostingFlagTag) Apply(ctx *EvalContext) error {
	ctx.Posting.RemoveFlagTag(a.Name)
	return nil
}

// AddPostingValueTag sets a value tag on the posting.
type AddPostingValueTag struct {
	Name  string
	Value string
}

func (a AddPostingValueTag) Apply(ctx *EvalContext) error {
	ctx.Posting.SetValueTag(a.Name, a.Value)
	return nil
}

// RemovePostingValueTag removes a value tag from the posting. Removing a
// fingerprint (fp-*) tag is permitted but logged as a warning (§4.2 errors).
type RemovePostingValueTag struct {
	Name string
}

func (a RemovePostingValueTag) Apply(ctx *EvalContext) error {
	if strings.HasPrefix(a.Name, ast.FingerprintPrefix) {
		ctx.warnf("removing fingerprint tag %q from rules", a.Name)
	}
	ctx.Posting.RemoveValueTag(a.Name)
	return nil
}

// SetTransactionDescription overwrites the parent transaction's
// description. Not named by the base spec's posting-centric action list,
// but a natural counterpart to SetAccount for rule programs that also want
// to normalize the transaction header.
type SetTransactionDescription struct {
	Value string
}

func (a SetTransactionDescription) Apply(ctx *EvalContext) error {
	ctx.Transaction.Description = a.Value
	return nil
}

// AddTransactionFlagTag adds a transaction-level tag. Idempotent (tags are
// a set at the transaction level, §3).
type AddTransactionFlagTag struct {
	Name string
}

func (a AddTransactionFlagTag) Apply(ctx *EvalContext) error {
	ctx.Transaction.AddTag(a.Name)
	return nil
}

// RemoveTransactionFlagTag removes a transaction-level tag.
type RemoveTransactionFlagTag struct {
	Name string
}

func (a RemoveTransactionFlagTag) Apply(ctx *EvalContext) error {
	ctx.Transaction.RemoveTagNamed(a.Name)
	return nil
}

// All is sequential composition: each action observes the mutations of the
// ones before it. An empty All is a no-op (§4.2).
type All struct {
	Actions []Action
}

func (a All) Apply(ctx *EvalContext) error {
	for _, sub := range a.Actions {
		if err := sub.Apply(ctx); err != nil {
			return err
		}
	}
	return nil
}

// JumpChain transfers control to the named chain (§4.2 flow). It is only
// meaningful as a Rule's direct Action — the interpreter intercepts it
// before generic dispatch to push/pop the jump stack. A rule program that
// nests JumpChain inside an All is rejected at load time (see Program
// validation) rather than given ambiguous mid-sequence-jump semantics.
type JumpChain struct {
	Chain string
}

// Apply is never called in a well-formed program: the interpreter handles
// JumpChain specially at the top of its dispatch loop.
func (a JumpChain) Apply(*EvalContext) error {
	return nil
}
