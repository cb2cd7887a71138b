// Package ruleprogram loads a rule program (§6.3) from a YAML document:
// chain name -> ordered list of {when, do, then} rules. It is the only
// place in the module that knows the YAML shape — it builds a
// rules.Program via rules.NewProgram, so chain-graph validation (missing
// "start", undefined jump targets, nested JumpChain) lives in one place.
package ruleprogram

import (
	"fmt"

	"github.com/ledgerkit/ledgerkit/rules"
)

// matchSpec is the small string-match sublanguage (§4.2): exactly one of Eq
// or Regex must be set.
type matchSpec struct {
	Eq    *string `yaml:"eq,omitempty"`
	Regex *string `yaml:"regex,omitempty"`
}

func (m matchSpec) toStrMatch() (rules.StrMatch, error) {
	switch {
	case m.Eq != nil && m.Regex == nil:
		return rules.Eq{S: *m.Eq}, nil
	case m.Regex != nil && m.Eq == nil:
		return rules.NewRegex(*m.Regex)
	default:
		return nil, fmt.Errorf("match must set exactly one of eq, regex")
	}
}

// predicateSpec is a tagged union over rules.Predicate, one YAML key per
// variant. Exactly one field may be set per node.
type predicateSpec struct {
	True                 *bool            `yaml:"true,omitempty"`
	Account              *matchSpec       `yaml:"account,omitempty"`
	TransactionDesc      *matchSpec       `yaml:"transaction_description,omitempty"`
	PostingHasValueTag   *string          `yaml:"posting_has_value_tag,omitempty"`
	PostingValueTag      *valueTagSpec    `yaml:"posting_value_tag,omitempty"`
	PostingHasFlagTag    *string          `yaml:"posting_has_flag_tag,omitempty"`
	PostingHasAnyFlagTag *bool            `yaml:"posting_has_any_flag_tag,omitempty"`
	Not                  *predicateSpec   `yaml:"not,omitempty"`
	All                  []*predicateSpec `yaml:"all,omitempty"`
	Any                  []*predicateSpec `yaml:"any,omitempty"`
}

type valueTagSpec struct {
	Name  string    `yaml:"name"`
	Match matchSpec `yaml:"match"`
}

func (s *predicateSpec) toPredicate() (rules.Predicate, error) {
	set := 0
	var result rules.Predicate
	var err error

	if s.True != nil {
		set++
		result = rules.True{}
	}
	if s.Account != nil {
		set++
		var m rules.StrMatch
		if m, err = s.Account.toStrMatch(); err != nil {
			return nil, err
		}
		result = rules.Account{Match: m}
	}
	if s.TransactionDesc != nil {
		set++
		var m rules.StrMatch
		if m, err = s.TransactionDesc.toStrMatch(); err != nil {
			return nil, err
		}
		result = rules.TransactionDescription{Match: m}
	}
	if s.PostingHasValueTag != nil {
		set++
		result = rules.PostingHasValueTag{Name: *s.PostingHasValueTag}
	}
	if s.PostingValueTag != nil {
		set++
		var m rules.StrMatch
		if m, err = s.PostingValueTag.Match.toStrMatch(); err != nil {
			return nil, err
		}
		result = rules.PostingValueTag{Name: s.PostingValueTag.Name, Match: m}
	}
	if s.PostingHasFlagTag != nil {
		set++
		result = rules.PostingHasFlagTag{Name: *s.PostingHasFlagTag}
	}
	if s.PostingHasAnyFlagTag != nil {
		set++
		result = rules.PostingHasAnyFlagTag{}
	}
	if s.Not != nil {
		set++
		sub, err := s.Not.toPredicate()
		if err != nil {
			return nil, err
		}
		result = rules.Not{Predicate: sub}
	}
	if len(s.All) > 0 {
		set++
		subs, err := toPredicates(s.All)
		if err != nil {
			return nil, err
		}
		result = rules.AllOf{Predicates: subs}
	}
	if len(s.Any) > 0 {
		set++
		subs, err := toPredicates(s.Any)
		if err != nil {
			return nil, err
		}
		result = rules.Any{Predicates: subs}
	}

	if set != 1 {
		return nil, fmt.Errorf("predicate node must set exactly one variant, got %d", set)
	}
	return result, nil
}

func toPredicates(specs []*predicateSpec) ([]rules.Predicate, error) {
	out := make([]rules.Predicate, len(specs))
	for i, s := range specs {
		p, err := s.toPredicate()
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = p
	}
	return out, nil
}

// actionSpec is a tagged union over rules.Action.
type actionSpec struct {
	SetAccount                *string         `yaml:"set_account,omitempty"`
	AddPostingFlagTag         *string         `yaml:"add_posting_flag_tag,omitempty"`
	RemovePostingFlagTag      *string         `yaml:"remove_posting_flag_tag,omitempty"`
	AddPostingValueTag        *tagValueSpec   `yaml:"add_posting_value_tag,omitempty"`
	RemovePostingValueTag     *string         `yaml:"remove_posting_value_tag,omitempty"`
	SetTransactionDescription *string         `yaml:"set_transaction_description,omitempty"`
	AddTransactionFlagTag     *string         `yaml:"add_transaction_flag_tag,omitempty"`
	RemoveTransactionFlagTag  *string         `yaml:"remove_transaction_flag_tag,omitempty"`
	Jump                      *string         `yaml:"jump,omitempty"`
}

type tagValueSpec struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

func (s *actionSpec) toAction() (rules.Action, error) {
	set := 0
	var result rules.Action

	if s.SetAccount != nil {
		set++
		result = rules.SetAccount{Name: *s.SetAccount}
	}
	if s.AddPostingFlagTag != nil {
		set++
		result = rules.AddPostingFlagTag{Name: *s.AddPostingFlagTag}
	}
	if s.RemovePostingFlagTag != nil {
		set++
		result = rules.RemovePostingFlagTag{Name: *s.RemovePostingFlagTag}
	}
	if s.AddPostingValueTag != nil {
		set++
		result = rules.AddPostingValueTag{Name: s.AddPostingValueTag.Name, Value: s.AddPostingValueTag.Value}
	}
	if s.RemovePostingValueTag != nil {
		set++
		result = rules.RemovePostingValueTag{Name: *s.RemovePostingValueTag}
	}
	if s.SetTransactionDescription != nil {
		set++
		result = rules.SetTransactionDescription{Value: *s.SetTransactionDescription}
	}
	if s.AddTransactionFlagTag != nil {
		set++
		result = rules.AddTransactionFlagTag{Name: *s.AddTransactionFlagTag}
	}
	if s.RemoveTransactionFlagTag != nil {
		set++
		result = rules.RemoveTransactionFlagTag{Name: *s.RemoveTransactionFlagTag}
	}
	if s.Jump != nil {
		set++
		result = rules.JumpChain{Chain: *s.Jump}
	}

	if set != 1 {
		return nil, fmt.Errorf("action node must set exactly one variant, got %d", set)
	}
	return result, nil
}

func toAction(specs []actionSpec) (rules.Action, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("rule must have at least one action in 'do'")
	}
	actions := make([]rules.Action, len(specs))
	for i := range specs {
		a, err := specs[i].toAction()
		if err != nil {
			return nil, fmt.Errorf("do[%d]: %w", i, err)
		}
		actions[i] = a
	}
	if len(actions) == 1 {
		return actions[0], nil
	}
	return rules.All{Actions: actions}, nil
}

// ruleSpec is one entry in a chain's rule list.
type ruleSpec struct {
	When predicateSpec `yaml:"when"`
	Do   []actionSpec  `yaml:"do"`
	Then string        `yaml:"then,omitempty"`
}

func (s *ruleSpec) toRule() (rules.Rule, error) {
	pred, err := s.When.toPredicate()
	if err != nil {
		return rules.Rule{}, fmt.Errorf("when: %w", err)
	}
	action, err := toAction(s.Do)
	if err != nil {
		return rules.Rule{}, err
	}
	flow, err := parseFlow(s.Then)
	if err != nil {
		return rules.Rule{}, err
	}
	return rules.Rule{Predicate: pred, Action: action, Flow: flow}, nil
}

func parseFlow(then string) (rules.FlowResult, error) {
	switch then {
	case "", "continue":
		return rules.Continue, nil
	case "return":
		return rules.Return, nil
	default:
		return 0, fmt.Errorf("then: unknown flow result %q, want \"continue\" or \"return\"", then)
	}
}
