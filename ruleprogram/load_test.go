package ruleprogram

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestLoad_ClassifiesAndJumps(t *testing.T) {
	src := `
start:
  - when:
      posting_has_flag_tag: unknown-account
    do:
      - jump: classify
classify:
  - when:
      transaction_description:
        eq: Tesco
    do:
      - set_account: expenses:groceries
      - remove_posting_flag_tag: unknown-account
    then: return
`
	program, err := Load(strings.NewReader(src))
	assert.NoError(t, err)
	assert.Equal(t, 2, len(program.Chains))
}

func TestLoad_MissingStartChainIsError(t *testing.T) {
	src := `
classify:
  - when:
      true: true
    do:
      - set_account: expenses:groceries
`
	_, err := Load(strings.NewReader(src))
	assert.Error(t, err)
}

func TestLoad_UndefinedJumpTargetIsError(t *testing.T) {
	src := `
start:
  - when:
      true: true
    do:
      - jump: nowhere
`
	_, err := Load(strings.NewReader(src))
	assert.Error(t, err)
}

func TestLoad_PredicateWithZeroVariantsIsError(t *testing.T) {
	src := `
start:
  - when: {}
    do:
      - set_account: expenses:groceries
`
	_, err := Load(strings.NewReader(src))
	assert.Error(t, err)
}

func TestLoad_AllPredicateCombinesSubPredicates(t *testing.T) {
	src := `
start:
  - when:
      all:
        - account:
            eq: expenses:unknown
        - posting_has_any_flag_tag: true
    do:
      - add_posting_value_tag:
          name: reviewed
          value: "yes"
    then: continue
`
	program, err := Load(strings.NewReader(src))
	assert.NoError(t, err)
	assert.Equal(t, 1, len(program.Chains["start"]))
}
