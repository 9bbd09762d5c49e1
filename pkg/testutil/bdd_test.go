package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScenarioNames(t *testing.T) {
	var got string
	Given(t, "an open form", func(t *testing.T) {
		When(t, "the answer is submitted", func(t *testing.T) {
			Then(t, "it is stored", func(t *testing.T) {
				got = t.Name()
			})
		})
	})
	assert.Equal(t, "TestScenarioNames/Given_an_open_form/When_the_answer_is_submitted/Then_it_is_stored", got)
}
