package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAnswer_CanonicalValues(t *testing.T) {
	assert.Equal(t, AnswerAlwaysAvailable, NormalizeAnswer("Always available"))
	assert.Equal(t, AnswerConditional, NormalizeAnswer("Specific dates"))
	assert.Equal(t, AnswerDeclined, NormalizeAnswer("Declined"))
	assert.Equal(t, AnswerNoResponse, NormalizeAnswer("No response"))
}

func TestNormalizeAnswer_LegacyFreeText(t *testing.T) {
	tests := []struct {
		text string
		want Answer
	}{
		{"I have to decline this time", AnswerDeclined},
		{"unable to join", AnswerDeclined},
		{"無理/辞退", AnswerDeclined},
		{"only specific days work", AnswerConditional},
		{"日にち指定", AnswerConditional},
		{"always fine", AnswerAlwaysAvailable},
		{"any day works for me", AnswerAlwaysAvailable},
		{"いつでも", AnswerAlwaysAvailable},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeAnswer(tt.text), "text %q", tt.text)
	}
}

func TestNormalizeAnswer_UnknownOrEmpty(t *testing.T) {
	assert.Equal(t, AnswerNoResponse, NormalizeAnswer(""))
	assert.Equal(t, AnswerNoResponse, NormalizeAnswer("   "))
	assert.Equal(t, AnswerNoResponse, NormalizeAnswer("maybe?"))
}

func TestAnswerIsValid(t *testing.T) {
	assert.True(t, AnswerAlwaysAvailable.IsValid())
	assert.True(t, AnswerNoResponse.IsValid())
	assert.False(t, Answer("yes").IsValid())
	assert.False(t, Answer("").IsValid())
}
