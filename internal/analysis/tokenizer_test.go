package analysis_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corpus-lab/lexstat/internal/analysis"
)

func TestTokenize(t *testing.T) {
	tokens := analysis.Tokenize("Hello hello WORLD! Hello?")
	assert.Equal(t, []string{"hello", "hello", "world", "hello"}, tokens)
}

func TestTokenizeKeepsDigitsAndShortWords(t *testing.T) {
	tokens := analysis.Tokenize("A cat; 2 cats!")
	assert.Equal(t, []string{"a", "cat", "2", "cats"}, tokens)
}

func TestTokenizeCyrillic(t *testing.T) {
	tokens := analysis.Tokenize("Мама мыла раму. МАМА!")
	assert.Equal(t, []string{"мама", "мыла", "раму", "мама"}, tokens)
}

func TestTokenizePunctuationOnly(t *testing.T) {
	assert.Empty(t, analysis.Tokenize("... !!! ???"))
}

func TestTokenizeEmpty(t *testing.T) {
	assert.Empty(t, analysis.Tokenize(""))
}

// Tokenizing the joined tokens of a text must reproduce the tokens:
// normalized input is a fixed point of the tokenizer.
func TestTokenizeIdempotent(t *testing.T) {
	inputs := []string{
		"Hello, World! This is a test.",
		"Сложный   текст; со знаками… препинания",
		"mixed ТЕКСТ with 123 numbers",
	}
	for _, input := range inputs {
		once := analysis.Tokenize(input)
		again := analysis.Tokenize(strings.Join(once, " "))
		assert.Equal(t, once, again, "input %q", input)
	}
}
