package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/cardgen/internal/cardgen/domain"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRenderRecords(t *testing.T) {
	meta := domain.CardMetadata{ExpiryMonth: "12", ExpiryYear: "2030", CVV: "123"}

	tests := []struct {
		name     string
		numbers  []string
		expected string
	}{
		{
			name:     "Success_SingleRecord",
			numbers:  []string{"4658610000000003"},
			expected: "0000001|4658610000000003|12|2030|123",
		},
		{
			name:    "Success_NoTrailingNewline",
			numbers: []string{"4658610000000003", "4111111111111111", "0000000000000000"},
			expected: "0000001|4658610000000003|12|2030|123\n" +
				"0000002|4111111111111111|12|2030|123\n" +
				"0000003|0000000000000000|12|2030|123",
		},
		{
			name:     "Success_Empty",
			numbers:  nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, err := RenderRecords(tt.numbers, meta)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(content))
		})
	}
}

func TestRenderRecords_LineNumbering(t *testing.T) {
	numbers := make([]string, 12)
	for i := range numbers {
		numbers[i] = "4111111111111111"
	}

	content, err := RenderRecords(numbers, domain.CardMetadata{ExpiryMonth: "01", ExpiryYear: "2031", CVV: "999"})
	require.NoError(t, err)

	lines := strings.Split(string(content), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "0000010|4111111111111111|01|2031|999", lines[9])
	assert.Equal(t, "0000012|4111111111111111|01|2031|999", lines[11])
	for _, line := range lines {
		assert.Len(t, strings.Split(line, domain.FieldSeparator), 5)
	}
}

func TestWriteRecords_WriterError(t *testing.T) {
	err := WriteRecords(failingWriter{}, []string{"4111111111111111"}, domain.CardMetadata{})
	assert.EqualError(t, err, "disk full")
}

func TestMaskNumber(t *testing.T) {
	tests := []struct {
		name     string
		number   string
		expected string
	}{
		{name: "Card", number: "4658610000000003", expected: "465861******0003"},
		{name: "Amex", number: "378282246310005", expected: "378282*****0005"},
		{name: "Short", number: "1234567890", expected: "**********"},
		{name: "Empty", number: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaskNumber(tt.number))
		})
	}
}
