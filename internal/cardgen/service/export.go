package service

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/allisson/cardgen/internal/cardgen/domain"
)

// WriteRecords writes one record per number as
// "<line>|<number>|<MM>|<YYYY>|<CVV>", where line is the 1-based position
// zero-padded to seven digits. Records are separated by a newline and the last
// record has no trailing newline.
func WriteRecords(w io.Writer, numbers []string, meta domain.CardMetadata) error {
	bw := bufio.NewWriter(w)
	for i, number := range numbers {
		if i > 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(bw, "%0*d%s%s%s%s%s%s%s%s",
			domain.LineNumberWidth, i+1,
			domain.FieldSeparator, number,
			domain.FieldSeparator, meta.ExpiryMonth,
			domain.FieldSeparator, meta.ExpiryYear,
			domain.FieldSeparator, meta.CVV,
		); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// RenderRecords returns the export file contents for numbers.
func RenderRecords(numbers []string, meta domain.CardMetadata) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteRecords(&buf, numbers, meta); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MaskNumber keeps the first six and last four digits and masks the rest.
// Numbers of ten digits or fewer are masked entirely.
func MaskNumber(number string) string {
	if len(number) <= 10 {
		return strings.Repeat("*", len(number))
	}
	return number[:6] + strings.Repeat("*", len(number)-10) + number[len(number)-4:]
}
