// Package csvimport turns raw spreadsheet text into committed expenses
// through a strictly forward-moving pipeline: Upload -> Map -> Preview ->
// Commit, with a reset edge back to Upload from any step. Every row is
// validated independently; commit tolerates per-row failures.
package csvimport

import (
	"errors"
	"strings"
)

// Delimiter is a detected CSV field separator.
type Delimiter rune

const (
	DelimiterComma     Delimiter = ','
	DelimiterSemicolon Delimiter = ';'
	DelimiterTab       Delimiter = '\t'
)

// ErrNoHeader is the fatal parse error: the first row yielded no headers.
var ErrNoHeader = errors.New("no header row detected: the first row must contain column names")

// Parsed is the result of parsing tabular text: a required header row plus
// data records keyed by header name.
type Parsed struct {
	Delimiter Delimiter
	Headers   []string
	Records   []map[string]string
}

// DetectDelimiter inspects the first non-empty line and picks the separator
// by frequency. Tabs win when present at all, then commas, then semicolons:
// a tab-separated export often contains commas inside values, never the
// other way around.
func DetectDelimiter(text string) Delimiter {
	var firstLine string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			firstLine = line
			break
		}
	}

	commas := strings.Count(firstLine, ",")
	semis := strings.Count(firstLine, ";")
	tabs := strings.Count(firstLine, "\t")

	if tabs > 0 && tabs >= commas && tabs >= semis {
		return DelimiterTab
	}
	if commas >= semis {
		return DelimiterComma
	}
	return DelimiterSemicolon
}

// parseRows scans text into row slices with quote-aware handling: quoted
// fields may contain the delimiter and newlines, and a doubled quote inside
// a quoted field is an escaped quote. Rows whose cells are all blank are
// dropped.
func parseRows(text string, delimiter Delimiter) [][]string {
	var rows [][]string
	var row []string
	var field strings.Builder
	inQuotes := false

	pushField := func() {
		row = append(row, field.String())
		field.Reset()
	}
	pushRow := func() {
		allEmpty := true
		for _, c := range row {
			if strings.TrimSpace(c) != "" {
				allEmpty = false
				break
			}
		}
		if len(row) > 0 && !allEmpty {
			rows = append(rows, row)
		}
		row = nil
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		if inQuotes {
			if ch == '"' {
				if i+1 < len(runes) && runes[i+1] == '"' {
					field.WriteRune('"')
					i++
					continue
				}
				inQuotes = false
				continue
			}
			field.WriteRune(ch)
			continue
		}

		switch {
		case ch == '"':
			inQuotes = true
		case ch == rune(delimiter):
			pushField()
		case ch == '\n' || ch == '\r':
			pushField()
			pushRow()
			if ch == '\r' && i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
		default:
			field.WriteRune(ch)
		}
	}
	pushField()
	pushRow()

	return rows
}

// Parse detects the delimiter and parses text into headers and records.
// Returns ErrNoHeader when no header row can be found.
func Parse(text string) (*Parsed, error) {
	delimiter := DetectDelimiter(text)
	allRows := parseRows(text, delimiter)
	if len(allRows) == 0 {
		return nil, ErrNoHeader
	}

	headers := make([]string, 0, len(allRows[0]))
	for _, h := range allRows[0] {
		headers = append(headers, strings.TrimSpace(h))
	}
	nonEmpty := 0
	for _, h := range headers {
		if h != "" {
			nonEmpty++
		}
	}
	if nonEmpty == 0 {
		return nil, ErrNoHeader
	}

	records := make([]map[string]string, 0, len(allRows)-1)
	for _, r := range allRows[1:] {
		rec := make(map[string]string, len(headers))
		for idx, h := range headers {
			if h == "" {
				continue
			}
			if idx < len(r) {
				rec[h] = strings.TrimSpace(r[idx])
			} else {
				rec[h] = ""
			}
		}
		records = append(records, rec)
	}

	return &Parsed{Delimiter: delimiter, Headers: headers, Records: records}, nil
}
