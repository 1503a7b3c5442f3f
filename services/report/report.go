// Package report renders records and aggregates as PDF or JSON artifacts.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// Report kinds used in filenames.
const (
	KindUnitAudit       = "UnitAudit"
	KindStaffEvaluation = "StaffEvaluation"
	KindBranchReport    = "StaffReport"
	KindAuditSummary    = "AuditSummary"
)

// Formats accepted by the export endpoints.
const (
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

func filenamePart(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return '_'
		case r == '/' || r == '\\':
			return '-'
		}
		return r
	}, s)
	if s == "" {
		return "unknown"
	}
	return s
}

// Filename builds "{branch}_{kind}_{date}.{ext}". Whitespace becomes "_"
// and path separators "-", so DD/MM/YYYY dates stay in the name.
func Filename(branch, kind, date, ext string) string {
	return fmt.Sprintf("%s_%s_%s.%s", filenamePart(branch), kind, filenamePart(date), ext)
}

// RangeLabel is the date part of a filename for a range report.
func RangeLabel(from, to string) string {
	switch {
	case from == "" && to == "":
		return "all"
	case from == "":
		return "until_" + to
	case to == "":
		return "from_" + from
	}
	return from + "_to_" + to
}

// JSON renders v as indented JSON.
func JSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
