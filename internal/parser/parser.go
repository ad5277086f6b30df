// Package parser splits raw commit messages into subject and body.
package parser

import (
	"strings"

	"github.com/commitgate/commitgate/domain"
)

// Parse splits a raw commit message into a subject line and body lines.
//
// The first line is the subject, trimmed of trailing whitespace. The body is
// every line strictly after the first blank line (blank after trimming),
// with blank lines inside the body preserved. A message without a blank-line
// separator yields an empty body: lines directly after the subject are
// treated as an informal subject continuation and ignored. That is a known
// limitation of the blank-line convention, not something Parse tries to
// outsmart.
//
// Parse is total: it never fails, even for an empty message.
func Parse(raw string) domain.ParsedMessage {
	lines := splitLines(raw)
	if len(lines) == 0 {
		return domain.ParsedMessage{}
	}

	msg := domain.ParsedMessage{
		Subject: strings.TrimRight(lines[0], " \t"),
	}

	// Find the first fully blank line after the subject.
	sep := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			sep = i
			break
		}
	}
	if sep == -1 || sep == len(lines)-1 {
		return msg
	}

	// Trailing blank lines (including the artifact of a final newline)
	// carry no content and are dropped; blanks inside the body stay.
	body := lines[sep+1:]
	for len(body) > 0 && strings.TrimSpace(body[len(body)-1]) == "" {
		body = body[:len(body)-1]
	}
	if len(body) > 0 {
		msg.BodyLines = body
	}
	return msg
}

// splitLines splits on line breaks regardless of line-ending convention
func splitLines(raw string) []string {
	if raw == "" {
		return nil
	}
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	return strings.Split(normalized, "\n")
}
