package cli

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/forecounter/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// userMessage turns an error into the one-line text printed on stderr.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindNotFound:
			if strings.HasPrefix(oe.Op, "query.") {
				return "No value matches the expression"
			}
			return "Not found"

		case domain.KindInvalidConfig:
			if strings.HasPrefix(oe.Op, "query.") {
				return "Invalid JSONPath expression"
			}
			if strings.Contains(strings.ToLower(err.Error()), "unknown store backend") {
				return "Unknown store backend (expected file|bolt|sqlite|memory)"
			}

			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			line := extractLine(err.Error())
			if line != "" {
				return "Invalid YAML at " + base + " line " + line
			}

			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			if oe.Err != nil {
				return "Invalid config: " + oe.Err.Error()
			}
			return "Invalid config"

		case domain.KindCorruptData:
			return "Stored round is unreadable (run `forecounter clear`)"

		case domain.KindStorage:
			if strings.TrimSpace(oe.Path) != "" {
				return "Storage error at " + oe.Path + " (see logs)"
			}
			return "Storage error (see logs)"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if looksLikeYAMLProblem(err.Error()) {
		line := extractLine(err.Error())
		if line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return err.Error()
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
