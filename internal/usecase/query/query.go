package query

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/gval"
	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/forecounter/internal/domain"
)

// lang is JSONPath on top of gval's full language, so filters like
// [?(@.strokes > 4)] get comparison and logic operators.
var lang = gval.Full(jsonpath.PlaceholderExtension())

// Evaluate runs a JSONPath expression against the persisted layout of round
// (holes[].holeNumber, holes[].strokes, startedAt) and renders the match as text.
//
// Policy:
// - Scalars are printed as-is; a single-element array is unwrapped.
// - Other arrays and objects are printed as compact JSON.
// - An empty or missing match is an error.
func Evaluate(round domain.Round, expr string) (string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", invalid(expr, fmt.Errorf("empty jsonpath expression"))
	}

	doc, err := toDocument(round)
	if err != nil {
		return "", &domain.OpError{
			Op:   "query.encode",
			Kind: domain.KindCorruptData,
			Err:  err,
		}
	}

	eval, err := lang.NewEvaluable(expr)
	if err != nil {
		return "", invalid(expr, fmt.Errorf("jsonpath error: %w", err))
	}

	val, err := eval(context.Background(), doc)
	if err != nil {
		return "", invalid(expr, fmt.Errorf("jsonpath error: %w", err))
	}

	if isEmptyValue(val) {
		return "", &domain.OpError{
			Op:   "query.evaluate",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("%s: no value found: %w", expr, domain.ErrNotFound),
		}
	}

	return toString(val)
}

func toDocument(round domain.Round) (any, error) {
	b, err := json.Marshal(round)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func invalid(expr string, err error) error {
	return &domain.OpError{
		Op:   "query.evaluate",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("%q: %w: %w", expr, domain.ErrInvalidConfig, err),
	}
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func toString(v any) (string, error) {
	// Common case: jsonpath returns a slice with 1 element
	if arr, ok := v.([]any); ok {
		if len(arr) == 1 {
			return toString(arr[0])
		}
		b, err := json.Marshal(arr)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case float64, bool, int, int64, uint64:
		return fmt.Sprint(t), nil
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
