// Package parse converts flat key=value and key=value:effect command
// line tokens into the structured forms the nodepool API expects.
package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jimdaga/gcp-hcp-cli/internal/api"
)

// ErrInvalidFormat is wrapped by all parse failures, carrying the
// offending token in the message.
var ErrInvalidFormat = errors.New("invalid format")

// Labels parses key=value tokens into a map. Values may themselves
// contain '='; the split happens on the first occurrence. Duplicate
// keys are last-write-wins.
func Labels(tokens []string) (map[string]string, error) {
	labels := make(map[string]string, len(tokens))
	for _, token := range tokens {
		key, value, ok := strings.Cut(token, "=")
		if !ok {
			return nil, fmt.Errorf("%w: label %q, expected 'key=value'", ErrInvalidFormat, token)
		}
		labels[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return labels, nil
}

// Taints parses key=value:effect tokens, preserving order. The effect
// is split off at the last ':', so values may contain colons.
func Taints(tokens []string) ([]api.Taint, error) {
	taints := make([]api.Taint, 0, len(tokens))
	for _, token := range tokens {
		idx := strings.LastIndex(token, ":")
		if idx < 0 || !strings.Contains(token, "=") {
			return nil, fmt.Errorf("%w: taint %q, expected 'key=value:effect'", ErrInvalidFormat, token)
		}
		keyValue, effect := token[:idx], token[idx+1:]
		key, value, ok := strings.Cut(keyValue, "=")
		if !ok {
			return nil, fmt.Errorf("%w: taint %q, expected 'key=value:effect'", ErrInvalidFormat, token)
		}
		taints = append(taints, api.Taint{
			Key:    strings.TrimSpace(key),
			Value:  strings.TrimSpace(value),
			Effect: strings.TrimSpace(effect),
		})
	}
	return taints, nil
}
