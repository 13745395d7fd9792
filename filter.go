// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

import (
	"fmt"
	"path"
	"strings"

	"github.com/woozymasta/pathrules"
)

// NormalizePath converts an installer destination path to normalized
// slash-separated form. It trims spaces, accepts both "/" and "\", removes
// leading "./" and "/", and cleans "." segments. Constant references like
// "{app}" are kept as path segments.
func NormalizePath(raw string) string {
	raw = normalizePathForMatching(raw)
	raw = strings.TrimPrefix(raw, "/")
	raw = path.Clean("/" + raw)
	raw = strings.TrimPrefix(raw, "/")
	if raw == "." {
		return ""
	}

	return strings.TrimSuffix(raw, "/")
}

// normalizePathForMatching normalizes user/input paths for matcher use.
func normalizePathForMatching(path string) string {
	path = strings.TrimSpace(path)
	path = strings.ReplaceAll(path, `\`, `/`)
	path = strings.TrimPrefix(path, "./")

	return path
}

// FilterFiles keeps file entries whose destination path matches the given
// rules. Matching is case-insensitive over normalized slash-separated paths;
// rules default to exclude when no pattern matches.
func (r *Reader) FilterFiles(rules []pathrules.Rule) ([]File, error) {
	return r.FilterFilesWithOptions(rules, pathrules.MatcherOptions{
		CaseInsensitive: true,
		DefaultAction:   pathrules.ActionExclude,
	})
}

// FilterFilesWithOptions keeps file entries whose destination path matches
// the given rules using explicit matcher options.
func (r *Reader) FilterFilesWithOptions(rules []pathrules.Rule, opts pathrules.MatcherOptions) ([]File, error) {
	normalized := make([]pathrules.Rule, 0, len(rules))
	for _, rule := range rules {
		rule.Pattern = normalizePathForMatching(rule.Pattern)
		if rule.Pattern == "" {
			continue
		}
		normalized = append(normalized, rule)
	}

	if len(normalized) == 0 {
		return r.Files(), nil
	}

	matcher, err := pathrules.NewMatcher(normalized, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: compile rules: %w", ErrInvalidFilterPattern, err)
	}

	files := r.setup.Files
	out := make([]File, 0, len(files))
	for _, f := range files {
		if matcher.Included(NormalizePath(f.Destination), false) {
			out = append(out, f)
		}
	}

	return out, nil
}
