// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package pattern compiles the user-supplied search options into content and
// extension matchers.
package pattern

import (
	"regexp"

	"gitlab.com/tozd/go/errors"
)

var (
	// 🚫 ErrBadPattern indicates the content pattern could not be compiled
	ErrBadPattern = errors.New("invalid search pattern")
)

// 🎯 Content is a compiled matcher over whole-file text
type Content struct {
	re *regexp.Regexp
}

// 🏭 BuildContent builds the content matcher from the regexp/case/term settings.
// A non-empty regexpArg is authoritative and is compiled verbatim; term and
// caseFlag are ignored. Otherwise term is compiled with a (?i) prefix unless
// caseFlag is exactly "y" or "Y" (anything else, "yes" included, stays
// case-insensitive).
func BuildContent(regexpArg, caseFlag, term string) (*Content, error) {
	if regexpArg != "" {
		re, err := regexp.Compile(regexpArg)
		if err != nil {
			return nil, errors.Errorf("%w: problem regexp %q into regex: %s", ErrBadPattern, regexpArg, err)
		}
		return &Content{re: re}, nil
	}

	expr := term
	if caseFlag != "y" && caseFlag != "Y" {
		expr = "(?i)" + term
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Errorf("%w: problem parsing term %q and case %q into regex: %s", ErrBadPattern, term, caseFlag, err)
	}
	return &Content{re: re}, nil
}

// 🔍 Match reports whether the pattern matches anywhere in content
func (c *Content) Match(content []byte) bool {
	return c.re.Match(content)
}

// 📝 String returns the compiled expression
func (c *Content) String() string {
	return c.re.String()
}
