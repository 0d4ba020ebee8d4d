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

package pattern

import (
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 📏 MaxExtensions is the largest number of extension tokens accepted
const MaxExtensions = 25

var (
	// 🚫 ErrTooManyExtensions indicates more than MaxExtensions tokens were supplied
	ErrTooManyExtensions = errors.New("surpassed 25 extensions")

	// 🚫 ErrInvalidExtension indicates a constructed suffix pattern failed to compile
	ErrInvalidExtension = errors.New("invalid extension filter")
)

// 📦 ExtensionSet holds compiled filename-suffix matchers, one per extension token
type ExtensionSet struct {
	patterns []*regexp.Regexp
}

// 🏭 BuildExtensions compiles the comma-separated extension list into an
// ExtensionSet. Each token becomes a case-insensitive end-anchored suffix
// pattern against the base name, e.g. "txt" -> `(?i)\.txt$`. A token that
// already starts with a dot is not given an extra one. The whole build fails
// on overflow or on any token that does not compile; no partial set is
// returned.
func BuildExtensions(list string) (*ExtensionSet, error) {
	// split into one more token than allowed so overflow is detectable
	tokens := strings.SplitN(list, ",", MaxExtensions+1)
	if len(tokens) > MaxExtensions {
		return nil, errors.Errorf("%w: got %d tokens", ErrTooManyExtensions, len(tokens))
	}

	patterns := make([]*regexp.Regexp, 0, len(tokens))
	for _, token := range tokens {
		var expr string
		if strings.HasPrefix(token, ".") {
			expr = `(?i)\` + token + `$`
		} else {
			expr = `(?i)\.` + token + `$`
		}

		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, errors.Errorf("%w: failed to accept extension %s", ErrInvalidExtension, expr)
		}
		patterns = append(patterns, re)
	}

	return &ExtensionSet{patterns: patterns}, nil
}

// 🔍 Match reports whether the file base name matches any extension pattern
func (s *ExtensionSet) Match(name string) bool {
	for _, re := range s.patterns {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// 📏 Len returns the number of compiled matchers
func (s *ExtensionSet) Len() int {
	return len(s.patterns)
}
