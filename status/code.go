/*
   Copyright 2026 The errproto Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package status

import (
	"encoding"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Code is the canonical, validated representation of an HTTP status code.
//
// It is defined as a separate type (not just int) so that other packages can
// explicitly declare which values they expect and to avoid accidental mixing
// of raw, unchecked integers with resolved values.
//
// A Code is only ever produced by a successful coercion (Parse or Resolve);
// code that holds a Code may rely on it being inside the valid range.
type Code int

// MinCode and MaxCode define the allowed range for a status code.
//
// The range follows the HTTP convention: informational (1xx) through server
// error (5xx). Values outside this range are rejected by Parse and make
// Resolve panic.
const (
	// MinCode is the lowest valid status code (100 Continue).
	MinCode = 100

	// MaxCode is the highest valid status code. 599 is the conventional
	// upper bound; no registered status exceeds it.
	MaxCode = 599
)

var (
	// ErrInvalid is returned when a value cannot be validated as an HTTP
	// status code.
	//
	// Having a dedicated sentinel error makes it easy for callers and tests
	// to detect "this is about the status range" vs some other error.
	ErrInvalid = errors.New("status: invalid status code")
)

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Parse validates a raw integer and returns the canonical Code value.
//
// This is the single fallible coercion shared by every entry point of the
// library; Resolve is its panic-on-error variant.
func Parse(i int) (Code, error) {
	if err := validate(i); err != nil {
		return 0, err
	}
	return Code(i), nil
}

// Resolve coerces any integer-backed code-like value into a Code.
//
// It accepts a raw int, a net/http status constant, or a Code itself.
// Invalid input is a programmer error, not a runtime condition: Resolve
// panics instead of returning an error. Combinators call Resolve once at
// construction time, so a broken default code fails immediately rather than
// lazily at request time.
func Resolve[C ~int](c C) Code {
	code, err := Parse(int(c))
	if err != nil {
		panic(err)
	}
	return code
}

// Validate checks whether the provided Code is inside the valid range.
func Validate(c Code) error {
	return validate(int(c))
}

// Int returns the numeric value of the code.
func (c Code) Int() int {
	return int(c)
}

// Phrase returns the canonical reason phrase for the code, e.g. "Not Found"
// for 404. It returns the empty string when the code has no registered
// phrase.
func (c Code) Phrase() string {
	return http.StatusText(int(c))
}

// String returns the status line text: the numeric code followed by its
// canonical reason phrase, e.g. "404 Not Found". For codes without a
// registered phrase only the number is returned.
func (c Code) String() string {
	p := c.Phrase()
	if p == "" {
		return strconv.Itoa(int(c))
	}
	return strconv.Itoa(int(c)) + " " + p
}

// MarshalText implements encoding.TextMarshaler.
//
// It emits the numeric form ("404") and refuses to marshal an invalid Code.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(strconv.Itoa(int(c))), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It parses and validates the numeric text before assigning.
func (c *Code) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	i, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	parsed, err := Parse(i)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// validate is a helper that checks whether an integer is a valid status code.
func validate(i int) error {
	if i < MinCode || i > MaxCode {
		return fmt.Errorf("%w: %d", ErrInvalid, i)
	}
	return nil
}
