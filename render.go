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

package errproto

import (
	"fmt"

	"github.com/axionbuster/errproto/status"
)

// DefaultResponse is the generic renderer: it produces a plain-text body
// consisting of the numeric code and its canonical reason phrase, e.g.
// "404 Not Found". No headers are set.
//
// It is pure and always succeeds for a valid Code; calling it twice with the
// same code yields byte-identical output.
//
// Use it as the render argument of Catch. Because it discloses nothing about
// the failure, it is the safe default.
func DefaultResponse(code status.Code) Response {
	return Text(code, code.String())
}

// Transparent renders the failure's textual form as the response body with
// the given status code.
//
// The textual form is what fmt produces: the Error() message for errors, the
// String() output for fmt.Stringer implementations, the string itself for
// strings. Transparent never declines; it always returns ok=true.
//
// Use it as the handle argument of Catch when the desired behavior is
// "always show the failure". Do not use it for failures carrying sensitive
// internals — the text is disclosed verbatim.
func Transparent(code status.Code, failure any) (Response, bool) {
	return Text(code, fmt.Sprint(failure)), true
}
