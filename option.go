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

// Option is a functional option for constructing a Response. It always takes
// a Response and returns a (possibly new) Response.
type Option func(Response) Response

// WithHeaderOption appends one header pair on construction.
// Intended to be used with New(...) and Text(...).
func WithHeaderOption(name, value string) Option {
	return func(r Response) Response {
		return r.WithHeader(name, value)
	}
}
