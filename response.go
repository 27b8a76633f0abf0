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

import "github.com/axionbuster/errproto/status"

// Header is a single header (name, value) pair carried by a Response.
//
// Headers are kept as an ordered slice rather than a map: insertion order is
// preserved and duplicate names are allowed, exactly as HTTP permits
// (Set-Cookie being the usual case).
type Header struct {
	Name  string
	Value string
}

// Response is the value a Transformer produces for one failure.
//
// It carries:
//   - Status: the resolved status code (required);
//   - Header: ordered header pairs, duplicates allowed;
//   - Body: raw body bytes.
//
// A Response is constructed once per request-handling outcome and is owned
// solely by the caller that returns it to the HTTP layer. The library never
// mutates a Response after construction; WithHeader returns a shallow copy,
// so Response values can be shared and extended in a functional style.
type Response struct {
	// Status is the status code of the response. It is always a resolved,
	// valid code when the Response was produced by this library.
	Status status.Code

	// Header holds the response headers in insertion order. It may be nil
	// when no headers were set.
	Header []Header

	// Body holds the raw response body. The library treats it as opaque
	// bytes; serialization to the wire belongs to the transport adapters.
	Body []byte
}

// New constructs a Response with the given code and body and applies all
// provided options in order.
func New(code status.Code, body []byte, opts ...Option) Response {
	r := Response{Status: code, Body: body}
	for _, opt := range opts {
		r = opt(r)
	}
	return r
}

// Text is a convenience constructor for plain-text bodies.
func Text(code status.Code, body string, opts ...Option) Response {
	return New(code, []byte(body), opts...)
}

// WithHeader returns a shallow copy of r with one header pair appended.
// The original Response is not modified.
//
// The header slice is always copied so that two responses derived from the
// same value never alias each other's headers.
func (r Response) WithHeader(name, value string) Response {
	cp := r
	h := make([]Header, len(r.Header), len(r.Header)+1)
	copy(h, r.Header)
	cp.Header = append(h, Header{Name: name, Value: value})
	return cp
}
