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

// Handler is a caller-supplied function that may turn a failure into a
// complete custom Response.
//
// It receives the resolved default status code and the failure value. It may
// return ok=false to decline, in which case the Transformer falls through to
// its default renderer. Declining is not an error — it is an expected,
// first-class outcome.
//
// A Handler MAY return a Response whose status differs from the code it was
// given; responsibility for that status lies with the Handler, and the
// combinator returns the Response verbatim, never validating or overwriting
// it.
type Handler[E any] func(code status.Code, failure E) (Response, bool)

// Renderer produces the fallback Response for a status code when the Handler
// declines. It must always succeed.
type Renderer func(code status.Code) Response

// Transformer converts one failure value into one Response.
//
// It is a small immutable value holding a resolved default code, an optional
// custom Handler, and a fallback Renderer. A Transformer is stateless: each
// Apply call is independent, and concurrent use needs no synchronization.
//
// Build Transformers with Catch, Stop, or TransparentStop.
type Transformer[E any] struct {
	code   status.Code
	handle Handler[E]
	render Renderer
}

// Catch builds the general-purpose failure Transformer.
//
// code is any status-code-coercible value (a raw int, a net/http constant,
// or a status.Code). It is resolved once, eagerly, here: an invalid code
// panics at construction time, not at request time.
//
// handle may be nil, which means "always decline". When non-nil it is
// invoked first, unconditionally, for every failure; if it produces a
// Response, that Response is returned verbatim.
//
// render is invoked only when handle declines. A nil render falls back to
// DefaultResponse.
//
// NOTE: when handle produces the Response, it is the handler's
// responsibility to set the status code. The code given to Catch is only the
// default used when the custom Response is NOT produced.
func Catch[E any, C ~int](code C, handle Handler[E], render Renderer) Transformer[E] {
	if render == nil {
		render = DefaultResponse
	}
	return Transformer[E]{
		code:   status.Resolve(code),
		handle: handle,
		render: render,
	}
}

// Stop builds a Transformer that discards the failure entirely and responds
// with the generic status text for code.
//
// The user sees "500 Internal Server Error" (or whatever code maps to); the
// user does NOT see the failure. Hiding the failure is the default posture.
func Stop[E any, C ~int](code C) Transformer[E] {
	return Catch[E](code, nil, DefaultResponse)
}

// TransparentStop is a variety of Stop that, rather than hiding the failure,
// shows its textual form as the body via Transparent.
//
// DefaultResponse stays wired as the fallback: Transparent never declines,
// but the decline path remains a defined part of the contract.
func TransparentStop[E any, C ~int](code C) Transformer[E] {
	return Catch[E](code, func(c status.Code, failure E) (Response, bool) {
		return Transparent(c, failure)
	}, DefaultResponse)
}

// Code returns the resolved default status code the Transformer was built
// with.
func (t Transformer[E]) Code() status.Code {
	return t.code
}

// Apply consumes one failure value and yields one Response.
//
// The custom handler (when present) runs first, unconditionally. If it
// produces a Response, Apply returns it untouched; otherwise Apply returns
// the renderer's output for the default code. Apply never fails: handling
// the failure always "succeeds" by producing something displayable.
func (t Transformer[E]) Apply(failure E) Response {
	if t.handle != nil {
		if r, ok := t.handle(t.code, failure); ok {
			return r
		}
	}
	return t.render(t.code)
}
