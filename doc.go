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

// Package errproto turns application-level failure values into HTTP-style
// responses with a guaranteed status code.
//
// You would be particularly interested in these functions (and it pays to
// look at them in this order):
//
//   - Stop: map a failure, hide it from the user, set a status code;
//   - TransparentStop: map a failure, show it to the user, set a status code;
//   - Catch: map a failure with custom handling, set a default status code.
//
// A handler on its failure path applies a Transformer to the failure value
// and returns the resulting Response to the surrounding HTTP layer:
//
//	t := errproto.Stop[error](http.StatusInternalServerError)
//	if err := doWork(); err != nil {
//	    httpx.Write(w, t.Apply(err))
//	    return
//	}
//
// The combinators are stateless and safe for concurrent use; the only
// failure exit of the whole package is the panic raised when a Transformer
// is constructed with an invalid status code (see package status).
//
// Serialization to the wire lives in the httpx and grpcx subpackages; this
// package only builds Response values.
package errproto
