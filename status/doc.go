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

// Package status provides coercion and validation for HTTP status codes.
//
// A status.Code is the validated form of a "code-like" input: a raw integer,
// a net/http status constant, or an existing Code. The package deliberately
// separates the two coercion entry points:
//
//   - Parse returns an error and is meant for data that crosses a trust
//     boundary (configuration, wire input);
//   - Resolve panics and is meant for codes written by the programmer at a
//     call site, where an invalid value is a bug to be found at build or
//     startup time, never a condition to recover from.
//
// Reason phrases come from net/http's registry; this package does not carry
// its own status table.
package status
