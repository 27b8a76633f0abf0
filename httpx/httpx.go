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

// Package httpx adapts errproto.Response values to net/http.
//
// The core library never serializes to bytes or touches sockets; this
// package is the one place a Response meets an http.ResponseWriter. It also
// provides JSON payload helpers for custom handlers that want a structured
// body.
package httpx

import (
	"net/http"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/axionbuster/errproto"
	"github.com/axionbuster/errproto/status"
)

// Write serializes a Response to the response writer: headers first, in
// insertion order with duplicate names preserved, then the status code, then
// the body.
//
// No filtering or redaction is performed: whatever the Response carries is
// written as-is. Higher-level handlers should apply policies before handing
// the Response over.
func Write(w http.ResponseWriter, r errproto.Response) {
	h := w.Header()
	for _, pair := range r.Header {
		h.Add(pair.Name, pair.Value)
	}
	w.WriteHeader(r.Status.Int())
	if len(r.Body) > 0 {
		_, _ = w.Write(r.Body)
	}
}

// JSONBody encodes a flat field map as a JSON document.
//
// IMPORTANT: encoding goes through structpb and protojson so that nested
// maps, slices, and well-known scalar kinds serialize the same way they do
// in protobuf-backed APIs. Values must be representable in a
// structpb.Struct (strings, numbers, bools, nil, nested maps/slices
// thereof); anything else returns an error.
func JSONBody(fields map[string]any) ([]byte, error) {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}
	return protojson.Marshal(s)
}

// JSONResponse builds a Response whose body is the JSON encoding of fields,
// with Content-Type set to application/json. Extra options are applied after
// the Content-Type header.
//
// Intended for use inside a Handler passed to errproto.Catch:
//
//	handle := func(c status.Code, err error) (errproto.Response, bool) {
//	    r, jerr := httpx.JSONResponse(c, map[string]any{"err": err.Error()})
//	    if jerr != nil {
//	        return errproto.Response{}, false // fall through to the renderer
//	    }
//	    return r, true
//	}
func JSONResponse(code status.Code, fields map[string]any, opts ...errproto.Option) (errproto.Response, error) {
	body, err := JSONBody(fields)
	if err != nil {
		return errproto.Response{}, err
	}
	opts = append([]errproto.Option{
		errproto.WithHeaderOption("Content-Type", "application/json"),
	}, opts...)
	return errproto.New(code, body, opts...), nil
}
