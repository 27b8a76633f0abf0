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

package httpx

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/axionbuster/errproto"
	"github.com/axionbuster/errproto/status"
)

func TestWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	resp := errproto.Text(status.Resolve(404), "404 Not Found",
		errproto.WithHeaderOption("X-Reason", "missing"))

	Write(rec, resp)

	res := rec.Result()
	if res.StatusCode != 404 {
		t.Fatalf("status = %d, want 404", res.StatusCode)
	}
	if got := rec.Body.String(); got != "404 Not Found" {
		t.Fatalf("body = %q", got)
	}
	if got := res.Header.Get("X-Reason"); got != "missing" {
		t.Fatalf("X-Reason = %q", got)
	}
}

func TestWrite_DuplicateHeadersPreserved(t *testing.T) {
	rec := httptest.NewRecorder()
	resp := errproto.Text(status.Resolve(200), "ok").
		WithHeader("Set-Cookie", "a=1").
		WithHeader("Set-Cookie", "b=2")

	Write(rec, resp)

	got := rec.Result().Header["Set-Cookie"]
	if len(got) != 2 || got[0] != "a=1" || got[1] != "b=2" {
		t.Fatalf("Set-Cookie = %v", got)
	}
}

func TestWrite_EmptyBody(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, errproto.New(status.Resolve(204), nil))

	if rec.Code != 204 {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("body = %q, want empty", rec.Body.String())
	}
}

func TestJSONBody(t *testing.T) {
	b, err := JSONBody(map[string]any{
		"err":   "invalid syntax",
		"count": 3,
		"flags": []any{"a", "b"},
	})
	if err != nil {
		t.Fatalf("JSONBody: %v", err)
	}

	// protojson output spacing is not stable; compare decoded values.
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["err"] != "invalid syntax" {
		t.Fatalf("err field = %v", got["err"])
	}
	if got["count"] != float64(3) {
		t.Fatalf("count field = %v", got["count"])
	}
	flags, ok := got["flags"].([]any)
	if !ok || len(flags) != 2 || flags[0] != "a" {
		t.Fatalf("flags field = %v", got["flags"])
	}
}

func TestJSONBody_UnsupportedValue(t *testing.T) {
	if _, err := JSONBody(map[string]any{"ch": make(chan int)}); err == nil {
		t.Fatal("expected error for non-representable value")
	}
}

func TestJSONResponse(t *testing.T) {
	resp, err := JSONResponse(status.Resolve(400), map[string]any{"err": "bad"},
		errproto.WithHeaderOption("Set-Cookie", "foo=bar"))
	if err != nil {
		t.Fatalf("JSONResponse: %v", err)
	}

	if resp.Status != status.Code(400) {
		t.Fatalf("status = %v", resp.Status)
	}
	if len(resp.Header) != 2 {
		t.Fatalf("headers = %v", resp.Header)
	}
	if resp.Header[0] != (errproto.Header{Name: "Content-Type", Value: "application/json"}) {
		t.Fatalf("first header = %v, want Content-Type", resp.Header[0])
	}
	if resp.Header[1].Name != "Set-Cookie" {
		t.Fatalf("second header = %v", resp.Header[1])
	}

	var got map[string]any
	if err := json.Unmarshal(resp.Body, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["err"] != "bad" {
		t.Fatalf("body = %v", got)
	}
}

func TestJSONResponse_AsCustomHandler(t *testing.T) {
	// End to end: a Catch handler producing a JSON body with a cookie, the
	// renderer unreachable.
	handle := func(c status.Code, err error) (errproto.Response, bool) {
		r, jerr := JSONResponse(c, map[string]any{"err": err.Error()},
			errproto.WithHeaderOption("Set-Cookie", "foo=bar; Max-Age=10; SameSite=Lax"))
		if jerr != nil {
			return errproto.Response{}, false
		}
		return r, true
	}
	tr := errproto.Catch(400, handle, errproto.DefaultResponse)

	rec := httptest.NewRecorder()
	Write(rec, tr.Apply(errTest("not a number")))

	res := rec.Result()
	if res.StatusCode != 400 {
		t.Fatalf("status = %d", res.StatusCode)
	}
	if got := res.Header.Get("Content-Type"); got != "application/json" {
		t.Fatalf("Content-Type = %q", got)
	}
	if got := res.Header.Get("Set-Cookie"); got == "" {
		t.Fatal("Set-Cookie missing")
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["err"] != "not a number" {
		t.Fatalf("body = %v", got)
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }
