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

// Command example runs a small guess-the-number server that demonstrates the
// errproto combinators: Stop for hidden failures, TransparentStop for shown
// ones, and Catch with a JSON custom handler.
package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/axionbuster/errproto"
	"github.com/axionbuster/errproto/httpx"
	"github.com/axionbuster/errproto/status"
)

// Transformers are built once; an invalid code here would panic at startup,
// not during a request.
var (
	stop500 = errproto.Stop[error](http.StatusInternalServerError)
	show400 = errproto.TransparentStop[error](http.StatusBadRequest)

	showLength = errproto.Catch[error](http.StatusBadRequest, transparent, errproto.DefaultResponse)
	showParse  = errproto.Catch[error](http.StatusBadRequest, notANumber, errproto.DefaultResponse)
)

func bad() (string, error)  { return "", errors.New("bad") }
func good() (string, error) { return "good", nil }

// transparent adapts errproto.Transparent to the error-typed Handler slot.
func transparent(c status.Code, err error) (errproto.Response, bool) {
	return errproto.Transparent(c, err)
}

// notANumber shows custom handling: a JSON body plus some header
// manipulation, just for fun.
func notANumber(c status.Code, err error) (errproto.Response, bool) {
	r, jerr := httpx.JSONResponse(c, map[string]any{"err": err.Error()},
		errproto.WithHeaderOption("Set-Cookie", "foo=bar; Max-Age=10; SameSite=Lax"))
	if jerr != nil {
		return errproto.Response{}, false
	}
	return r, true
}

func validateLength(number string) error {
	switch n := len(number); {
	case n == 0:
		return errors.New("You must provide a number.")
	case n > 5:
		return errors.New("The number is too long. Try again with fewer digits.")
	default:
		return nil
	}
}

func validateRange(number int) (string, error) {
	switch {
	case number < 69:
		return "", fmt.Errorf("The number %d is too low. Try higher :)", number)
	case number > 69:
		return "", fmt.Errorf("The number %d is too high. Try lower :)", number)
	default:
		return fmt.Sprintf("Nice! You guessed the right number, which is %d!!!", number), nil
	}
}

// always500 hides the failure: the user sees "500 Internal Server Error",
// never "bad".
func always500(w http.ResponseWriter, _ *http.Request) {
	if _, err := bad(); err != nil {
		httpx.Write(w, stop500.Apply(err))
		return
	}
}

// always200 succeeds: the user sees "good" with a 200.
func always200(w http.ResponseWriter, _ *http.Request) {
	msg, err := good()
	if err != nil {
		httpx.Write(w, stop500.Apply(err))
		return
	}
	httpx.Write(w, errproto.Text(status.Resolve(http.StatusOK), msg))
}

// guess chains three validations, each with its own failure presentation.
func guess(w http.ResponseWriter, req *http.Request) {
	number := req.PathValue("number")

	if err := validateLength(number); err != nil {
		httpx.Write(w, showLength.Apply(err))
		return
	}

	n, err := strconv.Atoi(number)
	if err != nil {
		httpx.Write(w, showParse.Apply(err))
		return
	}

	msg, err := validateRange(n)
	if err != nil {
		httpx.Write(w, show400.Apply(err))
		return
	}

	httpx.Write(w, errproto.Text(status.Resolve(http.StatusOK), msg))
}

func main() {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", always200)
	mux.HandleFunc("GET /500", always500)
	mux.HandleFunc("GET /custom", guess)
	mux.HandleFunc("GET /custom/{number}", guess)

	log.Fatal(http.ListenAndServe(":3000", mux))
}
