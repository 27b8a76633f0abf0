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

// Package grpcx projects errproto.Response values onto gRPC statuses.
//
// HTTP status codes and gRPC codes classify outcomes differently; Code holds
// the conventional projection for the statuses a Transformer typically
// produces, with class-based fallbacks for everything else. The
// UnaryServerInterceptor lets a service reuse one Transformer for every
// method's error path.
package grpcx

import (
	"context"
	"net/http"

	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"github.com/axionbuster/errproto"
	"github.com/axionbuster/errproto/status"
)

// httpToGRPC holds the exact projections for well-known HTTP statuses.
// Statuses not listed here fall back to their class in Code.
var httpToGRPC = map[int]gcodes.Code{
	// 4xx — client / protocol / resource issues.
	http.StatusBadRequest:          gcodes.InvalidArgument,    // Malformed input, validation errors.
	http.StatusUnauthorized:        gcodes.Unauthenticated,    // No or invalid credentials.
	http.StatusForbidden:           gcodes.PermissionDenied,   // Authenticated but not allowed.
	http.StatusNotFound:            gcodes.NotFound,           // Target resource does not exist.
	http.StatusRequestTimeout:      gcodes.Canceled,           // Client gave up or was cut off.
	http.StatusConflict:            gcodes.Aborted,            // Concurrent updates, version clashes.
	http.StatusGone:                gcodes.NotFound,           // gRPC has no 410; NotFound is the closest practical choice.
	http.StatusPreconditionFailed:  gcodes.FailedPrecondition, // If-Match / preconditions failed.
	http.StatusTooEarly:            gcodes.FailedPrecondition, // Request made before allowed time.
	http.StatusTooManyRequests:     gcodes.ResourceExhausted,  // Rate limits and quotas.
	http.StatusUnprocessableEntity: gcodes.InvalidArgument,    // Well-formed but semantically invalid.

	// 5xx — server / dependency / transient issues.
	http.StatusInternalServerError: gcodes.Internal,
	http.StatusNotImplemented:      gcodes.Unimplemented,
	http.StatusBadGateway:          gcodes.FailedPrecondition, // Dependency failed in a client-visible way.
	http.StatusServiceUnavailable:  gcodes.Unavailable,
	http.StatusGatewayTimeout:      gcodes.DeadlineExceeded,
}

// Code returns the gRPC code for an HTTP status.
//
// Resolution order:
//  1. exact projection for well-known statuses;
//  2. class fallback: 2xx -> OK, other 4xx -> InvalidArgument,
//     other 5xx -> Internal;
//  3. Unknown for everything else (1xx, 3xx).
func Code(c status.Code) gcodes.Code {
	if g, ok := httpToGRPC[c.Int()]; ok {
		return g
	}
	switch {
	case c.Int() >= 200 && c.Int() < 300:
		return gcodes.OK
	case c.Int() >= 400 && c.Int() < 500:
		return gcodes.InvalidArgument
	case c.Int() >= 500 && c.Int() < 600:
		return gcodes.Internal
	}
	return gcodes.Unknown
}

// Error converts a Response into a gRPC status error. The Response body
// becomes the status message; headers are dropped (gRPC metadata is the
// transport's concern, not the Response's).
func Error(r errproto.Response) error {
	return gstatus.New(Code(r.Status), string(r.Body)).Err()
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that routes
// every handler error through the given Transformer and returns the
// projected gRPC status error.
//
// Errors that are already gRPC status errors are passed through untouched so
// that hand-crafted statuses keep their codes and details.
func UnaryServerInterceptor(transform errproto.Transformer[error]) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		if _, ok := gstatus.FromError(err); ok {
			// Already a status error — keep it as-is.
			return nil, err
		}
		return nil, Error(transform.Apply(err))
	}
}
