// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"context"

	"k8s.io/utils/clock"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	apiVersionKey
	clockKey
)

// RequestID returns the request ID assigned by the middleware, or "" outside
// a wrapped handler.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// APIVersion returns the negotiated API version, or "" outside a wrapped handler.
func APIVersion(ctx context.Context) string {
	v, _ := ctx.Value(apiVersionKey).(string)
	return v
}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func withAPIVersion(ctx context.Context, version string) context.Context {
	return context.WithValue(ctx, apiVersionKey, version)
}

// clockFrom returns the server clock stored by the middleware, or the real
// clock outside a wrapped handler.
func clockFrom(ctx context.Context) clock.PassiveClock {
	if c, ok := ctx.Value(clockKey).(clock.PassiveClock); ok {
		return c
	}
	return clock.RealClock{}
}

func withClock(ctx context.Context, c clock.PassiveClock) context.Context {
	return context.WithValue(ctx, clockKey, c)
}
