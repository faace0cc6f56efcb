/*
 * Copyright 2024 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package aop

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/aop/api/types"
	"github.com/rulego/aop/builtin/advice"
	"github.com/rulego/aop/selector"
)

// memLogger collects log lines for assertions.
type memLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *memLogger) Printf(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func (l *memLogger) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

func getUser(ctx context.Context, args ...interface{}) (interface{}, error) {
	return "John Doe", nil
}

// TestServiceLoggingScenario wires a debug advice and a timing advice onto all
// methods of the service scope and checks the observed log order around a call.
func TestServiceLoggingScenario(t *testing.T) {
	logger := &memLogger{}
	config := types.NewConfig(types.WithLogger(logger))

	registry := New(types.WithLogger(logger))
	registry.Register(selector.Pattern{Scope: "service", Name: "*"}, advice.NewDebug(config))
	registry.Register(selector.Pattern{Scope: "service", Name: "*"}, advice.NewTiming(logger))
	registry.Seal()

	wrapped, err := registry.Wrap(types.NewIdentity("service", "getUser", "() string"), getUser)
	require.NoError(t, err)

	result, err := wrapped(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "John Doe", result)

	lines := logger.all()
	executingAt, timingAt := -1, -1
	for i, line := range lines {
		if strings.Contains(line, "Executing method") && executingAt < 0 {
			executingAt = i
		}
		if strings.Contains(line, "Execution time:") && timingAt < 0 {
			timingAt = i
		}
	}
	require.GreaterOrEqual(t, executingAt, 0, "debug entry line missing: %v", lines)
	require.GreaterOrEqual(t, timingAt, 0, "timing line missing: %v", lines)
	assert.Less(t, executingAt, timingAt)
}

func TestLoadBuildsSealedRegistry(t *testing.T) {
	logger := &memLogger{}
	def := `{
	  "bindings": [
	    {
	      "selector": {"type": "pattern", "configuration": {"scope": "service", "name": "*"}},
	      "advice":   {"type": "debug"}
	    },
	    {
	      "selector": {"type": "expr", "configuration": {"expr": "name startsWith \"get\""}},
	      "advice":   {"type": "timing"}
	    }
	  ]
	}`
	registry, err := Load([]byte(def), types.WithLogger(logger))
	require.NoError(t, err)

	wrapped, err := registry.Wrap(types.NewIdentity("service", "getUser", "() string"), getUser)
	require.NoError(t, err)
	result, err := wrapped(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "John Doe", result)

	joined := strings.Join(logger.all(), "\n")
	assert.Contains(t, joined, "Executing method")
	assert.Contains(t, joined, "Execution time:")

	// sealed: further registration must panic
	assert.Panics(t, func() {
		registry.Register(nil, advice.NewDebug(types.NewConfig()))
	})
}

func TestLoadSelectorScopesBindings(t *testing.T) {
	def := `{
	  "bindings": [
	    {
	      "selector": {"type": "exact", "configuration": {"scope": "service", "name": "getUser"}},
	      "advice":   {"type": "limiter", "configuration": {"max": 0}}
	    }
	  ]
	}`
	registry, err := Load([]byte(def))
	require.NoError(t, err)

	// max 0 admits nothing, so a matched call is rejected outright
	wrapped, err := registry.Wrap(types.NewIdentity("service", "getUser", "() string"), getUser)
	require.NoError(t, err)
	_, err = wrapped(context.Background())
	assert.ErrorIs(t, err, advice.ErrConcurrencyLimitReached)

	// non-matching identity passes through untouched
	other, err := registry.Wrap(types.NewIdentity("service", "listUsers", "() []string"), getUser)
	require.NoError(t, err)
	result, err := other(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "John Doe", result)
}

func TestLoadFallbackFromDSL(t *testing.T) {
	def := `{
	  "bindings": [
	    {
	      "selector": {"type": "tag", "configuration": {"tag": "critical"}},
	      "advice":   {"type": "fallback", "configuration": {"value": "default user"}}
	    }
	  ]
	}`
	registry, err := Load([]byte(def))
	require.NoError(t, err)

	failing := func(ctx context.Context, args ...interface{}) (interface{}, error) {
		return nil, fmt.Errorf("backend down")
	}
	wrapped, err := registry.Wrap(types.NewIdentity("service", "getUser", "() string", "critical"), failing)
	require.NoError(t, err)
	result, err := wrapped(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "default user", result)
}

func TestLoadRejectsMalformedDocuments(t *testing.T) {
	cases := []struct {
		name string
		def  string
	}{
		{"invalid json", `{"bindings": [`},
		{"unknown selector", `{"bindings": [{"selector": {"type": "regex"}, "advice": {"type": "debug"}}]}`},
		{"unknown advice", `{"bindings": [{"advice": {"type": "tracing"}}]}`},
		{"bad expr", `{"bindings": [{"selector": {"type": "expr", "configuration": {"expr": "name ==="}}, "advice": {"type": "debug"}}]}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Load([]byte(c.def))
			assert.Error(t, err)
		})
	}
}
