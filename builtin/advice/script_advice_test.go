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

package advice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/aop/api/types"
)

func TestScriptHooksSeeJoinPointSnapshot(t *testing.T) {
	config := types.NewConfig()
	script, err := NewScript(config, 500, `
		function onBefore(jp) {
			if (jp.fullName !== "service/getUser" || jp.scope !== "service") {
				throw "unexpected join point: " + jp.fullName;
			}
			if (!jp.callId) {
				throw "missing callId";
			}
		}
		function onAfter(jp) {
			if (jp.result !== "John Doe" || jp.error !== "") {
				throw "unexpected outcome: " + jp.result + "/" + jp.error;
			}
		}
	`)
	require.NoError(t, err)

	wrapped := wrapWith(t, config, []types.Advice{script}, getUser)
	result, err := wrapped(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "John Doe", result)
}

func TestScriptMissingHooksIsNoop(t *testing.T) {
	config := types.NewConfig()
	script, err := NewScript(config, 500, `var unused = 1;`)
	require.NoError(t, err)

	wrapped := wrapWith(t, config, []types.Advice{script}, getUser)
	result, err := wrapped(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "John Doe", result)
}

func TestScriptCompileError(t *testing.T) {
	_, err := NewScript(types.NewConfig(), 500, `function onBefore(jp) {`)
	assert.Error(t, err)
}

func TestScriptErrorSurfacesAsAdviceFailure(t *testing.T) {
	config := types.NewConfig()
	script, err := NewScript(config, 500, `
		function onBefore(jp) {
			throw "script rejected the call";
		}
	`)
	require.NoError(t, err)

	var calls int
	underlying := func(ctx context.Context, args ...interface{}) (interface{}, error) {
		calls++
		return "John Doe", nil
	}
	wrapped := wrapWith(t, config, []types.Advice{script}, underlying)
	_, err = wrapped(context.Background())
	require.Error(t, err)
	// 前置钩子出错等同于底层调用失败：底层函数不执行
	assert.Equal(t, 0, calls)
}

func TestScriptGlobalProperties(t *testing.T) {
	config := types.NewConfig(types.WithProperties(map[string]interface{}{"env": "test"}))
	script, err := NewScript(config, 500, `
		function onBefore(jp) {
			if (global.env !== "test") {
				throw "global properties not visible";
			}
		}
	`)
	require.NoError(t, err)

	wrapped := wrapWith(t, config, []types.Advice{script}, getUser)
	_, err = wrapped(context.Background())
	assert.NoError(t, err)
}

func TestScriptTimeout(t *testing.T) {
	config := types.NewConfig(types.WithScriptMaxExecutionTime(50 * time.Millisecond))
	script, err := NewScript(config, 500, `
		function onBefore(jp) {
			while (true) {}
		}
	`)
	require.NoError(t, err)

	wrapped := wrapWith(t, config, []types.Advice{script}, getUser)
	start := time.Now()
	_, err = wrapped(context.Background())
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}
