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

package types

import "time"

// Configuration holds type-specific settings for selectors and advices built
// from a DSL document, in key-value format.
// Configuration 以键值对形式保存通过 DSL 构建的选择器和增强的类型专属配置。
type Configuration map[string]interface{}

// Config defines the configuration shared by a weaver registry and its advices.
// Config 定义织入注册表及其增强共享的配置。
type Config struct {
	// OnDebug is a callback for advice debug information, invoked by the
	// built-in debug advice for every intercepted call it observes.
	// - identity: the identity of the intercepted callable.
	// - kind: the advice stage that produced the event (KindBefore or KindAfter).
	// - jp: the join point of the call; the outcome is populated only for KindAfter.
	// - err: the error outcome of the call, if any.
	//
	// OnDebug 是增强调试信息回调，内置调试增强会对其观察到的每次拦截调用触发它。
	OnDebug func(identity CallableIdentity, kind AdviceKind, jp JoinPoint, err error)
	// Logger is the logging interface, defaulting to `DefaultLogger()`.
	// Logger 是日志接口，默认为 `DefaultLogger()`。
	Logger Logger
	// Properties are global properties in key-value format. Script advices can
	// access them through the `global` variable.
	// Properties 是全局属性，脚本增强可以通过 `global` 变量访问。
	Properties map[string]interface{}
	// ScriptMaxExecutionTime is the maximum execution time for script advice
	// bodies, defaulting to 2000 milliseconds.
	// ScriptMaxExecutionTime 是脚本增强体的最大执行时间，默认 2000 毫秒。
	ScriptMaxExecutionTime time.Duration
}

// NewConfig creates a new Config with default values and applies the provided options.
// NewConfig 创建带默认值的 Config，并应用传入的选项。
func NewConfig(opts ...Option) Config {
	c := &Config{
		ScriptMaxExecutionTime: time.Millisecond * 2000,
		Logger:                 DefaultLogger(),
		Properties:             make(map[string]interface{}),
	}
	for _, opt := range opts {
		_ = opt(c)
	}
	return *c
}
