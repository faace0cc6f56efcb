/*
 * Copyright 2023 The RuleGo Authors.
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

	"github.com/rulego/aop/api/types"
)

var (
	// Compile-time check Debug implements types.BeforeAdvice.
	_ types.BeforeAdvice = (*Debug)(nil)
	// Compile-time check Debug implements types.AfterAdvice.
	_ types.AfterAdvice = (*Debug)(nil)
)

// Debug is a logging advice that reports call entry and call outcome for
// every matched callable. It writes a line through the configured logger
// before the call runs and another one after the outcome is known, and
// additionally feeds the Config.OnDebug callback when one is set.
//
// Debug 是一个日志增强，对每个匹配的可调用单元上报调用进入和调用结果。
// 它在调用执行前和结果产生后分别通过配置的日志器输出一行日志，并在设置了
// Config.OnDebug 回调时同时触发该回调。
type Debug struct {
	Config types.Config
}

// NewDebug creates a Debug advice bound to the given configuration.
func NewDebug(config types.Config) *Debug {
	return &Debug{Config: config}
}

// Order returns the execution order of this advice. Debug runs with order
// 900, placing it after the functional advices so it observes their effects.
// Order 返回此增强的执行顺序。Debug 的顺序为 900，排在功能性增强之后，
// 以便观察它们的效果。
func (a *Debug) Order() int {
	return 900
}

// Before logs the entry of the matched call.
func (a *Debug) Before(ctx context.Context, jp types.JoinPoint) error {
	a.logger().Printf("Executing method... id=%s method=%s", jp.CallID(), jp.Identity().String())
	if a.Config.OnDebug != nil {
		a.Config.OnDebug(jp.Identity(), types.KindBefore, jp, nil)
	}
	return nil
}

// After logs the outcome of the matched call, success or error.
func (a *Debug) After(ctx context.Context, jp types.JoinPoint) error {
	if err := jp.Err(); err != nil {
		a.logger().Printf("Method failed. id=%s method=%s err=%s", jp.CallID(), jp.Identity().String(), err.Error())
	} else {
		a.logger().Printf("Method done. id=%s method=%s", jp.CallID(), jp.Identity().String())
	}
	if a.Config.OnDebug != nil {
		a.Config.OnDebug(jp.Identity(), types.KindAfter, jp, jp.Err())
	}
	return nil
}

func (a *Debug) logger() types.Logger {
	return types.NewLogger(a.Config.Logger)
}
