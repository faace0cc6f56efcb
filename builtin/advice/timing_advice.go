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
	"time"

	"github.com/rulego/aop/api/types"
)

// Compile-time check Timing implements types.AroundAdvice.
var _ types.AroundAdvice = (*Timing)(nil)

// Timing is an around advice that measures the execution time of matched
// calls on a monotonic clock and reports it after the call completes. The
// duration is measured around proceed, so it covers all inner advice layers
// plus the underlying call, and it is reported on both success and error
// outcomes: a call that fails still passes through the point after proceed.
//
// Timing 是一个环绕增强，基于单调时钟测量匹配调用的执行耗时，并在调用完成后
// 上报。耗时围绕 proceed 测量，因此覆盖所有内层增强和底层调用；无论成功还是
// 失败都会上报：失败的调用同样会经过 proceed 之后的测量点。
type Timing struct {
	Logger types.Logger
	// OnMeasure, when set, receives the measured duration instead of only
	// logging it. Used by callers that aggregate timings themselves.
	// OnMeasure 设置后会收到测量耗时，供自行聚合耗时的调用方使用。
	OnMeasure func(jp types.JoinPoint, elapsed time.Duration)
}

// NewTiming creates a Timing advice logging through the given logger.
func NewTiming(logger types.Logger) *Timing {
	return &Timing{Logger: logger}
}

// Order returns the execution order of this advice. Timing runs with order
// 800 so outer bookkeeping advices do not inflate the measured duration.
// Order 返回此增强的执行顺序。Timing 的顺序为 800，避免外层增强拉高测量值。
func (a *Timing) Order() int {
	return 800
}

// Around measures the wall time of the remainder of the chain.
func (a *Timing) Around(ctx context.Context, jp types.JoinPoint, proceed types.Proceed) (interface{}, error) {
	start := time.Now()
	result, err := proceed(ctx)
	elapsed := time.Since(start)
	if elapsed < 0 {
		elapsed = 0
	}
	if a.OnMeasure != nil {
		a.OnMeasure(jp, elapsed)
	}
	types.NewLogger(a.Logger).Printf("Execution time: %d ms method=%s", elapsed.Milliseconds(), jp.Identity().String())
	return result, err
}
