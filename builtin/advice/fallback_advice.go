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

	"github.com/rulego/aop/api/types"
)

// Compile-time check Fallback implements types.RecoveringAdvice.
var _ types.RecoveringAdvice = (*Fallback)(nil)

// Fallback is a recovering advice that converts error outcomes of matched
// calls into a configured fallback value. After-stage advices never mutate
// outcomes; recovery is only possible through this dedicated advice kind,
// and only for errors accepted by the optional Accept filter.
//
// Fallback 是一个恢复增强，将匹配调用的错误结果转换为配置的兜底值。
// 后置阶段的增强从不修改结果；只有通过这一专门的增强类型才能恢复，
// 且仅限可选 Accept 过滤器接受的错误。
type Fallback struct {
	// Value is the success value substituted for an accepted error outcome.
	// Value 是替换被接受的错误结果的成功值。
	Value interface{}
	// Accept filters which errors are recovered. nil recovers every error.
	// Accept 过滤哪些错误会被恢复。nil 表示恢复所有错误。
	Accept func(err error) bool
}

// NewFallback creates a Fallback advice substituting the given value for any error.
func NewFallback(value interface{}) *Fallback {
	return &Fallback{Value: value}
}

// Order returns the execution order of this advice.
func (a *Fallback) Order() int {
	return 10
}

// Recover converts an accepted error outcome into the fallback value.
// Returning the original error keeps the call failed for errors the filter rejects.
func (a *Fallback) Recover(ctx context.Context, jp types.JoinPoint) (interface{}, error) {
	err := jp.Err()
	if a.Accept != nil && !a.Accept(err) {
		return nil, err
	}
	return a.Value, nil
}
