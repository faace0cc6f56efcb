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

package engine

import (
	"fmt"

	"github.com/rulego/aop/api/types"
)

// SelectorEvaluationError reports a selector that failed (panicked) while
// matching an identity during wrap resolution. Resolution aborts immediately;
// a failing selector is never silently skipped.
//
// SelectorEvaluationError 表示选择器在解析阶段匹配标识时失败（panic）。
// 解析会立即中止，失败的选择器绝不会被静默跳过。
type SelectorEvaluationError struct {
	Identity  types.CallableIdentity
	Recovered interface{}
}

func (e *SelectorEvaluationError) Error() string {
	return fmt.Sprintf("aop: selector evaluation failed for %s: %v", e.Identity.String(), e.Recovered)
}

// Unwrap exposes the recovered value when it is itself an error.
func (e *SelectorEvaluationError) Unwrap() error {
	if err, ok := e.Recovered.(error); ok {
		return err
	}
	return nil
}

// DoubleProceedError reports an around-advice that invoked its proceed
// capability more than once in a single execution of its body. The second
// invocation fails with this error instead of re-executing the underlying
// call, preventing duplicate side effects.
//
// DoubleProceedError 表示环绕增强在一次执行中调用了多次 proceed。
// 第二次调用以该错误失败，而不会重复执行底层调用，避免产生重复副作用。
type DoubleProceedError struct {
	Identity types.CallableIdentity
}

func (e *DoubleProceedError) Error() string {
	return fmt.Sprintf("aop: proceed called more than once for %s", e.Identity.String())
}

// AdviceExecutionError reports an after-stage advice that itself failed.
// Remaining advices of the same stage are halted and the error propagates to
// the caller, since advice errors usually indicate a misconfiguration that
// should not be masked. Before-advice errors are not wrapped: they are
// treated as the underlying call failing (see types.BeforeAdvice).
//
// AdviceExecutionError 表示后置阶段的增强自身执行失败。同阶段剩余增强被中止，
// 错误上抛给调用方。前置增强的错误不会被包装：它们被视为底层调用失败。
type AdviceExecutionError struct {
	Identity types.CallableIdentity
	Kind     types.AdviceKind
	Err      error
}

func (e *AdviceExecutionError) Error() string {
	return fmt.Sprintf("aop: %s advice failed for %s: %v", e.Kind.String(), e.Identity.String(), e.Err)
}

func (e *AdviceExecutionError) Unwrap() error {
	return e.Err
}
