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

// Selector decides whether an advice binding applies to a callable.
// It declares a cut-in point over the callable's identity, the analogue of
// a pointcut expression.
//
// Matches must be a pure, terminating function of the identity (and its
// static tags) only, never of argument values, so that matching is decidable
// ahead of execution and its result can be cached per identity. A selector
// that panics during matching aborts resolution with SelectorEvaluationError.
//
// Selector 判断一个增强绑定是否应用到某个可调用单元。它基于可调用单元的标识声明
// 一个切入点，相当于切点表达式。
//
// Matches 必须是仅依赖标识（及其静态标签）的纯函数且必须终止，绝不能依赖参数值，
// 这样匹配结果才能在执行前判定并按标识缓存。匹配过程中 panic 的选择器会以
// SelectorEvaluationError 中止解析。
type Selector interface {
	Matches(identity CallableIdentity) bool
}
