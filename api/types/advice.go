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

import "context"

// The interfaces in this file provide the AOP (Aspect Oriented Programming) advice model.
// It is similar to an interceptor or hook mechanism, but more powerful and flexible.
//
//   - It allows adding extra behavior to a callable without modifying its logic.
//   - It allows separating common behaviors (such as logging, timing, metrics,
//     concurrency limiting, error recovery) from the business logic.
//
// 本文件中的接口提供 AOP（面向切面编程，Aspect Oriented Programming）增强模型。
// 它类似拦截器或者 hook 机制，但是功能更加强大和灵活。
//
//   - 它允许在不修改可调用单元逻辑的情况下，为其添加额外的行为。
//   - 它允许把一些公共的行为（例如：日志、耗时统计、指标、并发限制、错误恢复）从业务逻辑中分离出来。

// Callable is the unit a weaver wraps: any invocable with a stable identity.
// The framework never mutates a Callable, it only composes around it.
//
// Callable 是织入器包装的单元：任何具有稳定标识的可调用对象。
// 框架从不修改 Callable 本身，只在其外层进行组合。
type Callable func(ctx context.Context, args ...any) (any, error)

// Proceed continues the remainder of an invocation chain from inside an
// around-advice. Passing arguments replaces the join point's arguments for
// all inner layers and the underlying call; passing none keeps them.
// Proceed must be called at most once per advice invocation. Calling it a
// second time fails with DoubleProceedError and does not re-execute the
// underlying call. Not calling it short-circuits the chain.
//
// Proceed 在环绕增强内部继续执行调用链的剩余部分。传入参数会替换连接点参数并对所有
// 内层生效；不传参数则保持不变。每次增强执行中 Proceed 最多只能调用一次：第二次调用
// 返回 DoubleProceedError，且不会重复执行底层调用。不调用则短路整条链。
type Proceed func(ctx context.Context, args ...any) (any, error)

// Advice is the base interface for all advice kinds.
// Advice 是所有增强点接口的基类。
type Advice interface {
	// Order returns the execution order, the smaller the value, the higher the priority.
	// Advices with equal order run in registration order.
	// Order 返回执行顺序，值越小，优先级越高。顺序相同时按注册顺序执行。
	Order() int
}

// BeforeAdvice runs before the underlying call, with the arguments visible
// but no outcome yet. An error return is treated exactly as if the underlying
// call had failed with that error: remaining before-advices and the call are
// skipped and the error path runs, so a failing precondition check looks
// identical to a failing business call to downstream advice.
//
// BeforeAdvice 在底层调用之前执行，此时参数可见但尚无结果。返回错误时，视同底层调用
// 以该错误失败：跳过剩余的前置增强和底层调用，直接进入错误路径，使失败的前置检查对
// 下游增强而言与失败的业务调用完全一致。
type BeforeAdvice interface {
	Advice
	Before(ctx context.Context, jp JoinPoint) error
}

// AfterReturningAdvice runs only on success outcomes, observing the join
// point with the result populated. The outcome is read-only; an error return
// halts remaining same-stage advices and surfaces as AdviceExecutionError.
//
// AfterReturningAdvice 仅在成功结果上执行，此时连接点已填充返回值。结果为只读；
// 返回错误会中止同阶段剩余增强，并以 AdviceExecutionError 形式上抛。
type AfterReturningAdvice interface {
	Advice
	AfterReturning(ctx context.Context, jp JoinPoint) error
}

// AfterThrowingAdvice runs only on error outcomes, observing the join point
// with the error populated. It observes but never suppresses the error;
// converting an error outcome is reserved for RecoveringAdvice.
//
// AfterThrowingAdvice 仅在错误结果上执行，此时连接点已填充错误。它只观察而不吞掉
// 错误；将错误结果转换为成功是 RecoveringAdvice 的职责。
type AfterThrowingAdvice interface {
	Advice
	AfterThrowing(ctx context.Context, jp JoinPoint) error
}

// AfterAdvice runs on both outcomes, after the outcome-specific stage.
// AfterAdvice 在成功和错误两种结果上都执行，晚于结果专属阶段。
type AfterAdvice interface {
	Advice
	After(ctx context.Context, jp JoinPoint) error
}

// AroundAdvice wraps the underlying call. The body decides whether and when
// to invoke proceed, may transform arguments before proceeding and may
// transform the returned value or error after proceeding.
//
// AroundAdvice 环绕底层调用。增强体决定是否以及何时调用 proceed，可以在继续之前
// 变换参数，也可以在继续之后变换返回值或错误。
type AroundAdvice interface {
	Advice
	Around(ctx context.Context, jp JoinPoint, proceed Proceed) (any, error)
}

// RecoveringAdvice is the dedicated advice kind allowed to replace an error
// outcome. It runs only on error outcomes, before the after-stages. Returning
// a nil error converts the call to a success with the returned value;
// returning a non-nil error keeps the call failed with that error.
//
// RecoveringAdvice 是唯一允许替换错误结果的增强类型。它仅在错误结果上执行，早于
// 后置阶段。返回 nil 错误时，调用被转换为以返回值成功；返回非 nil 错误时，调用
// 保持失败，错误替换为该错误。
type RecoveringAdvice interface {
	Advice
	Recover(ctx context.Context, jp JoinPoint) (any, error)
}

// AdviceKind enumerates the points at which advice can attach to a call.
// AdviceKind 枚举增强可以附着到调用上的时机。
type AdviceKind int

const (
	KindBefore AdviceKind = iota
	KindAfterReturning
	KindAfterThrowing
	KindAfter
	KindAround
	KindRecovering
)

// String returns the DSL name of the advice kind.
func (k AdviceKind) String() string {
	switch k {
	case KindBefore:
		return "before"
	case KindAfterReturning:
		return "afterReturning"
	case KindAfterThrowing:
		return "afterThrowing"
	case KindAfter:
		return "after"
	case KindAround:
		return "around"
	case KindRecovering:
		return "recovering"
	default:
		return "unknown"
	}
}

type beforeFunc struct {
	order int
	fn    func(ctx context.Context, jp JoinPoint) error
}

func (a *beforeFunc) Order() int { return a.order }

func (a *beforeFunc) Before(ctx context.Context, jp JoinPoint) error { return a.fn(ctx, jp) }

// BeforeFunc adapts a plain function into a BeforeAdvice with an explicit order.
// BeforeFunc 将普通函数适配为带显式顺序的 BeforeAdvice。
func BeforeFunc(order int, fn func(ctx context.Context, jp JoinPoint) error) BeforeAdvice {
	return &beforeFunc{order: order, fn: fn}
}

type afterReturningFunc struct {
	order int
	fn    func(ctx context.Context, jp JoinPoint) error
}

func (a *afterReturningFunc) Order() int { return a.order }

func (a *afterReturningFunc) AfterReturning(ctx context.Context, jp JoinPoint) error {
	return a.fn(ctx, jp)
}

// AfterReturningFunc adapts a plain function into an AfterReturningAdvice.
func AfterReturningFunc(order int, fn func(ctx context.Context, jp JoinPoint) error) AfterReturningAdvice {
	return &afterReturningFunc{order: order, fn: fn}
}

type afterThrowingFunc struct {
	order int
	fn    func(ctx context.Context, jp JoinPoint) error
}

func (a *afterThrowingFunc) Order() int { return a.order }

func (a *afterThrowingFunc) AfterThrowing(ctx context.Context, jp JoinPoint) error {
	return a.fn(ctx, jp)
}

// AfterThrowingFunc adapts a plain function into an AfterThrowingAdvice.
func AfterThrowingFunc(order int, fn func(ctx context.Context, jp JoinPoint) error) AfterThrowingAdvice {
	return &afterThrowingFunc{order: order, fn: fn}
}

type afterFunc struct {
	order int
	fn    func(ctx context.Context, jp JoinPoint) error
}

func (a *afterFunc) Order() int { return a.order }

func (a *afterFunc) After(ctx context.Context, jp JoinPoint) error { return a.fn(ctx, jp) }

// AfterFunc adapts a plain function into an AfterAdvice.
func AfterFunc(order int, fn func(ctx context.Context, jp JoinPoint) error) AfterAdvice {
	return &afterFunc{order: order, fn: fn}
}

type aroundFunc struct {
	order int
	fn    func(ctx context.Context, jp JoinPoint, proceed Proceed) (any, error)
}

func (a *aroundFunc) Order() int { return a.order }

func (a *aroundFunc) Around(ctx context.Context, jp JoinPoint, proceed Proceed) (any, error) {
	return a.fn(ctx, jp, proceed)
}

// AroundFunc adapts a plain function into an AroundAdvice.
// AroundFunc 将普通函数适配为 AroundAdvice。
func AroundFunc(order int, fn func(ctx context.Context, jp JoinPoint, proceed Proceed) (any, error)) AroundAdvice {
	return &aroundFunc{order: order, fn: fn}
}

type recoveringFunc struct {
	order int
	fn    func(ctx context.Context, jp JoinPoint) (any, error)
}

func (a *recoveringFunc) Order() int { return a.order }

func (a *recoveringFunc) Recover(ctx context.Context, jp JoinPoint) (any, error) {
	return a.fn(ctx, jp)
}

// RecoveringFunc adapts a plain function into a RecoveringAdvice.
func RecoveringFunc(order int, fn func(ctx context.Context, jp JoinPoint) (any, error)) RecoveringAdvice {
	return &recoveringFunc{order: order, fn: fn}
}
