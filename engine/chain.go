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
	"context"
	"sync/atomic"

	"github.com/rulego/aop/api/types"
)

// resolved is the per-identity invocation chain: the matched advices
// partitioned by kind and sorted by (order, registration order). It is built
// once per identity and reused across calls; all per-call state lives on the
// join point.
//
// resolved 是按标识解析好的调用链：匹配到的增强按类型分组，并按（顺序，注册顺序）
// 排序。每个标识只构建一次，跨调用复用；所有按调用的状态都在连接点上。
type resolved struct {
	before         []types.BeforeAdvice
	around         []types.AroundAdvice
	recovering     []types.RecoveringAdvice
	afterReturning []types.AfterReturningAdvice
	afterThrowing  []types.AfterThrowingAdvice
	after          []types.AfterAdvice
}

func (s *resolved) empty() bool {
	return len(s.before) == 0 && len(s.around) == 0 && len(s.recovering) == 0 &&
		len(s.afterReturning) == 0 && len(s.afterThrowing) == 0 && len(s.after) == 0
}

// wrap returns the callable handed to callers: same signature as underlying,
// running the chain on every call.
func (s *resolved) wrap(identity types.CallableIdentity, underlying types.Callable) types.Callable {
	return func(ctx context.Context, args ...interface{}) (interface{}, error) {
		return s.invoke(ctx, identity, underlying, args)
	}
}

// invoke executes one intercepted call:
//
//  1. fresh join point with the call arguments
//  2. before-advices in order; an error aborts to the error path as if the
//     underlying call had failed
//  3. around layers nested innermost-first around the terminal call, each
//     receiving a single-use proceed capability
//  4. on error, recovering advices may convert the outcome to a success
//  5. afterReturning or afterThrowing depending on outcome, then after-always
//  6. final result or error to the caller
//
// invoke 执行一次被拦截的调用：
//
//  1. 用调用参数创建全新连接点
//  2. 按顺序执行前置增强；出错时视同底层调用失败，直接进入错误路径
//  3. 环绕层由内向外嵌套在终端调用外围，每层获得一次性的 proceed 能力
//  4. 出错时，恢复增强可以把结果转换为成功
//  5. 按结果执行 afterReturning 或 afterThrowing，然后执行 after
//  6. 把最终结果或错误返回给调用方
func (s *resolved) invoke(ctx context.Context, identity types.CallableIdentity, underlying types.Callable, args []interface{}) (interface{}, error) {
	jp := newJoinPoint(identity, args)

	var result interface{}
	var callErr error

	for _, a := range s.before {
		if err := a.Before(ctx, jp); err != nil {
			callErr = err
			break
		}
	}

	if callErr == nil {
		next := s.buildChain(jp, underlying)
		result, callErr = next(ctx)
	}
	jp.setOutcome(result, callErr)

	if callErr != nil {
		result, callErr = s.recover(ctx, jp)
	}

	if callErr == nil {
		for _, a := range s.afterReturning {
			if err := a.AfterReturning(ctx, jp); err != nil {
				return nil, &AdviceExecutionError{Identity: identity, Kind: types.KindAfterReturning, Err: err}
			}
		}
	} else {
		for _, a := range s.afterThrowing {
			if err := a.AfterThrowing(ctx, jp); err != nil {
				return nil, &AdviceExecutionError{Identity: identity, Kind: types.KindAfterThrowing, Err: err}
			}
		}
	}
	for _, a := range s.after {
		if err := a.After(ctx, jp); err != nil {
			return nil, &AdviceExecutionError{Identity: identity, Kind: types.KindAfter, Err: err}
		}
	}
	return result, callErr
}

// buildChain nests the around layers from innermost to outermost around the
// terminal underlying call. Each layer's body receives its own proceed
// capability guarding against double invocation.
func (s *resolved) buildChain(jp *joinPoint, underlying types.Callable) types.Proceed {
	next := func(ctx context.Context, pargs ...interface{}) (interface{}, error) {
		return underlying(ctx, jp.Args()...)
	}
	for i := len(s.around) - 1; i >= 0; i-- {
		a, inner := s.around[i], next
		next = func(ctx context.Context, pargs ...interface{}) (interface{}, error) {
			return a.Around(ctx, jp, guardProceed(jp, inner))
		}
	}
	return next
}

// guardProceed enforces the at-most-once contract of proceed. The second
// invocation fails with DoubleProceedError and never reaches the inner chain,
// so the underlying call cannot run twice. Arguments passed to proceed
// replace the join point arguments for all inner layers.
func guardProceed(jp *joinPoint, inner types.Proceed) types.Proceed {
	var called int32
	return func(ctx context.Context, pargs ...interface{}) (interface{}, error) {
		if !atomic.CompareAndSwapInt32(&called, 0, 1) {
			return nil, &DoubleProceedError{Identity: jp.Identity()}
		}
		if len(pargs) > 0 {
			jp.setArgs(pargs)
		}
		return inner(ctx)
	}
}

// recover runs the recovering advices on an error outcome. The first advice
// returning a nil error converts the call to a success with its value;
// a non-nil return replaces the error and the next recovering advice sees it.
func (s *resolved) recover(ctx context.Context, jp *joinPoint) (interface{}, error) {
	result, callErr := jp.Result(), jp.Err()
	for _, a := range s.recovering {
		v, err := a.Recover(ctx, jp)
		if err == nil {
			result, callErr = v, nil
			jp.setOutcome(result, nil)
			break
		}
		callErr = err
		jp.setOutcome(nil, err)
	}
	return result, callErr
}
