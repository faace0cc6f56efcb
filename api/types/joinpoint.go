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

// JoinPoint is the runtime context of one intercepted call. A fresh join
// point is created per call, is never shared across concurrent calls, and
// is discarded when the call completes.
//
// The argument slice reflects any replacement performed by around-advice
// through Proceed. Result and Err are populated only once the chain has
// produced an outcome, so before-advice observes them as zero values.
//
// JoinPoint 是一次被拦截调用的运行时上下文。每次调用都会创建全新的连接点，
// 不会在并发调用之间共享，调用结束后即被丢弃。
//
// 参数切片会反映环绕增强通过 Proceed 进行的参数替换。Result 和 Err 只有在
// 调用链产生结果之后才会填充，前置增强看到的是零值。
type JoinPoint interface {
	// CallID returns the unique identifier of this call.
	// CallID 返回本次调用的唯一标识。
	CallID() string
	// Identity returns the identity of the intercepted callable.
	Identity() CallableIdentity
	// Args returns the current call arguments.
	Args() []any
	// Result returns the success value of the call, nil until the outcome is known.
	Result() any
	// Err returns the error outcome of the call, nil until the outcome is known.
	Err() error
}
