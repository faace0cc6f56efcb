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
	"errors"
	"sync/atomic"

	"github.com/rulego/aop/api/types"
)

// ErrConcurrencyLimitReached is returned to callers when the limiter rejects a call.
// ErrConcurrencyLimitReached 在限流器拒绝调用时返回给调用方。
var ErrConcurrencyLimitReached = errors.New("aop: concurrency limit reached")

// ConcurrencyLimiter implements a concurrency limiter using atomic operations
// to restrict the number of concurrent executions of matched calls. The call
// is rejected without executing the underlying callable when the limit is
// reached: the around body short-circuits by not proceeding.
//
// ConcurrencyLimiter 使用原子操作实现并发限制器，限制匹配调用的并发执行数量。
// 达到上限时调用被拒绝且底层可调用单元不会执行：环绕体通过不调用 proceed 短路。
type ConcurrencyLimiter struct {
	Max          int64 // Maximum number of concurrent executions  最大并发执行数量
	currentCount int64 // Current number of concurrent executions  当前并发执行数量
}

var _ types.AroundAdvice = (*ConcurrencyLimiter)(nil)

// NewConcurrencyLimiter creates a new concurrency limiter advice with the
// specified maximum number of concurrent executions.
// NewConcurrencyLimiter 创建具有指定最大并发执行数量的并发限制增强。
func NewConcurrencyLimiter(max int) *ConcurrencyLimiter {
	return &ConcurrencyLimiter{
		Max: int64(max),
	}
}

// Order returns the execution priority of this advice. Lower values execute
// earlier; the limiter runs with order 10 so rejected calls skip all inner work.
// Order 返回此增强的执行优先级。值越低，执行越早；限流器顺序为 10，
// 被拒绝的调用会跳过所有内层工作。
func (a *ConcurrencyLimiter) Order() int {
	return 10
}

// Around admits the call with a compare-and-swap on the current count to stay
// race-free under parallel callers, and releases the slot when the call ends.
// Around 通过对当前计数的比较并交换在并发调用下无竞态地放行调用，
// 并在调用结束时释放名额。
func (a *ConcurrencyLimiter) Around(ctx context.Context, jp types.JoinPoint, proceed types.Proceed) (interface{}, error) {
	for {
		current := atomic.LoadInt64(&a.currentCount)
		if current >= a.Max {
			return nil, ErrConcurrencyLimitReached
		}
		if atomic.CompareAndSwapInt64(&a.currentCount, current, current+1) {
			break
		}
	}
	defer atomic.AddInt64(&a.currentCount, -1)
	return proceed(ctx)
}

// Current returns the number of calls executing right now.
func (a *ConcurrencyLimiter) Current() int64 {
	return atomic.LoadInt64(&a.currentCount)
}
