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
	"github.com/rulego/aop/api/types/metrics"
)

// Metrics 实现了统计被拦截调用指标的功能
type Metrics struct {
	metrics *metrics.CallMetrics
}

var _ types.AroundAdvice = (*Metrics)(nil)

func NewMetrics(m *metrics.CallMetrics) *Metrics {
	if m == nil {
		m = metrics.NewCallMetrics()
	}
	return &Metrics{
		metrics: m,
	}
}

func (a *Metrics) Order() int {
	return 20
}

// Around counts the call: current and total on entry, success or failed on
// completion, decrementing current either way.
func (a *Metrics) Around(ctx context.Context, jp types.JoinPoint, proceed types.Proceed) (interface{}, error) {
	a.metrics.IncrementCurrent()
	a.metrics.IncrementTotal()
	defer a.metrics.DecrementCurrent()

	result, err := proceed(ctx)
	if err != nil {
		a.metrics.IncrementFailed()
	} else {
		a.metrics.IncrementSuccess()
	}
	return result, err
}

// GetMetrics 返回当前的指标
func (a *Metrics) GetMetrics() *metrics.CallMetrics {
	return a.metrics
}
