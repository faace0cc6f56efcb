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
	"github.com/gofrs/uuid/v5"

	"github.com/rulego/aop/api/types"
)

// joinPoint is the per-call implementation of types.JoinPoint.
// One instance per call, owned by the invoking goroutine, never shared.
// joinPoint 是 types.JoinPoint 的按调用实现。每次调用一个实例，归调用方
// goroutine 所有，不会共享。
type joinPoint struct {
	id       string
	identity types.CallableIdentity
	args     []interface{}
	result   interface{}
	err      error
}

var _ types.JoinPoint = (*joinPoint)(nil)

func newJoinPoint(identity types.CallableIdentity, args []interface{}) *joinPoint {
	id, _ := uuid.NewV4()
	return &joinPoint{
		id:       id.String(),
		identity: identity,
		args:     args,
	}
}

func (jp *joinPoint) CallID() string {
	return jp.id
}

func (jp *joinPoint) Identity() types.CallableIdentity {
	return jp.identity
}

func (jp *joinPoint) Args() []interface{} {
	return jp.args
}

func (jp *joinPoint) Result() interface{} {
	return jp.result
}

func (jp *joinPoint) Err() error {
	return jp.err
}

// setArgs records an argument replacement performed through proceed.
func (jp *joinPoint) setArgs(args []interface{}) {
	jp.args = args
}

// setOutcome records the final result or error of the chain.
func (jp *joinPoint) setOutcome(result interface{}, err error) {
	jp.result = result
	jp.err = err
}
