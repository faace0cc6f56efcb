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

// Package engine implements the weaving core: a Registry of (selector, advice)
// bindings and the invocation chain that runs matched advice around a wrapped
// callable.
//
// The registry is write-once-at-startup and read-heavy afterwards: register
// all bindings, call Seal, then Wrap and invoke concurrently from any number
// of goroutines. Resolution results are cached per callable identity because
// the set of matching advices for an identity never changes after sealing.
//
// Package engine 实现织入核心：保存（选择器，增强）绑定的注册表，以及在被包装
// 的可调用单元外围执行匹配增强的调用链。
//
// 注册表是启动期写入、之后以读为主：先注册所有绑定，调用 Seal，然后可以在任意
// 数量的 goroutine 中并发地 Wrap 和调用。解析结果按可调用标识缓存，因为封印后
// 一个标识匹配到的增强集合不再变化。
package engine

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/rulego/aop/api/types"
)

// ErrNilCallable is returned by Wrap when no underlying callable is supplied.
var ErrNilCallable = errors.New("aop: nil callable")

// binding pairs one selector with one advice. seq is the registration order,
// the tie-break for advices with equal Order().
// binding 将一个选择器和一个增强配对。seq 是注册顺序，作为 Order() 相同时的次序。
type binding struct {
	selector types.Selector
	advice   types.Advice
	seq      int
}

// Registry holds the ordered set of advice bindings and produces wrapped
// callables. Create it with NewRegistry, add bindings with Register, freeze
// with Seal, then hand out wrapped callables with Wrap.
//
// Registration must be complete before any Wrap occurs; registering after a
// Wrap is a precondition violation with undefined matching for identities
// already resolved. Seal turns late registration into a panic to catch gross
// misuse.
//
// Registry 保存有序的增强绑定集合并生成包装后的可调用单元。通过 NewRegistry
// 创建，Register 添加绑定，Seal 冻结，然后通过 Wrap 获取包装结果。
//
// 注册必须在任何 Wrap 之前完成；在 Wrap 之后注册属于违反前置条件，已解析标识的
// 匹配结果未定义。Seal 会让迟到的注册直接 panic，以便尽早暴露严重误用。
type Registry struct {
	config   types.Config
	mu       sync.RWMutex
	bindings []binding
	sealed   bool
	// resolution cache, keyed by full identity (scope, name, signature, tags)
	cache sync.Map
}

// NewRegistry creates an empty Registry with the given configuration.
func NewRegistry(config types.Config) *Registry {
	return &Registry{config: config}
}

// Config returns the registry configuration.
func (r *Registry) Config() types.Config {
	return r.config
}

// Register adds a binding. Duplicate bindings are permitted and all apply.
// A nil selector matches every identity. An advice that implements several
// advice-kind interfaces is bound at each of those kinds.
//
// Register 添加一个绑定。允许重复绑定，且全部生效。nil 选择器匹配所有标识。
// 实现了多个增强类型接口的增强会在每个类型上生效。
func (r *Registry) Register(selector types.Selector, advice types.Advice) {
	if advice == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		panic("aop: Register called on sealed registry")
	}
	r.bindings = append(r.bindings, binding{
		selector: selector,
		advice:   advice,
		seq:      len(r.bindings),
	})
}

// Seal freezes the binding set. Further Register calls panic. Sealing is
// idempotent and optional: it exists so applications can mark the end of the
// registration phase explicitly.
//
// Seal 冻结绑定集合，之后的 Register 调用会 panic。Seal 幂等且可选，
// 用于让应用显式标记注册阶段的结束。
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
}

// Wrap resolves all bindings whose selector matches identity and returns a
// callable with the same external signature that runs the matched advice
// around underlying. The original callable is never mutated, only wrapped.
// When nothing matches, the underlying callable is returned unchanged.
//
// The resolution result is cached by identity, so repeated wraps and calls
// of the same identity reuse one resolved chain. Wrap fails fast with
// SelectorEvaluationError if any selector panics while matching.
//
// Wrap 解析所有选择器匹配该标识的绑定，返回一个外部签名相同、在 underlying
// 外围执行匹配增强的可调用单元。原始可调用单元从不被修改，只被包装。
// 没有任何匹配时，原样返回 underlying。
//
// 解析结果按标识缓存，同一标识的重复包装和调用复用同一条已解析链。匹配过程中
// 任一选择器 panic，Wrap 会以 SelectorEvaluationError 立即失败。
func (r *Registry) Wrap(identity types.CallableIdentity, underlying types.Callable) (types.Callable, error) {
	if underlying == nil {
		return nil, ErrNilCallable
	}
	res, err := r.resolve(identity)
	if err != nil {
		return nil, err
	}
	if res.empty() {
		return underlying, nil
	}
	return res.wrap(identity, underlying), nil
}

// resolve returns the cached advice partition set for identity, computing and
// caching it on first use.
func (r *Registry) resolve(identity types.CallableIdentity) (*resolved, error) {
	key := cacheKey(identity)
	if v, ok := r.cache.Load(key); ok {
		return v.(*resolved), nil
	}
	matched, err := r.match(identity)
	if err != nil {
		return nil, err
	}
	res := partition(matched)
	actual, _ := r.cache.LoadOrStore(key, res)
	return actual.(*resolved), nil
}

// match collects the bindings applying to identity, in registration order.
func (r *Registry) match(identity types.CallableIdentity) ([]binding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []binding
	for _, b := range r.bindings {
		ok, err := safeMatch(b.selector, identity)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

// safeMatch evaluates one selector, converting a panic into a
// SelectorEvaluationError so a broken selector aborts resolution loudly.
func safeMatch(selector types.Selector, identity types.CallableIdentity) (ok bool, err error) {
	if selector == nil {
		return true, nil
	}
	defer func() {
		if caught := recover(); caught != nil {
			ok = false
			err = &SelectorEvaluationError{Identity: identity, Recovered: caught}
		}
	}()
	return selector.Matches(identity), nil
}

// partition sorts the matched bindings by (Order, registration order) and
// splits them into per-kind slices: one slice per stage, resolved once and
// reused for every call of the identity.
func partition(matched []binding) *resolved {
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].advice.Order() < matched[j].advice.Order()
	})
	res := &resolved{}
	for _, b := range matched {
		if a, ok := b.advice.(types.BeforeAdvice); ok {
			res.before = append(res.before, a)
		}
		if a, ok := b.advice.(types.AroundAdvice); ok {
			res.around = append(res.around, a)
		}
		if a, ok := b.advice.(types.RecoveringAdvice); ok {
			res.recovering = append(res.recovering, a)
		}
		if a, ok := b.advice.(types.AfterReturningAdvice); ok {
			res.afterReturning = append(res.afterReturning, a)
		}
		if a, ok := b.advice.(types.AfterThrowingAdvice); ok {
			res.afterThrowing = append(res.afterThrowing, a)
		}
		if a, ok := b.advice.(types.AfterAdvice); ok {
			res.after = append(res.after, a)
		}
	}
	return res
}

func cacheKey(identity types.CallableIdentity) string {
	var sb strings.Builder
	sb.WriteString(identity.Scope())
	sb.WriteByte(0)
	sb.WriteString(identity.Name())
	sb.WriteByte(0)
	sb.WriteString(identity.Signature())
	sb.WriteByte(0)
	sb.WriteString(strings.Join(identity.Tags(), ","))
	return sb.String()
}
