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

// Package selector provides the built-in pointcut selector implementations:
// exact identity match, glob-style scope/name patterns, tag match, expression
// predicates and boolean combinators.
//
// Package selector 提供内置的切入点选择器实现：精确标识匹配、glob 风格的
// 作用域/名称模式、标签匹配、表达式谓词以及布尔组合器。
package selector

import (
	"github.com/rulego/aop/api/types"
)

// Exact matches one identity precisely. An empty Signature matches any
// signature, so callers that do not version signatures can omit it.
// Exact 精确匹配一个标识。Signature 为空时匹配任意签名。
type Exact struct {
	Scope     string
	Name      string
	Signature string
}

var _ types.Selector = (*Exact)(nil)

func (s Exact) Matches(identity types.CallableIdentity) bool {
	if s.Scope != identity.Scope() || s.Name != identity.Name() {
		return false
	}
	return s.Signature == "" || s.Signature == identity.Signature()
}

// Tag matches every callable registered with the given metadata tag,
// the explicit-metadata analogue of annotation-based pointcuts.
// Tag 匹配注册时携带指定元数据标签的所有可调用单元，是注解切点的显式元数据等价物。
type Tag string

var _ types.Selector = Tag("")

func (t Tag) Matches(identity types.CallableIdentity) bool {
	return identity.HasTag(string(t))
}

type and struct {
	selectors []types.Selector
}

func (s and) Matches(identity types.CallableIdentity) bool {
	for _, sel := range s.selectors {
		if !sel.Matches(identity) {
			return false
		}
	}
	return true
}

// And matches when every given selector matches. And() matches everything.
func And(selectors ...types.Selector) types.Selector {
	return and{selectors: selectors}
}

type or struct {
	selectors []types.Selector
}

func (s or) Matches(identity types.CallableIdentity) bool {
	for _, sel := range s.selectors {
		if sel.Matches(identity) {
			return true
		}
	}
	return false
}

// Or matches when at least one given selector matches.
func Or(selectors ...types.Selector) types.Selector {
	return or{selectors: selectors}
}

type not struct {
	selector types.Selector
}

func (s not) Matches(identity types.CallableIdentity) bool {
	return !s.selector.Matches(identity)
}

// Not inverts a selector.
func Not(selector types.Selector) types.Selector {
	return not{selector: selector}
}
