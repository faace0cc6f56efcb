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

import "strings"

// ScopeSeparator separates the segments of a callable scope, mirroring Go package paths.
// ScopeSeparator 分隔可调用作用域的路径段，与 Go 包路径风格一致。
const ScopeSeparator = "/"

// CallableIdentity identifies one wrappable callable: its declaring scope
// (a slash-separated namespace path), its name and its signature string.
// Identities are immutable once created and are the only input selectors
// may base a matching decision on.
//
// CallableIdentity 标识一个可包装的可调用单元：声明作用域（斜杠分隔的命名空间路径）、
// 名称和签名串。标识一经创建不可变，是选择器做匹配判断的唯一依据。
type CallableIdentity struct {
	scope     string
	name      string
	signature string
	tags      []string
}

// NewIdentity creates an immutable CallableIdentity.
// Tags are explicit metadata attached at registration time; they replace
// reflective annotation lookup and are matched by tag selectors.
//
// NewIdentity 创建一个不可变的 CallableIdentity。
// 标签是注册时附加的显式元数据，用于替代运行时注解扫描，由标签选择器匹配。
func NewIdentity(scope string, name string, signature string, tags ...string) CallableIdentity {
	var copied []string
	if len(tags) > 0 {
		copied = make([]string, len(tags))
		copy(copied, tags)
	}
	return CallableIdentity{
		scope:     scope,
		name:      name,
		signature: signature,
		tags:      copied,
	}
}

// Scope returns the declaring scope path.
func (id CallableIdentity) Scope() string {
	return id.scope
}

// Name returns the callable name.
func (id CallableIdentity) Name() string {
	return id.name
}

// Signature returns the parameter/result signature string.
func (id CallableIdentity) Signature() string {
	return id.signature
}

// Tags returns a copy of the metadata tags attached to the callable.
func (id CallableIdentity) Tags() []string {
	if len(id.tags) == 0 {
		return nil
	}
	copied := make([]string, len(id.tags))
	copy(copied, id.tags)
	return copied
}

// HasTag reports whether the callable carries the given metadata tag.
// HasTag 判断该可调用单元是否携带指定的元数据标签。
func (id CallableIdentity) HasTag(tag string) bool {
	for _, t := range id.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// FullName returns scope and name joined by the scope separator, e.g. "service/getUser".
func (id CallableIdentity) FullName() string {
	if id.scope == "" {
		return id.name
	}
	return id.scope + ScopeSeparator + id.name
}

// String implements fmt.Stringer. Signatures carry their own parentheses,
// so "service/getUser" with signature "() string" prints as "service/getUser() string".
func (id CallableIdentity) String() string {
	var sb strings.Builder
	sb.WriteString(id.FullName())
	sb.WriteString(id.signature)
	return sb.String()
}
