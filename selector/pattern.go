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

package selector

import (
	"strings"

	"github.com/rulego/aop/api/types"
)

// Pattern matches identities by glob-style scope and name patterns.
//
// The scope pattern is segmented by "/": `*` matches exactly one segment,
// `**` matches any number of segments including none. The name pattern is a
// single segment where `*` matches any run of characters. An empty scope or
// name pattern matches everything, which is the "all methods in a package"
// form.
//
// Examples:
//
//	Pattern{Scope: "service", Name: "*"}       // any callable in scope "service"
//	Pattern{Scope: "service/**", Name: "get*"} // getters anywhere below "service"
//	Pattern{}                                  // everything
//
// Pattern 通过 glob 风格的作用域和名称模式匹配标识。
//
// 作用域模式按 "/" 分段：`*` 匹配恰好一个段，`**` 匹配任意数量（含零个）的段。
// 名称模式是单个段，其中 `*` 匹配任意字符串。作用域或名称模式为空时匹配所有，
// 即"包内所有方法"的形式。
type Pattern struct {
	Scope string
	Name  string
}

var _ types.Selector = (*Pattern)(nil)

func (s Pattern) Matches(identity types.CallableIdentity) bool {
	return matchScope(s.Scope, identity.Scope()) && matchGlob(s.Name, identity.Name())
}

// matchScope matches a segmented scope pattern against a scope path.
func matchScope(pattern string, scope string) bool {
	if pattern == "" || pattern == "**" {
		return true
	}
	return matchSegments(strings.Split(pattern, types.ScopeSeparator), strings.Split(scope, types.ScopeSeparator))
}

// matchSegments matches pattern segments against scope segments, with `**`
// consuming any number of segments.
func matchSegments(pattern []string, segments []string) bool {
	if len(pattern) == 0 {
		return len(segments) == 0
	}
	if pattern[0] == "**" {
		// `**` may swallow zero or more leading segments
		for i := 0; i <= len(segments); i++ {
			if matchSegments(pattern[1:], segments[i:]) {
				return true
			}
		}
		return false
	}
	if len(segments) == 0 {
		return false
	}
	if !matchGlob(pattern[0], segments[0]) {
		return false
	}
	return matchSegments(pattern[1:], segments[1:])
}

// matchGlob matches a single segment pattern where `*` matches any run of
// characters. An empty pattern matches everything.
func matchGlob(pattern string, value string) bool {
	if pattern == "" || pattern == "*" {
		return true
	}
	parts := strings.Split(pattern, "*")
	if len(parts) == 1 {
		return pattern == value
	}
	if !strings.HasPrefix(value, parts[0]) {
		return false
	}
	value = value[len(parts[0]):]
	for _, part := range parts[1 : len(parts)-1] {
		if part == "" {
			continue
		}
		idx := strings.Index(value, part)
		if idx < 0 {
			return false
		}
		value = value[idx+len(part):]
	}
	return strings.HasSuffix(value, parts[len(parts)-1])
}
