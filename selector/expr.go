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
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/rulego/aop/api/types"
)

// Expr matches identities with a compiled expression predicate. The
// expression sees the variables `scope`, `name`, `signature`, `fullName` and
// `tags` and must evaluate to a boolean, for example:
//
//	scope == "service" && name startsWith "get"
//	"critical" in tags
//
// Expression evaluation stays a pure function of the identity. A runtime
// evaluation failure or a non-boolean result panics, which wrap resolution
// reports as SelectorEvaluationError.
//
// Expr 使用编译后的表达式谓词匹配标识。表达式可见变量为 `scope`、`name`、
// `signature`、`fullName` 和 `tags`，且必须求值为布尔值。表达式求值始终是标识
// 的纯函数。运行期求值失败或结果非布尔值会 panic，由 Wrap 解析过程包装为
// SelectorEvaluationError 上报。
type Expr struct {
	source  string
	program *vm.Program
}

var _ types.Selector = (*Expr)(nil)

// NewExpr compiles an expression predicate into a selector. Compilation
// errors surface immediately at registration time, never during matching.
// NewExpr 将表达式谓词编译为选择器。编译错误在注册时立即暴露，而不是在匹配时。
func NewExpr(source string) (*Expr, error) {
	program, err := expr.Compile(source, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("aop: compile selector expression %q: %w", source, err)
	}
	return &Expr{source: source, program: program}, nil
}

func (s *Expr) Matches(identity types.CallableIdentity) bool {
	tags := identity.Tags()
	if tags == nil {
		tags = []string{}
	}
	env := map[string]interface{}{
		"scope":     identity.Scope(),
		"name":      identity.Name(),
		"signature": identity.Signature(),
		"fullName":  identity.FullName(),
		"tags":      tags,
	}
	out, err := vm.Run(s.program, env)
	if err != nil {
		panic(fmt.Errorf("aop: run selector expression %q: %w", s.source, err))
	}
	matched, ok := out.(bool)
	if !ok {
		panic(fmt.Errorf("aop: selector expression %q returned %T, want bool", s.source, out))
	}
	return matched
}

// String returns the expression source.
func (s *Expr) String() string {
	return s.source
}
