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

package aop

import (
	"encoding/json"

	"github.com/rulego/aop/api/types"
)

// Definition 增强绑定集合的 DSL 定义
// Definition is the DSL document describing a set of advice bindings.
type Definition struct {
	// Bindings 按声明顺序注册的绑定列表
	// Bindings are registered in declaration order.
	Bindings []BindingDef `json:"bindings"`
}

// BindingDef 一条（选择器，增强）绑定的定义
// BindingDef defines one (selector, advice) binding.
type BindingDef struct {
	// Selector 切入点选择器定义
	Selector SelectorDef `json:"selector"`
	// Advice 增强定义
	Advice AdviceDef `json:"advice"`
}

// SelectorDef 选择器定义。Type 取值：exact、pattern、tag、expr。
// SelectorDef defines a selector. Type is one of: exact, pattern, tag, expr.
// An absent selector definition (empty type) matches every identity.
type SelectorDef struct {
	Type string `json:"type"`
	// Configuration 类型专属配置，例如 pattern 的 {"scope":"service/**","name":"get*"}
	Configuration types.Configuration `json:"configuration"`
}

// AdviceDef 增强定义。Type 取值：debug、timing、metrics、limiter、fallback、script。
// AdviceDef defines an advice. Type is one of: debug, timing, metrics,
// limiter, fallback, script. Order applies to advices with a configurable
// order (script); the other built-in advices carry fixed orders.
type AdviceDef struct {
	Type  string `json:"type"`
	Order int    `json:"order"`
	// Configuration 类型专属配置，例如 script 的 {"script":"function onBefore(jp){...}"}
	Configuration types.Configuration `json:"configuration"`
}

// ParseDefinition 通过 json 解析绑定 DSL 文档
// ParseDefinition parses a binding DSL document from json.
func ParseDefinition(def []byte) (Definition, error) {
	var d Definition
	err := json.Unmarshal(def, &d)
	return d, err
}
