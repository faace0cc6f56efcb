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
	"strings"

	"github.com/rulego/aop/api/types"
	"github.com/rulego/aop/utils/js"
)

const (
	// OnBeforeFuncName is the script function invoked before matched calls.
	OnBeforeFuncName = "onBefore"
	// OnAfterFuncName is the script function invoked after matched calls.
	OnAfterFuncName = "onAfter"
)

var (
	_ types.BeforeAdvice = (*Script)(nil)
	_ types.AfterAdvice  = (*Script)(nil)
)

// Script runs JavaScript observation hooks around matched calls. The script
// may define two functions:
//
//	function onBefore(jp) { ... }
//	function onAfter(jp) { ... }
//
// Each receives a plain object snapshot of the join point:
// {callId, scope, name, signature, fullName, args, result, error}.
// Hooks observe only; their return values are discarded and they cannot
// change the outcome of the call. A hook error (or exceeding the configured
// script execution time) surfaces as an advice execution failure.
//
// Script 在匹配调用前后运行 JavaScript 观察钩子。脚本可以定义 onBefore 和
// onAfter 两个函数，入参是连接点的普通对象快照。钩子只做观察；返回值被丢弃，
// 不能改变调用结果。钩子出错（或超过配置的脚本执行时间）会作为增强执行失败上抛。
type Script struct {
	config types.Config
	order  int
	engine *js.GojaJsEngine
	hasOnB bool
	hasOnA bool
}

// NewScript compiles the advice script once and prepares the VM pool.
// Missing hook functions are allowed; the corresponding stage is a no-op.
// NewScript 一次性编译增强脚本并准备 VM 池。允许缺少钩子函数，对应阶段为空操作。
func NewScript(config types.Config, order int, script string) (*Script, error) {
	engine, err := js.NewGojaJsEngine(config, script)
	if err != nil {
		return nil, err
	}
	return &Script{
		config: config,
		order:  order,
		engine: engine,
		hasOnB: containsFunc(script, OnBeforeFuncName),
		hasOnA: containsFunc(script, OnAfterFuncName),
	}, nil
}

// Order returns the configured execution order of this advice.
func (a *Script) Order() int {
	return a.order
}

// Before invokes the script's onBefore hook, when defined.
func (a *Script) Before(ctx context.Context, jp types.JoinPoint) error {
	if !a.hasOnB {
		return nil
	}
	_, err := a.engine.Execute(OnBeforeFuncName, snapshot(jp))
	return err
}

// After invokes the script's onAfter hook, when defined.
func (a *Script) After(ctx context.Context, jp types.JoinPoint) error {
	if !a.hasOnA {
		return nil
	}
	_, err := a.engine.Execute(OnAfterFuncName, snapshot(jp))
	return err
}

// containsFunc reports whether the script source declares the named function.
// Detection is textual on purpose: hooks are top-level declarations.
func containsFunc(script string, name string) bool {
	return strings.Contains(script, "function "+name) ||
		strings.Contains(script, name+" =") || strings.Contains(script, name+"=")
}

// snapshot converts the join point into a plain map for the script side.
func snapshot(jp types.JoinPoint) map[string]interface{} {
	identity := jp.Identity()
	m := map[string]interface{}{
		"callId":    jp.CallID(),
		"scope":     identity.Scope(),
		"name":      identity.Name(),
		"signature": identity.Signature(),
		"fullName":  identity.FullName(),
		"args":      jp.Args(),
		"result":    jp.Result(),
	}
	if err := jp.Err(); err != nil {
		m["error"] = err.Error()
	} else {
		m["error"] = ""
	}
	return m
}
