/*
 * Copyright 2023 The RuleGo Authors.
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

// Package js provides JavaScript execution capabilities for script advice.
//
// This package implements a JavaScript engine using the goja library. It
// compiles an advice script once, keeps a pool of JavaScript VMs for
// efficient reuse under concurrent calls, exposes the global configuration
// properties to scripts through the `global` variable, and enforces the
// configured maximum script execution time via VM interrupts.
//
// Package js 为脚本增强提供 JavaScript 执行能力。
// 它使用 goja 库实现：增强脚本只编译一次，通过 VM 池在并发调用下高效复用，
// 通过 `global` 变量向脚本暴露全局配置属性，并通过 VM 中断强制执行配置的
// 脚本最大执行时间。
package js

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dop251/goja"

	"github.com/rulego/aop/api/types"
)

const (
	// GlobalKey is the variable name scripts read configuration properties from.
	GlobalKey = "global"
)

// GojaJsEngine goja js engine
type GojaJsEngine struct {
	vmPool   sync.Pool
	config   types.Config
	jsScript *goja.Program
}

// NewGojaJsEngine creates a new instance of the JavaScript engine with the
// given script preloaded into every pooled VM.
func NewGojaJsEngine(config types.Config, jsScript string) (*GojaJsEngine, error) {
	program, err := goja.Compile("", jsScript, true)
	if err != nil {
		return nil, err
	}
	jsEngine := &GojaJsEngine{
		config:   config,
		jsScript: program,
	}
	jsEngine.vmPool = sync.Pool{
		New: func() interface{} {
			return jsEngine.NewVm(config)
		},
	}
	return jsEngine, nil
}

// NewVm new a js VM
func (g *GojaJsEngine) NewVm(config types.Config) *goja.Runtime {
	vm := goja.New()

	if len(config.Properties) != 0 {
		if err := vm.Set(GlobalKey, config.Properties); err != nil {
			config.Logger.Printf("set global properties error: %s", err.Error())
		}
	}
	// console.log writes through the configured logger
	console := map[string]interface{}{
		"log": func(args ...interface{}) {
			config.Logger.Printf("%s", fmt.Sprintln(args...))
		},
	}
	if err := vm.Set("console", console); err != nil {
		config.Logger.Printf("set console error: %s", err.Error())
	}

	// Run the advice script with timeout so a bad script cannot wedge the pool
	timer := g.startTimeout(vm)
	_, err := vm.RunProgram(g.jsScript)
	g.stopTimeout(timer)

	if err != nil {
		config.Logger.Printf("js vm error: %s", err.Error())
	}
	return vm
}

// Execute executes the named JavaScript function from the advice script.
func (g *GojaJsEngine) Execute(functionName string, argumentList ...interface{}) (out interface{}, err error) {
	defer func() {
		if caught := recover(); caught != nil {
			err = fmt.Errorf("%s", caught)
		}
	}()

	vm := g.vmPool.Get().(*goja.Runtime)
	defer g.vmPool.Put(vm)

	var timer *time.Timer
	if g.config.ScriptMaxExecutionTime > 0 {
		timer = g.startTimeout(vm)
		defer g.stopTimeout(timer)
	}

	f, ok := goja.AssertFunction(vm.Get(functionName))
	if !ok {
		return nil, errors.New(functionName + " is not a function")
	}

	var params []goja.Value
	if len(argumentList) > 0 {
		params = make([]goja.Value, len(argumentList))
		for i, v := range argumentList {
			params[i] = vm.ToValue(v)
		}
	}

	res, err := f(goja.Undefined(), params...)
	if err != nil {
		return nil, err
	}
	return res.Export(), nil
}

func (g *GojaJsEngine) Stop() {
}

// startTimeout starts a timeout for JS script execution using time.AfterFunc.
// Returns nil if timeout is not configured.
func (g *GojaJsEngine) startTimeout(vm *goja.Runtime) *time.Timer {
	if g.config.ScriptMaxExecutionTime <= 0 {
		return nil
	}

	// Use time.AfterFunc to avoid creating goroutines
	return time.AfterFunc(g.config.ScriptMaxExecutionTime, func() {
		vm.Interrupt("execution timeout")
	})
}

// stopTimeout stops the timeout timer
func (g *GojaJsEngine) stopTimeout(timer *time.Timer) {
	if timer != nil {
		timer.Stop()
	}
}
