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

// Package aop provides a lightweight, embeddable method-interception (aspect
// weaving) framework: cross-cutting behaviors such as logging, timing,
// metrics, concurrency limiting and error recovery are attached declaratively
// to callables through pattern-matched selectors, without modifying the
// callables themselves.
//
// # Usage
//
// Register advice bindings against selectors, seal the registry, then wrap
// callables and invoke the wrapped form:
//
//	config := types.NewConfig()
//	registry := engine.NewRegistry(config)
//	registry.Register(selector.Pattern{Scope: "service", Name: "*"}, advice.NewDebug(config))
//	registry.Register(selector.Pattern{Scope: "service", Name: "*"}, advice.NewTiming(config.Logger))
//	registry.Seal()
//
//	getUser := func(ctx context.Context, args ...any) (any, error) {
//		return "John Doe", nil
//	}
//	wrapped, err := registry.Wrap(types.NewIdentity("service", "getUser", "() string"), getUser)
//	result, err := wrapped(context.Background())
//
// Bindings can also be loaded from a JSON DSL document:
//
//	var bindings = `
//	{
//	  "bindings": [
//	    {
//	      "selector": {"type": "pattern", "configuration": {"scope": "service", "name": "*"}},
//	      "advice":   {"type": "debug"}
//	    },
//	    {
//	      "selector": {"type": "expr", "configuration": {"expr": "name startsWith \"get\""}},
//	      "advice":   {"type": "timing"}
//	    }
//	  ]
//	}
//	`
//	registry, err := aop.Load([]byte(bindings))
//
// The registry is write-once-at-startup: complete all registration before the
// first Wrap, then wrap and invoke concurrently from any number of goroutines.
//
// Package aop 提供一个轻量级、可嵌入的方法拦截（切面织入）框架：日志、耗时、
// 指标、并发限制、错误恢复等横切行为通过模式匹配的选择器声明式地附加到可调用
// 单元上，而无需修改可调用单元本身。
package aop

import (
	"fmt"

	"github.com/rulego/aop/api/types"
	"github.com/rulego/aop/builtin/advice"
	"github.com/rulego/aop/engine"
	"github.com/rulego/aop/selector"
	"github.com/rulego/aop/utils/maps"
)

// New creates an empty Registry with a configuration built from the options.
// New 根据选项构建配置，并创建一个空的 Registry。
func New(opts ...types.Option) *engine.Registry {
	return engine.NewRegistry(types.NewConfig(opts...))
}

// Load builds a sealed Registry from a JSON binding DSL document.
// Load 从 JSON 绑定 DSL 文档构建一个已封印的 Registry。
func Load(def []byte, opts ...types.Option) (*engine.Registry, error) {
	d, err := ParseDefinition(def)
	if err != nil {
		return nil, err
	}
	config := types.NewConfig(opts...)
	registry := engine.NewRegistry(config)
	for i, b := range d.Bindings {
		sel, err := newSelector(b.Selector)
		if err != nil {
			return nil, fmt.Errorf("aop: binding %d: %w", i, err)
		}
		adv, err := newAdvice(config, b.Advice)
		if err != nil {
			return nil, fmt.Errorf("aop: binding %d: %w", i, err)
		}
		registry.Register(sel, adv)
	}
	registry.Seal()
	return registry, nil
}

// newSelector builds a selector from its DSL definition.
func newSelector(def SelectorDef) (types.Selector, error) {
	switch def.Type {
	case "":
		// absent selector matches everything
		return nil, nil
	case "exact":
		var s selector.Exact
		if err := maps.Map2Struct(def.Configuration, &s); err != nil {
			return nil, err
		}
		return s, nil
	case "pattern":
		var s selector.Pattern
		if err := maps.Map2Struct(def.Configuration, &s); err != nil {
			return nil, err
		}
		return s, nil
	case "tag":
		var cfg struct {
			Tag string
		}
		if err := maps.Map2Struct(def.Configuration, &cfg); err != nil {
			return nil, err
		}
		return selector.Tag(cfg.Tag), nil
	case "expr":
		var cfg struct {
			Expr string
		}
		if err := maps.Map2Struct(def.Configuration, &cfg); err != nil {
			return nil, err
		}
		return selector.NewExpr(cfg.Expr)
	default:
		return nil, fmt.Errorf("unknown selector type %q", def.Type)
	}
}

// newAdvice builds an advice from its DSL definition.
func newAdvice(config types.Config, def AdviceDef) (types.Advice, error) {
	switch def.Type {
	case "debug":
		return advice.NewDebug(config), nil
	case "timing":
		return advice.NewTiming(config.Logger), nil
	case "metrics":
		return advice.NewMetrics(nil), nil
	case "limiter":
		var cfg struct {
			Max int
		}
		if err := maps.Map2Struct(def.Configuration, &cfg); err != nil {
			return nil, err
		}
		return advice.NewConcurrencyLimiter(cfg.Max), nil
	case "fallback":
		var cfg struct {
			Value interface{}
		}
		if err := maps.Map2Struct(def.Configuration, &cfg); err != nil {
			return nil, err
		}
		return advice.NewFallback(cfg.Value), nil
	case "script":
		var cfg struct {
			Script string
		}
		if err := maps.Map2Struct(def.Configuration, &cfg); err != nil {
			return nil, err
		}
		order := def.Order
		if order == 0 {
			order = 500
		}
		return advice.NewScript(config, order, cfg.Script)
	default:
		return nil, fmt.Errorf("unknown advice type %q", def.Type)
	}
}
