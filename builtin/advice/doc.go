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

// Package advice provides the built-in advice implementations for the weaving
// core. Each advice addresses one cross-cutting concern and can be bound to
// any selector, keeping the concern separated from the wrapped business logic.
//
// Package advice 为织入核心提供内置增强实现。每个增强处理一个横切关注点，
// 可以绑定到任意选择器，使关注点与被包装的业务逻辑分离。
//
// Available Built-in Advices:
// 可用的内置增强：
//
//   - Debug: logs call entry and outcome through the configured logger
//     Debug：通过配置的日志器记录调用进入和结果
//
//   - Timing: measures and reports the execution time of matched calls
//     Timing：测量并报告匹配调用的执行耗时
//
//   - Metrics: maintains atomic counters of current/total/success/failed calls
//     Metrics：维护当前/总数/成功/失败调用的原子计数器
//
//   - ConcurrencyLimiter: bounds concurrent executions of matched calls
//     ConcurrencyLimiter：限制匹配调用的并发执行数量
//
//   - Fallback: converts error outcomes into a configured fallback value
//     Fallback：将错误结果转换为配置的兜底值
//
//   - Script: runs JavaScript observation hooks before and after matched calls
//     Script：在匹配调用前后运行 JavaScript 观察钩子
//
// Advice Execution Order:
// 增强执行顺序：
//
// Advices run in order based on their Order() method, registration order
// breaking ties:
// 增强根据其 Order() 方法按顺序执行，相同时按注册顺序：
//  1. ConcurrencyLimiter (order: 10)
//  2. Fallback (order: 10)
//  3. Metrics (order: 20)
//  4. Timing (order: 800)
//  5. Debug (order: 900)
//  6. Script (order: configurable, default 500)
package advice
