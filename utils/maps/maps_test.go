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

package maps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patternConfig struct {
	Scope string
	Name  string
}

type limiterConfig struct {
	Max int
}

func TestMap2Struct(t *testing.T) {
	var p patternConfig
	err := Map2Struct(map[string]interface{}{
		"scope": "service",
		"name":  "get*",
	}, &p)
	require.NoError(t, err)
	assert.Equal(t, "service", p.Scope)
	assert.Equal(t, "get*", p.Name)

	// JSON numbers arrive as float64 and must land in int fields
	var l limiterConfig
	err = Map2Struct(map[string]interface{}{"max": float64(100)}, &l)
	require.NoError(t, err)
	assert.Equal(t, 100, l.Max)
}

func TestMap2StructNilAndBadInput(t *testing.T) {
	var p patternConfig
	require.NoError(t, Map2Struct(nil, &p))
	assert.Equal(t, "", p.Scope)

	assert.Error(t, Map2Struct("not a map", &p))

	var out patternConfig
	assert.Error(t, Map2Struct(map[string]interface{}{"scope": "service"}, out))
}
