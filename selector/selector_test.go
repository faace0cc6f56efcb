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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/aop/api/types"
)

var (
	getUser   = types.NewIdentity("service", "getUser", "() string")
	saveOrder = types.NewIdentity("service/order", "save", "(Order) error", "critical")
	listUsers = types.NewIdentity("repository/user", "list", "() []User")
)

func TestExact(t *testing.T) {
	assert.True(t, Exact{Scope: "service", Name: "getUser", Signature: "() string"}.Matches(getUser))
	assert.True(t, Exact{Scope: "service", Name: "getUser"}.Matches(getUser))
	assert.False(t, Exact{Scope: "service", Name: "getUser", Signature: "() int"}.Matches(getUser))
	assert.False(t, Exact{Scope: "service", Name: "getOrder"}.Matches(getUser))
	assert.False(t, Exact{Scope: "repository", Name: "getUser"}.Matches(getUser))
}

func TestPattern(t *testing.T) {
	tests := []struct {
		name     string
		pattern  Pattern
		identity types.CallableIdentity
		want     bool
	}{
		{"any name in scope", Pattern{Scope: "service", Name: "*"}, getUser, true},
		{"empty pattern matches everything", Pattern{}, listUsers, true},
		{"name glob", Pattern{Scope: "service", Name: "get*"}, getUser, true},
		{"name glob no match", Pattern{Scope: "service", Name: "save*"}, getUser, false},
		{"single star is one segment", Pattern{Scope: "*", Name: "*"}, saveOrder, false},
		{"single star matches one segment", Pattern{Scope: "*", Name: "*"}, getUser, true},
		{"double star any depth", Pattern{Scope: "**", Name: "*"}, saveOrder, true},
		{"double star under prefix", Pattern{Scope: "service/**", Name: "*"}, saveOrder, true},
		{"double star under prefix includes zero segments", Pattern{Scope: "service/**", Name: "*"}, getUser, true},
		{"wrong prefix", Pattern{Scope: "repository/**", Name: "*"}, saveOrder, false},
		{"segment glob", Pattern{Scope: "service/ord*", Name: "save"}, saveOrder, true},
		{"inner star", Pattern{Scope: "service", Name: "g*t*ser"}, getUser, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pattern.Matches(tt.identity))
		})
	}
}

func TestTag(t *testing.T) {
	assert.True(t, Tag("critical").Matches(saveOrder))
	assert.False(t, Tag("critical").Matches(getUser))
	assert.False(t, Tag("").Matches(getUser))
}

func TestExpr(t *testing.T) {
	sel, err := NewExpr(`scope == "service" && name startsWith "get"`)
	require.NoError(t, err)
	assert.True(t, sel.Matches(getUser))
	assert.False(t, sel.Matches(saveOrder))

	tagged, err := NewExpr(`"critical" in tags`)
	require.NoError(t, err)
	assert.True(t, tagged.Matches(saveOrder))
	assert.False(t, tagged.Matches(getUser))
}

func TestExprCompileError(t *testing.T) {
	_, err := NewExpr(`scope ==`)
	assert.Error(t, err)
}

func TestExprNonBoolPanics(t *testing.T) {
	sel, err := NewExpr(`name`)
	require.NoError(t, err)
	assert.Panics(t, func() {
		sel.Matches(getUser)
	})
}

func TestCombinators(t *testing.T) {
	inService := Pattern{Scope: "service/**", Name: "*"}
	critical := Tag("critical")

	assert.True(t, And(inService, critical).Matches(saveOrder))
	assert.False(t, And(inService, critical).Matches(getUser))
	assert.True(t, Or(critical, Exact{Scope: "service", Name: "getUser"}).Matches(getUser))
	assert.False(t, Or(critical).Matches(getUser))
	assert.True(t, Not(critical).Matches(getUser))
	assert.False(t, Not(critical).Matches(saveOrder))
	// And() 匹配所有
	assert.True(t, And().Matches(listUsers))
}
