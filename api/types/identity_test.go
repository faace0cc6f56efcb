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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityAccessors(t *testing.T) {
	identity := NewIdentity("service/user", "getUser", "(string) User", "critical", "cached")

	assert.Equal(t, "service/user", identity.Scope())
	assert.Equal(t, "getUser", identity.Name())
	assert.Equal(t, "(string) User", identity.Signature())
	assert.Equal(t, "service/user/getUser", identity.FullName())
	assert.Equal(t, "service/user/getUser(string) User", identity.String())
	assert.Equal(t, "getUser", NewIdentity("", "getUser", "").FullName())
	assert.True(t, identity.HasTag("critical"))
	assert.False(t, identity.HasTag("internal"))
}

func TestIdentityTagsAreCopied(t *testing.T) {
	identity := NewIdentity("service", "getUser", "", "critical")
	tags := identity.Tags()
	tags[0] = "mutated"
	assert.True(t, identity.HasTag("critical"))
}

func TestIdentityValueEquality(t *testing.T) {
	a := NewIdentity("service", "getUser", "() string")
	b := NewIdentity("service", "getUser", "() string")
	c := NewIdentity("service", "getUser", "() User")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
