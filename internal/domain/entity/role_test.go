package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleFromString(t *testing.T) {
	assert.Equal(t, RoleAdmin, RoleFromString("admin"))
	assert.Equal(t, RoleUser, RoleFromString("user"))
	assert.Equal(t, RoleAgent, RoleFromString("agent"))
	assert.Equal(t, RoleUser, RoleFromString(""))
	assert.Equal(t, RoleUser, RoleFromString("superhero"))
}

func TestUserHasCart(t *testing.T) {
	assert.True(t, (&User{Role: RoleUser}).HasCart())
	assert.False(t, (&User{Role: RoleAdmin}).HasCart())
	assert.False(t, (&User{Role: RoleAgent}).HasCart())
}
