package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironmentLastWriteWins(t *testing.T) {
	var env Environment
	env.Set("PORT", "8080")
	env.Set("MODE", "prod")
	env.Set("PORT", "9090")

	assert.Equal(t, 2, env.Len())
	assert.Equal(t, []EnvVar{
		{Name: "PORT", Value: "9090"},
		{Name: "MODE", Value: "prod"},
	}, env.Vars())

	v, ok := env.Get("PORT")
	assert.True(t, ok)
	assert.Equal(t, "9090", v)
	assert.Equal(t, map[string]string{"PORT": "9090", "MODE": "prod"}, env.Map())
}

func TestEnvironmentZeroValue(t *testing.T) {
	var env Environment
	assert.Nil(t, env.Vars())
	assert.Nil(t, env.Map())
	_, ok := env.Get("X")
	assert.False(t, ok)
}
