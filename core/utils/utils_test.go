package utils

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestReadFromData(t *testing.T) {
	data := []byte("123456789abcdef1")
	chunk, rest := ReadFromData(5, data)
	assert.Equal(t, []byte("12345"), chunk)
	assert.Equal(t, []byte("6789abcdef1"), rest)
	chunk, rest = ReadFromData(100, data)
	assert.Equal(t, data, chunk)
	assert.Nil(t, rest)
	chunk, rest = ReadFromData(0, data)
	assert.Nil(t, chunk)
	assert.Equal(t, data, rest)
	chunk, rest = ReadFromData(4, nil)
	assert.Nil(t, chunk)
	assert.Nil(t, rest)
}
