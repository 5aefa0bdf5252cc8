package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCPF(t *testing.T) {
	valid := []string{"13711695000", "52998224725", "11144477735", "455.974.090-93", "529.982.247-25"}
	for _, cpf := range valid {
		assert.True(t, IsValidCPF(cpf), cpf)
	}

	invalid := []string{"", "12345678900", "11111111111", "1371169500", "137116950001", "137.116.950-01", "1371169500a"}
	for _, cpf := range invalid {
		assert.False(t, IsValidCPF(cpf), cpf)
	}
}
