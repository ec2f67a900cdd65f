package utils_test

import (
	"testing"

	"github.com/bengkelku/workshop_management_app/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeWhatsAppPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{"local leading zero", "081234567890", "6281234567890"},
		{"already country prefixed", "6281234567890", "6281234567890"},
		{"plus prefix", "+6281234567890", "6281234567890"},
		{"dashes and spaces", "0812-3456 7890", "6281234567890"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.NormalizeWhatsAppPhone(tt.phone))
		})
	}
}
