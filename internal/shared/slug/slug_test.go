package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bebeboutique.mx/app/internal/shared/slug"
)

func TestFromName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Mameluco Nube Suave", "mameluco-nube-suave"},
		{"Gorrito Tejido Arcoíris", "gorrito-tejido-arcoiris"},
		{"Pequeño Oso", "pequeno-oso"},
		{"  0-6 meses  ", "0-6-meses"},
		{"¡Oferta! 50%", "oferta-50"},
		{"", "product"},
		{"---", "product"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, slug.FromName(tt.in), "input %q", tt.in)
	}
}
