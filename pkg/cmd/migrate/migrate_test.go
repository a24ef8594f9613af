package migrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrepareURLForDB(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"postgresql://u:p@db/segments", "postgresql://u:p@db/segments?sslmode=disable"},
		{"postgresql://u:p@db/segments?connect_timeout=5", "postgresql://u:p@db/segments?connect_timeout=5&sslmode=disable"},
		{"postgresql://u:p@db/segments?sslmode=require", "postgresql://u:p@db/segments?sslmode=require"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, prepareURLForDB(tt.url))
	}
}
