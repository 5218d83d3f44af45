package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/syncnm/internal/core/domain"
)

func TestHashBytes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  domain.Hash
	}{
		{name: "zero", input: "0", want: "l7wowzx7zbxtrwkspbwg22lmphbnxqrz"},
		{name: "empty", input: "", want: "4oymiquy7qobjgx36tejs35zeqt24qpe"},
		{name: "empty object", input: "{}", want: "iqjw7i2vwntyuekgvulpp2det2kpwt6c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.HashBytes([]byte(tt.input))
			assert.Equal(t, tt.want, got)
			assert.Len(t, got.String(), 32)
		})
	}
}

func TestHashBytes_Deterministic(t *testing.T) {
	a := domain.HashBytes([]byte("lockfile-a"))
	b := domain.HashBytes([]byte("lockfile-a"))
	c := domain.HashBytes([]byte("lockfile-b"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, domain.Hash("7d7y7i2amzaaibkveuv4tev22fbla7qo"), a)
}

func TestNewCacheKey(t *testing.T) {
	key := domain.NewCacheKey("aaa", "bbb", domain.DirKey("work_app"))
	assert.Equal(t, domain.Hash("aaa-bbb-work_app"), key)
}
