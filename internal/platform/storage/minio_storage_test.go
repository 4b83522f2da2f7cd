package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildObjectKey(t *testing.T) {
	now := time.Date(2025, 3, 7, 10, 30, 0, 0, time.UTC)

	key := BuildObjectKey("payments", "member-1", "receipt.jpg", now)

	assert.True(t, strings.HasPrefix(key, "payments/2025-03/member-1/20250307-"), key)
	assert.True(t, strings.HasSuffix(key, ".jpg"), key)
}

func TestBuildObjectKey_NoExtension(t *testing.T) {
	now := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	key := BuildObjectKey("payments", "member-2", "receipt", now)

	assert.True(t, strings.HasPrefix(key, "payments/2025-12/member-2/20251231-"), key)
	assert.True(t, strings.HasSuffix(key, ".bin"), key)
}

func TestKeyFromURL(t *testing.T) {
	s := &minioStorage{publicURL: "https://cdn.example.com/arisan-uploads"}

	assert.Equal(t, "payments/2025-03/m1/20250307-abc.jpg",
		s.KeyFromURL("https://cdn.example.com/arisan-uploads/payments/2025-03/m1/20250307-abc.jpg"))
	assert.Equal(t, "", s.KeyFromURL("https://elsewhere.example.com/foo.jpg"))
}
