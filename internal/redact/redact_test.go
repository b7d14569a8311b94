package redact_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/dinosaur-api/internal/redact"
	"github.com/stretchr/testify/assert"
)

func TestRedactString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no sensitive data",
			input:    "dinosaur 7 not found",
			expected: "dinosaur 7 not found",
		},
		{
			name:     "connection string",
			input:    "failed to connect to postgres://dino:s3cret@db:5432/dinosaurs",
			expected: "failed to connect to [REDACTED_CREDENTIAL]db:5432/dinosaurs",
		},
		{
			name:     "password parameter",
			input:    "password=hunter22 rejected",
			expected: "[REDACTED_CREDENTIAL] rejected",
		},
		{
			name:     "sql statement",
			input:    "query failed: SELECT key FROM locations WHERE id = $1",
			expected: "query failed: [REDACTED_SQL]",
		},
		{
			name:     "file path",
			input:    "open /srv/app/public/dinosaur/image/1.jpg: no such file",
			expected: "open [REDACTED_PATH]: no such file",
		},
		{
			name:     "host name",
			input:    "dial tcp: lookup db.internal.example.com: no such host",
			expected: "dial tcp: lookup [REDACTED_HOST]: no such host",
		},
		{
			name:     "ip address",
			input:    "dial tcp 10.0.0.12:5432: connect: connection refused",
			expected: "dial tcp [REDACTED_HOST]: connect: connection refused",
		},
		{
			name:     "stack trace",
			input:    "panic: runtime error\n\tmain.go:12",
			expected: "[STACK_TRACE_REDACTED]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, redact.String(tt.input))
		})
	}
}

func TestRedactError(t *testing.T) {
	assert.Empty(t, redact.Error(nil))

	err := fmt.Errorf("seed failed: %w", errors.New("password: abc"))
	assert.Equal(t, "seed failed: [REDACTED_CREDENTIAL]", redact.Error(err))
}

func TestRedactCombined(t *testing.T) {
	input := "store error: INSERT INTO diets VALUES ($1) via postgres://u:p@10.1.2.3:5432/db"
	got := redact.String(input)

	assert.NotContains(t, got, "u:p")
	assert.NotContains(t, got, "10.1.2.3")
	assert.NotContains(t, got, "INSERT INTO")
}
