package persistence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseSaveWithDate(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want bool
	}{
		{"bool true", true, true},
		{"bool false", false, false},
		{"string true", "true", true},
		{"string TRUE", "TRUE", true},
		{"string one", "1", true},
		{"string yes", "yes", true},
		{"string yes padded", "  Yes ", true},
		{"string false", "false", false},
		{"string zero", "0", false},
		{"string garbage", "totally", false},
		{"nil", nil, false},
		{"number", 1, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseSaveWithDate(tc.in))
		})
	}
}

func TestApplyAuditPolicy(t *testing.T) {
	prev := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	current := time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC)
	now := func() time.Time { return current }

	t.Run("flag true advances the audit column", func(t *testing.T) {
		fields := map[string]interface{}{"name": "X"}
		ApplyAuditPolicy(fields, true, prev, now)
		assert.Equal(t, current, fields[AuditColumn])
		assert.Equal(t, "X", fields["name"])
	})

	t.Run("flag false re-asserts the previous value", func(t *testing.T) {
		fields := map[string]interface{}{"name": "X"}
		ApplyAuditPolicy(fields, false, prev, now)
		assert.Equal(t, prev, fields[AuditColumn])
	})

	t.Run("the column is always present in the statement", func(t *testing.T) {
		fields := map[string]interface{}{}
		ApplyAuditPolicy(fields, false, prev, now)
		_, ok := fields[AuditColumn]
		assert.True(t, ok)
	})
}
