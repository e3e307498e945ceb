package usecase_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orientwatch/backend/internal/usecase"
)

func TestGenerateCodeSkipsTakenCodes(t *testing.T) {
	taken := map[string]bool{}
	rejected := 0
	exists := func(_ context.Context, code string) (bool, error) {
		// Claim the first five samples so the generator has to keep going.
		if rejected < 5 {
			rejected++
			taken[code] = true
			return true, nil
		}
		return taken[code], nil
	}

	code, err := usecase.GenerateCode(context.Background(), "BK", exists)
	require.NoError(t, err)
	assert.False(t, taken[code])

	want := regexp.MustCompile(`^BK` + time.Now().Format("20060102") + `\d{4}$`)
	assert.Regexp(t, want, code)
}

func TestGenerateCodeStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	allTaken := func(context.Context, string) (bool, error) { return true, nil }
	_, err := usecase.GenerateCode(ctx, "ORD", allTaken)
	require.ErrorIs(t, err, context.Canceled)
}
