package common

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", RequestIDFromContext(ctx))
}

func TestRequestIDMissing(t *testing.T) {
	assert.Equal(t, "", RequestIDFromContext(context.Background()))
}
