package shared_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/slidegen-api/internal/api/shared"
)

func TestTraceID(t *testing.T) {
	t.Parallel()

	ctx := shared.SetTraceID(context.Background())
	traceID := shared.GetTraceID(ctx)

	assert.Len(t, traceID, 32, "trace ID should be 32 hex characters")

	other := shared.GetTraceID(shared.SetTraceID(context.Background()))
	assert.NotEqual(t, traceID, other, "trace IDs should be unique per request")
}

func TestGetTraceID_Absent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", shared.GetTraceID(context.Background()))
}
