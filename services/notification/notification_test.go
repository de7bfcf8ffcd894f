package notification

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"quicklink/models"
)

func TestRecentNewestFirst(t *testing.T) {
	svc := NewDefaultService(zap.NewNop())

	for i := 1; i <= 3; i++ {
		svc.NotifyAssignment(models.Request{
			ID:               fmt.Sprintf("ER-2025-%03d", i),
			AssignedEmployee: "Mary Agent",
		})
	}

	events := svc.Recent(2)
	require.Len(t, events, 2)
	assert.Equal(t, "ER-2025-003", events[0].RequestID)
	assert.Equal(t, "ER-2025-002", events[1].RequestID)
	assert.Contains(t, events[0].Message, "Task assigned to Mary Agent")

	assert.Len(t, svc.Recent(0), 3, "non-positive limit returns everything")
}

func TestEventRingIsBounded(t *testing.T) {
	svc := NewDefaultService(zap.NewNop())

	for i := 0; i < maxEvents+10; i++ {
		svc.NotifyPaymentClaimed(models.Request{ID: fmt.Sprintf("ER-2025-%03d", i)})
	}
	assert.Len(t, svc.Recent(0), maxEvents)
}
