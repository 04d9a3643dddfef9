package ticket

import (
	"errors"
	"testing"

	"github.com/brickmart/console-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTicketRequest_Validate_Defaults(t *testing.T) {
	req := CreateTicketRequest{Subject: "Order never arrived"}

	require.NoError(t, req.Validate())
	assert.Equal(t, string(PriorityMedium), req.Priority)
	assert.Equal(t, string(StatusOpen), req.Status)
}

func TestUpdateStatusRequest_Validate_Priority(t *testing.T) {
	urgent := "urgent"
	req := UpdateStatusRequest{Status: "in_progress", Priority: &urgent}
	assert.NoError(t, req.Validate())

	bogus := "critical"
	req = UpdateStatusRequest{Status: "in_progress", Priority: &bogus}
	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Equal(t, "must be low, medium, high or urgent", errs.ToMap()["priority"])
}
