package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPetRef_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		ref  PetRef
		want string
	}{
		{name: "one pet is scalar", ref: PetRef{"p1"}, want: `"p1"`},
		{name: "two pets are array", ref: PetRef{"p1", "p2"}, want: `["p1","p2"]`},
		{name: "nil is empty array", ref: nil, want: `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.ref)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestPetRef_UnmarshalJSON(t *testing.T) {
	var single PetRef
	require.NoError(t, json.Unmarshal([]byte(`"p1"`), &single))
	assert.Equal(t, PetRef{"p1"}, single)
	assert.True(t, single.IsScalar())

	var many PetRef
	require.NoError(t, json.Unmarshal([]byte(`["p1","p2"]`), &many))
	assert.ElementsMatch(t, []string{"p1", "p2"}, many.IDs())

	var bad PetRef
	assert.ErrorIs(t, json.Unmarshal([]byte(`42`), &bad), ErrInvalidPetRef)
}

func TestBookingData_MarshalJSON_OmitsEmptyOptionalFields(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	data := BookingData{
		ClientID:      "c1",
		PetID:         PetRef{"p1"},
		FacilityID:    "f1",
		Service:       ServiceEvaluation,
		StartDate:     day,
		EndDate:       day,
		CheckInTime:   DefaultCheckInTime,
		CheckOutTime:  DefaultCheckOutTime,
		Status:        StatusPending,
		PaymentStatus: PaymentPending,
	}

	raw, err := json.Marshal(data)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))

	assert.Equal(t, "2026-03-02", fields["startDate"])
	assert.Equal(t, "p1", fields["petId"])
	assert.Equal(t, "08:00", fields["checkInTime"])
	assert.Equal(t, "pending", fields["status"])
	assert.Equal(t, 0.0, fields["discount"])
	assert.Contains(t, fields, "notifyByEmail")
	assert.Contains(t, fields, "notifyBySms")
	for _, key := range []string{"daycareDates", "boardingDays", "roomAssignments", "groomingStyle", "trainingType", "assignedStaffId", "specialInstructions"} {
		assert.NotContains(t, fields, key)
	}
}
