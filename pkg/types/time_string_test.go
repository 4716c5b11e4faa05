package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "morning", input: "08:00", want: "08:00"},
		{name: "evening", input: "17:30", want: "17:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "bad hour", input: "25:00", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ts.String())
			assert.False(t, ts.IsZero())
		})
	}
}

func TestTimeString_Compare(t *testing.T) {
	early := MustTimeString("08:00")
	late := MustTimeString("17:00")

	assert.True(t, early.IsBefore(late))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsBefore(early))
	assert.False(t, early.IsAfter(early))
}

func TestTimeString_JSON(t *testing.T) {
	type payload struct {
		CheckIn  TimeString `json:"checkIn"`
		CheckOut TimeString `json:"checkOut"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"checkIn":"07:45","checkOut":null}`), &p))
	assert.Equal(t, "07:45", p.CheckIn.String())
	assert.True(t, p.CheckOut.IsZero())

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"checkIn":"07:45","checkOut":null}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"checkIn":"7am"}`), &p))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan([]byte("09:15:00")))
	assert.Equal(t, "09:15", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	v, err := ts.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	assert.Error(t, ts.Scan(42))
}
