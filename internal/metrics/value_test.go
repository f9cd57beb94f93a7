package metrics

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuePresence(t *testing.T) {
	present := Some(1.5)
	absent := None()

	v, ok := present.Float64()
	assert.True(t, ok)
	assert.Equal(t, 1.5, v)

	_, ok = absent.Float64()
	assert.False(t, ok)

	// Zero is present, not absent
	zero := Some(0)
	v, ok = zero.Float64()
	assert.True(t, ok)
	assert.Equal(t, 0.0, v)
}

func TestValueFromPtr(t *testing.T) {
	f := 0.22
	assert.True(t, FromPtr(&f).Present())
	assert.False(t, FromPtr(nil).Present())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "12.00", Some(12).String())
	assert.Equal(t, "N/A", None().String())
}

func TestValueJSONRoundTrip(t *testing.T) {
	type wrapper struct {
		PE  Value `json:"pe"`
		ROE Value `json:"roe"`
	}

	in := wrapper{PE: Some(14.2), ROE: None()}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"pe":14.2,"roe":null}`, string(data))

	var out wrapper
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestEmptyBundle(t *testing.T) {
	b := Empty("AAPL", testTime())

	assert.Equal(t, "AAPL", b.Ticker)
	assert.False(t, b.PERatio.Present())
	assert.False(t, b.RevenueGrowth.Present())
	assert.False(t, b.AnalystRecommendation.Present())
}
