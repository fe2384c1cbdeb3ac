package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/lcn2/entropic/internal/entropy"
	"github.com/lcn2/entropic/internal/estimate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFinalNotEnoughData(t *testing.T) {
	var buf bytes.Buffer
	WriteFinal(&buf, 0, entropy.Overall{})
	out := buf.String()
	assert.Contains(t, out, "Error: not enough data to calculate high entropy estimate")
	assert.Contains(t, out, "Error: not enough data to calculate low entropy estimate")
	assert.Contains(t, out, "Error: not enough data to calculate median entropy estimate")
}

func TestWriteFinalWithData(t *testing.T) {
	var buf bytes.Buffer
	overall := entropy.Overall{
		HighEntropy: estimate.Of(8.0),
		HighBitCnt:  8,
		LowEntropy:  estimate.Of(7.5),
		LowBitCnt:   8,
		MeanEntropy: estimate.Of(7.75),
	}
	WriteFinal(&buf, 100, overall)
	out := buf.String()
	assert.Contains(t, out, "record count: 100 with 8 bits: high entropy:")
	assert.Contains(t, out, "high, median and low entropy:")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	overall := entropy.Overall{
		HighEntropy: estimate.Of(8.0),
		HighBitCnt:  8,
	}
	require.NoError(t, WriteJSON(&buf, 42, overall))

	var decoded jsonReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, uint64(42), decoded.RecordCount)
	require.NotNil(t, decoded.High)
	assert.Equal(t, 8.0, decoded.High.Bits)
	assert.Nil(t, decoded.Low)
}
