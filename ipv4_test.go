package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseIPv4Strict(t *testing.T) {
	t.Parallel()

	addr, err := parseIPv4Strict("192.168.0.1")
	require.NoError(t, err)
	assert.Equal(t, [4]byte{192, 168, 0, 1}, addr.Octets())
	assert.Equal(t, "192.168.0.1", addr.String())
}

func Test_ParseIPv4Strict_RejectsLeadingZero(t *testing.T) {
	t.Parallel()

	_, err := parseIPv4Strict("192.168.0.01")
	assert.Error(t, err)
}

func Test_ParseIPv4Strict_RejectsOutOfRange(t *testing.T) {
	t.Parallel()

	_, err := parseIPv4Strict("999.0.0.1")
	assert.Error(t, err)
}

func Test_ParseIPv4Strict_RejectsTrailingData(t *testing.T) {
	t.Parallel()

	_, err := parseIPv4Strict("1.2.3.4.5")
	assert.Error(t, err)
}
