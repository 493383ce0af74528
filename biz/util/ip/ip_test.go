package ip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIPv4Hex(t *testing.T) {
	h := IPv4Hex()
	t.Logf("ipv4 hex: %s", h)
	if h != "" {
		assert.Len(t, h, 8)
	}
}
