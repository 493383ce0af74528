package id_gen

import (
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"gymweb/biz/util/ip"

	"github.com/bytedance/gopkg/lang/fastrand"
)

var defaultGen = NewIDGenerator()

// NewID returns a log id: base36 millis, host ip hex, pid, sequence and a random tail.
func NewID() string {
	return defaultGen.NewID()
}

type IDGenerator struct {
	node string
	seq  atomic.Uint32
	now  func() time.Time
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{
		node: ip.IPv4Hex() + strconv.FormatUint(uint64(os.Getpid()), 10),
		now:  time.Now,
	}
}

func (g *IDGenerator) NewID() string {
	sb := strings.Builder{}
	sb.Grow(48)
	sb.WriteString(strconv.FormatInt(g.now().UnixMilli(), 36))
	sb.WriteString(g.node)
	sb.WriteString(strconv.FormatUint(uint64(g.seq.Add(1)%1296), 36))
	sb.WriteString(strconv.FormatUint(uint64(fastrand.Uint32()), 36))
	return sb.String()
}
