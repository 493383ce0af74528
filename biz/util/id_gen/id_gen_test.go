package id_gen

import (
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewID_Unique(t *testing.T) {
	g := NewIDGenerator()

	var mu sync.Mutex
	seen := make(map[string]struct{})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				id := g.NewID()
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Len(t, seen, 800)
}

func TestNewID_TimePrefix(t *testing.T) {
	g := NewIDGenerator()
	fixed := time.UnixMilli(1_700_000_000_000)
	g.now = func() time.Time { return fixed }

	id := g.NewID()
	prefix := strconv.FormatInt(fixed.UnixMilli(), 36)
	assert.True(t, strings.HasPrefix(id, prefix+g.node))
	t.Logf("log id: %s", id)
}

func TestNewID_Default(t *testing.T) {
	assert.NotEqual(t, NewID(), NewID())
}
