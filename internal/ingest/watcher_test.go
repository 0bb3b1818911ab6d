package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartWatcher_DebouncedBurst(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, errCh, err := StartWatcher(ctx, nil, WatchConfig{
		Roots:    []string{dir},
		Debounce: time.Millisecond,
	})
	require.NoError(t, err)

	const burst = 50
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for i := 0; i < burst; i++ {
			name := filepath.Join(dir, fmt.Sprintf("r%02d.txt", i))
			_ = os.WriteFile(name, []byte("TOTAL $1.00"), 0o644)
			time.Sleep(200 * time.Microsecond)
		}
	}()

	seen := map[string]struct{}{}
	deadline := time.After(5 * time.Second)
collect:
	for {
		select {
		case p, ok := <-evCh:
			if !ok {
				break collect
			}
			seen[p] = struct{}{}
			if len(seen) == burst {
				break collect
			}
		case werr := <-errCh:
			t.Logf("watch error: %v", werr)
		case <-deadline:
			break collect
		}
	}
	<-writerDone
	assert.NotEmpty(t, seen)
	for p := range seen {
		assert.Equal(t, ".txt", filepath.Ext(p))
	}

	cancel()
	for range evCh { // drains until close
	}
}

func TestStartWatcher_InitialScan(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "already-there.txt")
	require.NoError(t, os.WriteFile(existing, []byte("TOTAL $2.00"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, nil, WatchConfig{
		Roots:       []string{dir},
		InitialScan: true,
	})
	require.NoError(t, err)

	select {
	case p := <-evCh:
		assert.Equal(t, existing, p)
	case <-time.After(2 * time.Second):
		t.Fatal("initial scan did not emit the existing file")
	}
}

func TestStartWatcher_NoRoots(t *testing.T) {
	_, _, err := StartWatcher(context.Background(), nil, WatchConfig{})
	assert.Error(t, err)
}
