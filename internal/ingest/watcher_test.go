package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherSurvivesEventBurstWithDebounce(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	paths, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: 20 * time.Millisecond,
	})
	require.NoError(t, err)

	// A burst of scans landing while the debounce window keeps reopening.
	const n = 25
	want := map[string]struct{}{}
	for i := 0; i < n; i++ {
		p := filepath.Join(dir, fmt.Sprintf("scan-%02d.png", i))
		require.NoError(t, os.WriteFile(p, []byte{0x89, 0x50}, 0o644))
		want[p] = struct{}{}
		time.Sleep(2 * time.Millisecond)
	}
	// Never emitted: unsupported extension, hidden file.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".partial.png"), nil, 0o644))

	got := map[string]struct{}{}
	deadline := time.After(5 * time.Second)
	for len(got) < n {
		select {
		case p, ok := <-paths:
			require.True(t, ok, "event channel closed early")
			_, expected := want[p]
			require.True(t, expected, "unexpected path emitted: %s", p)
			got[p] = struct{}{}
		case <-deadline:
			t.Fatalf("timed out waiting for events: got %d of %d", len(got), n)
		}
	}
}

func TestWatcherInitialScan(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "backlog.jpg")
	require.NoError(t, os.WriteFile(existing, []byte{0xff, 0xd8}, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.md"), nil, 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	paths, _, err := StartWatcher(ctx, WatchConfig{
		Roots:       []string{dir},
		InitialScan: true,
	})
	require.NoError(t, err)

	select {
	case p := <-paths:
		require.Equal(t, existing, p)
	case <-time.After(2 * time.Second):
		t.Fatal("initial scan emitted nothing")
	}
}

func TestWatcherRequiresRoots(t *testing.T) {
	_, _, err := StartWatcher(context.Background(), WatchConfig{})
	require.Error(t, err)
}
