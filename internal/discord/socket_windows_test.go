//go:build windows

package discord

import "testing"

func TestPipePaths(t *testing.T) {
	paths := pipePaths()
	if len(paths) != 10 {
		t.Fatalf("len(pipePaths()) = %d, want 10", len(paths))
	}
	if paths[0] != `\\.\pipe\discord-ipc-0` || paths[9] != `\\.\pipe\discord-ipc-9` {
		t.Errorf("pipePaths() = %v", paths)
	}
}
