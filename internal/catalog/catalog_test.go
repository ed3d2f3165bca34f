package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_OrderIsStable(t *testing.T) {
	c := Default("https://github.com/octo")

	want := []string{"rust-wasm-game-engine", "fast-logger", "embedded-sensor-node"}
	for call := 0; call < 3; call++ {
		list := c.List()
		require.Len(t, list, 3)
		for i, p := range list {
			assert.Equal(t, want[i], p.Title)
		}
	}
}

func TestDefault_TagsKeepDeclaredOrder(t *testing.T) {
	list := Default("").List()
	assert.Equal(t, []string{"Rust", "WASM", "Graphics"}, list[0].Tags)
	assert.Equal(t, []string{"Rust", "Logging", "Perf"}, list[1].Tags)
	assert.Equal(t, []string{"Embedded", "Rust", "Low-Power"}, list[2].Tags)
}

func TestDefault_RepoLinks(t *testing.T) {
	list := Default("https://github.com/octo/").List()
	assert.Equal(t, "https://github.com/octo/fast-logger", list[1].RepoLink)

	for _, p := range Default("").List() {
		assert.Empty(t, p.RepoLink)
	}
}

func TestList_ReturnsCopy(t *testing.T) {
	c := New([]Project{{Title: "a", Tags: []string{"x", "y"}}})

	list := c.List()
	list[0].Title = "mutated"
	list[0].Tags[0] = "mutated"

	again := c.List()
	assert.Equal(t, "a", again[0].Title)
	assert.Equal(t, []string{"x", "y"}, again[0].Tags)
	assert.Equal(t, 1, c.Len())
}
