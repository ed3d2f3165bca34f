// Package catalog holds the fixed list of projects shown on the page.
package catalog

import (
	"strings"
)

// Project is one portfolio entry. Its identity is its position in the
// catalog.
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	ImageURL    string   `json:"image_url"`
	RepoLink    string   `json:"repo_link,omitempty"`
}

// Catalog is an immutable ordered list of projects.
type Catalog struct {
	projects []Project
}

// New copies projects into a catalog, keeping their order.
func New(projects []Project) *Catalog {
	return &Catalog{projects: cloneProjects(projects)}
}

// List returns the projects in display order. The result is a copy.
func (c *Catalog) List() []Project {
	return cloneProjects(c.projects)
}

// Len is the number of projects.
func (c *Catalog) Len() int {
	return len(c.projects)
}

func cloneProjects(in []Project) []Project {
	out := make([]Project, len(in))
	for i, p := range in {
		p.Tags = append([]string(nil), p.Tags...)
		out[i] = p
	}
	return out
}

// Default builds the site's catalog. Repository links hang off githubURL,
// the owner's profile (e.g. https://github.com/someone); when it is empty the
// projects carry no link.
func Default(githubURL string) *Catalog {
	base := strings.TrimRight(strings.TrimSpace(githubURL), "/")
	repo := func(name string) string {
		if base == "" {
			return ""
		}
		return base + "/" + name
	}

	return New([]Project{
		{
			Title:       "rust-wasm-game-engine",
			Description: "Tiny fast 2D engine (WASM).",
			Tags:        []string{"Rust", "WASM", "Graphics"},
			ImageURL:    "https://via.placeholder.com/400x240.png?text=Project+1",
			RepoLink:    repo("rust-wasm-game-engine"),
		},
		{
			Title:       "fast-logger",
			Description: "Zero-alloc logger for telemetry.",
			Tags:        []string{"Rust", "Logging", "Perf"},
			ImageURL:    "https://via.placeholder.com/400x240.png?text=Project+2",
			RepoLink:    repo("fast-logger"),
		},
		{
			Title:       "embedded-sensor-node",
			Description: "Low-power sensor node with OTA.",
			Tags:        []string{"Embedded", "Rust", "Low-Power"},
			ImageURL:    "https://via.placeholder.com/400x240.png?text=Project+3",
			RepoLink:    repo("embedded-sensor-node"),
		},
	})
}
