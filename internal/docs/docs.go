// Package docs holds the embedded help topics shown by `tripboard docs` and
// the board's help page.
package docs

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed content/*.md
var contentFS embed.FS

func Topics() []string {
	entries, err := fs.Glob(contentFS, "content/*.md")
	if err != nil {
		return []string{}
	}
	var topics []string
	for _, p := range entries {
		base := path.Base(p)
		topic := strings.TrimSuffix(base, path.Ext(base))
		if topic != "" {
			topics = append(topics, topic)
		}
	}
	sort.Strings(topics)
	return topics
}

func Get(topic string) (string, bool) {
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "" || strings.ContainsAny(topic, `/\.`) {
		return "", false
	}
	b, err := contentFS.ReadFile(path.Join("content", topic+".md"))
	if err != nil {
		return "", false
	}
	return string(b), true
}

// Title is the topic's first level-one heading, or the topic name when the
// page has none.
func Title(topic string) string {
	body, ok := Get(topic)
	if !ok {
		return ""
	}
	for _, line := range strings.Split(body, "\n") {
		if h, found := strings.CutPrefix(strings.TrimSpace(line), "# "); found {
			return strings.TrimSpace(h)
		}
	}
	return strings.ToLower(strings.TrimSpace(topic))
}

// Index maps every topic to its title.
func Index() map[string]string {
	out := map[string]string{}
	for _, t := range Topics() {
		out[t] = Title(t)
	}
	return out
}
