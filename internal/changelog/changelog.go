// Package changelog turns the project CHANGELOG.md into per-version
// entries rendered to HTML.
package changelog

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/yuin/goldmark"
)

// Entry is one released version.
type Entry struct {
	Version string   `json:"version"`
	Lines   []string `json:"-"`
	Content string   `json:"content"`
}

// sectionTitles maps the CHANGELOG section markers to subheadings.
var sectionTitles = map[string]string{
	"FEATURES:":     "Features",
	"IMPROVEMENTS:": "Improvements",
	"BUG FIXES:":    "Bug Fixes",
}

// Parse splits a changelog into entries. Every "## <version>" line starts a
// new entry; lines before the first entry are ignored.
func Parse(r io.Reader) ([]Entry, error) {
	entries := []Entry{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if rest, ok := strings.CutPrefix(line, "## "); ok {
			entries = append(entries, Entry{Version: versionToken(rest), Lines: []string{}})
			continue
		}
		if len(entries) == 0 {
			continue
		}
		if title, ok := sectionTitles[strings.TrimSpace(line)]; ok {
			line = "### " + title
		}
		last := &entries[len(entries)-1]
		last.Lines = append(last.Lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read changelog: %w", err)
	}
	return entries, nil
}

func versionToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Render fills Content for every entry. When dir/<version>.md exists in fsys
// it is prepended to the entry's own lines. fsys may be nil.
func Render(entries []Entry, fsys fs.FS, dir string, md goldmark.Markdown) error {
	for i := range entries {
		e := &entries[i]

		var src bytes.Buffer
		if fsys != nil && e.Version != "" {
			name := path.Join(dir, e.Version+".md")
			extra, err := fs.ReadFile(fsys, name)
			switch {
			case err == nil:
				src.Write(extra)
				src.WriteByte('\n')
			case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrInvalid):
			default:
				return fmt.Errorf("read %s: %w", name, err)
			}
		}
		src.WriteString(strings.Join(e.Lines, "\n"))

		var out bytes.Buffer
		if err := md.Convert(src.Bytes(), &out); err != nil {
			return fmt.Errorf("render %s: %w", e.Version, err)
		}
		e.Content = out.String()
	}
	return nil
}
