// Package scaffold writes a starter site: page shells with the containers
// the renderers fill, a stylesheet, and sample JSON records.
package scaffold

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"folio.dev/internal/content"
)

// Write creates the starter site under dir and returns the paths written,
// relative to dir. Existing files are kept unless overwrite is set.
func Write(dir string, overwrite bool) ([]string, error) {
	all, err := files()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	slices.Sort(names)

	var written []string
	for _, name := range names {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if !overwrite {
			if _, err := os.Stat(path); err == nil {
				continue
			} else if !errors.Is(err, fs.ErrNotExist) {
				return written, fmt.Errorf("checking %s: %w", path, err)
			}
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return written, fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, all[name], 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, name)
	}
	return written, nil
}

// files returns every scaffold file keyed by slash-separated path
func files() (map[string][]byte, error) {
	out := map[string][]byte{
		"static/style.css": []byte(styleSheet),
	}
	for name, markup := range pageShells {
		out[name] = []byte(markup)
	}

	records := map[string]any{
		content.ProjectsResource:   sampleProjects,
		content.EducationResource:  sampleEducation,
		content.ExperienceResource: sampleExperience,
	}
	for id, detail := range sampleDetails {
		resource, err := content.DetailResource(id)
		if err != nil {
			return nil, err
		}
		records[resource] = detail
	}
	for resource, v := range records {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling %s: %w", resource, err)
		}
		out[resource] = append(data, '\n')
	}
	return out, nil
}
