package dataset

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/samber/lo"
)

// Artifact is one loadable upstream dataset found under a scan root.
type Artifact struct {
	Path       string
	Bundle     bool
	Timeframes []string
	Err        error // set when a manifest could not be parsed
}

// Scan walks root and lists manifests and stand-alone data files. Data
// files belonging to a listed bundle are not reported separately.
func Scan(root string) ([]Artifact, error) {
	var manifests, files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch {
		case IsManifest(path):
			manifests = append(manifests, path)
		case IsDataFile(path):
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	owned := map[string]bool{}
	artifacts := make([]Artifact, 0, len(manifests)+len(files))
	for _, path := range manifests {
		m, err := ReadManifest(path)
		if err != nil {
			artifacts = append(artifacts, Artifact{Path: path, Bundle: true, Err: err})
			continue
		}
		for _, tf := range m.Timeframes {
			for _, candidate := range Candidates(filepath.Dir(path), m.FilenameBase, tf) {
				owned[candidate] = true
			}
		}
		artifacts = append(artifacts, Artifact{Path: path, Bundle: true, Timeframes: m.Timeframes})
	}

	for _, path := range lo.Reject(files, func(p string, _ int) bool { return owned[p] }) {
		artifacts = append(artifacts, Artifact{Path: path, Timeframes: []string{InferTimeframe(path)}})
	}

	sort.Slice(artifacts, func(i, j int) bool {
		return artifacts[i].Path < artifacts[j].Path
	})
	return artifacts, nil
}
