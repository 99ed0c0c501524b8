package settings

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Load reads the settings directory. The YAML documents are read concurrently,
// then every knowledge file the manifest declares. intents.yaml and
// knowledge.yaml are required, routing.yaml and workflows.yaml are optional.
func Load(ctx context.Context, dir string) (Source, error) {
	var src Source

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { return readYAML(filepath.Join(dir, IntentsFile), &src.Intents, true) })
	g.Go(func() error { return readYAML(filepath.Join(dir, RoutingFile), &src.Routing, false) })
	g.Go(func() error { return readYAML(filepath.Join(dir, WorkflowsFile), &src.Workflows, false) })
	g.Go(func() error { return readYAML(filepath.Join(dir, KnowledgeFile), &src.Knowledge, true) })
	if err := g.Wait(); err != nil {
		return Source{}, fmt.Errorf("%s: %w", LogPrefixLoad, err)
	}

	src.Contents = make(map[string]string, len(src.Knowledge.Files))
	var mu sync.Mutex
	g, _ = errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, f := range src.Knowledge.Files {
		if validateFileName(f.Name) != nil {
			continue
		}
		name := f.Name
		g.Go(func() error {
			data, err := os.ReadFile(filepath.Join(dir, KnowledgeDir, name))
			if errors.Is(err, fs.ErrNotExist) {
				// Reported by Build as a missing knowledge file.
				return nil
			}
			if err != nil {
				return err
			}
			mu.Lock()
			src.Contents[name] = string(data)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Source{}, fmt.Errorf("%s: %w", LogPrefixLoad, err)
	}

	return src, nil
}

// LoadSnapshot reads and validates the settings directory.
func LoadSnapshot(ctx context.Context, dir string) (*Snapshot, error) {
	src, err := Load(ctx, dir)
	if err != nil {
		return nil, err
	}
	return Build(src)
}

func readYAML(path string, out any, required bool) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return configurationError(fmt.Sprintf("%s is required", filepath.Base(path)))
	}
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return configurationError(fmt.Sprintf("%s: %v", filepath.Base(path), err))
	}
	return nil
}

func writeYAML(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	return writeAtomic(path, data)
}

// writeAtomic replaces path through a rename so readers and the watcher never
// see a partial file.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
