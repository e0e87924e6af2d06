package assets

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// WatchShaders reports the program name of every shader source that is
// written or created under the resolver's shader directory. The channel is
// closed once ctx is done or the watcher fails.
func WatchShaders(ctx context.Context, r Resolver) (<-chan string, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(r.ShaderRoot()); err != nil {
		watcher.Close()
		return nil, err
	}

	names := make(chan string, 16)
	go func() {
		defer close(names)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				name, ok := ShaderName(event.Name)
				if !ok {
					continue
				}
				select {
				case names <- name:
				default:
					slog.Debug("dropping shader change, reload queue full", "name", name)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("shader watcher error", "error", err)
			}
		}
	}()
	return names, nil
}

// ShaderName maps a shader source path to its program name.
func ShaderName(path string) (string, bool) {
	ext := filepath.Ext(path)
	if ext != VertexExt && ext != FragmentExt {
		return "", false
	}
	return strings.TrimSuffix(filepath.Base(path), ext), true
}
