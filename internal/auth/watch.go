package auth

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/catchup-chat/catchup/internal/metrics"
)

// Watch reloads the token whenever the credential file changes, so tokens
// refreshed by an external authenticator are picked up without a restart.
// The parent directory is watched because refreshers usually replace the
// file atomically (write to temp, rename over). Blocks until ctx is done;
// reload failures are logged and the previous token stays in effect.
func (s *FileTokenSource) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		return err
	}

	target := filepath.Clean(s.path)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return errors.New("credential watcher closed")
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			// Small delay so a rename-replaced file is fully in place.
			time.Sleep(10 * time.Millisecond)
			if err := s.Reload(); err != nil {
				s.logger.Warn().Err(err).Str("file", s.path).Msg("credential reload failed, keeping previous token")
				continue
			}
			metrics.CredentialReloads.Inc()
			s.logger.Info().Str("file", s.path).Msg("credentials reloaded")
		case err, ok := <-watcher.Errors:
			if !ok {
				return errors.New("credential watcher closed")
			}
			s.logger.Warn().Err(err).Msg("credential watcher error")
		}
	}
}
