// Package credswatcher monitors the token signing secret on the filesystem
// so a deployment can rotate it without restarting the process.
package credswatcher

import (
	"context"
	"path/filepath"

	"github.com/anubhaparashar/mcp2/pkg/tokens"
	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// WatchSigningSecret reloads the verifier's secret whenever the file at path
// changes, so token rotation does not require a restart. It returns once the
// watch goroutines are running.
func WatchSigningSecret(ctx context.Context, path string, verifier *tokens.Verifier) {
	events := make(chan struct{}, 1)
	errs := make(chan error, 1)
	watcher := NewFsCredsWatcher(path, events, errs)

	go func() {
		if err := watcher.StartWatching(ctx); err != nil {
			log.Warnf("Failed to watch token secret: %s", err)
		}
	}()
	go func() {
		for {
			select {
			case <-events:
				secret, err := tokens.LoadSecret(path)
				if err != nil {
					log.Errorf("Failed to reload token secret: %s", err)
					continue
				}
				verifier.SetSecret(secret)
				log.Info("token secret reloaded")
			case err := <-errs:
				log.Warnf("Token secret watch error: %s", err)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// FsCredsWatcher is used to monitor the signing secret file.
type FsCredsWatcher struct {
	secretPath string
	EventChan  chan<- struct{}
	ErrorChan  chan<- error
}

// NewFsCredsWatcher constructs a FsCredsWatcher instance.
func NewFsCredsWatcher(secretPath string, event chan<- struct{}, errs chan<- error) *FsCredsWatcher {
	return &FsCredsWatcher{secretPath, event, errs}
}

// StartWatching starts watching the filesystem for secret updates. The
// watch is on the parent directory so that editors and secret mounts that
// replace the file atomically still produce an event.
func (fscw *FsCredsWatcher) StartWatching(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// no point of proceeding if we fail to watch this
	if err := watcher.Add(filepath.Dir(fscw.secretPath)); err != nil {
		return err
	}

LOOP:
	for {
		select {
		case event := <-watcher.Events:
			log.Debugf("Received event: %v", event)
			if event.Name != fscw.secretPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				fscw.EventChan <- struct{}{}
			}
		case err := <-watcher.Errors:
			fscw.ErrorChan <- err
			log.Warnf("Error while watching %s: %s", fscw.secretPath, err)
			break LOOP
		case <-ctx.Done():
			if err := ctx.Err(); err != nil {
				fscw.ErrorChan <- err
			}
			break LOOP
		}
	}

	return nil
}
