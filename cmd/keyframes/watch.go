package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ivlev/keyframes/internal/animation"
	"github.com/ivlev/keyframes/internal/effect"
)

// debounce absorbs the burst of events editors produce for a single save
const debounce = 200 * time.Millisecond

// watch reloads the document whenever it changes on disk and prints the
// refreshed model. Editors that save by rename are handled by watching the
// directory rather than the file.
func (s *session) watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(s.path)); err != nil {
		return err
	}

	s.model.Subscribe(animation.Funcs{
		OnReset: func() {
			fmt.Printf("[*] Документ перечитан: %d параметров\n", s.model.ParameterCount())
		},
	})

	fmt.Printf("[*] Слежу за %s (Ctrl+C для выхода)\n", s.path)
	s.show()

	var timer <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(s.path) || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			timer = time.After(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("[!] Ошибка наблюдения: %v", err)
		case <-timer:
			timer = nil
			s.reload()
		}
	}
}

func (s *session) reload() {
	doc, err := effect.ReadDocument(s.path)
	if err != nil {
		log.Printf("[!] Не удалось прочитать %s: %v", s.path, err)
		return
	}
	*s.doc = *doc
	if err := s.model.Reload(); err != nil {
		log.Printf("[!] %v", err)
		return
	}
	if err := s.model.Check(); err != nil {
		log.Printf("[!] %v", err)
	}
	s.show()
}
