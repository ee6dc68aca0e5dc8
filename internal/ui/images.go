package ui

import (
	"log"
	"sync"

	"fyne.io/fyne/v2"
)

// imageCache downloads remote character images once and shares them between widgets
type imageCache struct {
	mu        sync.Mutex
	resources map[string]fyne.Resource
	pending   map[string][]func(fyne.Resource)
	fetch     func(url string) (fyne.Resource, error)
}

func newImageCache() *imageCache {
	return &imageCache{
		resources: make(map[string]fyne.Resource),
		pending:   make(map[string][]func(fyne.Resource)),
		fetch:     fyne.LoadResourceFromURLString,
	}
}

// Load calls apply with the image for url, immediately when cached and on the
// UI thread once downloaded otherwise. Failed downloads are logged and dropped.
func (c *imageCache) Load(url string, apply func(fyne.Resource)) {
	if url == "" {
		return
	}

	c.mu.Lock()
	if res, ok := c.resources[url]; ok {
		c.mu.Unlock()
		apply(res)
		return
	}
	waiting, inFlight := c.pending[url]
	c.pending[url] = append(waiting, apply)
	c.mu.Unlock()

	if inFlight {
		return
	}

	go func() {
		res, err := c.fetch(url)

		c.mu.Lock()
		callbacks := c.pending[url]
		delete(c.pending, url)
		if err == nil {
			c.resources[url] = res
		}
		c.mu.Unlock()

		if err != nil {
			log.Printf("Failed to load image %s: %v", url, err)
			return
		}

		fyne.Do(func() {
			for _, cb := range callbacks {
				cb(res)
			}
		})
	}()
}
