package loader

import (
	"context"
	"log"
	"sync"

	"github.com/zoobzio/capitan"

	"github.com/ytget/character-browser/internal/api"
	"github.com/ytget/character-browser/internal/state"
)

// Loader fetches the current page whenever the store's cursor changes
type Loader struct {
	source api.PageFetcher
	store  *state.Store

	// applyMu serializes request numbering and result application
	applyMu sync.Mutex
	seq     uint64

	mu      sync.Mutex
	cancel  context.CancelFunc
	baseCtx context.Context
	stopped bool
	wg      sync.WaitGroup
}

// New creates a loader bound to a page source and a store
func New(source api.PageFetcher, store *state.Store) *Loader {
	return &Loader{
		source: source,
		store:  store,
	}
}

// Start subscribes to page changes and loads the current page once
func (l *Loader) Start(ctx context.Context) {
	l.mu.Lock()
	l.baseCtx = ctx
	l.mu.Unlock()

	l.store.OnPageChange(func(page int) {
		l.trigger(page)
	})

	l.trigger(l.store.Snapshot().CurrentPage)
}

// Stop cancels the in-flight request and ignores further page changes
func (l *Loader) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.stopped = true
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

// Wait blocks until every load started by page changes has returned
func (l *Loader) Wait() {
	l.wg.Wait()
}

// request is one numbered fetch; seq orders it against every other request
type request struct {
	ctx    context.Context
	cancel context.CancelFunc
	page   int
	seq    uint64
}

// trigger numbers the request in the caller's goroutine, then fetches on its own
func (l *Loader) trigger(page int) {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	ctx := l.baseCtx
	l.mu.Unlock()

	if ctx == nil {
		ctx = context.Background()
	}

	req := l.reserve(ctx, page)

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		if _, moved := l.run(ctx, req, true); moved {
			l.trigger(l.store.Snapshot().CurrentPage)
		}
	}()
}

// Load fetches a page and applies it to the store. It returns false when
// the response was superseded by a later call and therefore dropped.
func (l *Loader) Load(ctx context.Context, page int) bool {
	applied, _ := l.run(ctx, l.reserve(ctx, page), false)
	return applied
}

// reserve cancels the previous request, takes the next sequence number and
// marks the store as loading
func (l *Loader) reserve(parent context.Context, page int) request {
	l.applyMu.Lock()
	defer l.applyMu.Unlock()

	ctx, cancel := l.begin(parent)
	l.seq++
	l.store.SetLoading(true)
	l.store.SetError("")

	return request{ctx: ctx, cancel: cancel, page: page, seq: l.seq}
}

// run fetches req and applies the result if req is still the latest request.
// With followCursor set, a latest response for a page other than the store's
// current one is dropped and moved reports that the cursor needs a reload.
func (l *Loader) run(ctx context.Context, req request, followCursor bool) (applied, moved bool) {
	defer req.cancel()

	capitan.Emit(ctx, PageRequested,
		KeyPage.Field(req.page),
		KeySequence.Field(int(req.seq)),
	)

	result, err := l.source.FetchPage(req.ctx, req.page)

	l.applyMu.Lock()
	defer l.applyMu.Unlock()

	if req.seq != l.seq {
		log.Printf("Discarding page %d response (request %d superseded by %d)", req.page, req.seq, l.seq)
		l.discarded(ctx, req)
		return false, false
	}

	if current := l.store.Snapshot().CurrentPage; followCursor && current != req.page {
		log.Printf("Discarding page %d response (cursor moved to page %d)", req.page, current)
		l.discarded(ctx, req)
		return false, true
	}

	if err != nil {
		log.Printf("Failed to load page %d: %v", req.page, err)
		l.store.SetError(err.Error())
		capitan.Emit(ctx, PageFailed,
			KeyPage.Field(req.page),
			KeyError.Field(err.Error()),
		)
	} else {
		l.store.SetCharacters(result.Results)
		l.store.SetTotalPages(result.Info.Pages)
		capitan.Emit(ctx, PageLoaded,
			KeyPage.Field(req.page),
			KeyTotalPages.Field(result.Info.Pages),
			KeyResults.Field(len(result.Results)),
		)
	}

	l.store.SetLoading(false)
	return true, false
}

func (l *Loader) discarded(ctx context.Context, req request) {
	capitan.Emit(ctx, PageDiscarded,
		KeyPage.Field(req.page),
		KeySequence.Field(int(req.seq)),
	)
}

// begin cancels the superseded request and derives a context for the next one
func (l *Loader) begin(parent context.Context) (context.Context, context.CancelFunc) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel != nil {
		l.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	l.cancel = cancel
	return ctx, cancel
}
