package scene

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/heightview/internal/engine/terrain"
	"github.com/Faultbox/heightview/internal/logger"
)

// resultBuffer is the capacity of the results channel.
const resultBuffer = 16

// Options configures mesh generation for loaded images.
type Options struct {
	WorldSize    float32 // Mesh extent along the longer image side
	MaxDimension int     // Downsample larger images; 0 keeps full resolution
}

// DefaultOptions returns the stock loader options.
func DefaultOptions() Options {
	return Options{WorldSize: terrain.DefaultWorldSize}
}

// Result reports the outcome of one load request.
type Result struct {
	ID        uint64
	Source    string
	Err       error // Wraps terrain.ErrInvalidInput for unreadable files
	Published bool  // False when a newer generation was already showing
	Elapsed   time.Duration
}

// Loader decodes images and builds meshes off the render thread, then
// publishes each result into a Store.
type Loader struct {
	store   *Store
	opts    Options
	results chan Result
	nextID  atomic.Uint64
	wg      sync.WaitGroup
	done    chan struct{}
	close   sync.Once

	// load reads a heightmap from path.
	load func(path string) (*terrain.Heightmap, error)
}

// NewLoader creates a loader that publishes into store. Request IDs start
// after the store's current generation.
func NewLoader(store *Store, opts Options) *Loader {
	if opts.WorldSize <= 0 {
		opts.WorldSize = terrain.DefaultWorldSize
	}

	l := &Loader{
		store:   store,
		opts:    opts,
		results: make(chan Result, resultBuffer),
		done:    make(chan struct{}),
	}
	if cur := store.Current(); cur != nil {
		l.nextID.Store(cur.ID)
	}
	l.load = func(path string) (*terrain.Heightmap, error) {
		return terrain.Load(path, terrain.LoadOptions{MaxDimension: l.opts.MaxDimension})
	}
	return l
}

// Request starts loading path and returns the generation ID it will carry.
// IDs are assigned here, so a later request always wins over an earlier one
// regardless of which finishes first.
func (l *Loader) Request(path string) uint64 {
	id := l.nextID.Add(1)
	logger.Debug("load requested", zap.Uint64("generation", id), zap.String("path", path))

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		l.deliver(l.build(id, path))
	}()
	return id
}

// Results returns the channel of finished requests. The render loop drains
// it once per frame.
func (l *Loader) Results() <-chan Result {
	return l.results
}

// Wait blocks until all requests issued so far have finished.
func (l *Loader) Wait() {
	l.wg.Wait()
}

// Close stops waiting for the render loop to drain failures and waits for
// pending requests. Results not yet read are discarded.
func (l *Loader) Close() {
	l.close.Do(func() { close(l.done) })
	l.wg.Wait()
}

func (l *Loader) build(id uint64, path string) Result {
	start := time.Now()
	res := Result{ID: id, Source: path}

	hm, err := l.load(path)
	if err != nil {
		res.Err = err
		res.Elapsed = time.Since(start)
		logger.Warn("load failed",
			zap.Uint64("generation", id),
			zap.String("path", path),
			zap.Error(err))
		return res
	}

	mesh := terrain.BuildMesh(hm, l.opts.WorldSize)
	res.Published = l.store.Publish(&Generation{
		ID:        id,
		Source:    path,
		Heightmap: hm,
		Mesh:      mesh,
	})
	res.Elapsed = time.Since(start)

	if res.Published {
		logger.Info("generation published",
			zap.Uint64("generation", id),
			zap.String("path", path),
			zap.Int("width", hm.Width),
			zap.Int("height", hm.Height),
			zap.Int32("vertices", mesh.VertexCount),
			zap.Duration("elapsed", res.Elapsed))
	} else {
		logger.Debug("stale generation discarded",
			zap.Uint64("generation", id),
			zap.String("path", path))
	}
	return res
}

// deliver hands res to the render loop. A published generation shows up on
// its own, so a success may be dropped when the channel is full. A failure
// is the only way the user hears about a bad file and waits for room until
// the loader is closed.
func (l *Loader) deliver(res Result) {
	if res.Err == nil {
		select {
		case l.results <- res:
		default:
			logger.Debug("result dropped, channel full", zap.Uint64("generation", res.ID))
		}
		return
	}

	select {
	case l.results <- res:
	case <-l.done:
		logger.Warn("load failure not reported, loader closed",
			zap.Uint64("generation", res.ID),
			zap.String("path", res.Source))
	}
}
