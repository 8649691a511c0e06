package main

import (
	"context"
	"image"
	"image/draw"
	"log"
	"sync"

	mandelgray "github.com/marben/mandelgray"
	"github.com/marben/mandelgray/render"
)

const tileWidth, tileHeight = 64, 64

// tileScheduler splits the image into tiles, hands them out to a pool
// of render workers and assembles the finished tiles into the full
// grayscale image. Subscribers receive every finished tile, including
// the ones completed before they subscribed.
type tileScheduler struct {
	bounds mandelgray.Bounds
	vp     mandelgray.Viewport
	img    *image.Gray

	ctx       context.Context
	ctxCancel context.CancelFunc

	totalPixels    int
	finishedPixels int

	totalTiles  int
	unstarted   map[image.Rectangle]struct{}
	inProcess   map[image.Rectangle]struct{}
	finished    []*image.Gray
	subscribers map[chan *image.Gray]struct{}
	m           sync.Mutex
}

func newTileScheduler(b mandelgray.Bounds, vp mandelgray.Viewport) *tileScheduler {
	img := image.NewGray(image.Rect(0, 0, b.Width, b.Height))
	allTilesSlice := render.SplitTiles(img.Bounds(), tileWidth, tileHeight)
	allTiles := make(map[image.Rectangle]struct{}, len(allTilesSlice))
	for _, t := range allTilesSlice {
		allTiles[t] = struct{}{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &tileScheduler{
		bounds:      b,
		vp:          vp,
		img:         img,
		totalPixels: b.Width * b.Height,
		totalTiles:  len(allTilesSlice),
		unstarted:   allTiles,
		inProcess:   make(map[image.Rectangle]struct{}),
		subscribers: make(map[chan *image.Gray]struct{}),
		ctx:         ctx,
		ctxCancel:   cancel,
	}
}

// start launches the render worker pool.
func (ts *tileScheduler) start(workers int) {
	log.Printf("starting %d render workers", workers)
	for i := 0; i < workers; i++ {
		go ts.renderLoop()
	}
}

func (ts *tileScheduler) renderLoop() {
	for {
		tile, found := ts.popTile()
		if !found {
			return
		}
		ts.tileFinished(render.RenderTile(tile, ts.bounds, ts.vp))
	}
}

func (ts *tileScheduler) popTile() (tile image.Rectangle, found bool) {
	ts.m.Lock()
	defer ts.m.Unlock()

	if len(ts.unstarted) == 0 {
		return image.Rectangle{}, false
	}
	for tile = range ts.unstarted {
		break
	}
	delete(ts.unstarted, tile)
	ts.inProcess[tile] = struct{}{}
	return tile, true
}

func (ts *tileScheduler) tileFinished(tileImg *image.Gray) {
	defer log.Printf("finished: %f", ts.progress())

	rect := tileImg.Bounds()
	ts.m.Lock()
	defer ts.m.Unlock()

	draw.Draw(
		ts.img,
		rect,     // destination rectangle (global coords)
		tileImg,  // source image
		rect.Min, // source start
		draw.Src,
	)

	if _, found := ts.inProcess[rect]; found {
		ts.finishedPixels += rect.Dx() * rect.Dy()
	}
	delete(ts.inProcess, rect)

	ts.finished = append(ts.finished, tileImg)
	for ch := range ts.subscribers {
		ch <- tileImg
	}

	if len(ts.unstarted) == 0 && len(ts.inProcess) == 0 {
		for ch := range ts.subscribers {
			close(ch)
		}
		clear(ts.subscribers)
		ts.ctxCancel()
	}
}

func (ts *tileScheduler) progress() float32 {
	ts.m.Lock()
	defer ts.m.Unlock()
	return float32(ts.finishedPixels) / float32(ts.totalPixels)
}

// subscribe returns a channel that first replays every already finished
// tile and then delivers new ones as they complete. The channel is
// closed once the full image is rendered. The returned func cancels the
// subscription.
func (ts *tileScheduler) subscribe() (<-chan *image.Gray, func()) {
	ts.m.Lock()

	// Buffered to the tile count so tileFinished never blocks on a
	// slow subscriber: each tile is sent at most once.
	ch := make(chan *image.Gray, ts.totalTiles)
	for _, t := range ts.finished {
		ch <- t
	}
	if len(ts.finished) == ts.totalTiles {
		close(ch)
	} else {
		ts.subscribers[ch] = struct{}{}
	}
	ts.m.Unlock()

	cancel := func() {
		ts.m.Lock()
		delete(ts.subscribers, ch)
		ts.m.Unlock()
	}
	return ch, cancel
}

// Image blocks until the render is complete and returns the full image.
func (ts *tileScheduler) Image(ctx context.Context) (*image.Gray, error) {
	select {
	case <-ts.ctx.Done():
		return ts.img, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
