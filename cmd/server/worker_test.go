package main

import (
	"bytes"
	"context"
	"image"
	"testing"
	"time"

	mandelgray "github.com/marben/mandelgray"
	"github.com/marben/mandelgray/render"
)

func testViewport() mandelgray.Viewport {
	return mandelgray.Viewport{
		UpperLeft:  complex(-2.0, 1.0),
		LowerRight: complex(1.0, -1.0),
	}
}

func TestSchedulerMatchesSequentialRender(t *testing.T) {
	b := mandelgray.Bounds{Width: 100, Height: 70}
	vp := testViewport()

	ts := newTileScheduler(b, vp)
	ts.start(4)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	img, err := ts.Image(ctx)
	if err != nil {
		t.Fatalf("Image: %v", err)
	}

	want := make([]uint8, b.Width*b.Height)
	render.Render(want, b, vp)

	if !bytes.Equal(img.Pix, want) {
		t.Error("scheduled render differs from sequential render")
	}
}

func TestSchedulerSubscribe(t *testing.T) {
	b := mandelgray.Bounds{Width: 100, Height: 70}
	ts := newTileScheduler(b, testViewport())

	tiles, cancel := ts.subscribe()
	defer cancel()

	ts.start(2)

	covered := 0
	deadline := time.After(30 * time.Second)
	for {
		select {
		case tile, ok := <-tiles:
			if !ok {
				if covered != b.Width*b.Height {
					t.Errorf("tiles cover %d pixels, want %d", covered, b.Width*b.Height)
				}
				return
			}
			r := tile.Bounds()
			covered += r.Dx() * r.Dy()
		case <-deadline:
			t.Fatal("timed out waiting for tiles")
		}
	}
}

// A late subscriber gets every tile replayed, even after the render is
// already complete.
func TestSchedulerSubscribeAfterCompletion(t *testing.T) {
	b := mandelgray.Bounds{Width: 100, Height: 70}
	ts := newTileScheduler(b, testViewport())
	ts.start(4)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if _, err := ts.Image(ctx); err != nil {
		t.Fatalf("Image: %v", err)
	}

	tiles, unsubscribe := ts.subscribe()
	defer unsubscribe()

	got := 0
	for tile := range tiles {
		if tile == nil {
			t.Fatal("nil tile")
		}
		got++
	}
	if got != ts.totalTiles {
		t.Errorf("replayed %d tiles, want %d", got, ts.totalTiles)
	}
}

func TestTileFrame(t *testing.T) {
	tile := image.NewGray(image.Rect(64, 0, 100, 64))
	frame := tileFrame(tile)

	if len(frame) != 16+36*64 {
		t.Fatalf("frame length = %d, want %d", len(frame), 16+36*64)
	}
	if frame[0] != 0 || frame[3] != 64 {
		t.Errorf("unexpected x0 bytes: % x", frame[:4])
	}
}
