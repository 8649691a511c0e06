package main

import (
	"encoding/binary"
	"image"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/marben/mandelgray/render"
)

// webServer creates the preview server: it serves files in ./static,
// streams finished tiles over a websocket endpoint and serves the
// completed render as PNG.
func webServer(ts *tileScheduler, addr string) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", tileStreamHandler(ts))
	mux.HandleFunc("/image.png", imageHandler(ts))
	mux.Handle("/", http.FileServer(http.Dir("./static")))

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// tileStreamHandler upgrades the connection to a websocket and pushes
// binary tile frames until the render completes or the client leaves.
// The first frame carries the image dimensions (8 bytes); every later
// frame is a tile: 16 bytes of bounds followed by the raw gray pixels.
func tileStreamHandler(ts *tileScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}
		defer c.CloseNow()

		ctx := r.Context()
		log.Printf("tile stream client: %s", r.RemoteAddr)

		if err := c.Write(ctx, websocket.MessageBinary, dimsFrame(ts)); err != nil {
			log.Printf("ws write dims: %v", err)
			return
		}

		tiles, cancel := ts.subscribe()
		defer cancel()

		for {
			select {
			case tile, ok := <-tiles:
				if !ok {
					c.Close(websocket.StatusNormalClosure, "render complete")
					return
				}
				if err := c.Write(ctx, websocket.MessageBinary, tileFrame(tile)); err != nil {
					log.Printf("ws write tile: %v", err)
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}
}

// imageHandler blocks until the render is complete, then serves it as
// a grayscale PNG.
func imageHandler(ts *tileScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		img, err := ts.Image(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		if err := render.EncodePNG(w, img); err != nil {
			log.Printf("image.png: %v", err)
		}
	}
}

func dimsFrame(ts *tileScheduler) []byte {
	frame := make([]byte, 8)
	binary.BigEndian.PutUint32(frame[0:], uint32(ts.bounds.Width))
	binary.BigEndian.PutUint32(frame[4:], uint32(ts.bounds.Height))
	return frame
}

func tileFrame(tile *image.Gray) []byte {
	r := tile.Bounds()
	frame := make([]byte, 16, 16+len(tile.Pix))
	binary.BigEndian.PutUint32(frame[0:], uint32(r.Min.X))
	binary.BigEndian.PutUint32(frame[4:], uint32(r.Min.Y))
	binary.BigEndian.PutUint32(frame[8:], uint32(r.Max.X))
	binary.BigEndian.PutUint32(frame[12:], uint32(r.Max.Y))
	return append(frame, tile.Pix...)
}
