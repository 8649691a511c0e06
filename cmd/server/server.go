package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"

	mandelgray "github.com/marben/mandelgray"
)

var (
	addr       = flag.String("addr", ":8080", "HTTP listen address")
	size       = flag.String("size", "1920x1080", `image size as "WIDTHxHEIGHT"`)
	landmark   = flag.String("landmark", "seahorse-valley", "predefined viewport to render")
	upperLeft  = flag.String("upperleft", "", `viewport upper-left corner as "RE,IM" (overrides -landmark)`)
	lowerRight = flag.String("lowerright", "", `viewport lower-right corner as "RE,IM" (overrides -landmark)`)
	workers    = flag.Int("workers", runtime.NumCPU(), "number of render workers")
)

// main is the entry point for the Mandelbrot preview server. It renders
// the configured viewport with a pool of local workers and streams
// finished tiles to connected browsers.
func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	bounds, err := mandelgray.ParseBounds(*size)
	if err != nil {
		return fmt.Errorf("parsing -size: %w", err)
	}

	vp, err := viewportFromFlags()
	if err != nil {
		return err
	}

	scheduler := newTileScheduler(bounds, vp)
	scheduler.start(*workers)

	srv := webServer(scheduler, *addr)
	log.Printf("listening on http://localhost%s", *addr)
	return srv.ListenAndServe()
}

func viewportFromFlags() (mandelgray.Viewport, error) {
	if *upperLeft != "" || *lowerRight != "" {
		if *upperLeft == "" || *lowerRight == "" {
			return mandelgray.Viewport{}, fmt.Errorf("-upperleft and -lowerright must be given together")
		}
		ul, err := mandelgray.ParseComplex(*upperLeft)
		if err != nil {
			return mandelgray.Viewport{}, fmt.Errorf("parsing -upperleft: %w", err)
		}
		lr, err := mandelgray.ParseComplex(*lowerRight)
		if err != nil {
			return mandelgray.Viewport{}, fmt.Errorf("parsing -lowerright: %w", err)
		}
		return mandelgray.Viewport{UpperLeft: ul, LowerRight: lr}, nil
	}

	vp, ok := mandelgray.Landmarks[*landmark]
	if !ok {
		names := make([]string, 0, len(mandelgray.Landmarks))
		for name := range mandelgray.Landmarks {
			names = append(names, name)
		}
		sort.Strings(names)
		return mandelgray.Viewport{}, fmt.Errorf("unknown landmark %q, available: %v", *landmark, names)
	}
	return vp, nil
}
