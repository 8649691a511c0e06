package mandelgray

// Bounds is the size of the rendered image in pixels.
type Bounds struct {
	Width, Height int
}

// Viewport is the rectangular region of the complex plane that gets
// mapped onto the image. UpperLeft normally has the smaller real part
// and the larger imaginary part; nothing enforces that, a flipped
// viewport just renders a mirrored image.
type Viewport struct {
	UpperLeft  complex128
	LowerRight complex128
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// Full Set – the whole main cardioid and bulbs
	FullSet = Viewport{
		UpperLeft:  complex(-2.5, 1.25),
		LowerRight: complex(1.0, -1.25),
	}

	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Viewport{
		UpperLeft:  complex(-0.8, 0.15),
		LowerRight: complex(-0.7, 0.05),
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Viewport{
		UpperLeft:  complex(-1.85, -0.02),
		LowerRight: complex(-1.75, -0.10),
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Viewport{
		UpperLeft:  complex(-0.7435, 0.1325),
		LowerRight: complex(-0.7420, 0.1310),
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Viewport{
		UpperLeft:  complex(-0.7480, 0.0980),
		LowerRight: complex(-0.7450, 0.0950),
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Viewport{
		UpperLeft:  complex(-0.7400, 0.1850),
		LowerRight: complex(-0.7350, 0.1800),
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Viewport{
		UpperLeft:  complex(-1.7390, -0.0220),
		LowerRight: complex(-1.7375, -0.0235),
	}
)

// Landmarks maps the names accepted on the command line to the
// predefined viewports above.
var Landmarks = map[string]Viewport{
	"full-set":                FullSet,
	"seahorse-valley":         SeahorseValley,
	"elephant-valley":         ElephantValley,
	"spiral-minibrot":         SpiralMinibrot,
	"triple-spiral":           TripleSpiral,
	"valley-of-the-dragon":    ValleyOfTheDragon,
	"minibrot-in-mini-spiral": MinibrotInMiniSpiral,
}
