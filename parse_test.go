package mandelgray

import "testing"

func TestParsePairUint(t *testing.T) {
	tests := []struct {
		in      string
		sep     byte
		wantL   uint
		wantR   uint
		wantErr bool
	}{
		{in: "", sep: ',', wantErr: true},
		{in: "10,", sep: ',', wantErr: true},
		{in: ",10", sep: ',', wantErr: true},
		{in: "10,20", sep: ',', wantL: 10, wantR: 20},
		{in: "10,20xy", sep: ',', wantErr: true},
		{in: "1024x768", sep: 'x', wantL: 1024, wantR: 768},
		{in: "-5,20", sep: ',', wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			l, r, err := ParsePair[uint](tt.in, tt.sep)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePair(%q, %q) = (%d, %d), want error", tt.in, tt.sep, l, r)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePair(%q, %q): %v", tt.in, tt.sep, err)
			}
			if l != tt.wantL || r != tt.wantR {
				t.Errorf("ParsePair(%q, %q) = (%d, %d), want (%d, %d)",
					tt.in, tt.sep, l, r, tt.wantL, tt.wantR)
			}
		})
	}
}

func TestParsePairFloat(t *testing.T) {
	l, r, err := ParsePair[float64]("0.5x1.5", 'x')
	if err != nil {
		t.Fatalf("ParsePair: %v", err)
	}
	if l != 0.5 || r != 1.5 {
		t.Errorf("ParsePair = (%v, %v), want (0.5, 1.5)", l, r)
	}
}

func TestParseComplex(t *testing.T) {
	tests := []struct {
		in      string
		want    complex128
		wantErr bool
	}{
		{in: "1.25,-0.0625", want: complex(1.25, -0.0625)},
		{in: "0.0625,", wantErr: true},
		{in: ",-0.0625", wantErr: true},
		{in: "-1.20,0.35", want: complex(-1.20, 0.35)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseComplex(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseComplex(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseComplex(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseComplex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseBounds(t *testing.T) {
	b, err := ParseBounds("1024x768")
	if err != nil {
		t.Fatalf("ParseBounds: %v", err)
	}
	if b.Width != 1024 || b.Height != 768 {
		t.Errorf("ParseBounds = %+v, want 1024x768", b)
	}

	for _, in := range []string{"1024", "1024x", "x768", "1024x768x2", "axb"} {
		if _, err := ParseBounds(in); err == nil {
			t.Errorf("ParseBounds(%q): expected error", in)
		}
	}
}
