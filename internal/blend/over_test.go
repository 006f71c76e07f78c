package blend

import "testing"

// TestMulDiv255 tests rounded multiply-divide against the float reference.
func TestMulDiv255(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			want := byte(float64(a*b)/255 + 0.5)
			if got := MulDiv255(byte(a), byte(b)); got != want {
				t.Fatalf("MulDiv255(%d, %d) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestClamp255(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want byte
	}{
		{"negative", -10, 0},
		{"zero", 0, 0},
		{"round down", 10.49, 10},
		{"round up", 10.5, 11},
		{"max", 255, 255},
		{"overflow", 400, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp255(tt.in); got != tt.want {
				t.Errorf("Clamp255(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestSourceOver(t *testing.T) {
	tests := []struct {
		name           string
		src, dst, want [4]byte
	}{
		{"transparent source", [4]byte{0, 0, 0, 0}, [4]byte{10, 20, 30, 255}, [4]byte{10, 20, 30, 255}},
		{"opaque source", [4]byte{200, 100, 50, 255}, [4]byte{10, 20, 30, 255}, [4]byte{200, 100, 50, 255}},
		{"white 30 over black", [4]byte{30, 30, 30, 30}, [4]byte{0, 0, 0, 255}, [4]byte{30, 30, 30, 255}},
		{"half red over blue", [4]byte{128, 0, 0, 128}, [4]byte{0, 0, 255, 255}, [4]byte{128, 0, 127, 255}},
		{"over transparent", [4]byte{50, 50, 50, 100}, [4]byte{0, 0, 0, 0}, [4]byte{50, 50, 50, 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, d := tt.src, tt.dst
			r, g, b, a := SourceOver(s[0], s[1], s[2], s[3], d[0], d[1], d[2], d[3])
			if got := [4]byte{r, g, b, a}; got != tt.want {
				t.Errorf("SourceOver(%v, %v) = %v, want %v", s, d, got, tt.want)
			}
		})
	}
}

// TestSourceOverBounded checks every premultiplied source over an opaque
// destination stays opaque and in range.
func TestSourceOverBounded(t *testing.T) {
	for sa := 0; sa < 256; sa += 5 {
		for c := 0; c < 256; c += 15 {
			sc := MulDiv255(byte(c), byte(sa))
			for d := 0; d < 256; d += 17 {
				r, _, _, a := SourceOver(sc, sc, sc, byte(sa), byte(d), byte(d), byte(d), 255)
				if a != 255 {
					t.Fatalf("alpha = %d, want 255 (sa=%d c=%d d=%d)", a, sa, c, d)
				}
				lo, hi := min(c, d), max(c, d)
				if int(r) < lo-1 || int(r) > hi+1 {
					t.Fatalf("r = %d outside [%d, %d] (sa=%d c=%d d=%d)", r, lo, hi, sa, c, d)
				}
			}
		}
	}
}

func TestSourceOverSpan(t *testing.T) {
	dst := []byte{
		0, 0, 0, 255,
		0, 0, 0, 255,
		0, 0, 0, 255,
	}
	SourceOverSpan(dst, []byte{0, 255, 128}, 100, 100, 100, 255)

	want := []byte{
		0, 0, 0, 255,
		100, 100, 100, 255,
		50, 50, 50, 255,
	}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst = %v, want %v", dst, want)
		}
	}
}

func TestSourceOverSpanNilCoverage(t *testing.T) {
	dst := []byte{10, 10, 10, 255, 20, 20, 20, 255}
	SourceOverSpan(dst, nil, 30, 30, 30, 30)
	want := []byte{39, 39, 39, 255, 48, 48, 48, 255}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst = %v, want %v", dst, want)
		}
	}
}

func TestLerp(t *testing.T) {
	d := []byte{0, 100, 255, 255}
	s := []byte{255, 200, 0, 255}
	dst := make([]byte, 4)

	Lerp(dst, d, s, 0.1)
	want := []byte{26, 110, 230, 255}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("Lerp(0.1) = %v, want %v", dst, want)
		}
	}

	Lerp(dst, d, s, 0)
	for i := range d {
		if dst[i] != d[i] {
			t.Fatalf("Lerp(0) = %v, want %v", dst, d)
		}
	}

	Lerp(dst, d, s, 2)
	for i := range s {
		if dst[i] != s[i] {
			t.Fatalf("Lerp(2) = %v, want %v", dst, s)
		}
	}
}
