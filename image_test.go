package planar

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// mustImage allocates an image or fails the test.
func mustImage(t testing.TB, width, height, channels int) *Image {
	t.Helper()
	im, err := NewImage(width, height, channels)
	if err != nil {
		t.Fatalf("NewImage(%d, %d, %d) error = %v", width, height, channels, err)
	}
	return im
}

// rampImage fills every sample with a distinct value derived from its index.
func rampImage(t testing.TB, width, height, channels int) *Image {
	t.Helper()
	im := mustImage(t, width, height, channels)
	for i := range im.Data {
		im.Data[i] = float32(i) / float32(len(im.Data))
	}
	return im
}

// floatNear reports whether a and b differ by at most eps.
func floatNear(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) <= float64(eps)
}

func TestNewImage(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		height   int
		channels int
		wantErr  error
	}{
		{"valid RGB", 100, 50, 3, nil},
		{"valid gray", 10, 10, 1, nil},
		{"1x1 minimum", 1, 1, 1, nil},
		{"zero width", 0, 10, 3, ErrInvalidDimensions},
		{"zero height", 10, 0, 3, ErrInvalidDimensions},
		{"zero channels", 10, 10, 0, ErrInvalidDimensions},
		{"negative width", -1, 10, 3, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			im, err := NewImage(tt.width, tt.height, tt.channels)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewImage() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			want := tt.width * tt.height * tt.channels
			if len(im.Data) != want || im.Len() != want {
				t.Errorf("len(Data) = %d, Len() = %d, want %d", len(im.Data), im.Len(), want)
			}
			for i, v := range im.Data {
				if v != 0 {
					t.Fatalf("Data[%d] = %v, want zero-initialized", i, v)
				}
			}
		})
	}
}

func TestFromData(t *testing.T) {
	data := make([]float32, 2*3*4)

	tests := []struct {
		name    string
		data    []float32
		w, h, c int
		wantErr error
	}{
		{"exact", data, 2, 3, 4, nil},
		{"too small", data[:5], 2, 3, 4, ErrDataSize},
		{"too large", make([]float32, 100), 2, 3, 4, ErrDataSize},
		{"invalid dimensions", data, 0, 3, 4, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromData(tt.data, tt.w, tt.h, tt.c)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("FromData() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFromDataSharesBuffer(t *testing.T) {
	data := make([]float32, 4)
	im, err := FromData(data, 2, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	im.SetPixel(1, 1, 0, 0.5)
	if data[3] != 0.5 {
		t.Errorf("write through view not visible in caller buffer: %v", data)
	}
}

func TestClone(t *testing.T) {
	im := rampImage(t, 4, 3, 3)
	cp := im.Clone()

	if cp.Width != im.Width || cp.Height != im.Height || cp.Channels != im.Channels {
		t.Fatalf("Clone() dims = %dx%dx%d, want %dx%dx%d",
			cp.Width, cp.Height, cp.Channels, im.Width, im.Height, im.Channels)
	}
	if diff := cmp.Diff(im.Data, cp.Data); diff != "" {
		t.Fatalf("Clone() data mismatch (-orig +clone):\n%s", diff)
	}

	before := append([]float32(nil), im.Data...)
	cp.SetPixel(0, 0, 0, 42)
	cp.Clamp()
	if diff := cmp.Diff(before, im.Data); diff != "" {
		t.Errorf("mutating clone changed original (-want +got):\n%s", diff)
	}
	if &cp.Data[0] == &im.Data[0] {
		t.Error("Clone() shares the original buffer")
	}
}
