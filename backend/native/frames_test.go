package native

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"math"
	"strconv"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/nle/render"
	"github.com/gogpu/nle/value"
)

func strconvID(id uint64) string { return strconv.FormatUint(id, 10) }

func solid(w, h int, c color.Color) *image.RGBA64 {
	img := image.NewRGBA64(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestTarget(t *testing.T) {
	b, dev, _ := newTestBackend(t)
	params := render.NewVideoParams(1920, 1080, render.NewRational(1, 30), render.PixelFormatRGBA16F, 2)

	tex, err := b.Target(params)
	if err != nil {
		t.Fatal(err)
	}
	want := value.Texture{ID: tex.ID, Width: 960, Height: 540, Format: gputypes.TextureFormatRGBA16Float}
	if tex != want {
		t.Errorf("Target() = %+v, want %+v", tex, want)
	}
	d := dev.lastTexture
	if d.Size.Width != 960 || d.Size.Height != 540 || d.Usage&gputypes.TextureUsageRenderAttachment == 0 {
		t.Errorf("descriptor = %+v", d)
	}

	other, err := b.Target(params)
	if err != nil {
		t.Fatal(err)
	}
	if other.ID == tex.ID {
		t.Error("targets should have distinct ids")
	}

	b.Release(tex)
	b.Release(tex)
	if b.Textures() != 1 || dev.texturesDestroyed != 1 {
		t.Errorf("after Release: textures=%d destroyed=%d", b.Textures(), dev.texturesDestroyed)
	}
}

func TestTargetInvalidParams(t *testing.T) {
	b, _, _ := newTestBackend(t)
	if _, err := b.Target(render.VideoParams{}); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("Target() = %v, want ErrInvalidParams", err)
	}
}

func TestUploadRGBA8(t *testing.T) {
	b, _, q := newTestBackend(t)
	img := image.NewRGBA(image.Rect(0, 0, 64, 32))

	tex, err := b.Upload(img, testParams)
	if err != nil {
		t.Fatal(err)
	}
	if tex.Width != 32 || tex.Height != 16 {
		t.Errorf("Upload() = %+v", tex)
	}
	if q.writes != 1 || len(q.data) != 32*16*4 || q.layout.BytesPerRow != 32*4 {
		t.Errorf("write: n=%d len=%d bytesPerRow=%d", q.writes, len(q.data), q.layout.BytesPerRow)
	}
}

func TestUploadWriteErrorReleases(t *testing.T) {
	b, _, q := newTestBackend(t)
	q.failErr = errors.New("queue lost")

	if _, err := b.Upload(image.NewRGBA(image.Rect(0, 0, 8, 8)), testParams); !errors.Is(err, q.failErr) {
		t.Errorf("Upload() = %v, want queue error", err)
	}
	if b.Textures() != 0 {
		t.Errorf("Textures() = %d, want 0 after failed upload", b.Textures())
	}
}

func TestUploadUnsupportedFormat(t *testing.T) {
	b, _, _ := newTestBackend(t)
	params := render.NewVideoParams(8, 8, render.NewRational(1, 25), render.PixelFormatRGBA16F, 1)
	if _, err := b.Upload(image.NewRGBA(image.Rect(0, 0, 8, 8)), params); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Upload() = %v, want ErrUnsupportedFormat", err)
	}
}

func TestEncodeFrameRGBA16U(t *testing.T) {
	params := render.NewVideoParams(4, 4, render.NewRational(1, 25), render.PixelFormatRGBA16U, 1)
	img := solid(4, 4, color.RGBA64{R: 0x1234, G: 0, B: 0, A: 0xffff})

	out, err := encodeFrame(img, params)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 4*4*8 {
		t.Fatalf("len = %d, want %d", len(out), 4*4*8)
	}
	r := binary.LittleEndian.Uint16(out)
	if d := int(r) - 0x1234; d < -1 || d > 1 {
		t.Errorf("red = %#x, want ~0x1234 little-endian", r)
	}
}

func TestEncodeFrameRGBA32F(t *testing.T) {
	params := render.NewVideoParams(4, 4, render.NewRational(1, 25), render.PixelFormatRGBA32F, 1)
	img := solid(4, 4, color.RGBA64{R: 0xffff, G: 0x8000, B: 0, A: 0xffff})

	out, err := encodeFrame(img, params)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 4*4*16 {
		t.Fatalf("len = %d, want %d", len(out), 4*4*16)
	}
	r := math.Float32frombits(binary.LittleEndian.Uint32(out[0:]))
	g := math.Float32frombits(binary.LittleEndian.Uint32(out[4:]))
	if math.Abs(float64(r)-1) > 1e-3 || math.Abs(float64(g)-0.5) > 1e-3 {
		t.Errorf("r, g = %v, %v, want 1, 0.5", r, g)
	}
}
