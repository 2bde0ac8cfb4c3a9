package vgaconv

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bodgit/vgaconv/frame"
	"github.com/bodgit/vgaconv/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempDir(t *testing.T) (string, func()) {
	dir, err := ioutil.TempDir("", "vgaconv")
	require.NoError(t, err)
	return dir, func() { os.RemoveAll(dir) }
}

func writePNG(t *testing.T, file string, m image.Image) {
	f, err := os.Create(file)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, m))
}

func testImage(w, h int) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, color.NRGBA{0, 0, 0, 255})
		}
	}
	m.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	m.Set(1, 0, color.NRGBA{200, 200, 200, 255})
	m.Set(2, 0, color.NRGBA{10, 200, 10, 255})
	return m
}

func TestConvertText(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()

	base := filepath.Join(dir, "logo")
	require.NoError(t, ioutil.WriteFile(base+TextExt, []byte("B $ *\n"), 0644))

	logs := new(bytes.Buffer)
	c := New(log.New(logs, "", 0), nil)
	require.NoError(t, c.ConvertText(base))

	b, err := ioutil.ReadFile(base + BlobExt)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0xf0, 0x00, 0x00, 0x00, 0x60}, b)
	assert.Contains(t, logs.String(), "Wrote 5 cells")
	assert.Contains(t, logs.String(), "not a full 80x25 screen, 5 cells instead of 2000")

	// Converting again overwrites with identical output
	require.NoError(t, c.ConvertText(base))
	again, err := ioutil.ReadFile(base + BlobExt)
	require.NoError(t, err)
	assert.Equal(t, b, again)
}

func TestConvertTextFullScreen(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()

	base := filepath.Join(dir, "screen")
	line := strings.Repeat("#", text.Columns) + "\n"
	require.NoError(t, ioutil.WriteFile(base+TextExt, []byte(strings.Repeat(line, text.Rows)), 0644))

	logs := new(bytes.Buffer)
	require.NoError(t, New(log.New(logs, "", 0), nil).ConvertText(base))

	info, err := os.Stat(base + BlobExt)
	require.NoError(t, err)
	assert.Equal(t, int64(text.ScreenSize), info.Size())
	assert.NotContains(t, logs.String(), "not a full")
}

func TestConvertTextMissing(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()

	base := filepath.Join(dir, "missing")
	err := New(nil, nil).ConvertText(base)
	assert.True(t, os.IsNotExist(err))

	_, err = os.Stat(base + BlobExt)
	assert.True(t, os.IsNotExist(err))
}

func TestConvertImage(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()

	in, out := filepath.Join(dir, "in.png"), filepath.Join(dir, DefaultOutput)
	writePNG(t, in, testImage(frame.Width, frame.Height))

	diag := new(bytes.Buffer)
	require.NoError(t, New(nil, diag).ConvertImage(in, out, frame.Reject))

	b, err := ioutil.ReadFile(out)
	require.NoError(t, err)
	require.Len(t, b, frame.Size)
	assert.Equal(t, []byte{0x04, 0x80, 0x30, 0x00}, b[:4])
	assert.Equal(t, "unhandled color (10, 200, 10) at 2,0\n", diag.String())
}

// JPEG with an Exif APP1 segment holding only Orientation=6 (rotate 90)
func writeRotatedJPEG(t *testing.T, file string, m image.Image) {
	b := new(bytes.Buffer)
	require.NoError(t, jpeg.Encode(b, m, &jpeg.Options{Quality: 100}))

	exif := []byte{
		0xff, 0xe1, 0x00, 0x22,
		'E', 'x', 'i', 'f', 0x00, 0x00,
		'M', 'M', 0x00, 0x2a, 0x00, 0x00, 0x00, 0x08,
		0x00, 0x01,
		0x01, 0x12, 0x00, 0x03, 0x00, 0x00, 0x00, 0x01, 0x00, 0x06, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}

	out := append([]byte{}, b.Bytes()[:2]...)
	out = append(out, exif...)
	out = append(out, b.Bytes()[2:]...)
	require.NoError(t, ioutil.WriteFile(file, out, 0644))
}

func TestConvertImageIgnoresOrientation(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()

	in, out := filepath.Join(dir, "in.jpg"), filepath.Join(dir, DefaultOutput)
	writeRotatedJPEG(t, in, image.NewGray(image.Rect(0, 0, frame.Width, frame.Height)))

	require.NoError(t, New(nil, nil).ConvertImage(in, out, frame.Reject))

	b, err := ioutil.ReadFile(out)
	require.NoError(t, err)
	assert.Len(t, b, frame.Size)
}

func TestConvertImageWrongSize(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()

	in, out := filepath.Join(dir, "in.png"), filepath.Join(dir, DefaultOutput)
	writePNG(t, in, testImage(64, 40))

	c := New(nil, nil)
	assert.Error(t, c.ConvertImage(in, out, frame.Reject))
	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, c.ConvertImage(in, out, frame.Clip))
	b, err := ioutil.ReadFile(out)
	require.NoError(t, err)
	require.Len(t, b, frame.Size)
	assert.Equal(t, []byte{0x04, 0x80, 0x30, 0x00}, b[:4])
	assert.Equal(t, byte(0x00), b[frame.Size-1])
}

func TestConvertImageUndecodable(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()

	in, out := filepath.Join(dir, "in.png"), filepath.Join(dir, DefaultOutput)
	require.NoError(t, ioutil.WriteFile(in, []byte("not an image"), 0644))

	assert.Error(t, New(nil, nil).ConvertImage(in, out, frame.Reject))
	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestPreview(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()

	base := filepath.Join(dir, "logo")
	require.NoError(t, ioutil.WriteFile(base+TextExt, []byte("$,x\n"), 0644))

	c := New(nil, nil)
	require.NoError(t, c.ConvertText(base))

	textPNG := filepath.Join(dir, "text.png")
	require.NoError(t, c.PreviewText(base+BlobExt, textPNG, 3))
	m := readPNG(t, textPNG)
	assert.Equal(t, image.Rect(0, 0, 3*text.CellWidth, text.CellHeight), m.Bounds())
	assert.Equal(t, text.Palette[0x0f], color.RGBAModel.Convert(m.At(0, 0)))

	in, out := filepath.Join(dir, "in.png"), filepath.Join(dir, DefaultOutput)
	writePNG(t, in, testImage(frame.Width, frame.Height))
	require.NoError(t, c.ConvertImage(in, out, frame.Reject))

	framePNG := filepath.Join(dir, "frame.png")
	require.NoError(t, c.PreviewFrame(out, framePNG))
	m = readPNG(t, framePNG)
	assert.Equal(t, image.Rect(0, 0, frame.Width, frame.Height), m.Bounds())
	assert.Equal(t, color.RGBA{0xff, 0x00, 0x00, 0xff}, color.RGBAModel.Convert(m.At(0, 0)))

	assert.Error(t, c.PreviewFrame(base+BlobExt, framePNG))
}

func TestLoadConfig(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()

	file := filepath.Join(dir, "vgaconv.toml")
	require.NoError(t, ioutil.WriteFile(file, []byte("policy = \"resize\"\ncolumns = 40\n"), 0644))

	cfg, err := LoadConfig(file)
	require.NoError(t, err)
	assert.Equal(t, Config{Output: DefaultOutput, Policy: "resize", Columns: 40}, cfg)

	require.NoError(t, ioutil.WriteFile(file, []byte("policy = \"stretch\"\n"), 0644))
	_, err = LoadConfig(file)
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func readPNG(t *testing.T, file string) image.Image {
	f, err := os.Open(file)
	require.NoError(t, err)
	defer f.Close()
	m, err := png.Decode(f)
	require.NoError(t, err)
	return m
}
