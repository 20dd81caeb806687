package web

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	_ "golang.org/x/image/webp"
)

const (
	logoHeight      = 40
	placeholderW    = 200
	placeholderText = "NiceJob"
	maxLogoBytes    = 2 << 20
)

var placeholderBg = color.RGBA{R: 0x00, G: 0x7b, B: 0xff, A: 0xff}

var errNotImage = errors.New("logo: response is not an image")

// logoSource serves the header logo. The primary URL is tried first, then
// the remote fallback, then a placeholder drawn locally.
type logoSource struct {
	primary  string
	fallback string
	client   *http.Client
	logger   *log.Logger
	cache    *logoCache
}

func newLogoSource(primary, fallback string, client *http.Client, logger *log.Logger, ttl time.Duration) *logoSource {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = log.Default()
	}
	return &logoSource{
		primary:  primary,
		fallback: fallback,
		client:   client,
		logger:   logger,
		cache:    newLogoCache(ttl),
	}
}

func (s *Server) handleLogo(w http.ResponseWriter, r *http.Request) {
	data, ctype := s.logo.load(r)
	w.Header().Set("Content-Type", ctype)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(data)
}

func (l *logoSource) load(r *http.Request) ([]byte, string) {
	for _, u := range []string{l.primary, l.fallback} {
		if strings.TrimSpace(u) == "" {
			continue
		}
		if data, ctype, ok := l.cache.Select(u); ok {
			return data, ctype
		}
		data, ctype, err := l.fetch(r, u)
		if err == nil {
			l.cache.Store(u, data, ctype)
			return data, ctype
		}
		l.logger.Printf("LOGO %s: %v", u, err)
	}
	data, err := placeholderPNG(placeholderW, logoHeight, placeholderText)
	if err != nil {
		l.logger.Printf("LOGO placeholder: %v", err)
		return nil, "image/png"
	}
	return data, "image/png"
}

// fetch downloads u. SVG passes through untouched; raster formats are
// decoded and scaled to logoHeight pixels high, then re-encoded as PNG.
func (l *logoSource) fetch(r *http.Request, u string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, u, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Accept", "image/*")
	req.Header.Set("User-Agent", "snippetkit-logo/1.0")
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("upstream status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxLogoBytes))
	if err != nil {
		return nil, "", err
	}
	if len(body) == 0 {
		return nil, "", errNotImage
	}
	ctype := strings.ToLower(resp.Header.Get("Content-Type"))
	if strings.Contains(ctype, "svg") || looksLikeSVG(body) {
		return body, "image/svg+xml", nil
	}
	img, _, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", errNotImage, err)
	}
	out, err := encodePNG(scaleToHeight(img, logoHeight))
	if err != nil {
		return nil, "", err
	}
	return out, "image/png", nil
}

func looksLikeSVG(b []byte) bool {
	head := b
	if len(head) > 512 {
		head = head[:512]
	}
	head = bytes.TrimSpace(head)
	return bytes.HasPrefix(head, []byte("<svg")) ||
		(bytes.HasPrefix(head, []byte("<?xml")) && bytes.Contains(head, []byte("<svg")))
}

func scaleToHeight(src image.Image, h int) image.Image {
	b := src.Bounds()
	if b.Dy() == 0 || b.Dy() == h {
		return src
	}
	w := b.Dx() * h / b.Dy()
	if w < 1 {
		w = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// placeholderPNG draws white text centred on the brand blue.
func placeholderPNG(w, h int, text string) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: placeholderBg}, image.Point{}, draw.Src)
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: img, Src: image.White, Face: face}
	textW := d.MeasureString(text).Ceil()
	m := face.Metrics()
	textH := (m.Ascent + m.Descent).Ceil()
	x := (w - textW) / 2
	y := (h-textH)/2 + m.Ascent.Ceil()
	d.Dot = fixed.P(x, y)
	d.DrawString(text)
	return encodePNG(img)
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
