// Package imaging valida y procesa las fotos de ejemplares antes de
// subirlas o almacenarlas: detecta el tipo real por bytes, aplica el
// límite de tamaño y reescala lo que exceda la dimensión máxima.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"net/http"

	"golang.org/x/image/draw"
)

// MaxUploadBytes es el límite de subida del backend para fotos (2MB).
const MaxUploadBytes = 2_000_000

// MaxDimension es el ancho/alto máximo con el que se guarda una foto.
const MaxDimension = 1024

// JPEGQuality es la calidad de compresión del JPEG de salida.
const JPEGQuality = 85

// AllowedMIME lista los tipos de entrada aceptados.
var AllowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

var (
	ErrTooLarge    = errors.New("image exceeds 2MB limit")
	ErrUnsupported = errors.New("unsupported image format")
)

// Result contiene la imagen procesada, siempre JPEG.
type Result struct {
	Data []byte
	MIME string
}

// Validate comprueba tamaño y formato sin decodificar la imagen completa.
// El MIME se detecta de los bytes, no de cabeceras del cliente.
func Validate(data []byte) (mime string, err error) {
	if len(data) > MaxUploadBytes {
		return "", ErrTooLarge
	}
	detected := http.DetectContentType(data)
	if !AllowedMIME[detected] {
		return "", fmt.Errorf("%w: %s (solo JPEG, PNG o GIF)", ErrUnsupported, detected)
	}
	return detected, nil
}

// Process valida la foto, la reescala si supera MaxDimension y la
// re-codifica como JPEG comprimido.
func Process(data []byte) (*Result, error) {
	if _, err := Validate(data); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	img = downscale(img, MaxDimension)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("encoding JPEG: %w", err)
	}

	return &Result{
		Data: buf.Bytes(),
		MIME: "image/jpeg",
	}, nil
}

// downscale reescala preservando proporciones con interpolación Catmull-Rom.
// Devuelve la imagen original si ya está dentro del límite.
func downscale(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	if w <= maxDim && h <= maxDim {
		return img
	}

	newW, newH := w, h
	if w > h {
		newW = maxDim
		newH = int(float64(h) * float64(maxDim) / float64(w))
	} else {
		newH = maxDim
		newW = int(float64(w) * float64(maxDim) / float64(h))
	}
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func init() {
	image.RegisterFormat("jpeg", "\xff\xd8", jpeg.Decode, jpeg.DecodeConfig)
	image.RegisterFormat("png", "\x89PNG", png.Decode, png.DecodeConfig)
	image.RegisterFormat("gif", "GIF8", gif.Decode, gif.DecodeConfig)
}
