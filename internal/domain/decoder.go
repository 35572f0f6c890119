package domain

import "context"

// BarcodeDecoder extracts at most one barcode payload from an image or video
// frame. ok is false when nothing was detected.
type BarcodeDecoder interface {
	Decode(ctx context.Context, image []byte) (barcode string, ok bool, err error)
}
