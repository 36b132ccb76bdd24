package rawvol

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// decompress wraps r by c. The returned closer releases decoder resources.
func decompress(r io.Reader, c Compression) (io.Reader, func() error, error) {
	switch c {
	case None:
		return r, func() error { return nil }, nil
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("rawvol: gzip: %w", err)
		}
		return zr, zr.Close, nil
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("rawvol: zstd: %w", err)
		}
		return dec, func() error { dec.Close(); return nil }, nil
	case LZ4:
		return lz4.NewReader(r), func() error { return nil }, nil
	}
	return nil, nil, fmt.Errorf("%w: %s", ErrUnknownCompression, c)
}

// compress wraps w by c. The returned closer flushes the stream; it does not close w.
func compress(w io.Writer, c Compression) (io.Writer, func() error, error) {
	switch c {
	case None:
		return w, func() error { return nil }, nil
	case Gzip:
		zw := gzip.NewWriter(w)
		return zw, zw.Close, nil
	case Zstd:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, nil, fmt.Errorf("rawvol: zstd: %w", err)
		}
		return enc, enc.Close, nil
	case LZ4:
		zw := lz4.NewWriter(w)
		return zw, zw.Close, nil
	}
	return nil, nil, fmt.Errorf("%w: %s", ErrUnknownCompression, c)
}
