package bed

import (
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/vcontext"
)

// ReadPath opens path (transparently gzip-decompressing a ".gz" suffix, same
// detection the teacher's interval.NewBEDUnionFromPath performs) and reads
// every record in file order.
func ReadPath(path string) ([]Record, error) {
	ctx := vcontext.Background()
	f, err := file.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close(ctx) }()

	r := io.Reader(f.Reader(ctx))
	if fileio.DetermineType(path) == fileio.Gzip {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	}
	return NewReader(r, path).ReadAll()
}
