package svgchart

import (
	"encoding/xml"
	"io"

	"golang.org/x/net/html/charset"
)

// Verify checks that a rendered document is well formed XML. It
// consumes the whole stream and reports the first decoding error.
func Verify(r io.Reader) error {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	for {
		_, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
