// paaconv converts between PAA texture containers and ordinary image files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/paaconv/paa"
)

var (
	decodeFlag = flag.Bool("decode", false, "convert a PAA file to an image")
	encodeFlag = flag.Bool("encode", false, "convert an image to a PAA file")
	formatFlag = flag.String("format", "auto", "target pixel format when encoding: auto, dxt1, dxt5, rgba8888")
	lzoFlag    = flag.Bool("lzo", true, "LZO1X-wrap large mipmaps when encoding")
	levelFlag  = flag.Int("level", 0, "mipmap level to decode")
)

const usageStr = `paaconv converts between PAA texture containers and ordinary image files.

Usage: choose one of

    paaconv -decode [-level=0] input.paa output.png
    paaconv -encode [-format=auto|dxt1|dxt5|rgba8888] [-lzo] input.png output.paa

Decode inputs a PAA file and outputs JPEG for a .jpg/.jpeg output path and
PNG for any other output path.
Encode inputs PNG, JPEG, BMP, TIFF, WEBP or TGA and outputs a PAA file.
`

func main() {
	log.SetFlags(0)

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	flag.Usage = func() { os.Stderr.WriteString(usageStr) }
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		return errors.New("exactly two paths are required: input and output")
	}
	in, out := flag.Arg(0), flag.Arg(1)

	switch {
	case *decodeFlag && !*encodeFlag:
		return decode(in, out)
	case *encodeFlag && !*decodeFlag:
		return encode(in, out)
	default:
		return errors.New("must specify exactly one of -decode or -encode")
	}
}

func decode(in, out string) error {
	p := paa.FromFile(in)
	if err := p.ReadPAA(nil); err != nil {
		return fmt.Errorf("reading %s: %w", in, err)
	}

	if err := p.WriteImage(out, *levelFlag, nil); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	return nil
}

func encode(in, out string) error {
	p := &paa.PAA{}
	if err := p.LoadImage(in, nil); err != nil {
		return fmt.Errorf("reading %s: %w", in, err)
	}

	format, err := parseFormat(*formatFlag)
	if err != nil {
		return err
	}

	opts := paa.WriteOptions{Format: format, LZO: *lzoFlag}
	if err := p.WritePAA(out, opts); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	return nil
}

func parseFormat(s string) (paa.Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return paa.FormatUnknown, nil
	case "dxt1":
		return paa.FormatDXT1, nil
	case "dxt5":
		return paa.FormatDXT5, nil
	case "rgba8888":
		return paa.FormatRGBA8888, nil
	default:
		return paa.FormatUnknown, fmt.Errorf("unknown -format %q", s)
	}
}
