package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/woozymasta/tex"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "decode":
		decodeCmd(os.Args[2:])
	case "encode":
		encodeCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  texconv decode -in <file.tex> [-out file.png] [-level N] [-workers N] [-accel]")
	fmt.Fprintln(os.Stderr, "  texconv encode -in <image> [-out file.tex] [-format dxt5|dxt1|rgba8] [-mips N] [-lz4] [-workers N] [-accel]")
}

func codecOptions(workers int, accel bool) *tex.Options {
	opts := &tex.Options{Workers: workers}
	if accel {
		opts.Accelerator = tex.BCN(workers)
	}
	return opts
}

func decodeCmd(args []string) {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	inPath := fs.String("in", "", "input .tex file")
	outPath := fs.String("out", "", "output PNG file (default: input with .png)")
	level := fs.Int("level", 0, "mip level to decode")
	workers := fs.Int("workers", 0, "codec goroutines (0 = GOMAXPROCS)")
	accel := fs.Bool("accel", false, "use the bcn accelerated codec")
	_ = fs.Parse(args)

	if *inPath == "" {
		usage()
		os.Exit(2)
	}
	if *outPath == "" {
		*outPath = strings.TrimSuffix(*inPath, filepath.Ext(*inPath)) + ".png"
	}

	f, err := os.Open(*inPath)
	if err != nil {
		fatal(err)
	}
	defer func() { _ = f.Close() }()

	t, err := tex.ReadTexture(f)
	if err != nil {
		fatal(err)
	}

	img, err := tex.DecodeImage(t, *level, codecOptions(*workers, *accel))
	if err != nil {
		fatal(err)
	}

	out, err := os.Create(*outPath)
	if err != nil {
		fatal(err)
	}
	defer func() { _ = out.Close() }()

	if err := png.Encode(out, img); err != nil {
		fatal(err)
	}

	fmt.Printf("%s %s level %d -> %s (%dx%d)\n",
		*inPath, t.Header.Format, *level, *outPath, img.Bounds().Dx(), img.Bounds().Dy())
}

func encodeCmd(args []string) {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	inPath := fs.String("in", "", "input image (PNG, JPEG or GIF)")
	outPath := fs.String("out", "", "output .tex file (default: input with .tex)")
	formatName := fs.String("format", "dxt5", "texture format: dxt5|dxt1|rgba8")
	mips := fs.Int("mips", 0, "mip level limit (0 = full chain)")
	useLZ4 := fs.Bool("lz4", false, "wrap the output in an LZ4 frame")
	workers := fs.Int("workers", 0, "codec goroutines (0 = GOMAXPROCS)")
	accel := fs.Bool("accel", false, "use the bcn accelerated codec")
	_ = fs.Parse(args)

	if *inPath == "" {
		usage()
		os.Exit(2)
	}
	if *outPath == "" {
		*outPath = strings.TrimSuffix(*inPath, filepath.Ext(*inPath)) + ".tex"
	}

	var format tex.Format
	switch strings.ToLower(*formatName) {
	case "dxt5":
		format = tex.FormatDXT5
	case "dxt1":
		format = tex.FormatDXT1
	case "rgba8":
		format = tex.FormatRGBA8
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q\n", *formatName)
		os.Exit(2)
	}

	f, err := os.Open(*inPath)
	if err != nil {
		fatal(err)
	}
	img, _, err := image.Decode(f)
	_ = f.Close()
	if err != nil {
		fatal(err)
	}

	err = tex.WriteWithOptions(img, *outPath, format, &tex.WriteOptions{
		MaxMipMaps: *mips,
		LZ4:        *useLZ4,
		Codec:      codecOptions(*workers, *accel),
	})
	if err != nil {
		fatal(err)
	}

	fmt.Printf("%s -> %s (%s, %dx%d)\n",
		*inPath, *outPath, format, img.Bounds().Dx(), img.Bounds().Dy())
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "texconv:", err)
	os.Exit(1)
}
