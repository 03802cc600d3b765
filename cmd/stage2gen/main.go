// Command stage2gen builds the 256-byte .boot2 image from a raw stage-2
// payload binary, patching in its CRC-32/MPEG-2 checksum, the way
// boot/anticipation/cmd/release turns an ELF into a loadable wire image.
package main

import (
	"flag"
	"log"
	"os"

	"rp2kernel/internal/bootrom"
)

var outFlag = flag.String("o", "boot2.bin", "output path for the 256-byte image")
var verifyFlag = flag.Bool("verify", false, "treat the input as an already-built 256-byte image and just verify its CRC")

func usage() {
	log.Print("usage: stage2gen [-o boot2.bin] payload.bin")
	log.Print("       stage2gen -verify boot2.bin")
	os.Exit(1)
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
	}

	in, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("reading %s: %v", flag.Arg(0), err)
	}

	if *verifyFlag {
		if len(in) != bootrom.ImageSize {
			log.Fatalf("%s is %d bytes, want %d", flag.Arg(0), len(in), bootrom.ImageSize)
		}
		var image [bootrom.ImageSize]byte
		copy(image[:], in)
		if !bootrom.VerifyImage(image) {
			log.Fatalf("%s: CRC mismatch", flag.Arg(0))
		}
		log.Printf("%s: CRC ok", flag.Arg(0))
		return
	}

	image, err := bootrom.BuildImage(in)
	if err != nil {
		log.Fatalf("building image: %v", err)
	}
	if err := os.WriteFile(*outFlag, image[:], 0o644); err != nil {
		log.Fatalf("writing %s: %v", *outFlag, err)
	}
	log.Printf("wrote %s (%d bytes, payload %d bytes)", *outFlag, len(image), len(in))
}
