// Command console is a host-side monitor for the kernel's UART log
// stream: open a serial device raw and copy lines to stdout, the same
// role release/ioproto.go's ttyIOProto plays for the encoder tool, just
// reading instead of writing.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tty "github.com/mattn/go-tty"
)

var devFlag = flag.String("p", "", "serial device to monitor, e.g. /dev/ttyACM0")

func usage() {
	log.Print("usage: console -p /dev/ttyACM0")
	os.Exit(1)
}

func main() {
	flag.Parse()
	if *devFlag == "" {
		usage()
	}

	t, err := tty.OpenDevice(*devFlag)
	if err != nil {
		log.Fatalf("opening %s: %v", *devFlag, err)
	}
	defer t.Close()
	restore := t.MustRaw()
	defer restore()

	monitor(t)
}

// monitor reads bytes from t and echoes complete lines to stdout,
// dropping the stray control bytes a freshly-reset board sometimes sends
// before its first real log line.
func monitor(t *tty.TTY) {
	in := t.Input()
	var line []byte
	buf := make([]byte, 1)
	for {
		n, err := in.Read(buf)
		if err != nil {
			log.Fatalf("read: %v", err)
		}
		if n == 0 {
			continue
		}
		b := buf[0]
		switch {
		case b == '\n':
			fmt.Println(string(line))
			line = line[:0]
		case b < 32:
			// drop other control bytes
		default:
			line = append(line, b)
		}
	}
}
