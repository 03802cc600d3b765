//go:build !rp2040

package main

import (
	"log"

	"rp2kernel/internal/boot"
)

func main() {
	if err := boot.Entry(kmain); err != nil {
		log.Fatal(err)
	}
}
