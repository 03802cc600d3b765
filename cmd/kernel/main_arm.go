//go:build rp2040

package main

import "rp2kernel/internal/boot"

func main() {
	boot.Entry(kmain)
}
