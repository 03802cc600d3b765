package bootrom

import (
	"encoding/binary"
	"errors"
)

// ImageSize is the fixed size of the .boot2 section the RP2040 boot ROM
// reads from flash offset 0.
const ImageSize = 256

// PayloadSize is the portion of the image that is real stage-2 code; the
// final 4 bytes are always the CRC.
const PayloadSize = ImageSize - 4

// ErrPayloadTooLarge is returned when the caller's stage-2 code does not
// fit in PayloadSize bytes.
var ErrPayloadTooLarge = errors.New("bootrom: payload exceeds 252 bytes")

// BuildImage lays payload into a 256-byte image, pads the remainder with
// 0xFF (per §4.3, flash-erased NOR reads as 0xFF, so this is also what an
// unprogrammed chip would see), and appends the little-endian CRC-32/
// MPEG-2 of the first 252 bytes.
func BuildImage(payload []byte) ([ImageSize]byte, error) {
	var image [ImageSize]byte
	if len(payload) > PayloadSize {
		return image, ErrPayloadTooLarge
	}
	for i := range image {
		image[i] = 0xFF
	}
	copy(image[:PayloadSize], payload)

	crc := crc32MPEG2(image[:PayloadSize])
	binary.LittleEndian.PutUint32(image[PayloadSize:], crc)
	return image, nil
}

// VerifyImage recomputes the checksum embedded in a 256-byte image and
// reports whether it matches, the same check the boot ROM itself performs
// before jumping into .boot2.
func VerifyImage(image [ImageSize]byte) bool {
	want := binary.LittleEndian.Uint32(image[PayloadSize:])
	got := crc32MPEG2(image[:PayloadSize])
	return want == got
}
