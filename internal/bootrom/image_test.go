package bootrom

import "testing"

// TestCRCOfAllFFPayloadMatchesGoldenValue pins down that the CRC-32/MPEG-2
// of 252 bytes of 0xFF padding is a fixed, known constant.
func TestCRCOfAllFFPayloadMatchesGoldenValue(t *testing.T) {
	data := make([]byte, PayloadSize)
	for i := range data {
		data[i] = 0xFF
	}
	const golden = 0x0B8FD31A
	if got := crc32MPEG2(data); got != golden {
		t.Fatalf("crc32MPEG2(252×0xFF) = %#08x, want %#08x", got, golden)
	}
}

func TestBuildImagePadsAndVerifies(t *testing.T) {
	image, err := BuildImage(nil)
	if err != nil {
		t.Fatalf("BuildImage: %v", err)
	}
	if len(image) != ImageSize {
		t.Fatalf("len(image) = %d, want %d", len(image), ImageSize)
	}
	for i := 0; i < PayloadSize; i++ {
		if image[i] != 0xFF {
			t.Fatalf("image[%d] = %#x, want 0xFF padding", i, image[i])
		}
	}
	if !VerifyImage(image) {
		t.Fatal("VerifyImage rejected an image BuildImage just produced")
	}
}

func TestBuildImageEmbedsPayloadAndPreservesPadding(t *testing.T) {
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	image, err := BuildImage(payload)
	if err != nil {
		t.Fatalf("BuildImage: %v", err)
	}
	for i, want := range payload {
		if image[i] != want {
			t.Fatalf("image[%d] = %#x, want %#x", i, image[i], want)
		}
	}
	if image[len(payload)] != 0xFF {
		t.Fatalf("image[%d] = %#x, want 0xFF padding after payload", len(payload), image[len(payload)])
	}
	if !VerifyImage(image) {
		t.Fatal("VerifyImage rejected a payload-bearing image")
	}
}

func TestBuildImageRejectsOversizedPayload(t *testing.T) {
	if _, err := BuildImage(make([]byte, PayloadSize+1)); err != ErrPayloadTooLarge {
		t.Fatalf("err = %v, want ErrPayloadTooLarge", err)
	}
}

func TestVerifyImageRejectsTamperedImage(t *testing.T) {
	image, _ := BuildImage([]byte{1, 2, 3})
	image[0] ^= 0xFF
	if VerifyImage(image) {
		t.Fatal("VerifyImage accepted a tampered image")
	}
}
