package hal

// xrgbToRGBA unpacks 0xXXRRGGBB pixels into tightly packed RGBA bytes with
// alpha forced opaque.
func xrgbToRGBA(dst []byte, src []uint32, width, height, stride int) {
	j := 0
	for y := 0; y < height; y++ {
		row := src[y*stride : y*stride+width]
		for _, p := range row {
			dst[j+0] = uint8(p >> 16)
			dst[j+1] = uint8(p >> 8)
			dst[j+2] = uint8(p)
			dst[j+3] = 0xFF
			j += 4
		}
	}
}
