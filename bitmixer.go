package fa

// mix32 is the 32 bit finalizer of MurmurHash3.
func mix32(v uint32) uint32 {
	v = (v ^ (v >> 16)) * 0x85ebca6b
	v = (v ^ (v >> 13)) * 0xc2b2ae35
	return v ^ (v >> 16)
}
