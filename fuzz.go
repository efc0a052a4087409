package hermes

// Fuzz is a go-fuzz entry point exercising the full decode path against
// arbitrary input, grounded on the teacher's PE fuzz harness of the
// same name and signature.
func Fuzz(data []byte) int {
	hf, err := OpenBytes(data, &Options{})
	if err != nil {
		return 0
	}
	defer hf.Close()
	if _, err := hf.Bytes(); err != nil {
		return 0
	}
	return 1
}
