package scanner

import "os"

const (
	// binarySampleSize is how many leading bytes the probe reads.
	binarySampleSize = 512

	// binaryThreshold is the fraction of non-text bytes above which a
	// sample is classified as binary.
	binaryThreshold = 0.30
)

// IsBinary reports whether the file at path looks binary. It samples up
// to 512 leading bytes and classifies the file as binary when more than
// 30% of them fall outside printable ASCII plus tab, LF, and CR. Empty
// and unreadable files are treated as text. The probe is intentionally
// approximate and its scope fixed; it exists only to keep obviously
// non-text content out of the artifact.
func IsBinary(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, binarySampleSize)
	n, _ := f.Read(buf)
	return isBinarySample(buf[:n])
}

// isBinarySample applies the non-text fraction heuristic to a sample.
func isBinarySample(sample []byte) bool {
	if len(sample) == 0 {
		return false
	}
	nonText := 0
	for _, b := range sample {
		if b == '\t' || b == '\n' || b == '\r' {
			continue
		}
		if b >= 0x20 && b <= 0x7e {
			continue
		}
		nonText++
	}
	return float64(nonText)/float64(len(sample)) > binaryThreshold
}
