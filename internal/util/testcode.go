package util

import "crypto/rand"

const testCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateTestCode returns a short join code of the form T-XXXXXX.
func GenerateTestCode() string {
	b := make([]byte, 6)
	_, _ = rand.Read(b)
	for i := range b {
		b[i] = testCodeCharset[int(b[i])%len(testCodeCharset)]
	}
	return "T-" + string(b)
}
