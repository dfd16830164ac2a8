package testutils

import (
	"os"
	"strconv"

	"github.com/icrowley/fake"
	"syreclabs.com/go/faker"
)

const defaultSampleSize = 8

// SampleSize is read from LAW_SAMPLES so CI can widen the law checks.
func SampleSize() int {
	n, err := strconv.Atoi(getEnv("LAW_SAMPLES", strconv.Itoa(defaultSampleSize)))
	if err != nil || n <= 0 {
		return defaultSampleSize
	}
	return n
}

// Ints returns n random integers with up to four digits, zero included.
func Ints(n int) []int {
	out := make([]int, 0, n+1)
	out = append(out, 0)
	for i := 0; i < n; i++ {
		out = append(out, faker.Number().NumberInt(4))
	}
	return out
}

// Words returns n random dictionary words, the empty string included.
func Words(n int) []string {
	out := make([]string, 0, n+1)
	out = append(out, "")
	for i := 0; i < n; i++ {
		out = append(out, fake.Word())
	}
	return out
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}
