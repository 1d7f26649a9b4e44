package sort

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/ajroetker/sortbench/elem/gen"
)

// Generate random data for benchmarks
func generateInt32(n int) []int32 {
	data := make([]int32, n)
	for i := range data {
		data[i] = int32(rand.Uint32())
	}
	return data
}

func BenchmarkBubble_1000(b *testing.B) {
	benchmarkAlgorithm(b, AlgBubble, 1000)
}

func BenchmarkSelection_1000(b *testing.B) {
	benchmarkAlgorithm(b, AlgSelection, 1000)
}

func BenchmarkInsertion_1000(b *testing.B) {
	benchmarkAlgorithm(b, AlgInsertion, 1000)
}

func BenchmarkInsertionWithoutExchanges_1000(b *testing.B) {
	benchmarkAlgorithm(b, AlgInsertionWithoutExchanges, 1000)
}

func BenchmarkInsertionWithSentinel_1000(b *testing.B) {
	benchmarkAlgorithm(b, AlgInsertionWithSentinel, 1000)
}

func BenchmarkShell_1000(b *testing.B) {
	benchmarkAlgorithm(b, AlgShell, 1000)
}

func BenchmarkShell_100000(b *testing.B) {
	benchmarkAlgorithm(b, AlgShell, 100000)
}

func benchmarkAlgorithm(b *testing.B, a Algorithm, n int) {
	// Generate reference data
	ref := generateInt32(n)
	data := make([]int32, n)
	sortFn := Func[int32](a)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		sortFn(data)
	}
}

// BenchmarkAll_Sorted runs every algorithm on already sorted input, where
// the insertion family is linear and Bubble is not.
func BenchmarkAll_Sorted(b *testing.B) {
	const n = 1000
	ref := make([]int32, n)
	for i := range ref {
		ref[i] = int32(i)
	}
	for _, a := range Algorithms() {
		b.Run(a.String(), func(b *testing.B) {
			data := make([]int32, n)
			sortFn := Func[int32](a)
			for i := 0; i < b.N; i++ {
				copy(data, ref)
				sortFn(data)
			}
		})
	}
}

// BenchmarkAll_Generated times every algorithm on the interleaved
// random/descending sequences the benchmark driver sorts.
func BenchmarkAll_Generated(b *testing.B) {
	for _, n := range []int{500, 3000} {
		ref := gen.New(1).Generate(n)
		for _, a := range Algorithms() {
			b.Run(a.String()+"_"+strconv.Itoa(len(ref)), func(b *testing.B) {
				data := make([]int32, len(ref))
				sortFn := Func[int32](a)
				for i := 0; i < b.N; i++ {
					copy(data, ref)
					sortFn(data)
				}
				b.StopTimer()
				if !IsSorted(data) {
					b.Fatalf("%s left generated data unsorted", a)
				}
			})
		}
	}
}
