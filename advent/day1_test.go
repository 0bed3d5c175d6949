package main

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const day1Example = `3   4
4   3
2   5
1   3
3   9
3   3`

func TestDay1Example(t *testing.T) {
	for _, tt := range []struct {
		name  string
		input string
	}{
		{"no trailing newline", day1Example},
		{"trailing newline", day1Example + "\n"},
	} {
		if got, want := day1a(tt.input), 11; got != want {
			t.Errorf("day1a (%s): got %d; want %d", tt.name, got, want)
		}
		if got, want := day1b(tt.input), 31; got != want {
			t.Errorf("day1b (%s): got %d; want %d", tt.name, got, want)
		}
	}
}

func TestParseLocationLists(t *testing.T) {
	left, right := parseLocationLists("12345   00007\n00010   99999\n")
	if diff := cmp.Diff([]int{12345, 10}, left); diff != "" {
		t.Errorf("left (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{7, 99999}, right); diff != "" {
		t.Errorf("right (-want +got):\n%s", diff)
	}
}

func TestParseLocationListsBadLineLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic for ragged input")
		}
	}()
	parseLocationLists("123   456\n12   456\n")
}

func TestParseFixedDecimal(t *testing.T) {
	for _, tt := range []struct {
		s    string
		want uint32
	}{
		{"00001234", 1234},
		{"00000001", 1},
		{"1", 1},
		{"7", 7},
		{"0", 0},
		{"00000", 0},
		{"54321", 54321},
		{"99999", 99999},
		{"12345678", 12345678},
		{"99999999", 99999999},
	} {
		if got := parseFixedDecimal(tt.s); got != tt.want {
			t.Errorf("parseFixedDecimal(%q): got %d; want %d", tt.s, got, tt.want)
		}
	}
}

func TestSWARDecimalWord(t *testing.T) {
	for _, tt := range []struct {
		b    [8]byte
		want uint32
	}{
		{[8]byte{'0', '0', '0', '0', '1', '2', '3', '4'}, 1234},
		{[8]byte{'0', '0', '0', '0', '0', '0', '0', '1'}, 1},
	} {
		v := uint64(0)
		for i := 7; i >= 0; i-- {
			v = v<<8 | uint64(tt.b[i])
		}
		if got := swarDecimal(v); got != tt.want {
			t.Errorf("swarDecimal(%q): got %d; want %d", tt.b[:], got, tt.want)
		}
	}
}

func naiveDecimal(s string) uint32 {
	var n uint32
	for i := 0; i < len(s); i++ {
		n = n*10 + uint32(s[i]-'0')
	}
	return n
}

func TestParseFixedDecimalMatchesNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		width := 1 + rng.Intn(8)
		var b strings.Builder
		for j := 0; j < width; j++ {
			b.WriteByte(byte('0' + rng.Intn(10)))
		}
		s := b.String()
		if got, want := parseFixedDecimal(s), naiveDecimal(s); got != want {
			t.Fatalf("parseFixedDecimal(%q): got %d; want %d", s, got, want)
		}
	}
}

// randomLocations generates n lines of width-digit pairs. Values are drawn
// from a small range so that duplicates are common.
func randomLocations(rng *rand.Rand, n, width int) (input string, left, right []int) {
	hi := 1
	for i := 0; i < width; i++ {
		hi *= 10
	}
	pool := 1 + rng.Intn(min(hi, 50))
	var b strings.Builder
	for i := 0; i < n; i++ {
		l := rng.Intn(pool) * (hi / pool)
		r := rng.Intn(pool) * (hi / pool)
		left = append(left, l)
		right = append(right, r)
		fmt.Fprintf(&b, "%0*d   %0*d", width, l, width, r)
		if i < n-1 || rng.Intn(2) == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String(), left, right
}

func naiveDistance(left, right []int) int {
	left, right = slices.Clone(left), slices.Clone(right)
	slices.Sort(left)
	slices.Sort(right)
	var sum int
	for i := range left {
		d := left[i] - right[i]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum
}

func naiveSimilarity(left, right []int) int {
	counts := make(map[int]int)
	for _, r := range right {
		counts[r]++
	}
	var sum int
	for _, l := range left {
		sum += l * counts[l]
	}
	return sum
}

func TestDay1MatchesNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 300; i++ {
		n := 1 + rng.Intn(300)
		width := []int{1, 3, 5}[rng.Intn(3)]
		input, left, right := randomLocations(rng, n, width)
		if got, want := day1a(input), naiveDistance(left, right); got != want {
			t.Fatalf("day1a (n=%d, width=%d): got %d; want %d", n, width, got, want)
		}
		if got, want := day1b(input), naiveSimilarity(left, right); got != want {
			t.Fatalf("day1b (n=%d, width=%d): got %d; want %d", n, width, got, want)
		}
	}
}

func TestLaneDistanceSplit(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, n := range []int{0, 1, 63, 64, 65, 128, 1000} {
		left := make([]int, n)
		right := make([]int, n)
		for i := range left {
			left[i] = rng.Intn(100000)
			right[i] = rng.Intn(100000)
		}
		got := laneDistance(left, right) + tailDistance(left, right)
		// naiveDistance sorts; compare against an unsorted scalar sum.
		var want int
		for i := range left {
			d := left[i] - right[i]
			if d < 0 {
				d = -d
			}
			want += d
		}
		if got != want {
			t.Errorf("n=%d: got %d; want %d", n, got, want)
		}
	}
}

func TestSimilarity(t *testing.T) {
	for _, tt := range []struct {
		left  []int
		right []int
		want  int
	}{
		{[]int{1, 2, 3, 3, 3, 4}, []int{3, 3, 3, 4, 5, 9}, 31},
		// Right runs out while copies of a matching left value remain.
		{[]int{3, 3, 3}, []int{3, 3, 3}, 27},
		{[]int{1, 5, 5}, []int{0, 2, 5}, 10},
		{[]int{1, 2}, []int{3, 4}, 0},
		{[]int{7}, []int{7}, 7},
	} {
		if got := similarity(tt.left, tt.right); got != tt.want {
			t.Errorf("similarity(%v, %v): got %d; want %d", tt.left, tt.right, got, tt.want)
		}
	}
}

func benchmarkDay1(b *testing.B, fn func(string) int) {
	rng := rand.New(rand.NewSource(4))
	input, _, _ := randomLocations(rng, 1000, 5)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for range b.N {
		fn(input)
	}
}

func BenchmarkDay1a(b *testing.B) { benchmarkDay1(b, day1a) }
func BenchmarkDay1b(b *testing.B) { benchmarkDay1(b, day1b) }
