package main

import (
	"encoding/binary"
	"slices"
	"strings"

	"github.com/kr/pretty"
)

func init() {
	register("1a", day1a)
	register("1b", day1b)
}

func day1a(input string) int {
	left, right := parseLocationLists(input)
	slices.Sort(left)
	slices.Sort(right)
	return laneDistance(left, right) + tailDistance(left, right)
}

func day1b(input string) int {
	left, right := parseLocationLists(input)
	slices.Sort(left)
	slices.Sort(right)
	return similarity(left, right)
}

// distanceLanes is the chunk size of the bulk pass in laneDistance.
const distanceLanes = 64

// laneDistance sums |left[i]-right[i]| over every full chunk of
// distanceLanes elements. The chunk body is written as independent
// lane-wise operations followed by a single reduction.
func laneDistance(left, right []int) int {
	var sum int
	n := len(left) / distanceLanes * distanceLanes
	for i := 0; i < n; i += distanceLanes {
		l := (*[distanceLanes]int)(left[i:])
		r := (*[distanceLanes]int)(right[i:])
		var d [distanceLanes]int
		for j := range d {
			d[j] = l[j] - r[j]
		}
		for j := range d {
			m := d[j] >> 63
			d[j] = (d[j] ^ m) - m
		}
		for _, v := range d {
			sum += v
		}
	}
	return sum
}

// tailDistance sums |left[i]-right[i]| over whatever laneDistance left
// behind.
func tailDistance(left, right []int) int {
	var sum int
	for i := len(left) / distanceLanes * distanceLanes; i < len(left); i++ {
		d := left[i] - right[i]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum
}

// similarity computes the sum, over each value v in left, of v times the
// number of times v appears in right. Both slices must be sorted.
func similarity(left, right []int) int {
	var total int
	// run is the current left value times the number of matching right
	// values seen so far; it is added once per copy of that left value.
	var run int
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		l, r := left[i], right[j]
		switch {
		case l < r:
			for i < len(left) && left[i] == l {
				total += run
				i++
			}
			run = 0
		case l > r:
			j++
		default:
			run += l
			j++
		}
	}
	if i < len(left) {
		l := left[i]
		for i < len(left) && left[i] == l {
			total += run
			i++
		}
	}
	return total
}

// locationLayout describes a day 1 line: two fixed-width numbers with a
// fixed-width run of spaces between them.
type locationLayout struct {
	Digits int
	Sep    int
}

func (l locationLayout) lineLen() int { return 2*l.Digits + l.Sep }

// detectLayout measures the first line of input.
func detectLayout(input string) locationLayout {
	i := strings.IndexByte(input, ' ')
	layout := locationLayout{Digits: must(i, i > 0)}
	for layout.Digits+layout.Sep < len(input) && input[layout.Digits+layout.Sep] == ' ' {
		layout.Sep++
	}
	assume(layout.Digits <= 8, "field width %d is too large", layout.Digits)
	return layout
}

func parseLocationLists(input string) (left, right []int) {
	layout := detectLayout(input)
	lineLen := layout.lineLen()
	n := len(input) / (lineLen + 1)
	rem := input[n*(lineLen+1):]
	// The final newline may be missing.
	if len(rem) == lineLen {
		n++
	} else {
		assume(len(rem) == 0, "leftover input %q", rem)
	}
	if e := trace.Debug(); e.Enabled() {
		e.Str("layout", pretty.Sprint(layout)).Int("lines", n).Msg("parsing location lists")
	}

	left = make([]int, n)
	right = make([]int, n)
	for i := range n {
		line := input[i*(lineLen+1):][:lineLen]
		if i < n-1 || len(rem) == 0 {
			assume(input[i*(lineLen+1)+lineLen] == '\n', "line %d is not %d bytes long", i+1, lineLen)
		}
		left[i] = int(parseFixedDecimal(line[:layout.Digits]))
		right[i] = int(parseFixedDecimal(line[layout.Digits+layout.Sep:]))
	}
	return left, right
}

// SWAR constants for parseFixedDecimal.
const (
	asciiZeros = 0x3030303030303030
	pairMask   = 0x000000FF000000FF
	pairMul1   = 0x000F424000000064 // 1e6<<32 | 100
	pairMul2   = 0x0000271000000001 // 1e4<<32 | 1
)

// parseFixedDecimal converts up to 8 ASCII digits to an integer without a
// per-digit loop. The digits are right-aligned in a little-endian word
// (so the most significant digit lands in the lowest byte that holds a
// digit), the '0' bias is removed from every byte at once, adjacent bytes
// are folded into two-digit values, and finally the four two-digit groups
// are scaled by 1e6, 1e4, 1e2 and 1 and summed in the upper half of a
// 64-bit product.
func parseFixedDecimal(s string) uint32 {
	assume(len(s) >= 1 && len(s) <= 8, "field width %d", len(s))
	if debugEnabled {
		for i := 0; i < len(s); i++ {
			assume(isDigit(s[i]), "non-digit %q in field %q", s[i], s)
		}
	}
	buf := [8]byte{'0', '0', '0', '0', '0', '0', '0', '0'}
	copy(buf[8-len(s):], s)
	return swarDecimal(binary.LittleEndian.Uint64(buf[:]))
}

func swarDecimal(v uint64) uint32 {
	v -= asciiZeros
	v = v*10 + v>>8
	v = ((v&pairMask)*pairMul1 + ((v>>16)&pairMask)*pairMul2) >> 32
	return uint32(v)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
