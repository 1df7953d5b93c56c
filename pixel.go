package qoi

/*

QOI - The “Quite OK Image” format for fast, lossless image compression

Original version by Dominic Szablewski - https://phoboslab.org
Go version by Makapuf makapuf2@gmail.com

-- LICENSE: The MIT License(MIT)

Copyright(c) 2021 Dominic Szablewski

Permission is hereby granted, free of charge, to any person obtaining a copy of
this software and associated documentation files(the "Software"), to deal in
the Software without restriction, including without limitation the rights to
use, copy, modify, merge, publish, distribute, sublicense, and / or sell copies
of the Software, and to permit persons to whom the Software is furnished to do
so, subject to the following conditions :
The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.
THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.

*/

// Pixel is a single 4-channel RGBA sample. It is a plain value type so the
// recently-seen table can hold 64 of them inline, with no pointer chasing
// on the hot path.
type Pixel struct {
	R, G, B, A uint8
}

// initialPixel is the encoder and decoder's starting pixel register: opaque
// black. Both state machines must start here or they diverge immediately.
var initialPixel = Pixel{R: 0, G: 0, B: 0, A: 255}

// Equals reports whether two pixels match in all four channels.
func (p Pixel) Equals(o Pixel) bool {
	return p.R == o.R && p.G == o.G && p.B == o.B && p.A == o.A
}

// Hash computes the 6-bit recently-seen-table index. The multiply-add runs
// in int before the mod-64 reduction.
func (p Pixel) Hash() uint8 {
	h := int(p.R)*3 + int(p.G)*5 + int(p.B)*7 + int(p.A)*11
	return uint8(h % 64)
}

// seenTable is the 64-slot recently-seen-pixel table shared (in parallel,
// not by reference) between encoder and decoder. Slots start at
// (0,0,0,0) -- distinct from initialPixel -- so the very first pixel of an
// all-black opaque image can never land an accidental INDEX hit against an
// uninitialised slot.
type seenTable [64]Pixel

func (t *seenTable) set(p Pixel) {
	t[p.Hash()] = p
}
