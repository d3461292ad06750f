package bigdecimal

import (
	"math/big"
	"testing"
)

func TestPadInt(t *testing.T) {
	tests := []struct {
		x, y, wantX, wantY string
	}{
		{"1", "1", "1", "1"},
		{"1", "123", "001", "123"},
		{"123", "1", "123", "001"},
		{"", "12", "00", "12"},
		{"0", "0", "0", "0"},
	}
	for _, tt := range tests {
		gotX, gotY := padInt(tt.x, tt.y)
		if gotX != tt.wantX || gotY != tt.wantY {
			t.Errorf("padInt(%q, %q) = (%q, %q), want (%q, %q)", tt.x, tt.y, gotX, gotY, tt.wantX, tt.wantY)
		}
	}
}

func TestPadFrac(t *testing.T) {
	tests := []struct {
		x, y, wantX, wantY string
	}{
		{"1", "1", "1", "1"},
		{"1", "123", "100", "123"},
		{"123", "1", "123", "100"},
		{"", "12", "00", "12"},
		{"", "", "", ""},
	}
	for _, tt := range tests {
		gotX, gotY := padFrac(tt.x, tt.y)
		if gotX != tt.wantX || gotY != tt.wantY {
			t.Errorf("padFrac(%q, %q) = (%q, %q), want (%q, %q)", tt.x, tt.y, gotX, gotY, tt.wantX, tt.wantY)
		}
	}
}

func TestTrimInt(t *testing.T) {
	tests := []struct {
		x, want string
	}{
		{"", "0"},
		{"0", "0"},
		{"000", "0"},
		{"007", "7"},
		{"100", "100"},
	}
	for _, tt := range tests {
		got := trimInt(tt.x)
		if got != tt.want {
			t.Errorf("trimInt(%q) = %q, want %q", tt.x, got, tt.want)
		}
	}
}

func TestTrimFrac(t *testing.T) {
	tests := []struct {
		x, want string
	}{
		{"", ""},
		{"000", ""},
		{"1200", "12"},
		{"0012", "0012"},
	}
	for _, tt := range tests {
		got := trimFrac(tt.x)
		if got != tt.want {
			t.Errorf("trimFrac(%q) = %q, want %q", tt.x, got, tt.want)
		}
	}
}

func TestCmpDigits(t *testing.T) {
	tests := []struct {
		x, y string
		want int
	}{
		{"0", "0", 0},
		{"1", "2", -1},
		{"2", "1", 1},
		{"10", "9", 1},
		{"009", "9", 0},
		{"99", "100", -1},
	}
	for _, tt := range tests {
		got := cmpDigits(tt.x, tt.y)
		if got != tt.want {
			t.Errorf("cmpDigits(%q, %q) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestAddDigits(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x, y, want string
		}{
			{"0", "0", "0"},
			{"1", "2", "3"},
			{"5", "5", "10"},
			{"99", "01", "100"},
			{"123", "877", "1000"},
			{"0045", "0055", "0100"},
		}
		for _, tt := range tests {
			got := addDigits(tt.x, tt.y)
			if got != tt.want {
				t.Errorf("addDigits(%q, %q) = %q, want %q", tt.x, tt.y, got, tt.want)
			}
		}
	})

	t.Run("panic", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("addDigits(\"1\", \"12\") did not panic")
			}
		}()
		addDigits("1", "12")
	})
}

func TestSubDigits(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x, y, want string
		}{
			{"0", "0", "0"},
			{"3", "2", "1"},
			{"10", "01", "09"},
			{"100", "001", "099"},
			{"1000", "0999", "0001"},
			{"5432", "1234", "4198"},
		}
		for _, tt := range tests {
			got := subDigits(tt.x, tt.y)
			if got != tt.want {
				t.Errorf("subDigits(%q, %q) = %q, want %q", tt.x, tt.y, got, tt.want)
			}
		}
	})

	t.Run("panic", func(t *testing.T) {
		tests := []struct {
			x, y string
		}{
			{"1", "12"},
			{"01", "10"},
		}
		for _, tt := range tests {
			func() {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("subDigits(%q, %q) did not panic", tt.x, tt.y)
					}
				}()
				subDigits(tt.x, tt.y)
			}()
		}
	})
}

func TestMulDigits(t *testing.T) {
	tests := []struct {
		x, y, want string
	}{
		{"0", "0", "0"},
		{"0", "123", "0"},
		{"123", "000", "0"},
		{"1", "123", "123"},
		{"12", "12", "144"},
		{"1234", "56", "69104"},
		{"0012", "012", "144"},
		{"105", "105", "11025"},
		{"123456789", "987654321", "121932631112635269"},
		{"12345678901234567890", "98765432109876543210", "1219326311370217952237463801111263526900"},
	}
	for _, tt := range tests {
		got := mulDigits(tt.x, tt.y)
		if got != tt.want {
			t.Errorf("mulDigits(%q, %q) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestQuoDigits(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x, y          string
			fracLen       int
			wantInt, want string
		}{
			{"0", "7", 3, "0", "000"},
			{"1", "3", 4, "0", "3333"},
			{"10", "4", 2, "2", "50"},
			{"12345", "300", 0, "41", ""},
			{"1", "7", 10, "0", "1428571428"},
			{"100", "25", 0, "4", ""},
			{"99", "100", 2, "0", "99"},
			{"123456789012345678901234567890", "3", 0, "41152263004115226300411522630", ""},
			{"5", "2", -1, "2", ""},
		}
		for _, tt := range tests {
			gotInt, got := quoDigits(tt.x, tt.y, tt.fracLen)
			if gotInt != tt.wantInt || got != tt.want {
				t.Errorf("quoDigits(%q, %q, %v) = (%q, %q), want (%q, %q)", tt.x, tt.y, tt.fracLen, gotInt, got, tt.wantInt, tt.want)
			}
		}
	})

	t.Run("panic", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("quoDigits(\"1\", \"0\", 0) did not panic")
			}
		}()
		quoDigits("1", "000", 0)
	})
}

func FuzzMulDigits(f *testing.F) {
	f.Add(uint64(0), uint64(0))
	f.Add(uint64(1), uint64(1))
	f.Add(uint64(12345), uint64(678))
	f.Add(uint64(18446744073709551615), uint64(18446744073709551615))

	f.Fuzz(
		func(t *testing.T, x, y uint64) {
			bx := new(big.Int).SetUint64(x)
			by := new(big.Int).SetUint64(y)
			want := new(big.Int).Mul(bx, by).String()
			got := mulDigits(bx.String(), by.String())
			if got != want {
				t.Errorf("mulDigits(%v, %v) = %q, want %q", x, y, got, want)
			}
		},
	)
}

func FuzzQuoDigits(f *testing.F) {
	f.Add(uint64(1), uint64(3))
	f.Add(uint64(10), uint64(4))
	f.Add(uint64(18446744073709551615), uint64(7))

	f.Fuzz(
		func(t *testing.T, x, y uint64) {
			if y == 0 {
				t.Skip()
				return
			}
			bx := new(big.Int).SetUint64(x)
			by := new(big.Int).SetUint64(y)
			want := new(big.Int).Quo(bx, by).String()
			got, frac := quoDigits(bx.String(), by.String(), 0)
			if got != want || frac != "" {
				t.Errorf("quoDigits(%v, %v, 0) = (%q, %q), want (%q, \"\")", x, y, got, frac, want)
			}
		},
	)
}
