package ism330dhcx

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAccelToMg(t *testing.T) {
	cases := []struct {
		lsb  int16
		fs   AccelFS
		want float64
	}{
		{1000, AccelFS2G, 61},
		{1000, AccelFS4G, 122},
		{1000, AccelFS8G, 244},
		{1000, AccelFS16G, 488},
		{-1000, AccelFS2G, -61},
		{0, AccelFS16G, 0},
	}
	for _, c := range cases {
		if got := AccelToMg(c.lsb, c.fs); !almostEqual(got, c.want) {
			t.Errorf("AccelToMg(%d, %d) = %g, want %g", c.lsb, c.fs, got, c.want)
		}
	}
}

func TestGyroToMdps(t *testing.T) {
	cases := []struct {
		lsb  int16
		fs   GyroFS
		want float64
	}{
		{1000, GyroFS125DPS, 4375},
		{1000, GyroFS250DPS, 8750},
		{1000, GyroFS500DPS, 17500},
		{1000, GyroFS1000DPS, 35000},
		{1000, GyroFS2000DPS, 70000},
		{1000, GyroFS4000DPS, 140000},
		{-16, GyroFS250DPS, -140},
	}
	for _, c := range cases {
		if got := GyroToMdps(c.lsb, c.fs); !almostEqual(got, c.want) {
			t.Errorf("GyroToMdps(%d, %d) = %g, want %g", c.lsb, c.fs, got, c.want)
		}
	}
}

func TestFromLSBToCelsius(t *testing.T) {
	if got := FromLSBToCelsius(0); !almostEqual(got, 25) {
		t.Errorf("FromLSBToCelsius(0) = %g, want 25", got)
	}
	if got := FromLSBToCelsius(256); !almostEqual(got, 26) {
		t.Errorf("FromLSBToCelsius(256) = %g, want 26", got)
	}
	if got := FromLSBToCelsius(-512); !almostEqual(got, 23) {
		t.Errorf("FromLSBToCelsius(-512) = %g, want 23", got)
	}
}

func TestFromLSBToNanoseconds(t *testing.T) {
	if got := FromLSBToNanoseconds(1); got != 25000 {
		t.Errorf("FromLSBToNanoseconds(1) = %d, want 25000", got)
	}
	// One day of counts must not overflow.
	if got := FromLSBToNanoseconds(3456000000); got != 86400000000000 {
		t.Errorf("FromLSBToNanoseconds(3456000000) = %d, want 86400000000000", got)
	}
}
