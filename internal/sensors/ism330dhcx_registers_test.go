package sensors

import (
	"strconv"
	"testing"

	"github.com/Hidan0/ism330dhcx-pid/ism330dhcx"
)

func TestRegisterMapsWellFormed(t *testing.T) {
	banks := map[string][]RegisterInfo{
		"user":       getUserRegisterMap(),
		"embedded":   getEmbeddedRegisterMap(),
		"sensor_hub": getSensorHubRegisterMap(),
	}

	for bank, regs := range banks {
		if len(regs) == 0 {
			t.Errorf("%s: empty register map", bank)
			continue
		}
		seen := make(map[uint64]string)
		for _, r := range regs {
			addr, err := strconv.ParseUint(r.Address, 0, 8)
			if err != nil {
				t.Errorf("%s/%s: bad address %q: %v", bank, r.Name, r.Address, err)
				continue
			}
			if prev, dup := seen[addr]; dup {
				t.Errorf("%s: address %s used by both %s and %s", bank, r.Address, prev, r.Name)
			}
			seen[addr] = r.Name
			if r.Name == "" || r.Access == "" {
				t.Errorf("%s/0x%02X: missing name or access", bank, addr)
			}
		}
	}
}

func TestUserMapHasDeviceID(t *testing.T) {
	for _, r := range getUserRegisterMap() {
		if r.Name == "WHO_AM_I" {
			if r.Address != "0x0F" || r.Access != "R" || r.Default != "0x6B" {
				t.Errorf("WHO_AM_I entry = %+v", r)
			}
			return
		}
	}
	t.Error("WHO_AM_I missing from user register map")
}

func TestBankFromName(t *testing.T) {
	cases := []struct {
		name string
		want uint8
	}{
		{"", ism330dhcx.BankUser},
		{"user", ism330dhcx.BankUser},
		{"embedded", ism330dhcx.BankEmbedded},
		{"sensor_hub", ism330dhcx.BankSensorHub},
	}
	for _, tc := range cases {
		got, err := bankFromName(tc.name)
		if err != nil {
			t.Errorf("bankFromName(%q): %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("bankFromName(%q) = %d, want %d", tc.name, got, tc.want)
		}
	}

	if _, err := bankFromName("ois"); err == nil {
		t.Error("expected error for unknown bank")
	}
}

func TestGyroFullScaleFromDPS(t *testing.T) {
	cases := []struct {
		dps  int
		want ism330dhcx.GyroFS
	}{
		{125, ism330dhcx.GyroFS125DPS},
		{250, ism330dhcx.GyroFS250DPS},
		{500, ism330dhcx.GyroFS500DPS},
		{1000, ism330dhcx.GyroFS1000DPS},
		{2000, ism330dhcx.GyroFS2000DPS},
		{4000, ism330dhcx.GyroFS4000DPS},
	}
	for _, tc := range cases {
		got, err := gyroFullScaleFromDPS(tc.dps)
		if err != nil {
			t.Errorf("gyroFullScaleFromDPS(%d): %v", tc.dps, err)
			continue
		}
		if got != tc.want {
			t.Errorf("gyroFullScaleFromDPS(%d) = %d, want %d", tc.dps, got, tc.want)
		}
	}

	if _, err := gyroFullScaleFromDPS(300); err == nil {
		t.Error("expected error for unsupported scale")
	}
}
