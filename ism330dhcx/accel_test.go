package ism330dhcx

import "testing"

func accelODRBits(m *mockTransport) AccelODR {
	return AccelODR(m.user[regCtrl1XL] >> 4)
}

func TestSetAccelDataRatePlain(t *testing.T) {
	d, m := testDev()
	if err := d.SetAccelDataRate(AccelODR52Hz); err != nil {
		t.Fatalf("SetAccelDataRate failed: %v", err)
	}
	if got := accelODRBits(m); got != AccelODR52Hz {
		t.Fatalf("ODR_XL = %v, want %v", got, AccelODR52Hz)
	}
}

func TestSetAccelDataRateClampedByFSM(t *testing.T) {
	d, m := testDev()
	if err := d.SetFSMDataRate(Embedded104Hz); err != nil {
		t.Fatalf("SetFSMDataRate failed: %v", err)
	}
	if err := d.SetFSMEnable(0x0001); err != nil {
		t.Fatalf("SetFSMEnable failed: %v", err)
	}
	// 26 Hz is below the FSM demand; the write must be raised to 104 Hz.
	if err := d.SetAccelDataRate(AccelODR26Hz); err != nil {
		t.Fatalf("SetAccelDataRate failed: %v", err)
	}
	if got := accelODRBits(m); got != AccelODR104Hz {
		t.Fatalf("ODR_XL = %v, want clamp to %v", got, AccelODR104Hz)
	}
}

func TestSetAccelDataRateAboveDemandUntouched(t *testing.T) {
	d, m := testDev()
	if err := d.SetFSMDataRate(Embedded104Hz); err != nil {
		t.Fatalf("SetFSMDataRate failed: %v", err)
	}
	if err := d.SetFSMEnable(0x8000); err != nil {
		t.Fatalf("SetFSMEnable failed: %v", err)
	}
	if err := d.SetAccelDataRate(AccelODR833Hz); err != nil {
		t.Fatalf("SetAccelDataRate failed: %v", err)
	}
	if got := accelODRBits(m); got != AccelODR833Hz {
		t.Fatalf("ODR_XL = %v, want %v untouched", got, AccelODR833Hz)
	}
}

func TestSetAccelDataRateHighestDemandWins(t *testing.T) {
	d, m := testDev()
	// FSM asks for 26 Hz, MLC for 104 Hz: the MLC demand must win.
	if err := d.SetFSMDataRate(Embedded26Hz); err != nil {
		t.Fatalf("SetFSMDataRate failed: %v", err)
	}
	if err := d.SetFSMEnable(0x0004); err != nil {
		t.Fatalf("SetFSMEnable failed: %v", err)
	}
	if err := d.SetMLCDataRate(Embedded104Hz); err != nil {
		t.Fatalf("SetMLCDataRate failed: %v", err)
	}
	if err := d.SetMLCEnable(true); err != nil {
		t.Fatalf("SetMLCEnable failed: %v", err)
	}
	if err := d.SetAccelDataRate(AccelODR12Hz5); err != nil {
		t.Fatalf("SetAccelDataRate failed: %v", err)
	}
	if got := accelODRBits(m); got != AccelODR104Hz {
		t.Fatalf("ODR_XL = %v, want clamp to %v", got, AccelODR104Hz)
	}
}

func TestSetAccelDataRateLowPowerKeptAtMinimumDemand(t *testing.T) {
	d, m := testDev()
	// With an embedded function active the chain runs at 12.5 Hz even in
	// low-power mode, so the 1.6 Hz code satisfies a 12.5 Hz demand and
	// must be written unchanged.
	if err := d.SetFSMDataRate(Embedded12Hz5); err != nil {
		t.Fatalf("SetFSMDataRate failed: %v", err)
	}
	if err := d.SetFSMEnable(0x0100); err != nil {
		t.Fatalf("SetFSMEnable failed: %v", err)
	}
	if err := d.SetAccelDataRate(AccelODR1Hz6); err != nil {
		t.Fatalf("SetAccelDataRate failed: %v", err)
	}
	if got := accelODRBits(m); got != AccelODR1Hz6 {
		t.Fatalf("ODR_XL = %v, want %v kept", got, AccelODR1Hz6)
	}
}

func TestSetAccelDataRateLowPowerClampedAboveMinimum(t *testing.T) {
	d, m := testDev()
	// A demand above 12.5 Hz still forces the low-power code up.
	if err := d.SetFSMDataRate(Embedded26Hz); err != nil {
		t.Fatalf("SetFSMDataRate failed: %v", err)
	}
	if err := d.SetFSMEnable(0x0100); err != nil {
		t.Fatalf("SetFSMEnable failed: %v", err)
	}
	if err := d.SetAccelDataRate(AccelODR1Hz6); err != nil {
		t.Fatalf("SetAccelDataRate failed: %v", err)
	}
	if got := accelODRBits(m); got != AccelODR26Hz {
		t.Fatalf("ODR_XL = %v, want clamp to %v", got, AccelODR26Hz)
	}
}

func TestSetAccelDataRateOffClampedWhenMLCActive(t *testing.T) {
	d, m := testDev()
	if err := d.SetMLCDataRate(Embedded26Hz); err != nil {
		t.Fatalf("SetMLCDataRate failed: %v", err)
	}
	if err := d.SetMLCEnable(true); err != nil {
		t.Fatalf("SetMLCEnable failed: %v", err)
	}
	if err := d.SetAccelDataRate(AccelODROff); err != nil {
		t.Fatalf("SetAccelDataRate failed: %v", err)
	}
	if got := accelODRBits(m); got != AccelODR26Hz {
		t.Fatalf("ODR_XL = %v, want clamp to %v", got, AccelODR26Hz)
	}
}

func TestAccelDataRateLowPowerCode(t *testing.T) {
	d, m := testDev()
	m.user[regCtrl1XL] = uint8(AccelODR1Hz6) << 4

	// High-performance mode enabled (CTRL6_C bit clear): 0xB means 12.5 Hz.
	odr, err := d.AccelDataRate()
	if err != nil {
		t.Fatalf("AccelDataRate failed: %v", err)
	}
	if odr != AccelODR12Hz5 {
		t.Fatalf("AccelDataRate = %v with HM on, want %v", odr, AccelODR12Hz5)
	}

	if err := d.SetAccelHighPerformance(false); err != nil {
		t.Fatalf("SetAccelHighPerformance failed: %v", err)
	}
	odr, err = d.AccelDataRate()
	if err != nil {
		t.Fatalf("AccelDataRate failed: %v", err)
	}
	if odr != AccelODR1Hz6 {
		t.Fatalf("AccelDataRate = %v with HM off, want %v", odr, AccelODR1Hz6)
	}
}

func TestAccelFullScaleRoundTrip(t *testing.T) {
	d, _ := testDev()
	for _, fs := range []AccelFS{AccelFS2G, AccelFS4G, AccelFS8G, AccelFS16G} {
		if err := d.SetAccelFullScale(fs); err != nil {
			t.Fatalf("SetAccelFullScale(%d) failed: %v", fs, err)
		}
		got, err := d.AccelFullScale()
		if err != nil {
			t.Fatalf("AccelFullScale failed: %v", err)
		}
		if got != fs {
			t.Fatalf("AccelFullScale = %d, want %d", got, fs)
		}
	}
}

func TestSetAccelOffsets(t *testing.T) {
	d, m := testDev()
	if err := d.SetAccelOffsets(-5, 10, 127, OffsetWeight16mg); err != nil {
		t.Fatalf("SetAccelOffsets failed: %v", err)
	}
	if m.user[regXOfsUsr] != 0xFB { // -5 two's complement
		t.Errorf("X_OFS_USR = 0x%02X, want 0xFB", m.user[regXOfsUsr])
	}
	if m.user[regYOfsUsr] != 10 {
		t.Errorf("Y_OFS_USR = 0x%02X, want 0x0A", m.user[regYOfsUsr])
	}
	if m.user[regZOfsUsr] != 127 {
		t.Errorf("Z_OFS_USR = 0x%02X, want 0x7F", m.user[regZOfsUsr])
	}
	if m.user[regCtrl6C]&ctrl6UsrOffW == 0 {
		t.Error("USR_OFF_W not set for 16 mg weight")
	}
}
