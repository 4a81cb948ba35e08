package ism330dhcx

import (
	"strings"
	"testing"
)

func TestNewVerifiesIdentity(t *testing.T) {
	m := newMockTransport()
	d, err := New(m, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	id, err := d.DeviceID()
	if err != nil {
		t.Fatalf("DeviceID failed: %v", err)
	}
	if id != ID {
		t.Fatalf("DeviceID = 0x%02X, want 0x%02X", id, ID)
	}
	// DefaultOpts must leave auto-increment and BDU enabled.
	if m.user[regCtrl3C]&ctrl3IFInc == 0 {
		t.Error("IF_INC not set after New")
	}
	if m.user[regCtrl3C]&ctrl3BDU == 0 {
		t.Error("BDU not set after New")
	}
}

func TestNewRejectsWrongID(t *testing.T) {
	m := newMockTransport()
	m.user[regWhoAmI] = 0x6A
	if _, err := New(m, nil); err == nil {
		t.Fatal("New accepted a device with wrong WHO_AM_I")
	} else if !strings.Contains(err.Error(), "whoami mismatch") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateRegPreservesOtherBits(t *testing.T) {
	d, m := testDev()
	// Set an ODR first, then change full scale; the ODR bits must survive.
	if err := d.SetAccelDataRate(AccelODR416Hz); err != nil {
		t.Fatalf("SetAccelDataRate failed: %v", err)
	}
	if err := d.SetAccelFullScale(AccelFS8G); err != nil {
		t.Fatalf("SetAccelFullScale failed: %v", err)
	}
	want := uint8(AccelODR416Hz)<<4 | uint8(AccelFS8G)<<2
	if m.user[regCtrl1XL] != want {
		t.Fatalf("CTRL1_XL = 0x%02X, want 0x%02X", m.user[regCtrl1XL], want)
	}
}

func TestBankRestoredAfterEmbeddedAccess(t *testing.T) {
	d, m := testDev()
	if _, err := d.StepCounter(); err != nil {
		t.Fatalf("StepCounter failed: %v", err)
	}
	if m.user[regFuncCfgAccess] != 0 {
		t.Fatalf("FUNC_CFG_ACCESS = 0x%02X after embedded access, want 0x00",
			m.user[regFuncCfgAccess])
	}
}

func TestBankRestoredOnError(t *testing.T) {
	d, m := testDev()
	// Fail the read inside the embedded bank; the final bank restore must
	// still be attempted and the original error surfaced.
	m.ops = 0
	m.failOn = 2 // 1: bank switch write, 2: step counter read
	_, err := d.StepCounter()
	if err == nil {
		t.Fatal("expected transport error")
	}
	if m.user[regFuncCfgAccess] != 0 {
		t.Fatalf("FUNC_CFG_ACCESS = 0x%02X after failed access, want 0x00",
			m.user[regFuncCfgAccess])
	}
}

func TestRawRegisterAccess(t *testing.T) {
	d, m := testDev()
	if err := d.WriteRegisterRaw(BankUser, regWakeUpThs, 0x2A); err != nil {
		t.Fatalf("WriteRegisterRaw failed: %v", err)
	}
	if m.user[regWakeUpThs] != 0x2A {
		t.Fatalf("user register not written, got 0x%02X", m.user[regWakeUpThs])
	}
	if err := d.WriteRegisterRaw(BankEmbedded, embFSMEnableA, 0x03); err != nil {
		t.Fatalf("WriteRegisterRaw embedded failed: %v", err)
	}
	v, err := d.ReadRegisterRaw(BankEmbedded, embFSMEnableA)
	if err != nil {
		t.Fatalf("ReadRegisterRaw failed: %v", err)
	}
	if v != 0x03 {
		t.Fatalf("embedded register = 0x%02X, want 0x03", v)
	}
	if m.user[regFuncCfgAccess] != 0 {
		t.Fatal("bank not restored after raw embedded access")
	}
}
