package ism330dhcx

import (
	"reflect"
	"testing"
)

func TestSetPinInt1RouteBits(t *testing.T) {
	d, m := testDev()
	r := PinIntRoute{
		DataReadyAccel: true,
		FIFOThreshold:  true,
		WakeUp:         true,
		StepDetected:   true,
	}
	r.FSM[0] = true
	r.FSM[15] = true
	if err := d.SetPinInt1Route(r); err != nil {
		t.Fatalf("SetPinInt1Route failed: %v", err)
	}
	if want := uint8(int1DrdyXL | int1FIFOTh); m.user[regInt1Ctrl] != want {
		t.Errorf("INT1_CTRL = 0x%02X, want 0x%02X", m.user[regInt1Ctrl], want)
	}
	// Routing an embedded source raises INT1_EMB_FUNC alongside the event bit.
	if want := uint8(mdWakeUp | mdEmbFunc); m.user[regMD1Cfg] != want {
		t.Errorf("MD1_CFG = 0x%02X, want 0x%02X", m.user[regMD1Cfg], want)
	}
	if m.emb[embFuncInt1] != embIntStep {
		t.Errorf("EMB_FUNC_INT1 = 0x%02X, want 0x%02X", m.emb[embFuncInt1], embIntStep)
	}
	if m.emb[embFSMInt1A] != 0x01 || m.emb[embFSMInt1B] != 0x80 {
		t.Errorf("FSM_INT1 = %02X/%02X, want 01/80", m.emb[embFSMInt1A], m.emb[embFSMInt1B])
	}
	if m.user[regTapCfg2]&tap2IntEnable == 0 {
		t.Error("INTERRUPTS_ENABLE not set for event route")
	}
	// The bank must end up back on user registers.
	if m.user[regFuncCfgAccess] != 0 {
		t.Errorf("FUNC_CFG_ACCESS = 0x%02X after routing", m.user[regFuncCfgAccess])
	}
}

func TestPinInt1RouteRoundTrip(t *testing.T) {
	d, _ := testDev()
	want := PinIntRoute{
		DataReadyGyro: true,
		CounterBDR:    true,
		FreeFall:      true,
		Tilt:          true,
	}
	want.MLC[3] = true
	if err := d.SetPinInt1Route(want); err != nil {
		t.Fatalf("SetPinInt1Route failed: %v", err)
	}
	got, err := d.PinInt1Route()
	if err != nil {
		t.Fatalf("PinInt1Route failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("route round trip:\n got %+v\nwant %+v", got, want)
	}
}

func TestInterruptsEnableClearedOnlyWhenBothPinsIdle(t *testing.T) {
	d, m := testDev()
	if err := d.SetPinInt1Route(PinIntRoute{WakeUp: true}); err != nil {
		t.Fatalf("SetPinInt1Route failed: %v", err)
	}
	if err := d.SetPinInt2Route(PinIntRoute{FreeFall: true}); err != nil {
		t.Fatalf("SetPinInt2Route failed: %v", err)
	}
	if m.user[regTapCfg2]&tap2IntEnable == 0 {
		t.Fatal("INTERRUPTS_ENABLE not set")
	}

	// INT1 still routes wake-up, so clearing INT2 must keep the bit.
	if err := d.SetPinInt2Route(PinIntRoute{}); err != nil {
		t.Fatalf("SetPinInt2Route failed: %v", err)
	}
	if m.user[regTapCfg2]&tap2IntEnable == 0 {
		t.Fatal("INTERRUPTS_ENABLE cleared while INT1 still routes an event")
	}

	if err := d.SetPinInt1Route(PinIntRoute{DataReadyAccel: true}); err != nil {
		t.Fatalf("SetPinInt1Route failed: %v", err)
	}
	if m.user[regTapCfg2]&tap2IntEnable != 0 {
		t.Fatal("INTERRUPTS_ENABLE still set with no event routed")
	}
}

func TestSetPinInt2RouteTempDataReady(t *testing.T) {
	d, m := testDev()
	if err := d.SetPinInt2Route(PinIntRoute{DataReadyTemp: true}); err != nil {
		t.Fatalf("SetPinInt2Route failed: %v", err)
	}
	if m.user[regInt2Ctrl] != int2DrdyTemp {
		t.Fatalf("INT2_CTRL = 0x%02X, want 0x%02X", m.user[regInt2Ctrl], int2DrdyTemp)
	}
}

func TestReadAllSources(t *testing.T) {
	d, m := testDev()
	m.user[regAllIntSrc] = allIntFF
	m.user[regWakeUpSrc] = wuSrcWU | wuSrcX
	m.user[regTapSrc] = tapSrcSingle | tapSrcZ
	m.user[regD6DSrc] = d6dIA | d6dZH

	src, err := d.ReadAllSources()
	if err != nil {
		t.Fatalf("ReadAllSources failed: %v", err)
	}
	if !src.FreeFall || !src.WakeUp || !src.WakeUpX || !src.SingleTap ||
		!src.TapZ || !src.SixD || !src.SixDZH {
		t.Errorf("sources not decoded: %+v", src)
	}
	if src.DoubleTap || src.WakeUpY || src.SleepState {
		t.Errorf("spurious sources decoded: %+v", src)
	}
}

func TestInterruptPinConfig(t *testing.T) {
	d, m := testDev()
	if err := d.SetInterruptActiveLow(true); err != nil {
		t.Fatalf("SetInterruptActiveLow failed: %v", err)
	}
	if err := d.SetInterruptOpenDrain(true); err != nil {
		t.Fatalf("SetInterruptOpenDrain failed: %v", err)
	}
	if m.user[regCtrl3C]&(ctrl3HLActive|ctrl3PPOD) != ctrl3HLActive|ctrl3PPOD {
		t.Fatalf("CTRL3_C = 0x%02X, want active-low and open-drain set", m.user[regCtrl3C])
	}
	// The pad config must not disturb BDU or IF_INC set at init.
	if m.user[regCtrl3C]&ctrl3BDU == 0 || m.user[regCtrl3C]&ctrl3IFInc == 0 {
		t.Fatalf("CTRL3_C = 0x%02X, init bits lost", m.user[regCtrl3C])
	}
}
