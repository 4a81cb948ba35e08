package ism330dhcx

import (
	"fmt"
	"testing"
)

func TestSetFSMEnableFollowsBlockEnable(t *testing.T) {
	d, m := testDev()
	if err := d.SetFSMEnable(0x8101); err != nil {
		t.Fatalf("SetFSMEnable failed: %v", err)
	}
	if m.emb[embFSMEnableA] != 0x01 {
		t.Errorf("FSM_ENABLE_A = 0x%02X, want 0x01", m.emb[embFSMEnableA])
	}
	if m.emb[embFSMEnableB] != 0x81 {
		t.Errorf("FSM_ENABLE_B = 0x%02X, want 0x81", m.emb[embFSMEnableB])
	}
	if m.emb[embFuncEnB]&embEnBFSM == 0 {
		t.Error("FSM_EN not set with programs enabled")
	}

	mask, err := d.FSMEnable()
	if err != nil {
		t.Fatalf("FSMEnable failed: %v", err)
	}
	if mask != 0x8101 {
		t.Fatalf("FSMEnable = 0x%04X, want 0x8101", mask)
	}

	if err := d.SetFSMEnable(0); err != nil {
		t.Fatalf("SetFSMEnable failed: %v", err)
	}
	if m.emb[embFuncEnB]&embEnBFSM != 0 {
		t.Error("FSM_EN still set with no programs enabled")
	}
}

func TestFSMLongCounterRoundTrip(t *testing.T) {
	d, _ := testDev()
	if err := d.SetFSMLongCounter(0xBEEF); err != nil {
		t.Fatalf("SetFSMLongCounter failed: %v", err)
	}
	cnt, err := d.FSMLongCounter()
	if err != nil {
		t.Fatalf("FSMLongCounter failed: %v", err)
	}
	if cnt != 0xBEEF {
		t.Fatalf("FSMLongCounter = 0x%04X, want 0xBEEF", cnt)
	}
}

func TestSetFSMNumberOfPrograms(t *testing.T) {
	d, m := testDev()
	if err := d.SetFSMNumberOfPrograms(17); err == nil {
		t.Fatal("program count 17 accepted, want range error")
	}
	if err := d.SetFSMNumberOfPrograms(4); err != nil {
		t.Fatalf("SetFSMNumberOfPrograms failed: %v", err)
	}
	if m.pages[pgFSMPrograms] != 4 {
		t.Fatalf("paged program count = %d, want 4", m.pages[pgFSMPrograms])
	}
	n, err := d.FSMNumberOfPrograms()
	if err != nil {
		t.Fatalf("FSMNumberOfPrograms failed: %v", err)
	}
	if n != 4 {
		t.Fatalf("FSMNumberOfPrograms = %d, want 4", n)
	}
}

func TestSetFSMStartAddress(t *testing.T) {
	d, m := testDev()
	if err := d.SetFSMStartAddress(0x033C); err != nil {
		t.Fatalf("SetFSMStartAddress failed: %v", err)
	}
	if m.pages[pgFSMStartAddL] != 0x3C || m.pages[pgFSMStartAddH] != 0x03 {
		t.Fatalf("start address bytes = %02X/%02X, want 3C/03",
			m.pages[pgFSMStartAddL], m.pages[pgFSMStartAddH])
	}
}

func TestMLCEnableRoundTrip(t *testing.T) {
	d, m := testDev()
	if err := d.SetMLCEnable(true); err != nil {
		t.Fatalf("SetMLCEnable failed: %v", err)
	}
	on, err := d.MLCEnabled()
	if err != nil {
		t.Fatalf("MLCEnabled failed: %v", err)
	}
	if !on {
		t.Fatal("MLCEnabled = false after enable")
	}
	// The MLC enable must not disturb the FSM bit in the same register.
	if m.emb[embFuncEnB]&embEnBFSM != 0 {
		t.Error("FSM_EN set by MLC enable")
	}
}

func TestMLCEnablePulsesRunningBlock(t *testing.T) {
	d, m := testDev()
	if err := d.SetMLCEnable(true); err != nil {
		t.Fatalf("SetMLCEnable failed: %v", err)
	}
	// Re-enabling a running block must drop MLC_EN before raising it
	// again so a freshly loaded decision tree takes effect.
	m.trace = nil
	if err := d.SetMLCEnable(true); err != nil {
		t.Fatalf("SetMLCEnable failed: %v", err)
	}
	off := fmt.Sprintf("emb/%02X=%02X", embFuncEnB, 0)
	on := fmt.Sprintf("emb/%02X=%02X", embFuncEnB, embEnBMLC)
	var offAt, onAt int
	for i, w := range m.trace {
		switch w {
		case off:
			offAt = i + 1
		case on:
			onAt = i + 1
		}
	}
	if offAt == 0 || onAt == 0 || offAt > onAt {
		t.Fatalf("enable writes = %v, want %q before %q", m.trace, off, on)
	}
	if m.emb[embFuncEnB]&embEnBMLC == 0 {
		t.Fatal("MLC_EN clear after pulse")
	}
}

func TestStepCounter(t *testing.T) {
	d, m := testDev()
	if err := d.SetPedometer(true, true); err != nil {
		t.Fatalf("SetPedometer failed: %v", err)
	}
	if m.emb[embFuncEnA]&embEnAPedo == 0 {
		t.Fatal("PEDO_EN not set")
	}
	if m.pages[pgPedoCmdReg]&pedoCmdFPRejection == 0 {
		t.Fatal("FP rejection not set in PEDO_CMD_REG")
	}

	m.emb[embStepCounterL] = 0x2C
	m.emb[embStepCounterL+1] = 0x01
	steps, err := d.StepCounter()
	if err != nil {
		t.Fatalf("StepCounter failed: %v", err)
	}
	if steps != 300 {
		t.Fatalf("StepCounter = %d, want 300", steps)
	}

	if err := d.ResetStepCounter(); err != nil {
		t.Fatalf("ResetStepCounter failed: %v", err)
	}
	if m.emb[embFuncSrc]&embSrcPedoRstStep == 0 {
		t.Fatal("PEDO_RST_STEP not set")
	}
}

func TestEmbeddedStatusMirrors(t *testing.T) {
	d, m := testDev()
	m.emb[embFuncStatus] = embStatusStep | embStatusFSMLC
	st, err := d.EmbeddedStatus()
	if err != nil {
		t.Fatalf("EmbeddedStatus failed: %v", err)
	}
	if !st.StepDetected || !st.FSMLongCounter {
		t.Errorf("embedded status = %+v, want step and long counter", st)
	}

	m.user[regEmbFuncStatusM] = embStatusTilt
	st, err = d.EmbeddedStatusMainPage()
	if err != nil {
		t.Fatalf("EmbeddedStatusMainPage failed: %v", err)
	}
	if !st.Tilt || st.StepDetected {
		t.Errorf("main-page status = %+v, want tilt only", st)
	}

	m.user[regFSMStatusAM] = 0x02
	m.user[regFSMStatusBM] = 0x40
	fsm, err := d.FSMStatus()
	if err != nil {
		t.Fatalf("FSMStatus failed: %v", err)
	}
	if fsm != 0x4002 {
		t.Fatalf("FSMStatus = 0x%04X, want 0x4002", fsm)
	}
}

func TestFSMOutputs(t *testing.T) {
	d, m := testDev()
	for i := 0; i < 16; i++ {
		m.emb[embFSMOuts1+uint8(i)] = uint8(i + 1)
	}
	out, err := d.FSMOutputs()
	if err != nil {
		t.Fatalf("FSMOutputs failed: %v", err)
	}
	for i, v := range out {
		if v != uint8(i+1) {
			t.Fatalf("FSMOutputs[%d] = %d, want %d", i, v, i+1)
		}
	}
}
