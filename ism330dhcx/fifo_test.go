package ism330dhcx

import "testing"

func TestSetFIFOWatermarkSplit(t *testing.T) {
	d, m := testDev()
	if err := d.SetFIFOWatermark(0x123); err != nil {
		t.Fatalf("SetFIFOWatermark failed: %v", err)
	}
	if m.user[regFIFOCtrl1] != 0x23 {
		t.Errorf("FIFO_CTRL1 = 0x%02X, want 0x23", m.user[regFIFOCtrl1])
	}
	if m.user[regFIFOCtrl2]&fifo2WTM8 == 0 {
		t.Error("WTM8 bit not set in FIFO_CTRL2")
	}
	wtm, err := d.FIFOWatermark()
	if err != nil {
		t.Fatalf("FIFOWatermark failed: %v", err)
	}
	if wtm != 0x123 {
		t.Fatalf("FIFOWatermark = %d, want %d", wtm, 0x123)
	}
}

func TestSetFIFOWatermarkRange(t *testing.T) {
	d, _ := testDev()
	if err := d.SetFIFOWatermark(512); err == nil {
		t.Fatal("watermark 512 accepted, want range error")
	}
}

func TestSetFIFOWatermarkPreservesCtrl2(t *testing.T) {
	d, m := testDev()
	if err := d.SetFIFOStopOnWatermark(true); err != nil {
		t.Fatalf("SetFIFOStopOnWatermark failed: %v", err)
	}
	if err := d.SetFIFOWatermark(100); err != nil {
		t.Fatalf("SetFIFOWatermark failed: %v", err)
	}
	if m.user[regFIFOCtrl2]&fifo2StopOnWTM == 0 {
		t.Fatal("STOP_ON_WTM cleared by watermark write")
	}
}

func TestFIFOModeRoundTrip(t *testing.T) {
	d, _ := testDev()
	for _, mode := range []FIFOMode{FIFOBypass, FIFOFifo, FIFOStream, FIFOBypassToStream} {
		if err := d.SetFIFOMode(mode); err != nil {
			t.Fatalf("SetFIFOMode(%d) failed: %v", mode, err)
		}
		got, err := d.FIFOMode()
		if err != nil {
			t.Fatalf("FIFOMode failed: %v", err)
		}
		if got != mode {
			t.Fatalf("FIFOMode = %d, want %d", got, mode)
		}
	}
}

func TestFIFOBatchRates(t *testing.T) {
	d, m := testDev()
	if err := d.SetFIFOAccelBatchRate(Batch104Hz); err != nil {
		t.Fatalf("SetFIFOAccelBatchRate failed: %v", err)
	}
	if err := d.SetFIFOGyroBatchRate(Batch52Hz); err != nil {
		t.Fatalf("SetFIFOGyroBatchRate failed: %v", err)
	}
	want := uint8(Batch104Hz) | uint8(Batch52Hz)<<4
	if m.user[regFIFOCtrl3] != want {
		t.Fatalf("FIFO_CTRL3 = 0x%02X, want 0x%02X", m.user[regFIFOCtrl3], want)
	}
}

func TestFIFOStatusDecode(t *testing.T) {
	d, m := testDev()
	m.user[regFIFOStatus1] = 0x34
	m.user[regFIFOStatus2] = fifoStatus2WTM | fifoStatus2Full | 0x02

	st, err := d.FIFOStatus()
	if err != nil {
		t.Fatalf("FIFOStatus failed: %v", err)
	}
	if st.Level != 0x234 {
		t.Errorf("Level = %d, want %d", st.Level, 0x234)
	}
	if !st.Watermark || !st.Full {
		t.Errorf("flags = %+v, want Watermark and Full set", st)
	}
	if st.Overrun || st.CounterBDR {
		t.Errorf("flags = %+v, want Overrun and CounterBDR clear", st)
	}
}

func TestReadFIFORecord(t *testing.T) {
	d, m := testDev()
	m.user[regFIFODataTag] = uint8(TagGyroNC)<<3 | 2<<1
	// X=0x0102 Y=0xFFFE(-2) Z=0x7FFF little endian.
	copy(m.user[regFIFODataTag+1:], []byte{0x02, 0x01, 0xFE, 0xFF, 0xFF, 0x7F})

	rec, err := d.ReadFIFORecord()
	if err != nil {
		t.Fatalf("ReadFIFORecord failed: %v", err)
	}
	if rec.Tag != TagGyroNC {
		t.Errorf("Tag = %v, want %v", rec.Tag, TagGyroNC)
	}
	if rec.Counter != 2 {
		t.Errorf("Counter = %d, want 2", rec.Counter)
	}
	x, y, z := rec.XYZ()
	if x != 0x0102 || y != -2 || z != 0x7FFF {
		t.Errorf("XYZ = (%d, %d, %d), want (258, -2, 32767)", x, y, z)
	}
}

func TestFIFOTagString(t *testing.T) {
	cases := map[FIFOTag]string{
		TagAccelNC:       "accel",
		TagGyroNC:        "gyro",
		TagStepCounter:   "step-counter",
		TagSensorHubNack: "sensorhub-nack",
		FIFOTag(0x1E):    "tag-0x1E",
	}
	for tag, want := range cases {
		if got := tag.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", tag, got, want)
		}
	}
}

func TestSetCounterBDRThresholdRange(t *testing.T) {
	d, m := testDev()
	if err := d.SetCounterBDRThreshold(2048); err == nil {
		t.Fatal("threshold 2048 accepted, want range error")
	}
	if err := d.SetCounterBDRThreshold(0x5A5); err != nil {
		t.Fatalf("SetCounterBDRThreshold failed: %v", err)
	}
	if m.user[regCounterBDR1]&cntBDR1THMask != 0x05 {
		t.Errorf("COUNTER_BDR_REG1 high bits = 0x%02X, want 0x05", m.user[regCounterBDR1]&cntBDR1THMask)
	}
	if m.user[regCounterBDR2] != 0xA5 {
		t.Errorf("COUNTER_BDR_REG2 = 0x%02X, want 0xA5", m.user[regCounterBDR2])
	}
}

func TestSetFIFOCompression(t *testing.T) {
	d, m := testDev()
	if err := d.SetFIFOCompression(true); err != nil {
		t.Fatalf("SetFIFOCompression failed: %v", err)
	}
	if m.emb[embFuncEnB]&embEnBFIFOCompr == 0 {
		t.Error("FIFO_COMPR_EN not set in EMB_FUNC_EN_B")
	}
	if m.user[regFIFOCtrl2]&fifo2ComprRTEn == 0 {
		t.Error("FIFO_COMPR_RT_EN not set in FIFO_CTRL2")
	}
	if err := d.SetFIFOCompression(false); err != nil {
		t.Fatalf("SetFIFOCompression failed: %v", err)
	}
	if m.emb[embFuncEnB]&embEnBFIFOCompr != 0 || m.user[regFIFOCtrl2]&fifo2ComprRTEn != 0 {
		t.Error("compression bits still set after disable")
	}
}
