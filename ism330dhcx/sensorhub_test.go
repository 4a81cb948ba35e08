package ism330dhcx

import (
	"bytes"
	"testing"
)

func TestConfigureSensorHubSlaveRead(t *testing.T) {
	d, m := testDev()
	err := d.ConfigureSensorHubSlave(1, SensorHubSlave{
		Address:    0x1E,
		SubAddress: 0x28,
		Read:       true,
		Len:        6,
		Batch:      true,
		ODR:        SensorHub52Hz,
	})
	if err != nil {
		t.Fatalf("ConfigureSensorHubSlave failed: %v", err)
	}
	if want := uint8(0x1E<<1 | 1); m.shub[shubSlv1Add] != want {
		t.Errorf("SLV1_ADD = 0x%02X, want 0x%02X", m.shub[shubSlv1Add], want)
	}
	if m.shub[shubSlv1Subadd] != 0x28 {
		t.Errorf("SLV1_SUBADD = 0x%02X, want 0x28", m.shub[shubSlv1Subadd])
	}
	want := uint8(6) | shubBatchEn | uint8(SensorHub52Hz)<<6
	if m.shub[shubSlv1Config] != want {
		t.Errorf("SLV1_CONFIG = 0x%02X, want 0x%02X", m.shub[shubSlv1Config], want)
	}
	if m.user[regFuncCfgAccess] != 0 {
		t.Errorf("bank not restored: FUNC_CFG_ACCESS = 0x%02X", m.user[regFuncCfgAccess])
	}
}

func TestConfigureSensorHubSlaveValidation(t *testing.T) {
	d, _ := testDev()
	if err := d.ConfigureSensorHubSlave(4, SensorHubSlave{Read: true, Len: 1}); err == nil {
		t.Error("slot 4 accepted, want range error")
	}
	if err := d.ConfigureSensorHubSlave(0, SensorHubSlave{Read: true, Len: 8}); err == nil {
		t.Error("read length 8 accepted, want range error")
	}
	if err := d.ConfigureSensorHubSlave(2, SensorHubSlave{Address: 0x0D}); err == nil {
		t.Error("write on slot 2 accepted, want error")
	}
}

func TestSensorHubSlave0Write(t *testing.T) {
	d, m := testDev()
	err := d.ConfigureSensorHubSlave(0, SensorHubSlave{Address: 0x0D, SubAddress: 0x20})
	if err != nil {
		t.Fatalf("ConfigureSensorHubSlave failed: %v", err)
	}
	if m.shub[shubSlv0Add]&0x01 != 0 {
		t.Error("read bit set on write transaction")
	}
	if err := d.SetSensorHubWriteData(0x9C); err != nil {
		t.Fatalf("SetSensorHubWriteData failed: %v", err)
	}
	if m.shub[shubDataWrSlv0] != 0x9C {
		t.Errorf("DATAWRITE_SLV0 = 0x%02X, want 0x9C", m.shub[shubDataWrSlv0])
	}
}

func TestSetSensorHubSlavesConnected(t *testing.T) {
	d, m := testDev()
	if err := d.SetSensorHubSlavesConnected(3); err != nil {
		t.Fatalf("SetSensorHubSlavesConnected failed: %v", err)
	}
	if m.shub[shubMasterConfig]&shubAuxSensMask != 2 {
		t.Errorf("AUX_SENS_ON = %d, want 2", m.shub[shubMasterConfig]&shubAuxSensMask)
	}
	if err := d.SetSensorHubSlavesConnected(0); err == nil {
		t.Error("slave count 0 accepted, want range error")
	}
	if err := d.SetSensorHubSlavesConnected(5); err == nil {
		t.Error("slave count 5 accepted, want range error")
	}
}

func TestReadSensorHub(t *testing.T) {
	d, m := testDev()
	for i := 0; i < 6; i++ {
		m.shub[shubSensorHub1+uint8(i)] = uint8(0xA0 + i)
	}
	got, err := d.ReadSensorHub(6)
	if err != nil {
		t.Fatalf("ReadSensorHub failed: %v", err)
	}
	want := []byte{0xA0, 0xA1, 0xA2, 0xA3, 0xA4, 0xA5}
	if !bytes.Equal(got, want) {
		t.Fatalf("ReadSensorHub = % X, want % X", got, want)
	}
	if _, err := d.ReadSensorHub(SensorHubBytes + 1); err == nil {
		t.Error("oversized hub read accepted, want range error")
	}
}

func TestSensorHubMasterToggle(t *testing.T) {
	d, m := testDev()
	if err := d.SetSensorHubMaster(true); err != nil {
		t.Fatalf("SetSensorHubMaster failed: %v", err)
	}
	if m.shub[shubMasterConfig]&shubMasterOn == 0 {
		t.Fatal("MASTER_ON not set")
	}
	if err := d.SetSensorHubPullUps(true); err != nil {
		t.Fatalf("SetSensorHubPullUps failed: %v", err)
	}
	// Enabling the pull-ups must not clear the master enable.
	if m.shub[shubMasterConfig]&shubMasterOn == 0 {
		t.Fatal("MASTER_ON cleared by pull-up write")
	}
	if err := d.SetSensorHubMaster(false); err != nil {
		t.Fatalf("SetSensorHubMaster failed: %v", err)
	}
	if m.shub[shubMasterConfig]&shubMasterOn != 0 {
		t.Fatal("MASTER_ON still set")
	}
}

func TestSensorHubStatusDecode(t *testing.T) {
	d, m := testDev()
	m.shub[shubStatusMaster] = shubEndOp | shubSlv2Nack
	st, err := d.SensorHubStatus()
	if err != nil {
		t.Fatalf("SensorHubStatus failed: %v", err)
	}
	if !st.EndOfOperation || !st.Slave2Nack {
		t.Errorf("status = %+v, want EndOfOperation and Slave2Nack", st)
	}
	if st.Slave0Nack || st.WriteOnceDone {
		t.Errorf("spurious status flags: %+v", st)
	}
}
