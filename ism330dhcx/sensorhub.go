package ism330dhcx

import "fmt"

// SensorHubODR selects the rate the I2C master polls its slaves at.
type SensorHubODR uint8

const (
	SensorHub104Hz SensorHubODR = 0x0
	SensorHub52Hz  SensorHubODR = 0x1
	SensorHub26Hz  SensorHubODR = 0x2
	SensorHub13Hz  SensorHubODR = 0x3
)

// SensorHubSlave configures one of the four external I2C slaves.
type SensorHubSlave struct {
	// Address is the 7-bit I2C address.
	Address uint8
	// SubAddress is the slave register the transaction starts at.
	SubAddress uint8
	// Read selects a read transaction; slave 0 may also write one byte.
	Read bool
	// Len is the number of bytes to read (1-7). Ignored for writes.
	Len uint8
	// Batch routes the slave data into the FIFO.
	Batch bool
	// ODR is the polling rate. Only the slave 0 field is honored by the
	// hardware; the driver still writes it for the configured slave.
	ODR SensorHubODR
}

// SetSensorHubSlavesConnected declares how many of the four slave slots
// the master scans (1-4).
func (d *Dev) SetSensorHubSlavesConnected(n uint8) error {
	if n < 1 || n > 4 {
		return fmt.Errorf("ism330dhcx: sensor hub slave count %d out of range (1-4)", n)
	}
	return d.withBank(bankSensorHub, func() error {
		return d.updateReg(shubMasterConfig, shubAuxSensMask, n-1)
	})
}

// SetSensorHubMaster enables or disables the I2C master. Disabling while a
// transaction may be in flight requires waiting one hub period before
// reconfiguring; that pacing is the caller's concern.
func (d *Dev) SetSensorHubMaster(on bool) error {
	return d.withBank(bankSensorHub, func() error {
		var v uint8
		if on {
			v = shubMasterOn
		}
		return d.updateReg(shubMasterConfig, shubMasterOn, v)
	})
}

// SetSensorHubPullUps enables the internal pull-ups on the master bus.
func (d *Dev) SetSensorHubPullUps(on bool) error {
	return d.withBank(bankSensorHub, func() error {
		var v uint8
		if on {
			v = shubPUEn
		}
		return d.updateReg(shubMasterConfig, shubPUEn, v)
	})
}

// SetSensorHubPassThrough connects the master bus directly to the primary
// interface so the host can program external slaves itself.
func (d *Dev) SetSensorHubPassThrough(on bool) error {
	return d.withBank(bankSensorHub, func() error {
		var v uint8
		if on {
			v = shubPassThrough
		}
		return d.updateReg(shubMasterConfig, shubPassThrough, v)
	})
}

// SetSensorHubTriggerOnInt2 starts hub transactions on the INT2 pad signal
// instead of the accelerometer data-ready.
func (d *Dev) SetSensorHubTriggerOnInt2(on bool) error {
	return d.withBank(bankSensorHub, func() error {
		var v uint8
		if on {
			v = shubStartConfig
		}
		return d.updateReg(shubMasterConfig, shubStartConfig, v)
	})
}

// SetSensorHubWriteOnce performs slave 0 write transactions only once
// instead of on every hub cycle.
func (d *Dev) SetSensorHubWriteOnce(on bool) error {
	return d.withBank(bankSensorHub, func() error {
		var v uint8
		if on {
			v = shubWriteOnce
		}
		return d.updateReg(shubMasterConfig, shubWriteOnce, v)
	})
}

// ResetSensorHubMaster pulses the master logic reset.
func (d *Dev) ResetSensorHubMaster() error {
	return d.withBank(bankSensorHub, func() error {
		if err := d.updateReg(shubMasterConfig, shubRstMasterRegs, shubRstMasterRegs); err != nil {
			return err
		}
		return d.updateReg(shubMasterConfig, shubRstMasterRegs, 0)
	})
}

// slave register triples, indexed by slot.
var shubSlaveRegs = [4]struct{ add, sub, cfg uint8 }{
	{shubSlv0Add, shubSlv0Subadd, shubSlv0Config},
	{shubSlv1Add, shubSlv1Subadd, shubSlv1Config},
	{shubSlv2Add, shubSlv2Subadd, shubSlv2Config},
	{shubSlv3Add, shubSlv3Subadd, shubSlv3Config},
}

// ConfigureSensorHubSlave programs one slave slot.
func (d *Dev) ConfigureSensorHubSlave(slot int, s SensorHubSlave) error {
	if slot < 0 || slot > 3 {
		return fmt.Errorf("ism330dhcx: sensor hub slot %d out of range (0-3)", slot)
	}
	if s.Read && (s.Len < 1 || s.Len > 7) {
		return fmt.Errorf("ism330dhcx: sensor hub read length %d out of range (1-7)", s.Len)
	}
	if !s.Read && slot != 0 {
		return fmt.Errorf("ism330dhcx: only slave 0 supports write transactions")
	}
	regs := shubSlaveRegs[slot]
	return d.withBank(bankSensorHub, func() error {
		add := s.Address << 1
		if s.Read {
			add |= 0x01
		}
		if err := d.writeReg(regs.add, add); err != nil {
			return err
		}
		if err := d.writeReg(regs.sub, s.SubAddress); err != nil {
			return err
		}
		var cfg uint8
		if s.Read {
			cfg = s.Len & shubNumOpMask
		}
		if s.Batch {
			cfg |= shubBatchEn
		}
		cfg |= uint8(s.ODR) << 6
		return d.writeReg(regs.cfg, cfg)
	})
}

// SetSensorHubWriteData sets the byte slave 0 writes to its sub-address.
func (d *Dev) SetSensorHubWriteData(v uint8) error {
	return d.withBank(bankSensorHub, func() error {
		return d.writeReg(shubDataWrSlv0, v)
	})
}

// ReadSensorHub returns the first n external sensor data bytes collected
// by the master (max SensorHubBytes).
func (d *Dev) ReadSensorHub(n int) ([]byte, error) {
	if n < 1 || n > SensorHubBytes {
		return nil, fmt.Errorf("ism330dhcx: sensor hub read of %d bytes out of range (1-%d)", n, SensorHubBytes)
	}
	buf := make([]byte, n)
	err := d.withBank(bankSensorHub, func() error {
		return d.t.ReadRegister(shubSensorHub1, buf)
	})
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// SensorHubStatus holds the decoded STATUS_MASTER flags.
type SensorHubStatus struct {
	EndOfOperation bool
	WriteOnceDone  bool
	Slave0Nack     bool
	Slave1Nack     bool
	Slave2Nack     bool
	Slave3Nack     bool
}

// SensorHubStatus reads the master status from the sensor-hub bank.
func (d *Dev) SensorHubStatus() (SensorHubStatus, error) {
	var st SensorHubStatus
	err := d.withBank(bankSensorHub, func() error {
		v, err := d.readReg(shubStatusMaster)
		if err != nil {
			return err
		}
		st = SensorHubStatus{
			EndOfOperation: v&shubEndOp != 0,
			WriteOnceDone:  v&shubWrOnceDone != 0,
			Slave0Nack:     v&shubSlv0Nack != 0,
			Slave1Nack:     v&shubSlv1Nack != 0,
			Slave2Nack:     v&shubSlv2Nack != 0,
			Slave3Nack:     v&shubSlv3Nack != 0,
		}
		return nil
	})
	return st, err
}

// SensorHubStatusMainPage reads the main-page mirror of STATUS_MASTER,
// avoiding a bank switch.
func (d *Dev) SensorHubStatusMainPage() (SensorHubStatus, error) {
	v, err := d.readReg(regStatusMasterM)
	if err != nil {
		return SensorHubStatus{}, err
	}
	return SensorHubStatus{
		EndOfOperation: v&shubEndOp != 0,
		WriteOnceDone:  v&shubWrOnceDone != 0,
		Slave0Nack:     v&shubSlv0Nack != 0,
		Slave1Nack:     v&shubSlv1Nack != 0,
		Slave2Nack:     v&shubSlv2Nack != 0,
		Slave3Nack:     v&shubSlv3Nack != 0,
	}, nil
}
