package ism330dhcx

import "encoding/binary"

// Status holds the STATUS_REG data-ready flags.
type Status struct {
	AccelReady bool
	GyroReady  bool
	TempReady  bool
}

// Status reads the data-ready flags.
func (d *Dev) Status() (Status, error) {
	v, err := d.readReg(regStatus)
	if err != nil {
		return Status{}, err
	}
	return Status{
		AccelReady: v&statusXLDA != 0,
		GyroReady:  v&statusGDA != 0,
		TempReady:  v&statusTDA != 0,
	}, nil
}

// ReadAcceleration reads the raw accelerometer sample (two's complement
// LSB counts). Scale with the FromFS*ToMg helpers.
func (d *Dev) ReadAcceleration() (x, y, z int16, err error) {
	return d.readSample(regOutXLA)
}

// ReadAngularRate reads the raw gyroscope sample (two's complement LSB
// counts). Scale with the FromFS*ToMdps helpers.
func (d *Dev) ReadAngularRate() (x, y, z int16, err error) {
	return d.readSample(regOutXLG)
}

func (d *Dev) readSample(reg uint8) (x, y, z int16, err error) {
	var b [6]byte
	if err = d.t.ReadRegister(reg, b[:]); err != nil {
		return 0, 0, 0, err
	}
	x = int16(binary.LittleEndian.Uint16(b[0:2]))
	y = int16(binary.LittleEndian.Uint16(b[2:4]))
	z = int16(binary.LittleEndian.Uint16(b[4:6]))
	return x, y, z, nil
}

// ReadTemperature reads the raw temperature sample. Scale with
// FromLSBToCelsius.
func (d *Dev) ReadTemperature() (int16, error) {
	var b [2]byte
	if err := d.t.ReadRegister(regOutTempL, b[:]); err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(b[:])), nil
}

// SetTimestamp enables the 25 µs timestamp counter.
func (d *Dev) SetTimestamp(on bool) error {
	var v uint8
	if on {
		v = ctrl10TimestampEn
	}
	return d.updateReg(regCtrl10C, ctrl10TimestampEn, v)
}

// Timestamp reads the 32-bit timestamp counter. Scale with
// FromLSBToNanoseconds.
func (d *Dev) Timestamp() (uint32, error) {
	var b [4]byte
	if err := d.t.ReadRegister(regTimestamp0, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// SetBlockDataUpdate delays output register updates until both bytes of a
// sample have been read, so a sample can never mix two conversions.
func (d *Dev) SetBlockDataUpdate(on bool) error {
	var v uint8
	if on {
		v = ctrl3BDU
	}
	return d.updateReg(regCtrl3C, ctrl3BDU, v)
}

// SetAutoIncrement enables register address auto-increment on multi-byte
// transfers. New enables it; burst readers in this package depend on it.
func (d *Dev) SetAutoIncrement(on bool) error {
	var v uint8
	if on {
		v = ctrl3IFInc
	}
	return d.updateReg(regCtrl3C, ctrl3IFInc, v)
}

// SetSPI3Wire selects 3-wire SPI mode (SDO shared with SDI).
func (d *Dev) SetSPI3Wire(on bool) error {
	var v uint8
	if on {
		v = ctrl3SIM
	}
	return d.updateReg(regCtrl3C, ctrl3SIM, v)
}

// SetI2CDisable disables the I2C slave interface. Useful on SPI buses with
// floating SDA/SCL.
func (d *Dev) SetI2CDisable(on bool) error {
	var v uint8
	if on {
		v = ctrl4I2CDisable
	}
	return d.updateReg(regCtrl4C, ctrl4I2CDisable, v)
}

// SetI3CDisable disables the MIPI I3C interface.
func (d *Dev) SetI3CDisable(on bool) error {
	var v uint8
	if on {
		v = ctrl9I3CDisable
	}
	return d.updateReg(regCtrl9XL, ctrl9I3CDisable, v)
}

// SetDataReadyMask masks data-ready signals until the filter chains have
// settled after a mode change.
func (d *Dev) SetDataReadyMask(on bool) error {
	var v uint8
	if on {
		v = ctrl4DRDYMask
	}
	return d.updateReg(regCtrl4C, ctrl4DRDYMask, v)
}

// Rounding selects which output register groups wrap around on burst reads.
type Rounding uint8

const (
	RoundingOff       Rounding = 0x0
	RoundingAccel     Rounding = 0x1
	RoundingGyro      Rounding = 0x2
	RoundingAccelGyro Rounding = 0x3
)

// SetRounding configures output register rounding.
func (d *Dev) SetRounding(r Rounding) error {
	return d.updateReg(regCtrl5C, ctrl5RoundingMask, uint8(r)<<5)
}

// InternalFrequencyFine reads the trimmed deviation of the internal
// oscillator from nominal, in 0.15% steps (two's complement).
func (d *Dev) InternalFrequencyFine() (int8, error) {
	v, err := d.readReg(regInternalFreq)
	if err != nil {
		return 0, err
	}
	return int8(v), nil
}

// SetI3CBusAvailableTime sets the I3C bus available time selection
// (I3C_BUS_AVB).
func (d *Dev) SetI3CBusAvailableTime(code uint8) error {
	return d.updateReg(regI3CBusAvb, 0x18, code<<3)
}

// DENMode selects how the external DEN pin gates or stamps samples.
type DENMode uint8

const (
	DENOff          DENMode = 0x0
	DENLevelTrigger DENMode = 0x2 // level-sensitive trigger (data gated)
	DENLevelLatched DENMode = 0x3 // level-sensitive latched
	DENLevelFIFO    DENMode = 0x6 // level-sensitive FIFO enable
	DENEdgeTrigger  DENMode = 0x4 // edge-sensitive trigger
)

// DENConfig selects which samples carry the DEN stamp and on which axes the
// stamp bit replaces the sample LSB.
type DENConfig struct {
	Mode       DENMode
	ActiveLow  bool
	StampAccel bool // stamp accelerometer samples too (default gyro only)
	StampX     bool
	StampY     bool
	StampZ     bool
}

// SetDEN configures data-enable triggering and stamping.
func (d *Dev) SetDEN(c DENConfig) error {
	if err := d.updateReg(regCtrl6C, ctrl6DENModeMsk, uint8(c.Mode)<<5); err != nil {
		return err
	}
	var v uint8
	if !c.ActiveLow {
		v |= ctrl9DENLH
	}
	if c.StampAccel {
		v |= ctrl9DENXLEn | ctrl9DENXLG
	}
	if c.StampX {
		v |= ctrl9DENX
	}
	if c.StampY {
		v |= ctrl9DENY
	}
	if c.StampZ {
		v |= ctrl9DENZ
	}
	mask := uint8(ctrl9DENLH | ctrl9DENXLEn | ctrl9DENXLG | ctrl9DENX | ctrl9DENY | ctrl9DENZ)
	return d.updateReg(regCtrl9XL, mask, v)
}

// DEN reads back the data-enable configuration.
func (d *Dev) DEN() (DENConfig, error) {
	var c DENConfig
	v, err := d.readReg(regCtrl6C)
	if err != nil {
		return DENConfig{}, err
	}
	c.Mode = DENMode(v >> 5)
	v, err = d.readReg(regCtrl9XL)
	if err != nil {
		return DENConfig{}, err
	}
	c.ActiveLow = v&ctrl9DENLH == 0
	c.StampAccel = v&ctrl9DENXLEn != 0
	c.StampX = v&ctrl9DENX != 0
	c.StampY = v&ctrl9DENY != 0
	c.StampZ = v&ctrl9DENZ != 0
	return c, nil
}
