// Package ism330dhcx is a register-level driver for the ST ISM330DHCX
// inertial measurement unit (3-axis accelerometer + 3-axis gyroscope with
// on-chip FIFO, programmable finite-state machine, machine-learning core,
// pedometer and I2C sensor hub).
//
// The driver exposes the register map as typed accessors. It performs no
// scheduling and holds no state beyond the transport handle; every accessor
// is a direct read, write or read-modify-write on the device.
package ism330dhcx

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// ID is the fixed WHO_AM_I value of the ISM330DHCX.
const ID = 0x6B

// I2C slave addresses. DefaultAddr applies when the SDO/SA0 pad is tied low.
const (
	DefaultAddr = 0x6A
	AltAddr     = 0x6B
)

// Transport moves register data to and from the device. Implementations
// must support multi-byte bursts; the driver enables register address
// auto-increment during Init so a burst of len(buf) bytes covers
// consecutive registers starting at reg.
type Transport interface {
	ReadRegister(reg uint8, buf []byte) error
	WriteRegister(reg uint8, buf []byte) error
}

// i2cTransport talks to the device over I2C using a register-pointer write
// followed by a read.
type i2cTransport struct {
	dev i2c.Dev
}

// NewI2CTransport returns a Transport over the given I2C bus. addr is the
// 7-bit slave address; pass 0 to use DefaultAddr.
func NewI2CTransport(bus i2c.Bus, addr uint16) Transport {
	if addr == 0 {
		addr = DefaultAddr
	}
	return &i2cTransport{dev: i2c.Dev{Addr: addr, Bus: bus}}
}

func (t *i2cTransport) ReadRegister(reg uint8, buf []byte) error {
	return t.dev.Tx([]byte{reg}, buf)
}

func (t *i2cTransport) WriteRegister(reg uint8, buf []byte) error {
	w := make([]byte, 1+len(buf))
	w[0] = reg
	copy(w[1:], buf)
	return t.dev.Tx(w, nil)
}

// SPI interface parameters per the datasheet (mode 3, MSB first).
var (
	SPIFrequency = 10 * physic.MegaHertz
	SPIMode      = spi.Mode3
	SPIBits      = 8
)

// spiRead is OR-ed into the register address for SPI read frames.
const spiRead = 0x80

type spiTransport struct {
	conn spi.Conn
}

// NewSPITransport connects the given SPI port and returns a Transport.
func NewSPITransport(port spi.Port) (Transport, error) {
	c, err := port.Connect(SPIFrequency, SPIMode, SPIBits)
	if err != nil {
		return nil, fmt.Errorf("ism330dhcx: spi connect: %w", err)
	}
	return &spiTransport{conn: c}, nil
}

func (t *spiTransport) ReadRegister(reg uint8, buf []byte) error {
	w := make([]byte, 1+len(buf))
	w[0] = reg | spiRead
	r := make([]byte, len(w))
	if err := t.conn.Tx(w, r); err != nil {
		return err
	}
	copy(buf, r[1:])
	return nil
}

func (t *spiTransport) WriteRegister(reg uint8, buf []byte) error {
	w := make([]byte, 1+len(buf))
	w[0] = reg
	copy(w[1:], buf)
	return t.conn.Tx(w, nil)
}

// Opts holds initialization options.
type Opts struct {
	// SoftReset resets the register map to defaults before configuring.
	SoftReset bool
	// BlockDataUpdate delays output register updates until both bytes of a
	// sample have been read.
	BlockDataUpdate bool
}

// DefaultOpts is the recommended configuration.
var DefaultOpts = Opts{
	SoftReset:       true,
	BlockDataUpdate: true,
}

// Dev is an ISM330DHCX device handle.
type Dev struct {
	t Transport
}

func (d *Dev) String() string {
	return "ISM330DHCX"
}

// New verifies the device identity and applies opts. Pass nil opts to use
// DefaultOpts.
func New(t Transport, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	d := &Dev{t: t}

	id, err := d.DeviceID()
	if err != nil {
		return nil, fmt.Errorf("ism330dhcx: whoami read: %w", err)
	}
	if id != ID {
		return nil, fmt.Errorf("ism330dhcx: whoami mismatch: got 0x%02X, want 0x%02X", id, ID)
	}

	if opts.SoftReset {
		if err := d.Reset(); err != nil {
			return nil, err
		}
	}
	// Burst reads rely on address auto-increment.
	if err := d.SetAutoIncrement(true); err != nil {
		return nil, err
	}
	if opts.BlockDataUpdate {
		if err := d.SetBlockDataUpdate(true); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// DeviceID reads the WHO_AM_I register.
func (d *Dev) DeviceID() (uint8, error) {
	return d.readReg(regWhoAmI)
}

// Reset triggers a software reset and waits for the device to clear the
// reset bit. The register map returns to the default configuration.
func (d *Dev) Reset() error {
	if err := d.updateReg(regCtrl3C, ctrl3SWReset, ctrl3SWReset); err != nil {
		return fmt.Errorf("ism330dhcx: soft reset: %w", err)
	}
	// SW_RESET self-clears within 50 µs per the datasheet.
	for i := 0; i < 10; i++ {
		v, err := d.readReg(regCtrl3C)
		if err != nil {
			return err
		}
		if v&ctrl3SWReset == 0 {
			return nil
		}
		time.Sleep(100 * time.Microsecond)
	}
	return fmt.Errorf("ism330dhcx: soft reset did not complete")
}

// Boot reloads the trimming parameters from non-volatile memory.
func (d *Dev) Boot() error {
	return d.updateReg(regCtrl3C, ctrl3Boot, ctrl3Boot)
}

// ReadRegisterRaw reads one register by address, for debug tooling. bank
// selects which register bank the address refers to; the user bank is
// restored afterwards.
func (d *Dev) ReadRegisterRaw(bank uint8, reg uint8) (uint8, error) {
	if memBank(bank) == bankUser {
		return d.readReg(reg)
	}
	var v uint8
	err := d.withBank(memBank(bank), func() error {
		var err error
		v, err = d.readReg(reg)
		return err
	})
	return v, err
}

// WriteRegisterRaw writes one register by address, for debug tooling.
func (d *Dev) WriteRegisterRaw(bank uint8, reg uint8, v uint8) error {
	if memBank(bank) == bankUser {
		return d.writeReg(reg, v)
	}
	return d.withBank(memBank(bank), func() error {
		return d.writeReg(reg, v)
	})
}

// Register bank identifiers for ReadRegisterRaw/WriteRegisterRaw.
const (
	BankUser      = uint8(bankUser)
	BankEmbedded  = uint8(bankEmbedded)
	BankSensorHub = uint8(bankSensorHub)
)

// readReg reads one register.
func (d *Dev) readReg(reg uint8) (uint8, error) {
	var b [1]byte
	if err := d.t.ReadRegister(reg, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// writeReg writes one register.
func (d *Dev) writeReg(reg uint8, v uint8) error {
	return d.t.WriteRegister(reg, []byte{v})
}

// updateReg read-modify-writes the masked bits of a register, leaving the
// remaining bits untouched. value must already be shifted into the mask
// position.
func (d *Dev) updateReg(reg uint8, mask, value uint8) error {
	v, err := d.readReg(reg)
	if err != nil {
		return err
	}
	v = (v &^ mask) | (value & mask)
	return d.writeReg(reg, v)
}

// memBank selects which register bank FUNC_CFG_ACCESS exposes.
type memBank uint8

const (
	bankUser memBank = iota
	bankEmbedded
	bankSensorHub
)

// setMemBank switches the register map between the user bank, the
// embedded-functions bank and the sensor-hub bank. Callers must restore
// bankUser when done; accessors in this package do so even on error.
func (d *Dev) setMemBank(bank memBank) error {
	var v uint8
	switch bank {
	case bankEmbedded:
		v = funcCfgEmbAccess
	case bankSensorHub:
		v = funcCfgShubAccess
	}
	return d.writeReg(regFuncCfgAccess, v)
}

// withBank runs fn with the given bank selected and restores the user bank
// afterwards. The first error wins but the restore is always attempted.
func (d *Dev) withBank(bank memBank, fn func() error) error {
	if err := d.setMemBank(bank); err != nil {
		return err
	}
	err := fn()
	if rerr := d.setMemBank(bankUser); err == nil {
		err = rerr
	}
	return err
}
