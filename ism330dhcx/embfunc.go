package ism330dhcx

import (
	"encoding/binary"
	"fmt"
)

// EmbeddedODR selects the rate the FSM or MLC consumes samples at.
type EmbeddedODR uint8

const (
	Embedded12Hz5 EmbeddedODR = 0x0
	Embedded26Hz  EmbeddedODR = 0x1
	Embedded52Hz  EmbeddedODR = 0x2
	Embedded104Hz EmbeddedODR = 0x3
)

// SetFSMDataRate configures the FSM sample rate. A subsequent
// SetAccelDataRate/SetGyroDataRate call below this rate will be clamped
// up to it while any FSM program is enabled.
func (d *Dev) SetFSMDataRate(odr EmbeddedODR) error {
	return d.withBank(bankEmbedded, func() error {
		return d.updateReg(embFuncODRCfgB, embFSMODRMask, uint8(odr)<<3)
	})
}

// FSMDataRate reads back the FSM sample rate.
func (d *Dev) FSMDataRate() (EmbeddedODR, error) {
	var odr EmbeddedODR
	err := d.withBank(bankEmbedded, func() error {
		v, err := d.readReg(embFuncODRCfgB)
		if err != nil {
			return err
		}
		odr = EmbeddedODR((v & embFSMODRMask) >> 3)
		return nil
	})
	return odr, err
}

// SetMLCDataRate configures the MLC sample rate.
func (d *Dev) SetMLCDataRate(odr EmbeddedODR) error {
	return d.withBank(bankEmbedded, func() error {
		return d.updateReg(embFuncODRCfgC, embMLCODRMask, uint8(odr)<<4)
	})
}

// MLCDataRate reads back the MLC sample rate.
func (d *Dev) MLCDataRate() (EmbeddedODR, error) {
	var odr EmbeddedODR
	err := d.withBank(bankEmbedded, func() error {
		v, err := d.readReg(embFuncODRCfgC)
		if err != nil {
			return err
		}
		odr = EmbeddedODR((v & embMLCODRMask) >> 4)
		return nil
	})
	return odr, err
}

// SetFSMEnable enables or disables the 16 FSM programs. Bit i of the mask
// controls program i+1.
func (d *Dev) SetFSMEnable(mask uint16) error {
	return d.withBank(bankEmbedded, func() error {
		if err := d.writeReg(embFSMEnableA, uint8(mask)); err != nil {
			return err
		}
		if err := d.writeReg(embFSMEnableB, uint8(mask>>8)); err != nil {
			return err
		}
		// The block enable follows the program mask.
		var en uint8
		if mask != 0 {
			en = embEnBFSM
		}
		return d.updateReg(embFuncEnB, embEnBFSM, en)
	})
}

// FSMEnable reads back the FSM program enable mask.
func (d *Dev) FSMEnable() (uint16, error) {
	var mask uint16
	err := d.withBank(bankEmbedded, func() error {
		a, err := d.readReg(embFSMEnableA)
		if err != nil {
			return err
		}
		b, err := d.readReg(embFSMEnableB)
		if err != nil {
			return err
		}
		mask = uint16(b)<<8 | uint16(a)
		return nil
	})
	return mask, err
}

// FSMOutputs reads the 16 FSM output registers.
func (d *Dev) FSMOutputs() ([16]uint8, error) {
	var out [16]uint8
	err := d.withBank(bankEmbedded, func() error {
		return d.t.ReadRegister(embFSMOuts1, out[:])
	})
	return out, err
}

// FSMLongCounter reads the FSM long counter.
func (d *Dev) FSMLongCounter() (uint16, error) {
	var cnt uint16
	err := d.withBank(bankEmbedded, func() error {
		var b [2]byte
		if err := d.t.ReadRegister(embFSMLongCountL, b[:]); err != nil {
			return err
		}
		cnt = binary.LittleEndian.Uint16(b[:])
		return nil
	})
	return cnt, err
}

// SetFSMLongCounter presets the FSM long counter.
func (d *Dev) SetFSMLongCounter(v uint16) error {
	return d.withBank(bankEmbedded, func() error {
		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], v)
		return d.t.WriteRegister(embFSMLongCountL, b[:])
	})
}

// ClearFSMLongCounter requests a long counter clear and reports completion
// through the CLR bit, which self-clears.
func (d *Dev) ClearFSMLongCounter() error {
	return d.withBank(bankEmbedded, func() error {
		return d.writeReg(embFSMLongClear, 0x01)
	})
}

// SetFSMLongCounterTimeout writes the long counter timeout compare value
// (paged memory, page 1).
func (d *Dev) SetFSMLongCounterTimeout(v uint16) error {
	if err := d.writePagedByte(pgFSMLCTimeoutL, uint8(v)); err != nil {
		return err
	}
	return d.writePagedByte(pgFSMLCTimeoutH, uint8(v>>8))
}

// SetFSMNumberOfPrograms declares how many FSM programs are loaded.
func (d *Dev) SetFSMNumberOfPrograms(n uint8) error {
	if n > 16 {
		return fmt.Errorf("ism330dhcx: fsm program count %d out of range (max 16)", n)
	}
	return d.writePagedByte(pgFSMPrograms, n)
}

// FSMNumberOfPrograms reads back the declared FSM program count.
func (d *Dev) FSMNumberOfPrograms() (uint8, error) {
	return d.readPagedByte(pgFSMPrograms)
}

// SetFSMStartAddress sets the paged-memory address the first FSM program
// starts at.
func (d *Dev) SetFSMStartAddress(addr uint16) error {
	if err := d.writePagedByte(pgFSMStartAddL, uint8(addr)); err != nil {
		return err
	}
	return d.writePagedByte(pgFSMStartAddH, uint8(addr>>8))
}

// SetMLCEnable enables or disables the machine-learning core. Per the
// application note the block is pulsed off/on when already running so a
// new decision tree takes effect.
func (d *Dev) SetMLCEnable(on bool) error {
	return d.withBank(bankEmbedded, func() error {
		cur, err := d.readReg(embFuncEnB)
		if err != nil {
			return err
		}
		if on && cur&embEnBMLC != 0 {
			if err := d.writeReg(embFuncEnB, cur&^embEnBMLC); err != nil {
				return err
			}
		}
		var v uint8
		if on {
			v = cur | embEnBMLC
		} else {
			v = cur &^ embEnBMLC
		}
		return d.writeReg(embFuncEnB, v)
	})
}

// MLCEnabled reports whether the machine-learning core is enabled.
func (d *Dev) MLCEnabled() (bool, error) {
	var on bool
	err := d.withBank(bankEmbedded, func() error {
		v, err := d.readReg(embFuncEnB)
		if err != nil {
			return err
		}
		on = v&embEnBMLC != 0
		return nil
	})
	return on, err
}

// MLCOutputs reads the 8 MLC decision-tree result registers.
func (d *Dev) MLCOutputs() ([8]uint8, error) {
	var out [8]uint8
	err := d.withBank(bankEmbedded, func() error {
		return d.t.ReadRegister(embMLC0Src, out[:])
	})
	return out, err
}

// EmbeddedStatus holds the latched embedded-function event flags.
type EmbeddedStatus struct {
	StepDetected      bool
	Tilt              bool
	SignificantMotion bool
	FSMLongCounter    bool
}

func decodeEmbStatus(v uint8) EmbeddedStatus {
	return EmbeddedStatus{
		StepDetected:      v&embStatusStep != 0,
		Tilt:              v&embStatusTilt != 0,
		SignificantMotion: v&embStatusSigMotion != 0,
		FSMLongCounter:    v&embStatusFSMLC != 0,
	}
}

// EmbeddedStatus reads the latched embedded-function status from the
// embedded bank.
func (d *Dev) EmbeddedStatus() (EmbeddedStatus, error) {
	var st EmbeddedStatus
	err := d.withBank(bankEmbedded, func() error {
		v, err := d.readReg(embFuncStatus)
		if err != nil {
			return err
		}
		st = decodeEmbStatus(v)
		return nil
	})
	return st, err
}

// EmbeddedStatusMainPage reads the main-page mirror of the embedded
// status, avoiding a bank switch.
func (d *Dev) EmbeddedStatusMainPage() (EmbeddedStatus, error) {
	v, err := d.readReg(regEmbFuncStatusM)
	if err != nil {
		return EmbeddedStatus{}, err
	}
	return decodeEmbStatus(v), nil
}

// FSMStatus reads the per-program FSM interrupt status from the main-page
// mirrors. Bit i reports program i+1.
func (d *Dev) FSMStatus() (uint16, error) {
	a, err := d.readReg(regFSMStatusAM)
	if err != nil {
		return 0, err
	}
	b, err := d.readReg(regFSMStatusBM)
	if err != nil {
		return 0, err
	}
	return uint16(b)<<8 | uint16(a), nil
}

// MLCStatus reads the per-tree MLC interrupt status from the main-page
// mirror.
func (d *Dev) MLCStatus() (uint8, error) {
	return d.readReg(regMLCStatusM)
}

// SetEmbeddedLatched latches the embedded-function interrupt signals.
func (d *Dev) SetEmbeddedLatched(on bool) error {
	return d.withBank(bankEmbedded, func() error {
		var v uint8
		if on {
			v = pageEmbLIR
		}
		return d.updateReg(embPageRW, pageEmbLIR, v)
	})
}

// SetPedometer enables the step detector and counter. advanced enables the
// false-positive rejection block in PEDO_CMD_REG.
func (d *Dev) SetPedometer(on, advanced bool) error {
	err := d.withBank(bankEmbedded, func() error {
		var v uint8
		if on {
			v = embEnAPedo
		}
		return d.updateReg(embFuncEnA, embEnAPedo, v)
	})
	if err != nil {
		return err
	}
	var cmd uint8
	if advanced {
		cmd = pedoCmdFPRejection
	}
	return d.updatePagedByte(pgPedoCmdReg, pedoCmdFPRejection, cmd)
}

// StepCounter reads the 16-bit step count.
func (d *Dev) StepCounter() (uint16, error) {
	var steps uint16
	err := d.withBank(bankEmbedded, func() error {
		var b [2]byte
		if err := d.t.ReadRegister(embStepCounterL, b[:]); err != nil {
			return err
		}
		steps = binary.LittleEndian.Uint16(b[:])
		return nil
	})
	return steps, err
}

// ResetStepCounter zeroes the step count. The reset bit self-clears.
func (d *Dev) ResetStepCounter() error {
	return d.withBank(bankEmbedded, func() error {
		return d.updateReg(embFuncSrc, embSrcPedoRstStep, embSrcPedoRstStep)
	})
}

// SetPedometerDebounce configures the number of steps that must accumulate
// before the counter starts incrementing (paged memory, page 1).
func (d *Dev) SetPedometerDebounce(steps uint8) error {
	return d.writePagedByte(pgPedoDebStepsConf, steps)
}

// SetPedometerDeltaTime sets the period of the step-delta event in
// 1.6384 s units (paged memory, page 1). 0 disables the event.
func (d *Dev) SetPedometerDeltaTime(dt uint16) error {
	if err := d.writePagedByte(pgPedoScDeltaTL, uint8(dt)); err != nil {
		return err
	}
	return d.writePagedByte(pgPedoScDeltaTH, uint8(dt>>8))
}

// SetTilt enables the tilt detector.
func (d *Dev) SetTilt(on bool) error {
	return d.withBank(bankEmbedded, func() error {
		var v uint8
		if on {
			v = embEnATilt
		}
		return d.updateReg(embFuncEnA, embEnATilt, v)
	})
}

// SetSignificantMotion enables the significant-motion detector.
func (d *Dev) SetSignificantMotion(on bool) error {
	return d.withBank(bankEmbedded, func() error {
		var v uint8
		if on {
			v = embEnASigMotion
		}
		return d.updateReg(embFuncEnA, embEnASigMotion, v)
	})
}

// RebootEmbedded requests re-initialization of the embedded blocks via
// the INIT request bits.
func (d *Dev) RebootEmbedded() error {
	return d.withBank(bankEmbedded, func() error {
		if err := d.writeReg(embFuncInitA, embEnAPedo|embEnATilt|embEnASigMotion); err != nil {
			return err
		}
		return d.writeReg(embFuncInitB, embEnBFSM|embEnBMLC)
	})
}
