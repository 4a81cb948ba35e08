package ism330dhcx

import "fmt"

// WakeUpConfig parameterizes the wake-up (motion) detector.
type WakeUpConfig struct {
	// Threshold in WAKE_UP_THS LSBs. The weight of one LSB is FS_XL/64
	// by default, FS_XL/256 with FineThreshold.
	Threshold uint8
	// FineThreshold selects the FS_XL/256 weight.
	FineThreshold bool
	// Duration in ODR_XL periods (0-3) the threshold must be exceeded.
	Duration uint8
	// OnHighPass feeds the detector from the slope/high-pass path instead
	// of the raw output.
	OnHighPass bool
	// SubtractOffsets applies the user offsets to the detector input.
	SubtractOffsets bool
}

// SetWakeUp configures the wake-up detector. Route the event with
// SetPinInt1Route/SetPinInt2Route.
func (d *Dev) SetWakeUp(c WakeUpConfig) error {
	if c.Threshold > wkThsMask {
		return fmt.Errorf("ism330dhcx: wake-up threshold %d out of range (max 63)", c.Threshold)
	}
	if c.Duration > 3 {
		return fmt.Errorf("ism330dhcx: wake-up duration %d out of range (max 3)", c.Duration)
	}
	var ths uint8 = c.Threshold
	if c.SubtractOffsets {
		ths |= wkUsrOffOnWU
	}
	if err := d.updateReg(regWakeUpThs, wkThsMask|wkUsrOffOnWU, ths); err != nil {
		return err
	}
	var dur uint8 = c.Duration << 5
	if c.FineThreshold {
		dur |= wkThsWeight
	}
	if err := d.updateReg(regWakeUpDur, wkWakeDurMask|wkThsWeight, dur); err != nil {
		return err
	}
	var fds uint8
	if c.OnHighPass {
		fds = tap0SlopeFDS
	}
	return d.updateReg(regTapCfg0, tap0SlopeFDS, fds)
}

// FreeFallThreshold selects the free-fall detection threshold.
type FreeFallThreshold uint8

const (
	FreeFall156mg FreeFallThreshold = 0x0
	FreeFall219mg FreeFallThreshold = 0x1
	FreeFall250mg FreeFallThreshold = 0x2
	FreeFall312mg FreeFallThreshold = 0x3
	FreeFall344mg FreeFallThreshold = 0x4
	FreeFall406mg FreeFallThreshold = 0x5
	FreeFall469mg FreeFallThreshold = 0x6
	FreeFall500mg FreeFallThreshold = 0x7
)

// SetFreeFall configures the free-fall detector. dur is the minimum event
// duration in ODR_XL periods (0-63); its sixth bit lives in WAKE_UP_DUR.
func (d *Dev) SetFreeFall(ths FreeFallThreshold, dur uint8) error {
	if dur > 0x3F {
		return fmt.Errorf("ism330dhcx: free-fall duration %d out of range (max 63)", dur)
	}
	v := uint8(ths) | (dur&0x1F)<<3
	if err := d.writeReg(regFreeFall, v); err != nil {
		return err
	}
	var hi uint8
	if dur&0x20 != 0 {
		hi = wkFFDur5
	}
	return d.updateReg(regWakeUpDur, wkFFDur5, hi)
}

// SixDThreshold selects the angle threshold for 4D/6D orientation
// detection.
type SixDThreshold uint8

const (
	SixD80Deg SixDThreshold = 0x0
	SixD70Deg SixDThreshold = 0x1
	SixD60Deg SixDThreshold = 0x2
	SixD50Deg SixDThreshold = 0x3
)

// SetSixD configures orientation detection. With fourD set, Z-axis
// positions are ignored (portrait/landscape only).
func (d *Dev) SetSixD(ths SixDThreshold, fourD bool) error {
	v := uint8(ths) << 5
	if fourD {
		v |= d4dEn
	}
	return d.updateReg(regTapThs6D, sixdTHSMask|d4dEn, v)
}

// TapConfig parameterizes tap and double-tap recognition.
type TapConfig struct {
	EnableX bool
	EnableY bool
	EnableZ bool
	// Per-axis thresholds, 5 bits each, 1 LSB = FS_XL/32.
	ThresholdX uint8
	ThresholdY uint8
	ThresholdZ uint8
	// Priority orders axis evaluation (TAP_PRIORITY, 3 bits).
	Priority uint8
	// Shock: max over-threshold time, 1 LSB = 8/ODR_XL (0 means 4/ODR_XL).
	Shock uint8
	// Quiet: dead time after a tap, 1 LSB = 4/ODR_XL (0 means 2/ODR_XL).
	Quiet uint8
	// Duration: max gap between the taps of a double tap, 1 LSB =
	// 32/ODR_XL (0 means 16/ODR_XL).
	Duration uint8
	// DoubleTap enables single+double recognition instead of single only.
	DoubleTap bool
}

// SetTap configures tap recognition.
func (d *Dev) SetTap(c TapConfig) error {
	for _, ths := range []uint8{c.ThresholdX, c.ThresholdY, c.ThresholdZ} {
		if ths > 0x1F {
			return fmt.Errorf("ism330dhcx: tap threshold %d out of range (max 31)", ths)
		}
	}
	var axes uint8
	if c.EnableX {
		axes |= tap0TapXEn
	}
	if c.EnableY {
		axes |= tap0TapYEn
	}
	if c.EnableZ {
		axes |= tap0TapZEn
	}
	if err := d.updateReg(regTapCfg0, tap0TapXEn|tap0TapYEn|tap0TapZEn, axes); err != nil {
		return err
	}
	if err := d.updateReg(regTapCfg1, tap1THSXMask|tap1PriorityMask, c.ThresholdX|c.Priority<<5); err != nil {
		return err
	}
	if err := d.updateReg(regTapCfg2, tap2THSYMask, c.ThresholdY); err != nil {
		return err
	}
	if err := d.updateReg(regTapThs6D, tapThsZMask, c.ThresholdZ); err != nil {
		return err
	}
	dur2 := c.Shock&0x3 | (c.Quiet&0x3)<<2 | (c.Duration&0xF)<<4
	if err := d.writeReg(regIntDur2, dur2); err != nil {
		return err
	}
	var sd uint8
	if c.DoubleTap {
		sd = wkSingleDouble
	}
	return d.updateReg(regWakeUpThs, wkSingleDouble, sd)
}

// InactivityMode selects what happens to the two chains when inactivity
// is detected.
type InactivityMode uint8

const (
	InactivityOff          InactivityMode = 0x0 // detector disabled
	InactivityAccel12Hz5   InactivityMode = 0x1 // accel to 12.5 Hz, gyro unchanged
	InactivityGyroSleep    InactivityMode = 0x2 // accel to 12.5 Hz, gyro to sleep
	InactivityGyroPowerOff InactivityMode = 0x3 // accel to 12.5 Hz, gyro off
)

// SetActivityInactivity configures activity/inactivity recognition.
// sleepDur is the inactivity time before entering sleep, 1 LSB =
// 512/ODR_XL.
func (d *Dev) SetActivityInactivity(mode InactivityMode, sleepDur uint8) error {
	if sleepDur > 0x0F {
		return fmt.Errorf("ism330dhcx: sleep duration %d out of range (max 15)", sleepDur)
	}
	if err := d.updateReg(regTapCfg2, tap2InactEnMask, uint8(mode)<<5); err != nil {
		return err
	}
	return d.updateReg(regWakeUpDur, wkSleepDurMask, sleepDur)
}

// SetSleepStatusOnInt reports the sleep state on the interrupt pin instead
// of sleep-change pulses.
func (d *Dev) SetSleepStatusOnInt(on bool) error {
	var v uint8
	if on {
		v = tap0SleepStatusOnInt
	}
	return d.updateReg(regTapCfg0, tap0SleepStatusOnInt, v)
}

// SetIntClearOnRead clears latched interrupts on any source register read.
func (d *Dev) SetIntClearOnRead(on bool) error {
	var v uint8
	if on {
		v = tap0IntClrOnRead
	}
	return d.updateReg(regTapCfg0, tap0IntClrOnRead, v)
}
