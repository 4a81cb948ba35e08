package ism330dhcx

import "fmt"

// GyroODR selects the gyroscope output data rate (CTRL2_G ODR_G).
type GyroODR uint8

const (
	GyroODROff    GyroODR = 0x0
	GyroODR12Hz5  GyroODR = 0x1
	GyroODR26Hz   GyroODR = 0x2
	GyroODR52Hz   GyroODR = 0x3
	GyroODR104Hz  GyroODR = 0x4
	GyroODR208Hz  GyroODR = 0x5
	GyroODR416Hz  GyroODR = 0x6
	GyroODR833Hz  GyroODR = 0x7
	GyroODR1667Hz GyroODR = 0x8
	GyroODR3333Hz GyroODR = 0x9
	GyroODR6667Hz GyroODR = 0xA
)

func (o GyroODR) rateHz() float64 {
	switch o {
	case GyroODROff:
		return 0
	case GyroODR12Hz5:
		return 12.5
	case GyroODR26Hz:
		return 26
	case GyroODR52Hz:
		return 52
	case GyroODR104Hz:
		return 104
	case GyroODR208Hz:
		return 208
	case GyroODR416Hz:
		return 416
	case GyroODR833Hz:
		return 833
	case GyroODR1667Hz:
		return 1667
	case GyroODR3333Hz:
		return 3333
	case GyroODR6667Hz:
		return 6667
	}
	return 0
}

func (o GyroODR) String() string {
	if o == GyroODROff {
		return "off"
	}
	return fmt.Sprintf("%g Hz", o.rateHz())
}

// GyroFS selects the gyroscope full scale. The ±125 and ±4000 dps ranges
// live in dedicated CTRL2_G bits rather than the 2-bit FS_G field.
type GyroFS uint8

const (
	GyroFS250DPS  GyroFS = 0x0
	GyroFS500DPS  GyroFS = 0x1
	GyroFS1000DPS GyroFS = 0x2
	GyroFS2000DPS GyroFS = 0x3
	GyroFS125DPS  GyroFS = 0x4
	GyroFS4000DPS GyroFS = 0x5
)

// SetGyroDataRate configures the gyroscope output data rate.
//
// As with the accelerometer chain, an enabled FSM or MLC silently raises
// the requested rate to the minimum rate the block demands: FSM first,
// then MLC, highest demand wins.
func (d *Dev) SetGyroDataRate(odr GyroODR) error {
	demand, err := d.embeddedRateDemand()
	if err != nil {
		return err
	}
	if demand > odr.rateHz() {
		odr = gyroODRForHz(demand)
	}
	return d.updateReg(regCtrl2G, ctrl2ODRMask, uint8(odr)<<4)
}

// gyroODRForHz returns the slowest gyroscope ODR of at least hz.
func gyroODRForHz(hz float64) GyroODR {
	for _, o := range []GyroODR{GyroODR12Hz5, GyroODR26Hz, GyroODR52Hz, GyroODR104Hz} {
		if o.rateHz() >= hz {
			return o
		}
	}
	return GyroODR104Hz
}

// GyroDataRate reads back the configured gyroscope output data rate.
func (d *Dev) GyroDataRate() (GyroODR, error) {
	v, err := d.readReg(regCtrl2G)
	if err != nil {
		return 0, err
	}
	return GyroODR(v >> 4), nil
}

// SetGyroFullScale configures the gyroscope full scale.
func (d *Dev) SetGyroFullScale(fs GyroFS) error {
	var v uint8
	switch fs {
	case GyroFS125DPS:
		v = ctrl2FS125
	case GyroFS4000DPS:
		v = ctrl2FS4000
	default:
		v = uint8(fs) << 2
	}
	return d.updateReg(regCtrl2G, ctrl2FSGMask|ctrl2FS125|ctrl2FS4000, v)
}

// GyroFullScale reads back the gyroscope full scale. The ±125 dps bit wins
// over FS_G, and ±4000 dps wins over both, matching the hardware priority.
func (d *Dev) GyroFullScale() (GyroFS, error) {
	v, err := d.readReg(regCtrl2G)
	if err != nil {
		return 0, err
	}
	switch {
	case v&ctrl2FS4000 != 0:
		return GyroFS4000DPS, nil
	case v&ctrl2FS125 != 0:
		return GyroFS125DPS, nil
	}
	return GyroFS((v & ctrl2FSGMask) >> 2), nil
}

// SetGyroHighPerformance enables or disables the gyroscope
// high-performance mode. The CTRL7_G bit is inverted: set means disabled.
func (d *Dev) SetGyroHighPerformance(on bool) error {
	var v uint8
	if !on {
		v = ctrl7GHMMode
	}
	return d.updateReg(regCtrl7G, ctrl7GHMMode, v)
}

// GyroHighPerformance reports whether high-performance mode is enabled.
func (d *Dev) GyroHighPerformance() (bool, error) {
	v, err := d.readReg(regCtrl7G)
	if err != nil {
		return false, err
	}
	return v&ctrl7GHMMode == 0, nil
}

// SetGyroLPF1 routes the gyroscope output through the LPF1 filter.
func (d *Dev) SetGyroLPF1(on bool) error {
	var v uint8
	if on {
		v = ctrl4LPF1SelG
	}
	return d.updateReg(regCtrl4C, ctrl4LPF1SelG, v)
}

// GyroLPF1Bandwidth selects the LPF1 bandwidth (CTRL6_C FTYPE). The cutoff
// in Hz depends on the ODR; see the datasheet table.
type GyroLPF1Bandwidth uint8

// SetGyroLPF1Bandwidth configures the LPF1 bandwidth code (0-7).
func (d *Dev) SetGyroLPF1Bandwidth(bw GyroLPF1Bandwidth) error {
	return d.updateReg(regCtrl6C, ctrl6FTypeMask, uint8(bw))
}

// GyroHPBandwidth selects the gyroscope digital high-pass cutoff.
type GyroHPBandwidth uint8

const (
	GyroHP16mHz  GyroHPBandwidth = 0x0
	GyroHP65mHz  GyroHPBandwidth = 0x1
	GyroHP260mHz GyroHPBandwidth = 0x2
	GyroHP1Hz04  GyroHPBandwidth = 0x3
)

// SetGyroHighPass enables the gyroscope high-pass filter with the given
// cutoff. The filter only applies in high-performance mode.
func (d *Dev) SetGyroHighPass(on bool, bw GyroHPBandwidth) error {
	var v uint8
	if on {
		v = ctrl7HPENG
	}
	v |= uint8(bw) << 4
	return d.updateReg(regCtrl7G, ctrl7HPENG|ctrl7HPMGMask, v)
}

// SetGyroSleep puts the gyroscope in sleep mode: the circuitry stays
// powered but no samples are produced, for fast wake-up.
func (d *Dev) SetGyroSleep(on bool) error {
	var v uint8
	if on {
		v = ctrl4SleepG
	}
	return d.updateReg(regCtrl4C, ctrl4SleepG, v)
}

// SetGyroSelfTest enables the gyroscope self-test actuation.
func (d *Dev) SetGyroSelfTest(m SelfTestMode) error {
	// Negative gyro self-test is code 0b11, unlike the accelerometer.
	v := uint8(m)
	if m == SelfTestNegative {
		v = 0x3
	}
	return d.updateReg(regCtrl5C, ctrl5STGMask, v<<2)
}
