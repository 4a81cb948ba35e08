package ism330dhcx

import "fmt"

// AccelODR selects the accelerometer output data rate (CTRL1_XL ODR_XL).
type AccelODR uint8

const (
	AccelODROff    AccelODR = 0x0
	AccelODR12Hz5  AccelODR = 0x1
	AccelODR26Hz   AccelODR = 0x2
	AccelODR52Hz   AccelODR = 0x3
	AccelODR104Hz  AccelODR = 0x4
	AccelODR208Hz  AccelODR = 0x5
	AccelODR416Hz  AccelODR = 0x6
	AccelODR833Hz  AccelODR = 0x7
	AccelODR1667Hz AccelODR = 0x8
	AccelODR3333Hz AccelODR = 0x9
	AccelODR6667Hz AccelODR = 0xA
	// AccelODR1Hz6 is available only with high-performance mode disabled.
	AccelODR1Hz6 AccelODR = 0xB
)

// rateHz returns the nominal rate of the code.
func (o AccelODR) rateHz() float64 {
	switch o {
	case AccelODR1Hz6:
		return 1.6
	case AccelODROff:
		return 0
	case AccelODR12Hz5:
		return 12.5
	case AccelODR26Hz:
		return 26
	case AccelODR52Hz:
		return 52
	case AccelODR104Hz:
		return 104
	case AccelODR208Hz:
		return 208
	case AccelODR416Hz:
		return 416
	case AccelODR833Hz:
		return 833
	case AccelODR1667Hz:
		return 1667
	case AccelODR3333Hz:
		return 3333
	case AccelODR6667Hz:
		return 6667
	}
	return 0
}

func (o AccelODR) String() string {
	if o == AccelODROff {
		return "off"
	}
	return fmt.Sprintf("%g Hz", o.rateHz())
}

// AccelFS selects the accelerometer full scale (CTRL1_XL FS_XL).
type AccelFS uint8

const (
	AccelFS2G  AccelFS = 0x0
	AccelFS16G AccelFS = 0x1
	AccelFS4G  AccelFS = 0x2
	AccelFS8G  AccelFS = 0x3
)

// SetAccelDataRate configures the accelerometer output data rate.
//
// When the finite-state machine or the machine-learning core is enabled,
// the requested rate is silently raised to the minimum rate the active
// block demands before it is written; the blocks sample the accelerometer
// chain at their own rate and a slower host rate would starve them. The
// FSM demand is checked first, then the MLC; the highest demand wins.
func (d *Dev) SetAccelDataRate(odr AccelODR) error {
	demand, err := d.embeddedRateDemand()
	if err != nil {
		return err
	}
	// The 1.6 Hz low-power code runs the chain at 12.5 Hz whenever an
	// embedded function is active, so it already satisfies a 12.5 Hz
	// demand and is kept.
	req := odr.rateHz()
	if odr == AccelODR1Hz6 {
		req = 12.5
	}
	if demand > req {
		odr = accelODRForHz(demand)
	}
	return d.updateReg(regCtrl1XL, ctrl1ODRMask, uint8(odr)<<4)
}

// embeddedRateDemand returns the highest data rate in Hz required by the
// enabled embedded blocks, or 0 when neither the FSM nor the MLC is
// enabled.
func (d *Dev) embeddedRateDemand() (float64, error) {
	var demand float64
	err := d.withBank(bankEmbedded, func() error {
		enA, err := d.readReg(embFSMEnableA)
		if err != nil {
			return err
		}
		enB, err := d.readReg(embFSMEnableB)
		if err != nil {
			return err
		}
		if enA != 0 || enB != 0 {
			v, err := d.readReg(embFuncODRCfgB)
			if err != nil {
				return err
			}
			demand = embeddedODRToHz((v & embFSMODRMask) >> 3)
		}
		en, err := d.readReg(embFuncEnB)
		if err != nil {
			return err
		}
		if en&embEnBMLC != 0 {
			v, err := d.readReg(embFuncODRCfgC)
			if err != nil {
				return err
			}
			if hz := embeddedODRToHz((v & embMLCODRMask) >> 4); hz > demand {
				demand = hz
			}
		}
		return nil
	})
	return demand, err
}

// embeddedODRToHz decodes the 2-bit FSM/MLC rate field.
func embeddedODRToHz(code uint8) float64 {
	switch code & 0x3 {
	case 0:
		return 12.5
	case 1:
		return 26
	case 2:
		return 52
	default:
		return 104
	}
}

// accelODRForHz returns the slowest accelerometer ODR of at least hz.
func accelODRForHz(hz float64) AccelODR {
	for _, o := range []AccelODR{AccelODR12Hz5, AccelODR26Hz, AccelODR52Hz, AccelODR104Hz} {
		if o.rateHz() >= hz {
			return o
		}
	}
	return AccelODR104Hz
}

// AccelDataRate reads back the configured accelerometer output data rate.
// The code 0xB means 1.6 Hz with high-performance mode disabled but 12.5 Hz
// with it enabled, so CTRL6_C is consulted for that code.
func (d *Dev) AccelDataRate() (AccelODR, error) {
	v, err := d.readReg(regCtrl1XL)
	if err != nil {
		return 0, err
	}
	odr := AccelODR(v >> 4)
	if odr != AccelODR1Hz6 {
		return odr, nil
	}
	hm, err := d.AccelHighPerformance()
	if err != nil {
		return 0, err
	}
	if hm {
		return AccelODR12Hz5, nil
	}
	return AccelODR1Hz6, nil
}

// SetAccelFullScale configures the accelerometer full scale.
func (d *Dev) SetAccelFullScale(fs AccelFS) error {
	return d.updateReg(regCtrl1XL, ctrl1FSXLMask, uint8(fs)<<2)
}

// AccelFullScale reads back the accelerometer full scale.
func (d *Dev) AccelFullScale() (AccelFS, error) {
	v, err := d.readReg(regCtrl1XL)
	if err != nil {
		return 0, err
	}
	return AccelFS((v & ctrl1FSXLMask) >> 2), nil
}

// SetAccelHighPerformance enables or disables the accelerometer
// high-performance mode. The CTRL6_C bit is inverted: set means disabled.
func (d *Dev) SetAccelHighPerformance(on bool) error {
	var v uint8
	if !on {
		v = ctrl6XLHMMode
	}
	return d.updateReg(regCtrl6C, ctrl6XLHMMode, v)
}

// AccelHighPerformance reports whether high-performance mode is enabled.
func (d *Dev) AccelHighPerformance() (bool, error) {
	v, err := d.readReg(regCtrl6C)
	if err != nil {
		return false, err
	}
	return v&ctrl6XLHMMode == 0, nil
}

// SetAccelLPF2 routes the accelerometer output through the LPF2 filter.
func (d *Dev) SetAccelLPF2(on bool) error {
	var v uint8
	if on {
		v = ctrl1LPF2XLEn
	}
	return d.updateReg(regCtrl1XL, ctrl1LPF2XLEn, v)
}

// AccelFilterBandwidth selects the accelerometer LPF2/high-pass bandwidth
// divider (CTRL8_XL HPCF_XL): the cutoff is ODR divided by the divider.
type AccelFilterBandwidth uint8

const (
	AccelBWODRDiv4   AccelFilterBandwidth = 0x0
	AccelBWODRDiv10  AccelFilterBandwidth = 0x1
	AccelBWODRDiv20  AccelFilterBandwidth = 0x2
	AccelBWODRDiv45  AccelFilterBandwidth = 0x3
	AccelBWODRDiv100 AccelFilterBandwidth = 0x4
	AccelBWODRDiv200 AccelFilterBandwidth = 0x5
	AccelBWODRDiv400 AccelFilterBandwidth = 0x6
	AccelBWODRDiv800 AccelFilterBandwidth = 0x7
)

// SetAccelFilterBandwidth configures the composite filter cutoff.
func (d *Dev) SetAccelFilterBandwidth(bw AccelFilterBandwidth) error {
	return d.updateReg(regCtrl8XL, ctrl8HPCFXLMask, uint8(bw)<<5)
}

// SetAccelHighPass switches the accelerometer slope/high-pass path on the
// output. refMode additionally enables reference mode (offset nulling on
// the first sample).
func (d *Dev) SetAccelHighPass(on, refMode bool) error {
	var v uint8
	if on {
		v |= ctrl8HPSlopeXLEn
	}
	if refMode {
		v |= ctrl8HPRefModeXL
	}
	return d.updateReg(regCtrl8XL, ctrl8HPSlopeXLEn|ctrl8HPRefModeXL, v)
}

// SetAccelFastSettling enables filter fast-settling after an ODR change.
func (d *Dev) SetAccelFastSettling(on bool) error {
	var v uint8
	if on {
		v = ctrl8FastSettlXL
	}
	return d.updateReg(regCtrl8XL, ctrl8FastSettlXL, v)
}

// SetLowPassOn6D filters the data feeding the 6D detection block with LPF2.
func (d *Dev) SetLowPassOn6D(on bool) error {
	var v uint8
	if on {
		v = ctrl8LowPassOn6D
	}
	return d.updateReg(regCtrl8XL, ctrl8LowPassOn6D, v)
}

// OffsetWeight selects the user offset LSB weight.
type OffsetWeight uint8

const (
	OffsetWeight1mg  OffsetWeight = 0 // 2^-10 g/LSB
	OffsetWeight16mg OffsetWeight = 1 // 2^-6 g/LSB
)

// SetAccelOffsets writes the user offset registers applied to the
// accelerometer output and selects their weight.
func (d *Dev) SetAccelOffsets(x, y, z int8, w OffsetWeight) error {
	var wv uint8
	if w == OffsetWeight16mg {
		wv = ctrl6UsrOffW
	}
	if err := d.updateReg(regCtrl6C, ctrl6UsrOffW, wv); err != nil {
		return err
	}
	if err := d.writeReg(regXOfsUsr, uint8(x)); err != nil {
		return err
	}
	if err := d.writeReg(regYOfsUsr, uint8(y)); err != nil {
		return err
	}
	return d.writeReg(regZOfsUsr, uint8(z))
}

// SetAccelOffsetsOnOutput applies (or bypasses) the user offsets on the
// output registers.
func (d *Dev) SetAccelOffsetsOnOutput(on bool) error {
	var v uint8
	if on {
		v = ctrl7UsrOffOnOut
	}
	return d.updateReg(regCtrl7G, ctrl7UsrOffOnOut, v)
}

// SelfTestMode drives the accelerometer or gyroscope self-test actuation.
type SelfTestMode uint8

const (
	SelfTestOff      SelfTestMode = 0x0
	SelfTestPositive SelfTestMode = 0x1
	SelfTestNegative SelfTestMode = 0x2
)

// SetAccelSelfTest enables the accelerometer self-test actuation.
func (d *Dev) SetAccelSelfTest(m SelfTestMode) error {
	return d.updateReg(regCtrl5C, ctrl5STXLMask, uint8(m))
}
