package ism330dhcx

// PinIntRoute describes every signal that can be routed to an interrupt
// pin. Data-ready and FIFO sources live in INT1_CTRL/INT2_CTRL, event
// sources in MD1_CFG/MD2_CFG, and the embedded-function, FSM and MLC
// sources in the embedded bank routing registers.
type PinIntRoute struct {
	// INTx_CTRL sources.
	DataReadyAccel bool
	DataReadyGyro  bool
	Boot           bool // INT1 only
	DataReadyTemp  bool // INT2 only
	FIFOThreshold  bool
	FIFOOverrun    bool
	FIFOFull       bool
	CounterBDR     bool
	DENDataReady   bool // INT1 only

	// MDx_CFG sources.
	SensorHub   bool
	SixD        bool
	DoubleTap   bool
	FreeFall    bool
	WakeUp      bool
	SingleTap   bool
	SleepChange bool

	// Embedded bank sources.
	StepDetected      bool
	Tilt              bool
	SignificantMotion bool
	FSMLongCounter    bool
	FSM               [16]bool
	MLC               [8]bool
}

// anyEmbedded reports whether any embedded-bank source is routed.
func (r PinIntRoute) anyEmbedded() bool {
	if r.StepDetected || r.Tilt || r.SignificantMotion || r.FSMLongCounter {
		return true
	}
	for _, on := range r.FSM {
		if on {
			return true
		}
	}
	for _, on := range r.MLC {
		if on {
			return true
		}
	}
	return false
}

// anyEvent reports whether any MDx_CFG source needs the global
// INTERRUPTS_ENABLE bit.
func (r PinIntRoute) anyEvent() bool {
	return r.SixD || r.DoubleTap || r.FreeFall || r.WakeUp ||
		r.SingleTap || r.SleepChange || r.anyEmbedded()
}

func (r PinIntRoute) embFuncBits() uint8 {
	var v uint8
	if r.StepDetected {
		v |= embIntStep
	}
	if r.Tilt {
		v |= embIntTilt
	}
	if r.SignificantMotion {
		v |= embIntSigMotion
	}
	if r.FSMLongCounter {
		v |= embIntFSMLC
	}
	return v
}

func (r PinIntRoute) fsmBits() (a, b uint8) {
	for i := 0; i < 8; i++ {
		if r.FSM[i] {
			a |= 1 << i
		}
		if r.FSM[i+8] {
			b |= 1 << i
		}
	}
	return
}

func (r PinIntRoute) mlcBits() uint8 {
	var v uint8
	for i, on := range r.MLC {
		if on {
			v |= 1 << i
		}
	}
	return v
}

func (r PinIntRoute) mdBits() uint8 {
	var v uint8
	if r.SixD {
		v |= md6D
	}
	if r.DoubleTap {
		v |= mdDoubleTap
	}
	if r.FreeFall {
		v |= mdFreeFall
	}
	if r.WakeUp {
		v |= mdWakeUp
	}
	if r.SingleTap {
		v |= mdSingleTap
	}
	if r.SleepChange {
		v |= mdSleepChange
	}
	if r.SensorHub {
		v |= mdSHUB
	}
	if r.anyEmbedded() {
		v |= mdEmbFunc
	}
	return v
}

func decodeMDBits(v uint8, r *PinIntRoute) {
	r.SensorHub = v&mdSHUB != 0
	r.SixD = v&md6D != 0
	r.DoubleTap = v&mdDoubleTap != 0
	r.FreeFall = v&mdFreeFall != 0
	r.WakeUp = v&mdWakeUp != 0
	r.SingleTap = v&mdSingleTap != 0
	r.SleepChange = v&mdSleepChange != 0
}

func decodeEmbBits(v uint8, r *PinIntRoute) {
	r.StepDetected = v&embIntStep != 0
	r.Tilt = v&embIntTilt != 0
	r.SignificantMotion = v&embIntSigMotion != 0
	r.FSMLongCounter = v&embIntFSMLC != 0
}

func decodeFSMBits(a, b uint8, r *PinIntRoute) {
	for i := 0; i < 8; i++ {
		r.FSM[i] = a&(1<<i) != 0
		r.FSM[i+8] = b&(1<<i) != 0
	}
}

func decodeMLCBits(v uint8, r *PinIntRoute) {
	for i := 0; i < 8; i++ {
		r.MLC[i] = v&(1<<i) != 0
	}
}

// SetPinInt1Route writes the complete INT1 routing in one call. The global
// INTERRUPTS_ENABLE bit is switched on exactly when an event or embedded
// source is routed on either pin, and off when none remains.
func (d *Dev) SetPinInt1Route(r PinIntRoute) error {
	err := d.withBank(bankEmbedded, func() error {
		if err := d.writeReg(embFuncInt1, r.embFuncBits()); err != nil {
			return err
		}
		a, b := r.fsmBits()
		if err := d.writeReg(embFSMInt1A, a); err != nil {
			return err
		}
		if err := d.writeReg(embFSMInt1B, b); err != nil {
			return err
		}
		return d.writeReg(embMLCInt1, r.mlcBits())
	})
	if err != nil {
		return err
	}

	var ctrl uint8
	if r.DataReadyAccel {
		ctrl |= int1DrdyXL
	}
	if r.DataReadyGyro {
		ctrl |= int1DrdyG
	}
	if r.Boot {
		ctrl |= int1Boot
	}
	if r.FIFOThreshold {
		ctrl |= int1FIFOTh
	}
	if r.FIFOOverrun {
		ctrl |= int1FIFOOvr
	}
	if r.FIFOFull {
		ctrl |= int1FIFOFull
	}
	if r.CounterBDR {
		ctrl |= int1CntBDR
	}
	if r.DENDataReady {
		ctrl |= int1DENDrdy
	}
	if err := d.writeReg(regInt1Ctrl, ctrl); err != nil {
		return err
	}
	if err := d.writeReg(regMD1Cfg, r.mdBits()); err != nil {
		return err
	}
	return d.syncInterruptsEnable(r.anyEvent(), regMD2Cfg)
}

// SetPinInt2Route writes the complete INT2 routing in one call.
func (d *Dev) SetPinInt2Route(r PinIntRoute) error {
	err := d.withBank(bankEmbedded, func() error {
		if err := d.writeReg(embFuncInt2, r.embFuncBits()); err != nil {
			return err
		}
		a, b := r.fsmBits()
		if err := d.writeReg(embFSMInt2A, a); err != nil {
			return err
		}
		if err := d.writeReg(embFSMInt2B, b); err != nil {
			return err
		}
		return d.writeReg(embMLCInt2, r.mlcBits())
	})
	if err != nil {
		return err
	}

	var ctrl uint8
	if r.DataReadyAccel {
		ctrl |= int2DrdyXL
	}
	if r.DataReadyGyro {
		ctrl |= int2DrdyG
	}
	if r.DataReadyTemp {
		ctrl |= int2DrdyTemp
	}
	if r.FIFOThreshold {
		ctrl |= int2FIFOTh
	}
	if r.FIFOOverrun {
		ctrl |= int2FIFOOvr
	}
	if r.FIFOFull {
		ctrl |= int2FIFOFull
	}
	if r.CounterBDR {
		ctrl |= int2CntBDR
	}
	if err := d.writeReg(regInt2Ctrl, ctrl); err != nil {
		return err
	}
	if err := d.writeReg(regMD2Cfg, r.mdBits()); err != nil {
		return err
	}
	return d.syncInterruptsEnable(r.anyEvent(), regMD1Cfg)
}

// syncInterruptsEnable sets INTERRUPTS_ENABLE when this pin needs it, and
// clears it only when the other pin's MD register routes nothing either.
func (d *Dev) syncInterruptsEnable(need bool, otherMD uint8) error {
	if !need {
		other, err := d.readReg(otherMD)
		if err != nil {
			return err
		}
		need = other != 0
	}
	var v uint8
	if need {
		v = tap2IntEnable
	}
	return d.updateReg(regTapCfg2, tap2IntEnable, v)
}

// PinInt1Route reads back the complete INT1 routing.
func (d *Dev) PinInt1Route() (PinIntRoute, error) {
	var r PinIntRoute
	err := d.withBank(bankEmbedded, func() error {
		v, err := d.readReg(embFuncInt1)
		if err != nil {
			return err
		}
		decodeEmbBits(v, &r)
		a, err := d.readReg(embFSMInt1A)
		if err != nil {
			return err
		}
		b, err := d.readReg(embFSMInt1B)
		if err != nil {
			return err
		}
		decodeFSMBits(a, b, &r)
		m, err := d.readReg(embMLCInt1)
		if err != nil {
			return err
		}
		decodeMLCBits(m, &r)
		return nil
	})
	if err != nil {
		return PinIntRoute{}, err
	}
	ctrl, err := d.readReg(regInt1Ctrl)
	if err != nil {
		return PinIntRoute{}, err
	}
	r.DataReadyAccel = ctrl&int1DrdyXL != 0
	r.DataReadyGyro = ctrl&int1DrdyG != 0
	r.Boot = ctrl&int1Boot != 0
	r.FIFOThreshold = ctrl&int1FIFOTh != 0
	r.FIFOOverrun = ctrl&int1FIFOOvr != 0
	r.FIFOFull = ctrl&int1FIFOFull != 0
	r.CounterBDR = ctrl&int1CntBDR != 0
	r.DENDataReady = ctrl&int1DENDrdy != 0
	md, err := d.readReg(regMD1Cfg)
	if err != nil {
		return PinIntRoute{}, err
	}
	decodeMDBits(md, &r)
	return r, nil
}

// PinInt2Route reads back the complete INT2 routing.
func (d *Dev) PinInt2Route() (PinIntRoute, error) {
	var r PinIntRoute
	err := d.withBank(bankEmbedded, func() error {
		v, err := d.readReg(embFuncInt2)
		if err != nil {
			return err
		}
		decodeEmbBits(v, &r)
		a, err := d.readReg(embFSMInt2A)
		if err != nil {
			return err
		}
		b, err := d.readReg(embFSMInt2B)
		if err != nil {
			return err
		}
		decodeFSMBits(a, b, &r)
		m, err := d.readReg(embMLCInt2)
		if err != nil {
			return err
		}
		decodeMLCBits(m, &r)
		return nil
	})
	if err != nil {
		return PinIntRoute{}, err
	}
	ctrl, err := d.readReg(regInt2Ctrl)
	if err != nil {
		return PinIntRoute{}, err
	}
	r.DataReadyAccel = ctrl&int2DrdyXL != 0
	r.DataReadyGyro = ctrl&int2DrdyG != 0
	r.DataReadyTemp = ctrl&int2DrdyTemp != 0
	r.FIFOThreshold = ctrl&int2FIFOTh != 0
	r.FIFOOverrun = ctrl&int2FIFOOvr != 0
	r.FIFOFull = ctrl&int2FIFOFull != 0
	r.CounterBDR = ctrl&int2CntBDR != 0
	md, err := d.readReg(regMD2Cfg)
	if err != nil {
		return PinIntRoute{}, err
	}
	decodeMDBits(md, &r)
	return r, nil
}

// SetInt2OnInt1 mirrors every INT2 source onto the INT1 pad.
func (d *Dev) SetInt2OnInt1(on bool) error {
	var v uint8
	if on {
		v = ctrl4Int2OnInt1
	}
	return d.updateReg(regCtrl4C, ctrl4Int2OnInt1, v)
}

// SetInterruptActiveLow makes both interrupt pads active low.
func (d *Dev) SetInterruptActiveLow(on bool) error {
	var v uint8
	if on {
		v = ctrl3HLActive
	}
	return d.updateReg(regCtrl3C, ctrl3HLActive, v)
}

// SetInterruptOpenDrain switches both interrupt pads to open drain.
func (d *Dev) SetInterruptOpenDrain(on bool) error {
	var v uint8
	if on {
		v = ctrl3PPOD
	}
	return d.updateReg(regCtrl3C, ctrl3PPOD, v)
}

// SetLatchedInterrupts latches the event interrupt signals until the
// corresponding source register is read.
func (d *Dev) SetLatchedInterrupts(on bool) error {
	var v uint8
	if on {
		v = tap0LIR
	}
	return d.updateReg(regTapCfg0, tap0LIR, v)
}

// AllSources aggregates every latched event source register.
type AllSources struct {
	FreeFall       bool
	WakeUp         bool
	WakeUpX        bool
	WakeUpY        bool
	WakeUpZ        bool
	SleepState     bool
	SleepChange    bool
	SingleTap      bool
	DoubleTap      bool
	TapX           bool
	TapY           bool
	TapZ           bool
	TapSign        bool
	SixD           bool
	SixDXL         bool
	SixDXH         bool
	SixDYL         bool
	SixDYH         bool
	SixDZL         bool
	SixDZH         bool
	SensorHubEndOp bool
	Timestamp      bool
}

// ReadAllSources reads and decodes ALL_INT_SRC, WAKE_UP_SRC, TAP_SRC and
// D6D_SRC in one burst.
func (d *Dev) ReadAllSources() (AllSources, error) {
	var b [4]byte
	if err := d.t.ReadRegister(regAllIntSrc, b[:]); err != nil {
		return AllSources{}, err
	}
	all, wu, tap, d6d := b[0], b[1], b[2], b[3]
	return AllSources{
		FreeFall:       all&allIntFF != 0,
		WakeUp:         wu&wuSrcWU != 0,
		WakeUpX:        wu&wuSrcX != 0,
		WakeUpY:        wu&wuSrcY != 0,
		WakeUpZ:        wu&wuSrcZ != 0,
		SleepState:     wu&wuSrcSleepState != 0,
		SleepChange:    wu&wuSrcSleepChange != 0,
		SingleTap:      tap&tapSrcSingle != 0,
		DoubleTap:      tap&tapSrcDouble != 0,
		TapX:           tap&tapSrcX != 0,
		TapY:           tap&tapSrcY != 0,
		TapZ:           tap&tapSrcZ != 0,
		TapSign:        tap&tapSrcSign != 0,
		SixD:           d6d&d6dIA != 0,
		SixDXL:         d6d&d6dXL != 0,
		SixDXH:         d6d&d6dXH != 0,
		SixDYL:         d6d&d6dYL != 0,
		SixDYH:         d6d&d6dYH != 0,
		SixDZL:         d6d&d6dZL != 0,
		SixDZH:         d6d&d6dZH != 0,
		SensorHubEndOp: all&allIntShubEndOp != 0,
		Timestamp:      all&allIntTimestamp != 0,
	}, nil
}
