package ism330dhcx

import (
	"encoding/binary"
	"fmt"
)

// FIFOMode selects the FIFO operating mode (FIFO_CTRL4).
type FIFOMode uint8

const (
	FIFOBypass         FIFOMode = 0x0 // FIFO disabled
	FIFOFifo           FIFOMode = 0x1 // stop collecting when full
	FIFOStreamToFifo   FIFOMode = 0x3 // stream until trigger, then FIFO
	FIFOBypassToStream FIFOMode = 0x4 // bypass until trigger, then stream
	FIFOStream         FIFOMode = 0x6 // continuous, oldest overwritten
	FIFOBypassToFifo   FIFOMode = 0x7 // bypass until trigger, then FIFO
)

// FIFOBatchRate selects the per-sensor batch data rate (FIFO_CTRL3). The
// codes match the sensor ODR codes, plus the 1.6 Hz and 6.5 Hz low-power
// entries.
type FIFOBatchRate uint8

const (
	BatchOff    FIFOBatchRate = 0x0
	Batch12Hz5  FIFOBatchRate = 0x1
	Batch26Hz   FIFOBatchRate = 0x2
	Batch52Hz   FIFOBatchRate = 0x3
	Batch104Hz  FIFOBatchRate = 0x4
	Batch208Hz  FIFOBatchRate = 0x5
	Batch417Hz  FIFOBatchRate = 0x6
	Batch833Hz  FIFOBatchRate = 0x7
	Batch1667Hz FIFOBatchRate = 0x8
	Batch3333Hz FIFOBatchRate = 0x9
	Batch6667Hz FIFOBatchRate = 0xA
	Batch1Hz6   FIFOBatchRate = 0xB // accelerometer only
	Batch6Hz5   FIFOBatchRate = 0xB // gyroscope only
)

// SetFIFOWatermark sets the 9-bit FIFO watermark in records. The threshold
// spans FIFO_CTRL1 and bit 0 of FIFO_CTRL2; both writes must land, low
// byte first.
func (d *Dev) SetFIFOWatermark(wtm uint16) error {
	if wtm > 0x1FF {
		return fmt.Errorf("ism330dhcx: fifo watermark %d out of range (max 511)", wtm)
	}
	if err := d.writeReg(regFIFOCtrl1, uint8(wtm)); err != nil {
		return err
	}
	return d.updateReg(regFIFOCtrl2, fifo2WTM8, uint8(wtm>>8))
}

// FIFOWatermark reads back the 9-bit watermark.
func (d *Dev) FIFOWatermark() (uint16, error) {
	lo, err := d.readReg(regFIFOCtrl1)
	if err != nil {
		return 0, err
	}
	hi, err := d.readReg(regFIFOCtrl2)
	if err != nil {
		return 0, err
	}
	return uint16(hi&fifo2WTM8)<<8 | uint16(lo), nil
}

// SetFIFOStopOnWatermark limits the FIFO depth to the watermark.
func (d *Dev) SetFIFOStopOnWatermark(on bool) error {
	var v uint8
	if on {
		v = fifo2StopOnWTM
	}
	return d.updateReg(regFIFOCtrl2, fifo2StopOnWTM, v)
}

// SetFIFOMode configures the FIFO operating mode.
func (d *Dev) SetFIFOMode(m FIFOMode) error {
	return d.updateReg(regFIFOCtrl4, fifo4ModeMask, uint8(m))
}

// FIFOMode reads back the FIFO operating mode.
func (d *Dev) FIFOMode() (FIFOMode, error) {
	v, err := d.readReg(regFIFOCtrl4)
	if err != nil {
		return 0, err
	}
	return FIFOMode(v & fifo4ModeMask), nil
}

// SetFIFOAccelBatchRate configures the accelerometer batch data rate.
func (d *Dev) SetFIFOAccelBatchRate(r FIFOBatchRate) error {
	return d.updateReg(regFIFOCtrl3, fifo3BDRXLMask, uint8(r))
}

// SetFIFOGyroBatchRate configures the gyroscope batch data rate.
func (d *Dev) SetFIFOGyroBatchRate(r FIFOBatchRate) error {
	return d.updateReg(regFIFOCtrl3, fifo3BDRGYMask, uint8(r)<<4)
}

// FIFOTempBatchRate selects the temperature batch rate (FIFO_CTRL4).
type FIFOTempBatchRate uint8

const (
	TempBatchOff   FIFOTempBatchRate = 0x0
	TempBatch1Hz6  FIFOTempBatchRate = 0x1
	TempBatch12Hz5 FIFOTempBatchRate = 0x2
	TempBatch52Hz  FIFOTempBatchRate = 0x3
)

// SetFIFOTempBatchRate configures temperature batching.
func (d *Dev) SetFIFOTempBatchRate(r FIFOTempBatchRate) error {
	return d.updateReg(regFIFOCtrl4, fifo4ODRTMask, uint8(r)<<4)
}

// TimestampDecimation selects how often timestamp records are batched
// relative to the fastest batched sensor.
type TimestampDecimation uint8

const (
	TSDecimationOff TimestampDecimation = 0x0
	TSDecimation1   TimestampDecimation = 0x1
	TSDecimation8   TimestampDecimation = 0x2
	TSDecimation32  TimestampDecimation = 0x3
)

// SetFIFOTimestampDecimation configures timestamp batching.
func (d *Dev) SetFIFOTimestampDecimation(dec TimestampDecimation) error {
	return d.updateReg(regFIFOCtrl4, fifo4DecTSMask, uint8(dec)<<6)
}

// SetFIFOCompression enables the on-chip compression algorithm. The
// embedded-functions FIFO_COMPR_EN bit and the runtime enable in
// FIFO_CTRL2 are switched together, as the algorithm needs both.
func (d *Dev) SetFIFOCompression(on bool) error {
	err := d.withBank(bankEmbedded, func() error {
		var v uint8
		if on {
			v = embEnBFIFOCompr
		}
		return d.updateReg(embFuncEnB, embEnBFIFOCompr, v)
	})
	if err != nil {
		return err
	}
	var v uint8
	if on {
		v = fifo2ComprRTEn
	}
	return d.updateReg(regFIFOCtrl2, fifo2ComprRTEn, v)
}

// SetFIFOUncompressedRate forces an uncompressed record every 8, 16 or 32
// batched records (0 disables the forcing).
func (d *Dev) SetFIFOUncompressedRate(code uint8) error {
	return d.updateReg(regFIFOCtrl2, fifo2UncoptrMask, code<<1)
}

// SetFIFOODRChangeBatched batches the ODR-change virtual sensor so rate
// changes can be reconstructed from the stream.
func (d *Dev) SetFIFOODRChangeBatched(on bool) error {
	var v uint8
	if on {
		v = fifo2ODRChgEn
	}
	return d.updateReg(regFIFOCtrl2, fifo2ODRChgEn, v)
}

// FIFOStatus holds the decoded FIFO_STATUS1/2 pair.
type FIFOStatus struct {
	Level          uint16 // unread records
	Watermark      bool
	Overrun        bool
	Full           bool
	CounterBDR     bool
	OverrunLatched bool
}

// FIFOStatus reads the FIFO fill level and flags. The two status bytes are
// read in one burst so the 10-bit level cannot tear.
func (d *Dev) FIFOStatus() (FIFOStatus, error) {
	var b [2]byte
	if err := d.t.ReadRegister(regFIFOStatus1, b[:]); err != nil {
		return FIFOStatus{}, err
	}
	return FIFOStatus{
		Level:          uint16(b[1]&fifoStatus2DiffMask)<<8 | uint16(b[0]),
		Watermark:      b[1]&fifoStatus2WTM != 0,
		Overrun:        b[1]&fifoStatus2Ovr != 0,
		Full:           b[1]&fifoStatus2Full != 0,
		CounterBDR:     b[1]&fifoStatus2CntBDR != 0,
		OverrunLatched: b[1]&fifoStatus2OvrLatch != 0,
	}, nil
}

// FIFOTag identifies the sensor a FIFO record belongs to.
type FIFOTag uint8

const (
	TagGyroNC        FIFOTag = 0x01
	TagAccelNC       FIFOTag = 0x02
	TagTemperature   FIFOTag = 0x03
	TagTimestamp     FIFOTag = 0x04
	TagCfgChange     FIFOTag = 0x05
	TagAccelNCT2     FIFOTag = 0x06
	TagAccelNCT1     FIFOTag = 0x07
	TagAccel2xC      FIFOTag = 0x08
	TagAccel3xC      FIFOTag = 0x09
	TagGyroNCT2      FIFOTag = 0x0A
	TagGyroNCT1      FIFOTag = 0x0B
	TagGyro2xC       FIFOTag = 0x0C
	TagGyro3xC       FIFOTag = 0x0D
	TagSensorHub0    FIFOTag = 0x0E
	TagSensorHub1    FIFOTag = 0x0F
	TagSensorHub2    FIFOTag = 0x10
	TagSensorHub3    FIFOTag = 0x11
	TagStepCounter   FIFOTag = 0x12
	TagSensorHubNack FIFOTag = 0x19
)

func (t FIFOTag) String() string {
	switch t {
	case TagGyroNC:
		return "gyro"
	case TagAccelNC:
		return "accel"
	case TagTemperature:
		return "temperature"
	case TagTimestamp:
		return "timestamp"
	case TagCfgChange:
		return "cfg-change"
	case TagAccelNCT2:
		return "accel-t2"
	case TagAccelNCT1:
		return "accel-t1"
	case TagAccel2xC:
		return "accel-2xc"
	case TagAccel3xC:
		return "accel-3xc"
	case TagGyroNCT2:
		return "gyro-t2"
	case TagGyroNCT1:
		return "gyro-t1"
	case TagGyro2xC:
		return "gyro-2xc"
	case TagGyro3xC:
		return "gyro-3xc"
	case TagSensorHub0:
		return "sensorhub-0"
	case TagSensorHub1:
		return "sensorhub-1"
	case TagSensorHub2:
		return "sensorhub-2"
	case TagSensorHub3:
		return "sensorhub-3"
	case TagStepCounter:
		return "step-counter"
	case TagSensorHubNack:
		return "sensorhub-nack"
	}
	return fmt.Sprintf("tag-0x%02X", uint8(t))
}

// FIFORecord is one tagged FIFO entry: the sensor tag, its 2-bit parity
// counter, and the 6 data bytes.
type FIFORecord struct {
	Tag     FIFOTag
	Counter uint8
	Data    [6]byte
}

// XYZ decodes the data bytes as a little-endian sample triple.
func (r FIFORecord) XYZ() (x, y, z int16) {
	x = int16(binary.LittleEndian.Uint16(r.Data[0:2]))
	y = int16(binary.LittleEndian.Uint16(r.Data[2:4]))
	z = int16(binary.LittleEndian.Uint16(r.Data[4:6]))
	return
}

// ReadFIFORecord pops one record from the FIFO output registers.
func (d *Dev) ReadFIFORecord() (FIFORecord, error) {
	var b [7]byte
	if err := d.t.ReadRegister(regFIFODataTag, b[:]); err != nil {
		return FIFORecord{}, err
	}
	rec := FIFORecord{
		Tag:     FIFOTag(b[0] >> 3),
		Counter: (b[0] >> 1) & 0x3,
	}
	copy(rec.Data[:], b[1:])
	return rec, nil
}

// SetCounterBDRThreshold sets the 11-bit batch-event counter threshold
// used for the CNT_BDR interrupt.
func (d *Dev) SetCounterBDRThreshold(th uint16) error {
	if th > 0x7FF {
		return fmt.Errorf("ism330dhcx: counter bdr threshold %d out of range (max 2047)", th)
	}
	if err := d.updateReg(regCounterBDR1, cntBDR1THMask, uint8(th>>8)); err != nil {
		return err
	}
	return d.writeReg(regCounterBDR2, uint8(th))
}

// SetCounterBDRTriggerGyro counts gyroscope batch events instead of
// accelerometer ones.
func (d *Dev) SetCounterBDRTriggerGyro(on bool) error {
	var v uint8
	if on {
		v = cntBDR1TrigMask
	}
	return d.updateReg(regCounterBDR1, cntBDR1TrigMask, v)
}

// ResetCounterBDR resets the batch-event counter.
func (d *Dev) ResetCounterBDR() error {
	return d.updateReg(regCounterBDR1, cntBDR1RstCnt, cntBDR1RstCnt)
}

// SetDataReadyPulsed switches the data-ready signal from latched to a
// 75 µs pulse.
func (d *Dev) SetDataReadyPulsed(on bool) error {
	var v uint8
	if on {
		v = cntBDR1DRDYPulse
	}
	return d.updateReg(regCounterBDR1, cntBDR1DRDYPulse, v)
}

// SetStepCounterBatched batches step-counter records (tag step-counter)
// into the FIFO.
func (d *Dev) SetStepCounterBatched(on bool) error {
	return d.withBank(bankEmbedded, func() error {
		var v uint8
		if on {
			v = embPedoFIFOEn
		}
		return d.updateReg(embFuncFIFOCfg, embPedoFIFOEn, v)
	})
}
