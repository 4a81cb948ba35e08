package ism330dhcx

// User bank register map.
const (
	regFuncCfgAccess  = 0x01 // Embedded functions / sensor hub bank select
	regPinCtrl        = 0x02 // SDO and OIS pull-up control
	regFIFOCtrl1      = 0x07 // FIFO watermark [7:0]
	regFIFOCtrl2      = 0x08 // FIFO watermark [8], compression, stop-on-wtm
	regFIFOCtrl3      = 0x09 // FIFO accel/gyro batch data rates
	regFIFOCtrl4      = 0x0A // FIFO mode, temperature/timestamp batching
	regCounterBDR1    = 0x0B // Batch counter threshold [10:8], trigger select
	regCounterBDR2    = 0x0C // Batch counter threshold [7:0]
	regInt1Ctrl       = 0x0D // INT1 pin control
	regInt2Ctrl       = 0x0E // INT2 pin control
	regWhoAmI         = 0x0F // Device ID, fixed 0x6B
	regCtrl1XL        = 0x10 // Accelerometer ODR, full scale, LPF2 enable
	regCtrl2G         = 0x11 // Gyroscope ODR, full scale
	regCtrl3C         = 0x12 // BDU, IF_INC, SPI mode, INT polarity, reset, boot
	regCtrl4C         = 0x13 // Gyro LPF1, I2C disable, DRDY mask, gyro sleep
	regCtrl5C         = 0x14 // Self-test, rounding
	regCtrl6C         = 0x15 // Gyro LPF1 bandwidth, XL offset weight, XL HP mode, DEN
	regCtrl7G         = 0x16 // Gyro HP filter, OIS, XL user offset on output
	regCtrl8XL        = 0x17 // Accelerometer filter chain
	regCtrl9XL        = 0x18 // DEN stamping, I3C disable
	regCtrl10C        = 0x19 // Timestamp enable
	regAllIntSrc      = 0x1A // Latched interrupt source summary
	regWakeUpSrc      = 0x1B // Wake-up / activity source
	regTapSrc         = 0x1C // Tap source
	regD6DSrc         = 0x1D // 6D orientation source
	regStatus         = 0x1E // Data-ready flags
	regOutTempL       = 0x20 // Temperature output (2 bytes, two's complement)
	regOutXLG         = 0x22 // Gyro output, X low byte (6 bytes)
	regOutXLA         = 0x28 // Accel output, X low byte (6 bytes)
	regEmbFuncStatusM = 0x35 // Embedded function status, main page mirror
	regFSMStatusAM    = 0x36 // FSM 1-8 status, main page mirror
	regFSMStatusBM    = 0x37 // FSM 9-16 status, main page mirror
	regMLCStatusM     = 0x38 // MLC status, main page mirror
	regStatusMasterM  = 0x39 // Sensor hub status, main page mirror
	regFIFOStatus1    = 0x3A // FIFO sample count [7:0]
	regFIFOStatus2    = 0x3B // FIFO sample count [9:8], FIFO flags
	regTimestamp0     = 0x40 // Timestamp (4 bytes, 25 µs LSB)
	regTapCfg0        = 0x56 // Tap axes, latched interrupts, filter routing
	regTapCfg1        = 0x57 // Tap X threshold, tap priority
	regTapCfg2        = 0x58 // Tap Y threshold, inactivity, interrupts enable
	regTapThs6D       = 0x59 // Tap Z threshold, 6D threshold, 4D enable
	regIntDur2        = 0x5A // Tap shock/quiet/duration
	regWakeUpThs      = 0x5B // Wake-up threshold, single/double tap select
	regWakeUpDur      = 0x5C // Wake-up / sleep durations
	regFreeFall       = 0x5D // Free-fall threshold and duration
	regMD1Cfg         = 0x5E // Function routing to INT1
	regMD2Cfg         = 0x5F // Function routing to INT2
	regI3CBusAvb      = 0x62 // I3C bus available time
	regInternalFreq   = 0x63 // Internal frequency trim (signed)
	regXOfsUsr        = 0x73 // Accelerometer X user offset
	regYOfsUsr        = 0x74 // Accelerometer Y user offset
	regZOfsUsr        = 0x75 // Accelerometer Z user offset
	regFIFODataTag    = 0x78 // FIFO output tag
	regFIFODataXL     = 0x79 // FIFO output data (6 bytes)
)

// FUNC_CFG_ACCESS bits.
const (
	funcCfgShubAccess = 0x40
	funcCfgEmbAccess  = 0x80
)

// CTRL1_XL bits.
const (
	ctrl1LPF2XLEn = 0x02
	ctrl1FSXLMask = 0x0C
	ctrl1ODRMask  = 0xF0
)

// CTRL2_G bits.
const (
	ctrl2FS4000  = 0x01
	ctrl2FS125   = 0x02
	ctrl2FSGMask = 0x0C
	ctrl2ODRMask = 0xF0
)

// CTRL3_C bits.
const (
	ctrl3SWReset  = 0x01
	ctrl3IFInc    = 0x04
	ctrl3SIM      = 0x08
	ctrl3PPOD     = 0x10
	ctrl3HLActive = 0x20
	ctrl3BDU      = 0x40
	ctrl3Boot     = 0x80
)

// CTRL4_C bits.
const (
	ctrl4LPF1SelG   = 0x02
	ctrl4I2CDisable = 0x04
	ctrl4DRDYMask   = 0x08
	ctrl4Int2OnInt1 = 0x20
	ctrl4SleepG     = 0x40
)

// CTRL5_C bits.
const (
	ctrl5STXLMask     = 0x03
	ctrl5STGMask      = 0x0C
	ctrl5RoundingMask = 0x60
)

// CTRL6_C bits.
const (
	ctrl6FTypeMask  = 0x07
	ctrl6UsrOffW    = 0x08
	ctrl6XLHMMode   = 0x10 // 1 = high-performance disabled
	ctrl6DENModeMsk = 0xE0
)

// CTRL7_G bits.
const (
	ctrl7OISOn       = 0x01
	ctrl7UsrOffOnOut = 0x02
	ctrl7OISOnEn     = 0x04
	ctrl7HPMGMask    = 0x30
	ctrl7HPENG       = 0x40
	ctrl7GHMMode     = 0x80 // 1 = high-performance disabled
)

// CTRL8_XL bits.
const (
	ctrl8LowPassOn6D = 0x01
	ctrl8XLFSMode    = 0x02
	ctrl8HPSlopeXLEn = 0x04
	ctrl8FastSettlXL = 0x08
	ctrl8HPRefModeXL = 0x10
	ctrl8HPCFXLMask  = 0xE0
)

// CTRL9_XL bits.
const (
	ctrl9I3CDisable = 0x02
	ctrl9DENLH      = 0x04
	ctrl9DENXLEn    = 0x08
	ctrl9DENXLG     = 0x10
	ctrl9DENZ       = 0x20
	ctrl9DENY       = 0x40
	ctrl9DENX       = 0x80
)

// CTRL10_C bits.
const (
	ctrl10TimestampEn = 0x20
)

// STATUS_REG bits.
const (
	statusXLDA = 0x01
	statusGDA  = 0x02
	statusTDA  = 0x04
)

// FIFO_CTRL2 bits.
const (
	fifo2WTM8        = 0x01
	fifo2UncoptrMask = 0x06
	fifo2ODRChgEn    = 0x10
	fifo2ComprRTEn   = 0x40
	fifo2StopOnWTM   = 0x80
)

// FIFO_CTRL3 bits.
const (
	fifo3BDRXLMask = 0x0F
	fifo3BDRGYMask = 0xF0
)

// FIFO_CTRL4 bits.
const (
	fifo4ModeMask  = 0x07
	fifo4ODRTMask  = 0x30
	fifo4DecTSMask = 0xC0
)

// COUNTER_BDR_REG1 bits.
const (
	cntBDR1THMask    = 0x07
	cntBDR1TrigMask  = 0x20
	cntBDR1RstCnt    = 0x40
	cntBDR1DRDYPulse = 0x80
)

// FIFO_STATUS2 bits.
const (
	fifoStatus2DiffMask = 0x03
	fifoStatus2OvrLatch = 0x08
	fifoStatus2CntBDR   = 0x10
	fifoStatus2Full     = 0x20
	fifoStatus2Ovr      = 0x40
	fifoStatus2WTM      = 0x80
)

// INT1_CTRL bits.
const (
	int1DrdyXL   = 0x01
	int1DrdyG    = 0x02
	int1Boot     = 0x04
	int1FIFOTh   = 0x08
	int1FIFOOvr  = 0x10
	int1FIFOFull = 0x20
	int1CntBDR   = 0x40
	int1DENDrdy  = 0x80
)

// INT2_CTRL bits.
const (
	int2DrdyXL   = 0x01
	int2DrdyG    = 0x02
	int2DrdyTemp = 0x04
	int2FIFOTh   = 0x08
	int2FIFOOvr  = 0x10
	int2FIFOFull = 0x20
	int2CntBDR   = 0x40
)

// MD1_CFG / MD2_CFG bits (same layout on both pins).
const (
	mdSHUB        = 0x01
	mdEmbFunc     = 0x02
	md6D          = 0x04
	mdDoubleTap   = 0x08
	mdFreeFall    = 0x10
	mdWakeUp      = 0x20
	mdSingleTap   = 0x40
	mdSleepChange = 0x80
)

// TAP_CFG0 bits.
const (
	tap0LIR              = 0x01
	tap0TapZEn           = 0x02
	tap0TapYEn           = 0x04
	tap0TapXEn           = 0x08
	tap0SlopeFDS         = 0x10
	tap0SleepStatusOnInt = 0x20
	tap0IntClrOnRead     = 0x40
)

// TAP_CFG1 bits.
const (
	tap1THSXMask     = 0x1F
	tap1PriorityMask = 0xE0
)

// TAP_CFG2 bits.
const (
	tap2THSYMask    = 0x1F
	tap2InactEnMask = 0x60
	tap2IntEnable   = 0x80
)

// TAP_THS_6D bits.
const (
	tapThsZMask = 0x1F
	sixdTHSMask = 0x60
	d4dEn       = 0x80
)

// INT_DUR2 bits.
const (
	durShockMask = 0x03
	durQuietMask = 0x0C
	durDurMask   = 0xF0
)

// WAKE_UP_THS bits.
const (
	wkThsMask      = 0x3F
	wkUsrOffOnWU   = 0x40
	wkSingleDouble = 0x80
)

// WAKE_UP_DUR bits.
const (
	wkSleepDurMask = 0x0F
	wkThsWeight    = 0x10
	wkWakeDurMask  = 0x60
	wkFFDur5       = 0x80
)

// FREE_FALL bits.
const (
	ffThsMask = 0x07
	ffDurMask = 0xF8
)

// ALL_INT_SRC bits.
const (
	allIntFF          = 0x01
	allIntWU          = 0x02
	allIntSingleTap   = 0x04
	allIntDoubleTap   = 0x08
	allInt6D          = 0x10
	allIntSleepChange = 0x20
	allIntShubEndOp   = 0x40
	allIntTimestamp   = 0x80
)

// WAKE_UP_SRC bits.
const (
	wuSrcZ           = 0x01
	wuSrcY           = 0x02
	wuSrcX           = 0x04
	wuSrcWU          = 0x08
	wuSrcSleepState  = 0x10
	wuSrcFF          = 0x20
	wuSrcSleepChange = 0x40
)

// TAP_SRC bits.
const (
	tapSrcZ      = 0x01
	tapSrcY      = 0x02
	tapSrcX      = 0x04
	tapSrcSign   = 0x08
	tapSrcDouble = 0x10
	tapSrcSingle = 0x20
	tapSrcIA     = 0x40
)

// D6D_SRC bits.
const (
	d6dXL      = 0x01
	d6dXH      = 0x02
	d6dYL      = 0x04
	d6dYH      = 0x08
	d6dZL      = 0x10
	d6dZH      = 0x20
	d6dIA      = 0x40
	d6dDenDrdy = 0x80
)

// Embedded-functions bank register map.
const (
	embPageSel       = 0x02 // Paged memory page select [7:4]
	embFuncEnA       = 0x04 // Pedometer, tilt, significant motion enables
	embFuncEnB       = 0x05 // FSM, FIFO compression, MLC enables
	embPageAddress   = 0x08 // Paged memory offset
	embPageValue     = 0x09 // Paged memory data window
	embFuncInt1      = 0x0A // Embedded function routing to INT1
	embFSMInt1A      = 0x0B // FSM 1-8 routing to INT1
	embFSMInt1B      = 0x0C // FSM 9-16 routing to INT1
	embMLCInt1       = 0x0D // MLC routing to INT1
	embFuncInt2      = 0x0E // Embedded function routing to INT2
	embFSMInt2A      = 0x0F // FSM 1-8 routing to INT2
	embFSMInt2B      = 0x10 // FSM 9-16 routing to INT2
	embMLCInt2       = 0x11 // MLC routing to INT2
	embFuncStatus    = 0x12 // Embedded function status
	embFSMStatusA    = 0x13 // FSM 1-8 status
	embFSMStatusB    = 0x14 // FSM 9-16 status
	embMLCStatus     = 0x15 // MLC 1-8 status
	embPageRW        = 0x17 // Paged memory read/write enable, latched emb IRQ
	embFuncFIFOCfg   = 0x44 // Step counter batching to FIFO
	embFSMEnableA    = 0x46 // FSM 1-8 enable
	embFSMEnableB    = 0x47 // FSM 9-16 enable
	embFSMLongCountL = 0x48 // FSM long counter [7:0]
	embFSMLongCountH = 0x49 // FSM long counter [15:8]
	embFSMLongClear  = 0x4A // FSM long counter clear
	embFSMOuts1      = 0x4C // FSM 1 output (FSM 2-16 follow)
	embFuncODRCfgB   = 0x5F // FSM output data rate
	embFuncODRCfgC   = 0x60 // MLC output data rate
	embStepCounterL  = 0x62 // Step counter [7:0]
	embStepCounterH  = 0x63 // Step counter [15:8]
	embFuncSrc       = 0x64 // Pedometer source / step counter reset
	embFuncInitA     = 0x66 // Pedometer, tilt, significant motion init requests
	embFuncInitB     = 0x67 // FSM, MLC init requests
	embMLC0Src       = 0x70 // MLC 1 output (MLC 2-8 follow)
)

// EMB_FUNC_EN_A bits.
const (
	embEnAPedo      = 0x08
	embEnATilt      = 0x10
	embEnASigMotion = 0x20
)

// EMB_FUNC_EN_B bits.
const (
	embEnBFSM       = 0x01
	embEnBFIFOCompr = 0x08
	embEnBMLC       = 0x10
)

// EMB_FUNC_STATUS / EMB_FUNC_SRC bits.
const (
	embStatusStep      = 0x08
	embStatusTilt      = 0x10
	embStatusSigMotion = 0x20
	embStatusFSMLC     = 0x80

	embSrcStepOverflow = 0x08
	embSrcStepDelta    = 0x10
	embSrcStepDetected = 0x20
	embSrcPedoRstStep  = 0x80
)

// EMB_FUNC_INT1/2 routing bits.
const (
	embIntStep      = 0x08
	embIntTilt      = 0x10
	embIntSigMotion = 0x20
	embIntFSMLC     = 0x80
)

// PAGE_SEL / PAGE_RW bits.
const (
	pageSelMask  = 0xF0
	pageSelFixed = 0x01 // bit 0 of PAGE_SEL must stay set

	pageRWRead  = 0x20
	pageRWWrite = 0x40
	pageEmbLIR  = 0x80
)

// EMB_FUNC_ODR_CFG_B/C fields.
const (
	embFSMODRMask = 0x18
	embMLCODRMask = 0x30
)

// EMB_FUNC_FIFO_CFG bits.
const (
	embPedoFIFOEn = 0x40
)

// Paged (advanced features) addresses: page number in the high byte, 8-bit
// offset in the low byte.
const (
	pgFSMLCTimeoutL    = 0x17A
	pgFSMLCTimeoutH    = 0x17B
	pgFSMPrograms      = 0x17C
	pgFSMStartAddL     = 0x17E
	pgFSMStartAddH     = 0x17F
	pgPedoCmdReg       = 0x183
	pgPedoDebStepsConf = 0x184
	pgMagSensitivityL  = 0x1BA
	pgMagSensitivityH  = 0x1BB
	pgMagOffXL         = 0x1C0
	pgMagOffXH         = 0x1C1
	pgMagOffYL         = 0x1C2
	pgMagOffYH         = 0x1C3
	pgMagOffZL         = 0x1C4
	pgMagOffZH         = 0x1C5
	pgMagSIXXL         = 0x1C6 // soft-iron matrix, 6 16-bit values XX..ZZ
	pgPedoScDeltaTL    = 0x1D4
	pgPedoScDeltaTH    = 0x1D5
)

// PEDO_CMD_REG bits.
const (
	pedoCmdFPRejection = 0x04
	pedoCmdCarryCount  = 0x08
)

// Sensor-hub bank register map.
const (
	shubSensorHub1   = 0x02 // First external sensor data byte (18 total)
	shubMasterConfig = 0x14 // Master enable, slave count, pass-through
	shubSlv0Add      = 0x15 // Slave 0 address + read/write bit
	shubSlv0Subadd   = 0x16 // Slave 0 sub-register
	shubSlv0Config   = 0x17 // Slave 0 length, batching, hub ODR
	shubSlv1Add      = 0x18
	shubSlv1Subadd   = 0x19
	shubSlv1Config   = 0x1A
	shubSlv2Add      = 0x1B
	shubSlv2Subadd   = 0x1C
	shubSlv2Config   = 0x1D
	shubSlv3Add      = 0x1E
	shubSlv3Subadd   = 0x1F
	shubSlv3Config   = 0x20
	shubDataWrSlv0   = 0x21 // Payload for slave 0 write transactions
	shubStatusMaster = 0x22 // End-of-op, per-slave NACK flags
)

// MASTER_CONFIG bits.
const (
	shubAuxSensMask   = 0x03
	shubMasterOn      = 0x04
	shubPUEn          = 0x08
	shubPassThrough   = 0x10
	shubStartConfig   = 0x20
	shubWriteOnce     = 0x40
	shubRstMasterRegs = 0x80
)

// SLVx_CONFIG fields.
const (
	shubNumOpMask = 0x07
	shubBatchEn   = 0x08
	shubODRMask   = 0xC0
)

// STATUS_MASTER bits.
const (
	shubEndOp      = 0x01
	shubSlv0Nack   = 0x08
	shubSlv1Nack   = 0x10
	shubSlv2Nack   = 0x20
	shubSlv3Nack   = 0x40
	shubWrOnceDone = 0x80
)

// SensorHubBytes is the number of external sensor data registers.
const SensorHubBytes = 18
