package sensors

import "fmt"

// BitField describes a named field inside a register.
type BitField struct {
	Bits        string `json:"bits"` // e.g. "7:4" or "2"
	Name        string `json:"name"`
	Description string `json:"description"`
	Values      string `json:"values,omitempty"`
}

// RegisterInfo holds metadata for one register: name, description, access
// type, and bit field definitions.
type RegisterInfo struct {
	Address     string     `json:"address"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Access      string     `json:"access"` // "R", "W", "RW"
	Default     string     `json:"default,omitempty"`
	BitFields   []BitField `json:"bit_fields,omitempty"`
}

// getUserRegisterMap returns metadata for the ISM330DHCX user bank registers.
func getUserRegisterMap() []RegisterInfo {
	return []RegisterInfo{
		// Configuration Registers
		{Address: "0x01", Name: "FUNC_CFG_ACCESS", Description: "Register Bank Select", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "7", Name: "FUNC_CFG_ACCESS", Description: "Embedded functions bank", Values: "0=User bank, 1=Embedded bank"},
				{Bits: "6", Name: "SHUB_REG_ACCESS", Description: "Sensor hub bank", Values: "0=User bank, 1=Sensor hub bank"},
			}},
		{Address: "0x02", Name: "PIN_CTRL", Description: "SDO and OIS Pull-Up Control", Access: "RW", Default: "0x3F",
			BitFields: []BitField{
				{Bits: "7", Name: "OIS_PU_DIS", Description: "OIS pull-up disable", Values: "0=Enabled, 1=Disabled"},
				{Bits: "6", Name: "SDO_PU_EN", Description: "SDO pin pull-up", Values: "0=Disconnected, 1=Connected"},
			}},
		{Address: "0x07", Name: "FIFO_CTRL1", Description: "FIFO Watermark [7:0]", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "7:0", Name: "WTM", Description: "FIFO watermark threshold, low byte", Values: "0-255"},
			}},
		{Address: "0x08", Name: "FIFO_CTRL2", Description: "FIFO Watermark [8], Compression, Stop-on-WTM", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "7", Name: "STOP_ON_WTM", Description: "Limit FIFO depth to watermark", Values: "0=Disabled, 1=Enabled"},
				{Bits: "6", Name: "FIFO_COMPR_RT_EN", Description: "Runtime compression enable", Values: "0=Disabled, 1=Enabled"},
				{Bits: "4", Name: "ODRCHG_EN", Description: "Batch ODR-change virtual sensor", Values: "0=Disabled, 1=Enabled"},
				{Bits: "2:1", Name: "UNCOPTR_RATE", Description: "Forced uncompressed data rate", Values: "0=Off, 1=Every 8, 2=Every 16, 3=Every 32 batches"},
				{Bits: "0", Name: "WTM8", Description: "FIFO watermark threshold, bit 8", Values: ""},
			}},
		{Address: "0x09", Name: "FIFO_CTRL3", Description: "FIFO Accel/Gyro Batch Data Rates", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "7:4", Name: "BDR_GY", Description: "Gyro batch rate", Values: "0=Off, 1=12.5Hz ... 10=6667Hz, 11=6.5Hz"},
				{Bits: "3:0", Name: "BDR_XL", Description: "Accel batch rate", Values: "0=Off, 1=12.5Hz ... 10=6667Hz, 11=1.6Hz"},
			}},
		{Address: "0x0A", Name: "FIFO_CTRL4", Description: "FIFO Mode, Temperature/Timestamp Batching", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "7:6", Name: "DEC_TS_BATCH", Description: "Timestamp batching decimation", Values: "0=Off, 1=1, 2=8, 3=32"},
				{Bits: "5:4", Name: "ODR_T_BATCH", Description: "Temperature batch rate", Values: "0=Off, 1=1.6Hz, 2=12.5Hz, 3=52Hz"},
				{Bits: "2:0", Name: "FIFO_MODE", Description: "FIFO mode", Values: "0=Bypass, 1=FIFO, 3=Cont-to-FIFO, 4=Bypass-to-Cont, 6=Continuous, 7=Bypass-to-FIFO"},
			}},
		{Address: "0x0B", Name: "COUNTER_BDR_REG1", Description: "Batch Counter Threshold [10:8], Trigger Select", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "7", Name: "dataready_pulsed", Description: "Pulsed data-ready mode", Values: "0=Latched, 1=Pulsed"},
				{Bits: "6", Name: "RST_COUNTER_BDR", Description: "Reset batch counter", Values: ""},
				{Bits: "5", Name: "TRIG_COUNTER_BDR", Description: "Batch counter trigger", Values: "0=Accel, 1=Gyro"},
				{Bits: "2:0", Name: "CNT_BDR_TH", Description: "Batch counter threshold, bits [10:8]", Values: ""},
			}},
		{Address: "0x0C", Name: "COUNTER_BDR_REG2", Description: "Batch Counter Threshold [7:0]", Access: "RW", Default: "0x00"},
		{Address: "0x0D", Name: "INT1_CTRL", Description: "INT1 Pin Control", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "7", Name: "DEN_DRDY_flag", Description: "DEN data-ready on INT1", Values: "0=Disabled, 1=Enabled"},
				{Bits: "6", Name: "INT1_CNT_BDR", Description: "Batch counter threshold on INT1", Values: "0=Disabled, 1=Enabled"},
				{Bits: "5", Name: "INT1_FIFO_FULL", Description: "FIFO full on INT1", Values: "0=Disabled, 1=Enabled"},
				{Bits: "4", Name: "INT1_FIFO_OVR", Description: "FIFO overrun on INT1", Values: "0=Disabled, 1=Enabled"},
				{Bits: "3", Name: "INT1_FIFO_TH", Description: "FIFO watermark on INT1", Values: "0=Disabled, 1=Enabled"},
				{Bits: "2", Name: "INT1_BOOT", Description: "Boot status on INT1", Values: "0=Disabled, 1=Enabled"},
				{Bits: "1", Name: "INT1_DRDY_G", Description: "Gyro data-ready on INT1", Values: "0=Disabled, 1=Enabled"},
				{Bits: "0", Name: "INT1_DRDY_XL", Description: "Accel data-ready on INT1", Values: "0=Disabled, 1=Enabled"},
			}},
		{Address: "0x0E", Name: "INT2_CTRL", Description: "INT2 Pin Control", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "6", Name: "INT2_CNT_BDR", Description: "Batch counter threshold on INT2", Values: "0=Disabled, 1=Enabled"},
				{Bits: "5", Name: "INT2_FIFO_FULL", Description: "FIFO full on INT2", Values: "0=Disabled, 1=Enabled"},
				{Bits: "4", Name: "INT2_FIFO_OVR", Description: "FIFO overrun on INT2", Values: "0=Disabled, 1=Enabled"},
				{Bits: "3", Name: "INT2_FIFO_TH", Description: "FIFO watermark on INT2", Values: "0=Disabled, 1=Enabled"},
				{Bits: "2", Name: "INT2_DRDY_TEMP", Description: "Temperature data-ready on INT2", Values: "0=Disabled, 1=Enabled"},
				{Bits: "1", Name: "INT2_DRDY_G", Description: "Gyro data-ready on INT2", Values: "0=Disabled, 1=Enabled"},
				{Bits: "0", Name: "INT2_DRDY_XL", Description: "Accel data-ready on INT2", Values: "0=Disabled, 1=Enabled"},
			}},
		{Address: "0x0F", Name: "WHO_AM_I", Description: "Device ID (fixed 0x6B)", Access: "R", Default: "0x6B"},
		{Address: "0x10", Name: "CTRL1_XL", Description: "Accelerometer Control", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "7:4", Name: "ODR_XL", Description: "Accel output data rate", Values: "0=Off, 1=12.5Hz, 2=26Hz, 3=52Hz, 4=104Hz, 5=208Hz, 6=417Hz, 7=833Hz, 8=1667Hz, 9=3333Hz, 10=6667Hz, 11=1.6Hz"},
				{Bits: "3:2", Name: "FS_XL", Description: "Accel full scale", Values: "0=±2g, 1=±16g, 2=±4g, 3=±8g"},
				{Bits: "1", Name: "LPF2_XL_EN", Description: "Accel LPF2 enable", Values: "0=Disabled, 1=Enabled"},
			}},
		{Address: "0x11", Name: "CTRL2_G", Description: "Gyroscope Control", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "7:4", Name: "ODR_G", Description: "Gyro output data rate", Values: "0=Off, 1=12.5Hz, 2=26Hz, 3=52Hz, 4=104Hz, 5=208Hz, 6=417Hz, 7=833Hz, 8=1667Hz, 9=3333Hz, 10=6667Hz"},
				{Bits: "3:2", Name: "FS_G", Description: "Gyro full scale", Values: "0=±250°/s, 1=±500°/s, 2=±1000°/s, 3=±2000°/s"},
				{Bits: "1", Name: "FS_125", Description: "±125°/s override", Values: "0=FS_G applies, 1=±125°/s"},
				{Bits: "0", Name: "FS_4000", Description: "±4000°/s override", Values: "0=FS_G/FS_125 apply, 1=±4000°/s"},
			}},
		{Address: "0x12", Name: "CTRL3_C", Description: "Control Register 3", Access: "RW", Default: "0x04",
			BitFields: []BitField{
				{Bits: "7", Name: "BOOT", Description: "Reboot memory content", Values: "Self-clearing"},
				{Bits: "6", Name: "BDU", Description: "Block data update", Values: "0=Continuous, 1=Wait for read"},
				{Bits: "5", Name: "H_LACTIVE", Description: "Interrupt polarity", Values: "0=Active high, 1=Active low"},
				{Bits: "4", Name: "PP_OD", Description: "Interrupt pin driver", Values: "0=Push-pull, 1=Open drain"},
				{Bits: "3", Name: "SIM", Description: "SPI mode", Values: "0=4-wire, 1=3-wire"},
				{Bits: "2", Name: "IF_INC", Description: "Register address auto-increment", Values: "0=Disabled, 1=Enabled"},
				{Bits: "0", Name: "SW_RESET", Description: "Software reset", Values: "Self-clearing"},
			}},
		{Address: "0x13", Name: "CTRL4_C", Description: "Control Register 4", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "6", Name: "SLEEP_G", Description: "Gyro sleep mode", Values: "0=Disabled, 1=Enabled"},
				{Bits: "5", Name: "INT2_on_INT1", Description: "Route INT2 signals to INT1", Values: "0=Separate pins, 1=All on INT1"},
				{Bits: "3", Name: "DRDY_MASK", Description: "Mask data-ready until filters settle", Values: "0=Disabled, 1=Enabled"},
				{Bits: "2", Name: "I2C_disable", Description: "Disable the I2C interface", Values: "0=Enabled, 1=SPI only"},
				{Bits: "1", Name: "LPF1_SEL_G", Description: "Gyro LPF1 enable", Values: "0=Disabled, 1=Enabled"},
			}},
		{Address: "0x14", Name: "CTRL5_C", Description: "Self-Test and Rounding", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "6:5", Name: "ROUNDING", Description: "Circular burst read", Values: "0=Off, 1=Accel, 2=Gyro, 3=Accel+Gyro"},
				{Bits: "3:2", Name: "ST_G", Description: "Gyro self-test", Values: "0=Off, 1=Positive, 3=Negative"},
				{Bits: "1:0", Name: "ST_XL", Description: "Accel self-test", Values: "0=Off, 1=Positive, 2=Negative"},
			}},
		{Address: "0x15", Name: "CTRL6_C", Description: "Control Register 6", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "7:5", Name: "TRIG_EN/LVL", Description: "DEN trigger mode", Values: ""},
				{Bits: "4", Name: "XL_HM_MODE", Description: "Accel high-performance disable", Values: "0=HP enabled, 1=HP disabled"},
				{Bits: "3", Name: "USR_OFF_W", Description: "Accel user offset weight", Values: "0=2^-10 g/LSB, 1=2^-6 g/LSB"},
				{Bits: "2:0", Name: "FTYPE", Description: "Gyro LPF1 bandwidth", Values: "0-7"},
			}},
		{Address: "0x16", Name: "CTRL7_G", Description: "Control Register 7", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "7", Name: "G_HM_MODE", Description: "Gyro high-performance disable", Values: "0=HP enabled, 1=HP disabled"},
				{Bits: "6", Name: "HP_EN_G", Description: "Gyro high-pass filter enable", Values: "0=Disabled, 1=Enabled"},
				{Bits: "5:4", Name: "HPM_G", Description: "Gyro high-pass cutoff", Values: "0=16mHz, 1=65mHz, 2=260mHz, 3=1.04Hz"},
				{Bits: "2", Name: "OIS_ON", Description: "OIS chain enable", Values: "0=Disabled, 1=Enabled"},
				{Bits: "1", Name: "USR_OFF_ON_OUT", Description: "Apply accel user offsets to output", Values: "0=Disabled, 1=Enabled"},
			}},
		{Address: "0x17", Name: "CTRL8_XL", Description: "Accelerometer Filter Chain", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "7:5", Name: "HPCF_XL", Description: "Accel filter bandwidth", Values: "0=ODR/4 ... 7=ODR/800"},
				{Bits: "4", Name: "HP_REF_MODE_XL", Description: "High-pass reference mode", Values: "0=Disabled, 1=Enabled"},
				{Bits: "3", Name: "FASTSETTL_MODE_XL", Description: "Fast filter settling", Values: "0=Disabled, 1=Enabled"},
				{Bits: "2", Name: "HP_SLOPE_XL_EN", Description: "Accel high-pass path", Values: "0=Low-pass, 1=High-pass"},
				{Bits: "0", Name: "LOW_PASS_ON_6D", Description: "LPF2 on 6D detector", Values: "0=ODR/2, 1=LPF2"},
			}},
		{Address: "0x18", Name: "CTRL9_XL", Description: "DEN Stamping, I3C Disable", Access: "RW", Default: "0xE0",
			BitFields: []BitField{
				{Bits: "1", Name: "I3C_disable", Description: "Disable the I3C interface", Values: "0=Enabled, 1=Disabled"},
			}},
		{Address: "0x19", Name: "CTRL10_C", Description: "Timestamp Enable", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "5", Name: "TIMESTAMP_EN", Description: "Timestamp counter enable", Values: "0=Disabled, 1=Enabled"},
			}},

		// Interrupt Sources (Read-Only)
		{Address: "0x1A", Name: "ALL_INT_SRC", Description: "Latched Interrupt Source Summary", Access: "R",
			BitFields: []BitField{
				{Bits: "7", Name: "TIMESTAMP_ENDCOUNT", Description: "Timestamp overflow", Values: ""},
				{Bits: "5", Name: "SLEEP_CHANGE_IA", Description: "Activity/inactivity change", Values: ""},
				{Bits: "4", Name: "D6D_IA", Description: "6D orientation change", Values: ""},
				{Bits: "3", Name: "DOUBLE_TAP", Description: "Double tap", Values: ""},
				{Bits: "2", Name: "SINGLE_TAP", Description: "Single tap", Values: ""},
				{Bits: "1", Name: "WU_IA", Description: "Wake-up", Values: ""},
				{Bits: "0", Name: "FF_IA", Description: "Free-fall", Values: ""},
			}},
		{Address: "0x1B", Name: "WAKE_UP_SRC", Description: "Wake-Up / Activity Source", Access: "R",
			BitFields: []BitField{
				{Bits: "5", Name: "SLEEP_CHANGE_IA", Description: "Activity/inactivity change", Values: ""},
				{Bits: "4", Name: "SLEEP_STATE", Description: "Sleep state", Values: ""},
				{Bits: "3", Name: "WU_IA", Description: "Wake-up event", Values: ""},
				{Bits: "2", Name: "X_WU", Description: "Wake-up on X", Values: ""},
				{Bits: "1", Name: "Y_WU", Description: "Wake-up on Y", Values: ""},
				{Bits: "0", Name: "Z_WU", Description: "Wake-up on Z", Values: ""},
			}},
		{Address: "0x1C", Name: "TAP_SRC", Description: "Tap Source", Access: "R"},
		{Address: "0x1D", Name: "D6D_SRC", Description: "6D Orientation Source", Access: "R"},
		{Address: "0x1E", Name: "STATUS_REG", Description: "Data-Ready Flags", Access: "R",
			BitFields: []BitField{
				{Bits: "2", Name: "TDA", Description: "Temperature data available", Values: ""},
				{Bits: "1", Name: "GDA", Description: "Gyro data available", Values: ""},
				{Bits: "0", Name: "XLDA", Description: "Accel data available", Values: ""},
			}},

		// Output Registers (Read-Only)
		{Address: "0x20", Name: "OUT_TEMP_L", Description: "Temperature Low Byte", Access: "R"},
		{Address: "0x21", Name: "OUT_TEMP_H", Description: "Temperature High Byte", Access: "R"},
		{Address: "0x22", Name: "OUTX_L_G", Description: "Gyro X Low Byte", Access: "R"},
		{Address: "0x23", Name: "OUTX_H_G", Description: "Gyro X High Byte", Access: "R"},
		{Address: "0x24", Name: "OUTY_L_G", Description: "Gyro Y Low Byte", Access: "R"},
		{Address: "0x25", Name: "OUTY_H_G", Description: "Gyro Y High Byte", Access: "R"},
		{Address: "0x26", Name: "OUTZ_L_G", Description: "Gyro Z Low Byte", Access: "R"},
		{Address: "0x27", Name: "OUTZ_H_G", Description: "Gyro Z High Byte", Access: "R"},
		{Address: "0x28", Name: "OUTX_L_A", Description: "Accel X Low Byte", Access: "R"},
		{Address: "0x29", Name: "OUTX_H_A", Description: "Accel X High Byte", Access: "R"},
		{Address: "0x2A", Name: "OUTY_L_A", Description: "Accel Y Low Byte", Access: "R"},
		{Address: "0x2B", Name: "OUTY_H_A", Description: "Accel Y High Byte", Access: "R"},
		{Address: "0x2C", Name: "OUTZ_L_A", Description: "Accel Z Low Byte", Access: "R"},
		{Address: "0x2D", Name: "OUTZ_H_A", Description: "Accel Z High Byte", Access: "R"},

		// Embedded Function Mirrors (Read-Only)
		{Address: "0x35", Name: "EMB_FUNC_STATUS_MAINPAGE", Description: "Embedded Function Status Mirror", Access: "R"},
		{Address: "0x36", Name: "FSM_STATUS_A_MAINPAGE", Description: "FSM 1-8 Status Mirror", Access: "R"},
		{Address: "0x37", Name: "FSM_STATUS_B_MAINPAGE", Description: "FSM 9-16 Status Mirror", Access: "R"},
		{Address: "0x38", Name: "MLC_STATUS_MAINPAGE", Description: "MLC Status Mirror", Access: "R"},
		{Address: "0x39", Name: "STATUS_MASTER_MAINPAGE", Description: "Sensor Hub Status Mirror", Access: "R"},

		// FIFO Status (Read-Only)
		{Address: "0x3A", Name: "FIFO_STATUS1", Description: "FIFO Sample Count [7:0]", Access: "R"},
		{Address: "0x3B", Name: "FIFO_STATUS2", Description: "FIFO Sample Count [9:8], Flags", Access: "R",
			BitFields: []BitField{
				{Bits: "7", Name: "FIFO_WTM_IA", Description: "Watermark reached", Values: ""},
				{Bits: "6", Name: "FIFO_OVR_IA", Description: "FIFO overrun", Values: ""},
				{Bits: "5", Name: "FIFO_FULL_IA", Description: "FIFO full", Values: ""},
				{Bits: "4", Name: "COUNTER_BDR_IA", Description: "Batch counter threshold reached", Values: ""},
				{Bits: "3", Name: "FIFO_OVR_LATCHED", Description: "Latched overrun", Values: ""},
				{Bits: "1:0", Name: "DIFF_FIFO", Description: "Unread records, bits [9:8]", Values: ""},
			}},

		// Timestamp (Read-Only)
		{Address: "0x40", Name: "TIMESTAMP0", Description: "Timestamp Byte 0 (25µs LSB)", Access: "R"},
		{Address: "0x41", Name: "TIMESTAMP1", Description: "Timestamp Byte 1", Access: "R"},
		{Address: "0x42", Name: "TIMESTAMP2", Description: "Timestamp Byte 2", Access: "R"},
		{Address: "0x43", Name: "TIMESTAMP3", Description: "Timestamp Byte 3", Access: "R"},

		// Event Detection
		{Address: "0x56", Name: "TAP_CFG0", Description: "Tap Axes, Latched Interrupts, Filter Routing", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "6", Name: "INT_CLR_ON_READ", Description: "Clear latched interrupts on read", Values: "0=Disabled, 1=Enabled"},
				{Bits: "5", Name: "SLEEP_STATUS_ON_INT", Description: "Route sleep state instead of change", Values: ""},
				{Bits: "4", Name: "SLOPE_FDS", Description: "Event detector input", Values: "0=Slope, 1=High-pass"},
				{Bits: "3", Name: "TAP_X_EN", Description: "Tap detection on X", Values: "0=Disabled, 1=Enabled"},
				{Bits: "2", Name: "TAP_Y_EN", Description: "Tap detection on Y", Values: "0=Disabled, 1=Enabled"},
				{Bits: "1", Name: "TAP_Z_EN", Description: "Tap detection on Z", Values: "0=Disabled, 1=Enabled"},
				{Bits: "0", Name: "LIR", Description: "Latched interrupts", Values: "0=Pulsed, 1=Latched"},
			}},
		{Address: "0x57", Name: "TAP_CFG1", Description: "Tap X Threshold, Tap Priority", Access: "RW", Default: "0x00"},
		{Address: "0x58", Name: "TAP_CFG2", Description: "Tap Y Threshold, Inactivity, Interrupts Enable", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "7", Name: "INTERRUPTS_ENABLE", Description: "Enable basic interrupt functions", Values: "0=Disabled, 1=Enabled"},
				{Bits: "6:5", Name: "INACT_EN", Description: "Inactivity mode", Values: "0=Off, 1=XL 12.5Hz, 2=+gyro sleep, 3=+gyro off"},
				{Bits: "4:0", Name: "TAP_THS_Y", Description: "Tap Y threshold", Values: "0-31"},
			}},
		{Address: "0x59", Name: "TAP_THS_6D", Description: "Tap Z Threshold, 6D Threshold, 4D Enable", Access: "RW", Default: "0x00"},
		{Address: "0x5A", Name: "INT_DUR2", Description: "Tap Shock/Quiet/Duration", Access: "RW", Default: "0x00"},
		{Address: "0x5B", Name: "WAKE_UP_THS", Description: "Wake-Up Threshold, Tap Mode", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "7", Name: "SINGLE_DOUBLE_TAP", Description: "Tap mode", Values: "0=Single only, 1=Single+double"},
				{Bits: "6", Name: "USR_OFF_ON_WU", Description: "Apply user offsets to wake-up", Values: ""},
				{Bits: "5:0", Name: "WK_THS", Description: "Wake-up threshold", Values: "0-63, weight FS_XL/64"},
			}},
		{Address: "0x5C", Name: "WAKE_UP_DUR", Description: "Wake-Up / Sleep Durations", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "7", Name: "FF_DUR5", Description: "Free-fall duration, bit 5", Values: ""},
				{Bits: "6:5", Name: "WAKE_DUR", Description: "Wake-up duration in ODR cycles", Values: "0-3"},
				{Bits: "4", Name: "WAKE_THS_W", Description: "Wake-up threshold weight", Values: "0=FS/64, 1=FS/256"},
				{Bits: "3:0", Name: "SLEEP_DUR", Description: "Inactivity delay, 512 ODR steps", Values: "0-15"},
			}},
		{Address: "0x5D", Name: "FREE_FALL", Description: "Free-Fall Threshold and Duration", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "7:3", Name: "FF_DUR", Description: "Free-fall duration, bits [4:0]", Values: ""},
				{Bits: "2:0", Name: "FF_THS", Description: "Free-fall threshold", Values: "0=156mg ... 7=500mg"},
			}},
		{Address: "0x5E", Name: "MD1_CFG", Description: "Function Routing to INT1", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "7", Name: "INT1_SLEEP_CHANGE", Description: "Activity change on INT1", Values: ""},
				{Bits: "6", Name: "INT1_SINGLE_TAP", Description: "Single tap on INT1", Values: ""},
				{Bits: "5", Name: "INT1_WU", Description: "Wake-up on INT1", Values: ""},
				{Bits: "4", Name: "INT1_FF", Description: "Free-fall on INT1", Values: ""},
				{Bits: "3", Name: "INT1_DOUBLE_TAP", Description: "Double tap on INT1", Values: ""},
				{Bits: "2", Name: "INT1_6D", Description: "6D change on INT1", Values: ""},
				{Bits: "1", Name: "INT1_EMB_FUNC", Description: "Embedded functions on INT1", Values: ""},
				{Bits: "0", Name: "INT1_SHUB", Description: "Sensor hub end-of-op on INT1", Values: ""},
			}},
		{Address: "0x5F", Name: "MD2_CFG", Description: "Function Routing to INT2", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "7", Name: "INT2_SLEEP_CHANGE", Description: "Activity change on INT2", Values: ""},
				{Bits: "6", Name: "INT2_SINGLE_TAP", Description: "Single tap on INT2", Values: ""},
				{Bits: "5", Name: "INT2_WU", Description: "Wake-up on INT2", Values: ""},
				{Bits: "4", Name: "INT2_FF", Description: "Free-fall on INT2", Values: ""},
				{Bits: "3", Name: "INT2_DOUBLE_TAP", Description: "Double tap on INT2", Values: ""},
				{Bits: "2", Name: "INT2_6D", Description: "6D change on INT2", Values: ""},
				{Bits: "0", Name: "INT2_TIMESTAMP", Description: "Timestamp overflow on INT2", Values: ""},
			}},

		// Miscellaneous
		{Address: "0x62", Name: "I3C_BUS_AVB", Description: "I3C Bus Available Time", Access: "RW", Default: "0x00"},
		{Address: "0x63", Name: "INTERNAL_FREQ_FINE", Description: "Internal Frequency Trim (signed)", Access: "R"},
		{Address: "0x73", Name: "X_OFS_USR", Description: "Accel X User Offset", Access: "RW", Default: "0x00"},
		{Address: "0x74", Name: "Y_OFS_USR", Description: "Accel Y User Offset", Access: "RW", Default: "0x00"},
		{Address: "0x75", Name: "Z_OFS_USR", Description: "Accel Z User Offset", Access: "RW", Default: "0x00"},
		{Address: "0x78", Name: "FIFO_DATA_OUT_TAG", Description: "FIFO Output Tag", Access: "R",
			BitFields: []BitField{
				{Bits: "7:3", Name: "TAG_SENSOR", Description: "Record sensor tag", Values: "1=Gyro, 2=Accel, 3=Temp, 4=Timestamp ..."},
				{Bits: "2:1", Name: "TAG_CNT", Description: "2-bit record counter", Values: ""},
			}},
		{Address: "0x79", Name: "FIFO_DATA_OUT_X_L", Description: "FIFO Output X Low Byte", Access: "R"},
		{Address: "0x7A", Name: "FIFO_DATA_OUT_X_H", Description: "FIFO Output X High Byte", Access: "R"},
		{Address: "0x7B", Name: "FIFO_DATA_OUT_Y_L", Description: "FIFO Output Y Low Byte", Access: "R"},
		{Address: "0x7C", Name: "FIFO_DATA_OUT_Y_H", Description: "FIFO Output Y High Byte", Access: "R"},
		{Address: "0x7D", Name: "FIFO_DATA_OUT_Z_L", Description: "FIFO Output Z Low Byte", Access: "R"},
		{Address: "0x7E", Name: "FIFO_DATA_OUT_Z_H", Description: "FIFO Output Z High Byte", Access: "R"},
	}
}

// getEmbeddedRegisterMap returns metadata for the embedded-functions bank.
func getEmbeddedRegisterMap() []RegisterInfo {
	return []RegisterInfo{
		{Address: "0x02", Name: "PAGE_SEL", Description: "Paged Memory Page Select", Access: "RW", Default: "0x01",
			BitFields: []BitField{
				{Bits: "7:4", Name: "PAGE_SEL", Description: "Advanced features page number", Values: "0-15"},
				{Bits: "0", Name: "(fixed)", Description: "Must stay set", Values: "1"},
			}},
		{Address: "0x04", Name: "EMB_FUNC_EN_A", Description: "Pedometer, Tilt, Significant Motion Enables", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "5", Name: "SIGN_MOTION_EN", Description: "Significant motion", Values: "0=Disabled, 1=Enabled"},
				{Bits: "4", Name: "TILT_EN", Description: "Tilt detection", Values: "0=Disabled, 1=Enabled"},
				{Bits: "3", Name: "PEDO_EN", Description: "Pedometer", Values: "0=Disabled, 1=Enabled"},
			}},
		{Address: "0x05", Name: "EMB_FUNC_EN_B", Description: "FSM, FIFO Compression, MLC Enables", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "4", Name: "MLC_EN", Description: "Machine learning core", Values: "0=Disabled, 1=Enabled"},
				{Bits: "3", Name: "FIFO_COMPR_EN", Description: "FIFO compression", Values: "0=Disabled, 1=Enabled"},
				{Bits: "0", Name: "FSM_EN", Description: "Finite state machine", Values: "0=Disabled, 1=Enabled"},
			}},
		{Address: "0x08", Name: "PAGE_ADDRESS", Description: "Paged Memory Offset", Access: "RW", Default: "0x00"},
		{Address: "0x09", Name: "PAGE_VALUE", Description: "Paged Memory Data Window", Access: "RW", Default: "0x00"},
		{Address: "0x0A", Name: "EMB_FUNC_INT1", Description: "Embedded Function Routing to INT1", Access: "RW", Default: "0x00"},
		{Address: "0x0B", Name: "FSM_INT1_A", Description: "FSM 1-8 Routing to INT1", Access: "RW", Default: "0x00"},
		{Address: "0x0C", Name: "FSM_INT1_B", Description: "FSM 9-16 Routing to INT1", Access: "RW", Default: "0x00"},
		{Address: "0x0D", Name: "MLC_INT1", Description: "MLC Routing to INT1", Access: "RW", Default: "0x00"},
		{Address: "0x0E", Name: "EMB_FUNC_INT2", Description: "Embedded Function Routing to INT2", Access: "RW", Default: "0x00"},
		{Address: "0x0F", Name: "FSM_INT2_A", Description: "FSM 1-8 Routing to INT2", Access: "RW", Default: "0x00"},
		{Address: "0x10", Name: "FSM_INT2_B", Description: "FSM 9-16 Routing to INT2", Access: "RW", Default: "0x00"},
		{Address: "0x11", Name: "MLC_INT2", Description: "MLC Routing to INT2", Access: "RW", Default: "0x00"},
		{Address: "0x12", Name: "EMB_FUNC_STATUS", Description: "Embedded Function Status", Access: "R",
			BitFields: []BitField{
				{Bits: "7", Name: "IS_FSM_LC", Description: "FSM long counter timeout", Values: ""},
				{Bits: "5", Name: "IS_SIGMOT", Description: "Significant motion detected", Values: ""},
				{Bits: "4", Name: "IS_TILT", Description: "Tilt detected", Values: ""},
				{Bits: "3", Name: "IS_STEP_DET", Description: "Step detected", Values: ""},
			}},
		{Address: "0x13", Name: "FSM_STATUS_A", Description: "FSM 1-8 Status", Access: "R"},
		{Address: "0x14", Name: "FSM_STATUS_B", Description: "FSM 9-16 Status", Access: "R"},
		{Address: "0x15", Name: "MLC_STATUS", Description: "MLC 1-8 Status", Access: "R"},
		{Address: "0x17", Name: "PAGE_RW", Description: "Paged Memory Direction, Latched Embedded IRQ", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "7", Name: "EMB_FUNC_LIR", Description: "Latched embedded interrupts", Values: "0=Pulsed, 1=Latched"},
				{Bits: "6", Name: "PAGE_WRITE", Description: "Paged write enable", Values: ""},
				{Bits: "5", Name: "PAGE_READ", Description: "Paged read enable", Values: ""},
			}},
		{Address: "0x44", Name: "EMB_FUNC_FIFO_CFG", Description: "Step Counter Batching to FIFO", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "6", Name: "PEDO_FIFO_EN", Description: "Batch step counter", Values: "0=Disabled, 1=Enabled"},
			}},
		{Address: "0x46", Name: "FSM_ENABLE_A", Description: "FSM 1-8 Enable", Access: "RW", Default: "0x00"},
		{Address: "0x47", Name: "FSM_ENABLE_B", Description: "FSM 9-16 Enable", Access: "RW", Default: "0x00"},
		{Address: "0x48", Name: "FSM_LONG_COUNTER_L", Description: "FSM Long Counter [7:0]", Access: "RW", Default: "0x00"},
		{Address: "0x49", Name: "FSM_LONG_COUNTER_H", Description: "FSM Long Counter [15:8]", Access: "RW", Default: "0x00"},
		{Address: "0x4A", Name: "FSM_LONG_COUNTER_CLEAR", Description: "FSM Long Counter Clear", Access: "RW", Default: "0x00"},
		{Address: "0x4C", Name: "FSM_OUTS1", Description: "FSM 1 Output (FSM 2-16 follow)", Access: "R"},
		{Address: "0x5F", Name: "EMB_FUNC_ODR_CFG_B", Description: "FSM Output Data Rate", Access: "RW",
			BitFields: []BitField{
				{Bits: "4:3", Name: "FSM_ODR", Description: "FSM rate", Values: "0=12.5Hz, 1=26Hz, 2=52Hz, 3=104Hz"},
			}},
		{Address: "0x60", Name: "EMB_FUNC_ODR_CFG_C", Description: "MLC Output Data Rate", Access: "RW",
			BitFields: []BitField{
				{Bits: "5:4", Name: "MLC_ODR", Description: "MLC rate", Values: "0=12.5Hz, 1=26Hz, 2=52Hz, 3=104Hz"},
			}},
		{Address: "0x62", Name: "STEP_COUNTER_L", Description: "Step Counter [7:0]", Access: "R"},
		{Address: "0x63", Name: "STEP_COUNTER_H", Description: "Step Counter [15:8]", Access: "R"},
		{Address: "0x64", Name: "EMB_FUNC_SRC", Description: "Pedometer Source / Step Counter Reset", Access: "RW",
			BitFields: []BitField{
				{Bits: "7", Name: "PEDO_RST_STEP", Description: "Reset step counter", Values: "Self-clearing"},
				{Bits: "5", Name: "STEP_DETECTED", Description: "Step detected", Values: ""},
				{Bits: "4", Name: "STEP_COUNT_DELTA_IA", Description: "Steps in the last delta-time window", Values: ""},
				{Bits: "3", Name: "STEP_OVERFLOW", Description: "Step counter overflow", Values: ""},
			}},
		{Address: "0x66", Name: "EMB_FUNC_INIT_A", Description: "Pedometer, Tilt, Significant Motion Init Requests", Access: "RW", Default: "0x00"},
		{Address: "0x67", Name: "EMB_FUNC_INIT_B", Description: "FSM, MLC Init Requests", Access: "RW", Default: "0x00"},
		{Address: "0x70", Name: "MLC0_SRC", Description: "MLC 1 Output (MLC 2-8 follow)", Access: "R"},
	}
}

// getSensorHubRegisterMap returns metadata for the sensor-hub bank.
func getSensorHubRegisterMap() []RegisterInfo {
	regs := []RegisterInfo{
		{Address: "0x14", Name: "MASTER_CONFIG", Description: "Master Enable, Slave Count, Pass-Through", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "7", Name: "RST_MASTER_REGS", Description: "Reset master registers", Values: ""},
				{Bits: "6", Name: "WRITE_ONCE", Description: "Write slave 0 only once", Values: ""},
				{Bits: "5", Name: "START_CONFIG", Description: "Trigger source", Values: "0=Accel data-ready, 1=INT2"},
				{Bits: "4", Name: "PASS_THROUGH_MODE", Description: "I2C pass-through", Values: "0=Disabled, 1=Enabled"},
				{Bits: "3", Name: "SHUB_PU_EN", Description: "Internal pull-ups", Values: "0=Disabled, 1=Enabled"},
				{Bits: "2", Name: "MASTER_ON", Description: "Sensor hub master enable", Values: "0=Disabled, 1=Enabled"},
				{Bits: "1:0", Name: "AUX_SENS_ON", Description: "Connected slaves minus one", Values: "0-3"},
			}},
		{Address: "0x15", Name: "SLV0_ADD", Description: "Slave 0 Address + R/W Bit", Access: "RW", Default: "0x00"},
		{Address: "0x16", Name: "SLV0_SUBADD", Description: "Slave 0 Sub-Register", Access: "RW", Default: "0x00"},
		{Address: "0x17", Name: "SLV0_CONFIG", Description: "Slave 0 Length, Batching, Hub ODR", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "7:6", Name: "SHUB_ODR", Description: "Sensor hub data rate", Values: "0=104Hz, 1=52Hz, 2=26Hz, 3=12.5Hz"},
				{Bits: "3", Name: "BATCH_EXT_SENS_0_EN", Description: "Batch slave 0 to FIFO", Values: ""},
				{Bits: "2:0", Name: "SHUB_NUMOP", Description: "Read length in bytes", Values: "0-7"},
			}},
		{Address: "0x18", Name: "SLV1_ADD", Description: "Slave 1 Address + R/W Bit", Access: "RW", Default: "0x00"},
		{Address: "0x19", Name: "SLV1_SUBADD", Description: "Slave 1 Sub-Register", Access: "RW", Default: "0x00"},
		{Address: "0x1A", Name: "SLV1_CONFIG", Description: "Slave 1 Length, Batching", Access: "RW", Default: "0x00"},
		{Address: "0x1B", Name: "SLV2_ADD", Description: "Slave 2 Address + R/W Bit", Access: "RW", Default: "0x00"},
		{Address: "0x1C", Name: "SLV2_SUBADD", Description: "Slave 2 Sub-Register", Access: "RW", Default: "0x00"},
		{Address: "0x1D", Name: "SLV2_CONFIG", Description: "Slave 2 Length, Batching", Access: "RW", Default: "0x00"},
		{Address: "0x1E", Name: "SLV3_ADD", Description: "Slave 3 Address + R/W Bit", Access: "RW", Default: "0x00"},
		{Address: "0x1F", Name: "SLV3_SUBADD", Description: "Slave 3 Sub-Register", Access: "RW", Default: "0x00"},
		{Address: "0x20", Name: "SLV3_CONFIG", Description: "Slave 3 Length, Batching", Access: "RW", Default: "0x00"},
		{Address: "0x21", Name: "DATAWRITE_SLV0", Description: "Slave 0 Write Payload", Access: "RW", Default: "0x00"},
		{Address: "0x22", Name: "STATUS_MASTER", Description: "End-of-Op, Per-Slave NACK Flags", Access: "R",
			BitFields: []BitField{
				{Bits: "7", Name: "WR_ONCE_DONE", Description: "Write-once operation complete", Values: ""},
				{Bits: "6", Name: "SLAVE3_NACK", Description: "Slave 3 not acknowledged", Values: ""},
				{Bits: "5", Name: "SLAVE2_NACK", Description: "Slave 2 not acknowledged", Values: ""},
				{Bits: "4", Name: "SLAVE1_NACK", Description: "Slave 1 not acknowledged", Values: ""},
				{Bits: "3", Name: "SLAVE0_NACK", Description: "Slave 0 not acknowledged", Values: ""},
				{Bits: "0", Name: "SENS_HUB_ENDOP", Description: "All configured reads complete", Values: ""},
			}},
	}

	// SENSOR_HUB_1 .. SENSOR_HUB_18 at 0x02-0x13
	hub := make([]RegisterInfo, 0, 18)
	for i := 0; i < 18; i++ {
		hub = append(hub, RegisterInfo{
			Address:     fmt.Sprintf("0x%02X", 0x02+i),
			Name:        fmt.Sprintf("SENSOR_HUB_%d", i+1),
			Description: fmt.Sprintf("External Sensor Data Byte %d", i+1),
			Access:      "R",
		})
	}
	return append(hub, regs...)
}
