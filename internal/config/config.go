package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Config holds all application configuration values.
type Config struct {
	// MQTT
	MQTTBroker           string
	MQTTClientIDProducer string
	MQTTClientIDDisplay  string
	MQTTClientIDMotion   string

	// Topics
	TopicIMU    string
	TopicMotion string
	TopicSteps  string

	// IMU Hardware
	// Bus selects the transport: "i2c" or "spi"
	IMUBus       string
	IMUI2CBus    string
	IMUI2CAddr   uint16
	IMUSPIDevice string

	// IMU Sensor Configuration
	// Accelerometer ODR register code: 0=off, 1=12.5Hz, 2=26Hz, 3=52Hz, 4=104Hz,
	// 5=208Hz, 6=417Hz, 7=833Hz, 8=1667Hz, 9=3333Hz, 10=6667Hz, 11=1.6Hz (low power)
	IMUAccelODR byte
	// Accelerometer full scale: 0=±2g, 1=±16g, 2=±4g, 3=±8g (register encoding)
	IMUAccelRange byte
	// Gyroscope ODR register code: 0=off, 1=12.5Hz ... 10=6667Hz
	IMUGyroODR byte
	// Gyroscope full scale in dps: one of 125, 250, 500, 1000, 2000, 4000
	IMUGyroRangeDPS int

	// FIFO
	// Watermark in records (0 disables watermark-driven reads, max 511)
	FIFOWatermark uint16

	// Embedded functions
	PedometerEnabled bool

	// Timing
	IMUSampleInterval int // milliseconds

	// Web Server
	WebServerPort int
	// RegisterDebugAllowedRanges limits register-debug writes on the user
	// bank, e.g. "0x10-0x19,0x56-0x5F". Empty disables writes.
	RegisterDebugAllowedRanges string

	// Display
	DisplayUpdateInterval int    // milliseconds
	DisplayContent        string // what to show: "imu_raw", "steps"

	// Motion monitor
	MotionGPIOChip      string
	MotionGPIOLine      int
	MotionWakeThreshold byte // wake-up threshold in FS_XL/64 steps (0-63)
	MotionWakeDuration  byte // wake-up duration in ODR cycles (0-3)
}

// Package-level unexported variables for singleton pattern:
//   - globalConfig: unexported (lowercase) so other packages cannot access it directly.
//     This enforces encapsulation and prevents external code from modifying config without proper locking.
//     Has package-level scope (visible to all functions in this package, persists for program lifetime).
//   - configOnce: ensures InitGlobal() only runs once, even if called multiple times.
//   - configMu: RWMutex protects concurrent access. Write lock (Lock) for initialization,
//     read lock (RLock) for Get() allows multiple concurrent readers without blocking each other.
//
// External code must use InitGlobal() to set and Get() to read, ensuring thread safety.
var (
	globalConfig *Config
	configOnce   sync.Once
	configMu     sync.RWMutex
)

// Load reads the configuration file and returns a Config struct.
func Load(configPath string) (*Config, error) {
	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	cfg := &Config{}
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=VALUE
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid config line %d: %q", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if err := cfg.setValue(key, value); err != nil {
			return nil, fmt.Errorf("config line %d: %w", lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Validate required fields
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setValue sets a config value based on the key.
func (c *Config) setValue(key, value string) error {
	switch key {
	// MQTT
	case "MQTT_BROKER":
		c.MQTTBroker = value
	case "MQTT_CLIENT_ID_PRODUCER":
		c.MQTTClientIDProducer = value
	case "MQTT_CLIENT_ID_DISPLAY":
		c.MQTTClientIDDisplay = value
	case "MQTT_CLIENT_ID_MOTION":
		c.MQTTClientIDMotion = value

	// Topics
	case "TOPIC_IMU":
		c.TopicIMU = value
	case "TOPIC_MOTION":
		c.TopicMotion = value
	case "TOPIC_STEPS":
		c.TopicSteps = value

	// IMU Hardware
	case "IMU_BUS":
		if value != "i2c" && value != "spi" {
			return fmt.Errorf("IMU_BUS must be \"i2c\" or \"spi\", got %q", value)
		}
		c.IMUBus = value
	case "IMU_I2C_BUS":
		c.IMUI2CBus = value
	case "IMU_I2C_ADDR":
		addr, err := strconv.ParseUint(value, 0, 16)
		if err != nil {
			return fmt.Errorf("invalid IMU_I2C_ADDR %q: %w", value, err)
		}
		if addr != 0x6A && addr != 0x6B {
			return fmt.Errorf("IMU_I2C_ADDR must be 0x6A or 0x6B, got 0x%02X", addr)
		}
		c.IMUI2CAddr = uint16(addr)
	case "IMU_SPI_DEVICE":
		c.IMUSPIDevice = value

	// IMU Sensor Configuration
	case "IMU_ACCEL_ODR":
		val, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid IMU_ACCEL_ODR %q: %w", value, err)
		}
		if val < 0 || val > 11 {
			return fmt.Errorf("IMU_ACCEL_ODR must be 0-11, got %d", val)
		}
		c.IMUAccelODR = byte(val)
	case "IMU_ACCEL_RANGE":
		rangeVal, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid IMU_ACCEL_RANGE %q: %w", value, err)
		}
		if rangeVal < 0 || rangeVal > 3 {
			return fmt.Errorf("IMU_ACCEL_RANGE must be 0-3 (0=±2g, 1=±16g, 2=±4g, 3=±8g), got %d", rangeVal)
		}
		c.IMUAccelRange = byte(rangeVal)
	case "IMU_GYRO_ODR":
		val, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid IMU_GYRO_ODR %q: %w", value, err)
		}
		if val < 0 || val > 10 {
			return fmt.Errorf("IMU_GYRO_ODR must be 0-10, got %d", val)
		}
		c.IMUGyroODR = byte(val)
	case "IMU_GYRO_RANGE_DPS":
		dps, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid IMU_GYRO_RANGE_DPS %q: %w", value, err)
		}
		switch dps {
		case 125, 250, 500, 1000, 2000, 4000:
			c.IMUGyroRangeDPS = dps
		default:
			return fmt.Errorf("IMU_GYRO_RANGE_DPS must be one of 125, 250, 500, 1000, 2000, 4000, got %d", dps)
		}

	// FIFO
	case "FIFO_WATERMARK":
		val, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid FIFO_WATERMARK %q: %w", value, err)
		}
		if val < 0 || val > 511 {
			return fmt.Errorf("FIFO_WATERMARK must be 0-511, got %d", val)
		}
		c.FIFOWatermark = uint16(val)

	// Embedded functions
	case "PEDOMETER_ENABLED":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid PEDOMETER_ENABLED %q: %w", value, err)
		}
		c.PedometerEnabled = enabled

	// Timing
	case "IMU_SAMPLE_INTERVAL":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid IMU_SAMPLE_INTERVAL %q: %w", value, err)
		}
		c.IMUSampleInterval = interval

	// Web Server
	case "WEB_SERVER_PORT":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid WEB_SERVER_PORT %q: %w", value, err)
		}
		c.WebServerPort = port
	case "REGISTER_DEBUG_ALLOWED_RANGES":
		c.RegisterDebugAllowedRanges = value

	// Display
	case "DISPLAY_UPDATE_INTERVAL":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid DISPLAY_UPDATE_INTERVAL %q: %w", value, err)
		}
		c.DisplayUpdateInterval = interval
	case "DISPLAY_CONTENT":
		c.DisplayContent = value

	// Motion monitor
	case "MOTION_GPIO_CHIP":
		c.MotionGPIOChip = value
	case "MOTION_GPIO_LINE":
		line, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid MOTION_GPIO_LINE %q: %w", value, err)
		}
		c.MotionGPIOLine = line
	case "MOTION_WAKE_THRESHOLD":
		val, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid MOTION_WAKE_THRESHOLD %q: %w", value, err)
		}
		if val < 0 || val > 63 {
			return fmt.Errorf("MOTION_WAKE_THRESHOLD must be 0-63, got %d", val)
		}
		c.MotionWakeThreshold = byte(val)
	case "MOTION_WAKE_DURATION":
		val, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid MOTION_WAKE_DURATION %q: %w", value, err)
		}
		if val < 0 || val > 3 {
			return fmt.Errorf("MOTION_WAKE_DURATION must be 0-3, got %d", val)
		}
		c.MotionWakeDuration = byte(val)

	default:
		return fmt.Errorf("unknown config key: %q", key)
	}

	return nil
}

// validate checks that all required fields are set.
func (c *Config) validate() error {
	if c.MQTTBroker == "" {
		return fmt.Errorf("MQTT_BROKER is required")
	}
	if c.IMUBus == "" {
		return fmt.Errorf("IMU_BUS is required")
	}
	if c.IMUBus == "i2c" && c.IMUI2CAddr == 0 {
		return fmt.Errorf("IMU_I2C_ADDR is required when IMU_BUS=i2c")
	}
	if c.IMUBus == "spi" && c.IMUSPIDevice == "" {
		return fmt.Errorf("IMU_SPI_DEVICE is required when IMU_BUS=spi")
	}
	if c.IMUSampleInterval == 0 {
		return fmt.Errorf("IMU_SAMPLE_INTERVAL is required")
	}
	return nil
}

// InitGlobal initializes the global configuration from file.
// Uses sync.Once to ensure this only runs once, even if called multiple times.
// Acquires write lock (configMu.Lock) during initialization to prevent concurrent access.
// This is the only function that can set globalConfig.
func InitGlobal(configPath string) error {
	var err error
	configOnce.Do(func() {
		configMu.Lock()
		defer configMu.Unlock()
		globalConfig, err = Load(configPath)
	})
	return err
}

// Get returns the global configuration instance.
// InitGlobal must be called first, or this will return nil.
// Uses read lock (configMu.RLock) to allow multiple concurrent readers without blocking.
// This is thread-safe and efficient for concurrent access across goroutines.
func Get() *Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return globalConfig
}
