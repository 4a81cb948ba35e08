package sensors

import (
	"fmt"
	"log"
	"strconv"
	"sync"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/Hidan0/ism330dhcx-pid/internal/config"
	"github.com/Hidan0/ism330dhcx-pid/internal/imu"
	"github.com/Hidan0/ism330dhcx-pid/ism330dhcx"
)

// IMUManager owns the ISM330DHCX device handle and serializes access to it.
// The register debug tool and the producer share the same handle, so all
// device operations go through the manager's mutex.
type IMUManager struct {
	mu        sync.Mutex
	dev       *ism330dhcx.Dev
	available bool
}

// Package-level singleton, mirroring the config package: external code must
// use GetIMUManager(), which lazily constructs the manager exactly once.
var (
	imuManager     *IMUManager
	imuManagerOnce sync.Once
)

// GetIMUManager returns the process-wide IMU manager instance.
func GetIMUManager() *IMUManager {
	imuManagerOnce.Do(func() {
		imuManager = &IMUManager{}
	})
	return imuManager
}

// Init opens the configured bus, probes the ISM330DHCX and applies the
// configured sensor settings. Safe to call again to reinitialize.
func (m *IMUManager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initLocked()
}

func (m *IMUManager) initLocked() error {
	cfg := config.Get()

	if _, err := host.Init(); err != nil {
		return fmt.Errorf("IMU: periph host init: %w", err)
	}

	var tr ism330dhcx.Transport
	switch cfg.IMUBus {
	case "spi":
		port, err := spireg.Open(cfg.IMUSPIDevice)
		if err != nil {
			return fmt.Errorf("IMU: SPI port (%s): %w", cfg.IMUSPIDevice, err)
		}
		tr, err = ism330dhcx.NewSPITransport(port)
		if err != nil {
			return fmt.Errorf("IMU: SPI transport (%s): %w", cfg.IMUSPIDevice, err)
		}
		log.Printf("IMU: using SPI device %s", cfg.IMUSPIDevice)
	default:
		bus, err := i2creg.Open(cfg.IMUI2CBus)
		if err != nil {
			return fmt.Errorf("IMU: I2C bus (%s): %w", cfg.IMUI2CBus, err)
		}
		tr = ism330dhcx.NewI2CTransport(bus, cfg.IMUI2CAddr)
		log.Printf("IMU: using I2C address 0x%02X", cfg.IMUI2CAddr)
	}

	dev, err := ism330dhcx.New(tr, &ism330dhcx.Opts{
		SoftReset:       true,
		BlockDataUpdate: true,
	})
	if err != nil {
		return fmt.Errorf("IMU: device creation: %w", err)
	}

	if err := applyConfig(dev, cfg); err != nil {
		return err
	}

	m.dev = dev
	m.available = true
	return nil
}

// applyConfig pushes the configured full scales, data rates and embedded
// function settings to the device.
func applyConfig(dev *ism330dhcx.Dev, cfg *config.Config) error {
	accelFS := ism330dhcx.AccelFS(cfg.IMUAccelRange)
	if err := dev.SetAccelFullScale(accelFS); err != nil {
		return fmt.Errorf("IMU: set accel full scale: %w", err)
	}
	log.Printf("IMU: accelerometer full scale set to %d (±%dg)", cfg.IMUAccelRange, []int{2, 16, 4, 8}[cfg.IMUAccelRange])

	gyroFS, err := gyroFullScaleFromDPS(cfg.IMUGyroRangeDPS)
	if err != nil {
		return err
	}
	if err := dev.SetGyroFullScale(gyroFS); err != nil {
		return fmt.Errorf("IMU: set gyro full scale: %w", err)
	}
	log.Printf("IMU: gyroscope full scale set to ±%d°/s", cfg.IMUGyroRangeDPS)

	// Pedometer before the output data rates, so the rate writes see the
	// embedded-function demand and clamp accordingly.
	if cfg.PedometerEnabled {
		if err := dev.SetPedometer(true, false); err != nil {
			return fmt.Errorf("IMU: enable pedometer: %w", err)
		}
		log.Println("IMU: pedometer enabled")
	}

	if err := dev.SetAccelDataRate(ism330dhcx.AccelODR(cfg.IMUAccelODR)); err != nil {
		return fmt.Errorf("IMU: set accel data rate: %w", err)
	}
	if err := dev.SetGyroDataRate(ism330dhcx.GyroODR(cfg.IMUGyroODR)); err != nil {
		return fmt.Errorf("IMU: set gyro data rate: %w", err)
	}

	// Read back the rates actually in effect: enabled embedded functions
	// may have raised them past the configured codes.
	if odr, err := dev.AccelDataRate(); err == nil {
		log.Printf("IMU: accelerometer data rate in effect: code 0x%X", uint8(odr))
	}
	if odr, err := dev.GyroDataRate(); err == nil {
		log.Printf("IMU: gyroscope data rate in effect: code 0x%X", uint8(odr))
	}

	if err := dev.SetTimestamp(true); err != nil {
		return fmt.Errorf("IMU: enable timestamp: %w", err)
	}

	if cfg.FIFOWatermark > 0 {
		if err := dev.SetFIFOWatermark(cfg.FIFOWatermark); err != nil {
			return fmt.Errorf("IMU: set FIFO watermark: %w", err)
		}
		// Batch rate encoding matches the ODR codes for 12.5 Hz and up.
		if err := dev.SetFIFOAccelBatchRate(ism330dhcx.FIFOBatchRate(cfg.IMUAccelODR)); err != nil {
			return fmt.Errorf("IMU: set accel batch rate: %w", err)
		}
		if err := dev.SetFIFOGyroBatchRate(ism330dhcx.FIFOBatchRate(cfg.IMUGyroODR)); err != nil {
			return fmt.Errorf("IMU: set gyro batch rate: %w", err)
		}
		if err := dev.SetFIFOMode(ism330dhcx.FIFOStream); err != nil {
			return fmt.Errorf("IMU: set FIFO mode: %w", err)
		}
		log.Printf("IMU: FIFO streaming, watermark %d records", cfg.FIFOWatermark)
	}

	return nil
}

func gyroFullScaleFromDPS(dps int) (ism330dhcx.GyroFS, error) {
	switch dps {
	case 125:
		return ism330dhcx.GyroFS125DPS, nil
	case 250:
		return ism330dhcx.GyroFS250DPS, nil
	case 500:
		return ism330dhcx.GyroFS500DPS, nil
	case 1000:
		return ism330dhcx.GyroFS1000DPS, nil
	case 2000:
		return ism330dhcx.GyroFS2000DPS, nil
	case 4000:
		return ism330dhcx.GyroFS4000DPS, nil
	default:
		return 0, fmt.Errorf("IMU: no gyro full scale for %d dps", dps)
	}
}

// IsAvailable reports whether Init succeeded.
func (m *IMUManager) IsAvailable() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.available
}

// Reinitialize resets and reconfigures the device.
func (m *IMUManager) Reinitialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.available = false
	return m.initLocked()
}

// ReadSample reads one accel+gyro+temperature sample with the hardware
// timestamp.
func (m *IMUManager) ReadSample() (imu.Sample, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.available {
		return imu.Sample{}, fmt.Errorf("IMU not initialized")
	}

	ax, ay, az, err := m.dev.ReadAcceleration()
	if err != nil {
		return imu.Sample{}, fmt.Errorf("IMU accel: %w", err)
	}
	gx, gy, gz, err := m.dev.ReadAngularRate()
	if err != nil {
		return imu.Sample{}, fmt.Errorf("IMU gyro: %w", err)
	}
	t, err := m.dev.ReadTemperature()
	if err != nil {
		return imu.Sample{}, fmt.Errorf("IMU temperature: %w", err)
	}
	ts, err := m.dev.Timestamp()
	if err != nil {
		return imu.Sample{}, fmt.Errorf("IMU timestamp: %w", err)
	}

	return imu.Sample{
		Ax:          ax,
		Ay:          ay,
		Az:          az,
		Gx:          gx,
		Gy:          gy,
		Gz:          gz,
		TempC:       float32(ism330dhcx.FromLSBToCelsius(t)),
		TimestampNs: int64(ism330dhcx.FromLSBToNanoseconds(ts)),
	}, nil
}

// StepCount reads the pedometer output.
func (m *IMUManager) StepCount() (imu.StepCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.available {
		return imu.StepCount{}, fmt.Errorf("IMU not initialized")
	}
	steps, err := m.dev.StepCounter()
	if err != nil {
		return imu.StepCount{}, fmt.Errorf("IMU step counter: %w", err)
	}
	return imu.StepCount{Steps: steps}, nil
}

// WithDevice runs fn with the device handle under the manager lock. Used by
// the producer and motion monitor for operations the manager does not wrap.
func (m *IMUManager) WithDevice(fn func(*ism330dhcx.Dev) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.available {
		return fmt.Errorf("IMU not initialized")
	}
	return fn(m.dev)
}

// bankFromName maps the wire-level bank name to the driver bank constant.
func bankFromName(bank string) (uint8, error) {
	switch bank {
	case "", "user":
		return ism330dhcx.BankUser, nil
	case "embedded":
		return ism330dhcx.BankEmbedded, nil
	case "sensor_hub":
		return ism330dhcx.BankSensorHub, nil
	default:
		return 0, fmt.Errorf("unknown register bank %q", bank)
	}
}

// ReadRegister reads a single register from the named bank.
func (m *IMUManager) ReadRegister(bank string, addr byte) (byte, error) {
	b, err := bankFromName(bank)
	if err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.available {
		return 0, fmt.Errorf("IMU not initialized")
	}
	return m.dev.ReadRegisterRaw(b, addr)
}

// WriteRegister writes a single register in the named bank.
func (m *IMUManager) WriteRegister(bank string, addr, value byte) error {
	b, err := bankFromName(bank)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.available {
		return fmt.Errorf("IMU not initialized")
	}
	return m.dev.WriteRegisterRaw(b, addr, value)
}

// ReadAllRegisters reads every register listed in the bank's register map.
// Only documented addresses are touched; blind sweeps over reserved
// addresses can disturb the sensor hub state machine.
func (m *IMUManager) ReadAllRegisters(bank string) (map[byte]byte, error) {
	b, err := bankFromName(bank)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.available {
		return nil, fmt.Errorf("IMU not initialized")
	}

	out := make(map[byte]byte)
	for _, info := range registerMapForBank(bank) {
		addr, err := strconv.ParseUint(info.Address, 0, 8)
		if err != nil {
			continue
		}
		v, err := m.dev.ReadRegisterRaw(b, byte(addr))
		if err != nil {
			return nil, fmt.Errorf("read 0x%02X: %w", addr, err)
		}
		out[byte(addr)] = v
	}
	return out, nil
}

// GetRegisterMap returns the register metadata for the named bank.
func (m *IMUManager) GetRegisterMap(bank string) []RegisterInfo {
	return registerMapForBank(bank)
}

func registerMapForBank(bank string) []RegisterInfo {
	switch bank {
	case "embedded":
		return getEmbeddedRegisterMap()
	case "sensor_hub":
		return getSensorHubRegisterMap()
	default:
		return getUserRegisterMap()
	}
}
