package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "imu_config.txt")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

const validConfig = `# test configuration
MQTT_BROKER=tcp://localhost:1883
MQTT_CLIENT_ID_PRODUCER=imu-producer
TOPIC_IMU=imu/raw

IMU_BUS=i2c
IMU_I2C_ADDR=0x6B
IMU_ACCEL_ODR=4
IMU_ACCEL_RANGE=2
IMU_GYRO_ODR=4
IMU_GYRO_RANGE_DPS=2000

FIFO_WATERMARK=32
PEDOMETER_ENABLED=true
IMU_SAMPLE_INTERVAL=10
`

func TestLoadValidConfig(t *testing.T) {
	path := writeConfigFile(t, validConfig)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.MQTTBroker != "tcp://localhost:1883" {
		t.Errorf("MQTTBroker = %q", cfg.MQTTBroker)
	}
	if cfg.IMUBus != "i2c" {
		t.Errorf("IMUBus = %q", cfg.IMUBus)
	}
	if cfg.IMUI2CAddr != 0x6B {
		t.Errorf("IMUI2CAddr = 0x%02X, want 0x6B", cfg.IMUI2CAddr)
	}
	if cfg.IMUAccelODR != 4 || cfg.IMUGyroODR != 4 {
		t.Errorf("ODR codes = %d/%d, want 4/4", cfg.IMUAccelODR, cfg.IMUGyroODR)
	}
	if cfg.IMUGyroRangeDPS != 2000 {
		t.Errorf("IMUGyroRangeDPS = %d, want 2000", cfg.IMUGyroRangeDPS)
	}
	if cfg.FIFOWatermark != 32 {
		t.Errorf("FIFOWatermark = %d, want 32", cfg.FIFOWatermark)
	}
	if !cfg.PedometerEnabled {
		t.Error("PedometerEnabled = false, want true")
	}
	if cfg.IMUSampleInterval != 10 {
		t.Errorf("IMUSampleInterval = %d, want 10", cfg.IMUSampleInterval)
	}
}

func TestLoadSkipsCommentsAndBlankLines(t *testing.T) {
	path := writeConfigFile(t, "# leading comment\n\n"+validConfig+"\n# trailing comment\n")
	if _, err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	path := writeConfigFile(t, validConfig+"NO_SUCH_KEY=1\n")
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "NO_SUCH_KEY") {
		t.Errorf("error does not name the bad key: %v", err)
	}
}

func TestLoadRejectsMalformedLine(t *testing.T) {
	path := writeConfigFile(t, "MQTT_BROKER tcp://localhost:1883\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for line without '='")
	}
}

func TestLoadValidatesRanges(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"accel ODR too big", "IMU_ACCEL_ODR=12"},
		{"accel range too big", "IMU_ACCEL_RANGE=4"},
		{"gyro ODR too big", "IMU_GYRO_ODR=11"},
		{"gyro range not a scale", "IMU_GYRO_RANGE_DPS=300"},
		{"bad i2c address", "IMU_I2C_ADDR=0x40"},
		{"watermark too big", "FIFO_WATERMARK=512"},
		{"wake threshold too big", "MOTION_WAKE_THRESHOLD=64"},
		{"wake duration too big", "MOTION_WAKE_DURATION=4"},
		{"bad bus", "IMU_BUS=uart"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfigFile(t, validConfig+tc.line+"\n")
			if _, err := Load(path); err == nil {
				t.Errorf("expected error for %q", tc.line)
			}
		})
	}
}

func TestValidateRequiresBrokerAndBus(t *testing.T) {
	path := writeConfigFile(t, "IMU_SAMPLE_INTERVAL=10\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for missing MQTT_BROKER")
	}

	path = writeConfigFile(t, "MQTT_BROKER=tcp://localhost:1883\nIMU_BUS=spi\nIMU_SAMPLE_INTERVAL=10\n")
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "IMU_SPI_DEVICE") {
		t.Fatalf("expected IMU_SPI_DEVICE error, got %v", err)
	}
}
