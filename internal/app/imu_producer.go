package app

import (
	"encoding/json"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/Hidan0/ism330dhcx-pid/internal/config"
	"github.com/Hidan0/ism330dhcx-pid/internal/imu"
	"github.com/Hidan0/ism330dhcx-pid/internal/sensors"
	"github.com/Hidan0/ism330dhcx-pid/ism330dhcx"
)

// RunIMUProducer reads accel+gyro samples from the ISM330DHCX and publishes
// them to MQTT at the configured interval.
func RunIMUProducer() error {
	log.Println("starting IMU producer")

	cfg := config.Get()

	// --- Initialize the IMU ---
	imuManager := sensors.GetIMUManager()
	if err := imuManager.Init(); err != nil {
		log.Printf("failed to initialize IMU: %v", err)
		return err
	}

	// --- connect to MQTT ---
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDProducer)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Printf("MQTT connect error: %v", token.Error())
		return token.Error()
	}
	defer client.Disconnect(250)

	log.Println("connected to MQTT, starting publish loop")

	var lastSteps uint16

	// main tick
	ticker := time.NewTicker(time.Duration(cfg.IMUSampleInterval) * time.Millisecond)
	defer ticker.Stop()

	for t := range ticker.C {
		// 1) Raw sample
		sample, err := imuManager.ReadSample()
		if err != nil {
			log.Printf("IMU read error: %v", err)
			continue
		}

		payload, err := json.Marshal(sample)
		if err != nil {
			log.Printf("json marshal error (sample): %v", err)
			continue
		}
		if token := client.Publish(cfg.TopicIMU, 0, true, payload); token.Wait() && token.Error() != nil {
			log.Printf("MQTT publish error (%s): %v", cfg.TopicIMU, token.Error())
			continue
		}

		// 2) Drain the FIFO once the watermark is reached
		if cfg.FIFOWatermark > 0 {
			if err := drainFIFO(imuManager, client, cfg, t); err != nil {
				log.Printf("FIFO drain error: %v", err)
			}
		}

		// 3) Step counter, published only when it changes
		if cfg.PedometerEnabled {
			sc, err := imuManager.StepCount()
			if err != nil {
				log.Printf("step counter read error: %v", err)
			} else if sc.Steps != lastSteps {
				lastSteps = sc.Steps
				sc.TimestampMs = t.UnixMilli()
				if payload, err := json.Marshal(sc); err != nil {
					log.Printf("step counter marshal error: %v", err)
				} else {
					client.Publish(cfg.TopicSteps, 0, true, payload)
				}
			}
		}

		log.Printf("%s tick: accel ax=%d ay=%d az=%d | gyro gx=%d gy=%d gz=%d | temp=%.1f°C",
			t.Format(time.RFC3339),
			sample.Ax, sample.Ay, sample.Az,
			sample.Gx, sample.Gy, sample.Gz,
			sample.TempC,
		)
	}
	return nil
}

// drainFIFO reads batched records once the watermark flag is set and
// publishes accel and gyro records as samples.
func drainFIFO(imuManager *sensors.IMUManager, client mqtt.Client, cfg *config.Config, t time.Time) error {
	return imuManager.WithDevice(func(dev *ism330dhcx.Dev) error {
		st, err := dev.FIFOStatus()
		if err != nil {
			return err
		}
		if !st.Watermark {
			return nil
		}
		if st.Overrun {
			log.Printf("FIFO overrun, %d unread records", st.Level)
		}

		for i := uint16(0); i < st.Level; i++ {
			rec, err := dev.ReadFIFORecord()
			if err != nil {
				return err
			}

			var sample imu.Sample
			x, y, z := rec.XYZ()
			switch rec.Tag {
			case ism330dhcx.TagAccelNC:
				sample.Ax, sample.Ay, sample.Az = x, y, z
			case ism330dhcx.TagGyroNC:
				sample.Gx, sample.Gy, sample.Gz = x, y, z
			default:
				// Temperature, timestamp and compressed records are not
				// republished individually.
				continue
			}
			sample.TimestampNs = t.UnixNano()

			payload, err := json.Marshal(sample)
			if err != nil {
				return err
			}
			client.Publish(cfg.TopicIMU, 0, false, payload)
		}
		return nil
	})
}
