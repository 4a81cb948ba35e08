package app

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/warthog618/go-gpiocdev"

	"github.com/Hidan0/ism330dhcx-pid/internal/config"
	"github.com/Hidan0/ism330dhcx-pid/internal/imu"
	"github.com/Hidan0/ism330dhcx-pid/internal/sensors"
	"github.com/Hidan0/ism330dhcx-pid/ism330dhcx"
)

// RunMotionMonitor arms the wake-up detector on INT1 and publishes a motion
// event whenever the interrupt line fires.
func RunMotionMonitor() error {
	cfg := config.Get()

	imuManager := sensors.GetIMUManager()
	if err := imuManager.Init(); err != nil {
		return fmt.Errorf("failed to initialize IMU: %w", err)
	}

	// Configure the wake-up detector and route it to INT1. Latched mode
	// keeps the pin asserted until the source register is read.
	err := imuManager.WithDevice(func(dev *ism330dhcx.Dev) error {
		if err := dev.SetWakeUp(ism330dhcx.WakeUpConfig{
			Threshold: cfg.MotionWakeThreshold,
			Duration:  cfg.MotionWakeDuration,
		}); err != nil {
			return fmt.Errorf("configure wake-up: %w", err)
		}
		if err := dev.SetLatchedInterrupts(true); err != nil {
			return fmt.Errorf("latch interrupts: %w", err)
		}
		return dev.SetPinInt1Route(ism330dhcx.PinIntRoute{WakeUp: true})
	})
	if err != nil {
		return err
	}
	log.Printf("motion: wake-up armed, threshold %d, duration %d ODR cycles",
		cfg.MotionWakeThreshold, cfg.MotionWakeDuration)

	// Connect to MQTT
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDMotion)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	defer client.Disconnect(250)
	log.Printf("motion: connected to MQTT broker at %s", cfg.MQTTBroker)

	// Watch the GPIO line wired to INT1
	line, err := gpiocdev.RequestLine(cfg.MotionGPIOChip, cfg.MotionGPIOLine,
		gpiocdev.AsInput,
		gpiocdev.WithRisingEdge,
		gpiocdev.WithEventHandler(func(evt gpiocdev.LineEvent) {
			if evt.Type != gpiocdev.LineEventRisingEdge {
				return
			}
			handleMotionInterrupt(imuManager, client, cfg)
		}))
	if err != nil {
		return fmt.Errorf("failed to request GPIO line %s:%d: %w",
			cfg.MotionGPIOChip, cfg.MotionGPIOLine, err)
	}
	defer line.Close()

	log.Printf("motion: watching %s line %d", cfg.MotionGPIOChip, cfg.MotionGPIOLine)

	// Events arrive on the handler goroutine.
	select {}
}

// handleMotionInterrupt reads the latched interrupt sources, which also
// releases the INT1 pin, and publishes the event.
func handleMotionInterrupt(imuManager *sensors.IMUManager, client mqtt.Client, cfg *config.Config) {
	var src ism330dhcx.AllSources
	err := imuManager.WithDevice(func(dev *ism330dhcx.Dev) error {
		var err error
		src, err = dev.ReadAllSources()
		return err
	})
	if err != nil {
		log.Printf("motion: source read error: %v", err)
		return
	}
	if !src.WakeUp {
		return
	}

	event := imu.MotionEvent{
		TimestampMs: time.Now().UnixMilli(),
		WakeX:       src.WakeUpX,
		WakeY:       src.WakeUpY,
		WakeZ:       src.WakeUpZ,
	}
	log.Printf("motion: wake-up x=%t y=%t z=%t", event.WakeX, event.WakeY, event.WakeZ)

	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("motion: marshal error: %v", err)
		return
	}
	if token := client.Publish(cfg.TopicMotion, 0, false, payload); token.Wait() && token.Error() != nil {
		log.Printf("motion: MQTT publish error: %v", token.Error())
	}
}
