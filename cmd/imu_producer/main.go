package main

import (
	"flag"
	"log"

	"github.com/Hidan0/ism330dhcx-pid/internal/app"
	"github.com/Hidan0/ism330dhcx-pid/internal/config"
)

func main() {
	configPath := flag.String("config", "./imu_config.txt", "path to configuration file")
	flag.Parse()

	log.Println("starting ISM330DHCX producer (IMU → MQTT)")

	// Load configuration
	if err := config.InitGlobal(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := app.RunIMUProducer(); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
