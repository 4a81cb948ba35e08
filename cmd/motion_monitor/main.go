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

	log.Println("starting motion monitor (INT1 → MQTT)")

	if err := config.InitGlobal(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := app.RunMotionMonitor(); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
