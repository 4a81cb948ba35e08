package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/Hidan0/ism330dhcx-pid/internal/app"
	"github.com/Hidan0/ism330dhcx-pid/internal/config"
	"github.com/Hidan0/ism330dhcx-pid/internal/sensors"
)

func main() {
	configPath := flag.String("config", "./imu_config.txt", "path to configuration file")
	flag.Parse()

	log.Println("starting ISM330DHCX register debug tool")

	if err := config.InitGlobal(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	log.Println("Initializing IMU...")
	imuManager := sensors.GetIMUManager()
	if err := imuManager.Init(); err != nil {
		log.Printf("Warning: IMU initialization had issues: %v", err)
		log.Println("Continuing anyway - register map browsing still works")
	}

	http.HandleFunc("/ws", app.HandleRegisterDebugWS)

	// API endpoint for live IMU data
	http.HandleFunc("/api/imu", app.HandleIMUData)

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "web/register_debug.html")
	})

	addr := fmt.Sprintf(":%d", config.Get().WebServerPort)
	log.Printf("Register debug tool listening on %s", addr)
	log.Printf("Open http://localhost%s in your browser", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
