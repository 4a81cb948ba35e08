package app

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Hidan0/ism330dhcx-pid/internal/config"
	"github.com/Hidan0/ism330dhcx-pid/internal/sensors"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local development
	},
}

// RegisterDebugSession holds WebSocket connection state for register debugging
type RegisterDebugSession struct {
	Conn *websocket.Conn
}

// RegisterResponse is the envelope for every message sent to the client.
type RegisterResponse struct {
	Type        string            `json:"type"`           // "register_data", "register_map", "status", "error"
	Bank        string            `json:"bank,omitempty"` // "user", "embedded", "sensor_hub"
	Address     string            `json:"addr,omitempty"`
	Value       string            `json:"value,omitempty"`
	Registers   map[string]string `json:"registers,omitempty"` // for bulk read
	Timestamp   string            `json:"timestamp,omitempty"`
	Message     string            `json:"message,omitempty"`
	Status      string            `json:"status,omitempty"`
	RegisterMap []RegisterInfo    `json:"register_map,omitempty"`
}

type RegisterInfo struct {
	Address     string             `json:"address"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Access      string             `json:"access"` // "R", "W", "RW"
	Default     string             `json:"default,omitempty"`
	BitFields   []sensors.BitField `json:"bit_fields,omitempty"`
}

// RegisterConfigFile represents the JSON structure for exported register configuration
type RegisterConfigFile struct {
	Version   int               `json:"version"`
	Bank      string            `json:"bank"`
	Timestamp string            `json:"timestamp"`
	Registers map[string]string `json:"registers"` // hex address -> hex value
}

// HandleRegisterDebugWS handles the WebSocket connection for register debugging
func HandleRegisterDebugWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("register_debug: websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	session := &RegisterDebugSession{Conn: conn}

	// Send the user bank register map on connection
	if err := session.sendRegisterMap("user"); err != nil {
		log.Printf("register_debug: error sending register map: %v", err)
		return
	}

	// Message loop
	for {
		var rawMsg map[string]interface{}
		err := conn.ReadJSON(&rawMsg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("register_debug: websocket error: %v", err)
			}
			break
		}

		action, ok := rawMsg["action"].(string)
		if !ok {
			session.sendError("missing or invalid action field")
			continue
		}

		// Route based on action
		switch action {
		case "get_map":
			bank, _ := rawMsg["bank"].(string)
			if bank == "" {
				bank = "user" // default
			}
			session.sendRegisterMap(bank)
		case "read":
			session.handleRead(rawMsg)
		case "read_all":
			session.handleReadAll(rawMsg)
		case "write":
			session.handleWrite(rawMsg)
		case "init":
			session.handleInit()
		case "export_config":
			session.handleExportConfig(rawMsg)
		default:
			session.sendError(fmt.Sprintf("unknown action: %s", action))
		}
	}
}

func (s *RegisterDebugSession) handleRead(rawMsg map[string]interface{}) {
	bank, _ := rawMsg["bank"].(string)
	addr, _ := rawMsg["addr"].(string)

	if addr == "" {
		s.sendError("missing addr field")
		return
	}

	// Parse hex address
	var addrByte byte
	if _, err := fmt.Sscanf(addr, "0x%X", &addrByte); err != nil {
		s.sendError(fmt.Sprintf("invalid address format: %s", addr))
		return
	}

	mgr := sensors.GetIMUManager()
	value, err := mgr.ReadRegister(bank, addrByte)
	if err != nil {
		s.sendError(fmt.Sprintf("read error: %v", err))
		return
	}

	// Send response
	resp := RegisterResponse{
		Type:      "register_data",
		Bank:      bank,
		Address:   addr,
		Value:     fmt.Sprintf("0x%02X", value),
		Timestamp: time.Now().Format(time.RFC3339),
	}
	s.Conn.WriteJSON(resp)
}

func (s *RegisterDebugSession) handleReadAll(rawMsg map[string]interface{}) {
	bank, _ := rawMsg["bank"].(string)

	mgr := sensors.GetIMUManager()
	registers, err := mgr.ReadAllRegisters(bank)
	if err != nil {
		s.sendError(fmt.Sprintf("read all error: %v", err))
		return
	}

	// Convert to hex string map
	regMap := make(map[string]string)
	for addr, value := range registers {
		regMap[fmt.Sprintf("0x%02X", addr)] = fmt.Sprintf("0x%02X", value)
	}

	// Send response
	resp := RegisterResponse{
		Type:      "register_data",
		Bank:      bank,
		Registers: regMap,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	s.Conn.WriteJSON(resp)
}

func (s *RegisterDebugSession) handleWrite(rawMsg map[string]interface{}) {
	bank, _ := rawMsg["bank"].(string)
	addr, _ := rawMsg["addr"].(string)
	valueStr, _ := rawMsg["value"].(string)

	if addr == "" || valueStr == "" {
		s.sendError("missing addr or value field")
		return
	}

	// Parse hex address and value
	var addrByte, valueByte byte
	if _, err := fmt.Sscanf(addr, "0x%X", &addrByte); err != nil {
		s.sendError(fmt.Sprintf("invalid address format: %s", addr))
		return
	}
	if _, err := fmt.Sscanf(valueStr, "0x%X", &valueByte); err != nil {
		s.sendError(fmt.Sprintf("invalid value format: %s", valueStr))
		return
	}

	// User bank writes are gated by the configured address ranges; the
	// embedded and sensor hub banks are debug-only surfaces and stay open.
	if bank == "" || bank == "user" {
		cfg := config.Get()
		if !isRegisterWritable(addrByte, cfg.RegisterDebugAllowedRanges) {
			s.sendError(fmt.Sprintf("register 0x%02X not in allowed write ranges", addrByte))
			return
		}
	}

	mgr := sensors.GetIMUManager()
	if err := mgr.WriteRegister(bank, addrByte, valueByte); err != nil {
		s.sendError(fmt.Sprintf("write error: %v", err))
		return
	}

	// Send confirmation
	resp := RegisterResponse{
		Type:      "register_data",
		Bank:      bank,
		Address:   addr,
		Value:     valueStr,
		Timestamp: time.Now().Format(time.RFC3339),
		Message:   "write successful",
	}
	s.Conn.WriteJSON(resp)
}

func (s *RegisterDebugSession) handleInit() {
	mgr := sensors.GetIMUManager()
	if err := mgr.Reinitialize(); err != nil {
		s.sendError(fmt.Sprintf("reinit error: %v", err))
		return
	}

	resp := RegisterResponse{
		Type:    "status",
		Status:  "initialized",
		Message: "IMU reinitialized successfully",
	}
	s.Conn.WriteJSON(resp)
}

func (s *RegisterDebugSession) handleExportConfig(rawMsg map[string]interface{}) {
	bank, _ := rawMsg["bank"].(string)
	if bank == "" {
		bank = "user"
	}

	// Read all registers
	mgr := sensors.GetIMUManager()
	registers, err := mgr.ReadAllRegisters(bank)
	if err != nil {
		s.sendError(fmt.Sprintf("export error: %v", err))
		return
	}

	// Convert to hex string map
	regMap := make(map[string]string)
	for addr, value := range registers {
		regMap[fmt.Sprintf("0x%02X", addr)] = fmt.Sprintf("0x%02X", value)
	}

	// Create config file structure
	configFile := RegisterConfigFile{
		Version:   1,
		Bank:      bank,
		Timestamp: time.Now().Format(time.RFC3339),
		Registers: regMap,
	}

	// Send as download
	configJSON, _ := json.Marshal(configFile)
	rawResp := map[string]interface{}{
		"type":     "export_config",
		"bank":     bank,
		"message":  "config exported",
		"config":   string(configJSON),
		"filename": fmt.Sprintf("ism330dhcx_%s_%s_registers.json", bank, time.Now().Format("20060102_150405")),
	}
	s.Conn.WriteJSON(rawResp)
}

func (s *RegisterDebugSession) sendRegisterMap(bank string) error {
	mgr := sensors.GetIMUManager()
	regMap := mgr.GetRegisterMap(bank)

	// Convert sensors.RegisterInfo to RegisterInfo
	mappedRegs := make([]RegisterInfo, len(regMap))
	for i, r := range regMap {
		mappedRegs[i] = RegisterInfo{
			Address:     r.Address,
			Name:        r.Name,
			Description: r.Description,
			Access:      r.Access,
			Default:     r.Default,
			BitFields:   r.BitFields, // Already sensors.BitField type
		}
	}

	resp := RegisterResponse{
		Type:        "register_map",
		Bank:        bank,
		RegisterMap: mappedRegs,
	}
	return s.Conn.WriteJSON(resp)
}

func (s *RegisterDebugSession) sendError(message string) {
	resp := RegisterResponse{
		Type:    "error",
		Message: message,
	}
	s.Conn.WriteJSON(resp)
}

// HandleIMUData serves a live IMU sample via REST API
func HandleIMUData(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	mgr := sensors.GetIMUManager()
	sample, err := mgr.ReadSample()
	if err != nil {
		http.Error(w, fmt.Sprintf(`{"error": "%v"}`, err), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(sample)
}

// isRegisterWritable checks if a register address is in the allowed write
// ranges. Ranges look like "0x10-0x19,0x56,0x5B-0x5F"; an empty string
// means no writes allowed.
func isRegisterWritable(addr byte, allowedRanges string) bool {
	if allowedRanges == "" {
		return false
	}

	for _, part := range strings.Split(allowedRanges, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		lo, hi := part, part
		if i := strings.Index(part, "-"); i >= 0 {
			lo, hi = strings.TrimSpace(part[:i]), strings.TrimSpace(part[i+1:])
		}

		loVal, err := strconv.ParseUint(lo, 0, 8)
		if err != nil {
			continue
		}
		hiVal, err := strconv.ParseUint(hi, 0, 8)
		if err != nil {
			continue
		}

		if uint64(addr) >= loVal && uint64(addr) <= hiVal {
			return true
		}
	}
	return false
}
